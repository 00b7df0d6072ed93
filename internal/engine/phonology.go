package engine

// Vowel is a vowel descriptor derived on demand from the buffer: which base
// vowel, whether it carries a shape modifier, and where it sits in the
// buffer.
type Vowel struct {
	Key      Key
	Tone     Tone
	Position int
}

// HasDiacritic reports whether this vowel already carries a shape modifier
// (â/ê/ô, ơ/ư, ă) — such a vowel nearly always attracts the tone mark.
func (v Vowel) HasDiacritic() bool {
	return v.Tone != ToneNone
}

// Role is a vowel's phonological function within a syllable, informational
// only (spec §4.3 final paragraph).
type Role int

const (
	RoleMain Role = iota
	RoleMedial
	RoleFinal
)

// FindTonePosition returns the buffer index that must carry the tone mark,
// given the ordered vowel cluster and syllable context. Vowel order follows
// typing order left to right; rule order below matters and is not
// interchangeable.
func FindTonePosition(vowels []Vowel, hasFinalConsonant, modern, hasQuInitial bool) int {
	n := len(vowels)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return vowels[0].Position
	}

	if n == 2 {
		v1, v2 := vowels[0], vowels[1]

		if hasFinalConsonant {
			return v2.Position
		}

		// v1 carries a diacritic and v2 doesn't: the diacritic vowel is main
		// (e.g. ưa -> mark on ư). Must be checked before compound-vowel and
		// medial-pair rules since ưa is neither ươ nor a medial pair.
		if v1.HasDiacritic() && !v2.HasDiacritic() {
			return v1.Position
		}

		if isCompoundVowel(v1.Key, v2.Key) {
			return v2.Position
		}

		if v2.HasDiacritic() {
			return v2.Position
		}

		if isMedialPair(v1.Key, v2.Key, hasQuInitial) {
			if modern {
				return v2.Position
			}
			return v1.Position
		}

		// ua without qu-initial: u is the main vowel (mùa), not a medial glide.
		if v1.Key == KeyU && v2.Key == KeyA && !hasQuInitial {
			return v1.Position
		}

		if isMainGlidePair(v1.Key, v2.Key) {
			return v1.Position
		}

		return v2.Position
	}

	if n == 3 {
		k0, k1, k2 := vowels[0].Key, vowels[1].Key, vowels[2].Key

		if vowels[1].HasDiacritic() {
			return vowels[1].Position
		}
		if vowels[2].HasDiacritic() {
			return vowels[2].Position
		}
		if k0 == KeyU && k1 == KeyO {
			return vowels[1].Position
		}
		if k0 == KeyO && k1 == KeyA {
			return vowels[1].Position
		}
		if k0 == KeyU && k1 == KeyY && k2 == KeyE {
			return vowels[2].Position
		}
		return vowels[1].Position
	}

	// 4+ vowels: middle vowel if it has a diacritic, else the first vowel
	// (left to right) that does, else the middle vowel.
	mid := n / 2
	if vowels[mid].HasDiacritic() {
		return vowels[mid].Position
	}
	for _, v := range vowels {
		if v.HasDiacritic() {
			return v.Position
		}
	}
	return vowels[mid].Position
}

// ClassifyRoles assigns an informational Role to each vowel (spec §4.3: "The
// analyser also classifies each vowel's role... this is informational").
func ClassifyRoles(vowels []Vowel, hasFinalConsonant, hasQuInitial bool) []Role {
	n := len(vowels)
	if n == 0 {
		return nil
	}
	roles := make([]Role, n)
	if n == 1 {
		roles[0] = RoleMain
		return roles
	}

	if n == 2 {
		k1, k2 := vowels[0].Key, vowels[1].Key
		switch {
		case isMedialPair(k1, k2, hasQuInitial) || isCompoundVowel(k1, k2) || hasFinalConsonant:
			roles[0], roles[1] = RoleMedial, RoleMain
		case isMainGlidePair(k1, k2) || (vowels[0].HasDiacritic() && !vowels[1].HasDiacritic()):
			roles[0], roles[1] = RoleMain, RoleFinal
		default:
			roles[0], roles[1] = RoleMain, RoleMain
		}
		return roles
	}

	for i := range roles {
		roles[i] = RoleMain
	}
	roles[0] = RoleMedial
	if !hasFinalConsonant {
		roles[n-1] = RoleFinal
	}
	roles[n/2] = RoleMain
	return roles
}

// isMedialPair reports whether v1+v2 is a medial+main pair (âm đệm + âm
// chính): oa, oe, uê, uy, and ua only when preceded by a q-initial ("qua" vs
// "mua").
func isMedialPair(v1, v2 Key, hasQuInitial bool) bool {
	if v1 == KeyU && v2 == KeyA {
		return hasQuInitial
	}
	switch {
	case v1 == KeyO && v2 == KeyA:
		return true
	case v1 == KeyO && v2 == KeyE:
		return true
	case v1 == KeyU && v2 == KeyE:
		return true
	case v1 == KeyU && v2 == KeyY:
		return true
	}
	return false
}

// isMainGlidePair reports whether v1+v2 is a main+glide pair (ai, ao, au, oi,
// ui, ...): the second vowel is a glide (i/y/o/u) and the pair is not also a
// medial or compound pattern.
func isMainGlidePair(v1, v2 Key) bool {
	isGlide := v2 == KeyI || v2 == KeyY || v2 == KeyO || v2 == KeyU
	if !isGlide {
		return false
	}
	return !isMedialPair(v1, v2, false) && !isCompoundVowel(v1, v2)
}

// isCompoundVowel reports whether v1+v2 is a compound diphthong (ươ, uô, iê)
// whose second member carries the shape modifier and the tone.
func isCompoundVowel(v1, v2 Key) bool {
	return (v1 == KeyU && v2 == KeyO) || (v1 == KeyI && v2 == KeyE)
}
