package engine

import "strings"

// validate.go implements the whitelist-based syllable validator. Validation
// ignores tone marks and vowel-shape modifiers entirely — it operates on the
// base letter sequence only, so "mùa", "mưa" and "mua" all validate against
// the same nucleus pattern "ua".

// validInitials are the legal Vietnamese onset consonant clusters. đ collapses
// onto d since validation is diacritic-blind.
var validInitials = map[string]bool{
	"":   true,
	"b":  true, "c": true, "d": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,
	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,
	"ngh": true,
}

// validFinals are the legal Vietnamese coda consonant clusters.
var validFinals = map[string]bool{
	"":   true,
	"c": true, "m": true, "n": true, "p": true, "t": true,
	"ch": true, "ng": true, "nh": true,
}

// validNuclei are the legal vowel-cluster patterns, expressed over base
// letters (a e i o u y) since circumflex/horn/breve/tone variants of the
// same letter sequence share one entry (spec §4.4's "~60 patterns" collapse
// to this set once diacritics are stripped).
var validNuclei = map[string]bool{
	"a": true, "e": true, "i": true, "o": true, "u": true, "y": true,

	"ai": true, "ao": true, "au": true, "ay": true,
	"eo": true, "eu": true,
	"ia": true, "ie": true, "iu": true,
	"oa": true, "oe": true, "oi": true,
	"ua": true, "ue": true, "ui": true, "uo": true, "uu": true, "uy": true,
	"ye": true,

	"ieu": true,
	"oai": true, "oay": true, "oao": true, "oeo": true,
	"uao": true, "uay": true, "uoi": true,
	"uya": true, "uye": true, "uyu": true, "uou": true,
}

// keyLetter maps a logical key back to its base ASCII letter for whitelist
// lookups. Only letters participate in syllable structure.
func keyLetter(k Key) (byte, bool) {
	if !IsLetter(k) {
		return 0, false
	}
	return byte('a' + (k - KeyA)), true
}

// splitSyllable parses keys into (initial, nucleus, final) by the greedy
// consonant-vowel-consonant scan spec §4.4 describes.
func splitSyllable(keys []Key) (initial, nucleus, final []Key) {
	i := 0
	for i < len(keys) && !IsVowel(keys[i]) {
		i++
	}
	initial = keys[:i]

	j := i
	for j < len(keys) && IsVowel(keys[j]) {
		j++
	}
	nucleus = keys[i:j]
	final = keys[j:]
	return
}

func keysToString(keys []Key) string {
	var b strings.Builder
	for _, k := range keys {
		if l, ok := keyLetter(k); ok {
			b.WriteByte(l)
		}
	}
	return b.String()
}

// IsValid reports whether keys forms a structurally valid Vietnamese
// syllable: a whitelisted initial, a non-empty whitelisted nucleus, a
// whitelisted final, and spelling-consistency between initial and nucleus
// (spec §4.4). Invalid sequences are never transformed by the engine.
func IsValid(keys []Key) bool {
	if len(keys) == 0 {
		return false
	}

	initial, nucleus, final := splitSyllable(keys)
	if len(final) > 0 && len(nucleus) == 0 {
		// Trailing consonants with no vowel at all: not a syllable yet.
		return false
	}
	if len(nucleus) == 0 {
		return false
	}

	initialStr := keysToString(initial)
	if !validInitials[initialStr] {
		return false
	}

	finalStr := keysToString(final)
	if !validFinals[finalStr] {
		return false
	}

	nucleusStr := keysToString(nucleus)
	if !validNuclei[nucleusStr] {
		return false
	}

	if !spellingConsistent(initialStr, nucleus[0]) {
		return false
	}

	return true
}

// spellingConsistent enforces the c/k, g/gh, ng/ngh, q+u, gi+vowel spelling
// rules (spec §4.4: "q must be followed by u; gi+front-vowel and gh/ngh only
// before i/e/ê").
func spellingConsistent(initial string, firstNucleus Key) bool {
	switch initial {
	case "q":
		// splitSyllable puts the 'u' of "qu" into the nucleus, so every
		// qu- syllable arrives here with initial "q"; a 'q' not followed
		// by 'u' is rejected.
		return firstNucleus == KeyU
	case "c":
		return !isCEIY(firstNucleus)
	case "k":
		return isCEIY(firstNucleus)
	case "g":
		return !isGEI(firstNucleus)
	case "gh":
		return isGEI(firstNucleus)
	case "gi":
		return true
	case "ng":
		return !isGEI(firstNucleus)
	case "ngh":
		return isGEI(firstNucleus)
	}
	return true
}

// isCEIY reports whether k is e, i, or y — the set that takes 'k' rather
// than 'c' as an initial.
func isCEIY(k Key) bool {
	return k == KeyE || k == KeyI || k == KeyY
}

// isGEI reports whether k is e or i — the set that takes 'gh'/'ngh' rather
// than 'g'/'ng' as an initial.
func isGEI(k Key) bool {
	return k == KeyE || k == KeyI
}
