package engine

import "testing"

func vs(keys ...Key) []Vowel {
	out := make([]Vowel, len(keys))
	for i, k := range keys {
		out[i] = Vowel{Key: k, Position: i}
	}
	return out
}

func TestFindTonePositionSingleVowel(t *testing.T) {
	if pos := FindTonePosition(vs(KeyA), false, true, false); pos != 0 {
		t.Errorf("single vowel: pos = %d, want 0", pos)
	}
}

func TestFindTonePositionMedialPairs(t *testing.T) {
	// oa, uy: mark falls on the second (main) vowel under the modern rule.
	if pos := FindTonePosition(vs(KeyO, KeyA), false, true, false); pos != 1 {
		t.Errorf("oa: pos = %d, want 1", pos)
	}
	if pos := FindTonePosition(vs(KeyU, KeyY), false, true, false); pos != 1 {
		t.Errorf("uy: pos = %d, want 1", pos)
	}
}

func TestFindTonePositionUaRequiresQuInitial(t *testing.T) {
	// "mua": u is main, not medial -> mark on u (position 0).
	if pos := FindTonePosition(vs(KeyU, KeyA), false, true, false); pos != 0 {
		t.Errorf("mua: pos = %d, want 0", pos)
	}
	// "qua": u is medial after q -> mark on a (position 1).
	if pos := FindTonePosition(vs(KeyU, KeyA), false, true, true); pos != 1 {
		t.Errorf("qua: pos = %d, want 1", pos)
	}
}

func TestFindTonePositionMainGlidePairs(t *testing.T) {
	if pos := FindTonePosition(vs(KeyA, KeyI), false, true, false); pos != 0 {
		t.Errorf("ai: pos = %d, want 0", pos)
	}
	if pos := FindTonePosition(vs(KeyA, KeyO), false, true, false); pos != 0 {
		t.Errorf("ao: pos = %d, want 0", pos)
	}
}

func TestFindTonePositionWithFinalConsonant(t *testing.T) {
	// "oan": any 2-vowel cluster with a following consonant marks the second.
	if pos := FindTonePosition(vs(KeyO, KeyA), true, true, false); pos != 1 {
		t.Errorf("oan: pos = %d, want 1", pos)
	}
}

func TestFindTonePositionCompoundVowels(t *testing.T) {
	if pos := FindTonePosition(vs(KeyU, KeyO), false, true, false); pos != 1 {
		t.Errorf("uo: pos = %d, want 1", pos)
	}
	if pos := FindTonePosition(vs(KeyI, KeyE), false, true, false); pos != 1 {
		t.Errorf("ie: pos = %d, want 1", pos)
	}
}

func TestFindTonePositionThreeVowels(t *testing.T) {
	if pos := FindTonePosition(vs(KeyU, KeyO, KeyI), false, true, false); pos != 1 {
		t.Errorf("uoi: pos = %d, want 1", pos)
	}
	if pos := FindTonePosition(vs(KeyO, KeyA, KeyI), false, true, false); pos != 1 {
		t.Errorf("oai: pos = %d, want 1", pos)
	}
}

func TestFindTonePositionDiacriticPriority(t *testing.T) {
	vowels := []Vowel{
		{Key: KeyU, Tone: ToneHornBreve, Position: 0}, // ư
		{Key: KeyA, Tone: ToneNone, Position: 1},
	}
	// "ưa": the already-modified vowel (ư) wins over the a+glide default.
	if pos := FindTonePosition(vowels, false, true, false); pos != 0 {
		t.Errorf("ưa: pos = %d, want 0", pos)
	}
}

func TestIsMedialPairQuSensitivity(t *testing.T) {
	if isMedialPair(KeyU, KeyA, false) {
		t.Error("ua without qu-initial must not be medial")
	}
	if !isMedialPair(KeyU, KeyA, true) {
		t.Error("ua with qu-initial must be medial")
	}
	if !isMedialPair(KeyO, KeyA, false) {
		t.Error("oa must always be medial")
	}
}

func TestIsCompoundVowel(t *testing.T) {
	if !isCompoundVowel(KeyU, KeyO) || !isCompoundVowel(KeyI, KeyE) {
		t.Error("uo and ie must be compound vowels")
	}
	if isCompoundVowel(KeyA, KeyI) {
		t.Error("ai must not be a compound vowel")
	}
}
