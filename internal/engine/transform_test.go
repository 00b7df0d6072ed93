package engine

import "testing"

func keyForRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return Key(int(KeyA) + int(r-'a'))
	case r >= '0' && r <= '9':
		return Key(int(Key0) + int(r-'0'))
	}
	return KeyPunct
}

func typeString(e *Engine, s string) {
	for _, r := range s {
		e.OnKey(keyForRune(r), false, false, false)
	}
}

func newTelexEngine() *Engine {
	e := NewEngine()
	e.SetMethod(0)
	return e
}

func newVNIEngine() *Engine {
	e := NewEngine()
	e.SetMethod(1)
	return e
}

func TestTelexEndToEnd(t *testing.T) {
	cases := map[string]string{
		"as":      "á",
		"af":      "à",
		"ar":      "ả",
		"ax":      "ã",
		"aj":      "ạ",
		"aa":      "â",
		"aw":      "ă",
		"ee":      "ê",
		"oo":      "ô",
		"ow":      "ơ",
		"uw":      "ư",
		"dd":      "đ",
		"tieengs": "tiếng",
		"duocw":   "dươc",
		"tuoiws":  "tưới",
	}
	for in, want := range cases {
		e := newTelexEngine()
		typeString(e, in)
		if got := e.Preedit(); got != want {
			t.Errorf("Telex %q -> %q, want %q", in, got, want)
		}
	}
}

func TestVNIEndToEnd(t *testing.T) {
	cases := map[string]string{
		"a1":  "á",
		"a2":  "à",
		"a6":  "â",
		"o7":  "ơ",
		"u7":  "ư",
		"a8":  "ă",
		"d9":  "đ",
		"to6i": "tôi",
	}
	for in, want := range cases {
		e := newVNIEngine()
		typeString(e, in)
		if got := e.Preedit(); got != want {
			t.Errorf("VNI %q -> %q, want %q", in, got, want)
		}
	}
}

func TestRevertLawDoubleVowel(t *testing.T) {
	e := newTelexEngine()
	typeString(e, "aaa")
	if got := e.Preedit(); got != "aa" {
		t.Errorf("aaa -> %q, want %q", got, "aa")
	}
}

func TestRevertLawStroke(t *testing.T) {
	e := newTelexEngine()
	typeString(e, "ddd")
	if got := e.Preedit(); got != "dd" {
		t.Errorf("ddd -> %q, want %q", got, "dd")
	}
}

func TestWAsVowelStandalone(t *testing.T) {
	e := newTelexEngine()
	typeString(e, "w")
	if got := e.Preedit(); got != "ư" {
		t.Errorf("w -> %q, want %q", got, "ư")
	}
}

func TestWAsVowelRevertLaw(t *testing.T) {
	e := newTelexEngine()
	typeString(e, "www")
	if got := e.Preedit(); got != "ww" {
		t.Errorf("www -> %q, want %q", got, "ww")
	}
}

func TestWAsVowelOnlyAtStartOfBuffer(t *testing.T) {
	// The w-as-vowel special case only considers an empty buffer; once a
	// consonant has been typed, 'w' is just another literal consonant.
	e := newTelexEngine()
	typeString(e, "bw")
	if got := e.Preedit(); got != "bw" {
		t.Errorf("bw -> %q, want %q", got, "bw")
	}
}

func TestHornHeuristicOaBreveOnA(t *testing.T) {
	e := newTelexEngine()
	typeString(e, "oaw")
	if got := e.Preedit(); got != "oă" {
		t.Errorf("oaw -> %q, want %q", got, "oă")
	}
}

func TestHornHeuristicUaHornOnUWithoutQ(t *testing.T) {
	e := newTelexEngine()
	typeString(e, "muaw")
	if got := e.Preedit(); got != "mưa" {
		t.Errorf("muaw -> %q, want %q", got, "mưa")
	}
}

func TestHornHeuristicUaBreveOnAWithQ(t *testing.T) {
	e := newTelexEngine()
	typeString(e, "quaw")
	if got := e.Preedit(); got != "quă" {
		t.Errorf("quaw -> %q, want %q", got, "quă")
	}
}

func TestMarkRejectedByInvalidFinalCluster(t *testing.T) {
	// "bc" is not a whitelisted coda, so the speculative mark application
	// on the 'a' must be rolled back and 's' falls back to a literal.
	e := newTelexEngine()
	typeString(e, "abcs")
	if got := e.Preedit(); got != "abcs" {
		t.Errorf("abcs -> %q, want %q", got, "abcs")
	}
}

func TestRemoveKeyStripsMarkThenTone(t *testing.T) {
	e := newTelexEngine()
	typeString(e, "as") // á
	if got := e.Preedit(); got != "á" {
		t.Fatalf("setup: as -> %q, want %q", got, "á")
	}
	e.OnKey(KeyZ, false, false, false)
	if got := e.Preedit(); got != "a" {
		t.Errorf("as+z -> %q, want %q", got, "a")
	}

	e = newTelexEngine()
	typeString(e, "aas") // ấ
	e.OnKey(KeyZ, false, false, false)
	if got := e.Preedit(); got != "â" {
		t.Errorf("aas+z -> %q, want %q", got, "â")
	}
	e.OnKey(KeyZ, false, false, false)
	if got := e.Preedit(); got != "a" {
		t.Errorf("aas+z+z -> %q, want %q", got, "a")
	}
}

func TestBackspaceUndoesLastBufferedChar(t *testing.T) {
	e := newTelexEngine()
	typeString(e, "to")
	e.OnKey(KeyDelete, false, false, false)
	if got := e.Preedit(); got != "t" {
		t.Errorf("to+delete -> %q, want %q", got, "t")
	}
}

func TestDisabledEngineNeverTransforms(t *testing.T) {
	e := newTelexEngine()
	e.SetEnabled(false)
	typeString(e, "as")
	if got := e.Preedit(); got != "" {
		t.Errorf("disabled engine must not buffer anything, got %q", got)
	}
}

func TestSpaceClearsBuffer(t *testing.T) {
	e := newTelexEngine()
	typeString(e, "as")
	e.OnKey(KeySpace, false, false, false)
	if got := e.Preedit(); got != "" {
		t.Errorf("buffer must be empty after space, got %q", got)
	}
}
