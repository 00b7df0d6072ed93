package engine

// Telex implements Method for the Telex typing convention: modifier keys are
// ordinary letters, doubled or borrowed from the Latin alphabet (s/f/r/x/j
// for marks, a/e/o doubled for circumflex, w for horn/breve).
type Telex struct{}

func (Telex) ID() int { return 0 }

func (Telex) MarkFor(key Key) (Mark, bool) {
	switch key {
	case KeyS:
		return MarkAcute, true
	case KeyF:
		return MarkGrave, true
	case KeyR:
		return MarkHook, true
	case KeyX:
		return MarkTilde, true
	case KeyJ:
		return MarkDot, true
	}
	return MarkNone, false
}

// ToneFor returns the candidate vowel keys a shape-modifier trigger may
// attach to. Doubling a vowel letter is itself the trigger (aa, ee, oo); w is
// the dedicated horn/breve trigger and may target any of o/u/a depending on
// which is present (spec §4.6.2's horn-target heuristic resolves the tie).
func (Telex) ToneFor(key Key) (Tone, []Key, bool) {
	switch key {
	case KeyA:
		return ToneCircumflex, []Key{KeyA}, true
	case KeyE:
		return ToneCircumflex, []Key{KeyE}, true
	case KeyO:
		return ToneCircumflex, []Key{KeyO}, true
	case KeyW:
		return ToneHornBreve, []Key{KeyO, KeyU, KeyA}, true
	}
	return ToneNone, nil, false
}

func (Telex) IsStroke(key Key) bool { return key == KeyD }

func (Telex) IsRemove(key Key) bool { return key == KeyZ }

func (Telex) IsWAsVowelTrigger(key Key) bool { return key == KeyW }
