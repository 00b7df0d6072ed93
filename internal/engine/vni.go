package engine

// VNI implements Method for the VNI typing convention: every modifier is a
// digit key, and digit triggers match anywhere in the vowel cluster (spec
// §4.2).
type VNI struct{}

func (VNI) ID() int { return 1 }

func (VNI) MarkFor(key Key) (Mark, bool) {
	switch key {
	case Key1:
		return MarkAcute, true
	case Key2:
		return MarkGrave, true
	case Key3:
		return MarkHook, true
	case Key4:
		return MarkTilde, true
	case Key5:
		return MarkDot, true
	}
	return MarkNone, false
}

func (VNI) ToneFor(key Key) (Tone, []Key, bool) {
	switch key {
	case Key6:
		return ToneCircumflex, []Key{KeyA, KeyE, KeyO}, true
	case Key7:
		return ToneHornBreve, []Key{KeyO, KeyU}, true
	case Key8:
		return ToneHornBreve, []Key{KeyA}, true
	}
	return ToneNone, nil, false
}

func (VNI) IsStroke(key Key) bool { return key == Key9 }

func (VNI) IsRemove(key Key) bool { return key == Key0 }

// IsWAsVowelTrigger is always false: VNI has no w-as-vowel special case.
func (VNI) IsWAsVowelTrigger(Key) bool { return false }
