package engine

import "testing"

func TestTelexMarkKeys(t *testing.T) {
	m := Telex{}
	cases := map[Key]Mark{KeyS: MarkAcute, KeyF: MarkGrave, KeyR: MarkHook, KeyX: MarkTilde, KeyJ: MarkDot}
	for k, want := range cases {
		got, ok := m.MarkFor(k)
		if !ok || got != want {
			t.Errorf("Telex.MarkFor(%v) = %v, %v, want %v, true", k, got, ok, want)
		}
	}
	if _, ok := m.MarkFor(KeyB); ok {
		t.Error("Telex.MarkFor(b) must report false")
	}
}

func TestVNIMarkKeys(t *testing.T) {
	m := VNI{}
	cases := map[Key]Mark{Key1: MarkAcute, Key2: MarkGrave, Key3: MarkHook, Key4: MarkTilde, Key5: MarkDot}
	for k, want := range cases {
		got, ok := m.MarkFor(k)
		if !ok || got != want {
			t.Errorf("VNI.MarkFor(%v) = %v, %v, want %v, true", k, got, ok, want)
		}
	}
}

func TestVNIToneTargets(t *testing.T) {
	m := VNI{}
	tone, targets, ok := m.ToneFor(Key6)
	if !ok || tone != ToneCircumflex || len(targets) != 3 {
		t.Fatalf("VNI.ToneFor(6) = %v, %v, %v", tone, targets, ok)
	}
	tone, targets, ok = m.ToneFor(Key7)
	if !ok || tone != ToneHornBreve || len(targets) != 2 {
		t.Fatalf("VNI.ToneFor(7) = %v, %v, %v", tone, targets, ok)
	}
}

func TestMethodForDefaultsToTelex(t *testing.T) {
	if MethodFor(0).ID() != 0 {
		t.Error("MethodFor(0) must be Telex")
	}
	if MethodFor(1).ID() != 1 {
		t.Error("MethodFor(1) must be VNI")
	}
	if MethodFor(99).ID() != 0 {
		t.Error("MethodFor(unknown) must default to Telex")
	}
}

func TestWAsVowelOnlyTelex(t *testing.T) {
	if !(Telex{}.IsWAsVowelTrigger(KeyW)) {
		t.Error("Telex must treat w as the w-as-vowel trigger")
	}
	if (VNI{}).IsWAsVowelTrigger(KeyW) {
		t.Error("VNI must never treat any key as the w-as-vowel trigger")
	}
}
