package engine

import "testing"

func TestRenderBasicVowels(t *testing.T) {
	cases := []struct {
		key  Key
		tone Tone
		mark Mark
		want rune
	}{
		{KeyA, ToneNone, MarkNone, 'a'},
		{KeyA, ToneCircumflex, MarkNone, 'â'},
		{KeyA, ToneHornBreve, MarkNone, 'ă'},
		{KeyO, ToneHornBreve, MarkNone, 'ơ'},
		{KeyU, ToneHornBreve, MarkNone, 'ư'},
		{KeyE, ToneCircumflex, MarkAcute, 'ế'},
		{KeyA, ToneCircumflex, MarkDot, 'ậ'},
		{KeyO, ToneHornBreve, MarkTilde, 'ỡ'},
	}
	for _, c := range cases {
		got, ok := Render(c.key, false, c.tone, c.mark)
		if !ok || got != c.want {
			t.Errorf("Render(%v, false, %v, %v) = %q, %v, want %q", c.key, c.tone, c.mark, got, ok, c.want)
		}
	}
}

func TestRenderUppercase(t *testing.T) {
	got, ok := Render(KeyO, true, ToneHornBreve, MarkAcute)
	if !ok || got != 'Ớ' {
		t.Fatalf("Render(O, caps, horn, acute) = %q, %v, want 'Ớ'", got, ok)
	}
}

func TestRenderRejectsMarkOnConsonant(t *testing.T) {
	if _, ok := Render(KeyB, false, ToneNone, MarkAcute); ok {
		t.Error("a mark on a consonant must not render")
	}
}

func TestRenderStroke(t *testing.T) {
	got, ok := Render(KeyD, false, ToneNone, MarkNone)
	if !ok || got != 'd' {
		t.Fatalf("Render(D) without stroke = %q, %v, want 'd'", got, ok)
	}
}

func TestRenderCharStrokeOverridesBase(t *testing.T) {
	c := Char{Key: KeyD, Stroke: true}
	if got := RenderChar(c); got != 'đ' {
		t.Fatalf("RenderChar(stroked d) = %q, want 'đ'", got)
	}
	c.Caps = true
	if got := RenderChar(c); got != 'Đ' {
		t.Fatalf("RenderChar(stroked D) = %q, want 'Đ'", got)
	}
}

func TestRenderCharFallsBackToLiteral(t *testing.T) {
	c := Char{Key: KeyB, Caps: false}
	if got := RenderChar(c); got != 'b' {
		t.Fatalf("RenderChar(plain consonant) = %q, want 'b'", got)
	}
}
