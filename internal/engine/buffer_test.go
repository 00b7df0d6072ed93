package engine

import "testing"

func TestBufferPushPop(t *testing.T) {
	var b Buffer
	b.Push(NewChar(KeyT, false))
	b.Push(NewChar(KeyO, false))
	b.Push(NewChar(KeyI, false))

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}

	c, ok := b.Pop()
	if !ok || c.Key != KeyI {
		t.Fatalf("Pop() = %+v, %v, want KeyI, true", c, ok)
	}
	if b.Len() != 2 {
		t.Fatalf("Len() after pop = %d, want 2", b.Len())
	}
}

func TestBufferPopEmpty(t *testing.T) {
	var b Buffer
	if _, ok := b.Pop(); ok {
		t.Error("Pop() on empty buffer must report false")
	}
}

func TestBufferOverflowSilentlyDrops(t *testing.T) {
	var b Buffer
	for i := 0; i < MaxBuffer+10; i++ {
		b.Push(NewChar(KeyA, false))
	}
	if b.Len() != MaxBuffer {
		t.Fatalf("Len() = %d, want capped at %d", b.Len(), MaxBuffer)
	}
}

func TestBufferFindVowels(t *testing.T) {
	var b Buffer
	b.Push(NewChar(KeyT, false))
	b.Push(NewChar(KeyO, false))
	b.Push(NewChar(KeyI, false))
	idxs := b.FindVowels()
	if len(idxs) != 2 || idxs[0] != 1 || idxs[1] != 2 {
		t.Fatalf("FindVowels() = %v, want [1 2]", idxs)
	}
}

func TestBufferToPreserveCaseString(t *testing.T) {
	var b Buffer
	b.Push(NewChar(KeyH, true))
	b.Push(NewChar(KeyI, false))
	if got := b.ToPreserveCaseString(); got != "Hi" {
		t.Fatalf("ToPreserveCaseString() = %q, want %q", got, "Hi")
	}
	if got := b.ToLowercaseString(); got != "hi" {
		t.Fatalf("ToLowercaseString() = %q, want %q", got, "hi")
	}
}

func TestBufferClear(t *testing.T) {
	var b Buffer
	b.Push(NewChar(KeyA, false))
	b.Clear()
	if !b.IsEmpty() {
		t.Error("buffer must be empty after Clear()")
	}
}
