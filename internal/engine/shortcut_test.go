package engine

import "testing"

func TestShortcutWordBoundary(t *testing.T) {
	tbl := NewShortcutTable()
	tbl.Add("btw", "by the way")

	entry, ok := tbl.TryMatchWordBoundary("btw")
	if !ok || entry.Output != "by the way" {
		t.Fatalf("TryMatchWordBoundary(btw) = %+v, %v", entry, ok)
	}
	if _, ok := tbl.TryMatchWordBoundary("btwx"); ok {
		t.Error("a longer word must not match")
	}
}

func TestShortcutCaseInsensitive(t *testing.T) {
	tbl := NewShortcutTable()
	tbl.Add("vn", "Vietnam")
	if _, ok := tbl.TryMatchWordBoundary("VN"); !ok {
		t.Error("word-boundary matching must be case-insensitive")
	}
}

func TestShortcutImmediate(t *testing.T) {
	tbl := NewShortcutTable()
	tbl.AddImmediate("f1", "formula one")

	if _, ok := tbl.TryMatchWordBoundary("f1"); ok {
		t.Error("an immediate shortcut must not satisfy a word-boundary match")
	}
	entry, ok := tbl.TryMatchImmediate("f1")
	if !ok || entry.Output != "formula one" {
		t.Fatalf("TryMatchImmediate(f1) = %+v, %v", entry, ok)
	}
}

func TestShortcutRemove(t *testing.T) {
	tbl := NewShortcutTable()
	tbl.Add("btw", "by the way")
	tbl.Remove("btw")
	if _, ok := tbl.TryMatchWordBoundary("btw"); ok {
		t.Error("removed shortcut must no longer match")
	}
}
