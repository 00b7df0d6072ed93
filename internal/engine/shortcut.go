package engine

import "strings"

// ShortcutMode selects when a shortcut may fire (spec §4.8).
type ShortcutMode int

const (
	// WordBoundary shortcuts fire only when the trigger is the whole buffered
	// word and is immediately followed by a boundary key (space, enter).
	WordBoundary ShortcutMode = iota

	// Immediate shortcuts fire the instant the trigger sequence has been
	// typed, with no boundary key required. They are matched against the
	// buffered letters and digits only, so a trigger made of punctuation
	// (such as "->") never fires.
	Immediate
)

// ShortcutEntry is one configured trigger/output pair.
type ShortcutEntry struct {
	Trigger string
	Output  string
	Mode    ShortcutMode
}

// ShortcutTable holds the configured shortcuts and matches them against
// typed text. The engine consults it from OnKey, so no shortcut fires while
// the engine is disabled.
type ShortcutTable struct {
	entries []ShortcutEntry
}

// NewShortcutTable returns an empty table.
func NewShortcutTable() *ShortcutTable {
	return &ShortcutTable{}
}

// Add registers a word-boundary shortcut.
func (t *ShortcutTable) Add(trigger, output string) {
	t.entries = append(t.entries, ShortcutEntry{Trigger: trigger, Output: output, Mode: WordBoundary})
}

// AddImmediate registers an immediate shortcut.
func (t *ShortcutTable) AddImmediate(trigger, output string) {
	t.entries = append(t.entries, ShortcutEntry{Trigger: trigger, Output: output, Mode: Immediate})
}

// Entries returns the configured shortcuts for inspection or editing by the
// host (spec §6: "shortcuts_mut").
func (t *ShortcutTable) Entries() []ShortcutEntry {
	return t.entries
}

// Remove deletes every entry whose trigger equals trigger, case-insensitive.
func (t *ShortcutTable) Remove(trigger string) {
	out := t.entries[:0]
	for _, e := range t.entries {
		if !strings.EqualFold(e.Trigger, trigger) {
			out = append(out, e)
		}
	}
	t.entries = out
}

// TryMatchWordBoundary looks for a WordBoundary shortcut whose trigger
// equals word exactly (case-insensitive). Called when a boundary key is
// pressed with word as the buffered content typed so far.
func (t *ShortcutTable) TryMatchWordBoundary(word string) (ShortcutEntry, bool) {
	for _, e := range t.entries {
		if e.Mode == WordBoundary && strings.EqualFold(e.Trigger, word) {
			return e, true
		}
	}
	return ShortcutEntry{}, false
}

// TryMatchImmediate looks for an Immediate shortcut whose trigger equals the
// word typed so far (case-insensitive) — it fires the instant the full
// trigger has been typed, without waiting for a boundary key.
func (t *ShortcutTable) TryMatchImmediate(word string) (ShortcutEntry, bool) {
	for _, e := range t.entries {
		if e.Mode == Immediate && strings.EqualFold(e.Trigger, word) {
			return e, true
		}
	}
	return ShortcutEntry{}, false
}
