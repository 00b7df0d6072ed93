// Package x11key maps X11 keysym values, as delivered by an Fcitx5 frontend
// over D-Bus, onto the engine's host-agnostic Key catalogue.
package x11key

import "github.com/username/vnime/internal/engine"

// Keysym values the daemon cares about (X11 keysymdef.h).
const (
	Backspace uint32 = 0xff08
	Return    uint32 = 0xff0d
	Escape    uint32 = 0xff1b
	Space     uint32 = 0x0020
	Tab       uint32 = 0xff09
	Delete    uint32 = 0xffff
)

// Modifier bit flags, matching the XKB state mask the frontend forwards.
const (
	ModShift   uint32 = 1 << 0
	ModLock    uint32 = 1 << 1
	ModControl uint32 = 1 << 2
	ModMod1    uint32 = 1 << 3
)

// Decode converts an X11 keysym into an engine Key plus the caps flag the
// engine needs to preserve letter case across a transformation. Cursor-motion
// keys (arrows, Home, End, Page Up/Down) decode to the KeyPunct break key. ok
// is false for keysyms the engine has no use for (function keys and so on).
func Decode(keysym uint32) (key engine.Key, caps bool, ok bool) {
	switch keysym {
	case Space:
		return engine.KeySpace, false, true
	case Return:
		return engine.KeyReturn, false, true
	case Escape:
		return engine.KeyEscape, false, true
	case Tab:
		return engine.KeyTab, false, true
	case Backspace, Delete:
		return engine.KeyDelete, false, true
	}

	// XK_Home (0xff50) through XK_End (0xff57): moving the caret ends the
	// syllable being composed.
	if keysym >= 0xff50 && keysym <= 0xff57 {
		return engine.KeyPunct, false, true
	}

	r := keysymToRune(keysym)
	if r == 0 {
		return engine.KeyNone, false, false
	}

	switch {
	case r >= 'a' && r <= 'z':
		return engine.Key(int(engine.KeyA) + int(r-'a')), false, true
	case r >= 'A' && r <= 'Z':
		return engine.Key(int(engine.KeyA) + int(r-'A')), true, true
	case r >= '0' && r <= '9':
		return engine.Key(int(engine.Key0) + int(r-'0')), false, true
	}

	// Any other printable ASCII (punctuation) is a break key the engine
	// treats as ending the current syllable.
	if r >= 0x20 && r <= 0x7e {
		return engine.KeyPunct, false, true
	}
	return engine.KeyNone, false, false
}

// keysymToRune converts an X11 keysym to its Latin-1/Unicode rune, following
// the same ranges the teacher's Fcitx5 bridge used: keysyms below 0x100
// coincide with Latin-1 codepoints, and keysyms at 0x01000000+codepoint
// encode arbitrary Unicode.
func keysymToRune(keysym uint32) rune {
	if keysym >= 0x0020 && keysym <= 0x00ff {
		return rune(keysym)
	}
	if keysym >= 0x01000000 {
		return rune(keysym - 0x01000000)
	}
	return 0
}
