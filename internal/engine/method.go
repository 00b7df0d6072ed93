package engine

// Method abstracts the per-convention key→modifier mapping (spec §4.2):
// Telex and VNI agree on what a stroke/tone/mark/remove trigger *does*, they
// disagree only on which physical key fires it. For both, the engine looks
// for a tone trigger's target across the whole buffered vowel cluster, not
// only the vowel typed just before the trigger.
type Method interface {
	// ID identifies the convention for wire/config purposes (0=Telex, 1=VNI).
	ID() int

	// MarkFor reports the tone mark a key requests, if any.
	MarkFor(key Key) (Mark, bool)

	// ToneFor reports the vowel-shape modifier a key requests and the base
	// vowel keys it may legally attach to, if any. The engine resolves which
	// buffered vowel actually receives it (spec §4.6.2's horn-target
	// heuristic, or rightmost-unmarked for everything else).
	ToneFor(key Key) (Tone, []Key, bool)

	// IsStroke reports whether key is this method's đ-stroke trigger.
	IsStroke(key Key) bool

	// IsRemove reports whether key is this method's modifier-removal trigger.
	IsRemove(key Key) bool

	// IsWAsVowelTrigger reports whether key can speculatively become a
	// standalone ư (Telex-only "w as vowel" special case, spec §4.7).
	IsWAsVowelTrigger(key Key) bool
}

// MethodFor returns the Method implementation for a configured input method
// id, defaulting to Telex for any unrecognized id.
func MethodFor(id int) Method {
	if id == 1 {
		return VNI{}
	}
	return Telex{}
}
