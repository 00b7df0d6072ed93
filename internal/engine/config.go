package engine

// ToneRule selects which of the two competing Vietnamese tone-placement
// conventions the phonology analyser applies when a vowel cluster's mark
// position is ambiguous (spec §9 Open Question: modern vs. classical
// placement, e.g. "hòa" vs. "hoà").
type ToneRule int

const (
	// ToneRuleModern places the mark following current typing convention
	// (hoà, của, mùa) and is what every fixture in this codebase exercises.
	ToneRuleModern ToneRule = iota

	// ToneRuleClassical places the mark following the older print convention
	// (hòa, của, mùa — identical except when a medial pair is involved).
	ToneRuleClassical
)

// EngineConfig holds the engine's runtime-tunable behavior. All fields have
// conservative defaults that make a freshly constructed Engine immediately
// usable.
type EngineConfig struct {
	// ToneRule picks the tone-placement convention; defaults to modern.
	ToneRule ToneRule

	// Method selects the active typing convention (0=Telex, 1=VNI).
	Method int
}

// DefaultConfig returns the engine's default configuration: modern tone
// placement, Telex typing.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		ToneRule: ToneRuleModern,
		Method:   0,
	}
}

func (c EngineConfig) modern() bool {
	return c.ToneRule == ToneRuleModern
}
