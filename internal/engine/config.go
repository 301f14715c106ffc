package engine

import "fmt"

// EngineConfig holds the configuration values an Engine is
// constructed with (spec.md §3/§6). Unlike the teacher's
// ConfiguredEngine, which acquired a shared, mutex-guarded config
// object per keypress, the engine here receives configuration by
// value at construction time and exposes explicit mutators — it is a
// single-threaded transducer, so synchronization is the host's
// concern, not the engine's (spec.md §9).
type EngineConfig struct {
	// Convention selects Telex, VNI, or VIQR trigger encoding.
	Convention Convention

	// VietnameseMode, when false, makes every keypress pass through
	// unchanged.
	VietnameseMode bool

	// FreeMarking allows a tone or modifier key to target any vowel
	// in the current word, not just the one immediately preceding.
	FreeMarking bool

	// ModernStyle toggles the modern tone-placement rule for the
	// diphthongs oa, oe, uy.
	ModernStyle bool

	// ToneNextToVowel forces the tone onto the vowel directly before
	// the tone key regardless of orthographic convention; a tone key
	// that does not directly follow a vowel is not applied.
	ToneNextToVowel bool
}

// DefaultConfig returns the engine's default configuration: Telex,
// Vietnamese mode on, free marking on, traditional tone placement.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		Convention:      ConventionTelex,
		VietnameseMode:  true,
		FreeMarking:     true,
		ModernStyle:     false,
		ToneNextToVowel: false,
	}
}

// validate reports a misconfiguration error for a convention with no
// attribute table (spec.md §7.4) — the only way engine construction
// can fail.
func (c EngineConfig) validate() error {
	if _, ok := attrTables[c.Convention]; !ok {
		return fmt.Errorf("engine: convention %v has no attribute table", c.Convention)
	}
	return nil
}
