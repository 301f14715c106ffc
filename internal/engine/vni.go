package engine

// VNI tone-mark trigger keys: digits 1-5.
var vniToneTriggers = map[rune]ToneSlot{
	'1': ToneAcute,
	'2': ToneGrave,
	'3': ToneHook,
	'4': ToneTilde,
	'5': ToneDot,
}

// VNI vowel-modifier trigger keys: 6 circumflex, 7 horn, 8 breve, 9 stroke.
var vniModifierTriggers = map[rune]ModifierKind{
	'6': ModifierCircumflex,
	'7': ModifierHorn,
	'8': ModifierBreve,
	'9': ModifierStroke,
}

// buildVniAttrs returns the full attribute table for VNI. Per
// spec.md §9's open question, digits carry meaning under VNI and are
// therefore NOT separators (the original Rust source registers every
// digit as a separator unconditionally, which would make VNI tone
// digits unusable — this spec explicitly overrides that ambiguity).
// Digit '0' has no assigned meaning in either convention and remains
// a separator.
func buildVniAttrs() map[rune]CharAttr {
	m := cloneSharedVowelAttrs()

	for r, tone := range vniToneTriggers {
		attr := m[r]
		attr.ToneTrigger = tone
		m[r] = attr
	}

	for r, mod := range vniModifierTriggers {
		attr := m[r]
		attr.ModifierTrigger = mod
		m[r] = attr
	}

	for _, r := range []rune{'[', ']', 'w', 'W'} {
		attr := m[r]
		attr.IsShortcut = true
		m[r] = attr
	}

	for _, r := range asciiSeparators {
		attr := m[r]
		attr.IsSeparator = true
		m[r] = attr
	}

	attr0 := m['0']
	attr0.IsSeparator = true
	m['0'] = attr0

	return m
}
