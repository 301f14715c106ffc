package engine

// Telex tone-mark trigger keys: s f r x j.
var telexToneTriggers = map[rune]ToneSlot{
	's': ToneAcute, 'S': ToneAcute,
	'f': ToneGrave, 'F': ToneGrave,
	'r': ToneHook, 'R': ToneHook,
	'x': ToneTilde, 'X': ToneTilde,
	'j': ToneDot, 'J': ToneDot,
}

// buildTelexAttrs returns the full attribute table for Telex: the
// shared vowel/double-char attributes, plus Telex's tone triggers,
// breve/horn trigger (w/W), and separators (digits included — Telex
// has no use for them).
func buildTelexAttrs() map[rune]CharAttr {
	m := cloneSharedVowelAttrs()

	for r, tone := range telexToneTriggers {
		attr := m[r]
		attr.ToneTrigger = tone
		m[r] = attr
	}

	for _, r := range []rune{'w', 'W'} {
		attr := m[r]
		attr.ModifierTrigger = ModifierBreveOrHorn
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
	for _, r := range digitSeparators {
		attr := m[r]
		attr.IsSeparator = true
		m[r] = attr
	}

	return m
}
