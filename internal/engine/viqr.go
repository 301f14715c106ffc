package engine

// buildViqrAttrs returns the VIQR attribute table. original_source's
// unikey_engine.rs models InputMethod::Viqr as a recognized enum
// variant with a lone EscapeKey category for '\\', but never wires a
// tone/vowel-modifier table for it — VIQR was left stubbed in the
// source this spec was distilled from. We carry that state forward
// rather than inventing VIQR tone tables spec.md does not ask for:
// an engine running under ConventionViqr recognizes separators, marks
// the '\\' escape key as a soft separator, keeps the shared a/e/o/d
// double-letter transforms and the [, ], w, W shortcuts, and has no
// tone or breve/horn triggers.
func buildViqrAttrs() map[rune]CharAttr {
	m := cloneSharedVowelAttrs()

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

	attr := m['\\']
	attr.IsSoftSep = true
	m['\\'] = attr

	for _, r := range []rune{'[', ']', 'w', 'W'} {
		a := m[r]
		a.IsShortcut = true
		m[r] = a
	}

	return m
}
