package engine

import "unicode"

// toneTable[family][tone] is the precomposed rune for a lowercase
// vowel family at a given tone slot; tone index ToneNone yields the
// bare base vowel. Mirrors the BD table in unikey_engine.rs, indexed
// by the same 1-12 family numbering as spec.md §3.
var toneTable = map[VowelFamily][6]rune{
	VowelA:      {'a', 'á', 'à', 'ả', 'ã', 'ạ'},
	VowelAHat:   {'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	VowelABreve: {'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	VowelE:      {'e', 'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	VowelEHat:   {'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ'},
	VowelI:      {'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	VowelO:      {'o', 'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	VowelOHat:   {'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	VowelOHorn:  {'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	VowelU:      {'u', 'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	VowelUHorn:  {'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	VowelY:      {'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
}

// circumflexStrokeTable implements the BK table: doubling a base
// letter produces its circumflex/stroke form.
var circumflexStrokeTable = map[rune]rune{
	'a': 'â', 'A': 'Â',
	'e': 'ê', 'E': 'Ê',
	'o': 'ô', 'O': 'Ô',
	'd': 'đ', 'D': 'Đ',
}

// breveHornTable implements the BW table: the breve/horn trigger
// applied to a base vowel.
var breveHornTable = map[rune]rune{
	'a': 'ă', 'A': 'Ă',
	'o': 'ơ', 'O': 'Ơ',
	'u': 'ư', 'U': 'Ư',
}

// shortcutTable implements the BT table for the stand-alone shortcuts
// of spec.md §4.7.
var shortcutTable = map[rune]rune{
	'[': 'ơ', ']': 'Ơ',
	'w': 'ư', 'W': 'Ư',
}

// toneOf reports the (family, tone) pair a precomposed rune encodes,
// and the family for an unmarked base vowel.
func toneOf(r rune) (VowelFamily, ToneSlot, bool) {
	for family, tones := range toneTable {
		for tone, c := range tones {
			if c == r {
				return family, ToneSlot(tone), true
			}
		}
	}
	return VowelNone, ToneNone, false
}

// baseVowelOf returns the unmarked (tone-stripped) form of r, preserving case.
func baseVowelOf(r rune) rune {
	family, _, ok := toneOf(r)
	if !ok {
		return r
	}
	base := toneTable[family][ToneNone]
	if unicode.IsUpper(r) {
		return unicode.ToUpper(base)
	}
	return base
}

// withTone returns the precomposed rune for family at the given tone,
// in the same case as like.
func withTone(family VowelFamily, tone ToneSlot, like rune) rune {
	row, ok := toneTable[family]
	if !ok {
		return like
	}
	result := row[tone]
	if unicode.IsUpper(like) {
		return unicode.ToUpper(result)
	}
	return result
}

// sharedVowelAttrs is the convention-independent half of the
// attribute table: every recognized vowel (base and precomposed),
// plus đ/Đ. It is built once and copied into each convention's table.
var sharedVowelAttrs = buildSharedVowelAttrs()

func buildSharedVowelAttrs() map[rune]CharAttr {
	m := make(map[rune]CharAttr, 128)

	bases := []struct {
		lower, upper rune
		family       VowelFamily
	}{
		{'a', 'A', VowelA},
		{'â', 'Â', VowelAHat},
		{'ă', 'Ă', VowelABreve},
		{'e', 'E', VowelE},
		{'ê', 'Ê', VowelEHat},
		{'i', 'I', VowelI},
		{'o', 'O', VowelO},
		{'ô', 'Ô', VowelOHat},
		{'ơ', 'Ơ', VowelOHorn},
		{'u', 'U', VowelU},
		{'ư', 'Ư', VowelUHorn},
		{'y', 'Y', VowelY},
	}

	for _, b := range bases {
		for tone := ToneNone; tone <= ToneDot; tone++ {
			lower := toneTable[b.family][tone]
			upper := unicode.ToUpper(lower)
			m[lower] = CharAttr{VowelFamily: b.family, CurrentTone: tone}
			m[upper] = CharAttr{VowelFamily: b.family, CurrentTone: tone}
		}
	}

	// a, e, o, d (and their precomposed circumflex/stroke forms) can
	// be produced by a double-letter keystroke.
	for _, r := range []rune{'a', 'A', 'e', 'E', 'o', 'O', 'd', 'D'} {
		attr := m[r]
		attr.IsDoubleChar = true
		m[r] = attr
	}

	m['đ'] = CharAttr{IsDBar: true}
	m['Đ'] = CharAttr{IsDBar: true}

	return m
}

// familyLetterOf returns the plain ASCII letter a vowel family is a
// modified form of — â, ă and a all share 'a', for instance. Breve,
// horn and circumflex triggers resolve their target by this root
// letter rather than by the vowel's current (possibly already
// modified) form, so a second trigger can switch modifiers instead of
// only ever applying to an untouched base vowel.
func familyLetterOf(fam VowelFamily) (rune, bool) {
	switch fam {
	case VowelA, VowelAHat, VowelABreve:
		return 'a', true
	case VowelE, VowelEHat:
		return 'e', true
	case VowelI:
		return 'i', true
	case VowelO, VowelOHat, VowelOHorn:
		return 'o', true
	case VowelU, VowelUHorn:
		return 'u', true
	case VowelY:
		return 'y', true
	}
	return 0, false
}

// cloneSharedVowelAttrs returns a fresh copy of sharedVowelAttrs so a
// convention table can be built without mutating the shared base.
func cloneSharedVowelAttrs() map[rune]CharAttr {
	m := make(map[rune]CharAttr, len(sharedVowelAttrs))
	for r, a := range sharedVowelAttrs {
		m[r] = a
	}
	return m
}

// asciiSeparators omits '[' and ']' on purpose: unikey_engine.rs lists
// them as separators, but both conventions also bind them as the ơ/Ơ
// bracket shortcut (buildTelexAttrs/buildVniAttrs set IsShortcut on
// them). Keeping them as separators would make the shortcut
// unreachable — every '[' or ']' would flush the buffer before the
// shortcut table ever saw it.
var asciiSeparators = []rune{
	' ', '\n', '\r', '\t',
	'.', ',', ';', ':', '!', '?',
	'(', ')', '{', '}', '<', '>', '/', '\\',
	'"', '\'', '-', '_', '+', '=', '@', '#', '$', '%',
	'^', '&', '*', '|', '`', '~',
}

var digitSeparators = []rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// attrTables caches the fully built, convention-specific attribute
// table for each Convention. Built once at package init and shared
// read-only across every Engine instance, per spec.md §5.
var attrTables = map[Convention]map[rune]CharAttr{
	ConventionTelex: buildTelexAttrs(),
	ConventionVni:   buildVniAttrs(),
	ConventionViqr:  buildViqrAttrs(),
}

// attrFor looks up the attribute record for r under convention. An
// unrecognized rune degrades to the zero CharAttr: opaque pass-through
// letter that still occupies a buffer slot.
func attrFor(convention Convention, r rune) CharAttr {
	table, ok := attrTables[convention]
	if !ok {
		return CharAttr{}
	}
	return table[r]
}
