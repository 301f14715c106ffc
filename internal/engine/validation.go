package engine

import (
	"strings"
	"unicode"
)

// validInitials are the consonant clusters Vietnamese permits at the
// start of a syllable.
var validInitials = map[string]bool{
	"b": true, "c": true, "d": true, "đ": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,

	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,

	"ngh": true,
}

// validFinals are the consonants and semi-vowels Vietnamese permits to
// close a syllable.
var validFinals = map[string]bool{
	"c": true, "m": true, "n": true, "p": true, "t": true,
	"ch": true, "ng": true, "nh": true,
	"i": true, "y": true, "o": true, "u": true,
}

// spellingRules keys an onset+first-nucleus-vowel combination that
// Vietnamese orthography never spells that way (e.g. "ce" is always
// written "ke"). The value is unused by validateSyllable itself — it
// documents what the writer should have typed instead, the same way
// the reference table does.
var spellingRules = map[string]string{
	"ce": "ke", "ci": "ki", "cy": "ky",
	"ka": "ca", "ko": "co", "ku": "cu",
	"ge": "ghe",
	"nge": "nghe", "ngi": "nghi",
	"gha": "ga", "gho": "go", "ghu": "gu",
	"ngha": "nga", "ngho": "ngo", "nghu": "ngu",
}

// ValidationResult reports whether a syllable's onset/nucleus/coda
// split looks like well-formed Vietnamese, and which part failed if
// not. It is a diagnostic only: the engine never consults it to decide
// whether to transform a keystroke (spec.md's state machine has no
// such gate), but a host can use it to flag a composition that is
// probably not a real word — e.g. to dim the preedit or skip
// autocorrect.
type ValidationResult struct {
	Valid        bool
	Reason       string // "no_vowel", "invalid_initial", "invalid_final", "spelling_rule_violation", or "" when Valid
	HasVowel     bool
	InitialValid bool
	FinalValid   bool
	SpellingOK   bool
}

// ValidateSyllable splits the engine's current buffer into onset,
// nucleus and coda (by scanning for the run of runes the convention's
// attribute table marks as vowels) and reports whether that split
// matches a legal Vietnamese syllable shape.
func (e *Engine) ValidateSyllable() ValidationResult {
	onset, nucleus, coda := e.splitSyllable()
	return validateSyllable(onset, nucleus, coda)
}

// splitSyllable partitions the buffer into the consonant run before
// the first vowel, the run of vowels, and the consonant run after.
func (e *Engine) splitSyllable() (onset, nucleus, coda string) {
	n := e.buf.Len()
	i := 0
	for i < n && e.attrAt(i).VowelFamily == VowelNone {
		i++
	}
	onset = runesBetween(e.buf, 0, i)

	j := i
	for j < n && e.attrAt(j).VowelFamily != VowelNone {
		j++
	}
	nucleus = runesBetween(e.buf, i, j)
	coda = runesBetween(e.buf, j, n)
	return onset, nucleus, coda
}

func runesBetween(b *KeyBuffer, from, to int) string {
	var sb strings.Builder
	for i := from; i < to; i++ {
		sb.WriteRune(b.At(i))
	}
	return sb.String()
}

func validateSyllable(onset, nucleus, coda string) ValidationResult {
	result := ValidationResult{Valid: true}

	if nucleus == "" {
		result.Valid = false
		result.Reason = "no_vowel"
		return result
	}
	result.HasVowel = true

	if onset != "" {
		key := strings.ReplaceAll(strings.ToLower(onset), "đ", "d")
		if !validInitials[key] {
			result.Valid = false
			result.Reason = "invalid_initial"
			return result
		}
	}
	result.InitialValid = true

	if coda != "" {
		if !validFinals[strings.ToLower(coda)] {
			result.Valid = false
			result.Reason = "invalid_final"
			return result
		}
	}
	result.FinalValid = true

	if onset != "" && nucleus != "" {
		combined := strings.ToLower(onset) + string(unicode.ToLower([]rune(nucleus)[0]))
		if _, invalid := spellingRules[combined]; invalid {
			result.Valid = false
			result.Reason = "spelling_rule_violation"
			return result
		}
	}
	result.SpellingOK = true

	return result
}

// QuickValidate reports whether raw could plausibly be (or become, via
// further composition) a Vietnamese syllable: every rune must be a
// recognized Vietnamese letter or an in-flight trigger key, and at
// least one vowel-eligible rune must be present. Hosts can use this to
// cheaply skip heavier processing (diagnostics, spellcheck) on text
// that is obviously not Vietnamese.
func QuickValidate(raw string) bool {
	if raw == "" {
		return false
	}

	hasVowel := false
	for _, r := range raw {
		lower := unicode.ToLower(r)
		switch lower {
		case 's', 'f', 'r', 'x', 'j', 'w':
			continue
		}
		if !isVietnameseLetter(lower) {
			return false
		}
		if attr := sharedVowelAttrs[lower]; attr.VowelFamily != VowelNone {
			hasVowel = true
		}
	}
	if !hasVowel {
		for _, r := range raw {
			if unicode.ToLower(r) == 'w' {
				hasVowel = true
				break
			}
		}
	}
	return hasVowel
}

func isVietnameseLetter(r rune) bool {
	if attr, ok := sharedVowelAttrs[r]; ok && (attr.VowelFamily != VowelNone || attr.IsDBar) {
		return true
	}
	switch r {
	case 'b', 'c', 'd', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x':
		return true
	}
	return false
}
