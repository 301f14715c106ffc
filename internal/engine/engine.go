package engine

import "unicode"

// Tuning constants ported from unikey_engine.rs: how far left of the
// caret a tone or modifier key is allowed to search.
const (
	maxAfterVowel    = 2
	maxVowelSequence = 3
	maxModifyLength  = 6
)

// backspaceRune is the codepoint Process expects for a backspace
// keystroke (spec.md §4.3's Backspace row).
const backspaceRune = '\b'

// Engine is a pure, single-threaded Vietnamese input-method
// transducer: it holds no OS handle, spawns no goroutine, and does no
// I/O. A host feeds it one rune at a time via Process and applies the
// returned EditInstruction to whatever text buffer it owns
// (spec.md §1, §5).
type Engine struct {
	cfg EngineConfig
	buf *KeyBuffer

	// tempDisabled latches Vietnamese composition off after an
	// escape (typing the same trigger twice undoes it) until the
	// next separator.
	tempDisabled bool
}

// NewEngine constructs an Engine for cfg. The only failure mode is an
// EngineConfig naming a Convention with no attribute table
// (spec.md §7.4).
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, buf: NewKeyBuffer()}, nil
}

// Convention reports the engine's current input convention.
func (e *Engine) Convention() Convention { return e.cfg.Convention }

// SetConvention switches the active input convention. The buffer is
// left as-is; callers that want a clean slate should call ResetBuffer.
func (e *Engine) SetConvention(c Convention) { e.cfg.Convention = c }

// VietnameseMode reports whether composition is currently active.
func (e *Engine) VietnameseMode() bool { return e.cfg.VietnameseMode }

// SetVietnameseMode turns composition on or off.
func (e *Engine) SetVietnameseMode(on bool) { e.cfg.VietnameseMode = on }

// ToggleVietnameseMode flips VietnameseMode and reports the new value.
func (e *Engine) ToggleVietnameseMode() bool {
	e.cfg.VietnameseMode = !e.cfg.VietnameseMode
	return e.cfg.VietnameseMode
}

// SetFreeMarking controls whether a tone/modifier key may reach back
// across consonants to find its target vowel.
func (e *Engine) SetFreeMarking(on bool) { e.cfg.FreeMarking = on }

// SetModernStyle controls the oa/oe/uy tone-placement convention.
func (e *Engine) SetModernStyle(on bool) { e.cfg.ModernStyle = on }

// SetToneNextToVowel forces tone placement onto the vowel directly
// before the tone key, bypassing the orthographic placement rules; a
// tone key that does not directly follow a vowel is not applied.
func (e *Engine) SetToneNextToVowel(on bool) { e.cfg.ToneNextToVowel = on }

// ResetBuffer clears the rolling key buffer and any latched escape
// state, without touching VietnameseMode or Convention.
func (e *Engine) ResetBuffer() {
	e.buf.Clear()
	e.tempDisabled = false
}

// BufferSnapshot returns the buffer's current contents, for diagnostic
// hosts (spec.md §6).
func (e *Engine) BufferSnapshot() string { return e.buf.Snapshot() }

func (e *Engine) attrAt(i int) CharAttr {
	return attrFor(e.cfg.Convention, e.buf.At(i))
}

// Process feeds one keystroke through the engine and returns the edit
// the host should apply. Process never returns an error: an
// unrecognized convention cannot occur here because NewEngine already
// validated it, and every other input degrades to a harmless
// pass-through (spec.md §4.1, §7).
func (e *Engine) Process(r rune) EditInstruction {
	isLower := unicode.IsLower(r)

	if !e.cfg.VietnameseMode {
		e.buf.Append(r, isLower)
		return passThrough(r)
	}

	if e.tempDisabled {
		return e.processTempDisabled(r, isLower)
	}

	if r == backspaceRune {
		e.buf.PopTail()
		return passThrough(r)
	}

	attr := attrFor(e.cfg.Convention, r)

	switch {
	case attr.IsSeparator:
		e.buf.Clear()
		return passThrough(r)

	case attr.ToneTrigger != ToneNone:
		if instr, ok := e.applyTone(r, isLower, attr.ToneTrigger); ok {
			return instr
		}

	case attr.ModifierTrigger == ModifierBreveOrHorn:
		if instr, ok := e.applyBreveHorn(r, isLower); ok {
			return instr
		}

	case attr.ModifierTrigger != ModifierNone:
		if instr, ok := e.applyVniModifier(r, isLower, attr.ModifierTrigger); ok {
			return instr
		}

	case attr.IsDoubleChar:
		if instr, ok := e.applyDouble(r, isLower); ok {
			return instr
		}

	case attr.IsShortcut:
		if instr, ok := e.applyShortcut(r, isLower); ok {
			return instr
		}
	}

	e.buf.Append(r, isLower)
	return passThrough(r)
}

// processTempDisabled implements the latch spec.md §4.3 describes:
// while temp-disabled, every key passes through unchanged; the next
// separator clears both the latch and the buffer.
func (e *Engine) processTempDisabled(r rune, isLower bool) EditInstruction {
	switch {
	case r == backspaceRune:
		e.buf.PopTail()
	case attrFor(e.cfg.Convention, r).IsSeparator:
		e.tempDisabled = false
		e.buf.Clear()
	default:
		e.buf.Append(r, isLower)
	}
	return passThrough(r)
}

// applyTone ports put_tone_mark: finds the vowel (or vowel cluster) a
// tone key targets, and either sets the tone or, if the vowel already
// carries that exact tone, removes it (the typed-twice escape).
func (e *Engine) applyTone(r rune, isLower bool, tone ToneSlot) (EditInstruction, bool) {
	n := e.buf.Len()
	if n == 0 {
		return EditInstruction{}, false
	}

	i := n - 1
	leftMost := 0
	if e.cfg.ToneNextToVowel || !e.cfg.FreeMarking {
		leftMost = i
	}
	if lm := n - 1 - maxAfterVowel; lm > leftMost {
		leftMost = lm
	}

	for i >= leftMost {
		a := e.attrAt(i)
		if a.IsSeparator || a.IsSoftSep || a.VowelFamily != VowelNone {
			break
		}
		i--
	}
	if i < leftMost {
		return EditInstruction{}, false
	}
	if e.attrAt(i).VowelFamily == VowelNone {
		return EditInstruction{}, false
	}

	endPos := i
	leftMost2 := 0
	if e.cfg.ToneNextToVowel {
		leftMost2 = i
	}
	if lm := endPos - maxVowelSequence + 1; lm > leftMost2 {
		leftMost2 = lm
	}

	runStart := endPos
	for i >= leftMost2 {
		a := e.attrAt(i)
		if a.VowelFamily == VowelNone {
			break
		}
		runStart = i
		if isPrecomposedVowel(e.buf.At(i)) {
			break
		}
		i--
	}

	seqLen := endPos - runStart + 1
	var targetPos int
	switch seqLen {
	case 2:
		targetPos = e.resolveTwoVowelTonePos(runStart-1, endPos)
	case 3:
		targetPos = endPos - 1
	default:
		targetPos = endPos
	}

	vowelChar := e.buf.At(targetPos)
	attrTarget := e.attrAt(targetPos)
	if attrTarget.VowelFamily == VowelNone {
		return EditInstruction{}, false
	}

	if attrTarget.CurrentTone == tone {
		base := baseVowelOf(vowelChar)
		backs := n - targetPos
		e.buf.ReplaceAt(targetPos, base)
		tail := e.buf.TailFrom(targetPos)
		e.buf.Append(r, isLower)
		e.tempDisabled = true
		return replace(backs, tail+string(r)), true
	}

	newChar := withTone(attrTarget.VowelFamily, tone, vowelChar)
	backs := n - targetPos
	e.buf.ReplaceAt(targetPos, newChar)
	tail := e.buf.TailFrom(targetPos)
	return replace(backs, tail), true
}

// resolveTwoVowelTonePos ports the oa/oe/uy and qu/gi special cases
// from put_tone_mark for a two-vowel run spanning [runStart, endPos].
// before is the buffer index just left of the run (-1 if none).
func (e *Engine) resolveTwoVowelTonePos(before, endPos int) int {
	runStart := endPos - 1

	if before >= 0 {
		prev := unicode.ToUpper(e.buf.At(before))
		if prev == 'Q' {
			return endPos
		}
		if prev == 'G' && before+1 < e.buf.Len() && unicode.ToUpper(e.buf.At(before+1)) == 'I' {
			return endPos
		}
	}

	if !e.cfg.ModernStyle {
		return runStart
	}

	v1 := unicode.ToLower(e.buf.At(runStart))
	v2 := unicode.ToLower(e.buf.At(endPos))
	if (v1 == 'o' && v2 == 'a') || (v1 == 'o' && v2 == 'e') || (v1 == 'u' && v2 == 'y') {
		return endPos
	}

	if before < 0 {
		return runStart
	}
	if e.buf.Len() > endPos+1 {
		return endPos
	}
	return runStart
}

func isPrecomposedVowel(r rune) bool {
	return r > unicode.MaxASCII && unicode.IsLetter(r)
}

// scanAndApplyVowelModifier implements the shared shape of
// put_breve_mark: walk left over consonants looking for a vowel that
// resolve can retarget, apply it (or undo on a repeat), and otherwise
// report no change. allowUOCompound additionally extends a horn onto
// a preceding 'u' when the target lands on 'o' (the ươ cluster, as in
// "được").
func (e *Engine) scanAndApplyVowelModifier(r rune, isLower bool, resolve func(baseLower rune) (rune, bool), allowUOCompound bool) (EditInstruction, bool) {
	n := e.buf.Len()
	if n == 0 {
		return EditInstruction{}, false
	}

	leftMost := 0
	if !e.cfg.FreeMarking {
		leftMost = n - 1
	}
	if lm := n - maxModifyLength; lm > leftMost {
		leftMost = lm
	}

	for i := n - 1; i >= leftMost; i-- {
		c := e.buf.At(i)
		a := e.attrAt(i)

		if a.VowelFamily != VowelNone {
			letter, _ := familyLetterOf(a.VowelFamily)
			target, ok := resolve(letter)
			if !ok {
				continue
			}
			if unicode.IsUpper(c) {
				target = unicode.ToUpper(target)
			}

			if c == target {
				plain := letter
				if unicode.IsUpper(c) {
					plain = unicode.ToUpper(plain)
				}
				backs := n - i
				e.buf.ReplaceAt(i, plain)
				tail := e.buf.TailFrom(i)
				e.buf.Append(r, isLower)
				e.tempDisabled = true
				return replace(backs, tail+string(r)), true
			}

			start := i
			if allowUOCompound && unicode.ToLower(target) == 'ơ' && i-1 >= leftMost {
				pc := e.buf.At(i - 1)
				pa := e.attrAt(i - 1)
				puLetter, _ := familyLetterOf(pa.VowelFamily)
				if puLetter == 'u' && unicode.ToLower(pc) != 'ư' {
					uTarget := rune('ư')
					if unicode.IsUpper(pc) {
						uTarget = 'Ư'
					}
					if pa.CurrentTone != ToneNone {
						fam, _, _ := toneOf(uTarget)
						uTarget = withTone(fam, pa.CurrentTone, uTarget)
					}
					e.buf.ReplaceAt(i-1, uTarget)
					start = i - 1
				}
			}

			newChar := target
			if a.CurrentTone != ToneNone {
				fam, _, _ := toneOf(target)
				newChar = withTone(fam, a.CurrentTone, target)
			}
			e.buf.ReplaceAt(i, newChar)
			backs := n - start
			tail := e.buf.TailFrom(start)
			return replace(backs, tail), true
		}

		if a.IsSeparator || a.IsSoftSep {
			break
		}
	}

	return EditInstruction{}, false
}

// applyBreveHorn handles Telex's w key: a multi-purpose trigger that
// places a breve on a, a horn on o/u, or — if no eligible vowel is in
// range — falls back to the stand-alone ư shortcut.
func (e *Engine) applyBreveHorn(r rune, isLower bool) (EditInstruction, bool) {
	resolve := func(baseLower rune) (rune, bool) {
		switch baseLower {
		case 'a':
			return 'ă', true
		case 'o':
			return 'ơ', true
		case 'u':
			return 'ư', true
		}
		return 0, false
	}

	if instr, ok := e.scanAndApplyVowelModifier(r, isLower, resolve, true); ok {
		return instr, true
	}

	return e.applyShortcut(r, isLower)
}

// vniModifierTarget resolves the vowel a VNI modifier digit produces
// for a given base vowel, grounded on the teacher's vni.go.
func vniModifierTarget(kind ModifierKind, baseLower rune) (rune, bool) {
	switch kind {
	case ModifierCircumflex:
		switch baseLower {
		case 'a':
			return 'â', true
		case 'e':
			return 'ê', true
		case 'o':
			return 'ô', true
		}
	case ModifierHorn:
		switch baseLower {
		case 'o':
			return 'ơ', true
		case 'u':
			return 'ư', true
		}
	case ModifierBreve:
		if baseLower == 'a' {
			return 'ă', true
		}
	}
	return 0, false
}

// applyVniModifier handles VNI's four modifier digits (6-9): three
// are vowel retargeting, ported through the same scan as Telex's w;
// the fourth (9, stroke) targets a consonant and is handled separately.
func (e *Engine) applyVniModifier(r rune, isLower bool, kind ModifierKind) (EditInstruction, bool) {
	if kind == ModifierStroke {
		return e.applyStroke(r, isLower)
	}
	resolve := func(baseLower rune) (rune, bool) {
		return vniModifierTarget(kind, baseLower)
	}
	return e.scanAndApplyVowelModifier(r, isLower, resolve, kind == ModifierHorn)
}

// applyStroke handles VNI's 9 key: it targets the nearest d/D, not a
// vowel, turning it into đ/Đ (or undoing a second press).
func (e *Engine) applyStroke(r rune, isLower bool) (EditInstruction, bool) {
	n := e.buf.Len()
	if n == 0 {
		return EditInstruction{}, false
	}

	leftMost := 0
	if !e.cfg.FreeMarking {
		leftMost = n - 1
	}
	if lm := n - maxModifyLength; lm > leftMost {
		leftMost = lm
	}

	for i := n - 1; i >= leftMost; i-- {
		c := e.buf.At(i)
		a := e.attrAt(i)

		switch c {
		case 'd', 'D':
			target := rune('đ')
			if c == 'D' {
				target = 'Đ'
			}
			backs := n - i
			e.buf.ReplaceAt(i, target)
			tail := e.buf.TailFrom(i)
			return replace(backs, tail), true

		case 'đ', 'Đ':
			base := rune('d')
			if c == 'Đ' {
				base = 'D'
			}
			backs := n - i
			e.buf.ReplaceAt(i, base)
			tail := e.buf.TailFrom(i)
			e.buf.Append(r, isLower)
			e.tempDisabled = true
			return replace(backs, tail+string(r)), true
		}

		if a.IsSeparator || a.IsSoftSep {
			break
		}
	}

	return EditInstruction{}, false
}

// doublePlainBase reports the plain ASCII letter a double-letter
// keystroke targets (a, e, o or d), matching both that plain letter
// and its already-transformed circumflex/stroke form.
func doublePlainBase(r rune) (rune, bool) {
	var plain rune
	switch unicode.ToLower(r) {
	case 'a', 'â':
		plain = 'a'
	case 'e', 'ê':
		plain = 'e'
	case 'o', 'ô':
		plain = 'o'
	case 'd', 'đ':
		plain = 'd'
	default:
		return 0, false
	}
	if unicode.IsUpper(r) {
		return unicode.ToUpper(plain), true
	}
	return plain, true
}

// applyDouble ports double_char: repeating a, e, o or d produces the
// circumflex/stroke form; repeating it a third time undoes it.
func (e *Engine) applyDouble(r rune, isLower bool) (EditInstruction, bool) {
	n := e.buf.Len()
	if n == 0 {
		return EditInstruction{}, false
	}

	last := e.buf.At(n - 1)
	lastPlain, ok := doublePlainBase(last)
	if !ok || unicode.ToLower(lastPlain) != unicode.ToLower(r) {
		return EditInstruction{}, false
	}

	key := unicode.ToLower(r)
	if !isLower {
		key = unicode.ToUpper(key)
	}
	target, ok := circumflexStrokeTable[key]
	if !ok {
		return EditInstruction{}, false
	}

	if unicode.ToLower(last) == unicode.ToLower(target) {
		original := unicode.ToLower(r)
		if !isLower {
			original = unicode.ToUpper(original)
		}
		e.buf.ReplaceAt(n-1, original)
		e.buf.Append(r, isLower)
		e.tempDisabled = true
		return replace(1, string(original)+string(r)), true
	}

	e.buf.ReplaceAt(n-1, target)
	return replace(1, string(target)), true
}

// applyShortcut handles the stand-alone macros [, ], w and W
// (spec.md §4.7): the first press inserts a fresh ơ/ư, a second press
// in a row undoes it.
func (e *Engine) applyShortcut(r rune, isLower bool) (EditInstruction, bool) {
	target, ok := shortcutTable[r]
	if !ok {
		return EditInstruction{}, false
	}

	n := e.buf.Len()
	if n > 0 && e.buf.At(n-1) == target {
		e.buf.ReplaceAt(n-1, r)
		e.tempDisabled = true
		return replace(1, string(r)), true
	}

	e.buf.Append(target, isLower)
	return emit(string(target)), true
}
