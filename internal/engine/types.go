// Package engine implements the Vietnamese input-method transducer: a
// stateful machine that turns a stream of ASCII keypresses into
// precomposed Vietnamese Unicode text under the Telex or VNI keying
// conventions.
//
// The engine never touches the operating system, never spawns a
// goroutine, and performs no I/O. A host (see cmd/daemon and
// cmd/replay) owns the keyboard, feeds codepoints to Process, and
// applies the returned EditInstruction to whatever is focused.
package engine

// Convention selects how non-alphabetic tone/vowel intent is encoded
// in the incoming ASCII stream.
type Convention int

const (
	// ConventionTelex encodes diacritics with extra Latin letters:
	// aa->â, aw->ă, trailing s/f/r/x/j for tones.
	ConventionTelex Convention = iota
	// ConventionVni encodes diacritics with digits: a6->â, a8->ă,
	// trailing 1-5 for tones.
	ConventionVni
	// ConventionViqr is carried from the original source as a
	// recognized but minimally-tabled convention (see SPEC_FULL.md).
	ConventionViqr
)

// String returns the convention's canonical name.
func (c Convention) String() string {
	switch c {
	case ConventionTelex:
		return "Telex"
	case ConventionVni:
		return "VNI"
	case ConventionViqr:
		return "VIQR"
	default:
		return "unknown"
	}
}

// ToneSlot is one of the six tone positions a vowel can carry.
type ToneSlot int

const (
	ToneNone  ToneSlot = iota // thanh ngang, unmarked
	ToneAcute                 // sắc (á)
	ToneGrave                 // huyền (à)
	ToneHook                  // hỏi (ả)
	ToneTilde                 // ngã (ã)
	ToneDot                   // nặng (ạ)
)

// VowelFamily identifies one of the 12 Vietnamese vowel equivalence
// classes. 0 means "not a vowel".
type VowelFamily int

const (
	VowelNone   VowelFamily = iota
	VowelA                  // a
	VowelAHat               // â
	VowelABreve             // ă
	VowelE                  // e
	VowelEHat               // ê
	VowelI                  // i
	VowelO                  // o
	VowelOHat               // ô
	VowelOHorn              // ơ
	VowelU                  // u
	VowelUHorn              // ư
	VowelY                  // y
)

// ModifierKind distinguishes the vowel-modifying (non-tone) triggers:
// Telex's single 'w' key covers both breve and horn depending on the
// target vowel, while VNI spreads circumflex/horn/breve/stroke across
// four distinct digit keys.
type ModifierKind int

const (
	ModifierNone ModifierKind = iota
	// ModifierBreveOrHorn is Telex 'w': a->ă, o->ơ, u->ư.
	ModifierBreveOrHorn
	// ModifierCircumflex is VNI '6': a->â, e->ê, o->ô.
	ModifierCircumflex
	// ModifierHorn is VNI '7': o->ơ, u->ư.
	ModifierHorn
	// ModifierBreve is VNI '8': a->ă.
	ModifierBreve
	// ModifierStroke is VNI '9': d->đ.
	ModifierStroke
)

// CharAttr is the per-codepoint attribute record described in
// spec.md §3/§4.1.
type CharAttr struct {
	VowelFamily     VowelFamily
	CurrentTone     ToneSlot // tone already borne by this exact rune
	ToneTrigger     ToneSlot // tone slot this key selects, or ToneNone
	ModifierTrigger ModifierKind
	IsDoubleChar    bool // the letter this rune lower-cases to can be doubled
	IsDBar          bool // this rune is đ/Đ itself (vowel_family=0, recognized for undo)
	IsSeparator     bool
	IsSoftSep       bool
	IsShortcut      bool // stand-alone macro key: [, ], w, W (spec.md §4.7)
}

// InstructionKind discriminates the variants of EditInstruction.
type InstructionKind int

const (
	// KindPassThrough: let the host deliver the codepoint unchanged.
	KindPassThrough InstructionKind = iota
	// KindEmit: insert Text with no prior deletion.
	KindEmit
	// KindReplace: delete Backspaces characters, then insert Text.
	KindReplace
)

// EditInstruction is the engine's sole output type. Every call to
// Process returns exactly one of these three shapes.
type EditInstruction struct {
	Kind       InstructionKind
	Codepoint  rune   // valid when Kind == KindPassThrough
	Text       string // valid when Kind == KindEmit or KindReplace
	Backspaces int    // valid when Kind == KindReplace
}

func passThrough(r rune) EditInstruction {
	return EditInstruction{Kind: KindPassThrough, Codepoint: r}
}

func emit(text string) EditInstruction {
	return EditInstruction{Kind: KindEmit, Text: text}
}

func replace(backspaces int, text string) EditInstruction {
	return EditInstruction{Kind: KindReplace, Backspaces: backspaces, Text: text}
}
