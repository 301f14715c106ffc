package main

// X11 keysym values the daemon needs to recognize, adapted from the
// teacher's engine/types.go constants — moved here because the engine
// package itself takes runes, not keysyms (spec.md §5: the engine is
// substrate-agnostic).
const (
	keysymBackspace uint32 = 0xff08
	keysymReturn    uint32 = 0xff0d
	keysymEscape    uint32 = 0xff1b
	keysymSpace     uint32 = 0x0020
	keysymTab       uint32 = 0xff09
	keysymDelete    uint32 = 0xffff
)

// Modifier flags, same bit layout as the teacher's ModShift/ModControl/ModMod1.
const (
	modShift   uint32 = 1 << 0
	modLock    uint32 = 1 << 1
	modControl uint32 = 1 << 2
	modMod1    uint32 = 1 << 3
)

// keysymToRune converts an X11 keysym to the rune Process expects.
// Non-printable keysyms with no rune representation return 0, false.
func keysymToRune(keysym uint32) (rune, bool) {
	switch keysym {
	case keysymBackspace:
		return '\b', true
	}

	// ASCII printable range.
	if keysym >= 0x0020 && keysym <= 0x007e {
		return rune(keysym), true
	}

	// Latin-1 supplement.
	if keysym >= 0x00a0 && keysym <= 0x00ff {
		return rune(keysym), true
	}

	// Unicode keysyms encode the codepoint offset by 0x01000000.
	if keysym >= 0x01000000 && keysym <= 0x0110ffff {
		return rune(keysym - 0x01000000), true
	}

	return 0, false
}

// keyLabel renders a keysym for the log line, naming the common
// non-printable keys the teacher's main.go special-cased individually.
func keyLabel(keysym uint32, r rune, ok bool) string {
	if ok {
		return string(r)
	}
	switch keysym {
	case keysymBackspace:
		return "Backspace"
	case keysymSpace:
		return "Space"
	case keysymReturn:
		return "Enter"
	case keysymTab:
		return "Tab"
	case keysymEscape:
		return "Esc"
	case keysymDelete:
		return "Delete"
	case 0xff51:
		return "Left"
	case 0xff52:
		return "Up"
	case 0xff53:
		return "Right"
	case 0xff54:
		return "Down"
	case 0xff50:
		return "Home"
	case 0xff57:
		return "End"
	case 0xff55:
		return "PgUp"
	case 0xff56:
		return "PgDn"
	}
	return ""
}

func modifierLabel(modifiers uint32) string {
	label := ""
	if modifiers&modShift != 0 {
		label += "Shift+"
	}
	if modifiers&modControl != 0 {
		label += "Ctrl+"
	}
	if modifiers&modMod1 != 0 {
		label += "Alt+"
	}
	return label
}
