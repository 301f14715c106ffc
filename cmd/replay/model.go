package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tranminh/goviet-ime/internal/engine"
)

// model is a second, independent host for internal/engine: instead of
// a D-Bus service watching X11 keysyms, it is a terminal program
// reading bubbletea key messages. It exists to exercise spec.md §1's
// claim that the engine can be hosted by any keyboard-capture
// substrate, not just the daemon's.
type model struct {
	engine    *engine.Engine
	committed string
	quitting  bool
}

func newModel() model {
	e, err := engine.NewEngine(engine.DefaultConfig())
	if err != nil {
		panic(err)
	}
	return model{engine: e}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlR:
		m.engine.ResetBuffer()
		return m, nil

	case tea.KeyBackspace:
		m.engine.Process('\b')
		m.committed = popRune(m.committed)
		return m, nil

	case tea.KeySpace:
		m.applyInstruction(m.engine.Process(' '))
		return m, nil

	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.applyInstruction(m.engine.Process(r))
		}
		return m, nil
	}
	return m, nil
}

// applyInstruction is the terminal host's implementation of the
// engine-to-host contract: PassThrough appends the raw codepoint,
// Emit appends text with no deletion, Replace deletes backspaces
// characters from the committed line before appending text.
func (m *model) applyInstruction(instr engine.EditInstruction) {
	switch instr.Kind {
	case engine.KindPassThrough:
		m.committed += string(instr.Codepoint)
	case engine.KindEmit:
		m.committed += instr.Text
	case engine.KindReplace:
		for i := 0; i < instr.Backspaces; i++ {
			m.committed = popRune(m.committed)
		}
		m.committed += instr.Text
	}
}

func popRune(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

func (m model) View() string {
	if m.quitting {
		return "bye\n"
	}
	var b strings.Builder
	b.WriteString("goviet-ime replay — type to compose, Ctrl+R reset, Esc/Ctrl+C quit\n\n")
	b.WriteString(fmt.Sprintf("convention: %s\n", m.engine.Convention()))
	b.WriteString(fmt.Sprintf("> %s\n", m.committed))

	if preedit := m.engine.BufferSnapshot(); preedit != "" {
		if !m.engine.ValidateSyllable().Valid {
			b.WriteString(fmt.Sprintf("  (%q does not look like a Vietnamese syllable)\n", preedit))
		}
	}
	return b.String()
}
