package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func sendRunes(t *testing.T, m model, s string) model {
	t.Helper()
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		var ok bool
		m, ok = updated.(model)
		require.True(t, ok)
	}
	return m
}

func TestModel_ComposesVietnameseWord(t *testing.T) {
	m := newModel()
	m = sendRunes(t, m, "tooi")
	require.Equal(t, "tôi", m.committed)
}

func TestModel_BackspaceRemovesLastCommittedRune(t *testing.T) {
	m := newModel()
	m = sendRunes(t, m, "cha")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	var ok bool
	m, ok = updated.(model)
	require.True(t, ok)

	require.Equal(t, "ch", m.committed)
}

func TestModel_SpaceEndsComposition(t *testing.T) {
	m := newModel()
	m = sendRunes(t, m, "chaof")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	var ok bool
	m, ok = updated.(model)
	require.True(t, ok)

	require.Equal(t, "chào ", m.committed)
	require.Empty(t, m.engine.BufferSnapshot())
}

func TestModel_CtrlRResetsEngineBufferOnly(t *testing.T) {
	m := newModel()
	m = sendRunes(t, m, "vie")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	var ok bool
	m, ok = updated.(model)
	require.True(t, ok)

	require.Equal(t, "vie", m.committed, "committed text is the terminal's own history, untouched by an engine reset")
	require.Empty(t, m.engine.BufferSnapshot())
}

func TestModel_EscQuits(t *testing.T) {
	m := newModel()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	var ok bool
	m, ok = updated.(model)
	require.True(t, ok)

	require.True(t, m.quitting)
	require.NotNil(t, cmd)
}
