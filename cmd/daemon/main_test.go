package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tranminh/goviet-ime/internal/engine"
)

func newTestInputEngine(t *testing.T) *InputEngine {
	t.Helper()
	e, err := NewInputEngine(zerolog.Nop())
	require.NoError(t, err)
	return e
}

func processAll(t *testing.T, e *InputEngine, s string) {
	t.Helper()
	for _, r := range s {
		_, _, _, dbusErr := e.ProcessKey(uint32(r), 0)
		require.Nil(t, dbusErr)
	}
}

func TestInputEngine_ProcessKey_PlainLetterPassesThrough(t *testing.T) {
	e := newTestInputEngine(t)

	handled, backspaces, text, dbusErr := e.ProcessKey(uint32('t'), 0)
	require.Nil(t, dbusErr)
	require.False(t, handled)
	require.Zero(t, backspaces)
	require.Empty(t, text)
}

func TestInputEngine_ProcessKey_ToneMarkReplacesTail(t *testing.T) {
	e := newTestInputEngine(t)

	processAll(t, e, "a")
	handled, backspaces, text, dbusErr := e.ProcessKey(uint32('s'), 0)
	require.Nil(t, dbusErr)
	require.True(t, handled)
	require.Equal(t, int32(1), backspaces)
	require.Equal(t, "á", text)
}

func TestInputEngine_ProcessKey_StandaloneShortcutEmits(t *testing.T) {
	e := newTestInputEngine(t)

	handled, backspaces, text, dbusErr := e.ProcessKey(uint32('['), 0)
	require.Nil(t, dbusErr)
	require.True(t, handled)
	require.Zero(t, backspaces)
	require.Equal(t, "ơ", text)
}

func TestInputEngine_ProcessKey_UnrecognizedKeysymPassesThrough(t *testing.T) {
	e := newTestInputEngine(t)

	handled, backspaces, text, dbusErr := e.ProcessKey(0xdeadbeef, 0)
	require.Nil(t, dbusErr)
	require.False(t, handled)
	require.Zero(t, backspaces)
	require.Empty(t, text)
}

func TestInputEngine_Reset_ClearsComposition(t *testing.T) {
	e := newTestInputEngine(t)
	processAll(t, e, "vie")

	dbusErr := e.Reset()
	require.Nil(t, dbusErr)

	preedit, dbusErr := e.GetPreedit()
	require.Nil(t, dbusErr)
	require.Empty(t, preedit)
}

func TestInputEngine_SetEnabled_DisablesComposition(t *testing.T) {
	e := newTestInputEngine(t)

	dbusErr := e.SetEnabled(false)
	require.Nil(t, dbusErr)

	handled, _, _, dbusErr := e.ProcessKey(uint32('a'), 0)
	require.Nil(t, dbusErr)
	require.False(t, handled)

	handled, _, _, dbusErr = e.ProcessKey(uint32('w'), 0)
	require.Nil(t, dbusErr)
	require.False(t, handled, "w should not trigger composition once disabled")
}

func TestInputEngine_SetConvention_SwitchesTable(t *testing.T) {
	e := newTestInputEngine(t)

	dbusErr := e.SetConvention("vni")
	require.Nil(t, dbusErr)
	require.Equal(t, engine.ConventionVni, e.engine.Convention())
}

func TestInputEngine_SetConvention_RejectsUnknownName(t *testing.T) {
	e := newTestInputEngine(t)

	dbusErr := e.SetConvention("klingon")
	require.NotNil(t, dbusErr)
}

func TestInputEngine_GetPreedit_TracksBuffer(t *testing.T) {
	e := newTestInputEngine(t)
	processAll(t, e, "tooi")

	preedit, dbusErr := e.GetPreedit()
	require.Nil(t, dbusErr)
	require.Equal(t, "tôi", preedit)
}
