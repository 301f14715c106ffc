package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"

	"github.com/tranminh/goviet-ime/internal/engine"
)

const (
	serviceName = "com.github.goviet.ime"
	objectPath  = "/Engine"
)

// InputEngine is the D-Bus object Fcitx5 (or any other frontend
// speaking this service) talks to. It owns one engine.Engine and
// translates its EditInstruction results into the bool/int32/string
// triple a keyboard-capture host needs: whether the key was consumed,
// how many trailing characters to delete, and what to insert in their
// place.
type InputEngine struct {
	engine *engine.Engine
	logger zerolog.Logger
}

// NewInputEngine creates an InputEngine with the default engine
// configuration (Telex, Vietnamese mode on).
func NewInputEngine(logger zerolog.Logger) (*InputEngine, error) {
	e, err := engine.NewEngine(engine.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return &InputEngine{engine: e, logger: logger}, nil
}

// ProcessKey handles one key event from the frontend.
//
// Returns (handled, backspaces, text, dbusErr):
//   - handled=false: let the OS deliver the key unchanged (PassThrough).
//   - handled=true, backspaces=0: insert text with no prior deletion (Emit).
//   - handled=true, backspaces=N: delete N characters, then insert text (Replace).
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, int32, string, *dbus.Error) {
	r, ok := keysymToRune(keysym)
	if !ok {
		e.logger.Debug().
			Str("key", fmt.Sprintf("0x%x", keysym)).
			Msg("keysym has no rune representation, passing through")
		return false, 0, "", nil
	}

	instr := e.engine.Process(r)

	handled := instr.Kind != engine.KindPassThrough
	var backspaces int32
	var text string
	if instr.Kind == engine.KindReplace {
		backspaces = int32(instr.Backspaces)
		text = instr.Text
	} else if instr.Kind == engine.KindEmit {
		text = instr.Text
	}

	e.logger.Info().
		Str("key", modifierLabel(modifiers)+keyLabel(keysym, r, ok)).
		Str("kind", instructionKindLabel(instr.Kind)).
		Int32("backspaces", backspaces).
		Str("text", text).
		Str("preedit", e.engine.BufferSnapshot()).
		Msg("key processed")

	return handled, backspaces, text, nil
}

// Reset clears the engine's key buffer, for focus changes and cursor
// clicks the frontend detects (spec.md §7.3: the host must notify the
// engine when its buffer has diverged from what's on screen).
func (e *InputEngine) Reset() *dbus.Error {
	e.engine.ResetBuffer()
	e.logger.Info().Msg("buffer reset")
	return nil
}

// SetEnabled toggles Vietnamese mode on or off.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.engine.SetVietnameseMode(enabled)
	e.logger.Info().Bool("enabled", enabled).Msg("vietnamese mode changed")
	return nil
}

// SetConvention switches the active input convention. name must be one
// of "telex", "vni", "viqr" (case-insensitive).
func (e *InputEngine) SetConvention(name string) *dbus.Error {
	conv, ok := conventionByName(name)
	if !ok {
		return dbus.MakeFailedError(fmt.Errorf("unknown convention %q", name))
	}
	e.engine.SetConvention(conv)
	e.logger.Info().Str("convention", conv.String()).Msg("convention changed")
	return nil
}

// GetPreedit returns the engine's current buffer snapshot.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return e.engine.BufferSnapshot(), nil
}

func conventionByName(name string) (engine.Convention, bool) {
	switch strings.ToLower(name) {
	case "telex":
		return engine.ConventionTelex, true
	case "vni":
		return engine.ConventionVni, true
	case "viqr":
		return engine.ConventionViqr, true
	}
	return 0, false
}

func instructionKindLabel(k engine.InstructionKind) string {
	switch k {
	case engine.KindPassThrough:
		return "pass_through"
	case engine.KindEmit:
		return "emit"
	case engine.KindReplace:
		return "replace"
	}
	return "unknown"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	logPath := envOr("GOVIET_IME_LOG", "typing.log")
	logger, closeLogger := setupLogger(logPath)
	defer closeLogger()

	conn, err := dbus.SessionBus()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to session bus")
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to request bus name")
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		logger.Fatal().Str("service", serviceName).Msg("bus name already taken, another instance may be running")
	}

	inputEngine, err := NewInputEngine(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to construct input engine")
	}

	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		logger.Fatal().Err(err).Msg("failed to export D-Bus object")
	}

	logger.Info().
		Str("service", serviceName).
		Str("object_path", objectPath).
		Str("convention", inputEngine.engine.Convention().String()).
		Msg("goviet-ime daemon started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down")
}
