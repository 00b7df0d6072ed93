// Package daemonhost wires internal/engine to an Fcitx5 frontend over D-Bus,
// the same transport and object shape the teacher used, generalized to the
// engine's Directive-based contract and given structured logging.
package daemonhost

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"

	"github.com/username/vnime/internal/config"
	"github.com/username/vnime/internal/engine"
	"github.com/username/vnime/internal/shortcutfile"
	"github.com/username/vnime/internal/x11key"
)

// InputEngine is the exported D-Bus object Fcitx5 calls into.
type InputEngine struct {
	mu     sync.Mutex
	engine *engine.Engine
	log    zerolog.Logger
}

// NewInputEngine builds an InputEngine configured per cfg.
func NewInputEngine(cfg config.Config, log zerolog.Logger) (*InputEngine, error) {
	e := engine.NewEngine()
	e.SetMethod(cfg.MethodID())
	e.SetToneRule(cfg.ToneRuleValue())

	table, err := shortcutfile.Load(cfg.ShortcutsPath)
	if err != nil {
		return nil, err
	}
	*e.Shortcuts() = *table

	return &InputEngine{engine: e, log: log}, nil
}

// ProcessKey handles one keystroke from the frontend. It returns whether the
// engine consumed the key, how many characters immediately before the caret
// the frontend must delete, and the text to insert in their place.
func (ie *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (handled bool, backspace int32, commit string, dbusErr *dbus.Error) {
	ie.mu.Lock()
	defer ie.mu.Unlock()

	key, caps, ok := x11key.Decode(keysym)
	if !ok {
		return false, 0, "", nil
	}
	ctrl := modifiers&x11key.ModControl != 0 || modifiers&x11key.ModMod1 != 0
	shift := modifiers&x11key.ModShift != 0

	d := ie.engine.OnKey(key, caps, ctrl, shift)

	ie.log.Debug().
		Uint32("keysym", keysym).
		Uint32("mods", modifiers).
		Str("preedit", ie.engine.Preedit()).
		Bool("handled", d.Action == engine.ActionSend).
		Msg("key processed")

	if d.Action != engine.ActionSend {
		return false, 0, "", nil
	}
	return true, int32(d.Backspace), string(d.Chars[:d.Count]), nil
}

// Reset clears the in-progress composition.
func (ie *InputEngine) Reset() *dbus.Error {
	ie.mu.Lock()
	defer ie.mu.Unlock()
	ie.engine.Clear()
	return nil
}

// SetEnabled toggles the engine globally.
func (ie *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	ie.mu.Lock()
	defer ie.mu.Unlock()
	ie.engine.SetEnabled(enabled)
	ie.log.Info().Bool("enabled", enabled).Msg("engine enabled state changed")
	return nil
}

// GetPreedit returns the current preedit string.
func (ie *InputEngine) GetPreedit() (string, *dbus.Error) {
	ie.mu.Lock()
	defer ie.mu.Unlock()
	return ie.engine.Preedit(), nil
}

// reloadShortcuts swaps in a freshly loaded shortcut table, used by the
// config file watcher (spec §10.2: "live shortcut-table reload").
func (ie *InputEngine) reloadShortcuts(table *engine.ShortcutTable) {
	ie.mu.Lock()
	defer ie.mu.Unlock()
	*ie.engine.Shortcuts() = *table
	ie.log.Info().Int("count", len(table.Entries())).Msg("shortcuts reloaded")
}

// Run connects to the session bus, exports an InputEngine built from cfg,
// and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("vnime: connect to session bus: %w", err)
	}
	defer conn.Close()

	reply, err := conn.RequestName(cfg.ServiceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("vnime: request bus name %q: %w", cfg.ServiceName, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("vnime: bus name %q already owned (another instance running?)", cfg.ServiceName)
	}

	ie, err := NewInputEngine(cfg, log)
	if err != nil {
		return err
	}

	if err := shortcutfile.Watch(cfg.ShortcutsPath, ie.reloadShortcuts); err != nil {
		log.Warn().Err(err).Msg("shortcut file watch not started")
	}

	if err := conn.Export(ie, dbus.ObjectPath(cfg.ObjectPath), cfg.ServiceName); err != nil {
		return fmt.Errorf("vnime: export D-Bus object: %w", err)
	}

	log.Info().
		Str("service", cfg.ServiceName).
		Str("object_path", cfg.ObjectPath).
		Str("method", cfg.Method).
		Msg("vnime daemon ready")

	<-ctx.Done()
	log.Info().Msg("shutting down")
	return nil
}
