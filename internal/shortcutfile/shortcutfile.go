// Package shortcutfile persists the engine's shortcut table to a YAML file
// and keeps it live-reloaded through viper's file watch (spec §10.2). The
// daemon's main config is read once at startup and is not watched.
package shortcutfile

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/username/vnime/internal/engine"
)

// Entry mirrors engine.ShortcutEntry in a YAML-friendly shape.
type Entry struct {
	Trigger   string `mapstructure:"trigger" yaml:"trigger"`
	Output    string `mapstructure:"output" yaml:"output"`
	Immediate bool   `mapstructure:"immediate" yaml:"immediate"`
}

// Load reads path into a fresh engine.ShortcutTable. A missing file is not
// an error: it just yields an empty table.
func Load(path string) (*engine.ShortcutTable, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	table := engine.NewShortcutTable()
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return table, nil
		}
		return nil, fmt.Errorf("vnime: read shortcuts file: %w", err)
	}

	var entries []Entry
	if err := v.UnmarshalKey("shortcuts", &entries); err != nil {
		return nil, fmt.Errorf("vnime: parse shortcuts file: %w", err)
	}
	applyEntries(table, entries)
	return table, nil
}

func applyEntries(table *engine.ShortcutTable, entries []Entry) {
	for _, e := range entries {
		if e.Immediate {
			table.AddImmediate(e.Trigger, e.Output)
		} else {
			table.Add(e.Trigger, e.Output)
		}
	}
}

// Save writes table's current entries back to path as YAML.
func Save(path string, table *engine.ShortcutTable) error {
	v := viper.New()
	v.SetConfigType("yaml")

	entries := make([]Entry, 0, len(table.Entries()))
	for _, e := range table.Entries() {
		entries = append(entries, Entry{
			Trigger:   e.Trigger,
			Output:    e.Output,
			Immediate: e.Mode == engine.Immediate,
		})
	}
	v.Set("shortcuts", entries)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("vnime: write shortcuts file: %w", err)
	}
	return nil
}

// Watch rebuilds and delivers a fresh ShortcutTable to onChange every time
// path is modified on disk, using viper's fsnotify-backed file watch.
func Watch(path string, onChange func(*engine.ShortcutTable)) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	_ = v.ReadInConfig()

	v.OnConfigChange(func(fsnotify.Event) {
		table, err := Load(path)
		if err != nil {
			return
		}
		onChange(table)
	})
	v.WatchConfig()
	return nil
}
