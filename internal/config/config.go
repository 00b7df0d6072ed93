// Package config loads the daemon and CLI's host-level settings. None of
// this persists inside the engine itself (internal/engine has no file I/O);
// it only decides how the engine is configured and where the shortcut file
// lives before the engine ever sees a keystroke.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/username/vnime/internal/engine"
)

// Config is the daemon/CLI's resolved settings, merged from defaults, the
// config file, VNIME_* environment variables, and --flag overrides in that
// order of increasing precedence.
type Config struct {
	Method        string `mapstructure:"method"`     // "telex" or "vni"
	ToneRule      string `mapstructure:"tone_rule"`  // "modern" or "classical"
	LogLevel      string `mapstructure:"log_level"`  // debug|info|warn|error
	LogFormat     string `mapstructure:"log_format"` // console|json
	ServiceName   string `mapstructure:"service_name"`
	ObjectPath    string `mapstructure:"object_path"`
	ShortcutsPath string `mapstructure:"shortcuts_path"`
}

// DefaultDir returns ~/.config/vnime, creating it if necessary.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("vnime: resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "vnime")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("vnime: create config directory: %w", err)
	}
	return dir, nil
}

// Load reads configuration from path (or the default config.yaml if empty),
// layering environment and the caller's viper instance (pre-populated with
// any --flag overrides the caller bound) on top.
func Load(v *viper.Viper, path string) (Config, error) {
	v.SetDefault("method", "telex")
	v.SetDefault("tone_rule", "modern")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("service_name", "com.github.vnime.Engine")
	v.SetDefault("object_path", "/Engine")

	v.SetEnvPrefix("VNIME")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := DefaultDir()
		if err != nil {
			return Config{}, err
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if v.GetString("shortcuts_path") == "" {
			v.SetDefault("shortcuts_path", filepath.Join(dir, "shortcuts.yaml"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("vnime: read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("vnime: parse config: %w", err)
	}
	if cfg.ShortcutsPath == "" {
		dir, err := DefaultDir()
		if err != nil {
			return Config{}, err
		}
		cfg.ShortcutsPath = filepath.Join(dir, "shortcuts.yaml")
	}
	return cfg, nil
}

// MethodID translates the config's method name into the engine's numeric id.
func (c Config) MethodID() int {
	if c.Method == "vni" {
		return 1
	}
	return 0
}

// ToneRuleValue translates the config's tone rule name into the engine's enum.
func (c Config) ToneRuleValue() engine.ToneRule {
	if c.ToneRule == "classical" {
		return engine.ToneRuleClassical
	}
	return engine.ToneRuleModern
}
