// Package config loads schemescope settings from an optional YAML file and
// SCHEMESCOPE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SCHEMESCOPE_LOG_LEVEL.
const EnvPrefix = "SCHEMESCOPE"

// LocalFile is looked up in the working directory before the user config.
const LocalFile = ".schemescope.yaml"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete schemescope configuration.
type Config struct {
	// Scheme is the color scheme used when a command gets none.
	Scheme   string       `mapstructure:"scheme"`
	Dedupe   bool         `mapstructure:"dedupe"`
	Parallel int          `mapstructure:"parallel"`
	Log      LogConfig    `mapstructure:"log"`
	Keys     KeysConfig   `mapstructure:"keys"`
	Layout   LayoutConfig `mapstructure:"layout"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// LogConfig selects where logs go.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// KeysConfig holds the editor key bindings.
type KeysConfig struct {
	Next   string `mapstructure:"next"`
	Prev   string `mapstructure:"prev"`
	Toggle string `mapstructure:"toggle"`
}

// LayoutConfig tunes the editor panes.
type LayoutConfig struct {
	// Ratio is the width share of the left pane in the split layout.
	Ratio float64 `mapstructure:"ratio"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Parallel: runtime.NumCPU(),
		Log:      LogConfig{Level: "info"},
		Keys:     KeysConfig{Next: "ctrl+n", Prev: "ctrl+p", Toggle: "ctrl+t"},
		Layout:   LayoutConfig{Ratio: 0.5},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("scheme", d.Scheme)
	v.SetDefault("dedupe", d.Dedupe)
	v.SetDefault("parallel", d.Parallel)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("keys.next", d.Keys.Next)
	v.SetDefault("keys.prev", d.Keys.Prev)
	v.SetDefault("keys.toggle", d.Keys.Toggle)
	v.SetDefault("layout.ratio", d.Layout.Ratio)
}

// Load reads cfgFile, or when it is empty the first of ./.schemescope.yaml
// and $HOME/.config/schemescope/config.yaml that exists. A missing default
// file is not an error; a missing explicit file is.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case cfgFile != "":
		if !fileExists(cfgFile) {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, os.ErrNotExist)
		}

		v.SetConfigFile(cfgFile)
	case fileExists(LocalFile):
		v.SetConfigFile(LocalFile)
	default:
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "schemescope"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges. A non-positive parallelism means one
// worker per CPU.
func (c *Config) Validate() error {
	if c.Parallel <= 0 {
		c.Parallel = runtime.NumCPU()
	}

	if c.Layout.Ratio <= 0.1 || c.Layout.Ratio >= 0.9 {
		return fmt.Errorf("%w: layout.ratio %.2f must be between 0.1 and 0.9", ErrInvalid, c.Layout.Ratio)
	}

	for name, key := range map[string]string{
		"keys.next":   c.Keys.Next,
		"keys.prev":   c.Keys.Prev,
		"keys.toggle": c.Keys.Toggle,
	} {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalid, name)
		}
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
