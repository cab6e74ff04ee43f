// Package config loads kvsh settings from an optional config file and
// KVSH_* environment variables using the Viper library. It covers terminal
// behaviour, prompt appearance and diagnostic logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configurable settings for the shell.
type Config struct {
	Terminal Terminal `mapstructure:"terminal"` // Terminal-related settings
	Prompt   Prompt   `mapstructure:"prompt"`   // Prompt appearance settings
	Log      Log      `mapstructure:"log"`      // Diagnostic logging settings
}

// Terminal defines readline behaviour: history file and limit, and the
// texts shown on interrupt and on end of input.
type Terminal struct {
	HistoryFile     string `mapstructure:"history_file"`     // Path to command history file, empty disables history
	HistoryLimit    int    `mapstructure:"history_limit"`    // Maximum number of history entries
	InterruptPrompt string `mapstructure:"interrupt_prompt"` // Text shown on Ctrl-C
	EOFPrompt       string `mapstructure:"exit_message"`     // Text shown on EOF
}

// Prompt defines the prompt text and its styling.
type Prompt struct {
	Text       string `mapstructure:"text"`        // Prompt written before each read
	Theme      string `mapstructure:"theme"`       // Named colour theme, "none" for plain text
	Colour     string `mapstructure:"colour"`      // Colour name or hex/ANSI code
	ColourBold bool   `mapstructure:"colour_bold"` // Bold prompt
}

// Log defines where diagnostics go and how verbose they are.
type Log struct {
	Level string `mapstructure:"level"` // debug, info, warn or error
	File  string `mapstructure:"file"`  // Log file path, empty for stderr
}

// Load reads a file named "config" (any format Viper supports) from dir,
// applies KVSH_* environment overrides, and unmarshals the result over the
// defaults. Returns the defaults and an error if reading or unmarshaling fails.
func Load(dir string) (*Config, error) {

	v := viper.New()

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetEnvPrefix("kvsh")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, Default())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Default(), fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return Default(), fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with the built-in settings. It is used as a
// fallback when loading a configuration file fails.
func Default() *Config {

	cfg := new(Config)

	cfg.Terminal.HistoryFile = filepath.Join(os.Getenv("HOME"), ".kvsh_history")
	cfg.Terminal.HistoryLimit = 1000
	cfg.Terminal.InterruptPrompt = "^C"
	cfg.Terminal.EOFPrompt = ""

	cfg.Prompt.Text = "> "
	cfg.Prompt.Theme = "none"
	cfg.Prompt.Colour = ""
	cfg.Prompt.ColourBold = false

	cfg.Log.Level = "warn"
	cfg.Log.File = ""

	return cfg
}

// setDefaults registers every field of cfg as a Viper default so that
// environment overrides apply even when no config file exists.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("terminal.history_file", cfg.Terminal.HistoryFile)
	v.SetDefault("terminal.history_limit", cfg.Terminal.HistoryLimit)
	v.SetDefault("terminal.interrupt_prompt", cfg.Terminal.InterruptPrompt)
	v.SetDefault("terminal.exit_message", cfg.Terminal.EOFPrompt)
	v.SetDefault("prompt.text", cfg.Prompt.Text)
	v.SetDefault("prompt.theme", cfg.Prompt.Theme)
	v.SetDefault("prompt.colour", cfg.Prompt.Colour)
	v.SetDefault("prompt.colour_bold", cfg.Prompt.ColourBold)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
}
