package cliconfig

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/lagoon/internal/adapters/fs"
	"github.com/bft-labs/lagoon/internal/app"
	"github.com/bft-labs/lagoon/internal/parser"
	"github.com/bft-labs/lagoon/pkg/log"
)

// Config holds CLI configuration for lagoon.
type Config struct {
	InputPath string
	Decoder   string
	LogLevel  string

	CheckClosed bool
	Dump        bool

	Watch    bool
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		InputPath: fs.DefaultInputName,
		Decoder:   parser.HexName,
		LogLevel:  "info",
		Debounce:  app.DefaultDebounce,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return fmt.Errorf("input path is required")
	}
	if _, err := parser.DecoderByName(c.Decoder); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	return nil
}

// Level returns the zerolog level for LogLevel, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Logger builds the stderr console logger for this configuration.
func (c *Config) Logger() zerolog.Logger {
	return c.LoggerTo(os.Stderr)
}

// LoggerTo builds the console logger for this configuration on w.
func (c *Config) LoggerTo(w io.Writer) zerolog.Logger {
	return log.NewConsoleLogger(w, c.Level())
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
