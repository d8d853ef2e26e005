package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (LAGOON_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("LAGOON_INPUT"), &cfg.InputPath)
	s.setString("decoder", os.Getenv("LAGOON_DECODER"), &cfg.Decoder)
	s.setString("log-level", os.Getenv("LAGOON_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("debounce", os.Getenv("LAGOON_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("check-closed", os.Getenv("LAGOON_CHECK_CLOSED"), &cfg.CheckClosed)
	s.setBoolFromString("dump", os.Getenv("LAGOON_DUMP"), &cfg.Dump)
	s.setBoolFromString("watch", os.Getenv("LAGOON_WATCH"), &cfg.Watch)

	return nil
}
