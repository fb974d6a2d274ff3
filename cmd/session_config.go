package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/baggage-sim/baggage-sim/sim"
)

// resolveSessionConfig returns the seed layout to use: the built-in
// default, or the contents of --config when given.
func resolveSessionConfig() (sim.SessionConfig, error) {
	if configPath == "" {
		return sim.DefaultSessionConfig(), nil
	}
	return loadSessionConfig(configPath)
}

// loadSessionConfig parses a yaml file into a SessionConfig.
// Uses strict field checking: typos must cause errors, not silent defaults.
func loadSessionConfig(path string) (sim.SessionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.SessionConfig{}, fmt.Errorf("reading session config: %w", err)
	}

	var cfg sim.SessionConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return sim.SessionConfig{}, fmt.Errorf("parsing session config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return sim.SessionConfig{}, fmt.Errorf("session config %s: %w", path, err)
	}
	return cfg, nil
}
