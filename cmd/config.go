package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/truthtable/sim"
	"github.com/inference-sim/truthtable/sim/trace"
)

// Settings is the resolved configuration of one command invocation.
// It is read from an optional YAML file and overridden by explicit flags.
type Settings struct {
	LogLevel        string `yaml:"log"`
	MaxSymbols      int    `yaml:"max_symbols"`
	MaxGates        int    `yaml:"max_gates"`
	Reset           string `yaml:"reset"`
	Format          string `yaml:"format"`
	Trace           string `yaml:"trace"`
	TraceMaxRecords int    `yaml:"trace_max_records"`
}

// DefaultSettings returns the settings used when neither a config file nor a flag sets a value.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:   "warn",
		MaxSymbols: sim.DefaultMaxSymbols,
		MaxGates:   sim.DefaultMaxGates,
		Reset:      string(sim.ResetIO),
		Format:     string(sim.FormatText),
		Trace:      string(trace.TraceLevelNone),
	}
}

// LoadSettings parses a YAML config file on top of base.
// Uses strict field checking: unknown keys (typos) are rejected.
func LoadSettings(path string, base Settings) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config: %w", err)
	}
	s := base
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			logrus.Debugf("config %s has no settings", path)
			return base, nil
		}
		return base, fmt.Errorf("parsing config: %w", err)
	}
	logrus.Debugf("loaded settings from %s", path)
	return s, nil
}

// Validate checks names and ranges.
func (s Settings) Validate() error {
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", s.LogLevel)
	}
	if s.MaxSymbols <= 0 {
		return fmt.Errorf("max_symbols must be positive, got %d", s.MaxSymbols)
	}
	if s.MaxGates <= 0 {
		return fmt.Errorf("max_gates must be positive, got %d", s.MaxGates)
	}
	if !sim.IsValidResetPolicy(s.Reset) {
		return fmt.Errorf("unknown reset policy %q; valid: io, all", s.Reset)
	}
	if !sim.ValidFormats[s.Format] {
		return fmt.Errorf("unknown format %q; valid: text, json, yaml", s.Format)
	}
	if !trace.IsValidTraceLevel(s.Trace) {
		return fmt.Errorf("unknown trace level %q; valid: none, gates", s.Trace)
	}
	if s.TraceMaxRecords < 0 {
		return fmt.Errorf("trace_max_records must be non-negative, got %d", s.TraceMaxRecords)
	}
	return nil
}

// LoadConfig returns the loader limits.
func (s Settings) LoadConfig() sim.LoadConfig {
	return sim.NewLoadConfig(s.MaxSymbols, s.MaxGates)
}
