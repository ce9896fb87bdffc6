package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .ptop.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// RefreshInterval is the sampling cadence. Each cycle reads the
	// accounting sources once and redraws the screen once.
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`

	// BarWidth is the cell count of the CPU and memory meters.
	BarWidth int `yaml:"bar_width" mapstructure:"bar_width"`

	// ProcessLimit caps how many process rows are collected and shown.
	ProcessLimit int `yaml:"process_limit" mapstructure:"process_limit"`

	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`

	// Plain forces the non-interactive renderer even on a terminal.
	Plain bool `yaml:"plain" mapstructure:"plain"`

	// ProcRoot is the accounting filesystem root. Pointing it at a
	// directory of fixture files makes dry runs and tests possible.
	ProcRoot string `yaml:"proc_root" mapstructure:"proc_root"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:         CurrentConfigVersion,
		RefreshInterval: 100 * time.Millisecond,
		BarWidth:        40,
		ProcessLimit:    20,
		Color:           "auto",
		Plain:           false,
		ProcRoot:        "/proc",
	}
}
