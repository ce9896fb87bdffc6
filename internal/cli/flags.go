package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/ptop/internal/config"
)

// Global flags available to every command.
var (
	configFlag   string
	procRootFlag string
	debugFlag    bool
)

// Dashboard flags on the root command.
var (
	refreshFlag  time.Duration
	barWidthFlag int
	limitFlag    int
	colorFlag    string
	plainFlag    bool
)

// loadConfig builds the effective config: the found config file (or
// defaults), with explicitly-set flags layered on top, then validated.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	applyFlagOverrides(cmd, cfg)

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlagOverrides copies explicitly-set flag values over the file
// config. Flags left at their defaults don't touch the file values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("refresh") {
		cfg.RefreshInterval = refreshFlag
	}
	if flags.Changed("bar-width") {
		cfg.BarWidth = barWidthFlag
	}
	if flags.Changed("limit") {
		cfg.ProcessLimit = limitFlag
	}
	if flags.Changed("color") {
		cfg.Color = colorFlag
	}
	if flags.Changed("plain") {
		cfg.Plain = plainFlag
	}
	if flags.Changed("proc-root") {
		cfg.ProcRoot = config.ExpandTilde(procRootFlag)
	}
}
