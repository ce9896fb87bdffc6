package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rileyhilliard/ptop/internal/errors"
)

// Validation bounds. The doctor command reports against the same limits.
const (
	MinRefreshInterval = 50 * time.Millisecond
	MaxRefreshInterval = time.Hour

	MinBarWidth = 10
	MaxBarWidth = 120

	MinProcessLimit = 1
	MaxProcessLimit = 100
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but ptop only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest ptop: https://github.com/rileyhilliard/ptop/releases")
	}

	if err := validateRefresh(cfg.RefreshInterval); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check 'refresh_interval' in your .ptop.yaml.")
	}

	if err := validateBarWidth(cfg.BarWidth); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check 'bar_width' in your .ptop.yaml.")
	}

	if err := validateProcessLimit(cfg.ProcessLimit); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check 'process_limit' in your .ptop.yaml.")
	}

	if err := validateColor(cfg.Color); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check 'color' in your .ptop.yaml.")
	}

	if err := validateProcRoot(cfg.ProcRoot); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check 'proc_root' in your .ptop.yaml.")
	}

	return nil
}

func validateRefresh(d time.Duration) error {
	if d < MinRefreshInterval {
		return fmt.Errorf("refresh_interval %v is below the minimum %v - sampling faster than that just burns CPU", d, MinRefreshInterval)
	}
	if d > MaxRefreshInterval {
		return fmt.Errorf("refresh_interval %v is above the maximum %v", d, MaxRefreshInterval)
	}
	return nil
}

func validateBarWidth(w int) error {
	if w < MinBarWidth || w > MaxBarWidth {
		return fmt.Errorf("bar_width needs to be %d-%d (got %d)", MinBarWidth, MaxBarWidth, w)
	}
	return nil
}

func validateProcessLimit(n int) error {
	if n < MinProcessLimit || n > MaxProcessLimit {
		return fmt.Errorf("process_limit needs to be %d-%d (got %d)", MinProcessLimit, MaxProcessLimit, n)
	}
	return nil
}

func validateColor(mode string) error {
	switch mode {
	case "", "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("color '%s' isn't valid - use 'auto', 'always', or 'never'", mode)
}

func validateProcRoot(root string) error {
	if strings.TrimSpace(root) == "" {
		return fmt.Errorf("proc_root is empty - use /proc, or a directory of fixture files")
	}
	if !filepath.IsAbs(root) {
		return fmt.Errorf("proc_root '%s' needs to be an absolute path", root)
	}
	return nil
}
