package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rileyhilliard/ptop/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "defaults pass",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "future version",
			mutate:  func(cfg *Config) { cfg.Version = CurrentConfigVersion + 1 },
			wantErr: "from the future",
		},
		{
			name:    "refresh below minimum",
			mutate:  func(cfg *Config) { cfg.RefreshInterval = 10 * time.Millisecond },
			wantErr: "refresh_interval",
		},
		{
			name:    "refresh above maximum",
			mutate:  func(cfg *Config) { cfg.RefreshInterval = 2 * time.Hour },
			wantErr: "refresh_interval",
		},
		{
			name:   "refresh at minimum",
			mutate: func(cfg *Config) { cfg.RefreshInterval = MinRefreshInterval },
		},
		{
			name:   "refresh at maximum",
			mutate: func(cfg *Config) { cfg.RefreshInterval = MaxRefreshInterval },
		},
		{
			name:    "bar width too narrow",
			mutate:  func(cfg *Config) { cfg.BarWidth = 5 },
			wantErr: "bar_width",
		},
		{
			name:    "bar width too wide",
			mutate:  func(cfg *Config) { cfg.BarWidth = 500 },
			wantErr: "bar_width",
		},
		{
			name:    "process limit zero",
			mutate:  func(cfg *Config) { cfg.ProcessLimit = 0 },
			wantErr: "process_limit",
		},
		{
			name:    "process limit too high",
			mutate:  func(cfg *Config) { cfg.ProcessLimit = 1000 },
			wantErr: "process_limit",
		},
		{
			name:   "process limit at bounds",
			mutate: func(cfg *Config) { cfg.ProcessLimit = MaxProcessLimit },
		},
		{
			name:    "bad color mode",
			mutate:  func(cfg *Config) { cfg.Color = "rainbow" },
			wantErr: "color",
		},
		{
			name:   "empty color mode is allowed",
			mutate: func(cfg *Config) { cfg.Color = "" },
		},
		{
			name:    "empty proc root",
			mutate:  func(cfg *Config) { cfg.ProcRoot = "  " },
			wantErr: "proc_root",
		},
		{
			name:    "relative proc root",
			mutate:  func(cfg *Config) { cfg.ProcRoot = "fixtures/proc" },
			wantErr: "absolute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestValidateNilConfig(t *testing.T) {
	err := Validate(nil)
	assert.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}
