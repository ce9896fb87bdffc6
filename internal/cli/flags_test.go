package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/ptop/internal/config"
	"github.com/rileyhilliard/ptop/internal/errors"
)

// saveFlagState snapshots the package-level flag vars and restores them
// when the test finishes, so tests can mutate them freely.
func saveFlagState(t *testing.T) {
	t.Helper()
	origConfig, origProcRoot, origDebug := configFlag, procRootFlag, debugFlag
	origRefresh, origBarWidth, origLimit := refreshFlag, barWidthFlag, limitFlag
	origColor, origPlain := colorFlag, plainFlag
	t.Cleanup(func() {
		configFlag, procRootFlag, debugFlag = origConfig, origProcRoot, origDebug
		refreshFlag, barWidthFlag, limitFlag = origRefresh, origBarWidth, origLimit
		colorFlag, plainFlag = origColor, origPlain
	})
}

// newFlagCmd builds a throwaway command carrying the same flag set as the
// root command, so Changed() tracking works without touching rootCmd.
func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().DurationVar(&refreshFlag, "refresh", 0, "")
	cmd.Flags().IntVar(&barWidthFlag, "bar-width", 0, "")
	cmd.Flags().IntVar(&limitFlag, "limit", 0, "")
	cmd.Flags().StringVar(&colorFlag, "color", "", "")
	cmd.Flags().BoolVar(&plainFlag, "plain", false, "")
	cmd.Flags().StringVar(&procRootFlag, "proc-root", "", "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })
	require.NoError(t, os.Chdir(dir))
}

func TestApplyFlagOverridesLeavesConfigAloneWhenUnset(t *testing.T) {
	saveFlagState(t)
	cmd := newFlagCmd(t)

	cfg := config.DefaultConfig()
	cfg.RefreshInterval = 250 * time.Millisecond
	cfg.BarWidth = 60
	cfg.Plain = true

	applyFlagOverrides(cmd, cfg)

	assert.Equal(t, 250*time.Millisecond, cfg.RefreshInterval)
	assert.Equal(t, 60, cfg.BarWidth)
	assert.True(t, cfg.Plain)
}

func TestApplyFlagOverridesExplicitFlagsWin(t *testing.T) {
	saveFlagState(t)
	cmd := newFlagCmd(t, "--refresh", "500ms", "--limit", "5", "--color", "never", "--plain")

	cfg := config.DefaultConfig()
	cfg.RefreshInterval = 250 * time.Millisecond
	cfg.ProcessLimit = 30

	applyFlagOverrides(cmd, cfg)

	assert.Equal(t, 500*time.Millisecond, cfg.RefreshInterval)
	assert.Equal(t, 5, cfg.ProcessLimit)
	assert.Equal(t, "never", cfg.Color)
	assert.True(t, cfg.Plain)
	// Untouched flag keeps the config value
	assert.Equal(t, 40, cfg.BarWidth)
}

func TestApplyFlagOverridesExpandsProcRootTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no home directory available")
	}

	saveFlagState(t)
	cmd := newFlagCmd(t, "--proc-root", "~/fakeproc")

	cfg := config.DefaultConfig()
	applyFlagOverrides(cmd, cfg)

	assert.Equal(t, filepath.Join(home, "fakeproc"), cfg.ProcRoot)
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	saveFlagState(t)
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	cmd := newFlagCmd(t)

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoadConfigReadsExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".ptop.yaml")
	content := "refresh_interval: 300ms\nbar_width: 60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	saveFlagState(t)
	configFlag = path
	cmd := newFlagCmd(t)

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, cfg.RefreshInterval)
	assert.Equal(t, 60, cfg.BarWidth)
	// Keys absent from the file keep defaults
	assert.Equal(t, 20, cfg.ProcessLimit)
}

func TestLoadConfigFlagBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".ptop.yaml")
	content := "refresh_interval: 300ms\nbar_width: 60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	saveFlagState(t)
	configFlag = path
	cmd := newFlagCmd(t, "--refresh", "500ms", "--limit", "7")

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.RefreshInterval)
	assert.Equal(t, 7, cfg.ProcessLimit)
	assert.Equal(t, 60, cfg.BarWidth)
}

func TestLoadConfigExplicitFileMissing(t *testing.T) {
	saveFlagState(t)
	configFlag = filepath.Join(t.TempDir(), "nope.yaml")
	cmd := newFlagCmd(t)

	_, err := loadConfig(cmd)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadConfigValidatesOverrides(t *testing.T) {
	saveFlagState(t)
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	// Below the minimum meter width
	cmd := newFlagCmd(t, "--bar-width", "5")

	_, err := loadConfig(cmd)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "bar_width")
}
