package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command. Running ptop with no subcommand starts
// the dashboard.
var rootCmd = &cobra.Command{
	Use:   "ptop",
	Short: "Terminal dashboard for local CPU, memory, and process activity",
	Long: `ptop samples the local accounting filesystem on a fixed cadence and
redraws a full-screen dashboard: aggregate CPU and memory meters with
severity colors, and a capped table of processes with per-process CPU.

With no subcommand the dashboard starts immediately. On a terminal it
runs interactively (q to quit); when piped, or with --plain, it redraws
plain frames until interrupted.

Examples:
  ptop
  ptop --refresh 500ms --limit 10
  ptop --plain
  ptop snapshot --format json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runDashboard(cfg)
	},
}

// Execute runs the root command. Structured errors already render their
// own suggestion lines, so they print as-is.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Config returns the value of the global --config flag.
func Config() string {
	return configFlag
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: search for .ptop.yaml)")
	rootCmd.PersistentFlags().StringVar(&procRootFlag, "proc-root", "", "accounting filesystem root (default /proc)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "log debug detail to stderr")

	rootCmd.Flags().DurationVar(&refreshFlag, "refresh", 0, "sampling interval (e.g. 100ms, 1s)")
	rootCmd.Flags().IntVar(&barWidthFlag, "bar-width", 0, "meter width in cells")
	rootCmd.Flags().IntVar(&limitFlag, "limit", 0, "maximum process rows")
	rootCmd.Flags().StringVar(&colorFlag, "color", "", "color mode: auto, always, or never")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false, "plain full-redraw output instead of the interactive dashboard")
}
