package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/ptop/internal/errors"
)

// Command-specific flags
var (
	snapshotFormatFlag string
	initForce          bool
	doctorJSON         bool
)

// snapshotCmd prints one sampling cycle and exits
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one sampling cycle and exit",
	Long: `Sample the system once and print the result instead of starting the
dashboard. Two samples are taken one refresh interval apart so the CPU
percentages carry real deltas.

Useful for scripts, cron jobs, and piping into other tools.

Examples:
  ptop snapshot
  ptop snapshot --format json | jq .cpu_percent
  ptop snapshot --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(cmd, snapshotFormatFlag, os.Stdout)
	},
}

// initCmd creates a new .ptop.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .ptop.yaml configuration",
	Long: `Write a .ptop.yaml file in the current directory with the documented
defaults, ready to edit.

Examples:
  ptop init
  ptop init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

// doctorCmd diagnoses sampling and configuration issues
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose sampling and config issues",
	Long: `Run diagnostic checks to identify common issues.

Checks:
  - Accounting filesystem root and per-source readability
  - Process entry visibility
  - Configuration file validity
  - Terminal and color capability

Examples:
  ptop doctor
  ptop doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(os.Stdout)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for ptop.

Examples:
  # Bash
  ptop completion bash > /etc/bash_completion.d/ptop

  # Zsh
  ptop completion zsh > "${fpath[1]}/_ptop"

  # Fish
  ptop completion fish > ~/.config/fish/completions/ptop.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotFormatFlag, "format", "text", "output format: text, json, or yaml")

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")

	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(completionCmd)
}
