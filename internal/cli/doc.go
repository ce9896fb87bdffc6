// Package cli implements the ptop command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to an implementation function for the actual work. The
// general structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances in commands.go)
//   - Implementation functions (runDashboard, snapshotCommand, ...)
//   - Domain logic (in other internal packages)
//
// # Command Structure
//
// The root command is "ptop"; running it bare starts the monitor:
//
//	ptop            - Live dashboard (TUI on a terminal, plain when piped)
//	ptop snapshot   - One sampling cycle printed as text, JSON, or YAML
//	ptop init       - Create .ptop.yaml config
//	ptop doctor     - Diagnose sampling and config issues
//	ptop version    - Version and build information
//	ptop completion - Shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --proc-root, --debug) are defined on the root
// command and available to all subcommands. Dashboard tuning flags
// (--refresh, --bar-width, --limit, --color, --plain) are local to the
// root command and override the corresponding config file keys only when
// set explicitly, so a config value survives an unrelated flag being
// passed.
//
// # Output Discipline
//
// The dashboard and snapshot bodies write to stdout; logs and errors go
// to stderr. That keeps piped output machine-clean: "ptop snapshot
// --format json | jq ." sees only the document.
package cli
