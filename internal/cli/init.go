package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/ptop/internal/config"
	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/rileyhilliard/ptop/internal/ui"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, write defaults
}

// Init creates a new .ptop.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !opts.NonInteractive {
		refresh := cfg.RefreshInterval.String()
		color := cfg.Color

		// Interactive prompts using huh
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Refresh interval").
					Description("How often to sample and redraw the dashboard").
					Placeholder("100ms").
					Value(&refresh).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return nil
						}
						d, err := time.ParseDuration(s)
						if err != nil {
							return fmt.Errorf("not a duration (try 100ms, 250ms, 1s)")
						}
						if d < config.MinRefreshInterval || d > config.MaxRefreshInterval {
							return fmt.Errorf("must be between %s and %s",
								config.MinRefreshInterval, config.MaxRefreshInterval)
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Color output").
					Options(
						huh.NewOption("Auto (detect terminal support)", "auto"),
						huh.NewOption("Always", "always"),
						huh.NewOption("Never", "never"),
					).
					Value(&color),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or pipe stdin to write defaults")
		}

		if s := strings.TrimSpace(refresh); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.RefreshInterval = d
			}
		}
		cfg.Color = color
	}

	// Marshal through a shadow struct so the refresh interval comes out as
	// "100ms" rather than raw nanoseconds.
	out := struct {
		Version         int    `yaml:"version"`
		RefreshInterval string `yaml:"refresh_interval"`
		BarWidth        int    `yaml:"bar_width"`
		ProcessLimit    int    `yaml:"process_limit"`
		Color           string `yaml:"color"`
		Plain           bool   `yaml:"plain"`
		ProcRoot        string `yaml:"proc_root"`
	}{
		Version:         cfg.Version,
		RefreshInterval: cfg.RefreshInterval.String(),
		BarWidth:        cfg.BarWidth,
		ProcessLimit:    cfg.ProcessLimit,
		Color:           cfg.Color,
		Plain:           cfg.Plain,
		ProcRoot:        cfg.ProcRoot,
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	// Add a header comment
	header := `# ptop configuration
# Run 'ptop' to start the dashboard
# See: https://github.com/rileyhilliard/ptop for documentation

`
	content := header + string(data)

	// Write config file
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  ptop           - Start the dashboard")
	fmt.Println("  ptop snapshot  - Print one sample and exit")
	fmt.Println("  ptop doctor    - Check configuration")

	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(force bool) error {
	return Init(InitOptions{
		Overwrite:      force,
		NonInteractive: !term.IsTerminal(int(os.Stdin.Fd())),
	})
}
