package doctor

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// TTYCheck reports whether stdout is a terminal. The dashboard needs one;
// plain output does not.
type TTYCheck struct{}

func (c *TTYCheck) Name() string     { return "tty" }
func (c *TTYCheck) Category() string { return "TERMINAL" }

func (c *TTYCheck) Run() CheckResult {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return CheckResult{
				Name:    c.Name(),
				Status:  StatusPass,
				Message: "stdout is a terminal",
			}
		}
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("stdout is a terminal (%dx%d)", width, height),
		}
	}

	return CheckResult{
		Name:       c.Name(),
		Status:     StatusWarn,
		Message:    "stdout is not a terminal",
		Suggestion: "ptop falls back to plain output when piped; run it directly in a terminal for the dashboard",
	}
}

// ColorCheck reports the detected color capability.
type ColorCheck struct{}

func (c *ColorCheck) Name() string     { return "color" }
func (c *ColorCheck) Category() string { return "TERMINAL" }

func (c *ColorCheck) Run() CheckResult {
	profile := termenv.EnvColorProfile()

	if profile == termenv.Ascii {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No color support detected",
			Suggestion: "Meters lose their severity colors; set color: always to force them",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Color profile: %s", profileName(profile)),
	}
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "none"
	}
}

// NewTerminalChecks creates the terminal capability checks.
func NewTerminalChecks() []Check {
	return []Check{
		&TTYCheck{},
		&ColorCheck{},
	}
}
