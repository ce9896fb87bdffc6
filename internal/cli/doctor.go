package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/ptop/internal/config"
	"github.com/rileyhilliard/ptop/internal/doctor"
	"github.com/rileyhilliard/ptop/internal/ui"
)

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand implements the doctor command logic.
func doctorCommand(out io.Writer) error {
	checks := collectChecks()
	results := doctor.RunAll(checks)

	if doctorJSON {
		return outputDoctorJSON(out, checks, results)
	}

	return outputDoctorText(out, checks, results)
}

// collectChecks gathers all diagnostic checks.
func collectChecks() []doctor.Check {
	var checks []doctor.Check

	// Config checks (always run)
	checks = append(checks, doctor.NewConfigChecks(Config())...)

	// Accounting filesystem checks against the root the dashboard would use
	checks = append(checks, doctor.NewProcChecks(doctorProcRoot())...)

	// Terminal capability checks
	checks = append(checks, doctor.NewTerminalChecks()...)

	return checks
}

// doctorProcRoot resolves the accounting root the PROC checks probe:
// --proc-root wins, then the config file, then the built-in default. A
// broken config file falls back to the default root; the CONFIG checks
// report the breakage themselves.
func doctorProcRoot() string {
	root := config.DefaultConfig().ProcRoot

	if cfg, err := config.LoadOrDefault(Config()); err == nil {
		root = cfg.ProcRoot
	}

	if procRootFlag != "" {
		root = config.ExpandTilde(procRootFlag)
	}

	return root
}

// outputDoctorJSON outputs results in JSON format.
func outputDoctorJSON(out io.Writer, checks []doctor.Check, results []doctor.CheckResult) error {
	// Group by category
	grouped := make(map[string][]doctor.CheckResult)
	categoryOrder := []string{}

	for i, check := range checks {
		cat := check.Category()
		if _, exists := grouped[cat]; !exists {
			categoryOrder = append(categoryOrder, cat)
		}
		grouped[cat] = append(grouped[cat], results[i])
	}

	// Build output
	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(categoryOrder)),
	}

	for _, cat := range categoryOrder {
		output.Categories = append(output.Categories, CategoryOutput{
			Name:    cat,
			Results: grouped[cat],
		})
	}

	// Summary
	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText outputs results in human-readable format.
//
//nolint:unparam // error return reserved for future use
func outputDoctorText(out io.Writer, checks []doctor.Check, results []doctor.CheckResult) error {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	headerStyle := lipgloss.NewStyle().Bold(true)

	rows := make([]ui.DoctorCheckRow, len(checks))
	for i, check := range checks {
		rows[i] = ui.DoctorCheckRow{
			Status:     results[i].Status.String(),
			Category:   check.Category(),
			Message:    results[i].Message,
			Suggestion: results[i].Suggestion,
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render("ptop Diagnostic Report"))
	fmt.Fprintln(out)
	fmt.Fprint(out, ui.RenderDoctorTable(rows))

	// Render summary divider
	fmt.Fprintln(out, strings.Repeat("━", 60))
	fmt.Fprintln(out)

	if doctor.HasIssues(results) {
		fmt.Fprintf(out, "%s %s\n", errorStyle.Render(ui.SymbolFail), doctor.Summary(results))
	} else {
		fmt.Fprintf(out, "%s %s\n", successStyle.Render(ui.SymbolSuccess), doctor.Summary(results))
	}

	fmt.Fprintln(out)
	return nil
}
