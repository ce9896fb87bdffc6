// Package ui provides terminal UI building blocks for ptop's output.
//
// The package includes utilization bars, fixed-width tables, and the
// shared color palette, using the Lip Gloss library for consistent
// terminal styling across the dashboard and the one-shot commands.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Healthy utilization, passing checks
//	ColorError     (red)    - Critical utilization, failing checks
//	ColorWarning   (yellow) - Elevated utilization, degraded checks
//	ColorInfo      (cyan)   - Informational accents
//	ColorMuted     (gray)   - Secondary text
//	ColorSecondary (blue)   - Labels
//
// # Utilization Bars
//
// Bars use block characters with caller-supplied color thresholds:
//
//	cfg := ui.BarConfig{Width: 40, Brackets: true, ColorFunc: ui.ThresholdColorFunc(60, 85)}
//	ui.RenderBar(67.5, cfg) // [███████████████████████████░░░░░░░░░░░░░]
//
// The filled and empty cells always total exactly the configured width,
// so a bar is a fixed-size gauge regardless of the value it shows.
//
// # Tables
//
// RenderSimpleTable produces a non-interactive fixed-width table (the
// process list); RenderDoctorTable renders grouped diagnostic results
// with pass/warn/fail symbols.
package ui
