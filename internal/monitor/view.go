package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/ptop/internal/util"
)

// Rendering defaults, also the documented defaults for the config file.
const (
	DefaultRefreshInterval = 100 * time.Millisecond
	DefaultBarWidth        = 40
	DefaultFrameWidth      = 80
)

// RenderOptions carries the knobs a frame depends on besides the snapshot
// itself. The zero value renders with the defaults.
type RenderOptions struct {
	BarWidth int           // cells per utilization bar
	Width    int           // total frame width in cells
	Refresh  time.Duration // cadence shown in the footer
	QuitHint bool          // show the quit key in the footer
	Notice   string        // footer warning, set when the last cycle failed
}

func (o RenderOptions) normalized() RenderOptions {
	if o.BarWidth <= 0 {
		o.BarWidth = DefaultBarWidth
	}
	if o.Width <= 0 {
		o.Width = DefaultFrameWidth
	}
	// The frame must at least fit a labeled bar with its percentage.
	if min := o.BarWidth + 18; o.Width < min {
		o.Width = min
	}
	if o.Refresh <= 0 {
		o.Refresh = DefaultRefreshInterval
	}
	return o
}

// Render draws one complete frame: framed header with the utilization
// meters, the process table, and a footer. It is pure formatting; screen
// clearing and cursor control belong to whichever loop writes the frame.
func Render(snap *Snapshot, opts RenderOptions) string {
	opts = opts.normalized()

	var b strings.Builder
	b.WriteString(renderHeader(snap, opts))
	b.WriteString("\n\n")
	b.WriteString(renderProcessTable(snap, opts))
	b.WriteString("\n\n")
	b.WriteString(renderFooter(snap, opts))
	b.WriteString("\n")
	return b.String()
}

// renderHeader draws the bordered headline section: host identity, task
// census, and the CPU and memory meters.
func renderHeader(snap *Snapshot, opts RenderOptions) string {
	host := snap.Hostname
	if host == "" {
		host = "local"
	}

	lines := []string{
		SectionHeader("ptop", host, opts.Width),
		SectionContentLine(hostLine(snap), opts.Width),
		SectionContentLine(taskLine(snap.Tasks), opts.Width),
		SectionContentLine(cpuLine(snap, opts), opts.Width),
		SectionContentLine(memLine(snap, opts), opts.Width),
		SectionFooter(opts.Width),
	}
	return strings.Join(lines, "\n")
}

func hostLine(snap *Snapshot) string {
	parts := make([]string, 0, 3)
	if snap.Uptime > 0 {
		parts = append(parts, "up "+formatUptime(snap.Uptime))
	}
	if snap.Cores > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", snap.Cores, util.Pluralize(snap.Cores, "core", "cores")))
	}
	parts = append(parts, fmt.Sprintf("load %.2f %.2f %.2f", snap.LoadAvg[0], snap.LoadAvg[1], snap.LoadAvg[2]))
	return LabelStyle.Render(strings.Join(parts, " · "))
}

func taskLine(tasks TaskCounts) string {
	return LabelStyle.Render(fmt.Sprintf("tasks %d · %d running · %d sleeping · %d zombie",
		tasks.Total, tasks.Running, tasks.Sleeping, tasks.Zombie))
}

func cpuLine(snap *Snapshot, opts RenderOptions) string {
	return LabelStyle.Render("CPU ") + MeterBar(opts.BarWidth, snap.CPUPercent)
}

func memLine(snap *Snapshot, opts RenderOptions) string {
	var pct float64
	if snap.Memory.TotalBytes > 0 {
		pct = float64(snap.Memory.UsedBytes) / float64(snap.Memory.TotalBytes) * 100.0
	}
	amounts := ValueStyle.Render(FormatBytes(snap.Memory.UsedBytes) + " / " + FormatBytes(snap.Memory.TotalBytes))
	return LabelStyle.Render("MEM ") + MeterBar(opts.BarWidth, pct) + " " + amounts
}

// renderProcessTable draws the fixed-width process rows. Name gets
// whatever width remains after the numeric columns.
func renderProcessTable(snap *Snapshot, opts RenderOptions) string {
	nameWidth := opts.Width - 40
	if nameWidth < 8 {
		nameWidth = 8
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%7s  %-9s %5s %10s  %-2s %s",
		"PID", "USER", "CPU%", "MEMORY", "S", "NAME")))

	if len(snap.Processes) == 0 {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("no processes visible"))
		return b.String()
	}

	for _, rec := range snap.Processes {
		user := rec.User
		if user == "" {
			user = "-"
		}

		cpuCell := MetricStyle(rec.CPUPercent).Render(fmt.Sprintf("%5.1f", rec.CPUPercent))
		stateCell := StateStyle(rec.State).Render(fmt.Sprintf("%-2s", rec.State))

		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%7d  %-9s %s %10s  %s %s",
			rec.PID,
			util.Truncate(user, 9),
			cpuCell,
			FormatBytes(rec.MemoryBytes),
			stateCell,
			util.Truncate(rec.Name, nameWidth)))
	}
	return b.String()
}

func renderFooter(snap *Snapshot, opts RenderOptions) string {
	parts := make([]string, 0, 4)
	if opts.QuitHint {
		parts = append(parts, "q quit")
	}
	parts = append(parts, fmt.Sprintf("refresh %s", opts.Refresh))
	parts = append(parts, fmt.Sprintf("showing %d of %d %s",
		len(snap.Processes), snap.Tasks.Total, util.Pluralize(snap.Tasks.Total, "task", "tasks")))

	footer := FooterStyle.Render(strings.Join(parts, " · "))
	if opts.Notice != "" {
		footer += "\n" + ErrorNoticeStyle.Render(opts.Notice)
	}
	return footer
}

// formatUptime renders a boot age compactly, dropping units that would
// read as zero at the front.
func formatUptime(d time.Duration) string {
	total := int(d.Seconds())
	days := total / 86400
	hours := (total % 86400) / 3600
	mins := (total % 3600) / 60
	secs := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
}

// FormatBytes renders a byte count with the largest unit that keeps the
// scaled value at or above one, capped at TB, always two decimals.
func FormatBytes(bytes uint64) string {
	const unit = 1024.0
	units := [...]string{"B", "KB", "MB", "GB", "TB"}

	value := float64(bytes)
	idx := 0
	for value >= unit && idx < len(units)-1 {
		value /= unit
		idx++
	}
	return fmt.Sprintf("%.2f %s", value, units[idx])
}
