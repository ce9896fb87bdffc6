package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rileyhilliard/ptop/internal/monitor/parsers"
)

// ProcRootCheck verifies the accounting filesystem root exists.
type ProcRootCheck struct {
	Root string
}

func (c *ProcRootCheck) Name() string     { return "proc_root" }
func (c *ProcRootCheck) Category() string { return "PROC" }

func (c *ProcRootCheck) Run() CheckResult {
	info, err := os.Stat(c.Root)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Accounting root not accessible: %s", c.Root),
			Suggestion: "Check that the proc filesystem is mounted, or point proc_root at a directory of fixture files",
		}
	}
	if !info.IsDir() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Accounting root is not a directory: %s", c.Root),
			Suggestion: "proc_root must be a directory like /proc",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Accounting root: %s", c.Root),
	}
}

// CPUSourceCheck verifies the CPU accounting source reads and parses.
type CPUSourceCheck struct {
	Root string
}

func (c *CPUSourceCheck) Name() string     { return "cpu_source" }
func (c *CPUSourceCheck) Category() string { return "PROC" }

func (c *CPUSourceCheck) Run() CheckResult {
	raw, err := parsers.ReadFileCapped(filepath.Join(c.Root, "stat"), parsers.DefaultReadCap)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot read CPU accounting source: %v", err),
			Suggestion: "Check that " + filepath.Join(c.Root, "stat") + " exists and is readable",
		}
	}

	if _, err := parsers.ParseCPUCounters(string(raw)); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("CPU accounting source is malformed: %v", err),
			Suggestion: "The file must carry an aggregate 'cpu' counter line",
		}
	}

	cores := parsers.CountCores(string(raw))
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("CPU accounting readable (%d cores)", cores),
	}
}

// MemorySourceCheck verifies the memory accounting source reads and parses.
type MemorySourceCheck struct {
	Root string
}

func (c *MemorySourceCheck) Name() string     { return "memory_source" }
func (c *MemorySourceCheck) Category() string { return "PROC" }

func (c *MemorySourceCheck) Run() CheckResult {
	raw, err := parsers.ReadFileCapped(filepath.Join(c.Root, "meminfo"), parsers.DefaultReadCap)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot read memory accounting source: %v", err),
			Suggestion: "Check that " + filepath.Join(c.Root, "meminfo") + " exists and is readable",
		}
	}

	mem, err := parsers.ParseMemInfo(string(raw))
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Memory accounting source is malformed: %v", err),
			Suggestion: "The file must carry a MemTotal line in kB",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Memory accounting readable (%d MB total)", mem.TotalBytes/(1024*1024)),
	}
}

// ProcessVisibilityCheck verifies per-process entries are visible.
type ProcessVisibilityCheck struct {
	Root string
}

func (c *ProcessVisibilityCheck) Name() string     { return "process_visibility" }
func (c *ProcessVisibilityCheck) Category() string { return "PROC" }

func (c *ProcessVisibilityCheck) Run() CheckResult {
	entries, err := os.ReadDir(c.Root)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Cannot list process entries: %v", err),
			Suggestion: "Check permissions on " + c.Root,
		}
	}

	count := 0
	for _, entry := range entries {
		if _, err := strconv.ParseUint(entry.Name(), 10, 32); err == nil {
			count++
		}
	}

	if count == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No process entries visible",
			Suggestion: "A hidepid mount option can hide other users' processes; the table will be empty",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%d process entr%s visible", count, pluralizeY(count)),
	}
}

// HostMetricsCheck reports whether the optional host sources are readable.
// These degrade quietly at runtime, so missing ones warn rather than fail.
type HostMetricsCheck struct {
	Root string
}

func (c *HostMetricsCheck) Name() string     { return "host_metrics" }
func (c *HostMetricsCheck) Category() string { return "PROC" }

func (c *HostMetricsCheck) Run() CheckResult {
	var missing []string

	if raw, err := parsers.ReadFileCapped(filepath.Join(c.Root, "uptime"), parsers.DefaultReadCap); err != nil {
		missing = append(missing, "uptime")
	} else if _, err := parsers.ParseUptime(string(raw)); err != nil {
		missing = append(missing, "uptime")
	}

	if raw, err := parsers.ReadFileCapped(filepath.Join(c.Root, "loadavg"), parsers.DefaultReadCap); err != nil {
		missing = append(missing, "loadavg")
	} else if _, err := parsers.ParseLoadAvg(string(raw)); err != nil {
		missing = append(missing, "loadavg")
	}

	if len(missing) > 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Host metrics unavailable: %v", missing),
			Suggestion: "The header shows partial data; everything else works",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Host metrics readable (uptime, loadavg)",
	}
}

func pluralizeY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

// NewProcChecks creates all accounting-source checks against root.
func NewProcChecks(root string) []Check {
	return []Check{
		&ProcRootCheck{Root: root},
		&CPUSourceCheck{Root: root},
		&MemorySourceCheck{Root: root},
		&ProcessVisibilityCheck{Root: root},
		&HostMetricsCheck{Root: root},
	}
}
