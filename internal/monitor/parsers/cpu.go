package parsers

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// CPUCounters holds the eight cumulative jiffie counters from the
// aggregate cpu line. Counters only ever grow on a healthy host; a
// decrease means wraparound or a host reset and invalidates any delta.
type CPUCounters struct {
	User    uint64
	Nice    uint64
	System  uint64
	Idle    uint64
	IOWait  uint64
	IRQ     uint64
	SoftIRQ uint64
	Steal   uint64
}

// Total returns the sum of all eight counters.
func (c CPUCounters) Total() uint64 {
	return c.User + c.Nice + c.System + c.Idle + c.IOWait + c.IRQ + c.SoftIRQ + c.Steal
}

// IdleTotal returns the jiffies spent not doing work: idle plus iowait.
func (c CPUCounters) IdleTotal() uint64 {
	return c.Idle + c.IOWait
}

// Wrapped reports whether any counter went backwards relative to prev,
// which indicates counter wraparound or a host reset. A wrapped sample
// cannot produce a meaningful delta and must become the new baseline.
func (c CPUCounters) Wrapped(prev CPUCounters) bool {
	return c.User < prev.User ||
		c.Nice < prev.Nice ||
		c.System < prev.System ||
		c.Idle < prev.Idle ||
		c.IOWait < prev.IOWait ||
		c.IRQ < prev.IRQ ||
		c.SoftIRQ < prev.SoftIRQ ||
		c.Steal < prev.Steal
}

// DeltaCPUPercent computes utilization across two samples: the share of
// elapsed jiffies that were not idle or iowait. A wrapped pair or a pair
// with no elapsed jiffies yields 0.0 rather than a garbage figure. The
// result is always within [0, 100].
func DeltaCPUPercent(prev, cur CPUCounters) float64 {
	if cur.Wrapped(prev) {
		return 0.0
	}

	deltaTotal := cur.Total() - prev.Total()
	if deltaTotal == 0 {
		return 0.0
	}
	deltaIdle := cur.IdleTotal() - prev.IdleTotal()

	pct := float64(deltaTotal-deltaIdle) / float64(deltaTotal) * 100.0
	if pct < 0 {
		return 0.0
	}
	if pct > 100 {
		return 100.0
	}
	return pct
}

// ParseCPUCounters extracts the aggregate cpu line from stat file text.
// The aggregate line is the one whose marker is exactly "cpu" (followed by
// whitespace), not the per-core cpu0/cpu1 lines. At least the first four
// counters (user, nice, system, idle) must be present; the remaining four
// default to zero on older kernels that omit them.
func ParseCPUCounters(procStat string) (CPUCounters, error) {
	scanner := bufio.NewScanner(strings.NewReader(procStat))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}

		fields := strings.Fields(line)
		// fields[0] is the "cpu" marker; counters follow.
		if len(fields) < 5 {
			return CPUCounters{}, fmt.Errorf("aggregate cpu line has %d fields, need at least 4 counters: %q", len(fields)-1, line)
		}

		var vals [8]uint64
		for i := 0; i < 8 && i+1 < len(fields); i++ {
			v, err := strconv.ParseUint(fields[i+1], 10, 64)
			if err != nil {
				return CPUCounters{}, fmt.Errorf("parsing cpu counter %d: %w", i+1, err)
			}
			vals[i] = v
		}

		return CPUCounters{
			User:    vals[0],
			Nice:    vals[1],
			System:  vals[2],
			Idle:    vals[3],
			IOWait:  vals[4],
			IRQ:     vals[5],
			SoftIRQ: vals[6],
			Steal:   vals[7],
		}, nil
	}

	if err := scanner.Err(); err != nil {
		return CPUCounters{}, fmt.Errorf("scanning stat file: %w", err)
	}
	return CPUCounters{}, fmt.Errorf("aggregate cpu line not found")
}

// CountCores counts the per-core cpuN lines in stat file text.
func CountCores(procStat string) int {
	scanner := bufio.NewScanner(strings.NewReader(procStat))
	cores := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "cpu") && len(line) > 3 && line[3] >= '0' && line[3] <= '9' {
			cores++
		}
	}
	return cores
}
