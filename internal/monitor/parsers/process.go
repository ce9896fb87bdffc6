package parsers

import (
	"fmt"
	"strconv"
	"strings"
)

// PIDStat is the subset of a per-process stat line the dashboard uses.
// UTime and STime are in clock ticks; RSSPages is in pages. Conversion
// to percentages and bytes happens in the collector, which knows the
// tick rate of the sampling loop and the system page size.
type PIDStat struct {
	Comm     string
	State    string
	UTime    uint64
	STime    uint64
	RSSPages int64
}

// ParsePIDStat parses a single per-process stat line. The comm field is
// wrapped in parentheses and may itself contain spaces, parentheses, and
// newlines, so the line is split on the first '(' and the last ')'
// rather than on whitespace.
//
// Field numbers below follow the kernel's 1-based proc(5) numbering;
// after the closing paren, field N lives at index N-3 of the remaining
// whitespace-separated fields.
func ParsePIDStat(statLine string) (PIDStat, error) {
	open := strings.IndexByte(statLine, '(')
	closing := strings.LastIndexByte(statLine, ')')
	if open < 0 || closing < 0 || closing < open {
		return PIDStat{}, fmt.Errorf("stat line has no parenthesized comm field")
	}

	comm := statLine[open+1 : closing]
	after := strings.Fields(statLine[closing+1:])

	// Field 24 (rss) is the highest we read, so index 21 must exist.
	if len(after) < 22 {
		return PIDStat{}, fmt.Errorf("stat line has %d fields after comm, need at least 22", len(after))
	}

	utime, err := strconv.ParseUint(after[11], 10, 64) // field 14
	if err != nil {
		return PIDStat{}, fmt.Errorf("parsing utime: %w", err)
	}
	stime, err := strconv.ParseUint(after[12], 10, 64) // field 15
	if err != nil {
		return PIDStat{}, fmt.Errorf("parsing stime: %w", err)
	}
	rss, err := strconv.ParseInt(after[21], 10, 64) // field 24
	if err != nil {
		return PIDStat{}, fmt.Errorf("parsing rss: %w", err)
	}

	return PIDStat{
		Comm:     comm,
		State:    after[0], // field 3
		UTime:    utime,
		STime:    stime,
		RSSPages: rss,
	}, nil
}

// ParseUIDFromStatus extracts the real UID from a per-process status
// file. The Uid line carries real, effective, saved, and filesystem
// IDs; the first is the owner shown in the process table.
func ParseUIDFromStatus(status string) (string, error) {
	for _, line := range strings.Split(status, "\n") {
		if !strings.HasPrefix(line, "Uid:") {
			continue
		}
		fields := strings.Fields(line[len("Uid:"):])
		if len(fields) == 0 {
			return "", fmt.Errorf("Uid line has no fields")
		}
		return fields[0], nil
	}
	return "", fmt.Errorf("Uid line not found in status")
}

// ParseComm trims the single trailing newline the kernel appends to a
// comm file. Only one newline is removed: a name that somehow ends in a
// newline itself would otherwise be silently shortened.
func ParseComm(raw string) string {
	return strings.TrimSuffix(raw, "\n")
}
