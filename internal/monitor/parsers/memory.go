package parsers

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// MemInfo holds the three meminfo figures the dashboard needs, already
// converted from the kernel's kibibyte units to bytes.
type MemInfo struct {
	TotalBytes     uint64
	FreeBytes      uint64
	AvailableBytes uint64
}

// ParseMemInfo extracts MemTotal, MemFree, and MemAvailable from meminfo
// text. MemTotal is essential: without it no headline figure can be
// derived, so a missing or malformed value is an error. MemFree and
// MemAvailable degrade to zero when absent (pre-3.14 kernels have no
// MemAvailable).
func ParseMemInfo(procMeminfo string) (MemInfo, error) {
	var info MemInfo
	foundTotal := false

	scanner := bufio.NewScanner(strings.NewReader(procMeminfo))
	for scanner.Scan() {
		line := scanner.Text()

		key, kb, ok := parseMeminfoLine(line)
		if !ok {
			continue
		}

		switch key {
		case "MemTotal":
			v, err := strconv.ParseUint(kb, 10, 64)
			if err != nil {
				return MemInfo{}, fmt.Errorf("parsing MemTotal: %w", err)
			}
			info.TotalBytes = v * 1024
			foundTotal = true
		case "MemFree":
			if v, err := strconv.ParseUint(kb, 10, 64); err == nil {
				info.FreeBytes = v * 1024
			}
		case "MemAvailable":
			if v, err := strconv.ParseUint(kb, 10, 64); err == nil {
				info.AvailableBytes = v * 1024
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return MemInfo{}, fmt.Errorf("scanning meminfo: %w", err)
	}
	if !foundTotal {
		return MemInfo{}, fmt.Errorf("MemTotal not found in meminfo")
	}
	return info, nil
}

// parseMeminfoLine splits a "Key:   12345 kB" record into its key and
// numeric value. The unit suffix is constant in the kernel and ignored.
func parseMeminfoLine(line string) (key, value string, ok bool) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return "", "", false
	}

	fields := strings.Fields(line[colon+1:])
	if len(fields) == 0 {
		return "", "", false
	}
	return line[:colon], fields[0], true
}
