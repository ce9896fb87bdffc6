package parsers

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseLoadAvg extracts the 1, 5, and 15 minute load averages from a
// loadavg line. The trailing runnable/total and last-PID fields are
// ignored.
func ParseLoadAvg(procLoadavg string) ([3]float64, error) {
	var loads [3]float64

	fields := strings.Fields(procLoadavg)
	if len(fields) < 3 {
		return loads, fmt.Errorf("loadavg has %d fields, need at least 3", len(fields))
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return loads, fmt.Errorf("parsing load average %d: %w", i+1, err)
		}
		loads[i] = v
	}
	return loads, nil
}

// ParseUptime converts the first figure of an uptime line (seconds since
// boot, with a fractional part) to a duration. The second figure, idle
// time summed across cores, is not used.
func ParseUptime(procUptime string) (time.Duration, error) {
	fields := strings.Fields(procUptime)
	if len(fields) == 0 {
		return 0, fmt.Errorf("uptime is empty")
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parsing uptime seconds: %w", err)
	}
	return time.Duration(secs * float64(time.Second)), nil
}
