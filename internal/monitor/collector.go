package monitor

import (
	"context"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/rileyhilliard/ptop/internal/logger"
	"github.com/rileyhilliard/ptop/internal/monitor/parsers"
)

// DefaultProcessLimit caps how many process rows a snapshot carries.
const DefaultProcessLimit = 20

// Collector samples the accounting files under a procfs root and builds
// snapshots. It owns the rate state: the previous aggregate CPU counters
// and a per-PID tick baseline, both replaced wholesale each cycle so
// vanished PIDs never leave stale entries behind.
//
// A Collector is not safe for concurrent use; each sampling loop owns one.
type Collector struct {
	root     string
	limit    int
	readCap  int
	pageSize int
	log      logger.Logger

	prevCPU   *parsers.CPUCounters
	prevTicks map[uint32]uint64 // pid -> utime+stime at last cycle

	userNames map[string]string // uid -> resolved name, grows per boot session
}

// NewCollector creates a collector reading from the given procfs root
// (normally "/proc"). A limit <= 0 falls back to DefaultProcessLimit.
func NewCollector(root string, limit int) *Collector {
	if root == "" {
		root = "/proc"
	}
	if limit <= 0 {
		limit = DefaultProcessLimit
	}
	return &Collector{
		root:      root,
		limit:     limit,
		readCap:   parsers.DefaultReadCap,
		pageSize:  os.Getpagesize(),
		log:       logger.Noop(),
		prevTicks: make(map[uint32]uint64),
		userNames: make(map[string]string),
	}
}

// SetLogger routes the collector's diagnostics. Vanished-process skips
// log at debug level only; they are expected churn, not faults.
func (c *Collector) SetLogger(log logger.Logger) {
	if log != nil {
		c.log = log
	}
}

// SetReadCap overrides the per-file read bound, mainly for tests.
func (c *Collector) SetReadCap(readCap int) {
	if readCap > 0 {
		c.readCap = readCap
	}
}

// Collect gathers one snapshot. CPU and memory accounting must parse or
// the whole cycle fails; the process list and host figures degrade
// instead. The first call after construction reports 0.0 CPU everywhere
// because no baseline exists yet.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := &Snapshot{Timestamp: time.Now()}

	deltaTotal, err := c.collectCPU(snap)
	if err != nil {
		return nil, err
	}
	if err := c.collectMemory(snap); err != nil {
		return nil, err
	}
	c.collectProcesses(snap, deltaTotal)
	c.collectHostInfo(snap)

	return snap, nil
}

// collectCPU samples the aggregate counters, derives utilization against
// the previous cycle, and rotates the baseline. It returns the elapsed
// aggregate jiffies so per-process deltas share the same denominator.
func (c *Collector) collectCPU(snap *Snapshot) (uint64, error) {
	raw, err := parsers.ReadFileCapped(filepath.Join(c.root, "stat"), c.readCap)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrParse,
			"Cannot read CPU accounting source",
			"Check that the proc filesystem is mounted (run: ptop doctor)")
	}
	statText := string(raw)

	cur, err := parsers.ParseCPUCounters(statText)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrParse,
			"CPU accounting source is malformed",
			"Run: ptop doctor")
	}

	var deltaTotal uint64
	if c.prevCPU != nil {
		snap.CPUPercent = parsers.DeltaCPUPercent(*c.prevCPU, cur)
		if !cur.Wrapped(*c.prevCPU) {
			deltaTotal = cur.Total() - c.prevCPU.Total()
		}
	}
	c.prevCPU = &cur

	snap.Cores = parsers.CountCores(statText)
	return deltaTotal, nil
}

// collectMemory derives the headline memory figures. Used is what the
// kernel could not hand out right now: total minus available. Hosts
// without an availability estimate fall back to free pages.
func (c *Collector) collectMemory(snap *Snapshot) error {
	raw, err := parsers.ReadFileCapped(filepath.Join(c.root, "meminfo"), c.readCap)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrParse,
			"Cannot read memory accounting source",
			"Check that the proc filesystem is mounted (run: ptop doctor)")
	}

	info, err := parsers.ParseMemInfo(string(raw))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrParse,
			"Memory accounting source is malformed",
			"Run: ptop doctor")
	}

	snap.Memory = deriveMemory(info)
	return nil
}

// deriveMemory turns raw meminfo figures into the headline stats. The
// availability estimate is clamped to total, so used and free always
// partition total exactly whatever the kernel reported.
func deriveMemory(info parsers.MemInfo) MemoryStats {
	avail := info.AvailableBytes
	if avail == 0 {
		avail = info.FreeBytes
	}
	if avail > info.TotalBytes {
		avail = info.TotalBytes
	}

	return MemoryStats{
		TotalBytes: info.TotalBytes,
		UsedBytes:  info.TotalBytes - avail,
		FreeBytes:  avail,
	}
}

// collectProcesses walks the numeric entries of the procfs root in
// listing order, reading each process until the row cap is reached. The
// listing is a live view: any read can fail because the process exited
// in between, and those PIDs are skipped without failing the cycle.
func (c *Collector) collectProcesses(snap *Snapshot, deltaTotal uint64) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		c.log.Warn("cannot list process entries under %s: %v", c.root, err)
		c.prevTicks = make(map[uint32]uint64)
		return
	}

	seen := make(map[uint32]uint64, c.limit)
	records := make([]ProcessRecord, 0, c.limit)

	for _, entry := range entries {
		pid64, err := strconv.ParseUint(entry.Name(), 10, 32)
		if err != nil {
			continue // self, metadata nodes, non-process entries
		}
		pid := uint32(pid64)
		snap.Tasks.Total++

		if len(records) >= c.limit {
			continue // keep counting tasks, stop reading processes
		}

		rec, ticks, hasTicks, ok := c.readProcess(pid)
		if !ok {
			continue
		}

		if hasTicks {
			if deltaTotal > 0 {
				if prev, hasPrev := c.prevTicks[pid]; hasPrev && ticks >= prev {
					rec.CPUPercent = float64(ticks-prev) * 100.0 / float64(deltaTotal)
					if rec.CPUPercent > 100.0 {
						rec.CPUPercent = 100.0
					}
				}
			}
			seen[pid] = ticks
		}

		switch rec.State {
		case "R":
			snap.Tasks.Running++
		case "S", "D", "I":
			snap.Tasks.Sleeping++
		case "Z":
			snap.Tasks.Zombie++
		}

		records = append(records, rec)
	}

	// Replacing the baseline map evicts every PID not seen this cycle.
	c.prevTicks = seen
	snap.Processes = records
}

// readProcess reads one process's name, stat, and status files. A read
// failure means the process exited mid-cycle and the PID is dropped; a
// parse failure inside an otherwise readable file defaults that field so
// the row survives. hasTicks is false when the CPU ticks could not be
// read, so the caller never stores a fabricated baseline.
func (c *Collector) readProcess(pid uint32) (rec ProcessRecord, ticks uint64, hasTicks, ok bool) {
	dir := filepath.Join(c.root, strconv.FormatUint(uint64(pid), 10))

	rawComm, err := parsers.ReadFileCapped(filepath.Join(dir, "comm"), c.readCap)
	if err != nil {
		c.log.Debug("pid %d vanished during scan: %v", pid, err)
		return ProcessRecord{}, 0, false, false
	}

	rec = ProcessRecord{
		PID:   pid,
		Name:  parsers.ParseComm(string(rawComm)),
		State: "?",
	}

	rawStat, err := parsers.ReadFileCapped(filepath.Join(dir, "stat"), c.readCap)
	if err != nil {
		c.log.Debug("pid %d vanished during scan: %v", pid, err)
		return ProcessRecord{}, 0, false, false
	}
	if stat, err := parsers.ParsePIDStat(string(rawStat)); err == nil {
		rec.State = stat.State
		rec.MemoryBytes = uint64(stat.RSSPages) * uint64(c.pageSize)
		ticks = stat.UTime + stat.STime
		hasTicks = true
	} else {
		c.log.Debug("pid %d stat unparsable, fields defaulted: %v", pid, err)
	}

	if rawStatus, err := parsers.ReadFileCapped(filepath.Join(dir, "status"), c.readCap); err == nil {
		if uid, err := parsers.ParseUIDFromStatus(string(rawStatus)); err == nil {
			rec.User = c.lookupUser(uid)
		}
	}

	return rec, ticks, hasTicks, true
}

// lookupUser resolves a UID to a name, caching results. Lookup failures
// fall back to the numeric UID, which is what the big tops show too.
func (c *Collector) lookupUser(uid string) string {
	if name, ok := c.userNames[uid]; ok {
		return name
	}

	name := uid
	if u, err := user.LookupId(uid); err == nil && u.Username != "" {
		name = u.Username
	}
	c.userNames[uid] = name
	return name
}

// collectHostInfo fills the header figures. None of them are essential,
// so every failure degrades to a zero value instead of failing the cycle.
func (c *Collector) collectHostInfo(snap *Snapshot) {
	if hostname, err := os.Hostname(); err == nil {
		snap.Hostname = hostname
	}

	if raw, err := parsers.ReadFileCapped(filepath.Join(c.root, "uptime"), c.readCap); err == nil {
		if uptime, err := parsers.ParseUptime(string(raw)); err == nil {
			snap.Uptime = uptime
		}
	}

	if raw, err := parsers.ReadFileCapped(filepath.Join(c.root, "loadavg"), c.readCap); err == nil {
		if loads, err := parsers.ParseLoadAvg(string(raw)); err == nil {
			snap.LoadAvg = loads
		}
	}
}
