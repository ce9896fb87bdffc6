package monitor

import "time"

// Snapshot is one fully-populated view of the host for a single refresh
// cycle. It is built fresh each cycle, handed to the renderer, and
// discarded; only the collector's rate state survives between cycles.
type Snapshot struct {
	Timestamp  time.Time       `json:"timestamp" yaml:"timestamp"`
	CPUPercent float64         `json:"cpu_percent" yaml:"cpu_percent"`
	Memory     MemoryStats     `json:"memory" yaml:"memory"`
	Processes  []ProcessRecord `json:"processes" yaml:"processes"`

	Hostname string        `json:"hostname" yaml:"hostname"`
	Uptime   time.Duration `json:"uptime" yaml:"uptime"`
	LoadAvg  [3]float64    `json:"load_avg" yaml:"load_avg"`
	Cores    int           `json:"cores" yaml:"cores"`
	Tasks    TaskCounts    `json:"tasks" yaml:"tasks"`
}

// MemoryStats holds the derived memory figures in bytes. Free means
// "available for reclaim/allocation" (the kernel's availability estimate),
// not raw unused pages; Used + Free always equals Total.
type MemoryStats struct {
	TotalBytes uint64 `json:"total_bytes" yaml:"total_bytes"`
	UsedBytes  uint64 `json:"used_bytes" yaml:"used_bytes"`
	FreeBytes  uint64 `json:"free_bytes" yaml:"free_bytes"`
}

// ProcessRecord describes one process row. PIDs are unique within a
// snapshot; the same PID reappears across snapshots while the process
// lives. Order follows the process directory listing, not numeric PID.
type ProcessRecord struct {
	PID         uint32  `json:"pid" yaml:"pid"`
	Name        string  `json:"name" yaml:"name"`
	CPUPercent  float64 `json:"cpu_percent" yaml:"cpu_percent"`
	MemoryBytes uint64  `json:"memory_bytes" yaml:"memory_bytes"`
	State       string  `json:"state" yaml:"state"`
	User        string  `json:"user" yaml:"user"`
}

// TaskCounts tallies process states. Total counts every numeric entry in
// the process directory; the state buckets cover only the rows actually
// collected, since state is known only for processes that were read.
type TaskCounts struct {
	Total    int `json:"total" yaml:"total"`
	Running  int `json:"running" yaml:"running"`
	Sleeping int `json:"sleeping" yaml:"sleeping"`
	Zombie   int `json:"zombie" yaml:"zombie"`
}
