// Package monitor implements sampling and rendering for the local system
// dashboard.
//
// The dashboard displays aggregate CPU utilization, memory usage, and a
// capped table of running processes, all read from a proc-style filesystem
// and refreshed on a fixed cadence (default 100ms).
//
// # Key Components
//
//	Collector  - Reads the accounting sources and produces one Snapshot
//	             per cycle, holding the previous cycle's counters so CPU
//	             rates can be computed as deltas
//	Snapshot   - The complete, immutable result of one sampling cycle
//	Model      - Bubble Tea model for the interactive dashboard
//	Loop       - Plain renderer for --plain runs and non-terminal output
//	parsers    - Pure text parsers for the individual source formats
//
// # Sampling Cycle
//
// Both delivery modes run the same serialized cycle:
//
//  1. Collect() reads /proc/stat, /proc/meminfo, the per-process entries,
//     and the host files, and assembles a Snapshot
//  2. Render() formats the Snapshot into one complete frame
//  3. The frame replaces the previous one (screen clear + cursor home)
//  4. The loop sleeps for the refresh interval and starts over
//
// The Collector keeps per-cycle state (previous CPU counters, per-PID
// tick baselines) and is not safe for concurrent use. The Bubble Tea
// model preserves this by scheduling the next tick only after the current
// cycle's result has arrived; the plain loop is single-threaded by
// construction.
//
// # Failure Handling
//
// A cycle that cannot read or parse a required source fails as a unit:
// the previous frame stays on screen, the failure is logged, and the next
// tick retries. Processes that vanish mid-scan are skipped silently, since
// that race is ordinary operation. Only a failed write to the output
// stream terminates the loop.
package monitor
