package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/rileyhilliard/ptop/internal/logger"
	"github.com/rileyhilliard/ptop/internal/monitor"
	"github.com/rileyhilliard/ptop/internal/ui"
)

// snapshotCommand samples the system twice, one refresh interval apart,
// and prints the second snapshot. The first sample only primes the CPU
// baselines so the printed rates are real deltas.
func snapshotCommand(cmd *cobra.Command, format string, out io.Writer) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(os.Stderr, "snapshot", debugFlag)

	collector := monitor.NewCollector(cfg.ProcRoot, cfg.ProcessLimit)
	collector.SetLogger(log)

	ctx := context.Background()
	if _, err := collector.Collect(ctx); err != nil {
		return err
	}
	time.Sleep(cfg.RefreshInterval)

	snap, err := collector.Collect(ctx)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)

	case "yaml":
		data, err := yaml.Marshal(snap)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrOutput,
				"Failed to encode snapshot", "")
		}
		_, err = out.Write(data)
		return err

	case "", "text":
		_, err := io.WriteString(out, renderSnapshotText(snap))
		return err

	default:
		return errors.New(errors.ErrExec,
			"Unknown format: "+format,
			"Supported formats: text, json, yaml")
	}
}

// renderSnapshotText formats a snapshot for scripts and logs: flat header
// lines and an uncolored process table, no frame chrome.
func renderSnapshotText(snap *monitor.Snapshot) string {
	out := fmt.Sprintf("host: %s\n", snap.Hostname)
	out += fmt.Sprintf("cpu: %.1f%% (%d cores)\n", snap.CPUPercent, snap.Cores)
	out += fmt.Sprintf("memory: %s / %s used\n",
		monitor.FormatBytes(snap.Memory.UsedBytes),
		monitor.FormatBytes(snap.Memory.TotalBytes))
	out += fmt.Sprintf("tasks: %d total, %d running, %d sleeping, %d zombie\n",
		snap.Tasks.Total, snap.Tasks.Running, snap.Tasks.Sleeping, snap.Tasks.Zombie)

	if len(snap.Processes) == 0 {
		return out + "no processes visible\n"
	}

	columns := []ui.TableColumn{
		{Title: "PID", Width: 7},
		{Title: "USER", Width: 9},
		{Title: "CPU%", Width: 5},
		{Title: "MEMORY", Width: 10},
		{Title: "S", Width: 2},
		{Title: "NAME", Width: 24},
	}

	rows := make([][]string, len(snap.Processes))
	for i, proc := range snap.Processes {
		rows[i] = []string{
			fmt.Sprintf("%d", proc.PID),
			proc.User,
			fmt.Sprintf("%.1f", proc.CPUPercent),
			monitor.FormatBytes(proc.MemoryBytes),
			proc.State,
			proc.Name,
		}
	}

	return out + "\n" + ui.RenderSimpleTable(columns, rows) + "\n"
}
