package monitor

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"

	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/rileyhilliard/ptop/internal/logger"
)

// Loop drives the plain renderer: full-frame redraws on a single output
// stream, paced by sleeping between cycles. It is the non-interactive
// delivery path, used for --plain runs and non-terminal outputs; the
// interactive dashboard lives in Model.
type Loop struct {
	collector *Collector
	out       io.Writer
	term      *termenv.Output
	opts      RenderOptions
	log       logger.Logger
}

// NewLoop creates a plain rendering loop writing to out.
func NewLoop(collector *Collector, out io.Writer, opts RenderOptions, log logger.Logger) *Loop {
	if log == nil {
		log = logger.Noop()
	}
	opts.QuitHint = false
	return &Loop{
		collector: collector,
		out:       out,
		term:      termenv.NewOutput(out),
		opts:      opts.normalized(),
		log:       log,
	}
}

// Run prints a banner, primes the rate baseline, then redraws frames
// until ctx is cancelled. A failed cycle keeps the previous frame on
// screen and retries at the next tick; a failed write terminates the
// loop, since a broken sink cannot be drawn around.
func (l *Loop) Run(ctx context.Context) error {
	if _, err := fmt.Fprintf(l.out, "ptop · sampling every %s · press ctrl+c to stop\n", l.opts.Refresh); err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			"Cannot write to the output stream", "")
	}

	// Prime the CPU baselines during the banner pause so the first frame
	// carries real deltas instead of a column of zeros.
	if _, err := l.collector.Collect(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	if err := l.sleep(ctx); err != nil {
		return nil
	}

	l.term.HideCursor()
	defer l.term.ShowCursor()

	var lastSnap *Snapshot
	var notice string

	for {
		snap, err := l.collector.Collect(ctx)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil
		case err != nil:
			// Fatal for the cycle, not for the loop: the next cycle is
			// the retry.
			l.log.Warn("cycle failed: %v", err)
			notice = "last cycle failed: " + err.Error()
		default:
			lastSnap = snap
			notice = ""
		}

		if lastSnap != nil {
			if err := l.draw(lastSnap, notice); err != nil {
				return err
			}
		}

		if err := l.sleep(ctx); err != nil {
			return nil
		}
	}
}

// draw clears the screen, homes the cursor, and writes one frame.
func (l *Loop) draw(snap *Snapshot, notice string) error {
	opts := l.opts
	opts.Notice = notice

	l.term.ClearScreen()
	if _, err := io.WriteString(l.out, Render(snap, opts)); err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			"Cannot write to the output stream", "")
	}
	return nil
}

// sleep pauses for one refresh interval, returning early when ctx ends.
func (l *Loop) sleep(ctx context.Context) error {
	timer := time.NewTimer(l.opts.Refresh)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
