package monitor

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/ptop/internal/errors"
	"github.com/rileyhilliard/ptop/internal/logger"
)

// brokenWriter starts failing at the failFrom-th Write call. failFrom 1
// rejects everything, failFrom 2 lets the banner through.
type brokenWriter struct {
	calls    int
	failFrom int
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.calls >= w.failFrom {
		return 0, io.ErrClosedPipe
	}
	return len(p), nil
}

func newTestLoop(f *procFixture, out io.Writer, refresh time.Duration) *Loop {
	opts := RenderOptions{Refresh: refresh, BarWidth: 10}
	return NewLoop(f.collector(0), out, opts, logger.Noop())
}

func TestNewLoop_NormalizesOptions(t *testing.T) {
	f := newProcFixture(t)
	l := NewLoop(f.collector(0), &bytes.Buffer{}, RenderOptions{QuitHint: true}, nil)

	assert.False(t, l.opts.QuitHint, "plain loop has no key handling to hint at")
	assert.Equal(t, DefaultRefreshInterval, l.opts.Refresh)
	assert.Equal(t, DefaultFrameWidth, l.opts.Width)
	assert.NotNil(t, l.log)
}

func TestLoop_RendersFrames(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(1, "systemd", "S", 10, 5, 100, "0")
	f.addProcess(842, "nginx", "R", 20, 10, 256, "33")

	var out bytes.Buffer
	l := newTestLoop(f, &out, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	err := l.Run(ctx)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "sampling every 5ms")
	assert.Contains(t, text, "ptop")
	assert.Contains(t, text, "nginx")
	assert.Contains(t, text, "systemd")
}

func TestLoop_BannerWriteFailureIsFatal(t *testing.T) {
	f := newProcFixture(t)
	l := newTestLoop(f, &brokenWriter{failFrom: 1}, 5*time.Millisecond)

	err := l.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrOutput))
}

func TestLoop_FrameWriteFailureIsFatal(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(1, "systemd", "S", 10, 5, 100, "0")

	// The banner goes through, every later write fails. The cursor and
	// clear-screen sequences swallow their errors inside termenv, so the
	// frame write is the one that surfaces the failure.
	l := newTestLoop(f, &brokenWriter{failFrom: 2}, 2*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := l.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrOutput))
}

func TestLoop_StartupCollectFailureIsFatal(t *testing.T) {
	f := newProcFixture(t)
	f.setStat("not a stat file\n")

	l := newTestLoop(f, &bytes.Buffer{}, 5*time.Millisecond)

	err := l.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrParse))
}

func TestLoop_CycleFailureKeepsRunning(t *testing.T) {
	f := newProcFixture(t)
	f.addProcess(842, "nginx", "R", 20, 10, 256, "33")

	var out bytes.Buffer
	buf := logger.NewBufferLogger()
	opts := RenderOptions{Refresh: 4 * time.Millisecond, BarWidth: 10}
	l := NewLoop(f.collector(0), &out, opts, buf)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	// Let a few clean cycles land, then break the source mid-run.
	time.Sleep(20 * time.Millisecond)
	f.setStat("corrupted\n")
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err, "parse failures retry instead of terminating")
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancellation")
	}
	assert.Contains(t, out.String(), "nginx", "frames from clean cycles were drawn")
	assert.True(t, buf.HasLevel("warn"), "failed cycles are logged")
}

func TestLoop_CancelledContext(t *testing.T) {
	f := newProcFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	l := newTestLoop(f, &out, 5*time.Millisecond)

	err := l.Run(ctx)
	assert.NoError(t, err)
}
