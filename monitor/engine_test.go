package monitor

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/benbarten/rustop/model"
	"github.com/benbarten/rustop/proc"
)

// fakeSource replays a scripted sequence of snapshots (or errors).
type fakeSource struct {
	ticks [][]model.Snapshot
	errs  []error
	calls int
}

func (f *fakeSource) Processes() ([]model.Snapshot, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i >= len(f.ticks) {
		i = len(f.ticks) - 1
	}
	return f.ticks[i], nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestEngineTickComputesDeltas(t *testing.T) {
	t0 := time.Now()
	src := &fakeSource{ticks: [][]model.Snapshot{
		{{Pid: 1, CPUTime: 2 * time.Second, Taken: t0}},
		{{Pid: 1, CPUTime: 2500 * time.Millisecond, Taken: t0.Add(time.Second)}},
	}}

	e := NewEngine(src, 1, testLogger())
	if e.State() != StateInit {
		t.Fatalf("fresh engine should be in INIT, got %v", e.State())
	}

	metrics, _, err := e.Tick()
	if err != nil {
		t.Fatalf("first tick failed: %v", err)
	}
	if metrics[0].CPU != 0 {
		t.Fatalf("first tick has no baseline, want 0 CPU, got %.2f", metrics[0].CPU)
	}

	metrics, stats, err := e.Tick()
	if err != nil {
		t.Fatalf("second tick failed: %v", err)
	}
	if metrics[0].CPU < 49.9 || metrics[0].CPU > 50.1 {
		t.Fatalf("expected ~50%% on second tick, got %.2f", metrics[0].CPU)
	}
	if stats.Tasks != 1 {
		t.Fatalf("expected 1 task, got %d", stats.Tasks)
	}
}

func TestEngineTickCountsRunning(t *testing.T) {
	src := &fakeSource{ticks: [][]model.Snapshot{{
		{Pid: 1, State: 'R', Taken: time.Now()},
		{Pid: 2, State: 'S', Taken: time.Now()},
		{Pid: 3, State: 'R', Taken: time.Now()},
	}}}

	e := NewEngine(src, 1, testLogger())
	_, stats, err := e.Tick()
	if err != nil {
		t.Fatalf("tick failed: %v", err)
	}
	if stats.Tasks != 3 || stats.Running != 2 {
		t.Fatalf("expected 3 tasks / 2 running, got %d / %d", stats.Tasks, stats.Running)
	}
}

func TestEngineTickSurfacesEnumerationFailure(t *testing.T) {
	src := &fakeSource{
		ticks: [][]model.Snapshot{{}},
		errs:  []error{proc.ErrPermission},
	}

	e := NewEngine(src, 1, testLogger())
	_, _, err := e.Tick()
	if !errors.Is(err, proc.ErrPermission) {
		t.Fatalf("expected permission error surfaced, got %v", err)
	}

	// a later success resets the failure counter
	if _, _, err := e.Tick(); err != nil {
		t.Fatalf("recovery tick failed: %v", err)
	}
}

func TestEngineRunStopsAfterConsecutiveFailures(t *testing.T) {
	boom := errors.New("no process table")
	errs := make([]error, MaxConsecutiveFailures+1)
	for i := range errs {
		errs[i] = boom
	}
	src := &fakeSource{ticks: [][]model.Snapshot{{}}, errs: errs}

	e := NewEngine(src, 1, testLogger())
	err := e.Run(context.Background(), time.Millisecond, func([]model.Metric, Stats) error {
		t.Fatal("render must not be called when every tick fails")
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the enumeration error after repeated failures, got %v", err)
	}
	if e.State() != StateStopped {
		t.Fatalf("engine should be STOPPED, got %v", e.State())
	}
}

func TestEngineRunHonorsCancellation(t *testing.T) {
	src := &fakeSource{ticks: [][]model.Snapshot{{{Pid: 1, Taken: time.Now()}}}}
	e := NewEngine(src, 1, testLogger())

	ctx, cancel := context.WithCancel(context.Background())

	rendered := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- e.Run(ctx, time.Millisecond, func([]model.Metric, Stats) error {
			select {
			case rendered <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	<-rendered
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("refresh loop did not stop promptly after cancellation")
	}
	if e.State() != StateStopped {
		t.Fatalf("engine should be STOPPED after cancel, got %v", e.State())
	}
}

func TestEngineRunSkipsFrameOnRenderFailure(t *testing.T) {
	src := &fakeSource{ticks: [][]model.Snapshot{{{Pid: 1, Taken: time.Now()}}}}
	e := NewEngine(src, 1, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := 0
	done := make(chan error, 1)
	go func() {
		done <- e.Run(ctx, time.Millisecond, func([]model.Metric, Stats) error {
			frames++
			if frames == 1 {
				return errors.New("terminal resize race")
			}
			if frames >= 3 {
				cancel()
			}
			return nil
		})
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("render failures must not stop the loop, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("loop did not continue past a render failure")
	}
	if frames < 3 {
		t.Fatalf("expected loop to keep rendering after a failed frame, got %d frames", frames)
	}
}

func TestEngineRunOnce(t *testing.T) {
	t0 := time.Now()
	src := &fakeSource{ticks: [][]model.Snapshot{
		{{Pid: 1, CPUTime: time.Second, Taken: t0}},
		{{Pid: 1, CPUTime: 1100 * time.Millisecond, Taken: t0.Add(200 * time.Millisecond)}},
	}}

	e := NewEngine(src, 1, testLogger())

	rendered := 0
	err := e.RunOnce(context.Background(), time.Millisecond, func(metrics []model.Metric, _ Stats) error {
		rendered++
		if metrics[0].CPU <= 0 {
			t.Fatalf("one-shot frame should carry a CPU delta, got %.2f", metrics[0].CPU)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunOnce failed: %v", err)
	}
	if rendered != 1 {
		t.Fatalf("one-shot mode must render exactly once, got %d", rendered)
	}
	if e.State() != StateOneShotDone {
		t.Fatalf("expected ONE_SHOT_DONE, got %v", e.State())
	}
	if src.calls != 2 {
		t.Fatalf("one-shot mode samples twice (baseline + frame), got %d", src.calls)
	}
}

func TestEngineRunOnceCancelledDuringWait(t *testing.T) {
	src := &fakeSource{ticks: [][]model.Snapshot{{{Pid: 1, Taken: time.Now()}}}}
	e := NewEngine(src, 1, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.RunOnce(ctx, time.Hour, func([]model.Metric, Stats) error {
		t.Fatal("render must not run after cancellation")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
