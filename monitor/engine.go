package monitor

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/benbarten/rustop/model"
	"github.com/benbarten/rustop/proc"
)

// State tracks where the refresh loop is in its lifecycle.
type State int

const (
	StateInit State = iota
	StateRunning
	StateStopped
	StateOneShotDone
)

// MaxConsecutiveFailures is how many enumeration failures in a row the loop
// tolerates before giving up. Isolated failures skip the tick and retry;
// repeated ones would otherwise leave a silently frozen display.
const MaxConsecutiveFailures = 5

// Stats is the system-wide header data published alongside each tick.
type Stats struct {
	Tasks         int
	Running       int
	L1, L5, L15   float64
	UptimeSeconds float64
	MemTotalKB    int64
}

// RenderFunc receives the full metric set for one tick. A render error is
// logged and the frame skipped; it never stops the loop.
type RenderFunc func(metrics []model.Metric, stats Stats) error

// Engine drives the sample → diff → publish cycle. It owns the SampleStore;
// nothing else reads or writes it.
type Engine struct {
	source proc.Source
	store  *SampleStore
	cores  int
	logger *log.Logger

	state    State
	failures int
}

func NewEngine(source proc.Source, cores int, logger *log.Logger) *Engine {
	return &Engine{
		source: source,
		store:  NewSampleStore(),
		cores:  cores,
		logger: logger,
		state:  StateInit,
	}
}

func (e *Engine) State() State { return e.state }

// Tick performs one full sample-and-diff cycle: snapshot the process table,
// derive metrics against the previous tick, then record the new tick in the
// store. The store update happens last so metric computation never mixes
// the in-progress tick with the completed one.
func (e *Engine) Tick() ([]model.Metric, Stats, error) {
	snaps, err := e.source.Processes()
	if err != nil {
		e.failures++
		if e.failures >= MaxConsecutiveFailures {
			return nil, Stats{}, fmt.Errorf("process enumeration failed %d times in a row: %w", e.failures, err)
		}
		return nil, Stats{}, err
	}
	e.failures = 0

	memTotal := proc.ReadMemTotalKB()
	metrics := BuildMetrics(snaps, e.store, e.cores, memTotal)
	e.store.RecordTick(snaps)

	stats := Stats{
		Tasks:      len(snaps),
		MemTotalKB: memTotal,
	}
	for _, s := range snaps {
		if s.State == 'R' {
			stats.Running++
		}
	}
	stats.L1, stats.L5, stats.L15 = proc.ReadLoadavg()
	stats.UptimeSeconds = proc.ReadUptime()

	return metrics, stats, nil
}

// Run executes the periodic refresh loop until ctx is cancelled or the
// consecutive-failure threshold is hit. The interval is a lower bound: a
// slow tick delays the next one instead of stacking missed ticks (that is
// time.Ticker's drop semantics). The wait between ticks is interruptible,
// so cancellation is honored promptly rather than at the next boundary.
func (e *Engine) Run(ctx context.Context, interval time.Duration, render RenderFunc) error {
	e.state = StateRunning
	defer func() { e.state = StateStopped }()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			metrics, stats, err := e.Tick()
			if err != nil {
				if e.failures >= MaxConsecutiveFailures {
					return err
				}
				e.logger.Printf("tick skipped: %v", err)
				continue
			}

			if err := render(metrics, stats); err != nil {
				e.logger.Printf("render failed, frame skipped: %v", err)
			}
		}
	}
}

// RunOnce performs the single-shot path: prime the store with a baseline
// sample, wait one interval, then produce and render exactly one cycle.
// Without the priming sample every CPU column would read zero.
func (e *Engine) RunOnce(ctx context.Context, interval time.Duration, render RenderFunc) error {
	if _, _, err := e.Tick(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(interval):
	}

	metrics, stats, err := e.Tick()
	if err != nil {
		return err
	}
	e.state = StateOneShotDone

	return render(metrics, stats)
}
