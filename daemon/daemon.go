// Package daemon runs the headless alerting mode: the same sampling engine
// as the TUI, with threshold checks and webhook notifications instead of a
// display.
package daemon

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/benbarten/rustop/alert"
	"github.com/benbarten/rustop/config"
	"github.com/benbarten/rustop/model"
	"github.com/benbarten/rustop/monitor"
	"github.com/benbarten/rustop/proc"
)

// alertCooldown suppresses repeat alerts for the same pid.
const alertCooldown = 60 * time.Second

type Daemon struct {
	engine   *monitor.Engine
	logger   *log.Logger
	interval time.Duration

	mu  sync.RWMutex
	cfg *config.File

	lastAlerts map[int]time.Time
}

func New(interval time.Duration, logger *log.Logger) *Daemon {
	cfg, _ := config.Load()

	return &Daemon{
		engine:     monitor.NewEngine(proc.NewSource(), proc.CoreCount(), logger),
		logger:     logger,
		interval:   interval,
		cfg:        cfg,
		lastAlerts: make(map[int]time.Time),
	}
}

// Run samples until ctx is cancelled, checking every row against the
// configured thresholds. Config edits are picked up live.
func (d *Daemon) Run(ctx context.Context) error {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go d.watchConfig(watchCtx)

	return d.engine.Run(ctx, d.interval, func(metrics []model.Metric, _ monitor.Stats) error {
		for i := range metrics {
			d.checkAlerts(&metrics[i])
		}
		return nil
	})
}

func (d *Daemon) checkAlerts(r *model.Metric) {
	d.mu.RLock()
	cfg := d.cfg
	d.mu.RUnlock()

	webhook := cfg.Webhooks[cfg.ActiveWebhook]
	now := time.Now()

	if t, ok := d.lastAlerts[r.Pid]; ok && now.Sub(t) < alertCooldown {
		return
	}

	if cfg.CPUThreshold > 0 && r.CPU >= cfg.CPUThreshold {
		d.notify(webhook, fmt.Sprintf("High CPU: PID %d (%s) at %.1f%%", r.Pid, r.Name(), r.CPU))
		d.lastAlerts[r.Pid] = now
	}

	if cfg.MemThreshold > 0 && r.PMem >= cfg.MemThreshold {
		d.notify(webhook, fmt.Sprintf("High memory: PID %d (%s) at %.1f%%", r.Pid, r.Name(), r.PMem))
		d.lastAlerts[r.Pid] = now
	}
}

func (d *Daemon) notify(webhook, msg string) {
	d.logger.Println(msg)
	if err := alert.Send(webhook, msg); err != nil {
		d.logger.Printf("webhook delivery failed: %v", err)
	}
}

func (d *Daemon) watchConfig(ctx context.Context) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		d.logger.Printf("config watcher unavailable: %v", err)
		return
	}
	defer w.Close()

	if err := w.Add(config.Path()); err != nil {
		d.logger.Printf("cannot watch %s: %v", config.Path(), err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case e, ok := <-w.Events:
			if !ok {
				return
			}
			if e.Op&fsnotify.Write == fsnotify.Write {
				cfg, err := config.Load()
				if err != nil {
					continue
				}
				d.mu.Lock()
				d.cfg = cfg
				d.mu.Unlock()
				d.logger.Println("config reloaded")
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			d.logger.Printf("config watcher: %v", err)
		}
	}
}
