package monitor

import "github.com/benbarten/rustop/model"

// CPUPercent computes the instantaneous CPU utilization between two
// snapshots of the same pid, normalized by core count so 100 means every
// core busy. It is a pure function and never returns a negative value:
//   - a cumulative counter that went backwards means the pid was reused by
//     a new process, so there is no valid baseline;
//   - a zero or negative wall-clock delta (two samples in the same instant,
//     or clock weirdness) yields 0 rather than dividing by zero.
func CPUPercent(prev, cur model.Snapshot, cores int) float64 {
	if cores <= 0 {
		cores = 1
	}

	elapsed := cur.Taken.Sub(prev.Taken).Seconds()
	if elapsed <= 0 {
		return 0
	}

	if cur.CPUTime < prev.CPUTime {
		return 0 // pid reuse: counters restarted
	}

	busy := (cur.CPUTime - prev.CPUTime).Seconds()
	pct := 100 * busy / elapsed / float64(cores)
	if pct < 0 {
		return 0
	}
	return pct
}

// BuildMetrics derives the per-tick metric rows from the current snapshot
// set, diffing each pid against the store's previous tick. Pids without a
// baseline (first tick, or newly started) report 0 CPU. The store is not
// updated here; the Engine records the tick after the rows are consumed.
func BuildMetrics(snaps []model.Snapshot, store *SampleStore, cores int, memTotalKB int64) []model.Metric {
	metrics := make([]model.Metric, 0, len(snaps))

	for _, cur := range snaps {
		m := model.Metric{
			Pid:      cur.Pid,
			Uid:      cur.Uid,
			User:     cur.User,
			Comm:     cur.Comm,
			State:    cur.State,
			Nice:     cur.Nice,
			CPUTime:  cur.CPUTime,
			VSizeKB:  cur.VSizeKB,
			RSSBytes: cur.RSSBytes,
			Kernel:   cur.Kernel,
			Cmd:      cur.Cmd,
		}

		if prev, ok := store.Previous(cur.Pid); ok {
			m.CPU = CPUPercent(prev, cur, cores)
		}

		if memTotalKB > 0 {
			m.PMem = float64(cur.RSSBytes) / 1024 * 100 / float64(memTotalKB)
		}

		metrics = append(metrics, m)
	}

	return metrics
}
