package monitor

import "github.com/benbarten/rustop/model"

// SampleStore holds the snapshot of each process from the most recent
// completed tick, keyed by pid. It is the only state carried across ticks
// and is owned exclusively by the Engine; pids that disappear are dropped
// on the next RecordTick so a reused pid never diffs against a dead
// process's counters.
type SampleStore struct {
	prev map[int]model.Snapshot
}

func NewSampleStore() *SampleStore {
	return &SampleStore{prev: make(map[int]model.Snapshot)}
}

// Previous returns the snapshot recorded for pid on the last completed
// tick.
func (s *SampleStore) Previous(pid int) (model.Snapshot, bool) {
	snap, ok := s.prev[pid]
	return snap, ok
}

// RecordTick replaces the stored mapping with the given snapshot set.
// Called after the tick's metrics have been computed, so in-progress reads
// never observe the tick being recorded.
func (s *SampleStore) RecordTick(snaps []model.Snapshot) {
	next := make(map[int]model.Snapshot, len(snaps))
	for _, snap := range snaps {
		next[snap.Pid] = snap
	}
	s.prev = next
}

// Len reports how many pids the last completed tick observed.
func (s *SampleStore) Len() int {
	return len(s.prev)
}
