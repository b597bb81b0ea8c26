package model

import "time"

// MaxRows caps how many rows the plain renderer prints when the terminal
// height cannot be determined.
const MaxRows = 100

// Snapshot is one process as observed at a single instant. It is produced
// fresh every tick by a proc.Source and never mutated afterwards.
type Snapshot struct {
	Pid  int
	Uid  uint32
	User string
	Comm string // program name from /proc/<pid>/stat

	State byte
	Nice  int64

	// CPUTime is the cumulative user+system time consumed since the
	// process started. Monotonically non-decreasing for a given process;
	// a decrease between ticks means the pid was reused.
	CPUTime time.Duration

	VSizeKB  int64
	RSSBytes uint64

	Kernel bool
	Cmd    string // full cmdline, empty for kernel threads

	Taken time.Time
}

// Metric is the per-tick derived row: a Snapshot joined with the rates
// computed against the previous tick. Recomputed every tick, never stored.
type Metric struct {
	Pid  int
	Uid  uint32
	User string
	Comm string

	State byte
	Nice  int64

	CPU  float64 // percent, normalized by core count
	PMem float64 // RSS as percent of MemTotal

	CPUTime  time.Duration
	VSizeKB  int64
	RSSBytes uint64

	Kernel bool
	Cmd    string
}

// Name returns the display name for filtering and rendering: the full
// cmdline when available, otherwise the stat comm field.
func (m Metric) Name() string {
	if m.Cmd != "" {
		return m.Cmd
	}
	return m.Comm
}
