//go:build !linux

package proc

import (
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/benbarten/rustop/model"
)

// GopsutilSource is the portable process source for platforms without a
// /proc filesystem. Per-pid read failures are skipped the same way the
// procfs walker skips processes that exit mid-scan.
type GopsutilSource struct{}

// NewSource returns the gopsutil-backed process source.
func NewSource() Source {
	return &GopsutilSource{}
}

func (s *GopsutilSource) Processes() ([]model.Snapshot, error) {
	procs, err := process.Processes()
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "permission") {
			return nil, fmt.Errorf("%w: %v", ErrPermission, err)
		}
		return nil, fmt.Errorf("enumerating processes: %w", err)
	}

	now := time.Now()
	snaps := make([]model.Snapshot, 0, len(procs))

	for _, p := range procs {
		if p == nil || p.Pid <= 0 {
			continue
		}

		times, err := p.Times()
		if err != nil {
			continue
		}

		comm, _ := p.Name()
		cmd, _ := p.Cmdline()
		username, _ := p.Username()

		var rss uint64
		var vszKB int64
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			rss = mi.RSS
			vszKB = int64(mi.VMS / 1024)
		}

		var nice int64
		if n, err := p.Nice(); err == nil {
			nice = int64(n)
		}

		status, _ := p.Status()

		snaps = append(snaps, model.Snapshot{
			Pid:      int(p.Pid),
			User:     username,
			Comm:     comm,
			State:    stateLetter(status),
			Nice:     nice,
			CPUTime:  time.Duration((times.User + times.System) * float64(time.Second)),
			VSizeKB:  vszKB,
			RSSBytes: rss,
			Kernel:   cmd == "",
			Cmd:      cmd,
			Taken:    now,
		})
	}

	return snaps, nil
}

// stateLetter condenses gopsutil's status strings ("running", "sleep",
// "zombie", ...) into the single-letter form the S column uses. Unknown or
// missing status renders as '?' rather than a zero byte.
func stateLetter(status []string) byte {
	if len(status) == 0 || status[0] == "" {
		return '?'
	}
	return strings.ToUpper(status[0])[0]
}
