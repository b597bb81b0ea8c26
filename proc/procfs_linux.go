//go:build linux

package proc

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tklauser/go-sysconf"

	"github.com/benbarten/rustop/model"
)

// ProcfsSource reads the process table directly from /proc.
type ProcfsSource struct {
	hz       int64
	pageSize int64
}

// NewSource returns the /proc-backed process source.
func NewSource() Source {
	return &ProcfsSource{
		hz:       clockTicks(),
		pageSize: int64(os.Getpagesize()),
	}
}

// clockTicks returns the kernel's clock tick rate (USER_HZ), used to convert
// the utime/stime counters to wall time. Falls back to 100 on failure.
func clockTicks() int64 {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || hz <= 0 {
		return 100
	}
	return hz
}

// Processes walks /proc once and snapshots every readable pid. Processes
// that exit mid-walk are skipped; a failure to read /proc itself is an
// enumeration failure and aborts the whole tick.
func (s *ProcfsSource) Processes() ([]model.Snapshot, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %v", ErrPermission, err)
		}
		return nil, fmt.Errorf("enumerating /proc: %w", err)
	}

	now := time.Now()
	snaps := make([]model.Snapshot, 0, len(entries))

	for _, ent := range entries {
		if !IsNumeric(ent.Name()) {
			continue
		}
		pid, _ := strconv.Atoi(ent.Name())

		snap, ok := s.readPid(pid, now)
		if !ok {
			continue // exited between ReadDir and the stat read
		}
		snaps = append(snaps, snap)
	}

	return snaps, nil
}

func (s *ProcfsSource) readPid(pid int, now time.Time) (model.Snapshot, bool) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return model.Snapshot{}, false
	}
	sf, err := parseStatLine(string(data))
	if err != nil {
		return model.Snapshot{}, false
	}

	uid := s.readUID(pid)
	cmd := s.readCmdline(pid)

	return model.Snapshot{
		Pid:      pid,
		Uid:      uid,
		User:     UIDToName(uid),
		Comm:     sf.Comm,
		State:    sf.State,
		Nice:     sf.Nice,
		CPUTime:  ticksToDuration(sf.Utime+sf.Stime, s.hz),
		VSizeKB:  sf.Vsize / 1024,
		RSSBytes: uint64(sf.RSS * s.pageSize),
		Kernel:   cmd == "", // kernel threads expose an empty cmdline
		Cmd:      cmd,
		Taken:    now,
	}, true
}

func (s *ProcfsSource) readUID(pid int) uint32 {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/status", pid))
	if err != nil {
		return 0
	}
	return parseStatusUID(string(data))
}

func (s *ProcfsSource) readCmdline(pid int) string {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/cmdline", pid))
	if err != nil || len(data) == 0 {
		return ""
	}
	for i := range data {
		if data[i] == 0 {
			data[i] = ' '
		}
	}
	return strings.TrimSpace(string(data))
}

func ticksToDuration(ticks uint64, hz int64) time.Duration {
	return time.Duration(ticks) * time.Second / time.Duration(hz)
}
