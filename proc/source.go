// Package proc enumerates the operating system's process table and exposes
// the point-in-time snapshots the monitor engine diffs between ticks.
package proc

import (
	"errors"

	"github.com/benbarten/rustop/model"
)

// ErrPermission reports that the process table could not be read due to
// missing privileges (e.g. a sandboxed environment).
var ErrPermission = errors.New("permission denied reading process table")

// Source produces one snapshot of every live process. Implementations must
// return a fresh slice on every call; snapshots are never mutated afterwards.
type Source interface {
	Processes() ([]model.Snapshot, error)
}
