package proc

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// CoreCount returns the number of logical CPUs, used to normalize per-process
// CPU percentages so 100% means all cores busy.
func CoreCount() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
