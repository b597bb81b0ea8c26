//go:build !linux

package proc

import (
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// ReadMemTotalKB returns the total system memory in KB, or 1 on failure so
// %MEM divisions stay defined.
func ReadMemTotalKB() int64 {
	vm, err := mem.VirtualMemory()
	if err != nil || vm == nil || vm.Total == 0 {
		return 1
	}
	return int64(vm.Total / 1024)
}

// ReadLoadavg returns the 1, 5 and 15 minute load averages.
func ReadLoadavg() (float64, float64, float64) {
	avg, err := load.Avg()
	if err != nil || avg == nil {
		return 0, 0, 0
	}
	return avg.Load1, avg.Load5, avg.Load15
}

// ReadUptime returns the system uptime in seconds.
func ReadUptime() float64 {
	up, err := host.Uptime()
	if err != nil {
		return 0
	}
	return float64(up)
}
