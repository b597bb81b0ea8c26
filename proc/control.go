//go:build linux || darwin || freebsd || openbsd || netbsd

package proc

import (
	"fmt"
	"syscall"
)

func signalProcess(pid int, sig syscall.Signal) error {
	if pid <= 0 {
		return fmt.Errorf("invalid PID: %d", pid)
	}

	if err := syscall.Kill(pid, sig); err != nil {
		return fmt.Errorf("failed to send signal %v to PID %d: %w", sig, pid, err)
	}

	return nil
}

// TerminateProcess asks the process to shut down gracefully (SIGTERM).
func TerminateProcess(pid int) error {
	return signalProcess(pid, syscall.SIGTERM)
}

// ForceKillProcess kills the process immediately (SIGKILL).
func ForceKillProcess(pid int) error {
	return signalProcess(pid, syscall.SIGKILL)
}

// SetProcessPriority changes the nice value of a process, -20 (highest
// priority) to 19 (lowest). Negative values and other users' processes
// require root.
func SetProcessPriority(pid int, nice int) error {
	if pid <= 0 {
		return fmt.Errorf("invalid PID: %d", pid)
	}

	if nice < -20 || nice > 19 {
		return fmt.Errorf("nice value must be between -20 and 19, got %d", nice)
	}

	// PRIO_PROCESS = 0 (from sys/resource.h)
	if err := syscall.Setpriority(syscall.PRIO_PROCESS, pid, nice); err != nil {
		return fmt.Errorf("failed to set priority for PID %d: %w", pid, err)
	}

	return nil
}
