package ui

import (
	"fmt"
	"time"
)

const (
	kb = 1_000
	mb = 1_000_000
	gb = 1_000_000_000
)

// FormatMemory renders a byte count for the memory column. The default is
// whole megabytes; human-readable mode picks the unit that fits.
func FormatMemory(bytes uint64, human bool) string {
	if !human {
		return fmt.Sprintf("%d", bytes/mb)
	}

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.2f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.2f MB", float64(bytes)/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatCPUTime renders cumulative CPU time in top's TIME+ style.
func FormatCPUTime(d time.Duration) string {
	totalCS := d.Milliseconds() / 10

	h := totalCS / 360000
	m := (totalCS % 360000) / 6000
	s := (totalCS % 6000) / 100
	cs := totalCS % 100

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d.%02d", m, s, cs)
}

// FormatUptime renders system uptime as d/h/m.
func FormatUptime(seconds float64) string {
	total := int64(seconds)
	d := total / 86400
	h := (total % 86400) / 3600
	m := (total % 3600) / 60

	if d > 0 {
		return fmt.Sprintf("%dd %dh %dm", d, h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
