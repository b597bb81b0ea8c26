package ui

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/benbarten/rustop/config"
	"github.com/benbarten/rustop/model"
	"github.com/benbarten/rustop/monitor"
)

// Render writes one plain-text frame for single-shot mode. When w is a
// terminal the row count is capped to the visible height so the frame never
// scrolls the header away.
func Render(w io.Writer, rows []model.Metric, stats monitor.Stats, view config.View) error {
	limit := rowLimit(w)
	if len(rows) > limit {
		rows = rows[:limit]
	}

	fmt.Fprintf(w, "Tasks: %d total, %d running | Load: %.2f %.2f %.2f | Mem: %s | Uptime: %s\n",
		stats.Tasks, stats.Running, stats.L1, stats.L5, stats.L15,
		FormatMemory(uint64(stats.MemTotalKB)*1024, true),
		FormatUptime(stats.UptimeSeconds))

	memHeader := "MEM(MB)"
	if view.HumanMem {
		memHeader = "MEM"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "PID\tUSER\t%%CPU\t%%MEM\t%s\tNI\tS\tTIME+\tCOMMAND\t\n", memHeader)

	for _, r := range rows {
		cmd := r.Name()
		if len(cmd) > 60 {
			cmd = cmd[:60]
		}
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%.1f\t%s\t%d\t%c\t%s\t%s\t\n",
			r.Pid,
			r.User,
			r.CPU,
			r.PMem,
			FormatMemory(r.RSSBytes, view.HumanMem),
			r.Nice,
			r.State,
			FormatCPUTime(r.CPUTime),
			cmd,
		)
	}

	return tw.Flush()
}

// rowLimit reserves a few lines for the header when drawing to a real
// terminal, otherwise falls back to the fixed cap.
func rowLimit(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return model.MaxRows
	}
	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil || height <= 4 {
		return model.MaxRows
	}
	return height - 4
}
