package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.mode == helpMode {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(m.renderHeader()))
	b.WriteString("\n\n")
	b.WriteString(baseStyle.Render(m.table.View()))
	b.WriteString("\n")

	if m.mode == normalMode {
		b.WriteString(m.renderQuickHelp())
		b.WriteString("\n")
	}

	if m.statusText != "" {
		b.WriteString("\n")
		b.WriteString(m.renderStatus())
		b.WriteString("\n")
	}

	if m.mode == filterMode {
		b.WriteString("\n")
		b.WriteString(m.renderFilterBar())
	}

	if m.mode == confirmKillMode {
		b.WriteString("\n")
		b.WriteString(confirmStyle.Render(
			fmt.Sprintf("Send SIGTERM to PID %d? [y/n]", m.selectedPID)))
	}

	if m.mode == confirmNiceMode {
		b.WriteString("\n")
		b.WriteString(confirmStyle.Render(
			fmt.Sprintf("Apply nice %+d to PID %d? [y/n]", m.niceValue, m.selectedPID)))
	}

	return b.String()
}

func (m Model) renderTitle() string {
	title := titleStyle.Render("rustop - process monitor")
	return lipgloss.NewStyle().
		Background(lipgloss.Color("62")).
		Foreground(lipgloss.Color("230")).
		Bold(true).
		Width(m.width).
		Align(lipgloss.Center).
		Render(title)
}

func (m Model) renderHeader() string {
	direction := sortedColumnStyle.Render("↓")
	if !m.sorter.Descending {
		direction = sortedColumnStyle.Render("↑")
	}

	header := fmt.Sprintf(
		"Tasks: %d total, %d running | Load: %.2f %.2f %.2f | Mem: %s | Uptime: %s | Sort: %s %s",
		m.stats.Tasks, m.stats.Running, m.stats.L1, m.stats.L5, m.stats.L15,
		FormatMemory(uint64(m.stats.MemTotalKB)*1024, true),
		FormatUptime(m.stats.UptimeSeconds),
		sortedColumnStyle.Render(m.sorter.ColumnName()),
		direction,
	)

	if m.filterText != "" {
		header += fmt.Sprintf(" | Filter: %s",
			lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Render(m.filterText))
	}
	return header
}

func (m Model) renderQuickHelp() string {
	quickHelp := fmt.Sprintf(
		"%s Sort | %s Filter | %s Kill | %s Nice | %s Help | %s Quit",
		keybindStyle.Render("[c/m/p]"),
		keybindStyle.Render("[/]"),
		keybindStyle.Render("[k/K]"),
		keybindStyle.Render("[n/N]"),
		keybindStyle.Render("[?]"),
		keybindStyle.Render("[q]"),
	)
	return keybindDescStyle.Render(quickHelp)
}

func (m Model) renderStatus() string {
	style := successStyle
	if m.statusError {
		style = errorStyle
	}
	return style.Render(m.statusText)
}

func (m Model) renderFilterBar() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Render("Filter: ") +
		m.filterInput.View() +
		keybindDescStyle.Render(" (Enter to apply, Esc to cancel)")
}

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"c / m / p", "sort by CPU, memory, or PID (repeat to flip direction)"},
		{"/", "filter rows by command or user"},
		{"k", "terminate selected process (SIGTERM, confirmed)"},
		{"K", "force kill selected process (SIGKILL)"},
		{"n / N", "raise / lower selected process priority"},
		{"↑ / ↓", "move selection"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keybindings"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			keybindStyle.Render(fmt.Sprintf("%-10s", r[0])),
			keybindDescStyle.Render(r[1])))
	}
	b.WriteString("\n")
	b.WriteString(keybindDescStyle.Render("press esc or q to close"))
	return helpBoxStyle.Render(b.String())
}
