package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benbarten/rustop/model"
	"github.com/benbarten/rustop/monitor"
	"github.com/benbarten/rustop/proc"
)

const errorFmt = "Error: %v"

// minTableHeight keeps the table drawable on very short terminals.
const minTableHeight = 3

// Heat thresholds for the %CPU and %MEM columns.
const (
	cpuWarn, cpuHot = 20.0, 50.0
	memWarn, memHot = 5.0, 10.0
)

// heatLevel picks the style for a usage percentage, or reports that the
// value is below both thresholds.
func heatLevel(v, warn, hot float64) (lipgloss.Style, bool) {
	switch {
	case v > hot:
		return highUsageStyle, true
	case v > warn:
		return medUsageStyle, true
	}
	return lipgloss.Style{}, false
}

// heat formats a usage percentage, colored once it crosses a threshold.
func heat(v, warn, hot float64) string {
	s := fmt.Sprintf("%.1f", v)
	if style, ok := heatLevel(v, warn, hot); ok {
		return style.Render(s)
	}
	return s
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height - 10
		if h < minTableHeight {
			h = minTableHeight
		}
		m.table.SetHeight(h)
		return m, nil

	case tickMsg:
		return m, tickCmd(m.interval)

	case dataMsg:
		m.metrics = msg.metrics
		m.stats = msg.stats
		m.updateTable()
		return m, nil

	case statusMsg:
		m.statusText = msg.text
		m.statusError = msg.isError
		return m, nil
	}

	if m.mode == filterMode {
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.filterText = m.filterInput.Value()
		m.updateTable()
		return m, cmd
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case normalMode:
		return m.handleNormalMode(msg)
	case filterMode:
		return m.handleFilterMode(msg)
	case confirmKillMode:
		return m.handleConfirmKill(msg)
	case confirmNiceMode:
		return m.handleConfirmNice(msg)
	case helpMode:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?", "h":
		m.mode = helpMode
		return m, nil

	// Sorting
	case "c":
		m.sorter.Toggle(model.SortByCPU)
		m.updateTable()
	case "m":
		m.sorter.Toggle(model.SortByMEM)
		m.updateTable()
	case "p":
		m.sorter.Toggle(model.SortByPID)
		m.updateTable()

	// Filtering
	case "/":
		m.mode = filterMode
		m.filterInput.Focus()
		return m, textinput.Blink

	// Kill process
	case "k":
		if pid := m.getSelectedPID(); pid > 0 {
			m.selectedPID = pid
			m.mode = confirmKillMode
		}

	// Force kill
	case "K":
		if pid := m.getSelectedPID(); pid > 0 {
			if err := proc.ForceKillProcess(pid); err != nil {
				return m, m.showStatus(fmt.Sprintf(errorFmt, err), true)
			}
			return m, m.showStatus(fmt.Sprintf("Sent SIGKILL to PID %d", pid), false)
		}

	// Renice (increase priority)
	case "n":
		if pid := m.getSelectedPID(); pid > 0 {
			m.selectedPID = pid
			m.niceValue = -5
			m.mode = confirmNiceMode
		}

	// Renice (decrease priority)
	case "N":
		if pid := m.getSelectedPID(); pid > 0 {
			m.selectedPID = pid
			m.niceValue = 5
			m.mode = confirmNiceMode
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.mode = normalMode
		m.filterInput.Blur()
		return m, nil
	case "enter":
		m.mode = normalMode
		m.filterInput.Blur()
		m.filterText = m.filterInput.Value()
		m.updateTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filterText = m.filterInput.Value()
	m.updateTable()
	return m, cmd
}

func (m Model) handleConfirmKill(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = normalMode
		if err := proc.TerminateProcess(m.selectedPID); err != nil {
			return m, m.showStatus(fmt.Sprintf(errorFmt, err), true)
		}
		return m, m.showStatus(fmt.Sprintf("Sent SIGTERM to PID %d", m.selectedPID), false)

	case "n", "N", "esc", "q":
		m.mode = normalMode
	}
	return m, nil
}

func (m Model) handleConfirmNice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = normalMode
		if err := proc.SetProcessPriority(m.selectedPID, m.niceValue); err != nil {
			return m, m.showStatus(fmt.Sprintf(errorFmt, err), true)
		}
		return m, m.showStatus(fmt.Sprintf("Set nice %+d on PID %d", m.niceValue, m.selectedPID), false)

	case "n", "N", "esc", "q":
		m.mode = normalMode
	}
	return m, nil
}

func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?", "h":
		m.mode = normalMode
	}
	return m, nil
}

// updateTable reruns the view pipeline against the latest tick. The live
// filter text replaces the startup --filter value; everything else from the
// startup view applies unchanged.
func (m *Model) updateTable() {
	view := m.view
	view.NameFilter = m.filterText
	view.SortColumn = m.sorter.Column

	filtered := make([]model.Metric, 0, len(m.metrics))
	for _, r := range m.metrics {
		if monitor.Matches(r, view) {
			filtered = append(filtered, r)
		}
	}

	m.sorter.Sort(filtered)

	if view.TopN > 0 && len(filtered) > view.TopN {
		filtered = filtered[:view.TopN]
	}

	// Sort indicator in the active column header
	columns := m.table.Columns()
	indicator := " ↓"
	if !m.sorter.Descending {
		indicator = " ↑"
	}
	memTitle := "MEM(MB)"
	if m.view.HumanMem {
		memTitle = "MEM"
	}
	columns[0].Title = "PID"
	columns[2].Title = "%CPU"
	columns[4].Title = memTitle
	switch m.sorter.Column {
	case model.SortByPID:
		columns[0].Title = "PID" + indicator
	case model.SortByCPU:
		columns[2].Title = "%CPU" + indicator
	case model.SortByMEM:
		columns[4].Title = memTitle + indicator
	}
	m.table.SetColumns(columns)

	rows := make([]table.Row, 0, len(filtered))
	for _, r := range filtered {
		cmd := r.Name()
		rows = append(rows, table.Row{
			strconv.Itoa(r.Pid),
			r.User,
			heat(r.CPU, cpuWarn, cpuHot),
			heat(r.PMem, memWarn, memHot),
			FormatMemory(r.RSSBytes, m.view.HumanMem),
			strconv.FormatInt(r.Nice, 10),
			string(r.State),
			FormatCPUTime(r.CPUTime),
			cmd,
		})
	}
	m.table.SetRows(rows)
}

func (m Model) getSelectedPID() int {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return 0
	}
	pid, err := strconv.Atoi(row[0])
	if err != nil {
		return 0
	}
	return pid
}

func (m Model) showStatus(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isError}
	}
}
