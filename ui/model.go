package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benbarten/rustop/config"
	"github.com/benbarten/rustop/model"
	"github.com/benbarten/rustop/monitor"
)

// Model holds TUI state. The view configuration from startup seeds the
// sorter and filter; both stay adjustable through keybindings afterwards.
type Model struct {
	table    table.Model
	metrics  []model.Metric
	stats    monitor.Stats
	view     config.View
	sorter   *model.Sorter
	interval time.Duration
	width    int
	height   int

	filterInput textinput.Model
	filterText  string
	mode        uiMode

	statusText  string
	statusError bool

	selectedPID int
	niceValue   int
}

func NewModel(view config.View, interval time.Duration) Model {
	memTitle := "MEM(MB)"
	if view.HumanMem {
		memTitle = "MEM"
	}
	columns := []table.Column{
		{Title: "PID", Width: 7},
		{Title: "USER", Width: 10},
		{Title: "%CPU", Width: 7},
		{Title: "%MEM", Width: 7},
		{Title: memTitle, Width: 10},
		{Title: "NI", Width: 4},
		{Title: "S", Width: 3},
		{Title: "TIME+", Width: 9},
		{Title: "COMMAND", Width: 50},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("cyan"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "filter by command or user..."
	ti.CharLimit = 50
	ti.SetValue(view.NameFilter)

	return Model{
		table:       t,
		view:        view,
		sorter:      model.NewSorter(view.SortColumn),
		interval:    interval,
		filterInput: ti,
		filterText:  view.NameFilter,
		mode:        normalMode,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.interval),
		tea.EnterAltScreen,
	)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// SendData is called by the refresh loop to push a completed tick into the
// running program.
func SendData(p *tea.Program, metrics []model.Metric, stats monitor.Stats) {
	p.Send(dataMsg{metrics: metrics, stats: stats})
}
