package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func TestHeatLevelThresholds(t *testing.T) {
	tests := []struct {
		v    float64
		want lipgloss.TerminalColor
	}{
		{0, nil},
		{20, nil}, // threshold itself is not hot
		{20.1, lipgloss.Color("yellow")},
		{50, lipgloss.Color("yellow")},
		{50.1, lipgloss.Color("red")},
		{100, lipgloss.Color("red")},
	}

	for _, tt := range tests {
		style, ok := heatLevel(tt.v, cpuWarn, cpuHot)
		if tt.want == nil {
			if ok {
				t.Fatalf("heatLevel(%v) should be unstyled", tt.v)
			}
			continue
		}
		if !ok {
			t.Fatalf("heatLevel(%v) should be styled", tt.v)
		}
		if got := style.GetForeground(); got != tt.want {
			t.Fatalf("heatLevel(%v) foreground = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestHeatFormatsOneDecimal(t *testing.T) {
	if got := heat(12.34, cpuWarn, cpuHot); got != "12.3" {
		t.Fatalf("heat below threshold = %q, want plain 12.3", got)
	}
	if got := heat(99.9, cpuWarn, cpuHot); !strings.Contains(got, "99.9") {
		t.Fatalf("heat above threshold lost the value: %q", got)
	}
}

func TestWindowResizeClampsTableHeight(t *testing.T) {
	m := NewModel(defaultTestView(), time.Second)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 5})
	if got := updated.(Model).table.Height(); got < minTableHeight {
		t.Fatalf("table height %d on a 5-row terminal, want at least %d", got, minTableHeight)
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if got := updated.(Model).table.Height(); got != 30 {
		t.Fatalf("table height = %d on a 40-row terminal, want 30", got)
	}
}

func TestHeaderShowsTotalMemory(t *testing.T) {
	m := NewModel(defaultTestView(), time.Second)
	m.stats = testStats()

	header := m.renderHeader()
	if !strings.Contains(header, "Mem: 8.59 GB") {
		t.Fatalf("header missing total memory: %q", header)
	}
}
