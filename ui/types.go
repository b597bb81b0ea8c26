package ui

import (
	"time"

	"github.com/benbarten/rustop/model"
	"github.com/benbarten/rustop/monitor"
)

// Messages

type tickMsg time.Time

type dataMsg struct {
	metrics []model.Metric
	stats   monitor.Stats
}

type statusMsg struct {
	text    string
	isError bool
}

// UI modes

type uiMode int

const (
	normalMode uiMode = iota
	filterMode
	confirmKillMode
	confirmNiceMode
	helpMode
)
