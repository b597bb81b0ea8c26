package ui

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/benbarten/rustop/model"
)

// Row is the machine-readable shape of one process row for --output
// json/yaml.
type Row struct {
	Pid      int     `json:"pid" yaml:"pid"`
	User     string  `json:"user" yaml:"user"`
	Command  string  `json:"command" yaml:"command"`
	CPU      float64 `json:"cpu_percent" yaml:"cpu_percent"`
	MemBytes uint64  `json:"memory_bytes" yaml:"memory_bytes"`
	Kernel   bool    `json:"kernel" yaml:"kernel"`
}

func toRows(metrics []model.Metric) []Row {
	rows := make([]Row, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, Row{
			Pid:      m.Pid,
			User:     m.User,
			Command:  m.Name(),
			CPU:      m.CPU,
			MemBytes: m.RSSBytes,
			Kernel:   m.Kernel,
		})
	}
	return rows
}

// WriteJSON emits the row list as an indented JSON array.
func WriteJSON(w io.Writer, metrics []model.Metric) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toRows(metrics))
}

// WriteYAML emits the row list as a YAML document.
func WriteYAML(w io.Writer, metrics []model.Metric) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(toRows(metrics))
}
