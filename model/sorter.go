package model

import (
	"fmt"
	"sort"
)

type SortColumn int

const (
	SortByCPU SortColumn = iota
	SortByMEM
	SortByPID
)

// ParseSortColumn maps a --sort-by flag value to a column.
func ParseSortColumn(s string) (SortColumn, error) {
	switch s {
	case "cpu":
		return SortByCPU, nil
	case "memory", "mem":
		return SortByMEM, nil
	case "pid":
		return SortByPID, nil
	}
	return 0, fmt.Errorf("unknown sort key %q (want cpu, memory, or pid)", s)
}

func (c SortColumn) String() string {
	switch c {
	case SortByCPU:
		return "cpu"
	case SortByMEM:
		return "memory"
	case SortByPID:
		return "pid"
	}
	return "cpu"
}

type Sorter struct {
	Column     SortColumn
	Descending bool
}

func NewSorter(col SortColumn) *Sorter {
	return &Sorter{
		Column:     col,
		Descending: col != SortByPID, // pid defaults ascending, metrics descending
	}
}

// Toggle flips direction when the column is already selected, otherwise
// switches to the column with its default direction.
func (s *Sorter) Toggle(col SortColumn) {
	if s.Column == col {
		s.Descending = !s.Descending
	} else {
		s.Column = col
		s.Descending = col != SortByPID
	}
}

// Sort orders records in place. Ties always break by ascending pid so two
// processes with equal values never swap between ticks.
func (s *Sorter) Sort(records []Metric) {
	sort.Slice(records, func(i, j int) bool {
		a, b := &records[i], &records[j]

		var less, equal bool
		switch s.Column {
		case SortByMEM:
			less = a.RSSBytes < b.RSSBytes
			equal = a.RSSBytes == b.RSSBytes
		case SortByPID:
			less = a.Pid < b.Pid
			equal = a.Pid == b.Pid
		default:
			less = a.CPU < b.CPU
			equal = a.CPU == b.CPU
		}

		if equal {
			return a.Pid < b.Pid
		}
		if s.Descending {
			return !less
		}
		return less
	})
}

func (s *Sorter) ColumnName() string {
	names := []string{"CPU", "MEM", "PID"}
	return names[s.Column]
}
