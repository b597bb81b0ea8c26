package model

import "testing"

func TestParseSortColumn(t *testing.T) {
	cases := map[string]SortColumn{
		"cpu":    SortByCPU,
		"memory": SortByMEM,
		"mem":    SortByMEM,
		"pid":    SortByPID,
	}
	for in, want := range cases {
		got, err := ParseSortColumn(in)
		if err != nil || got != want {
			t.Fatalf("ParseSortColumn(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	if _, err := ParseSortColumn("uptime"); err == nil {
		t.Fatal("expected error for unknown sort key")
	}
}

func TestSorterDefaults(t *testing.T) {
	if s := NewSorter(SortByCPU); !s.Descending {
		t.Fatal("cpu sort should default descending")
	}
	if s := NewSorter(SortByPID); s.Descending {
		t.Fatal("pid sort should default ascending")
	}
}

func TestSorterToggle(t *testing.T) {
	s := NewSorter(SortByCPU)

	s.Toggle(SortByCPU)
	if s.Descending {
		t.Fatal("toggling the active column should flip direction")
	}

	s.Toggle(SortByMEM)
	if s.Column != SortByMEM || !s.Descending {
		t.Fatalf("switching columns should reset direction, got %+v", s)
	}
}

func TestSorterTieBreaksByPid(t *testing.T) {
	records := []Metric{
		{Pid: 30, CPU: 10},
		{Pid: 10, CPU: 10},
		{Pid: 20, CPU: 10},
	}

	NewSorter(SortByCPU).Sort(records)

	for i, want := range []int{10, 20, 30} {
		if records[i].Pid != want {
			t.Fatalf("tie-break by pid failed: %+v", records)
		}
	}
}

func TestSorterAscendingDescending(t *testing.T) {
	records := []Metric{
		{Pid: 1, RSSBytes: 100},
		{Pid: 2, RSSBytes: 300},
		{Pid: 3, RSSBytes: 200},
	}

	s := NewSorter(SortByMEM)
	s.Sort(records)
	if records[0].Pid != 2 || records[2].Pid != 1 {
		t.Fatalf("descending memory sort wrong: %+v", records)
	}

	s.Toggle(SortByMEM) // flip to ascending
	s.Sort(records)
	if records[0].Pid != 1 || records[2].Pid != 2 {
		t.Fatalf("ascending memory sort wrong: %+v", records)
	}
}
