package monitor

import (
	"strings"

	"github.com/benbarten/rustop/config"
	"github.com/benbarten/rustop/model"
)

// Matches reports whether a metric passes the view's filter predicate:
// name substring (case-insensitive), exact owner, and kernel visibility.
func Matches(m model.Metric, view config.View) bool {
	if !view.ShowKernel && m.Kernel {
		return false
	}
	if view.UserFilter != "" && m.User != view.UserFilter {
		return false
	}
	if view.NameFilter != "" {
		needle := strings.ToLower(view.NameFilter)
		if !strings.Contains(strings.ToLower(m.Name()), needle) &&
			!strings.Contains(strings.ToLower(m.Comm), needle) {
			return false
		}
	}
	return true
}

// BuildRows runs the view pipeline: filter, sort, cap. The input slice is
// never mutated; rows are filtered into a fresh slice before sorting.
func BuildRows(metrics []model.Metric, view config.View) []model.Metric {
	rows := make([]model.Metric, 0, len(metrics))
	for _, m := range metrics {
		if Matches(m, view) {
			rows = append(rows, m)
		}
	}

	sorter := model.NewSorter(view.SortColumn)
	sorter.Sort(rows)

	if view.TopN > 0 && len(rows) > view.TopN {
		rows = rows[:view.TopN]
	}
	return rows
}
