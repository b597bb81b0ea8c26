package ui

import (
	"github.com/benbarten/rustop/config"
	"github.com/benbarten/rustop/model"
	"github.com/benbarten/rustop/monitor"
)

func defaultTestView() config.View {
	return config.View{SortColumn: model.SortByCPU, ShowKernel: true}
}

func testStats() monitor.Stats {
	return monitor.Stats{
		Tasks:         2,
		Running:       1,
		L1:            0.5,
		L5:            0.4,
		L15:           0.3,
		UptimeSeconds: 3600,
		MemTotalKB:    8 << 20,
	}
}
