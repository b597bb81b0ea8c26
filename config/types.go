package config

import (
	"fmt"
	"time"

	"github.com/benbarten/rustop/model"
)

// MinRefresh is the lowest accepted tick period; anything shorter burns CPU
// on /proc churn without adding signal.
const MinRefresh = 100 * time.Millisecond

// View is the immutable per-session view configuration: filter predicate,
// sort order, row cap, and display options. Built once at startup from the
// config file plus flags, then read every tick.
type View struct {
	SortColumn model.SortColumn
	NameFilter string // case-insensitive substring, empty = no filter
	UserFilter string // exact owner match, empty = no filter
	ShowKernel bool
	TopN       int // 0 = unlimited
	HumanMem   bool
}

// Validate rejects flag combinations before the monitor starts.
func (v View) Validate() error {
	if v.TopN < 0 {
		return fmt.Errorf("--top must be a positive integer, got %d", v.TopN)
	}
	return nil
}

// File is the serialised form of persisted defaults in ~/.rustop/config.json.
// Every CLI flag has a counterpart here; flags given on the command line win.
type File struct {
	SortBy        string            `json:"sort_by"`
	RefreshRate   float64           `json:"refresh_rate"`
	Top           int               `json:"top"`
	Filter        string            `json:"filter"`
	User          string            `json:"user"`
	NoKernel      bool              `json:"no_kernel"`
	HumanReadable bool              `json:"human_readable"`
	CPUThreshold  float64           `json:"cpu_threshold"`
	MemThreshold  float64           `json:"mem_threshold"`
	ActiveWebhook string            `json:"active_webhook"`
	Webhooks      map[string]string `json:"webhooks"`
}
