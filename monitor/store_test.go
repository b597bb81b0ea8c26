package monitor

import (
	"testing"
	"time"

	"github.com/benbarten/rustop/model"
)

func TestSampleStoreRecordTickReplacesMapping(t *testing.T) {
	store := NewSampleStore()
	now := time.Now()

	store.RecordTick([]model.Snapshot{
		{Pid: 1, CPUTime: time.Second, Taken: now},
		{Pid: 2, CPUTime: 2 * time.Second, Taken: now},
	})

	if store.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", store.Len())
	}
	if snap, ok := store.Previous(1); !ok || snap.CPUTime != time.Second {
		t.Fatalf("unexpected snapshot for pid 1: %+v (ok=%t)", snap, ok)
	}

	// pid 2 vanished; pid 3 appeared
	store.RecordTick([]model.Snapshot{
		{Pid: 1, CPUTime: 2 * time.Second, Taken: now.Add(time.Second)},
		{Pid: 3, CPUTime: time.Millisecond, Taken: now.Add(time.Second)},
	})

	if store.Len() != 2 {
		t.Fatalf("expected vanished pid to be dropped, got %d entries", store.Len())
	}
	if _, ok := store.Previous(2); ok {
		t.Fatalf("pid 2 should have been dropped after it disappeared")
	}
	if snap, ok := store.Previous(1); !ok || snap.CPUTime != 2*time.Second {
		t.Fatalf("pid 1 should reflect the newest tick, got %+v", snap)
	}
}

func TestSampleStorePreviousMissingPid(t *testing.T) {
	store := NewSampleStore()
	if _, ok := store.Previous(999); ok {
		t.Fatalf("empty store should have no previous snapshot")
	}
}
