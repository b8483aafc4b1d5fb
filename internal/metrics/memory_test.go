package metrics

import "testing"

// TestSnapshot verifies the collector reads live runtime statistics.
func TestSnapshot(t *testing.T) {
	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be non-zero in a running process")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be non-zero in a running process")
	}
}

// TestDelta verifies counter subtraction between snapshots.
func TestDelta(t *testing.T) {
	before := MemorySnapshot{TotalAlloc: 1000, NumGC: 2, PauseTotalNs: 50}
	after := MemorySnapshot{TotalAlloc: 4500, NumGC: 5, PauseTotalNs: 80}

	d := Delta(before, after)
	if d.AllocatedBytes != 3500 {
		t.Errorf("AllocatedBytes = %d, want 3500", d.AllocatedBytes)
	}
	if d.GCCycles != 3 {
		t.Errorf("GCCycles = %d, want 3", d.GCCycles)
	}
	if d.PauseNs != 30 {
		t.Errorf("PauseNs = %d, want 30", d.PauseNs)
	}
}

// TestDelta_Live verifies allocations made between snapshots are observed.
func TestDelta_Live(t *testing.T) {
	mc := NewMemoryCollector()
	before := mc.Snapshot()

	sink := make([][]byte, 0, 64)
	for i := 0; i < 64; i++ {
		sink = append(sink, make([]byte, 4096))
	}
	_ = sink

	d := Delta(before, mc.Snapshot())
	if d.AllocatedBytes == 0 {
		t.Error("AllocatedBytes should reflect the allocations made between snapshots")
	}
}
