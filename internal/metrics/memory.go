// Package metrics reads Go runtime statistics for per-run reporting.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	TotalAlloc   uint64 // cumulative bytes allocated
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryDelta describes the change between two snapshots taken around a run.
type MemoryDelta struct {
	AllocatedBytes uint64 // bytes allocated during the run
	GCCycles       uint32 // GC cycles completed during the run
	PauseNs        uint64 // GC pause time accrued during the run
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// Delta computes the change from before to after. Counters in MemStats are
// monotonic, so plain subtraction is safe.
func Delta(before, after MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		AllocatedBytes: after.TotalAlloc - before.TotalAlloc,
		GCCycles:       after.NumGC - before.NumGC,
		PauseNs:        after.PauseTotalNs - before.PauseTotalNs,
	}
}
