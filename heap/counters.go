package heap

// Counters holds the named event counters the core updates as side effects.
// They exist for diagnostics only; nothing in the core reads them back.
type Counters struct {
	HeapUsed int64 // bytes currently held from the region, headers included
	Blocks   int64 // blocks currently in existence
	Grows    int64 // region growth events
	Shrinks  int64 // region shrink events
	Reuses   int64 // successful free-list searches
	Merges   int64 // successful block merges
	Splits   int64 // block splits
}

// Counters returns a snapshot of the heap's counters.
func (h *Heap) Counters() Counters {
	return h.stats
}
