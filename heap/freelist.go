package heap

// Free-list operations. The list is unordered, circular and intrusive:
// membership is carried in the block headers themselves, anchored at the
// heap's sentinel. Walks start at the sentinel's successor and stop when they
// come back around.

// Search scans the free list once for a block satisfying size under the
// configured fit strategy. On a hit the block's used size is set to the
// requested size (a later Split reads it) and the block is returned still
// linked; the caller detaches it. A miss returns (RefNil, false) and signals
// fallback to Allocate.
func (h *Heap) Search(size int64) (Ref, bool) {
	found := RefNil

	switch h.cfg.Fit {
	case FirstFit:
		for curr := h.sentNext; curr != refSentinel; curr = h.Next(curr) {
			if h.Capacity(curr) >= size {
				found = curr
				break
			}
		}
	case BestFit:
		for curr := h.sentNext; curr != refSentinel; curr = h.Next(curr) {
			if h.Capacity(curr) < size {
				continue
			}
			if found == RefNil || h.Capacity(curr) < h.Capacity(found) {
				found = curr
			}
		}
	case WorstFit:
		for curr := h.sentNext; curr != refSentinel; curr = h.Next(curr) {
			if h.Capacity(curr) < size {
				continue
			}
			if found == RefNil || h.Capacity(curr) > h.Capacity(found) {
				found = curr
			}
		}
	}

	if found == RefNil {
		return RefNil, false
	}
	h.setSize(found, size)
	h.stats.Reuses++
	return found, true
}

// Insert adds the block to the free list, coalescing with one physically
// adjacent member when possible.
//
// The scan tries, for each member, to merge the incoming block over the
// member and then the member over the incoming block. The first success ends
// the insertion: in the first case the survivor takes the member's list
// position, in the second the member already sits in the list with its grown
// capacity. A merge that exposes further adjacency is not chained; the
// single pass is a deliberate fragmentation trade-off. With no merge the
// block is appended as the new tail.
func (h *Heap) Insert(r Ref) {
	for curr := h.sentNext; curr != refSentinel; curr = h.Next(curr) {
		if h.Merge(r, curr) {
			before := h.Prev(curr)
			after := h.Next(curr)
			h.setPrev(r, before)
			h.setNext(r, after)
			h.setNext(before, r)
			h.setPrev(after, r)
			return
		}
		if h.Merge(curr, r) {
			return
		}
	}

	tail := h.sentPrev
	h.setNext(tail, r)
	h.sentPrev = r
	h.setNext(r, refSentinel)
	h.setPrev(r, tail)
}

// Length counts the free-list members by walking the list. O(n), no caching.
func (h *Heap) Length() int {
	n := 0
	for curr := h.sentNext; curr != refSentinel; curr = h.Next(curr) {
		n++
	}
	return n
}
