package heap

import "fmt"

// Allocate grows the region by HeaderSize + align(size) bytes and shapes the
// new memory into a detached block with capacity align(size) and used size
// size. Region exhaustion surfaces as ErrOutOfMemory.
func (h *Heap) Allocate(size int64) (Ref, error) {
	grown := HeaderSize + h.align(size)
	prev, err := h.region.Sbrk(grown)
	if err != nil {
		return RefNil, fmt.Errorf("%w: allocating %d bytes: %v", ErrOutOfMemory, size, err)
	}

	r := Ref(prev)
	h.setCapacity(r, h.align(size))
	h.setSize(r, size)
	h.setPrev(r, r)
	h.setNext(r, r)

	h.stats.HeapUsed += grown
	h.stats.Blocks++
	h.stats.Grows++
	return r, nil
}

// Release returns the block's memory to the region. It succeeds only when the
// block is physically last (its payload ends at the current break) and the
// returned bytes, header included, exceed the trim threshold. A false return
// is the routine "not worth trimming" outcome, not an error. The caller must
// have removed the block from any list first.
func (h *Heap) Release(r Ref) bool {
	capacity := h.Capacity(r)
	returned := HeaderSize + capacity

	brk, err := h.region.Sbrk(0)
	if err != nil {
		return false
	}
	if int64(r)+HeaderSize+capacity != brk || returned <= h.cfg.TrimThreshold {
		return false
	}
	if _, err := h.region.Sbrk(-returned); err != nil {
		return false
	}

	h.stats.Blocks--
	h.stats.Shrinks++
	h.stats.HeapUsed -= returned
	return true
}

// Detach unlinks the block from whatever circular list holds it by splicing
// its neighbors together, then self-links it. Detaching an already detached
// block is a no-op; RefNil passes through.
func (h *Heap) Detach(r Ref) Ref {
	if r == RefNil {
		return RefNil
	}

	before := h.Prev(r)
	after := h.Next(r)
	h.setNext(before, after)
	h.setPrev(after, before)

	h.setPrev(r, r)
	h.setNext(r, r)
	return r
}

// Merge absorbs src into dst when src's header immediately follows dst's
// payload. On success dst gains src's aligned capacity plus its header; dst's
// used size is untouched and no list pointers are updated; the caller must
// have unlinked src or be prepared to repair links. Merging never chains.
func (h *Heap) Merge(dst, src Ref) bool {
	if int64(dst)+HeaderSize+h.Capacity(dst) != int64(src) {
		return false
	}

	h.setCapacity(dst, h.Capacity(dst)+h.align(h.Capacity(src))+HeaderSize)

	h.stats.Merges++
	h.stats.Blocks--
	return true
}

// Split carves the block in two when its capacity holds align(size), a
// header, and at least one more byte. The remainder takes the tail bytes and
// the block's place in its list; the block itself shrinks to align(size) and
// keeps list membership with the remainder as its successor. The original
// block is always returned, split or not.
func (h *Heap) Split(r Ref, size int64) Ref {
	aligned := h.align(size)
	if aligned+HeaderSize >= h.Capacity(r) {
		return r
	}

	rem := Ref(int64(r) + HeaderSize + aligned)
	leftover := h.Capacity(r) - aligned - HeaderSize
	after := h.Next(r)

	h.setCapacity(rem, leftover)
	h.setSize(rem, leftover)
	h.setPrev(rem, r)
	h.setNext(rem, after)
	h.setPrev(after, rem)

	h.setCapacity(r, aligned)
	h.setSize(r, size)
	h.setNext(r, rem)

	h.stats.Splits++
	h.stats.Blocks++
	return r
}
