// Package heapkit provides malloc-style entry points over the block and
// free-list core in the heap package.
//
// An Allocator composes the core the traditional way: Malloc searches the
// free list, splits an oversized hit and keeps the remainder listed, or grows
// the heap on a miss; Free returns a trailing block to the region when it
// clears the trim threshold and otherwise inserts it into the free list.
//
// Payloads are addressed by Ptr, a byte offset into the allocator's region;
// Bytes materializes the payload view. Allocators are not safe for concurrent
// use; wrap all calls in one lock if multiple goroutines share a heap.
package heapkit

import (
	"errors"

	"github.com/heapkit/heapkit/heap"
	"github.com/heapkit/heapkit/heap/region"
)

// Ptr addresses an allocation's payload by its byte offset in the region.
type Ptr int64

// PtrNil is the absent-allocation value, returned for zero-sized requests.
const PtrNil Ptr = -1

var (
	// ErrSizeOverflow indicates a Calloc count*size multiplication overflow.
	ErrSizeOverflow = errors.New("heapkit: allocation size overflow")

	// ErrBadSize indicates a negative requested size.
	ErrBadSize = errors.New("heapkit: negative allocation size")
)

// Allocator is the public allocation surface over one Heap.
type Allocator struct {
	h *heap.Heap
}

// New builds an Allocator over the given region with the given heap
// configuration.
func New(r region.Region, cfg heap.Config) (*Allocator, error) {
	h, err := heap.NewHeap(r, cfg)
	if err != nil {
		return nil, err
	}
	return &Allocator{h: h}, nil
}

// Heap exposes the underlying core for diagnostics.
func (a *Allocator) Heap() *heap.Heap {
	return a.h
}

// Counters returns a snapshot of the heap's event counters.
func (a *Allocator) Counters() heap.Counters {
	return a.h.Counters()
}

// FreeLen returns the current free-list length.
func (a *Allocator) FreeLen() int {
	return a.h.Length()
}

// Malloc allocates n bytes and returns the payload offset. A reusable block
// is preferred; the heap grows only when the free list has no fit. Malloc(0)
// returns PtrNil with no error.
func (a *Allocator) Malloc(n int64) (Ptr, error) {
	if n < 0 {
		return PtrNil, ErrBadSize
	}
	if n == 0 {
		return PtrNil, nil
	}

	if r, ok := a.h.Search(n); ok {
		// Split before detaching: the remainder inherits the block's list
		// position, so no separate re-insert is needed.
		r = a.h.Split(r, n)
		a.h.Detach(r)
		return a.ptr(r), nil
	}

	r, err := a.h.Allocate(n)
	if err != nil {
		return PtrNil, err
	}
	return a.ptr(r), nil
}

// Calloc allocates count*size bytes and zeroes the payload. Reused blocks
// carry stale bytes, so the zeroing is unconditional.
func (a *Allocator) Calloc(count, size int64) (Ptr, error) {
	if count < 0 || size < 0 {
		return PtrNil, ErrBadSize
	}
	total := count * size
	if count != 0 && total/count != size {
		return PtrNil, ErrSizeOverflow
	}

	p, err := a.Malloc(total)
	if err != nil || p == PtrNil {
		return p, err
	}
	data := a.h.Data(a.ref(p))
	clear(data[:total])
	return p, nil
}

// Realloc resizes an allocation. A PtrNil input behaves as Malloc, a zero
// size as Free. When the block's capacity already covers n the size is
// updated in place and the same Ptr returns; otherwise a new allocation is
// made, the payload copied, and the old block freed.
func (a *Allocator) Realloc(p Ptr, n int64) (Ptr, error) {
	if p == PtrNil {
		return a.Malloc(n)
	}
	if n < 0 {
		return PtrNil, ErrBadSize
	}
	if n == 0 {
		a.Free(p)
		return PtrNil, nil
	}

	r := a.ref(p)
	if a.h.Resize(r, n) {
		return p, nil
	}

	oldSize := a.h.Size(r)
	np, err := a.Malloc(n)
	if err != nil {
		return PtrNil, err
	}
	copied := oldSize
	if n < copied {
		copied = n
	}
	copy(a.h.Data(a.ref(np))[:copied], a.h.Data(r)[:copied])
	a.Free(p)
	return np, nil
}

// Free releases an allocation. The block's memory goes back to the region
// when it trails the heap and clears the trim threshold; otherwise the block
// joins the free list with one coalescing attempt. Trimming is only ever
// tried here, never as a side effect of list insertion. Free(PtrNil) is a
// no-op.
func (a *Allocator) Free(p Ptr) {
	if p == PtrNil {
		return
	}
	r := a.ref(p)
	if !a.h.Release(r) {
		a.h.Insert(r)
	}
}

// Bytes returns an n-byte view of the allocation's payload. n must not
// exceed the allocation's capacity.
func (a *Allocator) Bytes(p Ptr, n int64) []byte {
	return a.h.Data(a.ref(p))[:n]
}

func (a *Allocator) ptr(r heap.Ref) Ptr {
	return Ptr(int64(r) + heap.HeaderSize)
}

func (a *Allocator) ref(p Ptr) heap.Ref {
	return heap.Ref(int64(p) - heap.HeaderSize)
}
