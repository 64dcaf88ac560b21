package heap

import (
	"github.com/heapkit/heapkit/heap/region"
	"github.com/heapkit/heapkit/internal/format"
)

// Ref addresses a block by the byte offset of its header within the region.
type Ref int64

const (
	// RefNil is the absent-block value.
	RefNil Ref = -1

	// refSentinel is the free-list anchor. It owns no region bytes; its
	// capacity and size read as -1 and its links live in the Heap itself.
	refSentinel Ref = -2
)

// HeaderSize is the byte distance from a block's header to its payload.
const HeaderSize = format.HeaderSize

// Heap is the allocator context: one region, one free list, one set of
// counters. Multiple independent heaps may coexist, each over its own region.
type Heap struct {
	region region.Region
	cfg    Config
	stats  Counters

	// Free-list sentinel links. An empty list is the sentinel self-linked.
	sentPrev Ref
	sentNext Ref
}

// NewHeap builds a Heap over the given region with the given configuration.
func NewHeap(r region.Region, cfg Config) (*Heap, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Heap{
		region:   r,
		cfg:      cfg,
		sentPrev: refSentinel,
		sentNext: refSentinel,
	}, nil
}

// Config returns the heap's configuration.
func (h *Heap) Config() Config {
	return h.cfg
}

func (h *Heap) align(n int64) int64 {
	return format.AlignUp(n, h.cfg.Alignment)
}

func (h *Heap) bytes() []byte {
	return h.region.Bytes()
}

// Capacity returns the aligned payload byte count of the block.
// The sentinel reads as -1.
func (h *Heap) Capacity(r Ref) int64 {
	if r == refSentinel {
		return -1
	}
	return format.ReadI64(h.bytes(), int64(r)+format.OffCapacity)
}

// Size returns the requested/used byte count of the block.
// The sentinel reads as -1.
func (h *Heap) Size(r Ref) int64 {
	if r == refSentinel {
		return -1
	}
	return format.ReadI64(h.bytes(), int64(r)+format.OffSize)
}

// Prev returns the block's list predecessor.
func (h *Heap) Prev(r Ref) Ref {
	if r == refSentinel {
		return h.sentPrev
	}
	return Ref(format.ReadI64(h.bytes(), int64(r)+format.OffPrev))
}

// Next returns the block's list successor.
func (h *Heap) Next(r Ref) Ref {
	if r == refSentinel {
		return h.sentNext
	}
	return Ref(format.ReadI64(h.bytes(), int64(r)+format.OffNext))
}

func (h *Heap) setCapacity(r Ref, v int64) {
	format.PutI64(h.bytes(), int64(r)+format.OffCapacity, v)
}

func (h *Heap) setSize(r Ref, v int64) {
	format.PutI64(h.bytes(), int64(r)+format.OffSize, v)
}

func (h *Heap) setPrev(r, v Ref) {
	if r == refSentinel {
		h.sentPrev = v
		return
	}
	format.PutI64(h.bytes(), int64(r)+format.OffPrev, int64(v))
}

func (h *Heap) setNext(r, v Ref) {
	if r == refSentinel {
		h.sentNext = v
		return
	}
	format.PutI64(h.bytes(), int64(r)+format.OffNext, int64(v))
}

// Data returns the block's payload bytes, capacity long. The slice is
// invalidated by the next operation that moves the break.
func (h *Heap) Data(r Ref) []byte {
	start := int64(r) + HeaderSize
	return h.bytes()[start : start+h.Capacity(r)]
}

// Resize updates the block's used size in place. It succeeds only when the
// existing capacity already covers n; capacity never changes.
func (h *Heap) Resize(r Ref, n int64) bool {
	if n < 0 || n > h.Capacity(r) {
		return false
	}
	h.setSize(r, n)
	return true
}
