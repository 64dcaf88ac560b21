// Package heap implements the block-management and free-list core of an
// sbrk-style allocator over a single growable region.
//
// # Overview
//
// A Heap owns a region.Region (the heap boundary primitive) and carves it
// into blocks: a 32-byte header followed by an alignment-rounded payload.
// Blocks are addressed by Ref, the byte offset of the header within the
// region, so physical adjacency is plain offset arithmetic and independent of
// any list structure.
//
// # Blocks
//
// Block operations reshape memory:
//
//   - Allocate: grow the region by header + aligned size, yielding a new block
//   - Release: return the physically last block to the region when it exceeds
//     the trim threshold
//   - Detach: unlink a block from whatever circular list holds it
//   - Merge: absorb a physically adjacent successor into a block's capacity
//   - Split: carve an oversized block in two, leaving the remainder in the
//     original's list position
//
// # Free list
//
// Reusable blocks live on an unordered circular doubly-linked list threaded
// through the block headers and anchored at a sentinel held inside the Heap.
// Search selects a block under a configurable fit strategy (first, best or
// worst fit). Insert makes a single coalescing pass: the incoming block is
// merged with the first physically adjacent member found, in either
// direction, and otherwise appended at the tail.
//
// Coalescing is deliberately single-pass and non-chained: a merge that newly
// exposes further adjacency does not trigger another merge. This mirrors the
// original design and tolerates some residual fragmentation; callers that
// need tighter packing must re-insert blocks themselves.
//
// # Failures
//
// Only region exhaustion is an error (ErrOutOfMemory from Allocate). A search
// miss, a failed adjacency test, a split that is not worth performing and a
// release below the trim threshold are all routine negative results reported
// as booleans.
//
// # Thread safety
//
// A Heap is not thread-safe. The region break and the free list are shared
// mutable state; concurrent callers must serialize externally.
package heap
