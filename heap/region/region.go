// Package region supplies the heap boundary primitive: a single contiguous
// byte region whose end (the "break") moves by signed deltas, sbrk-style.
//
// The heap core consumes a Region but never implements one; keeping the
// primitive behind an interface lets tests run against a deterministic
// in-process region while production code maps real address space.
//
// A Region is not reentrant and must be the only mover of its break. The heap
// core relies on the bytes below the break keeping their contents and their
// positions across every Sbrk call.
package region

import "errors"

var (
	// ErrExhausted indicates the region cannot grow past its limit.
	ErrExhausted = errors.New("region: heap exhausted")

	// ErrBadShrink indicates a shrink below the region start.
	ErrBadShrink = errors.New("region: shrink below region start")

	// ErrClosed indicates use of a region after Close.
	ErrClosed = errors.New("region: closed")
)

// Region is the heap boundary primitive.
type Region interface {
	// Sbrk moves the break by delta bytes and returns the previous break.
	// Sbrk(0) queries the current break without moving it. Growth past the
	// region limit fails with ErrExhausted; shrinking below zero fails with
	// ErrBadShrink. On failure the break is unchanged.
	Sbrk(delta int64) (int64, error)

	// Bytes returns the region contents below the current break. The slice is
	// invalidated by the next Sbrk call.
	Bytes() []byte

	// Close releases the region. The region must not be used afterwards.
	Close() error
}
