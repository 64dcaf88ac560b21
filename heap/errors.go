package heap

import "errors"

var (
	// ErrOutOfMemory indicates the region could not grow to satisfy an
	// allocation. Never retried internally.
	ErrOutOfMemory = errors.New("heap: out of memory")

	// ErrBadConfig indicates an invalid Config passed to NewHeap.
	ErrBadConfig = errors.New("heap: invalid config")

	// ErrBadFit indicates an unknown fit strategy name.
	ErrBadFit = errors.New("heap: unknown fit strategy")
)
