package heap

import (
	"fmt"

	"github.com/heapkit/heapkit/internal/format"
)

// Fit selects the block-selection strategy used by Search.
type Fit uint8

const (
	// FirstFit returns the first free block large enough.
	FirstFit Fit = iota

	// BestFit returns the smallest free block large enough; ties resolve to
	// the block encountered first.
	BestFit

	// WorstFit returns the largest free block large enough; ties resolve to
	// the block encountered first.
	WorstFit
)

// String returns the strategy name.
func (f Fit) String() string {
	switch f {
	case FirstFit:
		return "first"
	case BestFit:
		return "best"
	case WorstFit:
		return "worst"
	default:
		return fmt.Sprintf("fit(%d)", uint8(f))
	}
}

// ParseFit resolves a strategy name ("first", "best" or "worst").
func ParseFit(s string) (Fit, error) {
	switch s {
	case "first":
		return FirstFit, nil
	case "best":
		return BestFit, nil
	case "worst":
		return WorstFit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadFit, s)
	}
}

// Config carries the externally supplied tuning of a Heap. The zero value is
// not valid; start from DefaultConfig.
type Config struct {
	// Alignment is the boundary block capacities are rounded up to. It must
	// be a power of two that divides HeaderSize, so that headers of merged
	// neighbors land on aligned offsets.
	Alignment int64

	// TrimThreshold is the minimum number of bytes (header included) a
	// trailing block must return before Release shrinks the region.
	TrimThreshold int64

	// Fit is the free-list selection strategy.
	Fit Fit
}

// DefaultConfig matches the traditional allocator tuning: 8-byte alignment,
// 4 KiB trim threshold, first fit.
var DefaultConfig = Config{
	Alignment:     8,
	TrimThreshold: 4096,
	Fit:           FirstFit,
}

func (c Config) validate() error {
	if !format.IsPowerOfTwo(c.Alignment) {
		return fmt.Errorf("%w: alignment %d is not a power of two", ErrBadConfig, c.Alignment)
	}
	if !format.IsAligned(HeaderSize, c.Alignment) {
		return fmt.Errorf("%w: alignment %d does not divide the %d-byte header",
			ErrBadConfig, c.Alignment, HeaderSize)
	}
	if c.TrimThreshold < 0 {
		return fmt.Errorf("%w: negative trim threshold %d", ErrBadConfig, c.TrimThreshold)
	}
	if c.Fit > WorstFit {
		return fmt.Errorf("%w: fit %d", ErrBadFit, c.Fit)
	}
	return nil
}
