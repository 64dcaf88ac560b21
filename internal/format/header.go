// Package format defines the on-region block header layout and the alignment
// and encoding helpers shared by the heap core.
//
// A block header is 32 bytes of little-endian int64 fields laid out directly in
// the heap region, immediately before the block's payload:
//
//	offset 0   capacity  aligned payload bytes owned by the block
//	offset 8   size      requested/used bytes (size <= capacity)
//	offset 16  prev      region offset of the list predecessor
//	offset 24  next      region offset of the list successor
//
// The payload starts at header offset + HeaderSize. Keeping the links inside
// the header makes the free list intrusive: membership costs no allocation and
// physical adjacency stays a pure offset computation.
package format

// Header field offsets, in bytes from the start of the block header.
const (
	OffCapacity = 0
	OffSize     = 8
	OffPrev     = 16
	OffNext     = 24

	// HeaderSize is the total block header size. Every payload begins exactly
	// this many bytes after its header offset.
	HeaderSize = 32
)
