package format

import "encoding/binary"

// Little-endian field access for header fields stored in the heap region.
// binary.LittleEndian is inlined by the compiler; there is no need for an
// unsafe variant.

// PutI64 writes an int64 field to the region at the given byte offset.
func PutI64(b []byte, off, v int64) {
	binary.LittleEndian.PutUint64(b[off:off+8], uint64(v))
}

// ReadI64 reads an int64 field from the region at the given byte offset.
func ReadI64(b []byte, off int64) int64 {
	return int64(binary.LittleEndian.Uint64(b[off : off+8]))
}
