//go:build unix

package region

import (
	"os"

	"golang.org/x/sys/unix"
)

// MapRegion is a Region backed by a reserved anonymous mapping. The full
// limit is reserved PROT_NONE at creation, then pages are committed with
// mprotect as the break advances and decommitted again when it retreats.
// Reserving up front keeps the region contiguous without ever remapping, so
// offsets below the break stay stable for the lifetime of the region.
type MapRegion struct {
	mem       []byte
	brk       int64
	committed int64 // page-aligned committed prefix
	page      int64
}

var _ Region = (*MapRegion)(nil)

// NewMap reserves limit bytes of address space and returns a Region over it.
func NewMap(limit int64) (Region, error) {
	if limit <= 0 {
		return NewMem(limit), nil
	}
	page := int64(os.Getpagesize())
	reserve := (limit + page - 1) &^ (page - 1)
	mem, err := unix.Mmap(-1, 0, int(reserve),
		unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	return &MapRegion{mem: mem[:limit], page: page}, nil
}

// Sbrk moves the break by delta and returns the previous break.
func (m *MapRegion) Sbrk(delta int64) (int64, error) {
	if m.mem == nil {
		return 0, ErrClosed
	}
	next := m.brk + delta
	if next > int64(len(m.mem)) {
		return 0, ErrExhausted
	}
	if next < 0 {
		return 0, ErrBadShrink
	}
	if err := m.commit(next); err != nil {
		return 0, err
	}
	prev := m.brk
	m.brk = next
	return prev, nil
}

// commit adjusts page protections so exactly the pages covering [0, next)
// are readable and writable.
func (m *MapRegion) commit(next int64) error {
	want := (next + m.page - 1) &^ (m.page - 1)
	if reserved := (int64(len(m.mem)) + m.page - 1) &^ (m.page - 1); want > reserved {
		want = reserved
	}
	full := m.mem[:cap(m.mem)]
	switch {
	case want > m.committed:
		if err := unix.Mprotect(full[m.committed:want], unix.PROT_READ|unix.PROT_WRITE); err != nil {
			return err
		}
	case want < m.committed:
		if err := unix.Mprotect(full[want:m.committed], unix.PROT_NONE); err != nil {
			return err
		}
		// Return the pages to the OS; the protection flip alone keeps them resident.
		_ = unix.Madvise(full[want:m.committed], unix.MADV_DONTNEED)
	}
	m.committed = want
	return nil
}

// Bytes returns the region contents below the current break.
func (m *MapRegion) Bytes() []byte {
	return m.mem[:m.brk]
}

// Close unmaps the reservation.
func (m *MapRegion) Close() error {
	if m.mem == nil {
		return nil
	}
	mem := m.mem[:cap(m.mem)]
	m.mem = nil
	m.brk = 0
	m.committed = 0
	return unix.Munmap(mem)
}
