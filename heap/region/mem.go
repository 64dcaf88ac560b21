package region

// MemRegion is a slice-backed Region with a hard byte limit. The backing
// array is reserved up front, so offsets below the break stay valid across
// growth. It is the deterministic choice for tests and for platforms without
// the mapped implementation.
type MemRegion struct {
	buf    []byte
	brk    int64
	closed bool
}

var _ Region = (*MemRegion)(nil)

// NewMem returns a MemRegion able to hold at most limit bytes.
func NewMem(limit int64) *MemRegion {
	if limit < 0 {
		limit = 0
	}
	return &MemRegion{buf: make([]byte, limit)}
}

// Sbrk moves the break by delta and returns the previous break.
func (m *MemRegion) Sbrk(delta int64) (int64, error) {
	if m.closed {
		return 0, ErrClosed
	}
	next := m.brk + delta
	if next > int64(len(m.buf)) {
		return 0, ErrExhausted
	}
	if next < 0 {
		return 0, ErrBadShrink
	}
	prev := m.brk
	m.brk = next
	return prev, nil
}

// Bytes returns the region contents below the current break.
func (m *MemRegion) Bytes() []byte {
	return m.buf[:m.brk]
}

// Close drops the backing memory.
func (m *MemRegion) Close() error {
	m.buf = nil
	m.brk = 0
	m.closed = true
	return nil
}

// Limit returns the maximum break this region allows.
func (m *MemRegion) Limit() int64 {
	return int64(len(m.buf))
}
