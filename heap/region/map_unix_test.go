//go:build unix

package region

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_MapRegion_SbrkParityWithMem(t *testing.T) {
	mapped, err := NewMap(1 << 20)
	require.NoError(t, err)
	defer mapped.Close()

	mem := NewMem(1 << 20)
	defer mem.Close()

	deltas := []int64{0, 4096, 100, -100, 8192, -4096, 0}
	for _, d := range deltas {
		wantPrev, wantErr := mem.Sbrk(d)
		gotPrev, gotErr := mapped.Sbrk(d)
		require.Equal(t, wantErr, gotErr, "delta %d", d)
		require.Equal(t, wantPrev, gotPrev, "delta %d", d)
	}
}

func Test_MapRegion_WriteReadAcrossPages(t *testing.T) {
	r, err := NewMap(1 << 20)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Sbrk(3 * 4096)
	require.NoError(t, err)

	b := r.Bytes()
	for i := range b {
		b[i] = byte(i)
	}
	for i := range b {
		require.Equal(t, byte(i), b[i])
	}
}

func Test_MapRegion_ShrinkThenRegrow(t *testing.T) {
	r, err := NewMap(1 << 20)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Sbrk(8192)
	require.NoError(t, err)
	r.Bytes()[0] = 0xAB

	_, err = r.Sbrk(-8192)
	require.NoError(t, err)
	require.Empty(t, r.Bytes())

	_, err = r.Sbrk(4096)
	require.NoError(t, err)
	// The regrown pages must be writable again.
	r.Bytes()[0] = 0xCD
	require.Equal(t, byte(0xCD), r.Bytes()[0])
}

func Test_MapRegion_Exhaustion(t *testing.T) {
	r, err := NewMap(4096)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Sbrk(4096)
	require.NoError(t, err)
	_, err = r.Sbrk(1)
	require.ErrorIs(t, err, ErrExhausted)
}
