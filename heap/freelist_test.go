package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// allocSpaced allocates a block of each given size with a live spacer block
// between every pair, so none of the returned blocks are physically adjacent.
func allocSpaced(t *testing.T, h *Heap, sizes ...int64) []Ref {
	t.Helper()
	refs := make([]Ref, 0, len(sizes))
	for i, size := range sizes {
		r, err := h.Allocate(size)
		require.NoError(t, err)
		refs = append(refs, r)
		if i < len(sizes)-1 {
			_, err = h.Allocate(8) // spacer stays allocated
			require.NoError(t, err)
		}
	}
	return refs
}

func Test_Insert_AppendsNonAdjacent(t *testing.T) {
	h := newTestHeap(t, DefaultConfig)

	refs := allocSpaced(t, h, 16, 48, 32)
	for _, r := range refs {
		h.Insert(r)
	}

	require.Equal(t, 3, h.Length())

	// Insertion order is list order.
	curr := h.Next(refSentinel)
	for _, want := range refs {
		require.Equal(t, want, curr)
		curr = h.Next(curr)
	}
	require.Equal(t, refSentinel, curr)
	requireFreeListInvariants(t, h)
}

func Test_Insert_CoalescesAdjacentPair(t *testing.T) {
	h := newTestHeap(t, DefaultConfig)

	a, err := h.Allocate(64)
	require.NoError(t, err)
	b, err := h.Allocate(64)
	require.NoError(t, err)

	h.Insert(a)
	h.Insert(b)

	require.Equal(t, 1, h.Length(), "adjacent blocks coalesce into one member")
	require.Equal(t, int64(64+64+HeaderSize), h.Capacity(a))
	require.Equal(t, int64(1), h.Counters().Merges)
	requireFreeListInvariants(t, h)
}

func Test_Insert_CoalescesIntoEarlierMember(t *testing.T) {
	h := newTestHeap(t, DefaultConfig)

	// b physically precedes its free neighbor: inserting b after a means b
	// absorbs a and takes a's place in the list.
	a, err := h.Allocate(64)
	require.NoError(t, err)
	b, err := h.Allocate(64)
	require.NoError(t, err)

	h.Insert(b)
	h.Insert(a)

	require.Equal(t, 1, h.Length())
	require.Equal(t, a, h.Next(refSentinel), "survivor replaces the old member")
	require.Equal(t, int64(64+64+HeaderSize), h.Capacity(a))
}

func Test_Insert_SinglePassDoesNotChain(t *testing.T) {
	h := newTestHeap(t, DefaultConfig)

	a, err := h.Allocate(64)
	require.NoError(t, err)
	b, err := h.Allocate(64)
	require.NoError(t, err)
	c, err := h.Allocate(64)
	require.NoError(t, err)

	h.Insert(a)
	h.Insert(c)
	// Inserting b merges it into a; the merged block now touches c, but the
	// pass ends on the first merge, so a and c stay separate members.
	h.Insert(b)

	require.Equal(t, 2, h.Length())
	require.Equal(t, int64(64+64+HeaderSize), h.Capacity(a))
	require.Equal(t, int64(64), h.Capacity(c))

	// A later insert of an adjacent block can still pick either one up.
	d, err := h.Allocate(64)
	require.NoError(t, err)
	h.Insert(d)
	require.Equal(t, 2, h.Length())
	requireFreeListInvariants(t, h)
}

func Test_Search_FitStrategies(t *testing.T) {
	// List holds capacities [16, 48, 32] in that order; a size-24 probe
	// exercises the three strategies' disagreement.
	cases := []struct {
		fit  Fit
		want int64 // capacity of the expected block
	}{
		{FirstFit, 48},
		{BestFit, 32},
		{WorstFit, 48},
	}
	for _, c := range cases {
		t.Run(c.fit.String(), func(t *testing.T) {
			h := newTestHeap(t, Config{Alignment: 8, TrimThreshold: 4096, Fit: c.fit})
			for _, r := range allocSpaced(t, h, 16, 48, 32) {
				h.Insert(r)
			}

			r, ok := h.Search(24)
			require.True(t, ok)
			require.Equal(t, c.want, h.Capacity(r))
			require.Equal(t, int64(24), h.Size(r), "search records the requested size")
			require.Equal(t, int64(1), h.Counters().Reuses)
		})
	}
}

func Test_Search_TiesResolveToFirstEncountered(t *testing.T) {
	for _, fit := range []Fit{BestFit, WorstFit} {
		t.Run(fit.String(), func(t *testing.T) {
			h := newTestHeap(t, Config{Alignment: 8, TrimThreshold: 4096, Fit: fit})
			refs := allocSpaced(t, h, 40, 40, 40)
			for _, r := range refs {
				h.Insert(r)
			}

			r, ok := h.Search(24)
			require.True(t, ok)
			require.Equal(t, refs[0], r)
		})
	}
}

func Test_Search_Miss(t *testing.T) {
	h := newTestHeap(t, DefaultConfig)
	for _, r := range allocSpaced(t, h, 16, 32) {
		h.Insert(r)
	}

	r, ok := h.Search(1024)
	require.False(t, ok, "no qualifying block is a routine miss")
	require.Equal(t, RefNil, r)
	require.Equal(t, int64(0), h.Counters().Reuses)
	require.Equal(t, 2, h.Length(), "miss leaves the list untouched")
}

func Test_Search_LeavesBlockLinked(t *testing.T) {
	h := newTestHeap(t, DefaultConfig)
	refs := allocSpaced(t, h, 64, 64)
	for _, r := range refs {
		h.Insert(r)
	}

	r, ok := h.Search(48)
	require.True(t, ok)
	require.Equal(t, 2, h.Length(), "search does not detach")

	h.Detach(r)
	require.Equal(t, 1, h.Length())
}

func Test_Length_CountsMembers(t *testing.T) {
	h := newTestHeap(t, DefaultConfig)
	require.Equal(t, 0, h.Length())

	refs := allocSpaced(t, h, 8, 8, 8, 8, 8)
	for i, r := range refs {
		h.Insert(r)
		require.Equal(t, i+1, h.Length())
	}
}

func Test_RoundTrip_ReuseWithoutGrowth(t *testing.T) {
	const size = 100

	h := newTestHeap(t, DefaultConfig) // trim threshold 4096 keeps the block
	r, err := h.Allocate(size)
	require.NoError(t, err)

	require.False(t, h.Release(r), "below the trim threshold, kept for reuse")
	h.Insert(r)

	growsBefore := h.Counters().Grows
	got, ok := h.Search(size)
	require.True(t, ok)
	require.Equal(t, r, got, "the same memory region is reused")
	h.Detach(got)

	require.Equal(t, growsBefore, h.Counters().Grows, "reuse must not grow the heap")
	require.Equal(t, int64(1), h.Counters().Reuses)
}
