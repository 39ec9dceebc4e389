package treebench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Scapegoat_AlphaValidation(t *testing.T) {
	for _, alpha := range []float64{0.5, 1.0, 0.2, 1.5} {
		_, err := NewScapegoatTreeAlpha(alpha)
		require.Error(t, err, "alpha %g", alpha)
	}
	tr, err := NewScapegoatTreeAlpha(0.7)
	require.NoError(t, err)
	require.NotNil(t, tr)
}

func Test_Scapegoat_SortedInsertionStaysShallow(t *testing.T) {
	// Sorted insertion is the chain-shaped worst case for the plain BST;
	// the scapegoat tree must keep its depth logarithmic instead.
	const n = 1024
	tr := NewScapegoatTree()
	for i := 0; i < n; i++ {
		_, _, err := tr.Add(int64(i), keyPayload(int64(i)))
		require.NoError(t, err)
	}
	require.Equal(t, n, tr.Size())
	requireInvariants(t, tr)

	limit := tr.depthLimit(n) + 2
	require.LessOrEqual(t, tr.MaxDepth(), limit,
		"depth after sorted insertion must stay within the alpha bound")

	keys := inOrderKeys(tr)
	for i, k := range keys {
		require.Equal(t, int64(i), k)
	}
}

func Test_Scapegoat_DeleteTriggersRebuild(t *testing.T) {
	const n = 1000
	ds, err := DatasetGenerator{Size: n, Seed: 7}.Generate()
	require.NoError(t, err)

	tr := NewScapegoatTree()
	for _, k := range ds.Keys {
		_, _, err := tr.Add(k, keyPayload(k))
		require.NoError(t, err)
	}

	// Removing well past (1-alpha) of the tree forces at least one full
	// rebuild along the way.
	for _, k := range ds.Keys[:600] {
		require.True(t, tr.DeleteKey(k))
	}
	require.Equal(t, n-600, tr.Size())
	requireInvariants(t, tr)
	require.LessOrEqual(t, tr.MaxDepth(), tr.depthLimit(n)+2)

	for _, k := range ds.Keys[600:] {
		h, ok := tr.Find(k)
		require.True(t, ok, "surviving key %d", k)
		require.Equal(t, keyPayload(k), h.Payload(), "payload must survive rebuilds")
	}
}

func Test_Scapegoat_ChurnKeepsInvariants(t *testing.T) {
	ds, err := DatasetGenerator{Size: 512, Seed: 3}.Generate()
	require.NoError(t, err)

	tr := NewScapegoatTree()
	// Interleave inserts and deletes so both rebuild triggers fire while
	// the tree is live.
	for i, k := range ds.Keys {
		_, _, err := tr.Add(k, keyPayload(k))
		require.NoError(t, err)
		if i%3 == 2 {
			require.True(t, tr.DeleteKey(ds.Keys[i-2]))
		}
	}
	requireInvariants(t, tr)

	keys := inOrderKeys(tr)
	require.Equal(t, tr.Size(), len(keys))
}

func Test_Scapegoat_DepthLimit(t *testing.T) {
	tr := NewScapegoatTree()
	require.Equal(t, 0, tr.depthLimit(0))
	require.Equal(t, 0, tr.depthLimit(1))
	// The limit grows with size and is monotonic.
	prev := 0
	for _, n := range []int{2, 4, 16, 256, 4096} {
		l := tr.depthLimit(n)
		require.GreaterOrEqual(t, l, prev)
		prev = l
	}
}
