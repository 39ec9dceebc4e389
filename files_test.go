package treebench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ghedger/treebench"
)

func Test_Datasets_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, treebench.WriteDatasets(dir, 3, 200, 7))

	info, err := treebench.ReadDatasetInfo(dir)
	require.NoError(t, err)
	require.Equal(t, treebench.DatasetInfo{Count: 3, Size: 200, Seed: 7}, info)

	for i := 0; i < 3; i++ {
		got, err := treebench.ReadDataset(dir, i)
		require.NoError(t, err)
		want, err := treebench.DatasetGenerator{Size: 200, Seed: 7 + uint64(i)}.Generate()
		require.NoError(t, err)
		require.Equal(t, want.Keys, got.Keys, "dataset %d", i)
	}
}

func Test_Datasets_IndexOutOfRange(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, treebench.WriteDatasets(dir, 1, 10, 0))

	_, err := treebench.ReadDataset(dir, 1)
	require.Error(t, err)
	_, err = treebench.ReadDataset(dir, -1)
	require.Error(t, err)
}

func Test_Datasets_MissingInfo(t *testing.T) {
	_, err := treebench.ReadDatasetInfo(t.TempDir())
	require.Error(t, err)
}
