package treebench_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ghedger/treebench"
)

func Test_Run_BothTrees(t *testing.T) {
	for _, name := range []string{"bst", "scapegoat"} {
		t.Run(name, func(t *testing.T) {
			loader, err := treebench.LoaderFor(name)
			require.NoError(t, err)

			tc := &treebench.TreeContext{
				Context: context.Background(),
				Log:     zerolog.Nop(),
				Profile: treebench.RunProfile{
					Size:           500,
					Iterations:     2,
					Seed:           42,
					DeleteFraction: 0.5,
				},
			}
			report, err := tc.Run(loader)
			require.NoError(t, err)
			require.Equal(t, 2, report.Build.N())
			require.Equal(t, 2, report.Find.N())
			require.Equal(t, 2, report.Delete.N())
			require.Greater(t, report.MaxDepth, 0)
			require.GreaterOrEqual(t, report.MaxInsertDepth, report.MaxDepth)
		})
	}
}

func Test_Run_DegenerateProfile(t *testing.T) {
	loader, err := treebench.LoaderFor("bst")
	require.NoError(t, err)

	tc := &treebench.TreeContext{
		Context: context.Background(),
		Log:     zerolog.Nop(),
		Profile: treebench.RunProfile{
			Size:       50,
			Iterations: 1,
			Sorted:     true,
		},
	}
	report, err := tc.Run(loader)
	require.NoError(t, err)
	// Sorted insertion into the unbalanced tree builds a chain: depth
	// equals size under the root-depth-1 convention.
	require.Equal(t, 50, report.MaxDepth)
	require.Equal(t, 50, report.MaxInsertDepth)
}

func Test_Run_PrintTree(t *testing.T) {
	loader, err := treebench.LoaderFor("bst")
	require.NoError(t, err)

	var buf bytes.Buffer
	tc := &treebench.TreeContext{
		Context:   context.Background(),
		Log:       zerolog.Nop(),
		Profile:   treebench.RunProfile{Size: 10, Iterations: 1},
		PrintTree: true,
		Out:       &buf,
	}
	_, err = tc.Run(loader)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "MAX DEPTH:")
	require.Contains(t, buf.String(), "key=")
}

func Test_Run_FromDatasetDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, treebench.WriteDatasets(dir, 2, 100, 5))

	loader, err := treebench.LoaderFor("scapegoat")
	require.NoError(t, err)

	tc := &treebench.TreeContext{
		Context:    context.Background(),
		Log:        zerolog.Nop(),
		Profile:    treebench.RunProfile{Iterations: 3, DeleteFraction: 0.2},
		DatasetDir: dir,
	}
	report, err := tc.Run(loader)
	require.NoError(t, err)
	require.Equal(t, 3, report.Build.N())
}

func Test_Run_UnknownTree(t *testing.T) {
	_, err := treebench.LoaderFor("splay")
	require.Error(t, err)
}

func Test_Run_EmptyDataset(t *testing.T) {
	loader, err := treebench.LoaderFor("bst")
	require.NoError(t, err)

	tc := &treebench.TreeContext{
		Context: context.Background(),
		Log:     zerolog.Nop(),
		Profile: treebench.RunProfile{Size: 0, Iterations: 1},
	}
	report, err := tc.Run(loader)
	require.NoError(t, err)
	require.Equal(t, 0, report.MaxDepth)
}

func Test_Profiles(t *testing.T) {
	for _, p := range []treebench.RunProfile{
		treebench.SmallProfile(),
		treebench.LargeProfile(),
		treebench.DegenerateProfile(),
	} {
		require.NotEmpty(t, p.Name)
		require.Greater(t, p.Size, 0)
		require.Greater(t, p.Iterations, 0)
	}
}
