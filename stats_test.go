package treebench_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ghedger/treebench"
)

func Test_Timing_Summary(t *testing.T) {
	var timing treebench.Timing
	for _, s := range []int{2, 4, 4, 4, 5, 5, 7, 9} {
		timing.Record(time.Duration(s) * time.Second)
	}
	require.Equal(t, 8, timing.N())

	mu, sigma := timing.Summary()
	require.Equal(t, 5*time.Second, mu)
	require.Equal(t, 2*time.Second, sigma)
}

func Test_Timing_SingleSample(t *testing.T) {
	var timing treebench.Timing
	timing.Record(3 * time.Millisecond)
	mu, sigma := timing.Summary()
	require.Equal(t, 3*time.Millisecond, mu)
	require.Equal(t, time.Duration(0), sigma)
}

func Test_Timing_Empty(t *testing.T) {
	var timing treebench.Timing
	mu, sigma := timing.Summary()
	require.Equal(t, time.Duration(0), mu)
	require.Equal(t, time.Duration(0), sigma)
	require.Equal(t, 0, timing.N())
}
