package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Counter(t *testing.T) {
	m := NewMetrics()
	c := m.NewCounter("test.counter")
	for i := 0; i < 3; i++ {
		c.Inc()
	}
	require.Equal(t, int64(3), c.Value())

	pt := c.Collect()
	require.Equal(t, "test.counter", pt.path)
	require.Equal(t, int64(3), pt.value)
}

func Test_Run_FlushesOnDone(t *testing.T) {
	m := NewMetrics()
	c := m.NewCounter("test.flush")
	c.Inc()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.Run(ctx)

	require.Len(t, m.Series["test.flush"], 1)
	require.Contains(t, m.Print(), "test.flush")
}
