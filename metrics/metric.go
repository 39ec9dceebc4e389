// Package metrics is a minimal counter registry for benchmark internals that
// are too noisy for the prometheus surface, like generator collision counts.
// Counters are sampled into series by Run and dumped when the run ends.
package metrics

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

var Default = NewMetrics()

type Collectable interface {
	Collect() MetricPoint
}

type Metrics struct {
	metrics []Collectable
	Series  map[string][]MetricPoint
}

func NewMetrics() *Metrics {
	return &Metrics{
		Series: make(map[string][]MetricPoint),
	}
}

type MetricPoint struct {
	time  int64
	value int64
	path  string
}

// Run samples all registered collectables every five seconds until ctx is
// done, then flushes once more and prints the series.
func (m *Metrics) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second * 5)
	defer ticker.Stop()
	flush := func() {
		for _, c := range m.metrics {
			pt := c.Collect()
			m.Series[pt.path] = append(m.Series[pt.path], pt)
		}
	}
	for {
		select {
		case <-ctx.Done():
			flush()
			fmt.Println(m.Print())
			return
		case <-ticker.C:
			flush()
		}
	}
}

func (m *Metrics) Print() string {
	builder := strings.Builder{}
	for path, series := range m.Series {
		for _, pt := range series {
			builder.WriteString(fmt.Sprintf("%s %s %d\n", path, humanize.Comma(pt.value), pt.time))
		}
	}
	return builder.String()
}

func (m *Metrics) NewCounter(path string) *Counter {
	c := &Counter{
		path: path,
	}
	m.metrics = append(m.metrics, c)
	return c
}

type Counter struct {
	path  string
	count int64
}

func (c *Counter) Inc() {
	atomic.AddInt64(&c.count, 1)
}

func (c *Counter) Value() int64 {
	return atomic.LoadInt64(&c.count)
}

func (c *Counter) Collect() MetricPoint {
	return MetricPoint{
		time:  time.Now().Unix(),
		value: atomic.LoadInt64(&c.count),
		path:  c.path,
	}
}
