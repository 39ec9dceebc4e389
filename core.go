package treebench

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// TreeLoader constructs a fresh tree for one benchmark iteration.
type TreeLoader func() (Tree, error)

// TreeContext carries everything one benchmark run needs: logger,
// instrumentation, the run profile, and an optional pre-generated dataset
// directory. Metric fields may be nil; they are skipped when unset.
type TreeContext struct {
	context.Context

	Log             zerolog.Logger
	Profile         RunProfile
	DatasetDir      string
	MetricAddCount  prometheus.Counter
	MetricTreeSize  prometheus.Gauge
	MetricTreeDepth prometheus.Gauge
	PrintTree       bool
	Out             io.Writer
}

// Run benchmarks the tree implementation produced by loader: for each
// iteration it builds the tree from a unique-key dataset, queries every key
// back, deletes a fraction, and records per-phase timing.
func (c *TreeContext) Run(loader TreeLoader) (*RunReport, error) {
	iterations := c.Profile.Iterations
	if iterations <= 0 {
		iterations = 1
	}
	report := &RunReport{}
	for iter := 0; iter < iterations; iter++ {
		ds, err := c.dataset(iter)
		if err != nil {
			return nil, fmt.Errorf("error loading dataset for iteration %d: %w", iter, err)
		}
		tree, err := loader()
		if err != nil {
			return nil, fmt.Errorf("error loading tree: %w", err)
		}
		if err := c.runIteration(report, tree, ds, iter); err != nil {
			return nil, fmt.Errorf("error in iteration %d: %w", iter, err)
		}
		tree.Clear()
	}
	return report, nil
}

func (c *TreeContext) dataset(iter int) (*Dataset, error) {
	if c.DatasetDir != "" {
		info, err := ReadDatasetInfo(c.DatasetDir)
		if err != nil {
			return nil, err
		}
		return ReadDataset(c.DatasetDir, iter%info.Count)
	}
	if c.Profile.Sorted {
		return SortedDataset(c.Profile.Size), nil
	}
	return DatasetGenerator{Size: c.Profile.Size, Seed: c.Profile.Seed + uint64(iter)}.Generate()
}

func (c *TreeContext) runIteration(report *RunReport, tree Tree, ds *Dataset, iter int) error {
	since := time.Now()
	start := since
	for i, key := range ds.Keys {
		_, depth, err := tree.Add(key, keyPayload(key))
		if err != nil {
			return fmt.Errorf("error inserting key %d: %w", key, err)
		}
		if depth > report.MaxInsertDepth {
			report.MaxInsertDepth = depth
		}
		if c.MetricAddCount != nil {
			c.MetricAddCount.Inc()
		}
		if (i+1)%100_000 == 0 {
			c.Log.Info().Msgf("inserted %s keys in %s; %s keys/s",
				humanize.Comma(int64(i+1)),
				time.Since(start),
				humanize.Comma(int64(100_000/time.Since(since).Seconds())))
			since = time.Now()
		}
	}
	report.Build.Record(time.Since(start))
	if tree.Size() != ds.Len() {
		return fmt.Errorf("expected %d nodes after build; got %d", ds.Len(), tree.Size())
	}
	if c.MetricTreeSize != nil {
		c.MetricTreeSize.Set(float64(tree.Size()))
	}

	depth := tree.MaxDepth()
	if depth > report.MaxDepth {
		report.MaxDepth = depth
	}
	if c.MetricTreeDepth != nil {
		c.MetricTreeDepth.Set(float64(depth))
	}

	start = time.Now()
	for _, key := range ds.Keys {
		h, ok := tree.Find(key)
		if !ok {
			return fmt.Errorf("key %d not found after build", key)
		}
		if got := int64(binary.LittleEndian.Uint64(h.Payload())); got != key {
			return fmt.Errorf("key %d holds payload for %d", key, got)
		}
	}
	report.Find.Record(time.Since(start))

	deletes := int(c.Profile.DeleteFraction * float64(ds.Len()))
	if deletes > ds.Len() {
		deletes = ds.Len()
	}
	start = time.Now()
	for _, key := range ds.Keys[:deletes] {
		if !tree.DeleteKey(key) {
			return fmt.Errorf("failed to delete key %d", key)
		}
	}
	report.Delete.Record(time.Since(start))
	if got := tree.Size(); got != ds.Len()-deletes {
		return fmt.Errorf("expected %d nodes after deletes; got %d", ds.Len()-deletes, got)
	}
	for _, key := range ds.Keys[:deletes] {
		if _, ok := tree.Find(key); ok {
			return fmt.Errorf("deleted key %d still present", key)
		}
	}

	if c.PrintTree {
		out := c.Out
		if out == nil {
			out = os.Stdout
		}
		tree.Print(out)
		fmt.Fprintf(out, "\nMAX DEPTH: %d\n", depth)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	c.Log.Info().
		Int("iteration", iter).
		Int("size", ds.Len()).
		Int("max_depth", depth).
		Int("deletes", deletes).
		Str("mem_allocs", humanize.Bytes(memStats.Alloc)).
		Str("mem_sys", humanize.Bytes(memStats.Sys)).
		Str("mem_num_gc", humanize.Comma(int64(memStats.NumGC))).
		Msg("iteration done")
	return nil
}

// keyPayload is the payload stored with every key: its own little-endian
// encoding, so lookups can verify they landed on the right node.
func keyPayload(key int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(key))
	return b
}
