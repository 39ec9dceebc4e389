package treebench

import (
	"fmt"
	"math/rand/v2"

	"github.com/tidwall/btree"

	"github.com/ghedger/treebench/metrics"
)

// DatasetGenerator produces a pseudo-random permutation of [0, Size) by
// drawing from a seeded source and rejecting values already issued. Output
// is fully determined by the seed; tests pin known permutations.
type DatasetGenerator struct {
	Size int
	Seed uint64
}

// Dataset is a sequence of pairwise-unique keys to insert, in insertion
// order.
type Dataset struct {
	Seed uint64
	Keys []int64
}

// Generate draws the permutation. Rejected (already-issued) draws are
// counted on the generator.collisions metric.
func (g DatasetGenerator) Generate() (*Dataset, error) {
	if g.Size < 0 {
		return nil, fmt.Errorf("dataset size must be non-negative, got %d", g.Size)
	}
	collisions := metrics.Default.NewCounter("generator.collisions")
	rng := rand.New(rand.NewPCG(g.Seed, 0))
	issued := btree.NewBTreeG[int64](func(a, b int64) bool { return a < b })
	keys := make([]int64, 0, g.Size)
	for len(keys) < g.Size {
		v := int64(rng.IntN(g.Size))
		for {
			if _, ok := issued.Get(v); !ok {
				break
			}
			collisions.Inc()
			v = int64(rng.IntN(g.Size))
		}
		issued.Set(v)
		keys = append(keys, v)
	}
	return &Dataset{Seed: g.Seed, Keys: keys}, nil
}

// SortedDataset returns the keys 0..size-1 in ascending order: the
// degenerate worst case for an unbalanced tree.
func SortedDataset(size int) *Dataset {
	keys := make([]int64, size)
	for i := range keys {
		keys[i] = int64(i)
	}
	return &Dataset{Keys: keys}
}

func (d *Dataset) Len() int {
	return len(d.Keys)
}
