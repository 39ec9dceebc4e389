package treebench

import (
	"fmt"

	"github.com/rs/zerolog"
)

// RunProfile describes one benchmark configuration.
type RunProfile struct {
	Name           string
	Size           int
	Iterations     int
	Seed           uint64
	DeleteFraction float64
	// Sorted inserts keys in ascending order instead of a random
	// permutation: the degenerate worst case for the unbalanced tree.
	Sorted bool
}

// TreeLoaders maps the tree names accepted on the command line to their
// constructors.
var TreeLoaders = map[string]TreeLoader{
	"bst":       func() (Tree, error) { return NewBSTree(), nil },
	"scapegoat": func() (Tree, error) { return NewScapegoatTree(), nil },
}

// LoaderFor resolves a tree implementation by name.
func LoaderFor(name string) (TreeLoader, error) {
	loader, ok := TreeLoaders[name]
	if !ok {
		return nil, fmt.Errorf("unknown tree implementation %q", name)
	}
	return loader, nil
}

// RunReport aggregates what a run observed: per-phase timing and the
// deepest structure seen.
type RunReport struct {
	Build  Timing
	Find   Timing
	Delete Timing
	// MaxDepth is the deepest MaxDepth observed across iterations.
	MaxDepth int
	// MaxInsertDepth is the deepest insertion depth reported by Add.
	MaxInsertDepth int
}

// Report logs the mean and standard deviation of every phase, plus the
// depth high-water marks.
func (r *RunReport) Report(log zerolog.Logger) {
	phases := []struct {
		name   string
		timing *Timing
	}{
		{"build", &r.Build},
		{"find", &r.Find},
		{"delete", &r.Delete},
	}
	for _, p := range phases {
		mu, sigma := p.timing.Summary()
		log.Info().
			Str("phase", p.name).
			Int("tries", p.timing.N()).
			Dur("time_mu", mu).
			Dur("time_sigma", sigma).
			Msg("phase timing")
	}
	log.Info().
		Int("max_depth", r.MaxDepth).
		Int("max_insert_depth", r.MaxInsertDepth).
		Msg("structure")
}
