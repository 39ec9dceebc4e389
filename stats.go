package treebench

import (
	"math"
	"time"
)

// Timing accumulates duration samples for one benchmark phase across
// repeated runs.
type Timing struct {
	samples []time.Duration
}

func (t *Timing) Record(d time.Duration) {
	t.samples = append(t.samples, d)
}

func (t *Timing) N() int {
	return len(t.samples)
}

// Summary returns the mean (mu) and population standard deviation (sigma)
// of the recorded samples. Both are zero when nothing was recorded.
func (t *Timing) Summary() (mu, sigma time.Duration) {
	n := len(t.samples)
	if n == 0 {
		return 0, 0
	}
	var accum float64
	for _, s := range t.samples {
		accum += float64(s)
	}
	mean := accum / float64(n)

	accum = 0
	for _, s := range t.samples {
		accum += math.Pow(float64(s)-mean, 2)
	}
	return time.Duration(mean), time.Duration(math.Sqrt(accum / float64(n)))
}
