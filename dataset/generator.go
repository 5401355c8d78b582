package dataset

import (
	"math/rand"

	"github.com/gaarutyunov/binpacking/binpack"
	"github.com/pkg/errors"
)

var ErrUnknownDistribution = errors.New("unknown weight distribution")

type Distribution string

const (
	// Uniform draws every weight uniformly from [Min, Max].
	Uniform Distribution = "uniform"
	// Exponential gives a small share of items the extreme weight Max and
	// draws the rest from [Min, Max/4].
	Exponential Distribution = "exponential"
)

const defaultExtremePercent = 0.05

// Generator produces random instances. Zero Min and Max default to 1 and
// Capacity.
type Generator struct {
	Count          int
	Capacity       uint64
	Distribution   Distribution
	Min            uint64
	Max            uint64
	ExtremePercent float64
	Seed           int64
}

func (g Generator) Generate() (binpack.Instance, error) {
	if g.Count <= 0 {
		return binpack.Instance{}, binpack.ErrEmptyInstance
	}

	if g.Capacity == 0 {
		return binpack.Instance{}, binpack.ErrZeroCapacity
	}

	lo, hi := g.Min, g.Max
	if lo == 0 {
		lo = 1
	}
	if hi == 0 {
		hi = g.Capacity
	}
	if lo > hi {
		return binpack.Instance{}, errors.Errorf("weight range [%d, %d] is empty", lo, hi)
	}
	if hi > g.Capacity {
		return binpack.Instance{}, errors.Wrapf(binpack.ErrUnplaceableItem, "max weight %d, capacity %d", hi, g.Capacity)
	}

	rnd := rand.New(rand.NewSource(g.Seed))
	weights := make([]uint64, g.Count)

	switch g.Distribution {
	case Uniform, "":
		for i := range weights {
			weights[i] = between(rnd, lo, hi)
		}
	case Exponential:
		extreme := g.ExtremePercent
		if extreme <= 0 || extreme >= 1 {
			extreme = defaultExtremePercent
		}

		normal := max(lo, hi/4)
		for i := range weights {
			if rnd.Float64() < extreme {
				weights[i] = hi
			} else {
				weights[i] = between(rnd, lo, normal)
			}
		}
	default:
		return binpack.Instance{}, errors.Wrapf(ErrUnknownDistribution, "%q", g.Distribution)
	}

	return binpack.NewInstance(g.Capacity, weights)
}

// between draws from [lo, hi]. The full uint64 range wraps the span to zero.
func between(rnd *rand.Rand, lo, hi uint64) uint64 {
	span := hi - lo + 1
	if span == 0 {
		return rnd.Uint64()
	}

	return lo + rnd.Uint64()%span
}
