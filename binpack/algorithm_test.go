package binpack

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomWeights(rnd *rand.Rand, n int, lo, hi uint64) []uint64 {
	weights := make([]uint64, n)
	for i := range weights {
		weights[i] = lo + uint64(rnd.Int63n(int64(hi-lo+1)))
	}

	return weights
}

func randomInstances(t *testing.T, seed int64) []Instance {
	t.Helper()

	rnd := rand.New(rand.NewSource(seed))
	var instances []Instance

	for _, capacity := range []uint64{10, 100, 1000} {
		for k := 0; k < 8; k++ {
			n := 1 + rnd.Intn(400)
			lo := 1 + uint64(rnd.Int63n(int64(capacity/2)+1))
			hi := lo + uint64(rnd.Int63n(int64(capacity-lo)+1))

			inst, err := NewInstance(capacity, randomWeights(rnd, n, lo, hi))
			require.NoError(t, err)

			instances = append(instances, inst)
		}
	}

	return instances
}

func mustPack(t *testing.T, a Algorithm, inst Instance) Result {
	t.Helper()

	res, err := a.Pack(inst)
	require.NoError(t, err, a.Name())

	return res
}

func TestPack_Scenario(t *testing.T) {
	inst, err := NewInstance(10, []uint64{2, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	for _, a := range Algorithms() {
		if a.Decreasing {
			continue
		}

		res := mustPack(t, a, inst)
		assert.Equal(t, 3, res.Bins, a.Name())
	}

	res := mustPack(t, Algorithm{Policy: NextFit}, inst)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 2}, res.Positions)

	res = mustPack(t, Algorithm{Policy: FirstFit}, inst)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 2}, res.Positions)

	res = mustPack(t, Algorithm{Policy: BestFit}, inst)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 2}, res.Positions)
}

func TestPack_PoliciesDiffer(t *testing.T) {
	inst, err := NewInstance(10, []uint64{6, 5, 4, 5})
	require.NoError(t, err)

	expected := map[Policy]int{
		NextFit:  3,
		FirstFit: 2,
		BestFit:  2,
		MaxRest:  3,
	}

	for _, a := range Algorithms() {
		if a.Decreasing {
			continue
		}

		assert.Equal(t, expected[a.Policy], mustPack(t, a, inst).Bins, a.Name())
	}
}

func TestPack_StrategiesAgree(t *testing.T) {
	for _, inst := range randomInstances(t, 42) {
		linear := make(map[string]Result)

		for _, a := range Algorithms() {
			if a.Strategy != Linear {
				continue
			}

			linear[fmt.Sprint(a.Policy, a.Decreasing)] = mustPack(t, a, inst)
		}

		for _, a := range Algorithms() {
			res := mustPack(t, a, inst)
			ref := linear[fmt.Sprint(a.Policy, a.Decreasing)]

			assert.Equal(t, ref.Bins, res.Bins, a.Name())
		}
	}
}

func TestPack_FirstFitMapMatchesLinear(t *testing.T) {
	for _, inst := range randomInstances(t, 11) {
		for _, decreasing := range []bool{false, true} {
			linear := mustPack(t, Algorithm{Policy: FirstFit, Decreasing: decreasing}, inst)
			indexed := mustPack(t, Algorithm{Policy: FirstFit, Strategy: Indexed, Decreasing: decreasing}, inst)

			assert.Equal(t, linear.Positions, indexed.Positions)
		}
	}
}

func TestPack_Valid(t *testing.T) {
	for _, inst := range randomInstances(t, 5) {
		for _, a := range Algorithms() {
			res := mustPack(t, a, inst)

			require.NoError(t, Verify(inst, res), a.Name())
			assert.GreaterOrEqual(t, res.Bins, inst.LowerBound(), a.Name())

			if res.HasPositions() {
				var total uint64
				for _, fill := range res.Fills(inst) {
					total += fill
				}
				assert.Equal(t, inst.SumWeight, total, a.Name())
			}
		}
	}
}

func TestPack_PositionsOnlyForArrayStrategies(t *testing.T) {
	inst, err := NewInstance(10, []uint64{3, 7, 2})
	require.NoError(t, err)

	for _, a := range Algorithms() {
		res := mustPack(t, a, inst)

		switch a.Strategy {
		case Linear, Indexed:
			assert.True(t, res.HasPositions(), a.Name())
		default:
			assert.False(t, res.HasPositions(), a.Name())
		}
	}
}

func TestPack_DecreasingKeepsItemOrder(t *testing.T) {
	inst, err := NewInstance(10, []uint64{1, 9, 2, 8, 3, 7})
	require.NoError(t, err)

	res := mustPack(t, Algorithm{Policy: FirstFit, Decreasing: true}, inst)

	assert.Equal(t, 3, res.Bins)
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2}, res.Positions)
	assert.Equal(t, []uint64{1, 9, 2, 8, 3, 7}, inst.Weights)
}

func TestPack_DecreasingSortFailure(t *testing.T) {
	inst, err := NewInstance(1000, []uint64{1, 999})
	require.NoError(t, err)

	a := Algorithm{Policy: FirstFit, Decreasing: true, Sorter: CountingSort{MaxRange: 10}}

	_, err = a.Pack(inst)
	assert.ErrorIs(t, err, ErrRangeTooLarge)
}

func TestPack_Unsupported(t *testing.T) {
	inst, err := NewInstance(10, []uint64{1})
	require.NoError(t, err)

	_, err = Algorithm{Policy: NextFit, Strategy: Heap}.Pack(inst)
	assert.ErrorIs(t, err, ErrUnsupported)
}

// Closing a bin once its fill passes K - min weight must never change where
// items go: references below never close anything.

func naiveFirstFit(inst Instance) []int {
	var fills []uint64
	positions := make([]int, inst.Len())

	for i, w := range inst.Weights {
		j := 0
		for ; j < len(fills) && fills[j]+w > inst.Capacity; j++ {
		}

		if j == len(fills) {
			fills = append(fills, 0)
		}

		fills[j] += w
		positions[i] = j
	}

	return positions
}

func naiveBins(inst Instance, choose func(fills []uint64, w uint64) int) int {
	var fills []uint64

	for _, w := range inst.Weights {
		if j := choose(fills, w); j >= 0 {
			fills[j] += w
		} else {
			fills = append(fills, w)
		}
	}

	return len(fills)
}

func TestPack_ClosingMatchesNeverClosing(t *testing.T) {
	tightest := func(capacity uint64) func([]uint64, uint64) int {
		return func(fills []uint64, w uint64) int {
			best := -1
			for j, f := range fills {
				if f+w <= capacity && (best < 0 || f > fills[best]) {
					best = j
				}
			}

			return best
		}
	}

	loosest := func(capacity uint64) func([]uint64, uint64) int {
		return func(fills []uint64, w uint64) int {
			best := -1
			for j, f := range fills {
				if best < 0 || f < fills[best] {
					best = j
				}
			}

			if best >= 0 && fills[best]+w > capacity {
				return -1
			}

			return best
		}
	}

	for _, inst := range randomInstances(t, 99) {
		assert.Equal(t, naiveFirstFit(inst), mustPack(t, Algorithm{Policy: FirstFit}, inst).Positions)
		assert.Equal(t, naiveBins(inst, tightest(inst.Capacity)), mustPack(t, Algorithm{Policy: BestFit}, inst).Bins)
		assert.Equal(t, naiveBins(inst, loosest(inst.Capacity)), mustPack(t, Algorithm{Policy: MaxRest}, inst).Bins)
	}
}

func TestPack_FirstFitDecreasingBound(t *testing.T) {
	for _, inst := range randomInstances(t, 3) {
		res := mustPack(t, Algorithm{Policy: FirstFit, Strategy: Indexed, Decreasing: true}, inst)

		// First-Fit leaves at most one bin half full or less.
		assert.LessOrEqual(t, res.Bins, 2*inst.LowerBound()+1)
	}
}

func TestAlgorithms_Names(t *testing.T) {
	seen := make(map[string]bool)

	for _, a := range Algorithms() {
		name := a.Name()
		require.False(t, seen[name], "duplicate %s", name)
		seen[name] = true

		parsed, err := ParseAlgorithm(name)
		require.NoError(t, err)
		assert.Equal(t, name, parsed.Name())
	}

	assert.Len(t, seen, 27)
}

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm("Best-Fit")
	require.NoError(t, err)
	assert.Equal(t, Algorithm{Policy: BestFit, Strategy: Linear}, a)

	a, err = ParseAlgorithm("first-fit-decreasing/map/counting")
	require.NoError(t, err)
	assert.Equal(t, FirstFit, a.Policy)
	assert.Equal(t, Indexed, a.Strategy)
	assert.True(t, a.Decreasing)
	assert.Equal(t, CountingSort{}, a.Sorter)

	_, err = ParseAlgorithm("next-fit/heap")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
