package binpack

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrUnsupported      = errors.New("strategy not supported by policy")
)

// Policy is the candidate-bin rule of a heuristic.
type Policy int

const (
	NextFit Policy = iota
	FirstFit
	BestFit
	MaxRest
)

var policyNames = [...]string{
	NextFit:  "next-fit",
	FirstFit: "first-fit",
	BestFit:  "best-fit",
	MaxRest:  "max-rest",
}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("policy(%d)", int(p))
	}

	return policyNames[p]
}

// Strategy is the data structure a policy searches its open bins with.
type Strategy int

const (
	Linear Strategy = iota
	Indexed
	Heap
	Tree
	Queue
)

var strategyNames = [...]string{
	Linear:  "linear",
	Indexed: "map",
	Heap:    "heap",
	Tree:    "tree",
	Queue:   "queue",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}

	return strategyNames[s]
}

type packFunc func(Instance) Result

type variant struct {
	strategy Strategy
	pack     packFunc
}

// variants lists the supported strategies per policy, linear first.
var variants = [...][]variant{
	NextFit: {
		{Linear, nextFitLinear},
	},
	FirstFit: {
		{Linear, firstFitLinear},
		{Indexed, firstFitIndexed},
	},
	BestFit: {
		{Linear, bestFitLinear},
		{Heap, bestFitHeap},
		{Tree, bestFitTree},
	},
	MaxRest: {
		{Linear, maxRestLinear},
		{Heap, maxRestHeap},
		{Queue, maxRestQueue},
	},
}

func lookup(p Policy, s Strategy) (packFunc, bool) {
	if p < 0 || int(p) >= len(variants) {
		return nil, false
	}

	for _, v := range variants[p] {
		if v.strategy == s {
			return v.pack, true
		}
	}

	return nil, false
}

// Algorithm is a runnable heuristic: a policy, the strategy used to search
// open bins and, for the decreasing variants, the sort applied beforehand.
type Algorithm struct {
	Policy     Policy
	Strategy   Strategy
	Decreasing bool
	// Sorter orders a private copy of the weights for decreasing variants.
	// Nil means ComparisonSort.
	Sorter Sorter
}

func (a Algorithm) Name() string {
	var b strings.Builder

	b.WriteString(a.Policy.String())
	if a.Decreasing {
		b.WriteString("-decreasing")
	}

	b.WriteString("/")
	b.WriteString(a.Strategy.String())

	if _, ok := a.Sorter.(CountingSort); ok && a.Decreasing {
		b.WriteString("/counting")
	}

	return b.String()
}

func (a Algorithm) String() string {
	return a.Name()
}

// Pack runs the algorithm on inst. Positions, when produced, always refer to
// the items in inst's order, also for decreasing variants. A sort failure
// aborts the run; the items are never packed unsorted instead.
func (a Algorithm) Pack(inst Instance) (Result, error) {
	pack, ok := lookup(a.Policy, a.Strategy)
	if !ok {
		return Result{}, fmt.Errorf("%s/%s: %w", a.Policy, a.Strategy, ErrUnsupported)
	}

	if !a.Decreasing {
		return pack(inst), nil
	}

	sorter := a.Sorter
	if sorter == nil {
		sorter = ComparisonSort{}
	}

	sorted, err := SortedCopy(inst, sorter)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", a.Name(), err)
	}

	res := pack(sorted)
	if res.HasPositions() {
		res.Positions = restoreOrder(inst.Weights, sorted.Weights, res.Positions)
	}

	return res, nil
}

// restoreOrder maps positions computed over sorted back to the items of
// original. Items of equal weight are interchangeable, so each sorted slot is
// matched with the next unused original index of that weight.
func restoreOrder(original, sorted []uint64, positions []int) []int {
	indices := make(map[uint64][]int)
	for i, w := range original {
		indices[w] = append(indices[w], i)
	}

	restored := make([]int, len(original))
	for k, w := range sorted {
		queue := indices[w]
		restored[queue[0]] = positions[k]
		indices[w] = queue[1:]
	}

	return restored
}

// Algorithms returns every supported algorithm: per policy the online
// variants, then the decreasing ones with a comparison sort, then the
// decreasing ones with a counting sort.
func Algorithms() []Algorithm {
	var algorithms []Algorithm

	for p := range variants {
		for _, v := range variants[p] {
			algorithms = append(algorithms, Algorithm{Policy: Policy(p), Strategy: v.strategy})
		}

		for _, sorter := range []Sorter{ComparisonSort{}, CountingSort{}} {
			for _, v := range variants[p] {
				algorithms = append(algorithms, Algorithm{
					Policy:     Policy(p),
					Strategy:   v.strategy,
					Decreasing: true,
					Sorter:     sorter,
				})
			}
		}
	}

	return algorithms
}

// ParseAlgorithm resolves a name produced by Algorithm.Name. A name without a
// strategy selects the linear one.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.Contains(name, "/") {
		name += "/" + Linear.String()
	}

	for _, a := range Algorithms() {
		if a.Name() == name {
			return a, nil
		}
	}

	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
