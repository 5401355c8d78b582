package binpack

// Result is the outcome of a single packing run.
type Result struct {
	// Bins is the number of bins opened, closed ones included.
	Bins int
	// Positions maps item i to the label of the bin holding it. Labels follow
	// opening order. Nil for strategies that do not keep bin identities.
	Positions []int
}

func (r Result) HasPositions() bool {
	return r.Positions != nil
}

// Fills sums item weights per bin label. It returns nil when the result has no
// positions.
func (r Result) Fills(inst Instance) []uint64 {
	if !r.HasPositions() {
		return nil
	}

	fills := make([]uint64, r.Bins)
	for i, bin := range r.Positions {
		if bin >= 0 && bin < r.Bins {
			fills[bin] += inst.Weights[i]
		}
	}

	return fills
}
