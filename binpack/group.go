package binpack

type Packable interface {
	Weight() uint64
}

// Weights returns the item weights in order.
func Weights[T Packable](items []T) []uint64 {
	weights := make([]uint64, len(items))
	for i, item := range items {
		weights[i] = item.Weight()
	}

	return weights
}

// Split separates the items that fit into a bin of the given capacity from the
// remainder that never can.
func Split[T Packable](items []T, capacity uint64) (fit []T, remainder []T) {
	for i := 0; i < len(items); i++ {
		if w := items[i].Weight(); w > 0 && w <= capacity {
			fit = append(fit, items[i])
		} else {
			remainder = append(remainder, items[i])
		}
	}

	return
}

// Group collects items into their bins according to res.Positions. Items
// must be in the order the result was computed for.
func Group[T Packable](items []T, res Result) (bins [][]T) {
	if !res.HasPositions() {
		return nil
	}

	bins = make([][]T, res.Bins)

	for i := 0; i < len(items) && i < len(res.Positions); i++ {
		j := res.Positions[i]
		bins[j] = append(bins[j], items[i])
	}

	return
}
