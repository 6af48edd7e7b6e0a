package barrage

// Choice is one weighted outcome for Select.
type Choice[T any] struct {
	Weight float64
	Value  T
}

// Select picks one value with probability Weight/sum(Weight). Entries whose
// weight is zero, negative or NaN can never be chosen. Exactly one Float64
// draw is consumed.
//
// Select panics when no entry has a positive weight; callers build their
// choice lists so that this cannot happen.
func Select[T any](src Source, choices ...Choice[T]) T {
	total := 0.0
	last := -1
	for i, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
			last = i
		}
	}
	if last < 0 {
		panic("barrage: Select needs at least one positive weight")
	}

	r := src.Float64() * total
	for _, c := range choices {
		if !(c.Weight > 0) {
			continue
		}
		if r < c.Weight {
			return c.Value
		}
		r -= c.Weight
	}
	// Rounding can leave r just past the final bucket.
	return choices[last].Value
}

// weightIf returns w when cond holds and 0 otherwise.
func weightIf(cond bool, w float64) float64 {
	if cond {
		return w
	}
	return 0
}
