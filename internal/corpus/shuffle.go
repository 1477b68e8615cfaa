package corpus

// Shuffle permutes items in place with Fisher-Yates driven by rng.
// The same rng sequence over the same input always yields the same order.
func Shuffle[T any](items []T, rng Uniform) {
	for m := len(items) - 1; m > 0; m-- {
		i := int(rng.NextUniform() * float64(m+1))
		if i > m {
			i = m
		}
		items[m], items[i] = items[i], items[m]
	}
}
