// Package collections implements small ordered-sequence utilities: divideOn,
// last, ordered mapping transforms, and a first-occurrence-keeping dedup,
// used by resolve's hierarchy linearisation wherever a slice needs
// partitioning, folding, or deduplicating rather than a hand-rolled loop.
package collections

// DivideOn splits items into two ordered slices: those for which pred holds,
// and those for which it does not, preserving relative order within each.
func DivideOn[T any](items []T, pred func(T) bool) (matching, rest []T) {
	for _, item := range items {
		if pred(item) {
			matching = append(matching, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matching, rest
}

// Last returns the last element of items and true, or the zero value and
// false if items is empty.
func Last[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[len(items)-1], true
}

// MapOrdered applies fn to each item in order, returning the results in the
// same order. Unlike a map-keyed transform, no deduplication or reordering
// occurs.
func MapOrdered[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Dedup removes later duplicates from items, keeping first occurrence order,
// using key to derive the comparison key for each item.
func Dedup[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]bool, len(items))
	var out []T
	for _, item := range items {
		k := key(item)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, item)
	}
	return out
}
