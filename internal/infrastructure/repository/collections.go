package repository

// prepend returns a fresh slice with item at the head, leaving the
// previous snapshot untouched.
func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// replaceWhere returns a fresh slice with the first matching element
// replaced, or the item prepended when nothing matches.
func replaceWhere[T any](items []T, match func(*T) bool, item T) []T {
	for i := range items {
		if match(&items[i]) {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = item
			return out
		}
	}
	return prepend(items, item)
}

// removeWhere returns a fresh slice without the matching elements
func removeWhere[T any](items []T, match func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if !match(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// findWhere returns a copy of the first matching element, or nil
func findWhere[T any](items []T, match func(*T) bool) *T {
	for i := range items {
		if match(&items[i]) {
			found := items[i]
			return &found
		}
	}
	return nil
}
