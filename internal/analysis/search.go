package analysis

import "cmp"

// BinarySearch reports whether key is present in values. The caller must
// pass a slice sorted in ascending order; the result is unspecified
// otherwise.
func BinarySearch[T cmp.Ordered](values []T, key T) bool {
	return searchWindow(values, key, 0, len(values)-1)
}

func searchWindow[T cmp.Ordered](values []T, key T, start, end int) bool {
	if start > end {
		return false
	}

	// Midpoint written to stay in range for large slices
	mid := start + (end-start)/2

	switch {
	case values[mid] == key:
		return true
	case values[mid] > key:
		return searchWindow(values, key, start, mid-1)
	default:
		return searchWindow(values, key, mid+1, end)
	}
}
