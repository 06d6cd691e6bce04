package analysis

import "cmp"

// SelectionSort reorders values in place to non-decreasing order by
// repeatedly swapping the minimum of the unsorted suffix into the front.
// O(n²) comparisons, O(1) extra space. Empty and single-element slices
// are no-ops.
func SelectionSort[T cmp.Ordered](values []T) {
	for i := 0; i < len(values)-1; i++ {
		minIndex := i
		for j := i + 1; j < len(values); j++ {
			if values[j] < values[minIndex] {
				minIndex = j
			}
		}
		values[i], values[minIndex] = values[minIndex], values[i]
	}
}
