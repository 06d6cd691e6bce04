package analysis

import "fmt"

// DuplicateAnalyzer counts excess occurrences: a value appearing k>1
// times contributes k-1. No sort is needed.
type DuplicateAnalyzer struct {
	values []int32
}

func NewDuplicateAnalyzer(values []int32) *DuplicateAnalyzer {
	return &DuplicateAnalyzer{values: cloneValues(values)}
}

func (a *DuplicateAnalyzer) Analyze() string {
	return fmt.Sprintf("There were %d duplicated values", a.Count())
}

func (a *DuplicateAnalyzer) Count() int {
	total := 0
	for _, c := range frequencies(a.values) {
		if c > 1 {
			total += c - 1
		}
	}
	return total
}
