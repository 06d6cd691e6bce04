package analysis

import "fmt"

// MissingAnalyzer counts integers in [0, domain) absent from the sample.
type MissingAnalyzer struct {
	values []int32
	domain int
}

func NewMissingAnalyzer(values []int32, domain int) *MissingAnalyzer {
	return &MissingAnalyzer{values: cloneValues(values), domain: domain}
}

func (a *MissingAnalyzer) Analyze() string {
	return fmt.Sprintf("There were %d missing values", a.Count())
}

func (a *MissingAnalyzer) Count() int {
	present := make(map[int32]bool, len(a.values))
	for _, v := range a.values {
		present[v] = true
	}

	missing := 0
	for i := 0; i < a.domain; i++ {
		if !present[int32(i)] {
			missing++
		}
	}
	return missing
}
