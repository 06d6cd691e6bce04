package analysis

import (
	"fmt"
	"math/rand"
)

// SearchAnalyzer draws random probe keys from [0, domain) and counts how
// many are found in the sample via binary search. The private copy is
// sorted at construction. The random source is injected so repeated runs
// are reproducible under a fixed seed; with a shared seeded source,
// successive Analyze calls draw independent probe sets.
type SearchAnalyzer struct {
	values []int32
	rng    *rand.Rand
	probes int
	domain int
}

func NewSearchAnalyzer(values []int32, rng *rand.Rand, probes, domain int) *SearchAnalyzer {
	a := &SearchAnalyzer{
		values: cloneValues(values),
		rng:    rng,
		probes: probes,
		domain: domain,
	}
	SelectionSort(a.values)
	return a
}

func (a *SearchAnalyzer) Analyze() string {
	return fmt.Sprintf("There were %d random values found", a.Run())
}

// Run performs one probe round and returns the hit count.
func (a *SearchAnalyzer) Run() int {
	found := 0
	for i := 0; i < a.probes; i++ {
		key := int32(a.rng.Intn(a.domain))
		if BinarySearch(a.values, key) {
			found++
		}
	}
	return found
}
