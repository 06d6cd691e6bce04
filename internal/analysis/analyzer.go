// Package analysis implements the dataset analysis framework: a common
// data-owning Analyzer abstraction with four interchangeable strategies
// (statistics, duplicates, missing values, randomized search), built on
// an in-place selection sort and a binary search.
package analysis

import "slices"

// Analyzer produces a human-readable report from a privately owned copy
// of an integer sample. Constructors clone the input, so an Analyzer
// never aliases the caller's slice or another Analyzer's data, and never
// mutates the sample it was built from. New analysis kinds are added by
// implementing this interface, not by modifying existing variants.
type Analyzer interface {
	Analyze() string
}

// Config carries the tunable analysis parameters. Domain bounds the
// missing-value scan and the random probe draw; it is deliberately
// decoupled from whatever range the sample was generated with.
type Config struct {
	Domain int // scan and probe values in [0, Domain)
	Probes int // random lookups per search run
}

// DefaultConfig matches the original dataset layout.
func DefaultConfig() Config {
	return Config{Domain: 1000, Probes: 100}
}

func cloneValues(values []int32) []int32 {
	return slices.Clone(values)
}

func frequencies(values []int32) map[int32]int {
	freq := make(map[int32]int, len(values))
	for _, v := range values {
		freq[v]++
	}
	return freq
}
