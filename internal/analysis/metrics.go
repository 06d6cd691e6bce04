package analysis

import (
	"math/rand"

	"github.com/arknas/binstat/utils"
)

// Metrics is the structured counterpart to the report strings, consumed
// by the CLI formatter and the TUI so neither has to re-parse text.
type Metrics struct {
	Count int

	Min       int32
	Max       int32
	Mean      float64
	Median    float64
	Mode      int32
	ModeCount int
	StdDev    float64

	DuplicateCount int
	UniqueCount    int
	MissingCount   int

	Probes     int
	FoundCount int

	Domain int
}

// CalculateMetrics runs every analysis over the sample and collects the
// numeric results. The same analyzer instances back the report strings,
// so the two views can never disagree.
func CalculateMetrics(values []int32, cfg Config, rng *rand.Rand) *Metrics {
	metrics := &Metrics{
		Count:  len(values),
		Probes: cfg.Probes,
		Domain: cfg.Domain,
	}

	dup := NewDuplicateAnalyzer(values)
	missing := NewMissingAnalyzer(values, cfg.Domain)
	search := NewSearchAnalyzer(values, rng, cfg.Probes, cfg.Domain)

	metrics.DuplicateCount = dup.Count()
	metrics.UniqueCount = len(values) - metrics.DuplicateCount
	metrics.MissingCount = missing.Count()
	metrics.FoundCount = search.Run()

	if len(values) == 0 {
		return metrics
	}

	stats := NewStatisticsAnalyzer(values)
	metrics.Min = stats.values[0]
	metrics.Max = stats.values[len(stats.values)-1]
	metrics.Mean, metrics.Median = stats.meanMedian()
	metrics.Mode, metrics.ModeCount = stats.mode()
	metrics.StdDev = utils.StdDev(values, metrics.Mean)

	return metrics
}

// Coverage is the fraction of the domain actually present in the sample.
func (m *Metrics) Coverage() float64 {
	if m.Domain == 0 {
		return 0
	}
	return float64(m.Domain-m.MissingCount) / float64(m.Domain)
}

// HitRate is the fraction of random probes found in the sample.
func (m *Metrics) HitRate() float64 {
	if m.Probes == 0 {
		return 0
	}
	return float64(m.FoundCount) / float64(m.Probes)
}

// Histogram buckets the sample over [0, domain) for chart rendering.
// Values outside the domain land in the nearest edge bucket.
func Histogram(values []int32, buckets, domain int) []int {
	if buckets <= 0 || domain <= 0 {
		return nil
	}

	counts := make([]int, buckets)
	for _, v := range values {
		idx := int(v) * buckets / domain
		if idx < 0 {
			idx = 0
		}
		if idx >= buckets {
			idx = buckets - 1
		}
		counts[idx]++
	}
	return counts
}
