package analysis

import (
	"fmt"
	"strings"
)

// EmptyReport is returned when there is nothing to analyze.
const EmptyReport = "No data to analyze."

// StatisticsAnalyzer reports min, max, mean, median and mode. Its private
// copy is sorted once at construction; Analyze is a pure read afterwards.
type StatisticsAnalyzer struct {
	values []int32
}

func NewStatisticsAnalyzer(values []int32) *StatisticsAnalyzer {
	a := &StatisticsAnalyzer{values: cloneValues(values)}
	SelectionSort(a.values)
	return a
}

func (a *StatisticsAnalyzer) Analyze() string {
	if len(a.values) == 0 {
		return EmptyReport
	}

	mean, median := a.meanMedian()
	mode, modeCount := a.mode()

	var b strings.Builder
	fmt.Fprintf(&b, "The minimum value is %d\n", a.values[0])
	fmt.Fprintf(&b, "The maximum value is %d\n", a.values[len(a.values)-1])
	fmt.Fprintf(&b, "The mean value is %g\n", mean)
	fmt.Fprintf(&b, "The median value is %g\n", median)
	fmt.Fprintf(&b, "The mode value is %d which occurred %d times", mode, modeCount)

	return b.String()
}

func (a *StatisticsAnalyzer) meanMedian() (mean, median float64) {
	n := len(a.values)

	sum := 0.0
	for _, v := range a.values {
		sum += float64(v)
	}
	mean = sum / float64(n)

	if n%2 == 0 {
		median = float64(a.values[n/2-1]+a.values[n/2]) / 2.0
	} else {
		median = float64(a.values[n/2])
	}

	return mean, median
}

// mode returns the most frequent value. Ties are broken toward the lowest
// value; the original behavior depended on map iteration order, which is
// useless to callers, so the tie-break is fixed here on purpose.
func (a *StatisticsAnalyzer) mode() (mode int32, count int) {
	mode, count = a.values[0], 0
	for v, c := range frequencies(a.values) {
		if c > count || (c == count && v < mode) {
			mode, count = v, c
		}
	}
	return mode, count
}
