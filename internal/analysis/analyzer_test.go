package analysis

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The concrete scenario used throughout: [5,3,5,1,2].
var scenario = []int32{5, 3, 5, 1, 2}

func TestStatisticsAnalyzer(t *testing.T) {
	report := NewStatisticsAnalyzer(scenario).Analyze()

	want := "The minimum value is 1\n" +
		"The maximum value is 5\n" +
		"The mean value is 3.2\n" +
		"The median value is 3\n" +
		"The mode value is 5 which occurred 2 times"
	assert.Equal(t, want, report)
}

func TestStatisticsAnalyzerEmpty(t *testing.T) {
	assert.Equal(t, "No data to analyze.", NewStatisticsAnalyzer(nil).Analyze())
}

func TestStatisticsAnalyzerEvenCount(t *testing.T) {
	// sorted: [1 2 3 4] -> median (2+3)/2
	report := NewStatisticsAnalyzer([]int32{4, 1, 3, 2}).Analyze()
	assert.Contains(t, report, "The median value is 2.5")
	assert.Contains(t, report, "The mean value is 2.5")
}

func TestStatisticsAnalyzerModeTieBreak(t *testing.T) {
	// 2 and 7 both occur twice; the lowest value wins.
	report := NewStatisticsAnalyzer([]int32{7, 2, 7, 2, 9}).Analyze()
	assert.Contains(t, report, "The mode value is 2 which occurred 2 times")
}

func TestStatisticsAnalyzerProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 10; i++ {
		values := make([]int32, 1+rng.Intn(300))
		for j := range values {
			values[j] = int32(rng.Intn(100))
		}

		sorted := slices.Clone(values)
		slices.Sort(sorted)

		report := NewStatisticsAnalyzer(values).Analyze()
		assert.Contains(t, report, fmt.Sprintf("The minimum value is %d", sorted[0]))
		assert.Contains(t, report, fmt.Sprintf("The maximum value is %d", sorted[len(sorted)-1]))
	}
}

func TestDuplicateAnalyzer(t *testing.T) {
	tests := []struct {
		name   string
		values []int32
		want   int
	}{
		{"empty", nil, 0},
		{"all unique", []int32{1, 2, 3}, 0},
		{"scenario", scenario, 1},
		{"triple counts twice", []int32{4, 4, 4}, 2},
		{"mixed", []int32{1, 1, 2, 2, 2, 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewDuplicateAnalyzer(tt.values)
			assert.Equal(t, tt.want, a.Count())
			assert.Equal(t, fmt.Sprintf("There were %d duplicated values", tt.want), a.Analyze())
		})
	}
}

func TestMissingAnalyzer(t *testing.T) {
	full := make([]int32, 1000)
	for i := range full {
		full[i] = int32(i)
	}

	t.Run("full domain has no gaps", func(t *testing.T) {
		assert.Equal(t, 0, NewMissingAnalyzer(full, 1000).Count())
	})

	t.Run("each removed value adds one", func(t *testing.T) {
		withoutTwo := slices.DeleteFunc(slices.Clone(full), func(v int32) bool {
			return v == 17 || v == 400
		})
		assert.Equal(t, 2, NewMissingAnalyzer(withoutTwo, 1000).Count())
	})

	t.Run("scenario misses all but four", func(t *testing.T) {
		// present: {1, 2, 3, 5}
		a := NewMissingAnalyzer(scenario, 1000)
		assert.Equal(t, 996, a.Count())
		assert.Equal(t, "There were 996 missing values", a.Analyze())
	})

	t.Run("domain is configurable", func(t *testing.T) {
		assert.Equal(t, 5, NewMissingAnalyzer(scenario, 9).Count())
	})
}

func TestSearchAnalyzer(t *testing.T) {
	full := make([]int32, 1000)
	for i := range full {
		full[i] = int32(i)
	}

	t.Run("full domain finds every probe", func(t *testing.T) {
		a := NewSearchAnalyzer(full, rand.New(rand.NewSource(1)), 100, 1000)
		assert.Equal(t, "There were 100 random values found", a.Analyze())
	})

	t.Run("empty sample finds nothing", func(t *testing.T) {
		a := NewSearchAnalyzer(nil, rand.New(rand.NewSource(1)), 100, 1000)
		assert.Equal(t, 0, a.Run())
	})

	t.Run("deterministic under a fixed seed", func(t *testing.T) {
		first := NewSearchAnalyzer(scenario, rand.New(rand.NewSource(99)), 100, 1000)
		second := NewSearchAnalyzer(scenario, rand.New(rand.NewSource(99)), 100, 1000)
		assert.Equal(t, first.Analyze(), second.Analyze())
	})
}

func TestAnalyzersDoNotMutateInput(t *testing.T) {
	input := slices.Clone(scenario)

	NewStatisticsAnalyzer(input).Analyze()
	NewDuplicateAnalyzer(input).Analyze()
	NewMissingAnalyzer(input, 1000).Analyze()
	NewSearchAnalyzer(input, rand.New(rand.NewSource(1)), 10, 1000).Analyze()

	require.Equal(t, scenario, input)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	analyzers := []Analyzer{
		NewStatisticsAnalyzer(scenario),
		NewDuplicateAnalyzer(scenario),
		NewMissingAnalyzer(scenario, 1000),
	}

	for _, a := range analyzers {
		assert.Equal(t, a.Analyze(), a.Analyze())
	}
}
