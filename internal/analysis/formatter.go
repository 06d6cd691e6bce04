package analysis

import (
	"fmt"
	"math/rand"
	"strings"
)

// PrintReport runs the full analysis family over the sample and prints a
// formatted report to stdout.
func PrintReport(values []int32, cfg Config, rng *rand.Rand, outputFormat string) {
	metrics := CalculateMetrics(values, cfg, rng)

	switch outputFormat {
	case "cli":
		printSummary(values, cfg, metrics)
	case "cli-more":
		printSummary(values, cfg, metrics)
		printDetailed(metrics)
	default:
		fmt.Printf("Unknown output format '%s', using summary format\n\n", outputFormat)
		printSummary(values, cfg, metrics)
	}
}

func printSummary(values []int32, cfg Config, metrics *Metrics) {
	// Header
	fmt.Printf("🔍 Dataset Analysis\n")
	fmt.Printf("Values: %d  |  Domain: [0, %d)  |  Probes: %d\n",
		metrics.Count, cfg.Domain, cfg.Probes)
	fmt.Println(strings.Repeat("═", 65))

	// Descriptive statistics
	fmt.Println("\n📊 DESCRIPTIVE STATISTICS")
	fmt.Println(strings.Repeat("─", 35))
	fmt.Println(NewStatisticsAnalyzer(values).Analyze())

	if metrics.Count == 0 {
		return
	}

	// Data quality
	fmt.Println("\n🧬 DATA QUALITY")
	fmt.Println(strings.Repeat("─", 35))

	coverageIcon, coverageStatus := getCoverageStatusWithIcon(metrics.Coverage())
	fmt.Printf("%s Domain Coverage: %.1f%% (%s)\n",
		coverageIcon, metrics.Coverage()*100, coverageStatus)
	fmt.Printf("   There were %d missing values\n", metrics.MissingCount)

	dupRatio := float64(metrics.DuplicateCount) / float64(metrics.Count)
	fmt.Printf("   There were %d duplicated values (%.1f%% of sample)\n",
		metrics.DuplicateCount, dupRatio*100)

	// Search verification
	fmt.Println("\n🎯 RANDOM SEARCH VERIFICATION")
	fmt.Println(strings.Repeat("─", 35))

	hitIcon := "✅"
	if metrics.HitRate() < metrics.Coverage()/2 {
		hitIcon = "⚠️"
	}
	fmt.Printf("%s There were %d random values found (%d probes, %.1f%% hit rate)\n",
		hitIcon, metrics.FoundCount, metrics.Probes, metrics.HitRate()*100)
}

func printDetailed(metrics *Metrics) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════════")
	fmt.Println("🔍                  COMPREHENSIVE DATASET DETAIL                    ")
	fmt.Println("═══════════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("📊 STATISTICAL DETAIL")
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("Sample Size:        %d\n", metrics.Count)
	fmt.Printf("Value Range:        %d to %d (span %d)\n",
		metrics.Min, metrics.Max, metrics.Max-metrics.Min)
	fmt.Printf("Mean / Median:      %.3f / %.3f\n", metrics.Mean, metrics.Median)
	fmt.Printf("Mode:               %d (%d occurrences)\n", metrics.Mode, metrics.ModeCount)
	fmt.Printf("Std Deviation:      %.3f\n", metrics.StdDev)
	fmt.Println()

	fmt.Println("🧬 QUALITY DETAIL")
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("Distinct Values:    %d\n", metrics.UniqueCount)
	fmt.Printf("Duplicated Values:  %d\n", metrics.DuplicateCount)
	fmt.Printf("Missing Values:     %d of %d domain values", metrics.MissingCount, metrics.Domain)
	if metrics.MissingCount == 0 {
		fmt.Printf(" [Full domain coverage]")
	}
	fmt.Println()
	fmt.Println()

	fmt.Println("🎯 SEARCH VERIFICATION DETAIL")
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("Probes Drawn:       %d\n", metrics.Probes)
	fmt.Printf("Probes Found:       %d (%.1f%%)\n", metrics.FoundCount, metrics.HitRate()*100)
	fmt.Printf("Expected Hit Rate:  %.1f%% (equals domain coverage)\n", metrics.Coverage()*100)
}

func getCoverageStatusWithIcon(coverage float64) (string, string) {
	if coverage >= 0.95 {
		return "✅", "Near-complete"
	} else if coverage >= 0.60 {
		return "✅", "Expected for uniform draws"
	} else if coverage >= 0.30 {
		return "⚠️", "Sparse"
	}
	return "🔴", "Very sparse"
}
