package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arknas/binstat/internal/analysis"
	"github.com/arknas/binstat/internal/dataset"
	"github.com/arknas/binstat/internal/tui"
	"github.com/arknas/binstat/utils"
)

var (
	outputFormat string
	analyzeProbe int
	analyzeDom   int
	analyzeSeed  int64
)

// stubbed in tests
var startTUI = tui.Start

var analyzeCmd = &cobra.Command{
	Use:               "analyze [dataset-file]",
	Short:             "Analyze a binary dataset file",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension(".dat", ".bin"),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		validFormats := []string{"cli", "cli-more", "tui"}
		if !slices.Contains(validFormats, outputFormat) {
			return fmt.Errorf("invalid output format: %s. Valid options: %v", outputFormat, validFormats)
		}

		if viper.GetInt("probes") <= 0 {
			return fmt.Errorf("invalid probe count: %d", viper.GetInt("probes"))
		}
		if viper.GetInt("domain") <= 0 {
			return fmt.Errorf("invalid domain bound: %d", viper.GetInt("domain"))
		}

		if _, err := os.Stat(args[0]); os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", args[0])
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		sample, err := dataset.ReadFile(args[0])
		if err != nil {
			return err
		}

		cfg := analysis.Config{
			Domain: viper.GetInt("domain"),
			Probes: viper.GetInt("probes"),
		}
		rng := rand.New(rand.NewSource(resolveSeed(analyzeSeed)))

		if outputFormat == "tui" {
			return startTUI(sample, cfg, rng)
		}

		analysis.PrintReport(sample, cfg, rng, outputFormat)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&outputFormat, "output", "o", "cli", "Output format (cli, cli-more, tui)")
	analyzeCmd.Flags().IntVar(&analyzeProbe, "probes", 100, "Random lookups for search verification")
	analyzeCmd.Flags().IntVar(&analyzeDom, "domain", dataset.DefaultDomain, "Exclusive upper bound of the value domain")
	analyzeCmd.Flags().Int64Var(&analyzeSeed, "seed", 0, "Random seed for probes (0 = time-based)")

	viper.BindPFlag("probes", analyzeCmd.Flags().Lookup("probes"))
	viper.BindPFlag("domain", analyzeCmd.Flags().Lookup("domain"))

	// binstat analyze file.dat -o <TAB>
	analyzeCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"cli", "cli-more", "tui"}, cobra.ShellCompDirectiveNoFileComp
	})
}
