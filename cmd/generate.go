package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arknas/binstat/internal/dataset"
)

var (
	generateCount int
	generateMax   int
	generateSeed  int64
)

var generateCmd = &cobra.Command{
	Use:   "generate [dataset-file]",
	Short: "Generate a synthetic binary dataset file",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetInt("count") < 0 {
			return fmt.Errorf("invalid count: %d", viper.GetInt("count"))
		}
		if viper.GetInt("max") <= 0 {
			return fmt.Errorf("invalid value range: %d", viper.GetInt("max"))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		count := viper.GetInt("count")
		max := viper.GetInt("max")

		rng := rand.New(rand.NewSource(resolveSeed(viper.GetInt64("seed"))))
		sample := dataset.Generate(rng, count, max)

		if err := dataset.WriteFile(args[0], sample); err != nil {
			return err
		}

		fmt.Printf("Wrote %d values in [0, %d) to %s\n", count, max, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&generateCount, "count", "n", dataset.DefaultCount, "Number of values to generate")
	generateCmd.Flags().IntVarP(&generateMax, "max", "m", dataset.DefaultDomain, "Exclusive upper bound for values")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed (0 = time-based)")

	viper.BindPFlag("count", generateCmd.Flags().Lookup("count"))
	viper.BindPFlag("max", generateCmd.Flags().Lookup("max"))
	viper.BindPFlag("seed", generateCmd.Flags().Lookup("seed"))
}

// resolveSeed maps the 0 sentinel to a time-based seed.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
