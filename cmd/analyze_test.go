package cmd

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arknas/binstat/internal/analysis"
	"github.com/arknas/binstat/internal/dataset"
)

func TestAnalyzeCmdStartsTUI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.dat")
	require.NoError(t, dataset.WriteFile(path, dataset.Sample{5, 3, 5, 1, 2}))

	originalStartTUI := startTUI
	defer func() { startTUI = originalStartTUI }()

	called := false
	startTUI = func(values []int32, cfg analysis.Config, rng *rand.Rand) error {
		called = true
		assert.Equal(t, []int32{5, 3, 5, 1, 2}, values)
		assert.Equal(t, 1000, cfg.Domain)
		assert.Equal(t, 100, cfg.Probes)
		return nil
	}

	originalFormat := outputFormat
	outputFormat = "tui"
	defer func() { outputFormat = originalFormat }()

	viper.Set("probes", 100)
	viper.Set("domain", 1000)
	defer func() {
		viper.Set("probes", nil)
		viper.Set("domain", nil)
	}()

	require.NoError(t, analyzeCmd.PreRunE(analyzeCmd, []string{path}))
	require.NoError(t, analyzeCmd.RunE(analyzeCmd, []string{path}))
	assert.True(t, called)
}

func TestAnalyzeCmdRejectsUnknownFormat(t *testing.T) {
	originalFormat := outputFormat
	outputFormat = "xml"
	defer func() { outputFormat = originalFormat }()

	err := analyzeCmd.PreRunE(analyzeCmd, []string{"whatever.dat"})
	assert.ErrorContains(t, err, "invalid output format")
}

func TestAnalyzeCmdRejectsMissingFile(t *testing.T) {
	originalFormat := outputFormat
	outputFormat = "cli"
	defer func() { outputFormat = originalFormat }()

	viper.Set("probes", 100)
	viper.Set("domain", 1000)
	defer func() {
		viper.Set("probes", nil)
		viper.Set("domain", nil)
	}()

	err := analyzeCmd.PreRunE(analyzeCmd, []string{filepath.Join(t.TempDir(), "absent.dat")})
	assert.ErrorContains(t, err, "file does not exist")
}
