package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/arknas/binstat/internal/analysis"
	"github.com/arknas/binstat/utils"
)

const histogramBuckets = 10

func (m *Model) RenderHistogram() string {
	if m.metrics.Count == 0 {
		return utils.WarningStyle.Render("No data to analyze.")
	}

	counts := analysis.Histogram(m.values, histogramBuckets, m.config.Domain)
	bucketSpan := m.config.Domain / histogramBuckets

	barStyle := lipgloss.NewStyle().Foreground(utils.InfoColor)

	var data []barchart.BarData
	for i, count := range counts {
		data = append(data, barchart.BarData{
			Label: fmt.Sprintf("%d", i*bucketSpan),
			Values: []barchart.BarValue{
				{Name: "count", Value: float64(count), Style: barStyle},
			},
		})
	}

	width := min(m.width-4, 8*histogramBuckets)
	height := max(m.height-10, 6)

	bc := barchart.New(width, height)
	bc.PushAll(data)
	bc.Draw()

	title := utils.TitleStyle.Render("Value Distribution")
	legend := utils.MutedStyle.Render(
		fmt.Sprintf("bucket span %d, %d values total", bucketSpan, m.metrics.Count))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		bc.View(),
		legend,
	)
}
