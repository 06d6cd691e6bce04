package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arknas/binstat/utils"
)

func (m *Model) RenderDashboard() string {
	if m.metrics.Count == 0 {
		return utils.WarningStyle.Render("No data to analyze.")
	}

	leftWidth := m.width/2 - 2
	rightWidth := m.width - leftWidth - 6

	left := m.renderStatisticsPanel()
	right := m.renderQualityPanel(rightWidth)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		"      ", // spacing
		right,
	)
}

func (m *Model) renderStatisticsPanel() string {
	title := utils.TitleStyle.Render("Descriptive Statistics")

	rows := []string{
		fmt.Sprintf("%-12s %d", "Minimum", m.metrics.Min),
		fmt.Sprintf("%-12s %d", "Maximum", m.metrics.Max),
		fmt.Sprintf("%-12s %.3f", "Mean", m.metrics.Mean),
		fmt.Sprintf("%-12s %g", "Median", m.metrics.Median),
		fmt.Sprintf("%-12s %d (×%d)", "Mode", m.metrics.Mode, m.metrics.ModeCount),
		fmt.Sprintf("%-12s %.3f", "Std Dev", m.metrics.StdDev),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		strings.Join(rows, "\n"),
	)
}

func (m *Model) renderQualityPanel(width int) string {
	title := utils.TitleStyle.Render("Data Quality")

	barWidth := width - 20
	var lines []string

	// Domain coverage
	coverage := m.metrics.Coverage()
	coverageColor := utils.GoodColor
	if coverage < 0.3 {
		coverageColor = utils.CriticalColor
	} else if coverage < 0.6 {
		coverageColor = utils.WarningColor
	}
	coverageBar := utils.CreateProgressBar(coverage, barWidth, coverageColor)
	lines = append(lines, fmt.Sprintf("Coverage %s %.0f%%", coverageBar, coverage*100))

	// Duplicate share of the sample
	dupRatio := float64(m.metrics.DuplicateCount) / float64(m.metrics.Count)
	dupBar := utils.CreateProgressBar(dupRatio, barWidth, utils.InfoColor)
	lines = append(lines, fmt.Sprintf("Dups     %s %.0f%%", dupBar, dupRatio*100))

	// Probe hit rate
	hitRate := m.metrics.HitRate()
	hitBar := utils.CreateProgressBar(hitRate, barWidth, utils.GoodColor)
	lines = append(lines, fmt.Sprintf("Hits     %s %.0f%%", hitBar, hitRate*100))

	lines = append(lines, "")
	lines = append(lines, utils.MutedStyle.Render(
		fmt.Sprintf("missing %d  duplicated %d  found %d/%d",
			m.metrics.MissingCount, m.metrics.DuplicateCount,
			m.metrics.FoundCount, m.metrics.Probes)))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		strings.Join(lines, "\n"),
	)
}
