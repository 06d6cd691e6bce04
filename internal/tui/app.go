package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arknas/binstat/internal/analysis"
	"github.com/arknas/binstat/utils"
)

// Start runs the full analysis family over the sample and opens the
// interactive dashboard on the results.
func Start(values []int32, cfg analysis.Config, rng *rand.Rand) error {
	metrics := analysis.CalculateMetrics(values, cfg, rng)

	reports := []Report{
		{Title: "Statistics", Body: analysis.NewStatisticsAnalyzer(values).Analyze()},
		{Title: "Duplicates", Body: analysis.NewDuplicateAnalyzer(values).Analyze()},
		{Title: "Missing", Body: analysis.NewMissingAnalyzer(values, cfg.Domain).Analyze()},
		{Title: "Random Search", Body: analysis.NewSearchAnalyzer(values, rng, cfg.Probes, cfg.Domain).Analyze()},
	}

	m := initialModel(values, cfg, metrics, reports)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("unable to start TUI: %w", err)
	}

	return nil
}

func initialModel(values []int32, cfg analysis.Config, metrics *analysis.Metrics, reports []Report) *Model {
	return &Model{
		values:     values,
		metrics:    metrics,
		reports:    reports,
		config:     cfg,
		currentTab: DashboardTab,
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab1):
			m.currentTab = DashboardTab
		case key.Matches(msg, m.keys.Tab2):
			m.currentTab = HistogramTab
		case key.Matches(msg, m.keys.Tab3):
			m.currentTab = ReportsTab

		case key.Matches(msg, m.keys.Left):
			if m.currentTab > DashboardTab {
				m.currentTab--
			}
		case key.Matches(msg, m.keys.Right):
			if m.currentTab < ReportsTab {
				m.currentTab++
			}

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.currentTab {
	case DashboardTab:
		content = m.RenderDashboard()
	case HistogramTab:
		content = m.RenderHistogram()
	case ReportsTab:
		content = m.RenderReports()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		content,
		"",
		m.help.View(m.keys),
	)
}

func (m *Model) renderHeader() string {
	var tabs []string
	for tab := DashboardTab; tab <= ReportsTab; tab++ {
		label := fmt.Sprintf("%d %s", int(tab)+1, tab)
		if tab == m.currentTab {
			tabs = append(tabs, utils.TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, utils.TabInactiveStyle.Render(label))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	summary := utils.MutedStyle.Render(fmt.Sprintf("%d values  domain [0, %d)",
		m.metrics.Count, m.config.Domain))

	return lipgloss.JoinVertical(lipgloss.Left,
		tabRow,
		summary,
		strings.Repeat("─", max(m.width-1, 0)),
	)
}
