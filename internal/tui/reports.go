package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arknas/binstat/utils"
)

func (m *Model) RenderReports() string {
	boxWidth := min(m.width-4, 72)
	boxStyle := utils.BoxStyle.Width(boxWidth)

	var boxes []string
	for _, report := range m.reports {
		box := lipgloss.JoinVertical(lipgloss.Left,
			utils.TitleStyle.Render(report.Title),
			utils.TextStyle.Render(report.Body),
		)
		boxes = append(boxes, boxStyle.Render(box))
	}

	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}
