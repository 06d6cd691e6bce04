package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/arknas/binstat/internal/analysis"
)

type Model struct {
	// Data
	values  []int32
	metrics *analysis.Metrics
	reports []Report
	config  analysis.Config

	// UI state
	currentTab TabType
	width      int
	height     int

	// Key bindings
	keys KeyMap
	help help.Model
}

// Report pairs an analysis name with its rendered report text.
type Report struct {
	Title string
	Body  string
}

type TabType int

const (
	DashboardTab TabType = iota
	HistogramTab
	ReportsTab
)

func (t TabType) String() string {
	switch t {
	case DashboardTab:
		return "Dashboard"
	case HistogramTab:
		return "Histogram"
	case ReportsTab:
		return "Reports"
	default:
		return "Unknown"
	}
}

type KeyMap struct {
	Tab1  key.Binding
	Tab2  key.Binding
	Tab3  key.Binding
	Left  key.Binding
	Right key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		Tab2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "histogram"),
		),
		Tab3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "reports"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous tab"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3},
		{k.Left, k.Right, k.Help, k.Quit},
	}
}
