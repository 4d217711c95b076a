package console

import "github.com/charmbracelet/lipgloss"

var (
	colorInfo    = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"} // cyan
	colorSuccess = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
	colorWarn    = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#fbbf24"}
	colorError   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}

	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
)

var (
	styleInfo    = lipgloss.NewStyle().Foreground(colorInfo)
	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess)
	styleHeading = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleWarn    = lipgloss.NewStyle().Foreground(colorWarn)
	styleWarnBox = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorError)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	stylePanelTitle = lipgloss.NewStyle().Foreground(colorBorder).Bold(true)
	styleBannerHead = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
	styleBright     = lipgloss.NewStyle().Foreground(colorBright)
)
