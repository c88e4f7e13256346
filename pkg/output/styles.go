package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#FFC107", // Amber
		Dark:  "#FFD54F",
	}

	InfoColor = lipgloss.AdaptiveColor{
		Light: "#17A2B8", // Cyan
		Dark:  "#4DD0E1",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529", // Almost black
		Dark:  "#F8F9FA", // Almost white
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}

	BorderColor = lipgloss.AdaptiveColor{
		Light: "#DEE2E6", // Light gray
		Dark:  "#3B3C4F",
	}
)

// Markers prefix every status line
const (
	SuccessMarker = "✅"
	FailureMarker = "❌"
	WarningMarker = "⚠️ "
	DryRunMarker  = "🔍"
)

// styles is the set of styles bound to one lipgloss renderer
type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	dryRun  lipgloss.Style
	info    lipgloss.Style
	muted   lipgloss.Style
	path    lipgloss.Style
	banner  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Foreground(HeadingColor).
			Bold(true),
		section: r.NewStyle().
			Foreground(PrimaryColor).
			Bold(true),
		success: r.NewStyle().
			Foreground(SuccessColor),
		failure: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
		warning: r.NewStyle().
			Foreground(WarningColor),
		dryRun: r.NewStyle().
			Foreground(InfoColor).
			Italic(true),
		info: r.NewStyle(),
		muted: r.NewStyle().
			Foreground(MutedColor),
		path: r.NewStyle().
			Foreground(PrimaryColor).
			Italic(true),
		banner: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(BorderColor).
			Align(lipgloss.Center).
			Width(58).
			Padding(0, 1),
	}
}
