package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs. Which side is used follows the dark mode
// preference, applied with SetDark, not the terminal background.
var (
	ColorBackground = lipgloss.AdaptiveColor{Light: "#F9E2E7", Dark: "#222222"}
	ColorCard       = lipgloss.AdaptiveColor{Light: "#FFD966", Dark: "#333333"}
	ColorButton     = lipgloss.AdaptiveColor{Light: "#6ECB63", Dark: "#FF6F61"}
	ColorSidebar    = lipgloss.AdaptiveColor{Light: "#8ECAE6", Dark: "#444444"}
	ColorText       = lipgloss.AdaptiveColor{Light: "#222222", Dark: "#FFFFFF"}
	ColorMuted      = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#AAAAAA"}
	ColorBorder     = lipgloss.AdaptiveColor{Light: "#E2B4BD", Dark: "#555555"}

	// Fixed accents shared by both palettes.
	ColorTopBar    = lipgloss.Color("#FFB703")
	ColorActive    = lipgloss.Color("#D62828")
	ColorHeadline  = lipgloss.Color("#FF6F61")
	ColorCardTitle = lipgloss.Color("#D62828")
	ColorWhite     = lipgloss.Color("#FFFFFF")
)

// SetDark applies the dark mode preference to every adaptive color.
func SetDark(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}

// IsDark reports the currently applied mode.
func IsDark() bool {
	return lipgloss.HasDarkBackground()
}

// HeaderStyle is used for the top menu bar and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#222222")).
	Background(ColorTopBar).
	Padding(0, 1)

// ActiveTabStyle highlights the selected view in the top menu.
var ActiveTabStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorActive).
	Padding(0, 1)

// TabStyle is an unselected view in the top menu.
var TabStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#333333")).
	Background(ColorWhite).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorText).
	Background(ColorSidebar).
	Padding(0, 1)

// SidebarStyle is the side navigation panel.
var SidebarStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#222222")).
	Background(ColorSidebar).
	Padding(1, 1)

// SidebarActiveStyle highlights the active entry in the sidebar.
var SidebarActiveStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#222222")).
	Background(ColorTopBar)

// SidebarItemStyle is an inactive sidebar entry.
var SidebarItemStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#222222")).
	Background(ColorSidebar)

// ContentStyle fills the main content area.
var ContentStyle = lipgloss.NewStyle().
	Foreground(ColorText).
	Background(ColorBackground).
	Padding(1, 2)

// HeadlineStyle is the big title on the home view.
var HeadlineStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorHeadline)

// CardStyle wraps a single idea card.
var CardStyle = lipgloss.NewStyle().
	Foreground(ColorText).
	Background(ColorCard).
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// CardTitleStyle is an idea title.
var CardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorCardTitle)

// LabelStyle is a bold field label such as "Problem:".
var LabelStyle = lipgloss.NewStyle().Bold(true)

// PanelStyle wraps forms and settings.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ButtonStyle renders an action label.
var ButtonStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorButton).
	Padding(0, 2)

// DangerStyle renders destructive actions.
var DangerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorActive).
	Padding(0, 2)

// AlertStyle is the blocking alert box.
var AlertStyle = lipgloss.NewStyle().
	Padding(1, 3).
	Border(lipgloss.DoubleBorder()).
	BorderForeground(ColorActive).
	Foreground(ColorText)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Italic(true)

// DimmedStyle is used for placeholder text.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorMuted)

// StatusStyle returns the style for a transient status message.
func StatusStyle(isErr bool) lipgloss.Style {
	if isErr {
		return lipgloss.NewStyle().Bold(true).Foreground(ColorActive)
	}
	return lipgloss.NewStyle().Italic(true).Foreground(ColorText)
}
