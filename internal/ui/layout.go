package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kidpreneur-hub/internal/model"
	"github.com/nhle/kidpreneur-hub/internal/theme"
)

// Sidebar widths in columns.
const (
	SidebarExpandedWidth  = 22
	SidebarCollapsedWidth = 6
)

// Layout manages the terminal layout dimensions: a one-line header, a
// sidebar on the left, the content pane and a one-line status bar.
type Layout struct {
	Width            int
	Height           int
	HeaderHeight     int
	StatusBarHeight  int
	SidebarCollapsed bool
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// WithSidebarCollapsed returns a copy with the sidebar state set.
func (l Layout) WithSidebarCollapsed(collapsed bool) Layout {
	l.SidebarCollapsed = collapsed
	return l
}

// SidebarWidth returns the current sidebar width.
func (l Layout) SidebarWidth() int {
	if l.SidebarCollapsed {
		return SidebarCollapsedWidth
	}
	return SidebarExpandedWidth
}

// ContentWidth returns the width left for the content pane.
func (l Layout) ContentWidth() int {
	return max(0, l.Width-l.SidebarWidth())
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return max(0, l.Height-l.HeaderHeight-l.StatusBarHeight)
}

// InnerWidth and InnerHeight are the content dimensions minus the content
// style's padding. Views size themselves to these.
func (l Layout) InnerWidth() int {
	return max(0, l.ContentWidth()-theme.ContentStyle.GetHorizontalFrameSize())
}

// InnerHeight returns the usable content height.
func (l Layout) InnerHeight() int {
	return max(0, l.ContentHeight()-theme.ContentStyle.GetVerticalFrameSize())
}

// RenderHeader renders the top menu: the app title on the left and one
// tab per view on the right, the active one highlighted.
func (l Layout) RenderHeader(title string, active model.View) string {
	titleRendered := theme.HeaderStyle.Render(title)

	var tabs []string
	for _, v := range model.Views() {
		label := strings.ToUpper(v.String())
		if v == active {
			tabs = append(tabs, theme.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, theme.TabStyle.Render(label))
		}
		tabs = append(tabs, theme.HeaderStyle.Render(""))
	}
	tabsRendered := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(tabsRendered)
	if gap < 0 {
		gap = 0
	}

	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.HeaderStyle.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		tabsRendered,
	)
}

// RenderSidebar renders the side navigation. A collapsed sidebar shows only
// the star glyph per view.
func (l Layout) RenderSidebar(active model.View) string {
	width := l.SidebarWidth()
	inner := max(0, width-theme.SidebarStyle.GetHorizontalFrameSize())

	toggle := "◀"
	if l.SidebarCollapsed {
		toggle = "▶"
	}
	lines := []string{theme.SidebarItemStyle.Render(toggle), ""}

	for _, v := range model.Views() {
		label := "⭐"
		if !l.SidebarCollapsed {
			label = "⭐ " + strings.ToUpper(v.String())
		}

		style := theme.SidebarItemStyle
		if v == active {
			style = theme.SidebarActiveStyle
		}
		lines = append(lines, style.Width(inner).Render(label), "")
	}

	return theme.SidebarStyle.
		Width(width).
		Height(l.ContentHeight()).
		Render(strings.Join(lines, "\n"))
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.StatusBarStyle.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderContent fills the content pane with the view's output.
func (l Layout) RenderContent(content string) string {
	return theme.ContentStyle.
		Width(l.ContentWidth()).
		Height(l.ContentHeight()).
		MaxHeight(l.ContentHeight()).
		Render(content)
}

// RenderWithFrame composes a full terminal view: header on top, sidebar
// and content side by side, status bar at the bottom.
func (l Layout) RenderWithFrame(
	header string,
	sidebar string,
	content string,
	statusBar string,
) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		statusBar,
	)
}
