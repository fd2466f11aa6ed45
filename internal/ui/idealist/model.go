// Package idealist renders the home view: the headline and the idea
// cards in a scrollable viewport.
package idealist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nhle/kidpreneur-hub/internal/imagedata"
	"github.com/nhle/kidpreneur-hub/internal/keys"
	"github.com/nhle/kidpreneur-hub/internal/model"
	"github.com/nhle/kidpreneur-hub/internal/state"
	"github.com/nhle/kidpreneur-hub/internal/theme"
)

const (
	// EmptyText is shown when there are no ideas.
	EmptyText = "No ideas yet. Be the first to submit!"

	headline = "🌈 Kidpreneur Hub"
	subtitle = "Share fun startup ideas and inspire others!"

	maxCardWidth = 80
)

// Model is the home view component.
type Model struct {
	viewport viewport.Model
	keys     *keys.KeyMap
	ideas    []model.Idea
	order    model.SortOrder
	width    int
	height   int
}

// New creates the home view.
func New(k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, max(0, height-headerHeight()))
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		keys:     k,
		order:    model.SortNewest,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetIdeas replaces the displayed collection. ideas is the stored order;
// the view sorts a copy. The viewport keeps its offset unless the content
// got shorter than it.
func (m *Model) SetIdeas(ideas []model.Idea, order model.SortOrder) {
	m.ideas = ideas
	m.order = order
	m.viewport.SetContent(m.renderCards())
}

// Ideas returns the ideas in display order.
func (m Model) Ideas() []model.Idea {
	return state.SortIdeas(m.ideas, m.order)
}

// Update handles scrolling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the headline followed by the cards.
func (m Model) View() string {
	center := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)
	header := lipgloss.JoinVertical(lipgloss.Left,
		center.Render(theme.HeadlineStyle.Render(headline)),
		center.Render(subtitle),
		"",
	)

	if len(m.ideas) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			center.Render(theme.DimmedStyle.Render(EmptyText)),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(0, height-headerHeight())
	m.viewport.SetContent(m.renderCards())
}

func headerHeight() int {
	return 3
}

func (m Model) renderCards() string {
	width := min(m.width, maxCardWidth)
	sorted := state.SortIdeas(m.ideas, m.order)

	cards := make([]string, 0, len(sorted))
	for _, idea := range sorted {
		cards = append(cards, RenderCard(idea, width))
	}

	pad := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)
	return pad.Render(strings.Join(cards, "\n"))
}

// RenderCard renders one idea as a card of the given total width.
func RenderCard(idea model.Idea, width int) string {
	inner := max(10, width-theme.CardStyle.GetHorizontalFrameSize())
	wrap := lipgloss.NewStyle().Width(inner)

	lines := []string{theme.CardTitleStyle.Render(idea.Title)}
	if idea.Name != "" {
		lines = append(lines, wrap.Render("👦 "+theme.LabelStyle.Render("By:")+" "+idea.Name))
	}
	if idea.Category != model.CategoryNone {
		lines = append(lines, wrap.Render("📌 "+theme.LabelStyle.Render("Category:")+" "+string(idea.Category)))
	}
	lines = append(lines,
		"",
		wrap.Render(theme.LabelStyle.Render("Problem:")+" "+idea.Problem),
		wrap.Render(theme.LabelStyle.Render("Solution:")+" "+idea.Solution),
	)
	if idea.HasImage() {
		lines = append(lines, "", theme.DimmedStyle.Render(imageLine(idea.Image)))
	}

	return theme.CardStyle.Width(width - theme.CardStyle.GetHorizontalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

func imageLine(dataURL string) string {
	info, err := imagedata.Describe(dataURL)
	if err != nil {
		return "🖼 image attached"
	}
	return fmt.Sprintf("🖼 %s, %s", info.MIME, humanize.Bytes(uint64(info.Size)))
}
