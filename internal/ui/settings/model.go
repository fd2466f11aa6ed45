package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kidpreneur-hub/internal/keys"
	"github.com/nhle/kidpreneur-hub/internal/model"
	"github.com/nhle/kidpreneur-hub/internal/theme"
)

// ResetQuestion is the confirmation asked before deleting every idea.
const ResetQuestion = "Are you sure you want to delete all ideas?"

// ToggleThemeMsg asks the shell to flip dark mode.
type ToggleThemeMsg struct{}

// SetSortMsg asks the shell to change the sort order.
type SetSortMsg struct {
	Order model.SortOrder
}

// ResetMsg carries the answer to the reset confirmation.
type ResetMsg struct {
	Confirmed bool
}

type settingsMode int

const (
	modeView settingsMode = iota
	modeSort
	modeConfirmReset
)

type formBindings struct {
	sort    string
	confirm bool
}

// Model is the settings view.
type Model struct {
	mode        settingsMode
	keys        *keys.KeyMap
	prefs       model.Preferences
	ideaCount   int
	sortForm    *huh.Form
	confirmForm *huh.Form
	fb          *formBindings
	width       int
	height      int
}

// New creates the settings view.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		mode:   modeView,
		keys:   k,
		prefs:  model.DefaultPreferences(),
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Set refreshes the values displayed by the view.
func (m *Model) Set(prefs model.Preferences, ideaCount int) {
	m.prefs = prefs
	m.ideaCount = ideaCount
}

// CapturesInput reports whether a dialog is open.
func (m Model) CapturesInput() bool {
	return m.mode != modeView
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch m.mode {
	case modeSort:
		return m.updateSort(msg)
	case modeConfirmReset:
		return m.updateConfirm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, m.keys.ToggleTheme):
		return m, func() tea.Msg { return ToggleThemeMsg{} }

	case key.Matches(km, m.keys.CycleSort):
		next := m.prefs.SortOrder.Toggle()
		return m, func() tea.Msg { return SetSortMsg{Order: next} }

	case km.String() == "enter":
		m.fb.sort = string(m.prefs.SortOrder)
		m.sortForm = m.buildSortForm()
		m.mode = modeSort
		return m, m.sortForm.Init()

	case key.Matches(km, m.keys.Reset):
		cmd := m.StartReset()
		return m, cmd
	}

	return m, nil
}

// StartReset opens the reset confirmation.
func (m *Model) StartReset() tea.Cmd {
	m.fb.confirm = false
	m.confirmForm = m.buildConfirmForm()
	m.mode = modeConfirmReset
	return m.confirmForm.Init()
}

func (m Model) buildSortForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("🔀 Sort Ideas").
				Options(
					huh.NewOption(model.SortNewest.Label(), string(model.SortNewest)),
					huh.NewOption(model.SortOldest.Label(), string(model.SortOldest)),
				).
				Value(&m.fb.sort),
		),
	).WithShowHelp(false).WithWidth(m.formWidth())
}

func (m Model) buildConfirmForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(ResetQuestion).
				Description(fmt.Sprintf("%d idea(s) will be removed. This cannot be undone.", m.ideaCount)).
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&m.fb.confirm),
		),
	).WithShowHelp(false).WithWidth(m.formWidth())
}

func (m Model) updateSort(msg tea.Msg) (Model, tea.Cmd) {
	if m.sortForm == nil {
		m.mode = modeView
		return m, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Back) {
		m.mode = modeView
		return m, nil
	}
	mdl, cmd := m.sortForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.sortForm = f
	}
	if m.sortForm.State == huh.StateCompleted {
		m.mode = modeView
		order := model.ParseSortOrder(m.fb.sort)
		return m, func() tea.Msg { return SetSortMsg{Order: order} }
	}
	if m.sortForm.State == huh.StateAborted {
		m.mode = modeView
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirmForm == nil {
		m.mode = modeView
		return m, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Back) {
		m.mode = modeView
		return m, func() tea.Msg { return ResetMsg{Confirmed: false} }
	}
	mdl, cmd := m.confirmForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirmForm = f
	}
	if m.confirmForm.State == huh.StateCompleted {
		m.mode = modeView
		confirmed := m.fb.confirm
		return m, func() tea.Msg { return ResetMsg{Confirmed: confirmed} }
	}
	if m.confirmForm.State == huh.StateAborted {
		m.mode = modeView
		return m, func() tea.Msg { return ResetMsg{Confirmed: false} }
	}
	return m, cmd
}

// View renders the settings panel.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorText).MarginBottom(1)

	switch m.mode {
	case modeSort:
		return theme.PanelStyle.Render(m.sortForm.View())
	case modeConfirmReset:
		return theme.PanelStyle.BorderForeground(theme.ColorActive).Render(m.confirmForm.View())
	}

	check := "[ ]"
	if m.prefs.DarkMode {
		check = "[x]"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("⚙️ Settings"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s 🌙 Dark Mode   %s\n\n", check, theme.HelpStyle.Render("t toggle"))
	fmt.Fprintf(&b, "🔀 Sort Ideas: %s   %s\n\n",
		theme.LabelStyle.Render(m.prefs.SortOrder.Label()),
		theme.HelpStyle.Render("s switch · enter choose"))
	fmt.Fprintf(&b, "%s   %s",
		theme.DangerStyle.Render("🗑 Reset All Ideas"),
		theme.HelpStyle.Render(fmt.Sprintf("R (%d stored)", m.ideaCount)))

	return theme.PanelStyle.Width(m.formWidth()).Render(b.String())
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 70 {
		w = 70
	}
	return w
}
