package admin

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kidpreneur-hub/internal/keys"
	"github.com/nhle/kidpreneur-hub/internal/model"
	"github.com/nhle/kidpreneur-hub/internal/theme"
)

// WrongCredentials is the alert text shown after a failed login.
const WrongCredentials = "Wrong username or password!"

// LoginMsg is dispatched when the login form is submitted.
type LoginMsg struct {
	Request model.AdminLoginRequest
}

// LogoutMsg asks the shell to end the admin session.
type LogoutMsg struct{}

// CancelMsg is dispatched when the user leaves the login form with esc.
type CancelMsg struct{}

type adminMode int

const (
	modeLogin adminMode = iota
	modeAlert
	modePanel
)

type formBindings struct {
	username string
	password string
}

// Model is the admin view: a login form while logged out, the admin
// panel once logged in.
type Model struct {
	mode      adminMode
	form      *huh.Form
	fb        *formBindings
	keys      *keys.KeyMap
	username  string
	ideaCount int
	width     int
	height    int
}

// New creates the admin view.
func New(k *keys.KeyMap, width, height int) Model {
	m := Model{
		mode:   modeLogin,
		fb:     &formBindings{},
		keys:   k,
		width:  width,
		height: height,
	}
	m.form = m.buildForm()
	return m
}

// Init focuses the login form.
func (m Model) Init() tea.Cmd {
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

// SetSession syncs the view with the admin session.
func (m *Model) SetSession(loggedIn bool, username string, ideaCount int) tea.Cmd {
	m.ideaCount = ideaCount
	m.username = username

	switch {
	case loggedIn:
		m.mode = modePanel
	case m.mode == modePanel:
		return m.resetForm()
	}
	return nil
}

// ShowError opens the blocking alert for rejected credentials.
func (m *Model) ShowError() {
	m.mode = modeAlert
}

// CapturesInput reports whether key presses go to the form or alert.
func (m Model) CapturesInput() bool {
	return m.mode != modePanel
}

func (m *Model) resetForm() tea.Cmd {
	m.mode = modeLogin
	m.fb.username = ""
	m.fb.password = ""
	m.form = m.buildForm()
	return m.form.Init()
}

func (m Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&m.fb.username),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.fb.password),
		),
	).WithShowHelp(false).WithWidth(m.formWidth())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch m.mode {
	case modeAlert:
		if km, ok := msg.(tea.KeyMsg); ok {
			if km.String() == "enter" || key.Matches(km, m.keys.Back) {
				cmd := m.resetForm()
				return m, cmd
			}
		}
		return m, nil

	case modePanel:
		if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Logout) {
			return m, func() tea.Msg { return LogoutMsg{} }
		}
		return m, nil
	}

	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Back) {
		m.fb.username = ""
		m.fb.password = ""
		m.form = m.buildForm()
		return m, func() tea.Msg { return CancelMsg{} }
	}

	if m.form == nil {
		cmd := m.resetForm()
		return m, cmd
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		req := model.AdminLoginRequest{Username: m.fb.username, Password: m.fb.password}
		return m, func() tea.Msg { return LoginMsg{Request: req} }
	}
	if m.form.State == huh.StateAborted {
		cmd = m.resetForm()
		return m, cmd
	}

	return m, cmd
}

// View renders the admin view.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorText).MarginBottom(1)

	switch m.mode {
	case modeAlert:
		return theme.AlertStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
			theme.StatusStyle(true).Render("⚠ "+WrongCredentials),
			"",
			theme.ButtonStyle.Render("OK"),
		))

	case modePanel:
		return theme.PanelStyle.Width(m.formWidth()).Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("🛠 Admin Panel"),
			"You can manage ideas here in the future.",
			"",
			fmt.Sprintf("Signed in as %s · %d idea(s) stored", m.username, m.ideaCount),
			"",
			theme.HelpStyle.Render("L log out"),
		))
	}

	if m.form == nil {
		return ""
	}
	return theme.PanelStyle.Width(m.formWidth()).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🔑 Admin Login"),
		m.form.View(),
		theme.HelpStyle.Render("enter to continue"),
	))
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
	if w > 60 {
		w = 60
	}
	return w
}
