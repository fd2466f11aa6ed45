package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/nhle/kidpreneur-hub/internal/auth"
	"github.com/nhle/kidpreneur-hub/internal/imagedata"
	"github.com/nhle/kidpreneur-hub/internal/keys"
	"github.com/nhle/kidpreneur-hub/internal/logger"
	"github.com/nhle/kidpreneur-hub/internal/model"
	"github.com/nhle/kidpreneur-hub/internal/state"
	"github.com/nhle/kidpreneur-hub/internal/store"
	"github.com/nhle/kidpreneur-hub/internal/ui"
	"github.com/nhle/kidpreneur-hub/internal/ui/admin"
	"github.com/nhle/kidpreneur-hub/internal/ui/command"
	helpview "github.com/nhle/kidpreneur-hub/internal/ui/help"
	"github.com/nhle/kidpreneur-hub/internal/ui/ideaform"
	"github.com/nhle/kidpreneur-hub/internal/ui/idealist"
	"github.com/nhle/kidpreneur-hub/internal/ui/settings"
)

const appTitle = "🌈 Kidpreneur Hub"

// Overlay is drawn over the content pane on top of the active view.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
	OverlayCommand
)

// Options configures a new root model.
type Options struct {
	// Observer persists every state transition.
	Observer *store.Observer

	// Snapshot is the data loaded at startup.
	Snapshot store.Snapshot

	// Auth checks admin logins. Defaults to the static placeholder.
	Auth auth.Authenticator

	// SidebarCollapsed is the initial sidebar state.
	SidebarCollapsed bool

	// Now and NewSessionID are replaced in tests.
	Now          func() time.Time
	NewSessionID func() string
}

// Model is the root Bubble Tea model. It owns the application state,
// routes messages to the views and persists every transition.
type Model struct {
	state    state.State
	observer *store.Observer
	auth     auth.Authenticator
	log      *slog.Logger

	now          func() time.Time
	newSessionID func() string

	keys    *keys.KeyMap
	layout  ui.Layout
	overlay Overlay
	ready   bool

	home         idealist.Model
	create       ideaform.Model
	settingsView settings.Model
	adminView    admin.Model
	helpView     helpview.Model
	commandView  command.Model

	statusMsg string
	statusErr bool
}

// New creates the root application model.
func New(opts Options) Model {
	k := keys.DefaultKeyMap()

	s := state.Initial(opts.Snapshot.Ideas, opts.Snapshot.Prefs)
	if opts.SidebarCollapsed {
		s = state.ToggleSidebar(s)
	}

	authenticator := opts.Auth
	if authenticator == nil {
		authenticator = auth.NewStatic()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	newSessionID := opts.NewSessionID
	if newSessionID == nil {
		newSessionID = uuid.NewString
	}

	m := Model{
		state:        s,
		observer:     opts.Observer,
		auth:         authenticator,
		log:          logger.ComponentLogger("app"),
		now:          now,
		newSessionID: newSessionID,
		keys:         k,
		layout:       ui.NewLayout(80, 24).WithSidebarCollapsed(s.SidebarCollapsed),
		home:         idealist.New(k, 80, 24),
		create:       ideaform.New(k, 80, 24),
		settingsView: settings.New(k, 80, 24),
		adminView:    admin.New(k, 80, 24),
		helpView:     helpview.New(k, 80, 24),
		commandView:  command.New(80, 24),
	}
	m.applyTheme()
	m.syncViews()

	m.log.Info("starting",
		"ideas", len(s.Ideas),
		"dark_mode", s.Prefs.DarkMode,
		"sort_order", s.Prefs.SortOrder,
	)
	return m
}

// State returns the current application state.
func (m Model) State() state.State {
	return m.state
}

// Init focuses the forms.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.create.Init(),
		m.adminView.Init(),
	)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height).WithSidebarCollapsed(m.state.SidebarCollapsed)
		m.ready = true
		m.resizeViews()
		// Forward so the huh forms and the file picker can size themselves.
		var cmd tea.Cmd
		m.create, cmd = m.create.Update(msg)
		return m, cmd

	case imagedata.LoadedMsg:
		next, applied := state.ApplyImage(m.state, msg.Ticket, msg.DataURL, msg.Err)
		if !applied {
			m.log.Debug("dropping stale image result", "path", msg.Ticket.Path)
			return m, nil
		}
		if msg.Err != nil {
			m.log.Warn("image read failed", "path", msg.Ticket.Path, "error", msg.Err)
			m.setStatus("Could not read image: "+msg.Err.Error(), true)
		}
		m.commit(next)
		return m, nil

	case ideaform.SubmitMsg:
		return m.submitIdea(msg.Request)

	case ideaform.CancelMsg:
		m.commit(state.SetDraft(m.state, msg.Request))
		m.navigate(model.ViewHome)
		m.create.Fill(msg.Request)
		if !msg.Request.IsZero() {
			m.setStatus("Draft kept. Press 2 to continue editing.", false)
		}
		return m, nil

	case ideaform.ImageSelectedMsg:
		next, ticket := state.BeginImageLoad(m.state, msg.Path)
		m.commit(next)
		m.log.Debug("loading image", "path", msg.Path, "seq", ticket.Seq)
		return m, imagedata.LoadCmd(ticket)

	case ideaform.ImageDetachMsg:
		m.commit(state.DetachImage(m.state))
		m.setStatus("Image removed", false)
		return m, nil

	case settings.ToggleThemeMsg:
		m.commit(state.ToggleTheme(m.state))
		return m, nil

	case settings.SetSortMsg:
		m.commit(state.SetSortOrder(m.state, msg.Order))
		m.setStatus("Sorting: "+m.state.Prefs.SortOrder.Label(), false)
		return m, nil

	case settings.ResetMsg:
		return m.resetIdeas(msg.Confirmed), nil

	case admin.LoginMsg:
		return m.login(msg.Request)

	case admin.LogoutMsg:
		m.log.Info("admin logged out", "session", m.state.Admin.SessionID)
		m.commit(state.LogoutAdmin(m.state))
		return m, m.adminView.Init()

	case admin.CancelMsg:
		cmd := m.navigate(model.ViewHome)
		return m, cmd

	case command.CommandMsg:
		m.overlay = OverlayNone
		return m.executeCommand(msg.Command)

	case command.CancelMsg:
		m.overlay = OverlayNone
		return m, nil

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the overlay or active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.overlay {
	case OverlayHelp:
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	case OverlayCommand:
		m.commandView, cmd = m.commandView.Update(msg)
		return m, cmd
	}

	switch m.state.View {
	case model.ViewHome:
		m.home, cmd = m.home.Update(msg)
	case model.ViewCreate:
		m.create, cmd = m.create.Update(msg)
	case model.ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	case model.ViewAdmin:
		m.adminView, cmd = m.adminView.Update(msg)
	}

	return m, cmd
}

func (m Model) submitIdea(req model.CreateIdeaRequest) (tea.Model, tea.Cmd) {
	drafted := state.SetDraft(m.state, req)
	next, idea, err := state.SubmitIdea(drafted, m.now())
	if errors.Is(err, state.ErrMissingFields) {
		m.commit(drafted)
		m.setStatus(missingFieldsMessage(drafted.Draft.Request.Missing()), true)
		cmd := m.create.Fill(req)
		return m, cmd
	}

	if drafted.Draft.ImageLoading {
		m.log.Info("idea submitted before image finished loading", "path", drafted.Draft.ImagePath)
	}
	m.log.Info("idea submitted", "id", idea.ID, "category", idea.Category, "image", idea.HasImage())
	if err := m.commit(next); err == nil {
		m.setStatus("🎉 Idea added! Press ctrl+p to see it on the home page.", false)
	}
	cmd := m.create.Reset()
	return m, cmd
}

func (m Model) resetIdeas(confirmed bool) Model {
	count := len(m.state.Ideas)
	next, done := state.ResetIdeas(m.state, func() bool { return confirmed })
	if !done {
		m.setStatus("Reset cancelled", false)
		return m
	}
	m.log.Info("ideas reset", "deleted", count)
	if err := m.commit(next); err == nil {
		m.setStatus("All ideas deleted", false)
	}
	return m
}

func (m Model) login(req model.AdminLoginRequest) (tea.Model, tea.Cmd) {
	err := m.auth.Authenticate(context.Background(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			m.log.Warn("admin login rejected", "username", req.Username)
		} else {
			m.log.Error("admin login failed", "error", err)
			m.setStatus("Login failed: "+err.Error(), true)
		}
		m.adminView.ShowError()
		return m, nil
	}

	sessionID := m.newSessionID()
	m.log.Info("admin logged in", "username", req.Username, "session", sessionID)
	m.commit(state.LoginAdmin(m.state, req.Username, sessionID))
	return m, nil
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(appTitle, m.state.View)
	sidebar := m.layout.RenderSidebar(m.state.View)
	content := m.layout.RenderContent(m.renderContent())
	statusBar := m.layout.RenderStatusBar(m.statusLine())

	return m.layout.RenderWithFrame(header, sidebar, content, statusBar)
}

// renderContent returns the rendered string for the overlay or active view.
func (m Model) renderContent() string {
	switch m.overlay {
	case OverlayHelp:
		return m.helpView.View()
	case OverlayCommand:
		return m.commandView.View()
	}

	switch m.state.View {
	case model.ViewHome:
		return m.home.View()
	case model.ViewCreate:
		return m.create.View()
	case model.ViewSettings:
		return m.settingsView.View()
	case model.ViewAdmin:
		return m.adminView.View()
	default:
		return ""
	}
}

func (m *Model) resizeViews() {
	w, h := m.layout.InnerWidth(), m.layout.InnerHeight()
	m.home.SetSize(w, h)
	m.create.SetSize(w, h)
	m.settingsView.SetSize(w, h)
	m.adminView.SetSize(w, h)
	m.helpView.SetSize(w, h)
	m.commandView.SetSize(w, h)
}
