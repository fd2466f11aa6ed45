package ideaform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nhle/kidpreneur-hub/internal/imagedata"
	"github.com/nhle/kidpreneur-hub/internal/keys"
	"github.com/nhle/kidpreneur-hub/internal/model"
	"github.com/nhle/kidpreneur-hub/internal/state"
	"github.com/nhle/kidpreneur-hub/internal/theme"
)

// SubmitMsg is dispatched when the user completes the form. The request
// has not been validated yet.
type SubmitMsg struct {
	Request model.CreateIdeaRequest
}

// CancelMsg is dispatched when the user leaves the form with esc. The
// typed values are kept.
type CancelMsg struct {
	Request model.CreateIdeaRequest
}

// ImageSelectedMsg is dispatched when a file is chosen in the picker.
type ImageSelectedMsg struct {
	Path string
}

// ImageDetachMsg asks the shell to remove the attached image.
type ImageDetachMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name     string
	title    string
	category string
	problem  string
	solution string
}

// Model is the Bubble Tea model for the create idea form.
type Model struct {
	form    *huh.Form
	fb      *formBindings
	picker  filepicker.Model
	picking bool
	// done is set once the form has completed or aborted. The form is
	// inert until Fill or Reset rebuilds it.
	done   bool
	draft  state.Draft
	keys   *keys.KeyMap
	width  int
	height int
}

// New creates a new idea form model with an empty form.
func New(k *keys.KeyMap, width, height int) Model {
	m := Model{
		fb:     &formBindings{},
		picker: newPicker(),
		keys:   k,
		width:  width,
		height: height,
	}
	m.form = m.buildForm()
	return m
}

// Init focuses the first field.
func (m Model) Init() tea.Cmd {
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

func newPicker() filepicker.Model {
	fp := filepicker.New()
	fp.AllowedTypes = imagedata.Extensions
	if dir, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = dir
	} else if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}
	return fp
}

// Reset empties the form and builds it from scratch.
func (m *Model) Reset() tea.Cmd {
	return m.Fill(model.CreateIdeaRequest{})
}

// Fill rebuilds the form populated with req, e.g. after a rejected
// submission.
func (m *Model) Fill(req model.CreateIdeaRequest) tea.Cmd {
	m.fb.name = req.Name
	m.fb.title = req.Title
	m.fb.category = string(req.Category)
	m.fb.problem = req.Problem
	m.fb.solution = req.Solution
	m.picking = false
	m.done = false
	m.form = m.buildForm()
	return m.form.Init()
}

// SetDraft updates the image status shown under the form.
func (m *Model) SetDraft(d state.Draft) {
	m.draft = d
}

// Request returns the values currently typed into the form. The image is
// tracked by the shell and left empty here.
func (m Model) Request() model.CreateIdeaRequest {
	return model.CreateIdeaRequest{
		Name:     m.fb.name,
		Title:    m.fb.title,
		Problem:  m.fb.problem,
		Solution: m.fb.solution,
		Category: model.Category(m.fb.category),
	}
}

// CapturesInput reports whether key presses are consumed as text.
func (m Model) CapturesInput() bool {
	return m.form != nil || m.picking
}

// Picking reports whether the image picker is open.
func (m Model) Picking() bool {
	return m.picking
}

// Update handles messages for the idea form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.picking {
		return m.updatePicker(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.AttachImage):
			m.picking = true
			m.picker = newPicker()
			return m, m.picker.Init()

		case key.Matches(msg, m.keys.DetachImage):
			return m, func() tea.Msg { return ImageDetachMsg{} }

		case key.Matches(msg, m.keys.Back):
			req := m.Request()
			return m, func() tea.Msg { return CancelMsg{Request: req} }
		}
	}

	if m.form == nil || m.done {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.done = true
		req := m.Request()
		return m, func() tea.Msg { return SubmitMsg{Request: req} }
	}
	if m.form.State == huh.StateAborted {
		m.done = true
		req := m.Request()
		return m, func() tea.Msg { return CancelMsg{Request: req} }
	}

	return m, cmd
}

func (m Model) updatePicker(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Back) {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		return m, func() tea.Msg { return ImageSelectedMsg{Path: path} }
	}

	return m, cmd
}

// View renders the form, or the picker while it is open.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorText).
		MarginBottom(1)

	if m.picking {
		return theme.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("🖼 Choose an image"),
			m.picker.View(),
			theme.HelpStyle.Render("enter select · esc cancel"),
		))
	}

	if m.form == nil {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("✏️ Submit Your Idea"),
		m.form.View(),
		m.imageStatus(),
		"",
		theme.ButtonStyle.Render("🚀 Submit")+" "+theme.HelpStyle.Render("enter on the last field"),
	)

	return theme.PanelStyle.
		Width(m.formWidth()).
		Render(content)
}

func (m Model) imageStatus() string {
	d := m.draft
	switch {
	case d.ImageLoading:
		return theme.DimmedStyle.Render(fmt.Sprintf("🖼 loading %s...", filepath.Base(d.ImagePath)))
	case d.ImageErr != nil:
		return theme.StatusStyle(true).Render(fmt.Sprintf("🖼 %v", d.ImageErr))
	case d.Request.Image != "":
		info, err := imagedata.Describe(d.Request.Image)
		if err != nil {
			return theme.DimmedStyle.Render("🖼 image attached (ctrl+x to remove)")
		}
		return theme.DimmedStyle.Render(fmt.Sprintf("🖼 %s attached, %s, %s (ctrl+x to remove)",
			filepath.Base(d.ImagePath), info.MIME, humanize.Bytes(uint64(info.Size))))
	default:
		return theme.DimmedStyle.Render("🖼 no image (ctrl+o to attach)")
	}
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form = m.form.WithWidth(m.formWidth() - 6).WithHeight(m.formHeight())
	}
}

func (m *Model) buildForm() *huh.Form {
	categories := []huh.Option[string]{
		huh.NewOption("Choose Category", string(model.CategoryNone)),
	}
	for _, c := range model.Categories() {
		categories = append(categories, huh.NewOption(string(c), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your Name").
				Placeholder("optional").
				Value(&m.fb.name),
			huh.NewInput().
				Title("Idea Title").
				Placeholder("required").
				Value(&m.fb.title),
			huh.NewSelect[string]().
				Title("Category").
				Options(categories...).
				Value(&m.fb.category),
			huh.NewText().
				Title("Problem").
				Placeholder("What's the problem?").
				Lines(3).
				Value(&m.fb.problem),
			huh.NewText().
				Title("Solution").
				Placeholder("What's your solution?").
				Lines(3).
				Value(&m.fb.solution),
		),
	).WithShowHelp(false).WithWidth(m.formWidth() - 6).WithHeight(m.formHeight())
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 8
	if h < 10 {
		h = 10
	}
	return h
}
