package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"notewriter/internal/adapters/tui/styles"
)

// ComposerKeyMap defines key bindings for the composer
type ComposerKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// ComposerKeys are the default composer bindings. Enter inserts a newline,
// so submitting uses ctrl+s.
var ComposerKeys = ComposerKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save note"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// ComposerModel is a single text area for writing one note
type ComposerModel struct {
	area      textarea.Model
	submitted bool
	cancelled bool
	width     int
	height    int
}

// NewComposerModel creates a focused, empty composer
func NewComposerModel() *ComposerModel {
	area := textarea.New()
	area.Placeholder = "Enter note..."
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.SetWidth(60)
	area.SetHeight(8)
	area.Focus()

	return &ComposerModel{area: area}
}

// Init starts the cursor blink
func (m *ComposerModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the composer
func (m *ComposerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width > 8 {
			m.area.SetWidth(msg.Width - 8)
		}
		if msg.Height > 10 {
			m.area.SetHeight(msg.Height - 10)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ComposerKeys.Submit):
			m.submitted = true
			m.area.Blur()
			return m, tea.Quit

		case key.Matches(msg, ComposerKeys.Cancel):
			m.cancelled = true
			m.area.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

// View renders the composer
func (m *ComposerModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("New note"))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(m.area.View()))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpKey.Render("ctrl+s") + " " + styles.HelpDesc.Render("save"))
	b.WriteString("  ")
	b.WriteString(styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("cancel"))

	return styles.App.Render(b.String())
}

// Submitted reports whether the user saved the note
func (m *ComposerModel) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user abandoned the note
func (m *ComposerModel) Cancelled() bool {
	return m.cancelled
}

// Value returns the text typed so far
func (m *ComposerModel) Value() string {
	return m.area.Value()
}
