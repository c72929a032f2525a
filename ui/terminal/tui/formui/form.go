package formui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rog-golang-buddies/userboard/internal/users"
)

var (
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1, 2).
			Width(50)

	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).MarginTop(1)
)

// Message types
type (
	Submitted struct{ Form users.Form }
	Cancelled struct{}
)

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Enter  key.Binding
	Save   key.Binding
	Cancel key.Binding
}

var keys = keyMap{
	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/save")),
	Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

const (
	nameField = iota
	usernameField
	emailField
)

var fields = []struct {
	label       string
	placeholder string
}{
	nameField:     {"Name", "John Doe"},
	usernameField: {"Username", "@johndoe"},
	emailField:    {"Email", "johndoe@mail.com"},
}

// Model is the create/edit dialog.
type Model struct {
	id      int
	picture string
	inputs  []textinput.Model
	focus   int
	err     error
}

// New returns an empty create dialog.
func New() Model {
	m := Model{inputs: make([]textinput.Model, len(fields))}

	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.Prompt = "> "
		ti.CharLimit = 120
		m.inputs[i] = ti
	}

	m.inputs[0].Focus()
	return m
}

// NewEdit returns a dialog pre-filled with u.
func NewEdit(u users.User) Model {
	m := New()
	m.id = u.ID
	m.picture = u.ProfilePicture
	m.inputs[nameField].SetValue(u.Name)
	m.inputs[usernameField].SetValue(u.Username)
	m.inputs[emailField].SetValue(u.Email)
	return m
}

func (m Model) Editing() bool { return m.id != 0 }

func (m Model) Focused() int { return m.focus }

func (m Model) Err() error { return m.err }

func (m Model) Form() users.Form {
	return users.Form{
		ID:             m.id,
		Name:           strings.TrimSpace(m.inputs[nameField].Value()),
		Username:       strings.TrimSpace(m.inputs[usernameField].Value()),
		Email:          strings.TrimSpace(m.inputs[emailField].Value()),
		ProfilePicture: m.picture,
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Cancel):
			return m, func() tea.Msg { return Cancelled{} }
		case key.Matches(msg, keys.Save):
			return m.submit()
		case key.Matches(msg, keys.Enter):
			if m.focus == len(m.inputs)-1 {
				return m.submit()
			}
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, keys.Next):
			return m, m.setFocus((m.focus + 1) % len(m.inputs))
		case key.Matches(msg, keys.Prev):
			return m, m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	f := m.Form()
	if err := f.Validate(); err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	return m, func() tea.Msg { return Submitted{Form: f} }
}

func (m Model) View() string {
	var b strings.Builder

	title := "Create user"
	if m.Editing() {
		title = "Edit user"
	}
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(hintStyle.Render("Press enter on the last field when you're done."))

	if m.Editing() && m.picture != "" {
		b.WriteString("\n\n" + hintStyle.Render(m.picture))
	}

	for i, f := range fields {
		b.WriteString("\n" + labelStyle.Render(f.label) + "\n")
		b.WriteString(m.inputs[i].View())
	}

	if m.err != nil {
		b.WriteString("\n" + errStyle.Render(m.err.Error()))
	}

	b.WriteString("\n\n" + hintStyle.Render("tab next • shift+tab back • ctrl+s save • esc cancel"))

	return dialogStyle.Render(b.String())
}
