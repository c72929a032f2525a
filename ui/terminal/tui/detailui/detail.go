package detailui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rog-golang-buddies/userboard/internal/users"
)

var (
	special = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(special).
			Padding(1, 2).
			Width(50)

	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Closed is sent when the dialog is dismissed.
type Closed struct{}

var closeKey = key.NewBinding(
	key.WithKeys("esc", "enter", "q"),
	key.WithHelp("esc", "close"),
)

type Model struct {
	user *users.User
}

func New(u *users.User) Model { return Model{user: u} }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, closeKey) {
		return m, func() tea.Msg { return Closed{} }
	}
	return m, nil
}

func (m Model) View() string {
	var u users.User
	if m.user != nil {
		u = *m.user
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("User Detail") + "\n")
	b.WriteString(valueStyle.Render(u.ProfilePicture))

	for _, row := range [][2]string{
		{"Name", u.Name},
		{"Username", u.Username},
		{"Email", u.Email},
	} {
		b.WriteString("\n" + labelStyle.Render(row[0]) + "\n")
		b.WriteString(valueStyle.Render(row[1]))
	}

	return dialogStyle.Render(b.String())
}
