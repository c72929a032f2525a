package cardui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/rog-golang-buddies/userboard/internal/users"
)

const (
	cardWidth  = 32
	maxColumns = 3
)

// Styles
var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	muted     = lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"}

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1).
			MarginRight(1).
			Width(cardWidth)

	selectedCardStyle = cardStyle.Copy().BorderForeground(highlight)

	nameStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(muted)

	messageText = lipgloss.NewStyle().Align(lipgloss.Left)
)

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "move left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "move right"),
	),
}

// Model renders users as a grid of cards with one focused card.
type Model struct {
	users   []users.User
	cursor  int
	columns int
	keys    KeyMap
}

func New() Model {
	return Model{columns: maxColumns, keys: DefaultKeyMap}
}

// WithUsers replaces the rendered users, keeping the cursor in range.
func (m Model) WithUsers(us []users.User) Model {
	m.users = us
	m.cursor = clamp(m.cursor, 0, len(us)-1)
	return m
}

func (m Model) Cursor() int { return m.cursor }

func (m Model) Columns() int { return m.columns }

// Selected is the user under the cursor.
func (m Model) Selected() (users.User, bool) {
	if len(m.users) == 0 {
		return users.User{}, false
	}
	return m.users[m.cursor], true
}

// Init needed to satisfy Model interface.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.columns = columnsFor(msg.Width)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.move(-m.columns)
		case key.Matches(msg, m.keys.Down):
			m.move(m.columns)
		case key.Matches(msg, m.keys.Left):
			m.move(-1)
		case key.Matches(msg, m.keys.Right):
			m.move(1)
		}
	}
	return m, nil
}

func (m *Model) move(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.users) {
		return
	}
	m.cursor = next
}

func (m Model) View() string {
	if len(m.users) == 0 {
		return messageText.Render("No users yet. Create one?\n")
	}

	var rows []string
	for start := 0; start < len(m.users); start += m.columns {
		end := start + m.columns
		if end > len(m.users) {
			end = len(m.users)
		}

		cards := make([]string, 0, m.columns)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(m.users[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(u users.User, selected bool) string {
	inner := uint(cardWidth - 2)

	var b strings.Builder
	b.WriteString(nameStyle.Render(truncate.StringWithTail(u.Name, inner, "…")) + "\n")
	b.WriteString(truncate.StringWithTail(u.Email, inner, "…") + "\n")
	b.WriteString(mutedStyle.Render(truncate.StringWithTail("@"+u.Username, inner, "…")) + "\n")
	b.WriteString(mutedStyle.Render(truncate.StringWithTail(u.ProfilePicture, inner, "…")))

	if selected {
		return selectedCardStyle.Render(b.String())
	}
	return cardStyle.Render(b.String())
}

// columnsFor mirrors a 1/2/3 column responsive grid.
func columnsFor(width int) int {
	n := width / (cardWidth + 3)
	return clamp(n, 1, maxColumns)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
