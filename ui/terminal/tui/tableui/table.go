package tableui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rog-golang-buddies/userboard/internal/users"
)

var columns = []table.Column{
	{Title: "ID", Width: 4},
	{Title: "Name", Width: 26},
	{Title: "Username", Width: 18},
	{Title: "Email", Width: 28},
}

// New builds a table of us. A focused table highlights the cursor row.
func New(us []users.User, focused bool) table.Model {
	rows := make([]table.Row, 0, len(us))

	for _, u := range us {
		row := table.Row{strconv.Itoa(u.ID), u.Name, "@" + u.Username, u.Email}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(focused),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	if focused {
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
	} else {
		s.Selected = s.Cell.Copy()
	}
	t.SetStyles(s)

	return t
}

// Render is the plain, unfocused rendering used outside the full-screen UI.
func Render(us []users.User) string {
	if len(us) == 0 {
		return "No users yet.\n"
	}
	return New(us, false).View() + "\n"
}
