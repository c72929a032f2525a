package cardui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hyphengolang/prelude/testing/is"

	"github.com/rog-golang-buddies/userboard/internal/users"
)

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(keyPress(k))
		m = next.(Model)
	}
	return m
}

func sample(n int) []users.User {
	us := make([]users.User, n)
	for i := range us {
		us[i] = users.User{ID: i + 1, Name: "User", Username: "user", Email: "user@mail.com"}
	}
	return us
}

func TestCursor(t *testing.T) {
	is := is.New(t)

	m := New().WithUsers(sample(5))
	is.Equal(m.Columns(), 3)

	t.Run("moves within the grid", func(t *testing.T) {
		m := press(m, "right", "right")
		is.Equal(m.Cursor(), 2)

		m = press(m, "down")
		is.Equal(m.Cursor(), 2) // no card below index 2 in a 5-card grid

		m = press(m, "left", "down")
		is.Equal(m.Cursor(), 4)

		m = press(m, "k")
		is.Equal(m.Cursor(), 1)
	})

	t.Run("stays in range when users shrink", func(t *testing.T) {
		m := press(m, "l", "l", "l", "l")
		is.Equal(m.Cursor(), 4)

		m = m.WithUsers(sample(2))
		is.Equal(m.Cursor(), 1)

		u, ok := m.Selected()
		is.True(ok)
		is.Equal(u.ID, 2)

		m = m.WithUsers(nil)
		_, ok = m.Selected()
		is.True(!ok)
	})
}

func TestColumns(t *testing.T) {
	is := is.New(t)

	is.Equal(columnsFor(20), 1)
	is.Equal(columnsFor(80), 2)
	is.Equal(columnsFor(200), 3)

	next, _ := New().Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	is.Equal(next.(Model).Columns(), 1)
}

func TestView(t *testing.T) {
	is := is.New(t)

	is.True(strings.Contains(New().View(), "No users yet"))

	u := users.User{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"}
	v := New().WithUsers([]users.User{u}).View()
	is.True(strings.Contains(v, "Leanne Graham"))
	is.True(strings.Contains(v, "@Bret"))
	is.True(strings.Contains(v, "Sincere@april.biz"))
}
