package tableui

import (
	"strings"
	"testing"

	"github.com/hyphengolang/prelude/testing/is"

	"github.com/rog-golang-buddies/userboard/internal/users"
)

func TestRender(t *testing.T) {
	is := is.New(t)

	out := Render([]users.User{
		{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"},
		{ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv"},
	})

	is.True(strings.Contains(out, "Username"))      // header rendered
	is.True(strings.Contains(out, "Leanne Graham")) // first row
	is.True(strings.Contains(out, "@Antonette"))    // usernames prefixed
	is.Equal(Render(nil), "No users yet.\n")        // empty collection
}

func TestNewRows(t *testing.T) {
	is := is.New(t)

	tbl := New([]users.User{{ID: 3, Name: "Clementine Bauch"}}, true)
	is.Equal(len(tbl.Rows()), 1)
	is.Equal(tbl.SelectedRow()[0], "3")
}
