package users_test

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/hyphengolang/prelude/testing/is"

	"github.com/rog-golang-buddies/userboard/internal/users"
)

type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }

func TestPicture(t *testing.T) {
	is := is.New(t)

	t.Run("default picture is derived from the id", func(t *testing.T) {
		is.Equal(users.DefaultPicture(1), "https://picsum.photos/id/11/100")
		is.Equal(users.DefaultPicture(0), "https://picsum.photos/id/10/100")
	})

	t.Run("random picture stays in range", func(t *testing.T) {
		is.Equal(users.RandomPicture(fixedRand(0)), "https://picsum.photos/id/10/100")
		is.Equal(users.RandomPicture(fixedRand(99)), "https://picsum.photos/id/109/100")
	})

	t.Run("existing picture is kept", func(t *testing.T) {
		u := users.WithDefaultPicture(users.User{ID: 3, ProfilePicture: "https://example.com/a.png"})
		is.Equal(u.ProfilePicture, "https://example.com/a.png")

		u = users.WithDefaultPicture(users.User{ID: 3})
		is.Equal(u.ProfilePicture, "https://picsum.photos/id/13/100")
	})
}

func TestUnmarshalUser(t *testing.T) {
	is := is.New(t)

	payload := `
	{
		"id": 1,
		"name": "Leanne Graham",
		"username": "Bret",
		"email": "Sincere@april.biz",
		"profilePicture": null,
		"phone": "1-770-736-8031 x56442"
	}`

	var u users.User
	err := json.Unmarshal([]byte(payload), &u)
	is.NoErr(err)                  // decoding passed
	is.Equal(u.ID, 1)              // id
	is.Equal(u.Username, "Bret")   // username
	is.Equal(u.ProfilePicture, "") // null picture is absent
}

func TestFormValidate(t *testing.T) {
	is := is.New(t)

	t.Run("complete form", func(t *testing.T) {
		f := users.Form{Name: "Budi", Username: "budi123", Email: "budi@mail.com"}
		is.NoErr(f.Validate())
		is.True(!f.Editing())
	})

	t.Run("missing fields are reported", func(t *testing.T) {
		f := users.Form{Name: "Budi", Username: "   "}

		var ve *users.ValidationError
		is.True(errors.As(f.Validate(), &ve))
		is.Equal(ve.Fields, []string{"Username", "Email"})
		is.Equal(ve.Error(), "validation failed: Username is required, Email is required")
	})

	t.Run("edit form round trips the user", func(t *testing.T) {
		u := users.User{ID: 7, Name: "Andi", Username: "andi", Email: "andi@mail.com", ProfilePicture: "p"}
		f := users.FormFrom(u)
		is.True(f.Editing())
		is.Equal(f.User(), u)
	})
}
