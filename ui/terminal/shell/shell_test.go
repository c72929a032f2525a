package shell

import (
	"bytes"
	"context"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/rog-golang-buddies/userboard/internal/store"
	"github.com/rog-golang-buddies/userboard/internal/users"
)

type lister []users.User

func (l lister) ListUsers(context.Context) ([]users.User, error) { return l, nil }

// script answers prompts in order.
type script struct {
	choices  []int
	answers  []string
	confirms []bool
}

func (s *script) Choose(string, []string) (int, error) {
	if len(s.choices) == 0 {
		return 0, promptui.ErrInterrupt
	}
	i := s.choices[0]
	s.choices = s.choices[1:]
	return i, nil
}

func (s *script) Ask(_, def string, _ func(string) error) (string, error) {
	if len(s.answers) == 0 {
		return def, nil
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	if a == "" {
		return def, nil
	}
	return a, nil
}

func (s *script) Confirm(string) (bool, error) {
	if len(s.confirms) == 0 {
		return false, promptui.ErrEOF
	}
	c := s.confirms[0]
	s.confirms = s.confirms[1:]
	return c, nil
}

var fixtures = lister{
	{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"},
	{ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv"},
}

func index(action string) int {
	for i, a := range actions {
		if a == action {
			return i
		}
	}
	panic("unknown action " + action)
}

func newShell(t *testing.T, sc *script) (*Shell, *store.Store, *bytes.Buffer) {
	st := store.New(store.WithLogger(zaptest.NewLogger(t)))
	out := &bytes.Buffer{}
	sh := New(st, fixtures,
		WithAsker(sc),
		WithOutput(out),
		WithMutationDelay(0),
		WithLogger(zaptest.NewLogger(t)),
	)
	return sh, st, out
}

func TestShellFetchesOnStart(t *testing.T) {
	sh, st, out := newShell(t, &script{choices: []int{index(actionQuit)}})

	require.NoError(t, sh.Run(context.Background()))

	s := st.State()
	require.Len(t, s.Users, 2)
	assert.Equal(t, users.DefaultPicture(1), s.Users[0].ProfilePicture)
	assert.Contains(t, out.String(), "Leanne Graham")
}

func TestShellCreate(t *testing.T) {
	sc := &script{
		choices: []int{index(actionCreate)},
		answers: []string{"Budi", "budi123", "budi@mail.com"},
	}
	sh, st, _ := newShell(t, sc)

	// runs out of choices, which reads as an interrupt
	require.NoError(t, sh.Run(context.Background()))

	s := st.State()
	require.Len(t, s.Users, 3)
	assert.Equal(t, 3, s.Users[2].ID)
	assert.Equal(t, "budi123", s.Users[2].Username)
	assert.False(t, s.Loading)
}

func TestShellEdit(t *testing.T) {
	sc := &script{
		choices: []int{index(actionEdit), 1},
		answers: []string{"Ervin H.", "", ""},
	}
	sh, st, _ := newShell(t, sc)

	require.NoError(t, sh.Run(context.Background()))

	s := st.State()
	require.Len(t, s.Users, 2)
	assert.Equal(t, "Ervin H.", s.Users[1].Name)
	assert.Equal(t, "Antonette", s.Users[1].Username)
	assert.Equal(t, users.DefaultPicture(2), s.Users[1].ProfilePicture)
}

func TestShellDelete(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		sc := &script{choices: []int{index(actionDelete), 0}, confirms: []bool{true}}
		sh, st, _ := newShell(t, sc)

		require.NoError(t, sh.Run(context.Background()))

		s := st.State()
		require.Len(t, s.Users, 1)
		assert.Equal(t, 2, s.Users[0].ID)
	})

	t.Run("declined", func(t *testing.T) {
		sc := &script{choices: []int{index(actionDelete), 0}, confirms: []bool{false}}
		sh, st, _ := newShell(t, sc)

		require.NoError(t, sh.Run(context.Background()))
		assert.Len(t, st.State().Users, 2)
	})
}

func TestShellView(t *testing.T) {
	sc := &script{choices: []int{index(actionView), 1}}
	sh, st, out := newShell(t, sc)

	require.NoError(t, sh.Run(context.Background()))

	sel := st.State().Selected
	require.NotNil(t, sel)
	assert.Equal(t, 2, sel.ID)
	assert.Contains(t, out.String(), "User Detail")
	assert.Contains(t, out.String(), "@Antonette")
}

func TestShellCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sh, _, _ := newShell(t, &script{})
	assert.NoError(t, sh.Run(ctx))
}
