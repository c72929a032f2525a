// Package shell is a line-oriented front end over the users store.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rog-golang-buddies/userboard/internal/store"
	"github.com/rog-golang-buddies/userboard/internal/users"
	"github.com/rog-golang-buddies/userboard/ui/terminal/tui/tableui"
)

const (
	actionList    = "List users"
	actionView    = "View user"
	actionCreate  = "Create user"
	actionEdit    = "Edit user"
	actionDelete  = "Delete user"
	actionRefresh = "Refresh"
	actionQuit    = "Quit"
)

var actions = []string{
	actionList,
	actionView,
	actionCreate,
	actionEdit,
	actionDelete,
	actionRefresh,
	actionQuit,
}

type Option func(*Shell)

func WithAsker(a Asker) Option {
	return func(s *Shell) { s.ask = a }
}

func WithOutput(w io.Writer) Option {
	return func(s *Shell) { s.out = w }
}

func WithMutationDelay(d time.Duration) Option {
	return func(s *Shell) { s.delay = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Shell) { s.log = l }
}

type Shell struct {
	store  *store.Store
	lister store.Lister
	ask    Asker
	out    io.Writer
	delay  time.Duration
	log    *zap.Logger
}

func New(st *store.Store, l store.Lister, opts ...Option) *Shell {
	s := &Shell{
		store:  st,
		lister: l,
		ask:    Prompter{},
		out:    os.Stdout,
		delay:  500 * time.Millisecond,
		log:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run fetches the users and loops on the action menu until quit,
// an interrupt or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	s.refresh(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		i, err := s.ask.Choose("What next?", actions)
		if err != nil {
			return interrupted(err)
		}

		if err := s.do(ctx, actions[i]); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return interrupted(err)
		}
	}
}

var errQuit = errors.New("quit")

func (s *Shell) do(ctx context.Context, action string) error {
	switch action {
	case actionList:
		s.list()
	case actionRefresh:
		s.refresh(ctx)
	case actionView:
		return s.view()
	case actionCreate:
		return s.edit(ctx, users.User{})
	case actionEdit:
		u, ok, err := s.pick("Edit which user?")
		if err != nil || !ok {
			return err
		}
		return s.edit(ctx, u)
	case actionDelete:
		return s.remove(ctx)
	case actionQuit:
		return errQuit
	}
	return nil
}

func (s *Shell) list() {
	fmt.Fprintln(s.out, tableui.Render(s.store.State().Users))
}

func (s *Shell) refresh(ctx context.Context) {
	fmt.Fprintln(s.out, "Loading...")
	if err := s.store.Run(ctx, store.FetchUsers(s.lister)); err != nil {
		s.log.Warn("fetching users failed", zap.String("message", s.store.State().Err), zap.Error(err))
	}
	s.list()
}

func (s *Shell) view() error {
	u, ok, err := s.pick("View which user?")
	if err != nil || !ok {
		return err
	}

	st := s.store.Dispatch(store.SelectUser{User: u})
	sel := st.Selected

	fmt.Fprintf(s.out, "User Detail\n  Picture:  %s\n  Name:     %s\n  Username: @%s\n  Email:    %s\n\n",
		sel.ProfilePicture, sel.Name, sel.Username, sel.Email)
	return nil
}

func (s *Shell) edit(ctx context.Context, u users.User) error {
	f := users.FormFrom(u)

	var err error
	if f.Name, err = s.ask.Ask("Name", f.Name, required("name")); err != nil {
		return err
	}
	if f.Username, err = s.ask.Ask("Username", f.Username, required("username")); err != nil {
		return err
	}
	if f.Email, err = s.ask.Ask("Email", f.Email, required("email")); err != nil {
		return err
	}

	if err := f.Validate(); err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}

	return s.mutate(ctx, func() {
		if f.Editing() {
			s.store.Dispatch(store.UpdateUser{User: f.User()})
			s.log.Info("updated user", zap.Int("id", f.ID))
			return
		}

		created := f.User()
		created.ID = s.store.State().NextID()
		s.store.Dispatch(store.CreateUser{User: created})
		s.log.Info("created user", zap.Int("id", created.ID))
	})
}

func (s *Shell) remove(ctx context.Context) error {
	u, ok, err := s.pick("Delete which user?")
	if err != nil || !ok {
		return err
	}

	yes, err := s.ask.Confirm(fmt.Sprintf("Delete %s", u.Name))
	if err != nil || !yes {
		return err
	}

	return s.mutate(ctx, func() {
		s.store.Dispatch(store.DeleteUser{ID: u.ID})
		s.log.Info("deleted user", zap.Int("id", u.ID))
	})
}

// mutate applies f under the loading flag and holds it for the mutation delay.
func (s *Shell) mutate(ctx context.Context, f func()) error {
	s.store.Dispatch(store.SetLoading{Loading: true})
	defer s.store.Dispatch(store.SetLoading{Loading: false})

	f()

	select {
	case <-ctx.Done():
	case <-time.After(s.delay):
	}

	s.list()
	return nil
}

func (s *Shell) pick(label string) (users.User, bool, error) {
	us := s.store.State().Users
	if len(us) == 0 {
		fmt.Fprintln(s.out, "No users yet.")
		return users.User{}, false, nil
	}

	items := make([]string, len(us))
	for i, u := range us {
		items[i] = fmt.Sprintf("#%d %s (@%s)", u.ID, u.Name, u.Username)
	}

	i, err := s.ask.Choose(label, items)
	if err != nil {
		return users.User{}, false, err
	}
	return us[i], true, nil
}

func required(field string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return errors.Errorf("%s is required", field)
		}
		return nil
	}
}

// interrupted maps the prompt's ctrl+c and ctrl+d to a clean exit.
func interrupted(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return nil
	}
	return err
}
