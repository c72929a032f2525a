// Package store holds the users state and the transitions that change it.
package store

import "github.com/rog-golang-buddies/userboard/internal/users"

type State struct {
	Users    []users.User
	Selected *users.User // copy taken at selection time
	Loading  bool
	Err      string // message of the last failed fetch; never rendered
}

// Action is any value accepted by a Reducer.
type Action interface{ action() }

type (
	// CreateUser appends User with a freshly drawn random picture.
	CreateUser struct{ User users.User }
	// UpdateUser replaces the user carrying the same ID.
	UpdateUser struct{ User users.User }
	DeleteUser struct{ ID int }
	SetLoading struct{ Loading bool }
	SelectUser struct{ User users.User }

	fetchPending   struct{}
	fetchFulfilled struct{ Users []users.User }
	fetchRejected  struct{ Message string }
)

func (CreateUser) action()     {}
func (UpdateUser) action()     {}
func (DeleteUser) action()     {}
func (SetLoading) action()     {}
func (SelectUser) action()     {}
func (fetchPending) action()   {}
func (fetchFulfilled) action() {}
func (fetchRejected) action()  {}

// Find returns the user with the given id.
func (s State) Find(id int) (users.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return users.User{}, false
}

func (s State) clone() State {
	c := s
	c.Users = append([]users.User(nil), s.Users...)
	if s.Selected != nil {
		sel := *s.Selected
		c.Selected = &sel
	}
	return c
}

// NextID is one past the highest id in the collection, so a created user
// never collides with an existing one even after deletes.
func (s State) NextID() int {
	next := 1
	for _, u := range s.Users {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return next
}
