package store

import (
	"github.com/rog-golang-buddies/userboard/internal/fp"
	"github.com/rog-golang-buddies/userboard/internal/users"
)

type Reducer func(State, Action) State

// NewReducer returns the users reducer. rnd picks pictures for created users.
// The input state is never modified.
func NewReducer(rnd users.Intn) Reducer {
	if rnd == nil {
		rnd = users.GlobalRand
	}

	return func(s State, a Action) State {
		switch a := a.(type) {
		case SelectUser:
			u := a.User
			s.Selected = &u

		case SetLoading:
			s.Loading = a.Loading

		case UpdateUser:
			idx := fp.FindIndex(s.Users, func(u users.User) bool { return u.ID == a.User.ID })
			if idx == -1 {
				return s
			}

			us := append([]users.User(nil), s.Users...)
			us[idx] = a.User
			s.Users = us

			if s.Selected != nil && s.Selected.ID == a.User.ID {
				u := a.User
				s.Selected = &u
			}

		case CreateUser:
			u := a.User
			u.ProfilePicture = users.RandomPicture(rnd)

			us := make([]users.User, len(s.Users), len(s.Users)+1)
			copy(us, s.Users)
			s.Users = append(us, u)

		case DeleteUser:
			s.Users = fp.Filter(s.Users, func(u users.User) bool { return u.ID != a.ID })

		case fetchPending:
			s.Loading = true
			s.Err = ""

		case fetchFulfilled:
			s.Loading = false
			s.Users = a.Users

		case fetchRejected:
			s.Loading = false
			s.Err = a.Message
		}

		return s
	}
}
