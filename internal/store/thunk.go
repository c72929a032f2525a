package store

import (
	"context"

	"github.com/rog-golang-buddies/userboard/internal/fp"
	"github.com/rog-golang-buddies/userboard/internal/users"
	"github.com/rog-golang-buddies/userboard/internal/users/api"
)

// Thunk performs I/O and dispatches the resulting actions.
type Thunk func(ctx context.Context, dispatch func(Action) State, getState func() State) error

type Lister interface {
	ListUsers(ctx context.Context) ([]users.User, error)
}

// FetchUsers loads the whole collection, filling in default pictures.
// On failure the collection is left as it was and the error is returned.
func FetchUsers(l Lister) Thunk {
	return func(ctx context.Context, dispatch func(Action) State, _ func() State) error {
		dispatch(fetchPending{})

		us, err := l.ListUsers(ctx)
		if err != nil {
			dispatch(fetchRejected{Message: api.Message(err)})
			return err
		}

		dispatch(fetchFulfilled{Users: fp.FMap(us, users.WithDefaultPicture)})
		return nil
	}
}
