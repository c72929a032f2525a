package api

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rog-golang-buddies/userboard/internal/apiclient"
	"github.com/rog-golang-buddies/userboard/internal/users"
)

const usersPath = "/users"

// FallbackMessage is reported when a failed fetch carries no message of its own.
const FallbackMessage = "Failed to get Users"

// Getter is the part of *apiclient.Client the accessor needs.
type Getter interface {
	Get(ctx context.Context, path string, v any) error
}

type API struct {
	c Getter
}

func New(c Getter) *API { return &API{c} }

// ListUsers fetches the user collection as returned by the upstream.
func (a *API) ListUsers(ctx context.Context) ([]users.User, error) {
	var us []users.User
	if err := a.c.Get(ctx, usersPath, &us); err != nil {
		return nil, errors.Wrap(err, "listing users")
	}
	return us, nil
}

// Message picks the text stored for a failed fetch.
func Message(err error) string {
	var re *apiclient.ResponseError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return FallbackMessage
}
