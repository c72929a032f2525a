package mockapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyphengolang/prelude/testing/is"
	"github.com/stretchr/testify/require"

	"github.com/rog-golang-buddies/userboard/internal/apiclient"
	"github.com/rog-golang-buddies/userboard/internal/store"
	"github.com/rog-golang-buddies/userboard/internal/users"
	"github.com/rog-golang-buddies/userboard/internal/users/api"
)

func TestService(t *testing.T) {
	t.Parallel()
	is := is.New(t)

	srv := httptest.NewServer(New())
	t.Cleanup(func() { srv.Close() })

	t.Run(`list all users`, func(t *testing.T) {
		res, err := srv.Client().Get(srv.URL + "/users")
		is.NoErr(err)                           // request sent
		is.Equal(res.StatusCode, http.StatusOK) // listed users
		defer res.Body.Close()

		var us []users.User
		is.NoErr(json.NewDecoder(res.Body).Decode(&us)) // decoded body
		is.Equal(len(us), 10)                           // ten fixtures
		is.Equal(us[0].Username, "Bret")
	})

	t.Run(`get one user`, func(t *testing.T) {
		res, err := srv.Client().Get(srv.URL + "/users/3")
		is.NoErr(err)
		is.Equal(res.StatusCode, http.StatusOK)
		res.Body.Close()
	})

	t.Run(`unknown user is not found`, func(t *testing.T) {
		res, err := srv.Client().Get(srv.URL + "/users/99")
		is.NoErr(err)
		is.Equal(res.StatusCode, http.StatusNotFound)
		res.Body.Close()

		res, err = srv.Client().Get(srv.URL + "/users/abc")
		is.NoErr(err)
		is.Equal(res.StatusCode, http.StatusBadRequest)
		res.Body.Close()
	})
}

func TestFetchThroughClient(t *testing.T) {
	ctx := context.Background()

	t.Run("fixtures get default pictures", func(t *testing.T) {
		srv := httptest.NewServer(New())
		t.Cleanup(srv.Close)

		s := store.New()
		lister := api.New(apiclient.New(apiclient.WithBaseURL(srv.URL)))
		require.NoError(t, s.Run(ctx, store.FetchUsers(lister)))

		st := s.State()
		require.Len(t, st.Users, 10)
		require.Equal(t, users.DefaultPicture(10), st.Users[9].ProfilePicture)
		require.False(t, st.Loading)
	})

	t.Run("failure message comes from the body", func(t *testing.T) {
		srv := httptest.NewServer(New(WithFailure(http.StatusServiceUnavailable, "try again later")))
		t.Cleanup(srv.Close)

		s := store.New()
		lister := api.New(apiclient.New(apiclient.WithBaseURL(srv.URL)))
		require.Error(t, s.Run(ctx, store.FetchUsers(lister)))

		st := s.State()
		require.Empty(t, st.Users)
		require.False(t, st.Loading)
		require.Equal(t, "try again later", st.Err)
	})
}
