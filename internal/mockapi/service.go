// Package mockapi serves a local stand-in for the remote users endpoint.
package mockapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	h "github.com/hyphengolang/prelude/http"
	"go.uber.org/zap"

	"github.com/rog-golang-buddies/userboard/internal/users"
)

type Option func(*Service)

func WithUsers(us []users.User) Option {
	return func(s *Service) { s.users = us }
}

// WithFailure makes GET /users answer with status and a {"message": ...} body.
func WithFailure(status int, message string) Option {
	return func(s *Service) {
		s.failStatus = status
		s.failMessage = message
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

type Service struct {
	mux   chi.Router
	users []users.User

	failStatus  int
	failMessage string

	log *zap.Logger
}

type errorResponse struct {
	Message string `json:"message"`
}

func New(opts ...Option) *Service {
	s := Service{
		mux:   chi.NewRouter(),
		users: Fixtures(),
	}

	for _, opt := range opts {
		opt(&s)
	}

	if s.log == nil {
		s.log = zap.NewNop()
	}

	s.routes()
	return &s
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Service) routes() {
	s.mux.Get("/users", s.handleListUsers())
	s.mux.Get("/users/{id}", s.handleGetUser())
}

func (s *Service) handleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.log.Debug("list users", zap.String("request_id", r.Header.Get("X-Request-ID")))

		if s.failStatus != 0 {
			h.Respond(w, r, errorResponse{s.failMessage}, s.failStatus)
			return
		}

		h.Respond(w, r, s.users, http.StatusOK)
	}
}

func (s *Service) handleGetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			h.Respond(w, r, errorResponse{"invalid user id"}, http.StatusBadRequest)
			return
		}

		for _, u := range s.users {
			if u.ID == id {
				h.Respond(w, r, u, http.StatusOK)
				return
			}
		}

		h.Respond(w, r, errorResponse{"user not found"}, http.StatusNotFound)
	}
}
