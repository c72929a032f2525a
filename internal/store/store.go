package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/rog-golang-buddies/userboard/internal/users"
)

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithRand fixes the random source used for pictures of created users.
func WithRand(r users.Intn) Option {
	return func(s *Store) { s.rnd = r }
}

func WithState(st State) Option {
	return func(s *Store) { s.state = st.clone() }
}

// Store serialises dispatches and notifies subscribers after each one.
type Store struct {
	mu     sync.Mutex
	state  State
	reduce Reducer
	rnd    users.Intn

	subs   map[int]func(State)
	nextID int

	log *zap.Logger
}

func New(opts ...Option) *Store {
	s := Store{subs: make(map[int]func(State))}

	for _, opt := range opts {
		opt(&s)
	}

	if s.log == nil {
		s.log = zap.NewNop()
	}

	s.reduce = NewReducer(s.rnd)
	return &s
}

// State returns a copy that is safe to keep across dispatches.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = s.reduce(s.state, a)
	st := s.state.clone()
	subs := make([]func(State), 0, len(s.subs))
	for _, f := range s.subs {
		subs = append(subs, f)
	}
	s.mu.Unlock()

	s.log.Debug("dispatched",
		zap.String("action", fmt.Sprintf("%T", a)),
		zap.Int("users", len(st.Users)),
		zap.Bool("loading", st.Loading),
	)

	for _, f := range subs {
		f(st)
	}

	return st
}

// Subscribe registers f to run after every dispatch. The returned func removes it.
func (s *Store) Subscribe(f func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = f

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Run executes a thunk against this store.
func (s *Store) Run(ctx context.Context, t Thunk) error {
	return t(ctx, s.Dispatch, s.State)
}
