// Package session owns the authenticated-user state for the lifetime of
// the process and persists it across runs through a sessionrecord
// repository. All mutations go through the three operations Restore,
// Login, and Logout; there is no other writer.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/rescuemap/internal/logging"
	"github.com/dmitrijs2005/rescuemap/internal/models"
	"github.com/dmitrijs2005/rescuemap/internal/repositories/sessionrecord"
)

// recordKey is the single durable-storage key holding the serialized user.
const recordKey = "rescueUser"

// State is a snapshot of the session.
// Invariant: IsAuthenticated == (User != nil).
// IsLoading is true only before the initial Restore completes.
type State struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
}

// Store is the single source of truth for "who is logged in".
type Store struct {
	repo sessionrecord.Repository
	log  logging.Logger

	mu       sync.Mutex
	state    State
	restored bool
	subs     []func(State)
}

// NewStore returns a Store in the initial state: not authenticated,
// still loading.
func NewStore(repo sessionrecord.Repository, log logging.Logger) *Store {
	return &Store{
		repo:  repo,
		log:   log,
		state: State{IsLoading: true},
	}
}

// State returns the current session snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called synchronously after every state
// change, starting with the next one.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Restore loads the persisted session record, if any.
//
// An absent record resolves to the unauthenticated state. A record that
// cannot be parsed is deleted and likewise resolves unauthenticated;
// this path never surfaces an error to the caller. Restore always ends
// with IsLoading=false, and only the first call does anything.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	if s.restored {
		s.mu.Unlock()
		return nil
	}
	s.restored = true
	s.mu.Unlock()

	value, err := s.repo.Get(ctx, recordKey)
	if err != nil {
		s.setState(State{})
		return fmt.Errorf("failed to read session record: %w", err)
	}
	if value == nil {
		s.setState(State{})
		return nil
	}

	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		s.log.Warn(ctx, "discarding malformed session record", "error", err)
		if err := s.repo.Delete(ctx, recordKey); err != nil {
			s.log.Warn(ctx, "failed to purge malformed session record", "error", err)
		}
		s.setState(State{})
		return nil
	}

	s.setState(State{User: &user, IsAuthenticated: true})
	return nil
}

// Login persists the validated user and transitions to the
// authenticated state.
func (s *Store) Login(ctx context.Context, user *models.User) error {
	value, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize session record: %w", err)
	}
	if err := s.repo.Set(ctx, recordKey, value); err != nil {
		return fmt.Errorf("failed to persist session record: %w", err)
	}
	s.setState(State{User: user, IsAuthenticated: true})
	return nil
}

// Logout clears the persisted record and transitions to the
// unauthenticated state.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.repo.Delete(ctx, recordKey); err != nil {
		return fmt.Errorf("failed to clear session record: %w", err)
	}
	s.setState(State{})
	return nil
}

func (s *Store) setState(state State) {
	s.mu.Lock()
	s.state = state
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}
