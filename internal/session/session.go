// Package session keeps the signed-in user and keeps the API client's token
// in sync with local storage. Construct one per process and pass it to the
// screens that need it.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/auth"
	"github.com/bhushansable/Gurukrupa-Mess/internal/storage"
)

// ErrNotAuthenticated is returned by operations that need a signed-in user.
var ErrNotAuthenticated = errors.New("please login first")

// Client is the part of the API façade the session depends on.
// Satisfied by *api.Client.
type Client interface {
	SetToken(token string)
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Me(ctx context.Context) (*api.User, error)
	UpdateProfile(ctx context.Context, req api.ProfileUpdate) (*api.User, error)
}

// Store holds the current user and token.
type Store struct {
	client Client
	kv     storage.KV
	now    func() time.Time

	mu    sync.RWMutex
	user  *api.User
	token string
}

// New creates a signed-out Store. Call Restore to pick up a persisted token.
func New(client Client, kv storage.KV) *Store {
	return &Store{client: client, kv: kv, now: time.Now}
}

// Restore loads the persisted token and fetches its user. Any failure
// discards the token and leaves the session signed out; only storage read
// errors are returned.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.kv.Get(ctx, storage.TokenKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}

	if expired, err := auth.Expired(token, s.now()); err != nil || expired {
		s.discard(ctx)
		return nil
	}

	s.client.SetToken(token)
	user, err := s.client.Me(ctx)
	if err != nil {
		log.Printf("WARNING: stored session rejected: %v", err)
		s.discard(ctx)
		return nil
	}
	s.set(token, user)
	return nil
}

// Login signs in and persists the token.
func (s *Store) Login(ctx context.Context, email, password string) (*api.User, error) {
	resp, err := s.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, resp)
}

// Register creates an account, signs in and persists the token.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) (*api.User, error) {
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, resp)
}

// Logout forgets the persisted token and the cached user.
func (s *Store) Logout(ctx context.Context) error {
	err := s.kv.Delete(ctx, storage.TokenKey)
	s.client.SetToken("")
	s.set("", nil)
	if err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// UpdateProfile sends a partial update and replaces the cached user.
func (s *Store) UpdateProfile(ctx context.Context, req api.ProfileUpdate) (*api.User, error) {
	if !s.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	user, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}

// User returns a copy of the cached user, or nil when signed out.
func (s *Store) User() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the current token, empty when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin()
}

func (s *Store) adopt(ctx context.Context, resp *api.AuthResponse) (*api.User, error) {
	// Persist before the client sees the token; a failed write leaves both signed out.
	if err := s.kv.Set(ctx, storage.TokenKey, resp.Token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	s.client.SetToken(resp.Token)
	user := resp.User
	s.set(resp.Token, &user)
	return s.User(), nil
}

func (s *Store) discard(ctx context.Context) {
	if err := s.kv.Delete(ctx, storage.TokenKey); err != nil {
		log.Printf("ERROR: failed to remove stored token: %v", err)
	}
	s.client.SetToken("")
	s.set("", nil)
}

func (s *Store) set(token string, user *api.User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
}
