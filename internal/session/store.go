// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps unlocked diary keys in memory between an unlock and
// the matching lock, expiry or shutdown.
//
// A [Store] holds at most one key per user. Keys are zeroed before an entry
// is dropped for any reason. The [Janitor] periodically evicts expired
// entries nobody asked for again; correctness never depends on it because
// [Store.Key] enforces expiry itself.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pkms-go/diary-keeper/internal/crypto"
	"github.com/pkms-go/diary-keeper/internal/logger"
)

// DefaultTimeout is the lifetime of an unlocked diary session.
const DefaultTimeout = 1800 * time.Second

// entry is the in-memory state of one unlocked diary.
type entry struct {
	key       []byte
	createdAt time.Time
	expiresAt time.Time
}

// Info describes an unlocked session without exposing its key.
type Info struct {
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store is the process-wide table of unlocked diary keys. It is safe for
// concurrent use. The mutex only guards map operations; password
// verification and key derivation run outside of it.
type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry

	hasher  crypto.PasswordHasher
	timeout time.Duration
	now     func() time.Time
	logger  *logger.Logger
}

// Option configures a [Store].
type Option func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithTimeout overrides [DefaultTimeout]. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Store) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithLogger attaches a logger for session lifecycle events.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore constructs an empty [Store] that verifies unlock attempts with hasher.
func NewStore(hasher crypto.PasswordHasher, opts ...Option) *Store {
	s := &Store{
		entries: make(map[int64]*entry),
		hasher:  hasher,
		timeout: DefaultTimeout,
		now:     time.Now,
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Timeout returns the configured session lifetime.
func (s *Store) Timeout() time.Duration {
	return s.timeout
}

// Unlock verifies password against passwordHash and installs a fresh session
// for userID, replacing (never extending) any existing one. The replaced key
// is zeroed.
//
// Returns [ErrAuthentication] when the password does not match.
func (s *Store) Unlock(userID int64, password, passwordHash string) (Info, error) {
	if err := s.hasher.Verify(password, passwordHash); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			s.logger.Warn().Int64("user_id", userID).Msg("diary unlock rejected: wrong password")
			return Info{}, ErrAuthentication
		}
		return Info{}, fmt.Errorf("verify diary password: %w", err)
	}

	key := crypto.DeriveKey(password)
	now := s.now()
	e := &entry{
		key:       key,
		createdAt: now,
		expiresAt: now.Add(s.timeout),
	}

	s.mu.Lock()
	if old, ok := s.entries[userID]; ok {
		crypto.Wipe(old.key)
	}
	s.entries[userID] = e
	s.mu.Unlock()

	s.logger.Info().
		Int64("user_id", userID).
		Dur("expires_in", s.timeout).
		Msg("diary session created")

	return Info{CreatedAt: e.createdAt, ExpiresAt: e.expiresAt}, nil
}

// Key returns a copy of the unlocked key for userID. An expired entry is
// evicted on the spot and reported as absent, whether or not the janitor has
// run. The caller owns the copy and should [crypto.Wipe] it after use.
func (s *Store) Key(userID int64) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(userID)
	if !ok {
		return nil, false
	}

	key := make([]byte, len(e.key))
	copy(key, e.key)
	return key, true
}

// Info returns the timestamps of the unlocked session for userID, applying
// the same lazy expiry as [Store.Key].
func (s *Store) Info(userID int64) (Info, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(userID)
	if !ok {
		return Info{}, false
	}
	return Info{CreatedAt: e.createdAt, ExpiresAt: e.expiresAt}, true
}

// IsUnlocked reports whether userID currently has a valid session.
func (s *Store) IsUnlocked(userID int64) bool {
	_, ok := s.Info(userID)
	return ok
}

// Lock zeroes and removes the session for userID. It is a no-op when the
// diary is already locked.
func (s *Store) Lock(userID int64) {
	s.mu.Lock()
	removed := s.remove(userID)
	s.mu.Unlock()

	if removed {
		s.logger.Info().Int64("user_id", userID).Msg("diary session cleared")
	}
}

// Sweep evicts every session whose expiry has passed and returns how many
// were removed.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for userID, e := range s.entries {
		if now.After(e.expiresAt) {
			s.remove(userID)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of sessions currently held, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close zeroes and drops every session. Used at process shutdown.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID := range s.entries {
		s.remove(userID)
	}
}

// live returns the entry for userID if it has not expired, evicting it
// otherwise. Must be called with s.mu held.
func (s *Store) live(userID int64) (*entry, bool) {
	e, ok := s.entries[userID]
	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		s.remove(userID)
		s.logger.Info().Int64("user_id", userID).Msg("diary session expired")
		return nil, false
	}
	return e, true
}

// remove zeroes and deletes the entry for userID. Must be called with s.mu held.
func (s *Store) remove(userID int64) bool {
	e, ok := s.entries[userID]
	if !ok {
		return false
	}
	crypto.Wipe(e.key)
	e.key = nil
	delete(s.entries, userID)
	return true
}
