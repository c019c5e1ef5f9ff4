package service

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pkms-go/diary-keeper/internal/crypto"
	"github.com/pkms-go/diary-keeper/internal/session"
)

const testPassword = "correct-horse"

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// sessionFixture is a session store with a known password hash.
type sessionFixture struct {
	store  *session.Store
	hasher crypto.PasswordHasher
	hash   string
	clock  *fakeClock
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	hasher := crypto.NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash(testPassword)
	require.NoError(t, err)

	clock := newFakeClock()
	return &sessionFixture{
		store:  session.NewStore(hasher, session.WithClock(clock.Now)),
		hasher: hasher,
		hash:   hash,
		clock:  clock,
	}
}

func (f *sessionFixture) unlock(t *testing.T, userID int64) {
	t.Helper()
	_, err := f.store.Unlock(userID, testPassword, f.hash)
	require.NoError(t, err)
}

// fixedIDs hands out predetermined ids in order.
type fixedIDs struct {
	ids []string
}

func (f *fixedIDs) Generate() string {
	id := f.ids[0]
	f.ids = f.ids[1:]
	return id
}

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	u, err := uuid.Parse(s)
	require.NoError(t, err)
	return u
}
