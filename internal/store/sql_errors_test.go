package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"wrapped deadlock", fmt.Errorf("exec: %w", pgError(pgerrcode.DeadlockDetected)), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
		{"server starting", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"too many connections", pgError(pgerrcode.TooManyConnections), Retryable},
		{"check violation", pgError(pgerrcode.CheckViolation), NonRetryable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrap: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
}

func TestConstraintViolationHelpers(t *testing.T) {
	assert.True(t, isUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, isUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))

	assert.True(t, isForeignKeyViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.True(t, isForeignKeyViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}))
	assert.False(t, isForeignKeyViolation(errors.New("boom")))
}

func TestDB_IsRetryable(t *testing.T) {
	db, _ := newTestDB(t)
	assert.True(t, db.IsRetryable(pgError(pgerrcode.DeadlockDetected)))
	assert.False(t, db.IsRetryable(pgError(pgerrcode.UniqueViolation)))
}

func TestScanTime(t *testing.T) {
	var got time.Time

	require.NoError(t, scanTime{&got}.Scan("2026-03-14 09:30:00"))
	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), got)

	require.NoError(t, scanTime{&got}.Scan([]byte("2026-03-14")))
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), got)

	now := time.Now()
	require.NoError(t, scanTime{&got}.Scan(now))
	assert.Equal(t, now, got)

	require.NoError(t, scanTime{&got}.Scan(nil))
	assert.True(t, got.IsZero())

	require.Error(t, scanTime{&got}.Scan("yesterday"))
	require.Error(t, scanTime{&got}.Scan(42))
}
