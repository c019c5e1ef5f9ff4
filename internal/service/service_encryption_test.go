package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/internal/mock"
	"github.com/pkms-go/diary-keeper/internal/store"
	"github.com/pkms-go/diary-keeper/internal/validators"
	"github.com/pkms-go/diary-keeper/models"
)

func newEncryptionFixture(t *testing.T) (*encryptionService, *mock.MockDiaryPasswordRepository, *sessionFixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	passwords := mock.NewMockDiaryPasswordRepository(ctrl)
	sessions := newSessionFixture(t)

	svc := NewEncryptionService(passwords, sessions.store, sessions.hasher, logger.Nop()).(*encryptionService)
	svc.now = sessions.clock.Now
	return svc, passwords, sessions
}

func TestEncryption_Setup(t *testing.T) {
	svc, passwords, sessions := newEncryptionFixture(t)
	ctx := context.Background()

	passwords.EXPECT().GetPasswordRecord(ctx, int64(1)).Return(models.DiaryPasswordRecord{}, store.ErrPasswordRecordNotFound)
	passwords.EXPECT().SavePasswordRecord(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.DiaryPasswordRecord) (models.DiaryPasswordRecord, error) {
			assert.Equal(t, int64(1), r.UserID)
			assert.Equal(t, "horse", r.Hint)
			assert.NotEqual(t, testPassword, r.PasswordHash)
			assert.NoError(t, sessions.hasher.Verify(testPassword, r.PasswordHash))
			return r, nil
		})

	err := svc.Setup(ctx, 1, models.EncryptionSetupRequest{Password: testPassword, Hint: "horse"})
	require.NoError(t, err)
}

func TestEncryption_SetupErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty password", func(t *testing.T) {
		svc, _, _ := newEncryptionFixture(t)
		err := svc.Setup(ctx, 1, models.EncryptionSetupRequest{})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("hint too long", func(t *testing.T) {
		svc, _, _ := newEncryptionFixture(t)
		err := svc.Setup(ctx, 1, models.EncryptionSetupRequest{Password: "x", Hint: strings.Repeat("h", 256)})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
		require.ErrorIs(t, err, validators.ErrHintTooLong)
	})

	t.Run("already set up", func(t *testing.T) {
		svc, passwords, _ := newEncryptionFixture(t)
		passwords.EXPECT().GetPasswordRecord(ctx, int64(1)).Return(models.DiaryPasswordRecord{UserID: 1}, nil)

		err := svc.Setup(ctx, 1, models.EncryptionSetupRequest{Password: "x"})
		require.ErrorIs(t, err, ErrEncryptionAlreadySetup)
	})

	t.Run("lookup fails", func(t *testing.T) {
		svc, passwords, _ := newEncryptionFixture(t)
		passwords.EXPECT().GetPasswordRecord(ctx, int64(1)).Return(models.DiaryPasswordRecord{}, store.ErrExecutingQuery)

		err := svc.Setup(ctx, 1, models.EncryptionSetupRequest{Password: "x"})
		require.ErrorIs(t, err, store.ErrExecutingQuery)
	})

	t.Run("save fails", func(t *testing.T) {
		svc, passwords, _ := newEncryptionFixture(t)
		passwords.EXPECT().GetPasswordRecord(ctx, int64(1)).Return(models.DiaryPasswordRecord{}, store.ErrPasswordRecordNotFound)
		passwords.EXPECT().SavePasswordRecord(ctx, gomock.Any()).Return(models.DiaryPasswordRecord{}, store.ErrExecutingStatement)

		err := svc.Setup(ctx, 1, models.EncryptionSetupRequest{Password: "x"})
		require.ErrorIs(t, err, store.ErrExecutingStatement)
	})
}

func TestEncryption_UnlockAndStatus(t *testing.T) {
	svc, passwords, sessions := newEncryptionFixture(t)
	ctx := context.Background()
	record := models.DiaryPasswordRecord{UserID: 1, PasswordHash: sessions.hash}

	passwords.EXPECT().GetPasswordRecord(ctx, int64(1)).Return(record, nil).AnyTimes()

	status, err := svc.Status(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.EncryptionStatus{IsSetup: true}, status)

	status, err = svc.Unlock(ctx, 1, testPassword)
	require.NoError(t, err)
	assert.True(t, status.IsSetup)
	assert.True(t, status.IsUnlocked)
	assert.Equal(t, int64(1800), status.SessionExpiresIn)
	require.NotNil(t, status.SessionCreatedAt)
	assert.Equal(t, sessions.clock.Now(), *status.SessionCreatedAt)

	sessions.clock.Advance(10*time.Minute + 500*time.Millisecond)

	status, err = svc.Status(ctx, 1)
	require.NoError(t, err)
	assert.True(t, status.IsUnlocked)
	assert.Equal(t, int64(1199), status.SessionExpiresIn)

	svc.Lock(ctx, 1)

	status, err = svc.Status(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.EncryptionStatus{IsSetup: true}, status)
}

func TestEncryption_StatusExpires(t *testing.T) {
	svc, passwords, sessions := newEncryptionFixture(t)
	ctx := context.Background()
	passwords.EXPECT().GetPasswordRecord(ctx, int64(1)).
		Return(models.DiaryPasswordRecord{UserID: 1, PasswordHash: sessions.hash}, nil).AnyTimes()

	_, err := svc.Unlock(ctx, 1, testPassword)
	require.NoError(t, err)

	sessions.clock.Advance(30*time.Minute + time.Second)

	status, err := svc.Status(ctx, 1)
	require.NoError(t, err)
	assert.False(t, status.IsUnlocked)
	assert.Zero(t, status.SessionExpiresIn)
}

func TestEncryption_UnlockErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("not set up", func(t *testing.T) {
		svc, passwords, _ := newEncryptionFixture(t)
		passwords.EXPECT().GetPasswordRecord(ctx, int64(1)).Return(models.DiaryPasswordRecord{}, store.ErrPasswordRecordNotFound)

		_, err := svc.Unlock(ctx, 1, testPassword)
		require.ErrorIs(t, err, ErrEncryptionNotSetup)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, passwords, sessions := newEncryptionFixture(t)
		passwords.EXPECT().GetPasswordRecord(ctx, int64(1)).
			Return(models.DiaryPasswordRecord{UserID: 1, PasswordHash: sessions.hash}, nil)

		_, err := svc.Unlock(ctx, 1, "wrong")
		require.ErrorIs(t, err, ErrAuthentication)
		assert.False(t, sessions.store.IsUnlocked(1))
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, passwords, _ := newEncryptionFixture(t)
		dbErr := errors.New("connection reset")
		passwords.EXPECT().GetPasswordRecord(ctx, int64(1)).Return(models.DiaryPasswordRecord{}, dbErr)

		_, err := svc.Unlock(ctx, 1, testPassword)
		require.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrAuthentication)
	})
}

func TestEncryption_StatusNotSetup(t *testing.T) {
	svc, passwords, _ := newEncryptionFixture(t)
	ctx := context.Background()
	passwords.EXPECT().GetPasswordRecord(ctx, int64(7)).Return(models.DiaryPasswordRecord{}, store.ErrPasswordRecordNotFound)

	status, err := svc.Status(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, models.EncryptionStatus{}, status)
}

func TestEncryption_Hint(t *testing.T) {
	svc, passwords, _ := newEncryptionFixture(t)
	ctx := context.Background()

	passwords.EXPECT().GetPasswordRecord(ctx, int64(1)).Return(models.DiaryPasswordRecord{Hint: "first pet"}, nil)
	passwords.EXPECT().GetPasswordRecord(ctx, int64(2)).Return(models.DiaryPasswordRecord{}, store.ErrPasswordRecordNotFound)

	hint, err := svc.Hint(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "first pet", hint.Hint)

	hint, err = svc.Hint(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, hint.Hint)
}
