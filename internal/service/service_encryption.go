// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pkms-go/diary-keeper/internal/crypto"
	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/internal/store"
	"github.com/pkms-go/diary-keeper/internal/validators"
	"github.com/pkms-go/diary-keeper/models"
)

// encryptionService is the concrete implementation of [EncryptionService].
// The password hash lives in the database, the derived key only in the
// session store.
type encryptionService struct {
	passwords store.DiaryPasswordRepository
	sessions  SessionManager
	hasher    crypto.PasswordHasher
	validator validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

// NewEncryptionService constructs an [EncryptionService].
func NewEncryptionService(
	passwords store.DiaryPasswordRepository,
	sessions SessionManager,
	hasher crypto.PasswordHasher,
	logger *logger.Logger,
) EncryptionService {
	return &encryptionService{
		passwords: passwords,
		sessions:  sessions,
		hasher:    hasher,
		validator: validators.NewDiaryValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Setup stores the bcrypt hash of the diary password and its hint.
//
// Returns:
//   - ErrInvalidDataProvided if the password is empty or the hint too long.
//   - ErrEncryptionAlreadySetup if the user already has a diary password.
func (e *encryptionService) Setup(ctx context.Context, userID int64, req models.EncryptionSetupRequest) error {
	log := logger.FromContext(ctx)

	if err := e.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("invalid diary setup request")
		return invalid(err)
	}

	_, err := e.passwords.GetPasswordRecord(ctx, userID)
	switch {
	case err == nil:
		return ErrEncryptionAlreadySetup
	case !errors.Is(err, store.ErrPasswordRecordNotFound):
		return fmt.Errorf("read diary password record: %w", err)
	}

	hash, err := e.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to hash diary password")
		return fmt.Errorf("hash diary password: %w", err)
	}

	_, err = e.passwords.SavePasswordRecord(ctx, models.DiaryPasswordRecord{
		UserID:       userID,
		PasswordHash: hash,
		Hint:         req.Hint,
	})
	if err != nil {
		return fmt.Errorf("save diary password record: %w", err)
	}

	log.Info().Int64("user_id", userID).Msg("diary encryption set up")
	return nil
}

// Unlock verifies password and opens a session. A second unlock replaces
// the running session.
//
// Returns:
//   - ErrEncryptionNotSetup if no diary password was ever stored.
//   - ErrAuthentication if password is wrong.
func (e *encryptionService) Unlock(ctx context.Context, userID int64, password string) (models.EncryptionStatus, error) {
	log := logger.FromContext(ctx)

	record, err := e.passwords.GetPasswordRecord(ctx, userID)
	if errors.Is(err, store.ErrPasswordRecordNotFound) {
		log.Warn().Int64("user_id", userID).Msg("unlock attempted before setup")
		return models.EncryptionStatus{}, ErrEncryptionNotSetup
	}
	if err != nil {
		return models.EncryptionStatus{}, fmt.Errorf("read diary password record: %w", err)
	}

	info, err := e.sessions.Unlock(userID, password, record.PasswordHash)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("diary unlock failed")
		return models.EncryptionStatus{}, err
	}

	return e.status(info.CreatedAt, info.ExpiresAt), nil
}

func (e *encryptionService) Lock(ctx context.Context, userID int64) {
	e.sessions.Lock(userID)
	logger.FromContext(ctx).Info().Int64("user_id", userID).Msg("diary locked")
}

// Status never fails for a user without setup; it reports IsSetup=false.
func (e *encryptionService) Status(ctx context.Context, userID int64) (models.EncryptionStatus, error) {
	_, err := e.passwords.GetPasswordRecord(ctx, userID)
	if errors.Is(err, store.ErrPasswordRecordNotFound) {
		return models.EncryptionStatus{}, nil
	}
	if err != nil {
		return models.EncryptionStatus{}, fmt.Errorf("read diary password record: %w", err)
	}

	info, ok := e.sessions.Info(userID)
	if !ok {
		return models.EncryptionStatus{IsSetup: true}, nil
	}

	return e.status(info.CreatedAt, info.ExpiresAt), nil
}

// Hint returns the stored hint, or an empty one when none was set.
func (e *encryptionService) Hint(ctx context.Context, userID int64) (models.HintResponse, error) {
	record, err := e.passwords.GetPasswordRecord(ctx, userID)
	if errors.Is(err, store.ErrPasswordRecordNotFound) {
		return models.HintResponse{}, nil
	}
	if err != nil {
		return models.HintResponse{}, fmt.Errorf("read diary password record: %w", err)
	}

	return models.HintResponse{Hint: record.Hint}, nil
}

func (e *encryptionService) status(createdAt, expiresAt time.Time) models.EncryptionStatus {
	remaining := int64(expiresAt.Sub(e.now()) / time.Second)
	if remaining < 0 {
		remaining = 0
	}

	return models.EncryptionStatus{
		IsSetup:          true,
		IsUnlocked:       true,
		SessionExpiresIn: remaining,
		SessionCreatedAt: &createdAt,
	}
}
