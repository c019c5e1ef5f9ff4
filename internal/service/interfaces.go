// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/pkms-go/diary-keeper/internal/container"
	"github.com/pkms-go/diary-keeper/internal/session"
	"github.com/pkms-go/diary-keeper/models"
)

// KeyProvider hands out the diary key of an unlocked session.
type KeyProvider interface {
	// Key returns a copy of the key, or false when the diary is locked.
	Key(userID int64) ([]byte, bool)
}

// SessionManager is the part of [session.Store] the services depend on.
type SessionManager interface {
	KeyProvider
	Unlock(userID int64, password, passwordHash string) (session.Info, error)
	Lock(userID int64)
	Info(userID int64) (session.Info, bool)
}

// DiaryContentService moves diary payloads between memory and encrypted
// containers on disk. Callers choose the destination path; the service
// never touches the database.
type DiaryContentService interface {
	// StoreEntry writes content to destPath. Plaintext is encrypted with the
	// session key of userID and needs an unlocked diary; a pre-encrypted
	// blob is written as is.
	StoreEntry(ctx context.Context, userID int64, destPath string, content models.EntryContent) (container.WriteResult, error)

	// ReadEntry decrypts the container at path with the session key.
	ReadEntry(ctx context.Context, userID int64, path string) ([]byte, error)

	// ReadEntryBlob returns the nonce and ciphertext||tag of the container
	// at path without decrypting it.
	ReadEntryBlob(ctx context.Context, path string) (models.EncryptedBlob, error)

	// EncryptMedia seals raw with the session key and writes it to destPath.
	EncryptMedia(ctx context.Context, userID int64, destPath string, raw []byte, extension string) (container.WriteResult, error)

	// DecryptMedia returns the plaintext and original extension of a media container.
	DecryptMedia(ctx context.Context, userID int64, path string) (models.DecryptedMedia, error)

	// DecryptMediaToTemp decrypts a media container into a temporary file.
	// The returned cleanup removes the file and must always be called.
	DecryptMediaToTemp(ctx context.Context, userID int64, path string) (tempPath string, cleanup func(), err error)

	// RemoveContent deletes the container at path. A missing file is not an error.
	RemoveContent(ctx context.Context, path string) error
}

// EncryptionService manages the diary password and unlocked sessions.
type EncryptionService interface {
	Setup(ctx context.Context, userID int64, req models.EncryptionSetupRequest) error
	Unlock(ctx context.Context, userID int64, password string) (models.EncryptionStatus, error)
	Lock(ctx context.Context, userID int64)
	Status(ctx context.Context, userID int64) (models.EncryptionStatus, error)
	Hint(ctx context.Context, userID int64) (models.HintResponse, error)
}

// DiaryService manages diary entries and their media, keeping the database
// records and the encrypted containers in step.
type DiaryService interface {
	CreateEntry(ctx context.Context, req models.DiaryEntryRequest) (models.DiaryEntryResponse, error)
	// GetEntry returns the entry with its blob, or with decrypted content
	// when decrypt is set.
	GetEntry(ctx context.Context, userID int64, ref models.EntryRef, decrypt bool) (models.DiaryEntryResponse, error)
	ListEntries(ctx context.Context, filter models.DiaryEntryFilter) ([]models.DiaryEntry, error)
	UpdateEntry(ctx context.Context, ref models.EntryRef, req models.DiaryEntryRequest) (models.DiaryEntryResponse, error)
	DeleteEntry(ctx context.Context, userID int64, ref models.EntryRef) error

	CommitMedia(ctx context.Context, req models.MediaCommitRequest) (models.DiaryMedia, error)
	ListMedia(ctx context.Context, userID, entryID int64) ([]models.DiaryMedia, error)
	// DownloadMedia decrypts a media item into a temporary file. cleanup
	// removes it and must be called once the file has been served.
	DownloadMedia(ctx context.Context, userID, mediaID int64) (media models.DiaryMedia, tempPath string, cleanup func(), err error)
	DeleteMedia(ctx context.Context, userID, mediaID int64) error
}

// DiaryServiceWrapper decorates a [DiaryService], for example with input
// validation.
type DiaryServiceWrapper interface {
	Wrap(DiaryService) DiaryService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthService issues and verifies the bearer tokens carrying the user id.
type AuthService interface {
	CreateToken(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
