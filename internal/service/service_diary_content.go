// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pkms-go/diary-keeper/internal/container"
	"github.com/pkms-go/diary-keeper/internal/crypto"
	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/models"
)

// diaryContentService implements [DiaryContentService] on top of the
// session keys, an AEAD cipher and the container codec.
//
// Keys are fetched per call and wiped as soon as the call returns. A
// session that expires between two calls simply makes the next one fail
// with [ErrLocked].
type diaryContentService struct {
	keys   KeyProvider
	cipher crypto.Cipher

	// tempDir receives plaintext media copies for download.
	tempDir string

	logger *logger.Logger
}

// NewDiaryContentService builds a [DiaryContentService]. tempDir is created
// on first use.
func NewDiaryContentService(keys KeyProvider, cipher crypto.Cipher, tempDir string, logger *logger.Logger) DiaryContentService {
	return &diaryContentService{
		keys:    keys,
		cipher:  cipher,
		tempDir: tempDir,
		logger:  logger,
	}
}

func (s *diaryContentService) StoreEntry(ctx context.Context, userID int64, destPath string, content models.EntryContent) (container.WriteResult, error) {
	log := logger.FromContext(ctx)

	ext, err := normalizeExtension(content.Extension)
	if err != nil {
		return container.WriteResult{}, err
	}

	if !content.IsPreEncrypted() {
		return s.seal(ctx, userID, destPath, content.Plaintext, ext)
	}

	blob := content.Blob
	if len(blob.Nonce) != crypto.NonceSize || len(blob.Sealed) < crypto.TagSize {
		log.Error().
			Str("func", "diaryContentService.StoreEntry").
			Int("nonce_len", len(blob.Nonce)).
			Int("blob_len", len(blob.Sealed)).
			Msg("malformed pre-encrypted blob")
		return container.WriteResult{}, fmt.Errorf("%w: malformed encrypted blob", ErrInvalidDataProvided)
	}

	res, err := container.Write(destPath, blob.Nonce, blob.Sealed, ext)
	if err != nil {
		log.Err(err).Str("func", "diaryContentService.StoreEntry").Str("path", destPath).Msg("failed to write container")
		return container.WriteResult{}, contentError("write", destPath, err)
	}

	log.Debug().Str("path", res.Path).Int64("size", res.Size).Msg("pre-encrypted entry stored")
	return res, nil
}

func (s *diaryContentService) ReadEntry(ctx context.Context, userID int64, path string) ([]byte, error) {
	plaintext, _, err := s.open(ctx, userID, path)
	return plaintext, err
}

func (s *diaryContentService) ReadEntryBlob(ctx context.Context, path string) (models.EncryptedBlob, error) {
	header, body, err := container.ReadFile(path)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "diaryContentService.ReadEntryBlob").
			Str("path", path).
			Msg("failed to read container")
		return models.EncryptedBlob{}, contentError("read", path, err)
	}

	return models.EncryptedBlob{
		Nonce:  header.Nonce,
		Sealed: append(body, header.Tag...),
	}, nil
}

func (s *diaryContentService) EncryptMedia(ctx context.Context, userID int64, destPath string, raw []byte, extension string) (container.WriteResult, error) {
	ext, err := normalizeExtension(extension)
	if err != nil {
		return container.WriteResult{}, err
	}

	return s.seal(ctx, userID, destPath, raw, ext)
}

func (s *diaryContentService) DecryptMedia(ctx context.Context, userID int64, path string) (models.DecryptedMedia, error) {
	plaintext, header, err := s.open(ctx, userID, path)
	if err != nil {
		return models.DecryptedMedia{}, err
	}

	return models.DecryptedMedia{Data: plaintext, Extension: header.Extension}, nil
}

func (s *diaryContentService) DecryptMediaToTemp(ctx context.Context, userID int64, path string) (string, func(), error) {
	log := logger.FromContext(ctx)

	media, err := s.DecryptMedia(ctx, userID, path)
	if err != nil {
		return "", nil, err
	}
	defer crypto.Wipe(media.Data)

	if err = os.MkdirAll(s.tempDir, 0o700); err != nil {
		return "", nil, &StorageError{Op: "mkdir", Path: s.tempDir, Err: err}
	}

	pattern := "diary_media_*"
	if media.Extension != "" {
		pattern += "." + media.Extension
	}
	f, err := os.CreateTemp(s.tempDir, pattern)
	if err != nil {
		return "", nil, &StorageError{Op: "create temp", Path: s.tempDir, Err: err}
	}
	tempPath := f.Name()

	cleanup := func() {
		if rmErr := os.Remove(tempPath); rmErr != nil && !isMissingFile(rmErr) {
			log.Err(rmErr).Str("path", tempPath).Msg("failed to remove temporary media file")
		}
	}

	_, err = f.Write(media.Data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return "", nil, &StorageError{Op: "write temp", Path: tempPath, Err: err}
	}

	return tempPath, cleanup, nil
}

func (s *diaryContentService) RemoveContent(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	err := os.Remove(path)
	switch {
	case err == nil:
		logger.FromContext(ctx).Debug().Str("path", path).Msg("container removed")
		return nil
	case isMissingFile(err):
		logger.FromContext(ctx).Warn().Str("path", path).Msg("container already missing")
		return nil
	default:
		return &StorageError{Op: "remove", Path: path, Err: err}
	}
}

// seal encrypts plaintext with a fresh nonce under the session key of
// userID and writes the container.
func (s *diaryContentService) seal(ctx context.Context, userID int64, destPath string, plaintext []byte, ext string) (container.WriteResult, error) {
	log := logger.FromContext(ctx)

	key, err := s.key(userID)
	if err != nil {
		return container.WriteResult{}, err
	}
	defer crypto.Wipe(key)

	nonce, err := crypto.NewNonce()
	if err != nil {
		log.Err(err).Str("func", "diaryContentService.seal").Msg("failed to generate nonce")
		return container.WriteResult{}, err
	}

	ciphertext, tag, err := s.cipher.Encrypt(key, nonce, plaintext)
	if err != nil {
		log.Err(err).Str("func", "diaryContentService.seal").Msg("encryption failed")
		return container.WriteResult{}, fmt.Errorf("encrypt payload: %w", err)
	}

	res, err := container.Write(destPath, nonce, append(ciphertext, tag...), ext)
	if err != nil {
		log.Err(err).Str("func", "diaryContentService.seal").Str("path", destPath).Msg("failed to write container")
		return container.WriteResult{}, contentError("write", destPath, err)
	}

	log.Debug().Str("path", res.Path).Int64("size", res.Size).Msg("payload encrypted and stored")
	return res, nil
}

// open reads and decrypts the container at path with the session key of userID.
func (s *diaryContentService) open(ctx context.Context, userID int64, path string) ([]byte, container.Header, error) {
	log := logger.FromContext(ctx)

	key, err := s.key(userID)
	if err != nil {
		return nil, container.Header{}, err
	}
	defer crypto.Wipe(key)

	header, body, err := container.ReadFile(path)
	if err != nil {
		log.Err(err).Str("func", "diaryContentService.open").Str("path", path).Msg("failed to read container")
		return nil, container.Header{}, contentError("read", path, err)
	}

	plaintext, err := s.cipher.Decrypt(key, header.Nonce, body, header.Tag)
	if err != nil {
		log.Err(err).Str("func", "diaryContentService.open").Str("path", path).Msg("failed to decrypt container")
		if errors.Is(err, crypto.ErrIntegrity) {
			return nil, container.Header{}, err
		}
		return nil, container.Header{}, fmt.Errorf("decrypt payload: %w", err)
	}

	return plaintext, header, nil
}

func (s *diaryContentService) key(userID int64) ([]byte, error) {
	key, ok := s.keys.Key(userID)
	if !ok {
		return nil, ErrLocked
	}
	return key, nil
}

// normalizeExtension lowercases ext and strips a leading dot.
func normalizeExtension(ext string) (string, error) {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if len(ext) > container.MaxExtensionLen {
		return "", fmt.Errorf("%w: extension longer than %d bytes", ErrInvalidDataProvided, container.MaxExtensionLen)
	}
	return ext, nil
}
