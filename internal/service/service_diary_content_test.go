// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pkms-go/diary-keeper/internal/container"
	"github.com/pkms-go/diary-keeper/internal/crypto"
	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/internal/mock"
	"github.com/pkms-go/diary-keeper/models"
)

func newContentFixture(t *testing.T) (DiaryContentService, *sessionFixture, string) {
	t.Helper()
	sessions := newSessionFixture(t)
	dir := t.TempDir()

	svc := NewDiaryContentService(sessions.store, crypto.NewCipher(), filepath.Join(dir, "tmp"), logger.Nop())
	return svc, sessions, dir
}

func plaintext(s string) models.EntryContent {
	return models.EntryContent{Plaintext: []byte(s)}
}

// ─────────────────────────────────────────────
// StoreEntry / ReadEntry
// ─────────────────────────────────────────────

func TestContent_HelloDiaryScenario(t *testing.T) {
	svc, sessions, dir := newContentFixture(t)
	ctx := context.Background()
	path := filepath.Join(dir, "diary_hello.dat")

	sessions.unlock(t, 1)

	res, err := svc.StoreEntry(ctx, 1, path, plaintext("hello diary"))
	require.NoError(t, err)
	assert.Equal(t, path, res.Path)
	assert.Equal(t, int64(1+12+16+11), res.Size)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(40), info.Size())

	for i := 0; i < 3; i++ {
		hash, err := container.HashFile(path)
		require.NoError(t, err)
		assert.Equal(t, res.FileHash, hash)
	}

	got, err := svc.ReadEntry(ctx, 1, path)
	require.NoError(t, err)
	assert.Equal(t, "hello diary", string(got))

	sessions.store.Lock(1)

	_, err = svc.ReadEntry(ctx, 1, path)
	require.ErrorIs(t, err, ErrLocked)
}

func TestContent_RewriteUsesFreshNonce(t *testing.T) {
	svc, sessions, dir := newContentFixture(t)
	ctx := context.Background()
	path := filepath.Join(dir, "entry.dat")
	sessions.unlock(t, 1)

	_, err := svc.StoreEntry(ctx, 1, path, plaintext("same text"))
	require.NoError(t, err)
	first, err := container.ReadHeader(path)
	require.NoError(t, err)

	_, err = svc.StoreEntry(ctx, 1, path, plaintext("same text"))
	require.NoError(t, err)
	second, err := container.ReadHeader(path)
	require.NoError(t, err)

	assert.NotEqual(t, first.Nonce, second.Nonce)
}

func TestContent_StoreEntryLocked(t *testing.T) {
	svc, _, dir := newContentFixture(t)
	path := filepath.Join(dir, "entry.dat")

	_, err := svc.StoreEntry(context.Background(), 1, path, plaintext("secret"))
	require.ErrorIs(t, err, ErrLocked)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, fs.ErrNotExist), "no file may be written while locked")
}

func TestContent_TamperedContainer(t *testing.T) {
	svc, sessions, dir := newContentFixture(t)
	ctx := context.Background()
	path := filepath.Join(dir, "entry.dat")
	sessions.unlock(t, 1)

	_, err := svc.StoreEntry(ctx, 1, path, plaintext("hello diary"))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// every byte after the nonce belongs to the tag or the ciphertext
	for _, offset := range []int{1 + 12, 1 + 12 + 15, len(raw) - 1} {
		tampered := append([]byte(nil), raw...)
		tampered[offset] ^= 0x01
		require.NoError(t, os.WriteFile(path, tampered, 0o600))

		_, err = svc.ReadEntry(ctx, 1, path)
		require.ErrorIs(t, err, crypto.ErrIntegrity, "offset %d", offset)
		assert.NotErrorIs(t, err, ErrStorage)
	}
}

func TestContent_WrongKeyIsIntegrityError(t *testing.T) {
	svc, sessions, dir := newContentFixture(t)
	ctx := context.Background()
	path := filepath.Join(dir, "entry.dat")

	other, err := sessions.hasher.Hash("another password")
	require.NoError(t, err)
	_, err = sessions.store.Unlock(2, "another password", other)
	require.NoError(t, err)
	sessions.unlock(t, 1)

	_, err = svc.StoreEntry(ctx, 1, path, plaintext("mine"))
	require.NoError(t, err)

	_, err = svc.ReadEntry(ctx, 2, path)
	require.ErrorIs(t, err, crypto.ErrIntegrity)
}

func TestContent_TruncatedContainer(t *testing.T) {
	svc, sessions, dir := newContentFixture(t)
	path := filepath.Join(dir, "short.dat")
	sessions.unlock(t, 1)

	require.NoError(t, os.WriteFile(path, make([]byte, container.MinSize-1), 0o600))

	_, err := svc.ReadEntry(context.Background(), 1, path)
	require.ErrorIs(t, err, container.ErrInvalidContainer)
	assert.NotErrorIs(t, err, crypto.ErrIntegrity)
}

func TestContent_MissingFileIsStorageError(t *testing.T) {
	svc, sessions, dir := newContentFixture(t)
	sessions.unlock(t, 1)
	path := filepath.Join(dir, "missing.dat")

	_, err := svc.ReadEntry(context.Background(), 1, path)
	require.ErrorIs(t, err, ErrStorage)
	require.ErrorIs(t, err, fs.ErrNotExist)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, path, storageErr.Path)
	assert.Equal(t, "read", storageErr.Op)
}

func TestContent_ExpiredSessionIsLocked(t *testing.T) {
	svc, sessions, dir := newContentFixture(t)
	ctx := context.Background()
	path := filepath.Join(dir, "entry.dat")
	sessions.unlock(t, 1)

	_, err := svc.StoreEntry(ctx, 1, path, plaintext("x"))
	require.NoError(t, err)

	sessions.clock.Advance(sessions.store.Timeout() + 1)

	_, err = svc.ReadEntry(ctx, 1, path)
	require.ErrorIs(t, err, ErrLocked)
}

func TestContent_EncryptFailureLeavesNoFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := newSessionFixture(t)
	sessions.unlock(t, 1)

	cipher := mock.NewMockCipher(ctrl)
	cipher.EXPECT().Encrypt(gomock.Any(), gomock.Any(), []byte("x")).Return(nil, nil, errors.New("hardware fault"))

	dir := t.TempDir()
	svc := NewDiaryContentService(sessions.store, cipher, dir, logger.Nop())
	path := filepath.Join(dir, "entry.dat")

	_, err := svc.StoreEntry(context.Background(), 1, path, plaintext("x"))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// ─────────────────────────────────────────────
// Pre-encrypted blobs
// ─────────────────────────────────────────────

func sealWith(t *testing.T, password, text string) *models.EncryptedBlob {
	t.Helper()
	nonce, err := crypto.NewNonce()
	require.NoError(t, err)

	ct, tag, err := crypto.NewCipher().Encrypt(crypto.DeriveKey(password), nonce, []byte(text))
	require.NoError(t, err)

	return &models.EncryptedBlob{Nonce: nonce, Sealed: append(ct, tag...)}
}

func TestContent_PreEncryptedBlobNeedsNoSession(t *testing.T) {
	svc, sessions, dir := newContentFixture(t)
	ctx := context.Background()
	path := filepath.Join(dir, "entry.dat")

	blob := sealWith(t, testPassword, "client side")

	res, err := svc.StoreEntry(ctx, 1, path, models.EntryContent{Blob: blob})
	require.NoError(t, err)
	assert.Equal(t, int64(container.MinSize+len("client side")), res.Size)

	got, err := svc.ReadEntryBlob(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, blob.Nonce, got.Nonce)
	assert.Equal(t, blob.Sealed, got.Sealed)

	sessions.unlock(t, 1)
	text, err := svc.ReadEntry(ctx, 1, path)
	require.NoError(t, err)
	assert.Equal(t, "client side", string(text))
}

func TestContent_MalformedBlob(t *testing.T) {
	svc, _, dir := newContentFixture(t)
	path := filepath.Join(dir, "entry.dat")

	blobs := []*models.EncryptedBlob{
		{Nonce: make([]byte, 8), Sealed: make([]byte, 32)},
		{Nonce: make([]byte, 12), Sealed: make([]byte, 15)},
	}
	for _, blob := range blobs {
		_, err := svc.StoreEntry(context.Background(), 1, path, models.EntryContent{Blob: blob})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestContent_ExtensionTooLong(t *testing.T) {
	svc, sessions, dir := newContentFixture(t)
	sessions.unlock(t, 1)

	_, err := svc.EncryptMedia(context.Background(), 1, filepath.Join(dir, "m.dat"), []byte("x"), strings.Repeat("a", 256))
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// Media
// ─────────────────────────────────────────────

func TestContent_MediaRoundTrip(t *testing.T) {
	svc, sessions, dir := newContentFixture(t)
	ctx := context.Background()
	path := filepath.Join(dir, "media", "2026-03-14_1_1.dat")
	raw := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00}

	_, err := svc.EncryptMedia(ctx, 1, path, raw, ".JPG")
	require.ErrorIs(t, err, ErrLocked)

	sessions.unlock(t, 1)
	_, err = svc.EncryptMedia(ctx, 1, path, raw, ".JPG")
	require.NoError(t, err)

	header, err := container.ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, "jpg", header.Extension)

	media, err := svc.DecryptMedia(ctx, 1, path)
	require.NoError(t, err)
	assert.Equal(t, raw, media.Data)
	assert.Equal(t, "jpg", media.Extension)
}

func TestContent_DecryptMediaToTemp(t *testing.T) {
	svc, sessions, dir := newContentFixture(t)
	ctx := context.Background()
	path := filepath.Join(dir, "voice.dat")
	sessions.unlock(t, 1)

	_, err := svc.EncryptMedia(ctx, 1, path, []byte("ogg bytes"), "ogg")
	require.NoError(t, err)

	tempPath, cleanup, err := svc.DecryptMediaToTemp(ctx, 1, path)
	require.NoError(t, err)
	require.NotNil(t, cleanup)

	assert.Equal(t, filepath.Join(dir, "tmp"), filepath.Dir(tempPath))
	assert.True(t, strings.HasSuffix(tempPath, ".ogg"))

	data, err := os.ReadFile(tempPath)
	require.NoError(t, err)
	assert.Equal(t, "ogg bytes", string(data))

	cleanup()
	_, err = os.Stat(tempPath)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	// a second call is harmless
	cleanup()
}

func TestContent_DecryptMediaToTempLocked(t *testing.T) {
	svc, _, dir := newContentFixture(t)

	_, cleanup, err := svc.DecryptMediaToTemp(context.Background(), 1, filepath.Join(dir, "x.dat"))
	require.ErrorIs(t, err, ErrLocked)
	assert.Nil(t, cleanup)
}

// ─────────────────────────────────────────────
// RemoveContent
// ─────────────────────────────────────────────

func TestContent_RemoveContent(t *testing.T) {
	svc, _, dir := newContentFixture(t)
	ctx := context.Background()
	path := filepath.Join(dir, "gone.dat")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	require.NoError(t, svc.RemoveContent(ctx, path))
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	assert.NoError(t, svc.RemoveContent(ctx, path), "missing file is tolerated")
	assert.NoError(t, svc.RemoveContent(ctx, ""))
}
