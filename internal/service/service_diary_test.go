// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pkms-go/diary-keeper/internal/crypto"
	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/internal/mock"
	"github.com/pkms-go/diary-keeper/internal/store"
	"github.com/pkms-go/diary-keeper/models"
)

const entryUUID = "0195d2a4-7f3e-7c11-9a00-3b1f2c4d5e6f"

type diaryFixture struct {
	svc      DiaryService
	entries  *mock.MockDiaryEntryRepository
	media    *mock.MockDiaryMediaRepository
	content  DiaryContentService
	sessions *sessionFixture
	layout   Layout
}

func newDiaryFixture(t *testing.T) *diaryFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	sessions := newSessionFixture(t)
	layout := NewLayout(t.TempDir())
	content := NewDiaryContentService(sessions.store, crypto.NewCipher(), layout.TempDir(), logger.Nop())
	entries := mock.NewMockDiaryEntryRepository(ctrl)
	media := mock.NewMockDiaryMediaRepository(ctrl)

	svc := NewDiaryService(entries, media, content, sessions.store, layout, &fixedIDs{ids: []string{entryUUID}}, logger.Nop())

	return &diaryFixture{
		svc:      svc,
		entries:  entries,
		media:    media,
		content:  content,
		sessions: sessions,
		layout:   layout,
	}
}

func fileExists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	require.ErrorIs(t, err, fs.ErrNotExist)
	return false
}

var entryDate = time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC)

// ─────────────────────────────────────────────
// Entries
// ─────────────────────────────────────────────

func TestDiary_CreateEntry(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	f.sessions.unlock(t, 1)
	path := f.layout.EntryPath(entryUUID)

	f.entries.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.DiaryEntry) (models.DiaryEntry, error) {
			assert.Equal(t, entryUUID, e.UUID)
			assert.Equal(t, int64(1), e.UserID)
			assert.Equal(t, path, e.ContentFilePath)
			assert.Len(t, e.FileHash, 64)
			assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), e.EntryDate)
			e.ID = 10
			return e, nil
		})

	resp, err := f.svc.CreateEntry(ctx, models.DiaryEntryRequest{
		UserID:    1,
		Title:     "Pi day",
		EntryDate: entryDate,
		Content:   "hello diary",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "hello diary", resp.Content)
	assert.Equal(t, "diary_"+entryUUID+".dat", filepath.Base(path))

	text, err := f.content.ReadEntry(ctx, 1, path)
	require.NoError(t, err)
	assert.Equal(t, "hello diary", string(text))
}

func TestDiary_CreateEntryLocked(t *testing.T) {
	f := newDiaryFixture(t)

	_, err := f.svc.CreateEntry(context.Background(), models.DiaryEntryRequest{UserID: 1, Content: "x"})
	require.ErrorIs(t, err, ErrLocked)
	assert.False(t, fileExists(t, f.layout.EntryPath(entryUUID)))
}

func TestDiary_CreateEntryInsertFailureRemovesFile(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	f.sessions.unlock(t, 1)

	f.entries.EXPECT().CreateEntry(ctx, gomock.Any()).Return(models.DiaryEntry{}, store.ErrEntryAlreadyExists)

	_, err := f.svc.CreateEntry(ctx, models.DiaryEntryRequest{UserID: 1, Content: "x", EntryDate: entryDate})
	require.ErrorIs(t, err, store.ErrEntryAlreadyExists)
	assert.False(t, fileExists(t, f.layout.EntryPath(entryUUID)))
}

func TestDiary_CreateEntryPreEncryptedWhileLocked(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	blob := sealWith(t, testPassword, "sealed on the client")

	f.entries.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.DiaryEntry) (models.DiaryEntry, error) {
			e.ID = 11
			return e, nil
		})

	resp, err := f.svc.CreateEntry(ctx, models.DiaryEntryRequest{UserID: 1, EntryDate: entryDate, Blob: blob})
	require.NoError(t, err)
	assert.Equal(t, blob, resp.Blob)
	assert.Empty(t, resp.Content)
}

func storedEntry(t *testing.T, f *diaryFixture, text string) models.DiaryEntry {
	t.Helper()
	path := f.layout.EntryPath(entryUUID)
	res, err := f.content.StoreEntry(context.Background(), 1, path, plaintext(text))
	require.NoError(t, err)

	return models.DiaryEntry{
		ID:              10,
		UUID:            entryUUID,
		UserID:          1,
		Title:           "Pi day",
		EntryDate:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		ContentFilePath: res.Path,
		FileHash:        res.FileHash,
	}
}

func TestDiary_GetEntry(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	f.sessions.unlock(t, 1)
	entry := storedEntry(t, f, "hello diary")
	ref := models.EntryRefByID(10)

	f.entries.EXPECT().GetEntry(ctx, int64(1), ref).Return(entry, nil).Times(3)

	resp, err := f.svc.GetEntry(ctx, 1, ref, true)
	require.NoError(t, err)
	assert.Equal(t, "hello diary", resp.Content)
	assert.Nil(t, resp.Blob)

	f.sessions.store.Lock(1)

	resp, err = f.svc.GetEntry(ctx, 1, ref, false)
	require.NoError(t, err)
	require.NotNil(t, resp.Blob)
	assert.Len(t, resp.Blob.Nonce, crypto.NonceSize)
	assert.Len(t, resp.Blob.Sealed, len("hello diary")+crypto.TagSize)

	plain, err := crypto.NewCipher().Decrypt(crypto.DeriveKey(testPassword), resp.Blob.Nonce,
		resp.Blob.Sealed[:len("hello diary")], resp.Blob.Sealed[len("hello diary"):])
	require.NoError(t, err)
	assert.Equal(t, "hello diary", string(plain))

	_, err = f.svc.GetEntry(ctx, 1, ref, true)
	require.ErrorIs(t, err, ErrLocked)
}

func TestDiary_GetEntryWithoutContent(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	ref := models.EntryRefByID(3)

	f.entries.EXPECT().GetEntry(ctx, int64(1), ref).Return(models.DiaryEntry{ID: 3, UserID: 1}, nil)

	resp, err := f.svc.GetEntry(ctx, 1, ref, true)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Empty(t, resp.Content)
	assert.Nil(t, resp.Blob)
}

func TestDiary_GetEntryNotFound(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	ref := models.EntryRefByID(99)

	f.entries.EXPECT().GetEntry(ctx, int64(1), ref).Return(models.DiaryEntry{}, store.ErrEntryNotFound)

	_, err := f.svc.GetEntry(ctx, 1, ref, false)
	require.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestDiary_ListEntries(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	filter := models.DiaryEntryFilter{UserID: 1, Limit: 5}

	_, err := f.svc.ListEntries(ctx, filter)
	require.ErrorIs(t, err, ErrLocked)

	f.sessions.unlock(t, 1)
	f.entries.EXPECT().ListEntries(ctx, filter).Return([]models.DiaryEntry{{ID: 1}, {ID: 2}}, nil)

	list, err := f.svc.ListEntries(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestDiary_UpdateEntry(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	f.sessions.unlock(t, 1)
	entry := storedEntry(t, f, "first draft")
	ref := models.EntryRefByUUID(mustUUID(t, entryUUID))

	f.entries.EXPECT().GetEntry(ctx, int64(1), ref).Return(entry, nil)
	f.entries.EXPECT().UpdateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.DiaryEntry) (models.DiaryEntry, error) {
			assert.Equal(t, entry.ContentFilePath, e.ContentFilePath)
			assert.NotEqual(t, entry.FileHash, e.FileHash)
			assert.Equal(t, "Second", e.Title)
			return e, nil
		})

	resp, err := f.svc.UpdateEntry(ctx, ref, models.DiaryEntryRequest{
		UserID:    1,
		Title:     "Second",
		EntryDate: entryDate,
		Content:   "final version",
	})
	require.NoError(t, err)
	assert.Equal(t, "final version", resp.Content)

	text, err := f.content.ReadEntry(ctx, 1, entry.ContentFilePath)
	require.NoError(t, err)
	assert.Equal(t, "final version", string(text))
}

func TestDiary_UpdateEntryLockedKeepsContent(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	f.sessions.unlock(t, 1)
	entry := storedEntry(t, f, "untouched")
	f.sessions.store.Lock(1)
	ref := models.EntryRefByID(entry.ID)

	f.entries.EXPECT().GetEntry(ctx, int64(1), ref).Return(entry, nil)

	_, err := f.svc.UpdateEntry(ctx, ref, models.DiaryEntryRequest{UserID: 1, Content: "new"})
	require.ErrorIs(t, err, ErrLocked)

	f.sessions.unlock(t, 1)
	text, err := f.content.ReadEntry(ctx, 1, entry.ContentFilePath)
	require.NoError(t, err)
	assert.Equal(t, "untouched", string(text))
}

func TestDiary_DeleteEntry(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	f.sessions.unlock(t, 1)
	entry := storedEntry(t, f, "bye")
	ref := models.EntryRefByID(entry.ID)

	mediaPath := f.layout.MediaPath(entry.EntryDate, entry.ID, 4)
	_, err := f.content.EncryptMedia(ctx, 1, mediaPath, []byte("img"), "png")
	require.NoError(t, err)

	gomock.InOrder(
		f.entries.EXPECT().GetEntry(ctx, int64(1), ref).Return(entry, nil),
		f.media.EXPECT().ListMedia(ctx, int64(1), entry.ID).Return([]models.DiaryMedia{
			{ID: 4, EntryID: entry.ID, FilePath: mediaPath},
			{ID: 5, EntryID: entry.ID, FilePath: filepath.Join(f.layout.MediaDir(), "already-gone.dat")},
		}, nil),
		f.entries.EXPECT().DeleteEntry(ctx, int64(1), entry.ID).Return(nil),
	)

	require.NoError(t, f.svc.DeleteEntry(ctx, 1, ref))
	assert.False(t, fileExists(t, entry.ContentFilePath))
	assert.False(t, fileExists(t, mediaPath))
}

func TestDiary_DeleteEntryLocked(t *testing.T) {
	f := newDiaryFixture(t)

	err := f.svc.DeleteEntry(context.Background(), 1, models.EntryRefByID(1))
	require.ErrorIs(t, err, ErrLocked)
}

// ─────────────────────────────────────────────
// Media
// ─────────────────────────────────────────────

func TestDiary_CommitMedia(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	f.sessions.unlock(t, 1)
	entry := models.DiaryEntry{ID: 10, UserID: 1, EntryDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)}
	wantPath := filepath.Join(f.layout.MediaDir(), "2026-03-14_10_7.dat")

	f.entries.EXPECT().GetEntry(ctx, int64(1), models.EntryRefByID(10)).Return(entry, nil)
	f.media.EXPECT().CreateMedia(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.DiaryMedia) (models.DiaryMedia, error) {
			assert.Equal(t, "image/png", m.MimeType)
			assert.Empty(t, m.FilePath)
			m.ID = 7
			return m, nil
		})
	f.media.EXPECT().CompleteMedia(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.DiaryMedia) (int, error) {
			assert.Equal(t, wantPath, m.FilePath)
			assert.Equal(t, "2026-03-14_10_7.dat", m.Filename)
			assert.Equal(t, int64(4), m.FileSize)
			return 1, nil
		})

	media, err := f.svc.CommitMedia(ctx, models.MediaCommitRequest{
		UserID:       1,
		EntryID:      10,
		OriginalName: "sunset.PNG",
		MediaType:    models.MediaTypePhoto,
		Data:         []byte("\x89PNG"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), media.ID)

	decrypted, err := f.content.DecryptMedia(ctx, 1, wantPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), decrypted.Data)
	assert.Equal(t, "png", decrypted.Extension)
}

func TestDiary_CommitMediaUnknownMime(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	f.sessions.unlock(t, 1)

	f.entries.EXPECT().GetEntry(ctx, int64(1), models.EntryRefByID(10)).Return(models.DiaryEntry{ID: 10, UserID: 1}, nil)
	f.media.EXPECT().CreateMedia(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.DiaryMedia) (models.DiaryMedia, error) {
			assert.Equal(t, defaultMimeType, m.MimeType)
			m.ID = 1
			return m, nil
		})
	f.media.EXPECT().CompleteMedia(ctx, gomock.Any()).Return(1, nil)

	_, err := f.svc.CommitMedia(ctx, models.MediaCommitRequest{
		UserID:       1,
		EntryID:      10,
		OriginalName: "recording.unknownext",
		MediaType:    models.MediaTypeVoice,
		Data:         []byte("x"),
	})
	require.NoError(t, err)
}

func TestDiary_CommitMediaCompleteFailureCleansUp(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	f.sessions.unlock(t, 1)
	entry := models.DiaryEntry{ID: 10, UserID: 1, EntryDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)}
	path := f.layout.MediaPath(entry.EntryDate, 10, 7)

	f.entries.EXPECT().GetEntry(ctx, int64(1), models.EntryRefByID(10)).Return(entry, nil)
	f.media.EXPECT().CreateMedia(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.DiaryMedia) (models.DiaryMedia, error) {
			m.ID = 7
			return m, nil
		})
	f.media.EXPECT().CompleteMedia(ctx, gomock.Any()).Return(0, store.ErrCommitingTransaction)
	f.media.EXPECT().DeleteMedia(ctx, int64(1), int64(7)).Return(nil)

	_, err := f.svc.CommitMedia(ctx, models.MediaCommitRequest{
		UserID: 1, EntryID: 10, OriginalName: "a.jpg", MediaType: models.MediaTypePhoto, Data: []byte("x"),
	})
	require.ErrorIs(t, err, store.ErrCommitingTransaction)
	assert.False(t, fileExists(t, path))
}

func TestDiary_CommitMediaLocked(t *testing.T) {
	f := newDiaryFixture(t)

	_, err := f.svc.CommitMedia(context.Background(), models.MediaCommitRequest{UserID: 1, EntryID: 10, Data: []byte("x")})
	require.ErrorIs(t, err, ErrLocked)
}

func TestDiary_ListMedia(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	f.sessions.unlock(t, 1)

	f.entries.EXPECT().GetEntry(ctx, int64(1), models.EntryRefByID(10)).Return(models.DiaryEntry{ID: 10}, nil)
	f.media.EXPECT().ListMedia(ctx, int64(1), int64(10)).Return([]models.DiaryMedia{{ID: 1}}, nil)

	list, err := f.svc.ListMedia(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	f.entries.EXPECT().GetEntry(ctx, int64(1), models.EntryRefByID(11)).Return(models.DiaryEntry{}, store.ErrEntryNotFound)
	_, err = f.svc.ListMedia(ctx, 1, 11)
	require.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestDiary_DownloadMedia(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	f.sessions.unlock(t, 1)

	path := f.layout.MediaPath(entryDate, 10, 7)
	_, err := f.content.EncryptMedia(ctx, 1, path, []byte("clip"), "mp4")
	require.NoError(t, err)

	f.media.EXPECT().GetMedia(ctx, int64(1), int64(7)).Return(models.DiaryMedia{ID: 7, FilePath: path, MimeType: "video/mp4"}, nil)

	media, tempPath, cleanup, err := f.svc.DownloadMedia(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, "video/mp4", media.MimeType)

	data, err := os.ReadFile(tempPath)
	require.NoError(t, err)
	assert.Equal(t, "clip", string(data))

	cleanup()
	assert.False(t, fileExists(t, tempPath))
}

func TestDiary_DownloadMediaMissingFile(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()
	f.sessions.unlock(t, 1)

	f.media.EXPECT().GetMedia(ctx, int64(1), int64(7)).
		Return(models.DiaryMedia{ID: 7, FilePath: filepath.Join(f.layout.MediaDir(), "lost.dat")}, nil)

	_, _, cleanup, err := f.svc.DownloadMedia(ctx, 1, 7)
	require.ErrorIs(t, err, ErrStorage)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, cleanup)
}

func TestDiary_DeleteMedia(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()

	require.ErrorIs(t, f.svc.DeleteMedia(ctx, 1, 7), ErrLocked)

	f.sessions.unlock(t, 1)
	path := f.layout.MediaPath(entryDate, 10, 7)
	_, err := f.content.EncryptMedia(ctx, 1, path, []byte("x"), "")
	require.NoError(t, err)

	gomock.InOrder(
		f.media.EXPECT().GetMedia(ctx, int64(1), int64(7)).Return(models.DiaryMedia{ID: 7, FilePath: path}, nil),
		f.media.EXPECT().DeleteMedia(ctx, int64(1), int64(7)).Return(nil),
	)

	require.NoError(t, f.svc.DeleteMedia(ctx, 1, 7))
	assert.False(t, fileExists(t, path))
}
