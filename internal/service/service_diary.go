// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/pkms-go/diary-keeper/internal/crypto"
	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/internal/store"
	"github.com/pkms-go/diary-keeper/internal/utils"
	"github.com/pkms-go/diary-keeper/models"
)

const defaultMimeType = "application/octet-stream"

// diaryService is the concrete implementation of [DiaryService].
//
// The container is always written before the record that points to it, so
// a record never references a file that failed to write. When the record
// cannot be stored the fresh container is removed again.
type diaryService struct {
	entries store.DiaryEntryRepository
	media   store.DiaryMediaRepository
	content DiaryContentService
	keys    KeyProvider
	layout  Layout
	ids     utils.IDGenerator

	logger *logger.Logger
}

// NewDiaryService constructs a [DiaryService].
func NewDiaryService(
	entries store.DiaryEntryRepository,
	media store.DiaryMediaRepository,
	content DiaryContentService,
	keys KeyProvider,
	layout Layout,
	ids utils.IDGenerator,
	logger *logger.Logger,
) DiaryService {
	return &diaryService{
		entries: entries,
		media:   media,
		content: content,
		keys:    keys,
		layout:  layout,
		ids:     ids,
		logger:  logger,
	}
}

func (d *diaryService) CreateEntry(ctx context.Context, req models.DiaryEntryRequest) (models.DiaryEntryResponse, error) {
	log := logger.FromContext(ctx)

	entryUUID := d.ids.Generate()
	path := d.layout.EntryPath(entryUUID)

	written, err := d.content.StoreEntry(ctx, req.UserID, path, req.EntryContent())
	if err != nil {
		return models.DiaryEntryResponse{}, err
	}

	created, err := d.entries.CreateEntry(ctx, models.DiaryEntry{
		UUID:            entryUUID,
		UserID:          req.UserID,
		Title:           req.Title,
		EntryDate:       dateOnly(req.EntryDate),
		ContentFilePath: written.Path,
		FileHash:        written.FileHash,
	})
	if err != nil {
		log.Err(err).Str("func", "diaryService.CreateEntry").Str("uuid", entryUUID).Msg("failed to store entry record")
		d.discard(ctx, written.Path)
		return models.DiaryEntryResponse{}, fmt.Errorf("create diary entry: %w", err)
	}

	log.Info().Int64("entry_id", created.ID).Str("uuid", created.UUID).Msg("diary entry created")
	return models.DiaryEntryResponse{DiaryEntry: created, Content: req.Content, Blob: req.Blob}, nil
}

func (d *diaryService) GetEntry(ctx context.Context, userID int64, ref models.EntryRef, decrypt bool) (models.DiaryEntryResponse, error) {
	entry, err := d.entries.GetEntry(ctx, userID, ref)
	if err != nil {
		return models.DiaryEntryResponse{}, err
	}

	resp := models.DiaryEntryResponse{DiaryEntry: entry}
	if !entry.HasContent() {
		return resp, nil
	}

	if decrypt {
		plaintext, err := d.content.ReadEntry(ctx, userID, entry.ContentFilePath)
		if err != nil {
			return models.DiaryEntryResponse{}, err
		}
		resp.Content = string(plaintext)
		return resp, nil
	}

	blob, err := d.content.ReadEntryBlob(ctx, entry.ContentFilePath)
	if err != nil {
		return models.DiaryEntryResponse{}, err
	}
	resp.Blob = &blob

	return resp, nil
}

func (d *diaryService) ListEntries(ctx context.Context, filter models.DiaryEntryFilter) ([]models.DiaryEntry, error) {
	if err := d.requireUnlocked(filter.UserID); err != nil {
		return nil, err
	}

	return d.entries.ListEntries(ctx, filter)
}

// UpdateEntry rewrites the content in place. The path is stable per entry
// and every write uses a fresh nonce.
func (d *diaryService) UpdateEntry(ctx context.Context, ref models.EntryRef, req models.DiaryEntryRequest) (models.DiaryEntryResponse, error) {
	log := logger.FromContext(ctx)

	entry, err := d.entries.GetEntry(ctx, req.UserID, ref)
	if err != nil {
		return models.DiaryEntryResponse{}, err
	}

	written, err := d.content.StoreEntry(ctx, req.UserID, d.layout.EntryPath(entry.UUID), req.EntryContent())
	if err != nil {
		return models.DiaryEntryResponse{}, err
	}

	entry.Title = req.Title
	entry.EntryDate = dateOnly(req.EntryDate)
	entry.ContentFilePath = written.Path
	entry.FileHash = written.FileHash

	updated, err := d.entries.UpdateEntry(ctx, entry)
	if err != nil {
		log.Err(err).
			Str("func", "diaryService.UpdateEntry").
			Int64("entry_id", entry.ID).
			Msg("content rewritten but record update failed")
		return models.DiaryEntryResponse{}, fmt.Errorf("update diary entry: %w", err)
	}

	return models.DiaryEntryResponse{DiaryEntry: updated, Content: req.Content, Blob: req.Blob}, nil
}

// DeleteEntry removes the media containers, the entry container and then
// the record. File removal failures are logged and do not stop the delete.
func (d *diaryService) DeleteEntry(ctx context.Context, userID int64, ref models.EntryRef) error {
	log := logger.FromContext(ctx)

	if err := d.requireUnlocked(userID); err != nil {
		return err
	}

	entry, err := d.entries.GetEntry(ctx, userID, ref)
	if err != nil {
		return err
	}

	media, err := d.media.ListMedia(ctx, userID, entry.ID)
	if err != nil {
		return err
	}
	for _, m := range media {
		d.discard(ctx, m.FilePath)
	}
	d.discard(ctx, entry.ContentFilePath)

	if err = d.entries.DeleteEntry(ctx, userID, entry.ID); err != nil {
		return err
	}

	log.Info().Int64("entry_id", entry.ID).Int("media", len(media)).Msg("diary entry deleted")
	return nil
}

// CommitMedia encrypts req.Data and attaches it to the entry. A placeholder
// row is inserted first so the media id, part of the file name, is known
// before the container is written.
func (d *diaryService) CommitMedia(ctx context.Context, req models.MediaCommitRequest) (models.DiaryMedia, error) {
	log := logger.FromContext(ctx)

	if err := d.requireUnlocked(req.UserID); err != nil {
		return models.DiaryMedia{}, err
	}

	entry, err := d.entries.GetEntry(ctx, req.UserID, models.EntryRefByID(req.EntryID))
	if err != nil {
		return models.DiaryMedia{}, err
	}

	ext := filepath.Ext(req.OriginalName)
	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = mime.TypeByExtension(ext)
	}
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	media, err := d.media.CreateMedia(ctx, models.DiaryMedia{
		EntryID:      entry.ID,
		UserID:       req.UserID,
		OriginalName: req.OriginalName,
		MimeType:     mimeType,
		MediaType:    req.MediaType,
		Caption:      req.Caption,
	})
	if err != nil {
		return models.DiaryMedia{}, err
	}

	path := d.layout.MediaPath(entry.EntryDate, entry.ID, media.ID)
	if _, err = d.content.EncryptMedia(ctx, req.UserID, path, req.Data, ext); err != nil {
		d.dropMediaRow(ctx, media)
		return models.DiaryMedia{}, err
	}

	media.Filename = filepath.Base(path)
	media.FilePath = path
	media.FileSize = int64(len(req.Data))

	if _, err = d.media.CompleteMedia(ctx, media); err != nil {
		log.Err(err).Str("func", "diaryService.CommitMedia").Int64("media_id", media.ID).Msg("failed to complete media record")
		d.discard(ctx, path)
		d.dropMediaRow(ctx, media)
		return models.DiaryMedia{}, err
	}

	log.Info().
		Int64("entry_id", entry.ID).
		Int64("media_id", media.ID).
		Int64("size", media.FileSize).
		Msg("diary media committed")
	return media, nil
}

func (d *diaryService) ListMedia(ctx context.Context, userID, entryID int64) ([]models.DiaryMedia, error) {
	if err := d.requireUnlocked(userID); err != nil {
		return nil, err
	}

	if _, err := d.entries.GetEntry(ctx, userID, models.EntryRefByID(entryID)); err != nil {
		return nil, err
	}

	return d.media.ListMedia(ctx, userID, entryID)
}

func (d *diaryService) DownloadMedia(ctx context.Context, userID, mediaID int64) (models.DiaryMedia, string, func(), error) {
	if err := d.requireUnlocked(userID); err != nil {
		return models.DiaryMedia{}, "", nil, err
	}

	media, err := d.media.GetMedia(ctx, userID, mediaID)
	if err != nil {
		return models.DiaryMedia{}, "", nil, err
	}

	tempPath, cleanup, err := d.content.DecryptMediaToTemp(ctx, userID, media.FilePath)
	if err != nil {
		return models.DiaryMedia{}, "", nil, err
	}

	return media, tempPath, cleanup, nil
}

// DeleteMedia removes the container before the row, so a failed removal
// leaves the row pointing at the still existing file.
func (d *diaryService) DeleteMedia(ctx context.Context, userID, mediaID int64) error {
	if err := d.requireUnlocked(userID); err != nil {
		return err
	}

	media, err := d.media.GetMedia(ctx, userID, mediaID)
	if err != nil {
		return err
	}

	if err = d.content.RemoveContent(ctx, media.FilePath); err != nil {
		return err
	}

	return d.media.DeleteMedia(ctx, userID, mediaID)
}

func (d *diaryService) requireUnlocked(userID int64) error {
	key, ok := d.keys.Key(userID)
	if !ok {
		return ErrLocked
	}
	crypto.Wipe(key)
	return nil
}

// discard removes a container that is no longer referenced, logging failures.
func (d *diaryService) discard(ctx context.Context, path string) {
	if err := d.content.RemoveContent(ctx, path); err != nil {
		logger.FromContext(ctx).Err(err).Str("path", path).Msg("failed to remove container")
	}
}

func (d *diaryService) dropMediaRow(ctx context.Context, media models.DiaryMedia) {
	if err := d.media.DeleteMedia(ctx, media.UserID, media.ID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("media_id", media.ID).Msg("failed to drop placeholder media row")
	}
}

// dateOnly truncates t to midnight UTC of its calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
