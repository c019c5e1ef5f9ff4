package store

import (
	"context"

	"github.com/pkms-go/diary-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DiaryPasswordRepository persists the hash that authenticates diary unlocks.
type DiaryPasswordRepository interface {
	// SavePasswordRecord inserts or replaces the record of record.UserID.
	SavePasswordRecord(ctx context.Context, record models.DiaryPasswordRecord) (models.DiaryPasswordRecord, error)
	// GetPasswordRecord returns [ErrPasswordRecordNotFound] when the diary
	// has not been set up.
	GetPasswordRecord(ctx context.Context, userID int64) (models.DiaryPasswordRecord, error)
}

// DiaryEntryRepository persists diary entry records and their link to the
// encrypted content file.
type DiaryEntryRepository interface {
	CreateEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error)
	GetEntry(ctx context.Context, userID int64, ref models.EntryRef) (models.DiaryEntry, error)
	ListEntries(ctx context.Context, filter models.DiaryEntryFilter) ([]models.DiaryEntry, error)
	// UpdateEntry rewrites title, date, content path and file hash.
	UpdateEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error)
	// DeleteEntry removes the entry; its media rows go with it.
	DeleteEntry(ctx context.Context, userID, entryID int64) error
}

// DiaryMediaRepository persists media attachment records.
type DiaryMediaRepository interface {
	// CreateMedia inserts a placeholder row so the id is known before the
	// container is written.
	CreateMedia(ctx context.Context, media models.DiaryMedia) (models.DiaryMedia, error)
	// CompleteMedia stores the final filename, path, size and mime type and
	// refreshes the media count of the owning entry in one transaction.
	// It returns the new media count.
	CompleteMedia(ctx context.Context, media models.DiaryMedia) (int, error)
	GetMedia(ctx context.Context, userID, mediaID int64) (models.DiaryMedia, error)
	ListMedia(ctx context.Context, userID, entryID int64) ([]models.DiaryMedia, error)
	// DeleteMedia removes the row and refreshes the entry media count.
	DeleteMedia(ctx context.Context, userID, mediaID int64) error
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
