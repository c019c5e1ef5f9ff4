package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/models"
)

// diaryEntryRepository is the SQL implementation of [DiaryEntryRepository]
// over the "diary_entries" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database failures carry the request trace id.
type diaryEntryRepository struct {
	*DB
	logger *logger.Logger
}

// NewDiaryEntryRepository constructs a [DiaryEntryRepository] backed by db.
func NewDiaryEntryRepository(db *DB, logger *logger.Logger) DiaryEntryRepository {
	logger.Debug().Msg("creating diary entry repository")
	return &diaryEntryRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateEntry inserts entry and returns it with the server-assigned id,
// media count and timestamps.
//
// Error handling:
//   - unique violation on uuid → [ErrEntryAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *diaryEntryRepository) CreateEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "diaryEntryRepository.CreateEntry").Msg("failed to build query")
		return models.DiaryEntry{}, err
	}

	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&entry.ID, &entry.MediaCount, scanTime{&entry.CreatedAt}, scanTime{&entry.UpdatedAt})
	if err != nil {
		log.Err(err).
			Str("func", "diaryEntryRepository.CreateEntry").
			Int64("user_id", entry.UserID).
			Str("uuid", entry.UUID).
			Msg("failed to insert diary entry")
		if isUniqueViolation(err) {
			return models.DiaryEntry{}, ErrEntryAlreadyExists
		}
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// GetEntry returns the entry of userID matching ref, by numeric id or UUID.
func (r *diaryEntryRepository) GetEntry(ctx context.Context, userID int64, ref models.EntryRef) (models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildGetEntryQuery(userID, ref)
	if err != nil {
		log.Err(err).Str("func", "diaryEntryRepository.GetEntry").Msg("failed to build query")
		return models.DiaryEntry{}, err
	}

	entry, err := scanEntry(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DiaryEntry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "diaryEntryRepository.GetEntry").
			Int64("user_id", userID).
			Str("entry_ref", ref.String()).
			Msg("failed to read diary entry")
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// ListEntries returns the entries matching filter, newest first.
func (r *diaryEntryRepository) ListEntries(ctx context.Context, filter models.DiaryEntryFilter) ([]models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListEntriesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "diaryEntryRepository.ListEntries").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "diaryEntryRepository.ListEntries").
			Int64("user_id", filter.UserID).
			Msg("failed to list diary entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.DiaryEntry, 0, 16)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "diaryEntryRepository.ListEntries").Msg("failed to scan diary entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "diaryEntryRepository.ListEntries").Msg("rows iteration failed")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// UpdateEntry stores the new title, date and content linkage of entry and
// returns the row as persisted.
func (r *diaryEntryRepository) UpdateEntry(ctx context.Context, entry models.DiaryEntry) (models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildUpdateEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "diaryEntryRepository.UpdateEntry").Msg("failed to build query")
		return models.DiaryEntry{}, err
	}

	updated, err := scanEntry(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DiaryEntry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "diaryEntryRepository.UpdateEntry").
			Int64("entry_id", entry.ID).
			Msg("failed to update diary entry")
		return models.DiaryEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteEntry removes the entry of userID. Media rows are removed by the
// foreign key cascade.
func (r *diaryEntryRepository) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.buildDeleteEntryQuery(userID, entryID)
	if err != nil {
		log.Err(err).Str("func", "diaryEntryRepository.DeleteEntry").Msg("failed to build query")
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "diaryEntryRepository.DeleteEntry").
			Int64("entry_id", entryID).
			Msg("failed to delete diary entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.DiaryEntry, error) {
	var e models.DiaryEntry
	err := row.Scan(
		&e.ID,
		&e.UUID,
		&e.UserID,
		&e.Title,
		scanTime{&e.EntryDate},
		&e.ContentFilePath,
		&e.FileHash,
		&e.MediaCount,
		scanTime{&e.CreatedAt},
		scanTime{&e.UpdatedAt},
	)
	return e, err
}
