package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/models"
)

// diaryMediaRepository is the SQL implementation of [DiaryMediaRepository]
// over the "diary_media" table. Operations that change the number of media
// of an entry refresh diary_entries.media_count in the same transaction.
type diaryMediaRepository struct {
	*DB
	logger *logger.Logger
}

// NewDiaryMediaRepository constructs a [DiaryMediaRepository] backed by db.
func NewDiaryMediaRepository(db *DB, logger *logger.Logger) DiaryMediaRepository {
	logger.Debug().Msg("creating diary media repository")
	return &diaryMediaRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *diaryMediaRepository) CreateMedia(ctx context.Context, media models.DiaryMedia) (models.DiaryMedia, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertMediaQuery(media)
	if err != nil {
		log.Err(err).Str("func", "diaryMediaRepository.CreateMedia").Msg("failed to build query")
		return models.DiaryMedia{}, err
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&media.ID, scanTime{&media.CreatedAt}); err != nil {
		log.Err(err).
			Str("func", "diaryMediaRepository.CreateMedia").
			Int64("entry_id", media.EntryID).
			Msg("failed to insert diary media")
		if isForeignKeyViolation(err) {
			return models.DiaryMedia{}, ErrEntryNotFound
		}
		return models.DiaryMedia{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return media, nil
}

// CompleteMedia records the written container for media and recounts the
// media of its entry. The transaction is rolled back on any failure.
func (r *diaryMediaRepository) CompleteMedia(ctx context.Context, media models.DiaryMedia) (int, error) {
	log := logger.FromContext(ctx)

	updateQuery, updateArgs, err := r.buildCompleteMediaQuery(media)
	if err != nil {
		log.Err(err).Str("func", "diaryMediaRepository.CompleteMedia").Msg("failed to build query")
		return 0, err
	}
	countQuery, countArgs, err := r.buildRefreshMediaCountQuery(media.EntryID)
	if err != nil {
		log.Err(err).Str("func", "diaryMediaRepository.CompleteMedia").Msg("failed to build query")
		return 0, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "diaryMediaRepository.CompleteMedia").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "diaryMediaRepository.CompleteMedia").
			Int64("media_id", media.ID).
			Msg("failed to update diary media")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return 0, ErrMediaNotFound
	}

	var count int
	if err = tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "diaryMediaRepository.CompleteMedia").
			Int64("entry_id", media.EntryID).
			Msg("failed to refresh media count")
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrEntryNotFound
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "diaryMediaRepository.CompleteMedia").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return count, nil
}

func (r *diaryMediaRepository) GetMedia(ctx context.Context, userID, mediaID int64) (models.DiaryMedia, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildGetMediaQuery(userID, mediaID)
	if err != nil {
		log.Err(err).Str("func", "diaryMediaRepository.GetMedia").Msg("failed to build query")
		return models.DiaryMedia{}, err
	}

	media, err := scanMedia(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DiaryMedia{}, ErrMediaNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "diaryMediaRepository.GetMedia").
			Int64("media_id", mediaID).
			Msg("failed to read diary media")
		return models.DiaryMedia{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return media, nil
}

func (r *diaryMediaRepository) ListMedia(ctx context.Context, userID, entryID int64) ([]models.DiaryMedia, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListMediaQuery(userID, entryID)
	if err != nil {
		log.Err(err).Str("func", "diaryMediaRepository.ListMedia").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "diaryMediaRepository.ListMedia").
			Int64("entry_id", entryID).
			Msg("failed to list diary media")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	media := make([]models.DiaryMedia, 0, 4)
	for rows.Next() {
		m, scanErr := scanMedia(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "diaryMediaRepository.ListMedia").Msg("failed to scan diary media")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		media = append(media, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return media, nil
}

// DeleteMedia removes the media row and recounts the media of its entry.
func (r *diaryMediaRepository) DeleteMedia(ctx context.Context, userID, mediaID int64) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := r.buildDeleteMediaQuery(userID, mediaID)
	if err != nil {
		log.Err(err).Str("func", "diaryMediaRepository.DeleteMedia").Msg("failed to build query")
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "diaryMediaRepository.DeleteMedia").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var entryID int64
	err = tx.QueryRowContext(ctx, deleteQuery, deleteArgs...).Scan(&entryID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMediaNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "diaryMediaRepository.DeleteMedia").
			Int64("media_id", mediaID).
			Msg("failed to delete diary media")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	countQuery, countArgs, err := r.buildRefreshMediaCountQuery(entryID)
	if err != nil {
		return err
	}
	var count int
	if err = tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "diaryMediaRepository.DeleteMedia").
			Int64("entry_id", entryID).
			Msg("failed to refresh media count")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "diaryMediaRepository.DeleteMedia").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func scanMedia(row rowScanner) (models.DiaryMedia, error) {
	var (
		m         models.DiaryMedia
		mediaType string
	)
	err := row.Scan(
		&m.ID,
		&m.EntryID,
		&m.UserID,
		&m.Filename,
		&m.OriginalName,
		&m.FilePath,
		&m.FileSize,
		&m.MimeType,
		&mediaType,
		&m.Caption,
		scanTime{&m.CreatedAt},
	)
	m.MediaType = models.MediaType(mediaType)
	return m, err
}
