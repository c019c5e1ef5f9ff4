package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pkms-go/diary-keeper/internal/logger"
	"github.com/pkms-go/diary-keeper/models"
)

// diaryPasswordRepository stores one diary password record per user in the
// "diary_passwords" table.
type diaryPasswordRepository struct {
	*DB
	logger *logger.Logger
}

// NewDiaryPasswordRepository constructs a [DiaryPasswordRepository] backed by db.
func NewDiaryPasswordRepository(db *DB, logger *logger.Logger) DiaryPasswordRepository {
	logger.Debug().Msg("creating diary password repository")
	return &diaryPasswordRepository{
		DB:     db,
		logger: logger,
	}
}

// SavePasswordRecord inserts the record or, when the user already has one,
// replaces the hash and hint.
func (r *diaryPasswordRepository) SavePasswordRecord(ctx context.Context, record models.DiaryPasswordRecord) (models.DiaryPasswordRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildUpsertPasswordQuery(record)
	if err != nil {
		log.Err(err).Str("func", "diaryPasswordRepository.SavePasswordRecord").Msg("failed to build query")
		return models.DiaryPasswordRecord{}, err
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(scanTime{&record.CreatedAt}, scanTime{&record.UpdatedAt}); err != nil {
		log.Err(err).
			Str("func", "diaryPasswordRepository.SavePasswordRecord").
			Int64("user_id", record.UserID).
			Msg("failed to save diary password record")
		return models.DiaryPasswordRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

func (r *diaryPasswordRepository) GetPasswordRecord(ctx context.Context, userID int64) (models.DiaryPasswordRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildGetPasswordQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "diaryPasswordRepository.GetPasswordRecord").Msg("failed to build query")
		return models.DiaryPasswordRecord{}, err
	}

	var record models.DiaryPasswordRecord
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&record.UserID, &record.PasswordHash, &record.Hint, scanTime{&record.CreatedAt}, scanTime{&record.UpdatedAt})
	if errors.Is(err, sql.ErrNoRows) {
		return models.DiaryPasswordRecord{}, ErrPasswordRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "diaryPasswordRepository.GetPasswordRecord").
			Int64("user_id", userID).
			Msg("failed to read diary password record")
		return models.DiaryPasswordRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}
