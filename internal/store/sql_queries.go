package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/pkms-go/diary-keeper/models"
)

const (
	diaryPasswordsTable = "diary_passwords"
	diaryEntriesTable   = "diary_entries"
	diaryMediaTable     = "diary_media"
)

var (
	passwordColumns = []string{"user_id", "password_hash", "hint", "created_at", "updated_at"}

	entryColumns = []string{
		"id", "uuid", "user_id", "title", "entry_date",
		"content_file_path", "file_hash", "media_count", "created_at", "updated_at",
	}

	mediaColumns = []string{
		"id", "entry_id", "user_id", "filename", "original_name",
		"file_path", "file_size", "mime_type", "media_type", "caption", "created_at",
	}
)

func (db *DB) buildUpsertPasswordQuery(record models.DiaryPasswordRecord) (string, []any, error) {
	return toSQL(db.builder.
		Insert(diaryPasswordsTable).
		Columns("user_id", "password_hash", "hint").
		Values(record.UserID, record.PasswordHash, record.Hint).
		Suffix(`ON CONFLICT (user_id) DO UPDATE
			SET password_hash = excluded.password_hash, hint = excluded.hint, updated_at = CURRENT_TIMESTAMP
			RETURNING created_at, updated_at`))
}

func (db *DB) buildGetPasswordQuery(userID int64) (string, []any, error) {
	return toSQL(db.builder.
		Select(passwordColumns...).
		From(diaryPasswordsTable).
		Where(sq.Eq{"user_id": userID}))
}

func (db *DB) buildInsertEntryQuery(entry models.DiaryEntry) (string, []any, error) {
	return toSQL(db.builder.
		Insert(diaryEntriesTable).
		Columns("uuid", "user_id", "title", "entry_date", "content_file_path", "file_hash").
		Values(entry.UUID, entry.UserID, entry.Title, entry.EntryDate, entry.ContentFilePath, entry.FileHash).
		Suffix("RETURNING id, media_count, created_at, updated_at"))
}

func (db *DB) buildGetEntryQuery(userID int64, ref models.EntryRef) (string, []any, error) {
	query := db.builder.
		Select(entryColumns...).
		From(diaryEntriesTable).
		Where(sq.Eq{"user_id": userID})

	if ref.IsUUID() {
		query = query.Where(sq.Eq{"uuid": ref.UUID().String()})
	} else {
		query = query.Where(sq.Eq{"id": ref.ID()})
	}

	return toSQL(query)
}

func (db *DB) buildListEntriesQuery(filter models.DiaryEntryFilter) (string, []any, error) {
	query := db.builder.
		Select(entryColumns...).
		From(diaryEntriesTable).
		Where(sq.Eq{"user_id": filter.UserID})

	if !filter.From.IsZero() {
		query = query.Where(sq.GtOrEq{"entry_date": filter.From})
	}
	if !filter.To.IsZero() {
		query = query.Where(sq.LtOrEq{"entry_date": filter.To})
	}

	query = query.OrderBy("entry_date DESC", "id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return toSQL(query)
}

func (db *DB) buildUpdateEntryQuery(entry models.DiaryEntry) (string, []any, error) {
	return toSQL(db.builder.
		Update(diaryEntriesTable).
		Set("title", entry.Title).
		Set("entry_date", entry.EntryDate).
		Set("content_file_path", entry.ContentFilePath).
		Set("file_hash", entry.FileHash).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": entry.ID}).
		Where(sq.Eq{"user_id": entry.UserID}).
		Suffix("RETURNING " + strings.Join(entryColumns, ", ")))
}

func (db *DB) buildDeleteEntryQuery(userID, entryID int64) (string, []any, error) {
	return toSQL(db.builder.
		Delete(diaryEntriesTable).
		Where(sq.Eq{"id": entryID}).
		Where(sq.Eq{"user_id": userID}))
}

func (db *DB) buildInsertMediaQuery(media models.DiaryMedia) (string, []any, error) {
	return toSQL(db.builder.
		Insert(diaryMediaTable).
		Columns("entry_id", "user_id", "filename", "original_name", "file_path", "file_size", "mime_type", "media_type", "caption").
		Values(media.EntryID, media.UserID, media.Filename, media.OriginalName, media.FilePath,
			media.FileSize, media.MimeType, string(media.MediaType), media.Caption).
		Suffix("RETURNING id, created_at"))
}

func (db *DB) buildCompleteMediaQuery(media models.DiaryMedia) (string, []any, error) {
	return toSQL(db.builder.
		Update(diaryMediaTable).
		Set("filename", media.Filename).
		Set("file_path", media.FilePath).
		Set("file_size", media.FileSize).
		Set("mime_type", media.MimeType).
		Where(sq.Eq{"id": media.ID}).
		Where(sq.Eq{"user_id": media.UserID}))
}

// buildRefreshMediaCountQuery recounts the media of entryID and returns the
// stored count.
func (db *DB) buildRefreshMediaCountQuery(entryID int64) (string, []any, error) {
	return toSQL(db.builder.
		Update(diaryEntriesTable).
		Set("media_count", sq.Expr("(SELECT COUNT(*) FROM "+diaryMediaTable+" WHERE entry_id = ?)", entryID)).
		Where(sq.Eq{"id": entryID}).
		Suffix("RETURNING media_count"))
}

func (db *DB) buildGetMediaQuery(userID, mediaID int64) (string, []any, error) {
	return toSQL(db.builder.
		Select(mediaColumns...).
		From(diaryMediaTable).
		Where(sq.Eq{"id": mediaID}).
		Where(sq.Eq{"user_id": userID}))
}

func (db *DB) buildListMediaQuery(userID, entryID int64) (string, []any, error) {
	return toSQL(db.builder.
		Select(mediaColumns...).
		From(diaryMediaTable).
		Where(sq.Eq{"entry_id": entryID}).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id"))
}

func (db *DB) buildDeleteMediaQuery(userID, mediaID int64) (string, []any, error) {
	return toSQL(db.builder.
		Delete(diaryMediaTable).
		Where(sq.Eq{"id": mediaID}).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING entry_id"))
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
