package store

import "github.com/pkms-go/diary-keeper/internal/logger"

// Repositories groups every repository backed by one database.
type Repositories struct {
	DiaryPasswordRepository DiaryPasswordRepository
	DiaryEntryRepository    DiaryEntryRepository
	DiaryMediaRepository    DiaryMediaRepository
}

// NewRepositories builds all repositories on top of db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		DiaryPasswordRepository: NewDiaryPasswordRepository(db, log),
		DiaryEntryRepository:    NewDiaryEntryRepository(db, log),
		DiaryMediaRepository:    NewDiaryMediaRepository(db, log),
	}
}
