package service

import (
	"fmt"
	"path/filepath"
	"time"
)

// Layout places encrypted containers under a data directory:
//
//	<data>/secure/entries/text/diary_<uuid>.dat
//	<data>/secure/entries/media/<YYYY-MM-DD>_<entryID>_<mediaID>.dat
//
// Both names are derived from database metadata, so no lookup table is needed.
type Layout struct {
	dataDir string
}

func NewLayout(dataDir string) Layout {
	return Layout{dataDir: dataDir}
}

func (l Layout) TextDir() string {
	return filepath.Join(l.dataDir, "secure", "entries", "text")
}

func (l Layout) MediaDir() string {
	return filepath.Join(l.dataDir, "secure", "entries", "media")
}

// TempDir holds transient plaintext copies of media being downloaded.
func (l Layout) TempDir() string {
	return filepath.Join(l.dataDir, "temp_uploads")
}

func (l Layout) EntryPath(entryUUID string) string {
	return filepath.Join(l.TextDir(), "diary_"+entryUUID+".dat")
}

// MediaFilename is the container name of mediaID attached to entryID on date.
func MediaFilename(date time.Time, entryID, mediaID int64) string {
	return fmt.Sprintf("%s_%d_%d.dat", date.Format(time.DateOnly), entryID, mediaID)
}

func (l Layout) MediaPath(date time.Time, entryID, mediaID int64) string {
	return filepath.Join(l.MediaDir(), MediaFilename(date, entryID, mediaID))
}
