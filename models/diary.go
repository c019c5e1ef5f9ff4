// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DiaryPasswordRecord holds the hash that authenticates diary unlock attempts.
// It is independent of the account password and never stores the derived key.
type DiaryPasswordRecord struct {
	// UserID is the owner of the diary.
	UserID int64 `json:"-"`

	// PasswordHash is the bcrypt hash of the diary password.
	PasswordHash string `json:"-"`

	// Hint is an optional reminder shown to the user on request.
	Hint string `json:"hint,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the DiaryPasswordRecord model.
func (r DiaryPasswordRecord) TableName() string {
	return "diary_passwords"
}

// DiaryEntry is the relational record of one diary entry. Its content lives
// in an encrypted container on disk; the record only links to it.
type DiaryEntry struct {
	// ID is the database-assigned numeric identifier.
	ID int64 `json:"id"`

	// UUID is the stable public identifier; the content file is named after it.
	UUID string `json:"uuid"`

	UserID int64 `json:"-"`

	Title string `json:"title"`

	// EntryDate is the calendar day the entry belongs to.
	EntryDate time.Time `json:"date"`

	// ContentFilePath points to the encrypted container holding the text.
	ContentFilePath string `json:"-"`

	// FileHash is the hex SHA-256 of the container bytes, used for change
	// detection. It is not verified on read.
	FileHash string `json:"file_hash"`

	MediaCount int `json:"media_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the DiaryEntry model.
func (e DiaryEntry) TableName() string {
	return "diary_entries"
}

// HasContent reports whether the entry is linked to a written container.
func (e DiaryEntry) HasContent() bool {
	return e.ContentFilePath != "" && e.FileHash != ""
}

// MediaType classifies a diary attachment.
type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
	MediaTypeVoice MediaType = "voice"
)

// Valid reports whether t is one of the known media types.
func (t MediaType) Valid() bool {
	switch t {
	case MediaTypePhoto, MediaTypeVideo, MediaTypeVoice:
		return true
	}
	return false
}

// DiaryMedia is the relational record of one encrypted attachment.
type DiaryMedia struct {
	ID      int64 `json:"id"`
	EntryID int64 `json:"entry_id"`
	UserID  int64 `json:"-"`

	// Filename is the stored container name, <date>_<entry id>_<media id>.dat.
	Filename string `json:"filename"`

	// OriginalName is the name the file was uploaded with.
	OriginalName string `json:"original_name"`

	FilePath string `json:"-"`

	// FileSize is the plaintext size in bytes.
	FileSize int64 `json:"size_bytes"`

	MimeType  string    `json:"mime_type"`
	MediaType MediaType `json:"media_type"`
	Caption   string    `json:"caption,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the DiaryMedia model.
func (m DiaryMedia) TableName() string {
	return "diary_media"
}
