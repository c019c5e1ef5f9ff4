// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptionSetupRequest sets the diary password for the first time.
type EncryptionSetupRequest struct {
	Password string `json:"password"`
	Hint     string `json:"hint,omitempty"`
}

// UnlockRequest carries the diary password for an unlock attempt.
type UnlockRequest struct {
	Password string `json:"password"`
}

// HintResponse is returned by the hint endpoint.
type HintResponse struct {
	Hint string `json:"hint"`
}

// DiaryEntryRequest creates or updates an entry. Content is either plain
// text, encrypted on the server, or a client-encrypted Blob.
type DiaryEntryRequest struct {
	UserID int64 `json:"-"`

	Title     string    `json:"title"`
	EntryDate time.Time `json:"date"`

	Content string         `json:"content,omitempty"`
	Blob    *EncryptedBlob `json:"blob,omitempty"`
}

// EntryContent converts the request payload into [EntryContent].
func (r DiaryEntryRequest) EntryContent() EntryContent {
	if r.Blob != nil {
		return EntryContent{Blob: r.Blob}
	}
	return EntryContent{Plaintext: []byte(r.Content)}
}

// DiaryEntryResponse is an entry together with its decrypted text or, for
// clients that decrypt locally, the raw blob.
type DiaryEntryResponse struct {
	DiaryEntry

	Content string         `json:"content,omitempty"`
	Blob    *EncryptedBlob `json:"blob,omitempty"`
}

// MediaCommitRequest attaches raw media bytes to an entry.
type MediaCommitRequest struct {
	UserID  int64 `json:"-"`
	EntryID int64 `json:"entry_id"`

	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	MediaType    MediaType `json:"media_type"`
	Caption      string    `json:"caption,omitempty"`

	Data []byte `json:"-"`
}

// DiaryEntryFilter narrows entry listings. Zero values mean no bound.
type DiaryEntryFilter struct {
	UserID int64
	From   time.Time
	To     time.Time
	Limit  uint64
}
