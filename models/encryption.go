// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptionStatus describes the diary encryption state of one user.
type EncryptionStatus struct {
	// IsSetup is true once a diary password has been stored.
	IsSetup bool `json:"is_setup"`

	// IsUnlocked is true while a valid session holds the diary key.
	IsUnlocked bool `json:"is_unlocked"`

	// SessionExpiresIn is the remaining session lifetime in whole seconds,
	// never negative. Zero when locked.
	SessionExpiresIn int64 `json:"session_expires_in"`

	// SessionCreatedAt is the unlock time of the current session.
	SessionCreatedAt *time.Time `json:"session_created_at,omitempty"`
}

// EncryptedBlob is a payload encrypted outside the server with the diary key.
// JSON encodes both fields as standard base64.
type EncryptedBlob struct {
	// Nonce is the 12-byte AES-GCM nonce.
	Nonce []byte `json:"iv"`

	// Sealed is the ciphertext followed by the 16-byte authentication tag.
	Sealed []byte `json:"encrypted_blob"`
}

// EntryContent is the payload handed to the content service for storing.
// Exactly one of Plaintext and Blob is expected.
type EntryContent struct {
	// Plaintext is encrypted server-side with the session key.
	Plaintext []byte

	// Blob is written as is; no session is needed.
	Blob *EncryptedBlob

	// Extension is stored in the container header, empty for diary text.
	Extension string
}

// IsPreEncrypted reports whether the content arrives already encrypted.
func (c EntryContent) IsPreEncrypted() bool {
	return c.Blob != nil
}

// DecryptedMedia is a decrypted attachment and its original extension.
type DecryptedMedia struct {
	Data      []byte
	Extension string
}
