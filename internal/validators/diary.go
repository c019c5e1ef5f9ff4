// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/pkms-go/diary-keeper/internal/crypto"
	"github.com/pkms-go/diary-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the owner of an entry or media item.
	FieldUserID = "user_id"

	// FieldTitle targets the entry title length.
	FieldTitle = "title"

	// FieldEntryDate targets the calendar day of an entry.
	FieldEntryDate = "entry_date"

	// FieldContent requires exactly one of plaintext content and encrypted blob.
	FieldContent = "content"

	// FieldBlob checks the framing of a client-encrypted blob when present.
	FieldBlob = "blob"

	// FieldPassword targets the diary password of a setup request.
	FieldPassword = "password"

	// FieldHint targets the password hint length.
	FieldHint = "hint"

	// FieldEntryID targets the entry a media item is attached to.
	FieldEntryID = "entry_id"

	// FieldMediaType targets the photo/video/voice classification.
	FieldMediaType = "media_type"

	// FieldMediaData targets the raw media bytes.
	FieldMediaData = "media_data"

	// FieldOriginalName targets the uploaded file name.
	FieldOriginalName = "original_name"
)

const (
	MaxTitleLength = 255
	MaxHintLength  = 255

	// MaxMediaSize bounds a single attachment.
	MaxMediaSize = 256 << 20
)

// DiaryValidator implements [Validator] for the diary request models.
// Both value and pointer forms are accepted.
type DiaryValidator struct{}

// NewDiaryValidator constructs a [DiaryValidator].
func NewDiaryValidator() Validator {
	return &DiaryValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.DiaryEntryRequest / *models.DiaryEntryRequest
//   - models.MediaCommitRequest / *models.MediaCommitRequest
//   - models.EncryptionSetupRequest / *models.EncryptionSetupRequest
//
// Returns ErrUnsupportedType for anything else. Without fields a default
// set is validated.
func (v *DiaryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DiaryEntryRequest:
		return v.validateEntryRequest(ctx, value, fields...)
	case *models.DiaryEntryRequest:
		return v.validateEntryRequest(ctx, *value, fields...)

	case models.MediaCommitRequest:
		return v.validateMediaCommitRequest(ctx, value, fields...)
	case *models.MediaCommitRequest:
		return v.validateMediaCommitRequest(ctx, *value, fields...)

	case models.EncryptionSetupRequest:
		return v.validateSetupRequest(ctx, value, fields...)
	case *models.EncryptionSetupRequest:
		return v.validateSetupRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DiaryValidator) validateEntryRequest(_ context.Context, req models.DiaryEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldEntryDate, FieldContent, FieldBlob}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if utf8.RuneCountInString(req.Title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldEntryDate:
			if req.EntryDate.IsZero() {
				return ErrEmptyEntryDate
			}
		case FieldContent:
			if req.Blob != nil && req.Content != "" {
				return ErrAmbiguousContent
			}
			if req.Blob == nil && req.Content == "" {
				return ErrEmptyContent
			}
		case FieldBlob:
			if req.Blob == nil {
				continue
			}
			if len(req.Blob.Nonce) != crypto.NonceSize {
				return ErrInvalidNonce
			}
			if len(req.Blob.Sealed) < crypto.TagSize {
				return ErrInvalidBlob
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateMediaCommitRequest(_ context.Context, req models.MediaCommitRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldEntryID, FieldMediaType, FieldMediaData, FieldOriginalName}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldEntryID:
			if req.EntryID <= 0 {
				return ErrInvalidEntryID
			}
		case FieldMediaType:
			if !req.MediaType.Valid() {
				return ErrInvalidMediaType
			}
		case FieldMediaData:
			if len(req.Data) == 0 {
				return ErrEmptyMediaData
			}
			if len(req.Data) > MaxMediaSize {
				return ErrMediaTooLarge
			}
		case FieldOriginalName:
			if req.OriginalName == "" {
				return ErrEmptyFileName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateSetupRequest(_ context.Context, req models.EncryptionSetupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldHint}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldHint:
			if utf8.RuneCountInString(req.Hint) > MaxHintLength {
				return ErrHintTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
