package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidEntryID   = errors.New("invalid entry ID")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrEmptyEntryDate   = errors.New("entry date is required")
	ErrEmptyContent     = errors.New("either content or an encrypted blob is required")
	ErrAmbiguousContent = errors.New("content and encrypted blob are mutually exclusive")
	ErrInvalidNonce     = errors.New("invalid nonce length")
	ErrInvalidBlob      = errors.New("encrypted blob is shorter than the authentication tag")
	ErrEmptyPassword    = errors.New("password is required")
	ErrHintTooLong      = errors.New("hint is too long")
	ErrInvalidMediaType = errors.New("invalid media type")
	ErrEmptyMediaData   = errors.New("media data is required")
	ErrMediaTooLarge    = errors.New("media exceeds the size limit")
	ErrEmptyFileName    = errors.New("original file name is required")
)
