// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package container

import "errors"

var (
	// ErrInvalidContainer is returned when a file is shorter than the minimum
	// header or its length fields disagree with the actual file size.
	ErrInvalidContainer = errors.New("invalid encrypted container")

	// ErrExtensionTooLong is returned by Write when the extension does not
	// fit into the one-byte length prefix.
	ErrExtensionTooLong = errors.New("extension longer than 255 bytes")

	// ErrInvalidNonce is returned by Write when the nonce is not NonceSize bytes.
	ErrInvalidNonce = errors.New("invalid nonce length")

	// ErrInvalidBlob is returned by Write when the sealed blob is too short
	// to carry an authentication tag.
	ErrInvalidBlob = errors.New("sealed blob shorter than authentication tag")
)
