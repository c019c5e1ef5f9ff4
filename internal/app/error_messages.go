// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// diary-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording consistent
// and keeps internal details such as file paths out of responses.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUnauthorized is returned when the bearer token is missing the user
	// claim or the user cannot be resolved from the request context.
	MsgUnauthorized = "unauthorized"

	// MsgInvalidDiaryPassword is returned when an unlock attempt fails
	// password verification.
	MsgInvalidDiaryPassword = "invalid diary password"

	// MsgDiaryLocked is returned when an operation needs the diary key but
	// the user has no live session.
	MsgDiaryLocked = "diary is locked, unlock it first"

	// MsgFileCorrupted is returned when a container is shorter than its
	// header or its header is inconsistent.
	MsgFileCorrupted = "encrypted file is corrupted"

	// MsgIntegrityCheckFailed is returned when GCM authentication fails,
	// either because of tampering or a key mismatch.
	MsgIntegrityCheckFailed = "encrypted file failed integrity check"

	// MsgFileNotFound is returned when a record points to a container that
	// is missing on disk.
	MsgFileNotFound = "encrypted file not found"

	// MsgFileNotAccessible is returned when the container exists but the
	// process lacks permission to read or write it.
	MsgFileNotAccessible = "encrypted file is not accessible"

	// MsgStorageUnavailable is returned for any other filesystem failure.
	MsgStorageUnavailable = "diary storage unavailable"

	// MsgRouteNotFound is returned for unknown routes and unsupported
	// methods on known routes.
	MsgRouteNotFound = "not found"
)
