// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	errInvalidMediaID = errors.New("media id must be a positive integer")
	errInvalidEntryID = errors.New("entry id must be a positive integer")
	errInvalidDate    = errors.New("dates must be formatted as YYYY-MM-DD")
	errInvalidLimit   = errors.New("limit must be a positive integer")
	errNoFileUploaded = errors.New("multipart field `file` is required")
)
