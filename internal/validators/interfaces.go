// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks diary requests before they reach the services:
// entry titles and dates, media commit metadata and size, and the encryption
// setup password and hint. See [NewDiaryValidator].
package validators

import "context"

// Validator checks obj and returns an error wrapping one of this package's
// sentinels. When fields are given (the Field* constants) only those are
// checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
