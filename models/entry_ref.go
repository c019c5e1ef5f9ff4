// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
)

// ErrInvalidEntryRef is returned by [ParseEntryRef] for input that is neither
// a positive integer nor a UUID.
var ErrInvalidEntryRef = errors.New("entry reference is neither a numeric id nor a uuid")

// EntryRef identifies a diary entry either by numeric id or by UUID.
// Exactly one of the two is set. It is parsed once at the API boundary so
// lookups never have to guess the kind again.
type EntryRef struct {
	id   int64
	uuid uuid.UUID
}

// EntryRefByID returns a reference to the entry with the numeric id.
func EntryRefByID(id int64) EntryRef {
	return EntryRef{id: id}
}

// EntryRefByUUID returns a reference to the entry with the given UUID.
func EntryRefByUUID(u uuid.UUID) EntryRef {
	return EntryRef{uuid: u}
}

// ParseEntryRef accepts a positive decimal id or a UUID in any form
// understood by [uuid.Parse].
func ParseEntryRef(s string) (EntryRef, error) {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		if id <= 0 {
			return EntryRef{}, ErrInvalidEntryRef
		}
		return EntryRef{id: id}, nil
	}

	u, err := uuid.Parse(s)
	if err != nil || u == uuid.Nil {
		return EntryRef{}, ErrInvalidEntryRef
	}
	return EntryRef{uuid: u}, nil
}

// IsUUID reports whether the reference is a UUID.
func (r EntryRef) IsUUID() bool {
	return r.uuid != uuid.Nil
}

// ID returns the numeric id, zero for UUID references.
func (r EntryRef) ID() int64 {
	return r.id
}

// UUID returns the UUID, [uuid.Nil] for numeric references.
func (r EntryRef) UUID() uuid.UUID {
	return r.uuid
}

// IsZero reports whether the reference is unset.
func (r EntryRef) IsZero() bool {
	return r.id == 0 && r.uuid == uuid.Nil
}

// String implements [fmt.Stringer].
func (r EntryRef) String() string {
	if r.IsUUID() {
		return r.uuid.String()
	}
	return strconv.FormatInt(r.id, 10)
}
