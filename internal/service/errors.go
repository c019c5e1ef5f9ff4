// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pkms-go/diary-keeper/internal/container"
	"github.com/pkms-go/diary-keeper/internal/crypto"
	"github.com/pkms-go/diary-keeper/internal/session"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthentication is returned when the diary password does not match
	// the stored hash.
	ErrAuthentication = session.ErrAuthentication

	// ErrLocked is returned by every operation that needs the diary key
	// while no valid session exists.
	ErrLocked = errors.New("diary is locked")

	ErrEncryptionNotSetup     = errors.New("diary encryption is not set up")
	ErrEncryptionAlreadySetup = errors.New("diary encryption is already set up")

	// ErrStorage matches every [*StorageError].
	ErrStorage = errors.New("storage failure")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// StorageError is a filesystem failure while reading or writing an
// encrypted container. The cause is kept, so errors.Is(err, fs.ErrNotExist)
// and errors.Is(err, fs.ErrPermission) keep working.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes every StorageError match [ErrStorage].
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// contentError sorts an error from the container or cipher layer into the
// diary error taxonomy. Format and integrity failures pass through as is,
// everything else becomes a [*StorageError].
func contentError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, container.ErrInvalidContainer) || errors.Is(err, crypto.ErrIntegrity) {
		return err
	}
	return &StorageError{Op: op, Path: path, Err: err}
}

// isMissingFile reports whether err means the container does not exist.
func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
