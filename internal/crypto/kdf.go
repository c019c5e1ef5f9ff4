// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the cryptographic primitives of the diary: key
// derivation from the diary password, AES-256-GCM sealing of entry and media
// payloads, and hashing of the diary password for unlock checks.
//
// Nothing in this package touches the filesystem or keeps state between calls.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
)

const (
	// KeySize is the length of a derived diary key (AES-256).
	KeySize = 32
	// NonceSize is the GCM nonce length stored in every container header.
	NonceSize = 12
	// TagSize is the GCM authentication tag length.
	TagSize = 16
)

// DeriveKey turns a diary password into a 32-byte key as SHA-256 over the
// UTF-8 bytes of password.
//
// The derivation is unsalted and fast. Files written by earlier releases
// depend on it, so it must not change without a container format bump.
func DeriveKey(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return sum[:]
}

// NewNonce reads NonceSize fresh bytes from the OS CSPRNG.
func NewNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return nonce, nil
}

// Wipe overwrites b with zeroes in place.
func Wipe(b []byte) {
	clear(b)
}
