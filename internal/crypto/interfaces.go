// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Cipher performs authenticated encryption of diary payloads.
//
// The nonce is always supplied by the caller. It must come from [NewNonce]
// for every single encryption: reusing a nonce under the same key breaks
// both the confidentiality and the integrity of AES-GCM.
type Cipher interface {
	// Encrypt seals plaintext with key and nonce and returns the ciphertext
	// and the detached 16-byte authentication tag. No associated data is bound.
	Encrypt(key, nonce, plaintext []byte) (ciphertext, tag []byte, err error)

	// Decrypt verifies tag and returns the plaintext. Any mismatch (wrong key,
	// flipped bit, truncated input) yields [ErrIntegrity] and no plaintext.
	Decrypt(key, nonce, ciphertext, tag []byte) ([]byte, error)
}

// PasswordHasher hashes and verifies diary passwords. The hash is only used
// to authenticate unlock attempts and is never used as key material.
type PasswordHasher interface {
	// Hash returns an encoded, salted hash of password.
	Hash(password string) (string, error)

	// Verify returns nil when password matches hash and
	// [ErrPasswordMismatch] otherwise.
	Verify(password, hash string) error
}
