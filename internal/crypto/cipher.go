// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// aesGCM is the AES-256-GCM implementation of [Cipher].
type aesGCM struct{}

// NewCipher returns the AES-256-GCM [Cipher] used for all diary containers:
// 256-bit key, 96-bit nonce, 128-bit tag.
func NewCipher() Cipher {
	return &aesGCM{}
}

// Encrypt implements [Cipher]. The tag is split off the end of the GCM
// output so it can be stored in its own header slot.
func (a *aesGCM) Encrypt(key, nonce, plaintext []byte) ([]byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	if len(nonce) != NonceSize {
		return nil, nil, fmt.Errorf("%w: got %d bytes", ErrInvalidNonceSize, len(nonce))
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - TagSize

	return sealed[:split:split], sealed[split:], nil
}

// Decrypt implements [Cipher]. The tag is re-attached to the ciphertext and
// verified by GCM before any plaintext is returned.
func (a *aesGCM) Decrypt(key, nonce, ciphertext, tag []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidNonceSize, len(nonce))
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: tag is %d bytes", ErrIntegrity, len(tag))
	}

	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIntegrity, err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
