package crypto

import "errors"

var (
	// ErrIntegrity is returned when the GCM authentication tag does not match:
	// the key is wrong or the ciphertext/tag was tampered with.
	ErrIntegrity = errors.New("ciphertext integrity check failed")

	// ErrInvalidKeySize is returned when a key is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when a nonce is not exactly NonceSize bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrPasswordMismatch is returned by [PasswordHasher.Verify] when the
	// password does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")
)
