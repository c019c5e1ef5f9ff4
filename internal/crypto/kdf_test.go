package crypto

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	k1 := DeriveKey("correct-horse")
	k2 := DeriveKey("correct-horse")

	require.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)
}

func TestDeriveKey_MatchesSHA256OfUTF8(t *testing.T) {
	password := "пароль-дневника 🔐"
	want := sha256.Sum256([]byte(password))

	assert.Equal(t, want[:], DeriveKey(password))
}

func TestDeriveKey_DifferentPasswords(t *testing.T) {
	passwords := []string{"", "a", "b", "correct-horse", "correct-horse ", "Correct-horse"}
	seen := make(map[string]string, len(passwords))

	for _, p := range passwords {
		k := DeriveKey(p)
		require.Len(t, k, KeySize)
		if prev, ok := seen[string(k)]; ok {
			t.Fatalf("passwords %q and %q derived the same key", prev, p)
		}
		seen[string(k)] = p
	}
}

func TestNewNonce_LengthAndRandomness(t *testing.T) {
	n1, err := NewNonce()
	require.NoError(t, err)
	n2, err := NewNonce()
	require.NoError(t, err)

	assert.Len(t, n1, NonceSize)
	assert.Len(t, n2, NonceSize)
	assert.False(t, bytes.Equal(n1, n2), "two nonces must differ")
}

func TestWipe(t *testing.T) {
	key := DeriveKey("secret")
	Wipe(key)

	assert.Equal(t, make([]byte, KeySize), key)
}

func TestWipe_Nil(t *testing.T) {
	assert.NotPanics(t, func() { Wipe(nil) })
}
