package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestAESGCM_RoundTrip(t *testing.T) {
	dec, err := NewAESGCM(testKey)
	require.NoError(t, err)

	ciphertext, err := dec.Encrypt("sk-test-api-key-12345")
	require.NoError(t, err)
	assert.NotContains(t, ciphertext, "sk-test", "ciphertext must not leak plaintext")

	plaintext, err := dec.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "sk-test-api-key-12345", plaintext)
}

func TestAESGCM_RejectsBadKey(t *testing.T) {
	_, err := NewAESGCM("not-hex")
	assert.Error(t, err)

	_, err = NewAESGCM("abcd") // valid hex, wrong length
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}

func TestAESGCM_RejectsTamperedCiphertext(t *testing.T) {
	dec, err := NewAESGCM(testKey)
	require.NoError(t, err)

	ciphertext, err := dec.Encrypt("secret")
	require.NoError(t, err)

	tampered := strings.Replace(ciphertext, string(ciphertext[10]), "A", 1)
	if tampered == ciphertext {
		tampered = strings.Replace(ciphertext, string(ciphertext[10]), "B", 1)
	}

	_, err = dec.Decrypt(tampered)
	assert.Error(t, err)
}

func TestAESGCM_RejectsGarbage(t *testing.T) {
	dec, err := NewAESGCM(testKey)
	require.NoError(t, err)

	_, err = dec.Decrypt("!!!not-base64!!!")
	assert.Error(t, err)

	_, err = dec.Decrypt("c2hvcnQ=") // valid base64, shorter than a nonce
	assert.Error(t, err)
}
