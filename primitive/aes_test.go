package primitive

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

// FIPS-197 Appendix B: AES-128 single block encryption.
func TestNewAES_FIPS197Vector(t *testing.T) {
	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	plaintext, _ := hex.DecodeString("00112233445566778899aabbccddeeff")
	want, _ := hex.DecodeString("69c4e0d86a7b0430d8cdb78070b4c55a")

	block, err := NewAES(key)
	assert.NoError(t, err)

	got := make([]byte, 16)
	block.Encrypt(got, plaintext)
	assert.Equal(t, want, got)

	back := make([]byte, 16)
	block.Decrypt(back, got)
	assert.Equal(t, plaintext, back)
}

func TestNewAES_KeySizes(t *testing.T) {
	for _, n := range []int{16, 24, 32} {
		_, err := NewAES(make([]byte, n))
		assert.NoError(t, err)
	}
	_, err := NewAES(make([]byte, 20))
	assert.Error(t, err)
	assert.IsType(t, KeySizeError{}, err)
}
