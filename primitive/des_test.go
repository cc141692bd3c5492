package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDES_Roundtrip(t *testing.T) {
	key := []byte("8bytekey")
	block, err := NewDES(key)
	assert.NoError(t, err)

	plaintext := []byte("12345678")
	ct := make([]byte, 8)
	block.Encrypt(ct, plaintext)
	assert.NotEqual(t, plaintext, ct)

	pt := make([]byte, 8)
	block.Decrypt(pt, ct)
	assert.Equal(t, plaintext, pt)
}

func TestNewDES_BadKeySize(t *testing.T) {
	_, err := NewDES(make([]byte, 7))
	assert.Error(t, err)
	assert.IsType(t, KeySizeError{}, err)
}

func TestNewTripleDES_Roundtrip(t *testing.T) {
	key := []byte("24bytekeyfor3des12345678")
	block, err := NewTripleDES(key)
	assert.NoError(t, err)

	plaintext := []byte("8byteblk")
	ct := make([]byte, 8)
	block.Encrypt(ct, plaintext)

	pt := make([]byte, 8)
	block.Decrypt(pt, ct)
	assert.Equal(t, plaintext, pt)
}

func TestNewTripleDES_BadKeySize(t *testing.T) {
	_, err := NewTripleDES(make([]byte, 16))
	assert.Error(t, err)
	assert.IsType(t, KeySizeError{}, err)
}
