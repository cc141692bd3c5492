package primitive

import "golang.org/x/crypto/xtea"

// NewXTEA returns the XTEA block cipher for a 128-bit key.
func NewXTEA(key []byte) (Block, error) {
	if len(key) != 16 {
		return nil, KeySizeError{Algorithm: "XTEA", Size: len(key)}
	}
	return xtea.NewCipher(key)
}
