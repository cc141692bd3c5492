package primitive

import "golang.org/x/crypto/twofish"

// NewTwofish returns the Twofish block cipher for a 128/192/256-bit key.
func NewTwofish(key []byte) (Block, error) {
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, KeySizeError{Algorithm: "Twofish", Size: len(key)}
	}
	return twofish.NewCipher(key)
}
