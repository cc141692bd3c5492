package primitive

import "crypto/aes"

// NewAES returns the AES block cipher for a 128/192/256-bit key. It is a
// thin pass-through to the standard library, which is the reference
// implementation of FIPS-197.
func NewAES(key []byte) (Block, error) {
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, KeySizeError{Algorithm: "AES", Size: len(key)}
	}
	return aes.NewCipher(key)
}
