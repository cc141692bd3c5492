package primitive

import "crypto/rc4"

// NewRC4 returns the RC4 keystream generator for a 64-bit (8-byte) or
// 128-bit (16-byte) key, the two sizes the registry advertises (RC4 itself
// accepts 1 to 256 bytes of key).
func NewRC4(key []byte) (Stream, error) {
	if len(key) != 8 && len(key) != 16 {
		return nil, KeySizeError{Algorithm: "RC4", Size: len(key)}
	}
	return rc4.NewCipher(key)
}
