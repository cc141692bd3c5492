package primitive

import "golang.org/x/crypto/blowfish"

// NewBlowfish returns the Blowfish block cipher for a 128-bit (16-byte) key,
// the size this catalog's BLOWFISH_128_* algorithms use. Blowfish itself
// accepts keys from 32 to 448 bits; this port only exposes the one size the
// registry advertises.
func NewBlowfish(key []byte) (Block, error) {
	if len(key) != 16 {
		return nil, KeySizeError{Algorithm: "Blowfish", Size: len(key)}
	}
	return blowfish.NewCipher(key)
}
