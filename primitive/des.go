package primitive

import "crypto/des"

// NewDES returns the single-key DES block cipher (56 effective key bits,
// stored in 8 bytes).
func NewDES(key []byte) (Block, error) {
	if len(key) != 8 {
		return nil, KeySizeError{Algorithm: "DES", Size: len(key)}
	}
	return des.NewCipher(key)
}

// NewTripleDES returns the 3DES-EDE block cipher (168 effective key bits,
// stored in 24 bytes as three 8-byte sub-keys K1‖K2‖K3).
func NewTripleDES(key []byte) (Block, error) {
	if len(key) != 24 {
		return nil, KeySizeError{Algorithm: "3DES-EDE", Size: len(key)}
	}
	return des.NewTripleDESCipher(key)
}
