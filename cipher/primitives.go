package cipher

import (
	"crypto/aes"
	"crypto/des"

	"github.com/cipherkit/symcrypt/primitive"
	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/twofish"
	"golang.org/x/crypto/xtea"
)

// newBlock constructs the underlying primitive.Block for a block-mode
// algorithm. AES and DES/3DES go through the standard library directly
// (the teacher does the same), Blowfish, Twofish and XTEA through
// golang.org/x/crypto, and ARIA and Camellia through the primitive bank.
func newBlock(alg Algorithm, key []byte) (primitive.Block, error) {
	switch {
	case alg >= AES128ECB && alg <= AES256GCM:
		b, err := aes.NewCipher(key)
		if err != nil {
			return nil, CreateCipherError{Algorithm: alg, Err: err}
		}
		return b, nil

	case alg >= ARIA128ECB && alg <= ARIA256GCM:
		b, err := primitive.NewAria(key)
		if err != nil {
			return nil, CreateCipherError{Algorithm: alg, Err: err}
		}
		return b, nil

	case alg == Blowfish128ECB || alg == Blowfish128CBC:
		b, err := blowfish.NewCipher(key)
		if err != nil {
			return nil, CreateCipherError{Algorithm: alg, Err: err}
		}
		return b, nil

	case alg >= Camellia128ECB && alg <= Camellia256GCM:
		b, err := primitive.NewCamellia(key)
		if err != nil {
			return nil, CreateCipherError{Algorithm: alg, Err: err}
		}
		return b, nil

	case alg == DESECB || alg == DESCBC:
		b, err := des.NewCipher(key)
		if err != nil {
			return nil, CreateCipherError{Algorithm: alg, Err: err}
		}
		return b, nil

	case alg == DESEDE3ECB || alg == DESEDE3CBC:
		b, err := des.NewTripleDESCipher(key)
		if err != nil {
			return nil, CreateCipherError{Algorithm: alg, Err: err}
		}
		return b, nil

	case alg >= Twofish128ECB && alg <= Twofish256GCM:
		b, err := twofish.NewCipher(key)
		if err != nil {
			return nil, CreateCipherError{Algorithm: alg, Err: err}
		}
		return b, nil

	case alg == XTEA128ECB || alg == XTEA128CBC:
		b, err := xtea.NewCipher(key)
		if err != nil {
			return nil, CreateCipherError{Algorithm: alg, Err: err}
		}
		return b, nil
	}

	return nil, UnsupportedModeError{Algorithm: alg, Mode: ModeECB}
}

// newStream constructs the keystream generator for a stream-mode
// algorithm, seeded with the given nonce (where the algorithm uses one).
func newStream(alg Algorithm, key, nonce []byte) (primitive.Stream, error) {
	switch alg {
	case RC4_64, RC4_128:
		s, err := primitive.NewRC4(key)
		if err != nil {
			return nil, CreateCipherError{Algorithm: alg, Err: err}
		}
		return s, nil

	case Salsa20_128:
		return primitive.NewSalsa20(128, key, nonce)

	case Salsa20_256:
		return primitive.NewSalsa20(256, key, nonce)

	case ChaCha8_128:
		return primitive.NewChaChaClassic(128, key, 8, nonce)
	case ChaCha8_256:
		return primitive.NewChaChaClassic(256, key, 8, nonce)
	case ChaCha12_128:
		return primitive.NewChaChaClassic(128, key, 12, nonce)
	case ChaCha12_256:
		return primitive.NewChaChaClassic(256, key, 12, nonce)
	case ChaCha20_128:
		return primitive.NewChaChaClassic(128, key, 20, nonce)
	case ChaCha20_256:
		return primitive.NewChaChaClassic(256, key, 20, nonce)

	case ChaCha20IETF:
		return primitive.NewChaCha20IETF(key, nonce, 0)
	}

	return nil, UnsupportedModeError{Algorithm: alg, Mode: ModeStream}
}
