package cipher

import (
	"golang.org/x/crypto/poly1305"

	"github.com/cipherkit/symcrypt/primitive"
)

// ChaCha20-Poly1305 is composed by hand rather than delegated to
// golang.org/x/crypto/chacha20poly1305: the engine owns the AEAD
// construction (RFC 7539 §2.8), not just the primitive. The first
// keystream block (counter 0) is used, 32 bytes of it, as the one-time
// Poly1305 key; the payload is then encrypted starting at counter 1. The
// MAC covers AAD, its zero padding to a 16-byte boundary, the ciphertext,
// its own padding, and the little-endian 64-bit lengths of each.
func (ctx *Context) encodeChaCha20Poly1305(src []byte) ([]byte, error) {
	if len(ctx.iv) == 0 {
		return nil, AEADParamsError{Reason: "nonce not set, call SetAEADParams first"}
	}

	keyStream, err := primitive.NewChaCha20IETF(ctx.key, ctx.iv, 0)
	if err != nil {
		return nil, err
	}
	block0 := keyStream.KeystreamBlock()
	var polyKey [32]byte
	copy(polyKey[:], block0[:32])

	payload, err := primitive.NewChaCha20IETF(ctx.key, ctx.iv, 1)
	if err != nil {
		return nil, err
	}
	ct := make([]byte, len(src))
	payload.XORKeyStream(ct, src)

	tag := chacha20Poly1305Auth(&polyKey, ctx.aad, ct)
	ctx.tag = tag[:]
	return ct, nil
}

// decodeChaCha20Poly1305 always recomputes the tag and decrypts, per
// spec.md §4.6 ("The tag is always recomputed on decode so the caller can
// call check_aead_tag afterwards"): a mismatch is never reported by
// Decode itself, only by a later CheckAEADTag call.
func (ctx *Context) decodeChaCha20Poly1305(src []byte) ([]byte, error) {
	if len(ctx.iv) == 0 {
		return nil, AEADParamsError{Reason: "nonce not set, call SetAEADParams first"}
	}

	keyStream, err := primitive.NewChaCha20IETF(ctx.key, ctx.iv, 0)
	if err != nil {
		return nil, err
	}
	block0 := keyStream.KeystreamBlock()
	var polyKey [32]byte
	copy(polyKey[:], block0[:32])

	tag := chacha20Poly1305Auth(&polyKey, ctx.aad, src)
	ctx.tag = append([]byte(nil), tag[:]...)

	payload, err := primitive.NewChaCha20IETF(ctx.key, ctx.iv, 1)
	if err != nil {
		return nil, err
	}
	pt := make([]byte, len(src))
	payload.XORKeyStream(pt, src)
	return pt, nil
}

func chacha20Poly1305Auth(key *[32]byte, aad, ciphertext []byte) [16]byte {
	var msg []byte
	msg = append(msg, aad...)
	msg = append(msg, make([]byte, pad16(len(aad)))...)
	msg = append(msg, ciphertext...)
	msg = append(msg, make([]byte, pad16(len(ciphertext)))...)

	var lens [16]byte
	putLE64(lens[0:8], uint64(len(aad)))
	putLE64(lens[8:16], uint64(len(ciphertext)))
	msg = append(msg, lens[:]...)

	var out [16]byte
	poly1305.Sum(&out, msg, key)
	return out
}

func pad16(n int) int {
	if n%16 == 0 {
		return 0
	}
	return 16 - n%16
}

func putLE64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}
