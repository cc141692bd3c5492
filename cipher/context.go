// Package cipher is a uniform dispatch layer over a closed catalog of
// symmetric algorithms (see Algorithm), each bound to exactly one mode of
// operation. A Context carries one algorithm's key schedule, IV/nonce
// register and (for AEAD modes) authentication state across repeated
// Encode/Decode calls, mirroring how the teacher's blockCipher threads a
// key, IV and padding scheme through every mode it supports.
package cipher

import (
	"crypto/subtle"

	"github.com/cipherkit/symcrypt/primitive"
)

// Context is a single initialized cipher: one algorithm, one key, and the
// mutable state (IV register, CTR counter, AEAD tag) that Encode/Decode
// calls read and update.
type Context struct {
	alg     Algorithm
	key     []byte
	padding PaddingScheme

	block  primitive.Block
	stream primitive.Stream

	iv []byte

	ctrNonce   []byte
	ctrCounter uint32

	aad     []byte
	tagSize int
	tag     []byte
}

// Init binds ctx to alg with the given key. The key must be exactly
// alg.KeySize() bytes. Padding defaults to PadSize for ECB/CBC algorithms.
func (ctx *Context) Init(alg Algorithm, key []byte) error {
	if !alg.Valid() {
		return UnknownAlgorithmError{Name: alg.String()}
	}
	if len(key) != alg.KeySize() {
		return InvalidKeySizeError{Algorithm: alg, Size: len(key)}
	}

	*ctx = Context{alg: alg, key: append([]byte(nil), key...), padding: PadSize}

	switch alg.ModeOf() {
	case ModeECB, ModeCBC, ModeCTR, ModeAEAD:
		if alg == ChaCha20Poly1305 {
			break
		}
		b, err := newBlock(alg, ctx.key)
		if err != nil {
			return err
		}
		ctx.block = b

	case ModeStream:
		// Nonce-less stream algorithms (RC4) can be constructed now;
		// nonce-keyed ones (Salsa20, ChaCha family) are built in SetIV
		// once their nonce is known.
		if alg.IVSize() == 0 {
			s, err := newStream(alg, ctx.key, nil)
			if err != nil {
				return err
			}
			ctx.stream = s
		}
	}

	return nil
}

// End clears key material and per-session state, leaving ctx ready for
// reuse with a fresh Init call.
func (ctx *Context) End() {
	for i := range ctx.key {
		ctx.key[i] = 0
	}
	*ctx = Context{alg: NullCipher}
}

// Algorithm returns the algorithm ctx was initialized with.
func (ctx *Context) Algorithm() Algorithm { return ctx.alg }

// SetPadding selects the padding scheme used by ECB/CBC encode/decode.
// Calling this for any other mode is a silent no-op: CTR, AEAD and STREAM
// modes never consume padding, so there is nothing to set.
func (ctx *Context) SetPadding(scheme PaddingScheme) error {
	mode := ctx.alg.ModeOf()
	if mode != ModeECB && mode != ModeCBC {
		return nil
	}
	ctx.padding = scheme
	return nil
}

// SetIV sets the IV (CBC) or nonce (CTR, STREAM) register used by the next
// Encode/Decode call. It also resets the CTR counter to zero.
func (ctx *Context) SetIV(iv []byte) error {
	if len(iv) != ctx.alg.IVSize() {
		return InvalidIVError{Algorithm: ctx.alg, Size: len(iv), Want: ctx.alg.IVSize()}
	}
	ctx.iv = append([]byte(nil), iv...)
	ctx.ctrNonce = ctx.iv
	ctx.ctrCounter = 0

	if ctx.alg.ModeOf() == ModeStream && ctx.alg.IVSize() > 0 {
		s, err := newStream(ctx.alg, ctx.key, ctx.iv)
		if err != nil {
			return err
		}
		ctx.stream = s
	}

	return nil
}

// SetCounter overrides the running 32-bit CTR block counter with an
// explicit starting value (the "counter" Init parameter in the C API this
// package ports). Valid only in CTR mode; call after SetIV, since SetIV
// resets the counter back to zero.
func (ctx *Context) SetCounter(counter uint32) error {
	if ctx.alg.ModeOf() != ModeCTR {
		return UnsupportedModeError{Algorithm: ctx.alg, Mode: ModeCTR}
	}
	ctx.ctrCounter = counter
	return nil
}

// SetAEADParams configures the nonce, associated data and tag size used by
// the next GCM/ChaCha20-Poly1305 Encode/Decode call. ChaCha20-Poly1305
// fixes its nonce at 12 bytes and its tag at 16, per RFC 7539 §2.8; GCM
// accepts any nonce length and a tag of 4 to 16 bytes.
func (ctx *Context) SetAEADParams(nonce, aad []byte, tagSize int) error {
	if ctx.alg.ModeOf() != ModeAEAD {
		return AEADParamsError{Reason: "algorithm is not an AEAD mode"}
	}
	if len(nonce) == 0 {
		return EmptySrcError{Mode: ModeAEAD}
	}
	if ctx.alg == ChaCha20Poly1305 {
		if len(nonce) != 12 {
			return InvalidNonceError{Algorithm: ctx.alg, Size: len(nonce)}
		}
		if tagSize != 16 {
			return AEADParamsError{Reason: "ChaCha20-Poly1305 tag size must be 16 bytes"}
		}
	} else if tagSize < 4 || tagSize > 16 {
		return AEADParamsError{Reason: "GCM tag size must be between 4 and 16 bytes"}
	}
	ctx.iv = append([]byte(nil), nonce...)
	ctx.aad = append([]byte(nil), aad...)
	ctx.tagSize = tagSize
	return nil
}

// GetAEADTag returns the authentication tag produced by the most recent
// Encode or Decode call in an AEAD mode.
func (ctx *Context) GetAEADTag() []byte {
	return append([]byte(nil), ctx.tag...)
}

// SetAEADTag replaces the stored authentication tag in an AEAD mode. Decode
// does not consult it: every AEAD Encode or Decode call overwrites it with
// the tag that call computes, so a received tag is verified by passing it
// to CheckAEADTag after Decode.
func (ctx *Context) SetAEADTag(tag []byte) error {
	if ctx.alg.ModeOf() != ModeAEAD {
		return AEADParamsError{Reason: "algorithm is not an AEAD mode"}
	}
	ctx.tag = append([]byte(nil), tag...)
	return nil
}

// CheckAEADTag compares tag against the tag produced by the most recent
// Encode/Decode call using a constant-time comparison, returning
// TagMismatchError on any difference.
func (ctx *Context) CheckAEADTag(tag []byte) error {
	if len(tag) != len(ctx.tag) || subtle.ConstantTimeCompare(tag, ctx.tag) != 1 {
		return TagMismatchError{Algorithm: ctx.alg}
	}
	return nil
}

// Encode encrypts src and returns the ciphertext. For AEAD modes, the
// authentication tag is available afterwards via GetAEADTag.
func (ctx *Context) Encode(src []byte) ([]byte, error) {
	switch ctx.alg.ModeOf() {
	case ModeECB:
		return ctx.encodeECB(src)
	case ModeCBC:
		return ctx.encodeCBC(src)
	case ModeCTR:
		return ctx.encodeCTR(src)
	case ModeAEAD:
		if ctx.alg == ChaCha20Poly1305 {
			return ctx.encodeChaCha20Poly1305(src)
		}
		return ctx.encodeGCM(src)
	case ModeStream:
		return ctx.encodeStream(src)
	}
	return nil, UnsupportedModeError{Algorithm: ctx.alg, Mode: ctx.alg.ModeOf()}
}

// Decode decrypts src and returns the plaintext. For AEAD modes, src is the
// ciphertext alone (no appended tag); Decode recomputes the tag over src
// and the AAD, stores it for GetAEADTag/CheckAEADTag, and returns the
// recovered plaintext without reporting a mismatch itself.
func (ctx *Context) Decode(src []byte) ([]byte, error) {
	switch ctx.alg.ModeOf() {
	case ModeECB:
		return ctx.decodeECB(src)
	case ModeCBC:
		return ctx.decodeCBC(src)
	case ModeCTR:
		return ctx.decodeCTR(src)
	case ModeAEAD:
		if ctx.alg == ChaCha20Poly1305 {
			return ctx.decodeChaCha20Poly1305(src)
		}
		return ctx.decodeGCM(src)
	case ModeStream:
		return ctx.decodeStream(src)
	}
	return nil, UnsupportedModeError{Algorithm: ctx.alg, Mode: ctx.alg.ModeOf()}
}
