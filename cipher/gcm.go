package cipher

import (
	stdcipher "crypto/cipher"
)

// GCM is driven entirely through the standard library's GHASH-based
// implementation: crypto/cipher.NewGCM for the common 12-byte nonce case,
// falling back to NewGCMWithNonceSize for any other nonce length (which
// internally derives the 16-byte initial counter block from the nonce via
// GHASH, per SP 800-38D). Both produce a full 16-byte tag, which the engine
// truncates to the configured tag size (a shorter GCM tag is the leading
// bytes of the full one). The engine's job is picking the right
// constructor, owning the nonce/AAD/tag registers across calls, and
// storing the resulting tag.
func (ctx *Context) gcmFor() (stdcipher.AEAD, error) {
	if len(ctx.iv) == 12 {
		return stdcipher.NewGCM(ctx.block)
	}
	return stdcipher.NewGCMWithNonceSize(ctx.block, len(ctx.iv))
}

func (ctx *Context) encodeGCM(src []byte) ([]byte, error) {
	if len(ctx.iv) == 0 {
		return nil, AEADParamsError{Reason: "nonce not set, call SetAEADParams first"}
	}
	tagSize := ctx.tagSize
	if tagSize == 0 {
		tagSize = 16
	}

	gcm, err := ctx.gcmFor()
	if err != nil {
		return nil, CreateCipherError{Algorithm: ctx.alg, Err: err}
	}

	sealed := gcm.Seal(nil, ctx.iv, src, ctx.aad)
	ct := sealed[:len(src)]
	ctx.tag = append([]byte(nil), sealed[len(src):len(src)+tagSize]...)
	return ct, nil
}

// decodeGCM always recovers and returns the plaintext, never reporting a
// tag mismatch itself: GCM's CTR keystream step is self-inverse, so
// running it a second time over the recovered plaintext regenerates the
// original ciphertext and, with it, the authentic tag for that ciphertext
// (GHASH is computed over the ciphertext, not the plaintext). This lets
// the engine recompute the real tag from src alone, with no dependency on
// whatever the caller may have staged via SetAEADTag. The caller is
// responsible for calling CheckAEADTag to detect tampering.
func (ctx *Context) decodeGCM(src []byte) ([]byte, error) {
	if len(ctx.iv) == 0 {
		return nil, AEADParamsError{Reason: "nonce not set, call SetAEADParams first"}
	}
	if len(src) == 0 {
		return nil, EmptySrcError{Mode: ModeAEAD}
	}
	tagSize := ctx.tagSize
	if tagSize == 0 {
		tagSize = 16
	}

	gcm, err := ctx.gcmFor()
	if err != nil {
		return nil, CreateCipherError{Algorithm: ctx.alg, Err: err}
	}

	keystreamed := gcm.Seal(nil, ctx.iv, src, ctx.aad)
	pt := append([]byte(nil), keystreamed[:len(src)]...)

	resealed := gcm.Seal(nil, ctx.iv, pt, ctx.aad)
	ctx.tag = append([]byte(nil), resealed[len(pt):len(pt)+tagSize]...)

	return pt, nil
}
