package cipher

// STREAM-mode algorithms (RC4, Salsa20, the classic ChaCha family and
// ChaCha20-IETF used bare) apply the keystream directly: encode and
// decode are the same XOR. Each call starts at a fresh keystream position
// the underlying primitive.Stream tracks internally; there is no padding
// or block alignment to enforce.

func (ctx *Context) encodeStream(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, EmptySrcError{Mode: ModeStream}
	}
	if ctx.stream == nil {
		return nil, InvalidIVError{Algorithm: ctx.alg, Size: 0, Want: ctx.alg.IVSize()}
	}

	out := make([]byte, len(src))
	ctx.stream.XORKeyStream(out, src)
	return out, nil
}

func (ctx *Context) decodeStream(src []byte) ([]byte, error) {
	return ctx.encodeStream(src)
}
