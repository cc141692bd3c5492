package cipher

import (
	stdcipher "crypto/cipher"
)

// ctrBlockIV builds the block-size counter block from the 12-byte nonce
// prefix and the context's running 32-bit big-endian counter.
func (ctx *Context) ctrBlockIV() []byte {
	blk := ctx.block.BlockSize()
	iv := make([]byte, blk)
	copy(iv, ctx.ctrNonce)
	off := blk - 4
	iv[off+0] = byte(ctx.ctrCounter >> 24)
	iv[off+1] = byte(ctx.ctrCounter >> 16)
	iv[off+2] = byte(ctx.ctrCounter >> 8)
	iv[off+3] = byte(ctx.ctrCounter)
	return iv
}

func (ctx *Context) advanceCTR(n int) {
	blk := ctx.block.BlockSize()
	blocks := (n + blk - 1) / blk
	ctx.ctrCounter += uint32(blocks)
}

func (ctx *Context) encodeCTR(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, EmptySrcError{Mode: ModeCTR}
	}
	if len(ctx.ctrNonce) == 0 {
		return nil, InvalidIVError{Algorithm: ctx.alg, Size: 0, Want: ctx.alg.IVSize()}
	}

	out := make([]byte, len(src))
	stream := stdcipher.NewCTR(ctx.block, ctx.ctrBlockIV())
	stream.XORKeyStream(out, src)
	ctx.advanceCTR(len(src))
	return out, nil
}

func (ctx *Context) decodeCTR(src []byte) ([]byte, error) {
	// CTR is self-inverse: decoding is the same keystream XOR as encoding.
	return ctx.encodeCTR(src)
}
