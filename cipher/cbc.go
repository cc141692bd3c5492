package cipher

import (
	stdcipher "crypto/cipher"
)

func (ctx *Context) encodeCBC(src []byte) ([]byte, error) {
	if len(src) == 0 && ctx.padding == PadNone {
		return nil, EmptySrcError{Mode: ModeCBC}
	}
	if len(ctx.iv) == 0 {
		return nil, InvalidIVError{Algorithm: ctx.alg, Size: 0, Want: ctx.alg.IVSize()}
	}

	blk := ctx.block.BlockSize()
	padded, err := pad(ctx.padding, src, blk)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(padded))
	mode := stdcipher.NewCBCEncrypter(ctx.block, ctx.iv)
	mode.CryptBlocks(out, padded)
	ctx.iv = append([]byte(nil), out[len(out)-blk:]...)
	return out, nil
}

func (ctx *Context) decodeCBC(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, EmptySrcError{Mode: ModeCBC}
	}
	if len(ctx.iv) == 0 {
		return nil, InvalidIVError{Algorithm: ctx.alg, Size: 0, Want: ctx.alg.IVSize()}
	}

	blk := ctx.block.BlockSize()
	if len(src)%blk != 0 {
		return nil, InvalidBlockAlignmentError{Mode: ModeCBC, Size: len(src), Blk: blk}
	}

	out := make([]byte, len(src))
	mode := stdcipher.NewCBCDecrypter(ctx.block, ctx.iv)
	mode.CryptBlocks(out, src)

	pt, err := unpad(ctx.padding, out, blk)
	if err != nil {
		return nil, err
	}
	ctx.iv = append([]byte(nil), src[len(src)-blk:]...)
	return pt, nil
}
