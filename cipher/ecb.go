package cipher

func (ctx *Context) encodeECB(src []byte) ([]byte, error) {
	if len(src) == 0 && ctx.padding == PadNone {
		return nil, EmptySrcError{Mode: ModeECB}
	}

	blk := ctx.block.BlockSize()
	padded, err := pad(ctx.padding, src, blk)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += blk {
		ctx.block.Encrypt(out[i:i+blk], padded[i:i+blk])
	}
	return out, nil
}

func (ctx *Context) decodeECB(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, EmptySrcError{Mode: ModeECB}
	}

	blk := ctx.block.BlockSize()
	if len(src)%blk != 0 {
		return nil, InvalidBlockAlignmentError{Mode: ModeECB, Size: len(src), Blk: blk}
	}

	out := make([]byte, len(src))
	for i := 0; i < len(src); i += blk {
		ctx.block.Decrypt(out[i:i+blk], src[i:i+blk])
	}

	return unpad(ctx.padding, out, blk)
}
