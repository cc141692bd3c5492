package cipher

// PaddingScheme identifies how a short final block is padded out to the
// algorithm's block size before ECB/CBC encoding, and how that padding is
// recovered after decoding.
type PaddingScheme string

const (
	// PadNone performs no padding. The caller must hand in block-aligned
	// data; on decode, the full recovered buffer is returned as-is, with
	// any trailing bytes beyond the plaintext's real length left for the
	// caller to trim (there is no marker to find them by).
	PadNone PaddingScheme = "NONE"

	// PadSize appends n bytes, each holding the value n, where n is the
	// number of padding bytes added (1..blockSize, so an already-aligned
	// buffer still gets a full extra block of padding).
	PadSize PaddingScheme = "SIZE"

	// PadZeros appends n-1 zero bytes preceded by one byte holding n, the
	// total number of padding bytes (including that length byte).
	PadZeros PaddingScheme = "ZEROS"

	// PadOnes appends n-1 bytes of 0xFF preceded by one byte holding n, the
	// total number of padding bytes (including that length byte).
	PadOnes PaddingScheme = "ONES"
)

// padNeeded returns how many bytes of padding applying scheme to a
// plaintext of length n with the given block size would add.
func padNeeded(scheme PaddingScheme, length, blockSize int) int {
	if scheme == PadNone {
		return (blockSize - length%blockSize) % blockSize
	}
	rem := length % blockSize
	return blockSize - rem
}

func pad(scheme PaddingScheme, src []byte, blockSize int) ([]byte, error) {
	n := padNeeded(scheme, len(src), blockSize)

	switch scheme {
	case PadNone:
		if n != 0 {
			return nil, InvalidBlockAlignmentError{Size: len(src), Blk: blockSize}
		}
		return src, nil

	case PadSize:
		out := make([]byte, len(src)+n)
		copy(out, src)
		for i := len(src); i < len(out); i++ {
			out[i] = byte(n)
		}
		return out, nil

	case PadZeros:
		out := make([]byte, len(src)+n)
		copy(out, src)
		out[len(src)] = byte(n)
		return out, nil

	case PadOnes:
		out := make([]byte, len(src)+n)
		copy(out, src)
		out[len(src)] = byte(n)
		for i := len(src) + 1; i < len(out); i++ {
			out[i] = 0xff
		}
		return out, nil

	default:
		return nil, UnsupportedPaddingError{Scheme: scheme}
	}
}

func unpad(scheme PaddingScheme, src []byte, blockSize int) ([]byte, error) {
	if len(src) == 0 || len(src)%blockSize != 0 {
		return nil, InvalidBlockAlignmentError{Size: len(src), Blk: blockSize}
	}

	switch scheme {
	case PadNone:
		return src, nil

	case PadSize:
		n := int(src[len(src)-1])
		if n == 0 || n > len(src) || n > blockSize {
			return nil, PaddingError{Scheme: scheme}
		}
		for i := len(src) - n; i < len(src); i++ {
			if src[i] != byte(n) {
				return nil, PaddingError{Scheme: scheme}
			}
		}
		return src[:len(src)-n], nil

	case PadZeros, PadOnes:
		return unpadMarked(scheme, src, blockSize)

	default:
		return nil, UnsupportedPaddingError{Scheme: scheme}
	}
}

// unpadMarked handles PadZeros/PadOnes, whose length byte sits at the start
// of the padding run rather than its end: scan back over the fill byte to
// locate the length marker, then validate it against the position found.
func unpadMarked(scheme PaddingScheme, src []byte, blockSize int) ([]byte, error) {
	fill := byte(0x00)
	if scheme == PadOnes {
		fill = 0xff
	}

	i := len(src) - 1
	count := 0
	for i >= 0 && count < blockSize-1 && src[i] == fill {
		i--
		count++
	}
	if i < 0 {
		return nil, PaddingError{Scheme: scheme}
	}

	n := int(src[i])
	if n == 0 || n > len(src) || n > blockSize {
		return nil, PaddingError{Scheme: scheme}
	}
	if i != len(src)-n {
		return nil, PaddingError{Scheme: scheme}
	}
	return src[:i], nil
}
