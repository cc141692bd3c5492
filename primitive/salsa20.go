package primitive

// Salsa20 core, ported from Bernstein's reference construction. Both the
// 128-bit ("tau") and 256-bit ("sigma") key variants are needed by the
// registry; golang.org/x/crypto/salsa20 only implements the 256-bit
// variant, so both are reconstructed here from the same state layout for
// consistency.

const salsaBlockSize = 64

func salsaRotl(x uint32, n uint) uint32 {
	return x<<n | x>>(32-n)
}

func salsaQuarterRound(x *[16]uint32, a, b, c, d int) {
	x[b] ^= salsaRotl(x[a]+x[d], 7)
	x[c] ^= salsaRotl(x[b]+x[a], 9)
	x[d] ^= salsaRotl(x[c]+x[b], 13)
	x[a] ^= salsaRotl(x[d]+x[c], 18)
}

func salsaBlock(in *[16]uint32) [salsaBlockSize]byte {
	x := *in

	for i := 0; i < 20; i += 2 {
		salsaQuarterRound(&x, 0, 4, 8, 12)
		salsaQuarterRound(&x, 5, 9, 13, 1)
		salsaQuarterRound(&x, 10, 14, 2, 6)
		salsaQuarterRound(&x, 15, 3, 7, 11)

		salsaQuarterRound(&x, 0, 1, 2, 3)
		salsaQuarterRound(&x, 5, 6, 7, 4)
		salsaQuarterRound(&x, 10, 11, 8, 9)
		salsaQuarterRound(&x, 15, 12, 13, 14)
	}

	var out [salsaBlockSize]byte
	for i := 0; i < 16; i++ {
		putLE32(out[i*4:], x[i]+in[i])
	}
	return out
}

// Salsa20 is the classic (8-byte nonce) Salsa20 stream, parameterized by
// key size (128 or 256 bits).
type Salsa20 struct {
	input [16]uint32
}

// NewSalsa20 creates a Salsa20 stream from a 128 or 256-bit key and an
// 8-byte nonce.
func NewSalsa20(bits int, key []byte, nonce []byte) (*Salsa20, error) {
	if bits != 128 && bits != 256 {
		return nil, KeySizeError{Algorithm: "Salsa20", Size: bits / 8}
	}
	if len(key) != bits/8 {
		return nil, KeySizeError{Algorithm: "Salsa20", Size: len(key)}
	}
	if len(nonce) != 8 {
		return nil, InvalidNonceSizeError{Algorithm: "Salsa20", Size: len(nonce)}
	}

	s := &Salsa20{}

	s.input[0] = chachaSigma0 // "expa" shares the same ASCII constant as ChaCha
	s.input[1] = getLE32(key)
	s.input[2] = getLE32(key[4:])
	s.input[3] = getLE32(key[8:])
	s.input[4] = getLE32(key[12:])

	k := key
	if bits == 256 {
		s.input[5] = chachaSigma1
		k = key[16:]
	} else {
		s.input[5] = chachaTau1
	}

	s.input[6] = getLE32(nonce)
	s.input[7] = getLE32(nonce[4:])
	s.input[8] = 0
	s.input[9] = 0

	if bits == 256 {
		s.input[10] = chachaSigma2
	} else {
		s.input[10] = chachaTau2
	}

	s.input[11] = getLE32(k)
	s.input[12] = getLE32(k[4:])
	s.input[13] = getLE32(k[8:])
	s.input[14] = getLE32(k[12:])
	s.input[15] = chachaSigma4

	return s, nil
}

// Shuffle loads a new 8-byte nonce and resets the 64-bit block counter to
// zero, without rerunning key setup.
func (s *Salsa20) Shuffle(nonce []byte) {
	s.input[6] = getLE32(nonce)
	s.input[7] = getLE32(nonce[4:])
	s.input[8] = 0
	s.input[9] = 0
}

// XORKeyStream encrypts (or decrypts) src into dst one Salsa20 block at a
// time. As with the ChaCha primitives, a short final block discards its
// unused keystream tail: every call starts at a fresh block boundary.
func (s *Salsa20) XORKeyStream(dst, src []byte) {
	for len(src) > 0 {
		block := salsaBlock(&s.input)

		s.input[8]++
		if s.input[8] == 0 {
			s.input[9]++
		}

		n := len(src)
		if n > salsaBlockSize {
			n = salsaBlockSize
		}
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ block[i]
		}
		src = src[n:]
		dst = dst[n:]
	}
}
