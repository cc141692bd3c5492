package primitive

// ChaCha core, ported from the classic (non-IETF) Bernstein construction:
// a 128 or 256-bit key, an 8-byte nonce, a 64-bit block counter, and a
// configurable round count (8, 12 or 20). golang.org/x/crypto/chacha20 only
// implements the IETF variant (256-bit key, 12-byte nonce, 32-bit counter),
// so the classic variant used by the CHACHA8_*/CHACHA12_*/CHACHA20_*
// catalog entries is reconstructed here.

const (
	chachaBlockSize = 64

	chachaSigma0 = 0x61707865 // "expa"
	chachaSigma1 = 0x3320646e // "nd 3"
	chachaSigma2 = 0x79622d32 // "2-by"
	chachaSigma4 = 0x6b206574 // "te k"

	chachaTau1 = 0x3120646e // "nd 1"
	chachaTau2 = 0x79622d36 // "6-by"
)

func chachaRotl(x uint32, n uint) uint32 {
	return x<<n | x>>(32-n)
}

func chachaQuarterRound(x *[16]uint32, a, b, c, d int) {
	x[a] += x[b]
	x[d] ^= x[a]
	x[d] = chachaRotl(x[d], 16)
	x[c] += x[d]
	x[b] ^= x[c]
	x[b] = chachaRotl(x[b], 12)
	x[a] += x[b]
	x[d] ^= x[a]
	x[d] = chachaRotl(x[d], 8)
	x[c] += x[d]
	x[b] ^= x[c]
	x[b] = chachaRotl(x[b], 7)
}

func chachaBlock(rounds int, in *[16]uint32) [chachaBlockSize]byte {
	x := *in

	for i := 0; i < rounds; i += 2 {
		chachaQuarterRound(&x, 0, 4, 8, 12)
		chachaQuarterRound(&x, 1, 5, 9, 13)
		chachaQuarterRound(&x, 2, 6, 10, 14)
		chachaQuarterRound(&x, 3, 7, 11, 15)

		chachaQuarterRound(&x, 0, 5, 10, 15)
		chachaQuarterRound(&x, 1, 6, 11, 12)
		chachaQuarterRound(&x, 2, 7, 8, 13)
		chachaQuarterRound(&x, 3, 4, 9, 14)
	}

	var out [chachaBlockSize]byte
	for i := 0; i < 16; i++ {
		putLE32(out[i*4:], x[i]+in[i])
	}
	return out
}

// ChaChaClassic is the classic (8-byte nonce) ChaCha stream, parameterized
// by round count and key size.
type ChaChaClassic struct {
	input  [16]uint32
	rounds int
}

// NewChaChaClassic creates a classic ChaCha stream with the given key size
// in bits (128 or 256), round count (8, 12 or 20) and 8-byte nonce.
func NewChaChaClassic(bits int, key []byte, rounds int, nonce []byte) (*ChaChaClassic, error) {
	if bits != 128 && bits != 256 {
		return nil, KeySizeError{Algorithm: "ChaCha", Size: bits / 8}
	}
	if rounds != 8 && rounds != 12 && rounds != 20 {
		return nil, KeySizeError{Algorithm: "ChaCha-rounds", Size: rounds}
	}
	if len(key) != bits/8 {
		return nil, KeySizeError{Algorithm: "ChaCha", Size: len(key)}
	}
	if len(nonce) != 8 {
		return nil, InvalidNonceSizeError{Algorithm: "ChaCha", Size: len(nonce)}
	}

	c := &ChaChaClassic{rounds: rounds}

	c.input[0] = chachaSigma0
	c.input[4] = getLE32(key)
	c.input[5] = getLE32(key[4:])
	c.input[6] = getLE32(key[8:])
	c.input[7] = getLE32(key[12:])

	k := key
	if bits == 256 {
		c.input[1] = chachaSigma1
		c.input[2] = chachaSigma2
		k = key[16:]
	} else {
		c.input[1] = chachaTau1
		c.input[2] = chachaTau2
	}

	c.input[8] = getLE32(k)
	c.input[9] = getLE32(k[4:])
	c.input[10] = getLE32(k[8:])
	c.input[11] = getLE32(k[12:])

	c.input[3] = chachaSigma4
	c.input[14] = getLE32(nonce)
	c.input[15] = getLE32(nonce[4:])

	return c, nil
}

// Shuffle re-initializes the 64-bit block counter to zero and loads a new
// 8-byte nonce, without rerunning key setup.
func (c *ChaChaClassic) Shuffle(nonce []byte) {
	c.input[12] = 0
	c.input[13] = 0
	c.input[14] = getLE32(nonce)
	c.input[15] = getLE32(nonce[4:])
}

// XORKeyStream encrypts (or decrypts) src into dst, one ChaCha block at a
// time. Matching the reference C implementation, a short final block
// discards its unused keystream tail rather than carrying it into the next
// call: every call starts at a fresh block boundary.
func (c *ChaChaClassic) XORKeyStream(dst, src []byte) {
	for len(src) > 0 {
		block := chachaBlock(c.rounds, &c.input)

		c.input[12]++
		if c.input[12] == 0 {
			c.input[13]++
		}

		n := len(src)
		if n > chachaBlockSize {
			n = chachaBlockSize
		}
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ block[i]
		}
		src = src[n:]
		dst = dst[n:]
	}
}

// ChaCha20IETF is the RFC 7539 variant: 256-bit key, 96-bit nonce, 32-bit
// counter laid out in word 12.
type ChaCha20IETF struct {
	input  [16]uint32
	rounds int
}

// NewChaCha20IETF creates an IETF ChaCha20 stream from a 32-byte key,
// 12-byte nonce and an initial 32-bit counter.
func NewChaCha20IETF(key, nonce []byte, counter uint32) (*ChaCha20IETF, error) {
	if len(key) != 32 {
		return nil, KeySizeError{Algorithm: "ChaCha20-IETF", Size: len(key)}
	}
	if len(nonce) != 12 {
		return nil, InvalidNonceSizeError{Algorithm: "ChaCha20-IETF", Size: len(nonce)}
	}

	c := &ChaCha20IETF{rounds: 20}
	c.input[0] = chachaSigma0
	c.input[1] = chachaSigma1
	c.input[2] = chachaSigma2
	c.input[3] = chachaSigma4

	c.input[4] = getLE32(key)
	c.input[5] = getLE32(key[4:])
	c.input[6] = getLE32(key[8:])
	c.input[7] = getLE32(key[12:])
	c.input[8] = getLE32(key[16:])
	c.input[9] = getLE32(key[20:])
	c.input[10] = getLE32(key[24:])
	c.input[11] = getLE32(key[28:])

	c.input[12] = counter
	c.input[13] = getLE32(nonce)
	c.input[14] = getLE32(nonce[4:])
	c.input[15] = getLE32(nonce[8:])

	return c, nil
}

// XORKeyStream encrypts (or decrypts) src into dst. As with ChaChaClassic,
// each call starts at a fresh block boundary.
func (c *ChaCha20IETF) XORKeyStream(dst, src []byte) {
	for len(src) > 0 {
		block := chachaBlock(c.rounds, &c.input)
		c.input[12]++

		n := len(src)
		if n > chachaBlockSize {
			n = chachaBlockSize
		}
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ block[i]
		}
		src = src[n:]
		dst = dst[n:]
	}
}

// KeystreamBlock produces one raw 64-byte keystream block without advancing
// the counter, used by the ChaCha20-Poly1305 composition to derive the
// one-time Poly1305 key from counter 0.
func (c *ChaCha20IETF) KeystreamBlock() [chachaBlockSize]byte {
	return chachaBlock(c.rounds, &c.input)
}

func getLE32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
