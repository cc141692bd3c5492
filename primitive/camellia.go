package primitive

// Camellia, ported from the NESSIE submission reference (camellia.c),
// using the single-S-box formulation (SBOX2/3/4 derived from SBOX1 by
// rotation, matching the USE_S_BOX_1_ONLY path of the reference).

const camelliaBlockSize = 16
const camelliaKeySchedule = 272

var camelliaSBox1 = [256]byte{
	112, 130, 44, 236, 179, 39, 192, 229, 228, 133, 87, 53, 234, 12, 174, 65,
	35, 239, 107, 147, 69, 25, 165, 33, 237, 14, 79, 78, 29, 101, 146, 189,
	134, 184, 175, 143, 124, 235, 31, 206, 62, 48, 220, 95, 94, 197, 11, 26,
	166, 225, 57, 202, 213, 71, 93, 61, 217, 1, 90, 214, 81, 86, 108, 77,
	139, 13, 154, 102, 251, 204, 176, 45, 116, 18, 43, 32, 240, 177, 132, 153,
	223, 76, 203, 194, 52, 126, 118, 5, 109, 183, 169, 49, 209, 23, 4, 215,
	20, 88, 58, 97, 222, 27, 17, 28, 50, 15, 156, 22, 83, 24, 242, 34,
	254, 68, 207, 178, 195, 181, 122, 145, 36, 8, 232, 168, 96, 252, 105, 80,
	170, 208, 160, 125, 161, 137, 98, 151, 84, 91, 30, 149, 224, 255, 100, 210,
	16, 196, 0, 72, 163, 247, 117, 219, 138, 3, 230, 218, 9, 63, 221, 148,
	135, 92, 131, 2, 205, 74, 144, 51, 115, 103, 246, 243, 157, 127, 191, 226,
	82, 155, 216, 38, 200, 55, 198, 59, 129, 150, 111, 75, 19, 190, 99, 46,
	233, 121, 167, 140, 159, 110, 188, 142, 41, 245, 249, 182, 47, 253, 180, 89,
	120, 152, 6, 106, 231, 70, 113, 186, 212, 37, 171, 66, 136, 162, 141, 250,
	114, 7, 185, 85, 248, 238, 172, 10, 54, 73, 42, 104, 60, 56, 241, 164,
	64, 40, 211, 123, 187, 201, 67, 193, 21, 227, 173, 244, 119, 199, 128, 158,
}

func camelliaSBox(which int, n byte) byte {
	switch which {
	case 1:
		return camelliaSBox1[n]
	case 2:
		v := camelliaSBox1[n]
		return byte((v >> 7) ^ (v << 1))
	case 3:
		v := camelliaSBox1[n]
		return byte((v >> 1) ^ (v << 7))
	default:
		return camelliaSBox1[byte((int(n)<<1)^(int(n)>>7))]
	}
}

func camelliaFeistel(x, k, y []byte) {
	var t [8]byte
	t[0] = camelliaSBox(1, x[0]^k[0])
	t[1] = camelliaSBox(2, x[1]^k[1])
	t[2] = camelliaSBox(3, x[2]^k[2])
	t[3] = camelliaSBox(4, x[3]^k[3])
	t[4] = camelliaSBox(2, x[4]^k[4])
	t[5] = camelliaSBox(3, x[5]^k[5])
	t[6] = camelliaSBox(4, x[6]^k[6])
	t[7] = camelliaSBox(1, x[7]^k[7])

	y[0] ^= t[0] ^ t[2] ^ t[3] ^ t[5] ^ t[6] ^ t[7]
	y[1] ^= t[0] ^ t[1] ^ t[3] ^ t[4] ^ t[6] ^ t[7]
	y[2] ^= t[0] ^ t[1] ^ t[2] ^ t[4] ^ t[5] ^ t[7]
	y[3] ^= t[1] ^ t[2] ^ t[3] ^ t[4] ^ t[5] ^ t[6]
	y[4] ^= t[0] ^ t[1] ^ t[5] ^ t[6] ^ t[7]
	y[5] ^= t[1] ^ t[2] ^ t[4] ^ t[6] ^ t[7]
	y[6] ^= t[2] ^ t[3] ^ t[4] ^ t[5] ^ t[7]
	y[7] ^= t[0] ^ t[3] ^ t[4] ^ t[5] ^ t[6]
}

var camelliaKIDX = [60]int{
	0x00, 0x00, 0x04, 0x04, 0x00, 0x00, 0x04, 0x04, 0x04, 0x04, 0x00, 0x00, 0x04, 0x00, 0x04,
	0x04, 0x00, 0x00, 0x00, 0x00, 0x04, 0x04, 0x00, 0x00, 0x04, 0x04, 0x00, 0x00, 0x0c, 0x0c,
	0x08, 0x08, 0x04, 0x04, 0x08, 0x08, 0x0c, 0x0c, 0x00, 0x00, 0x04, 0x04, 0x00, 0x00, 0x08,
	0x08, 0x0c, 0x0c, 0x00, 0x00, 0x04, 0x04, 0x08, 0x08, 0x04, 0x04, 0x00, 0x00, 0x0c, 0x0c,
}

var camelliaKSFT = [60]int{
	0x00, 0x40, 0x00, 0x40, 0x0f, 0x4f, 0x0f, 0x4f, 0x1e, 0x5e, 0x2d, 0x6d, 0x2d, 0x7c, 0x3c,
	0x7c, 0x4d, 0x0d, 0x5e, 0x1e, 0x5e, 0x1e, 0x6f, 0x2f, 0x6f, 0x2f, 0x00, 0x40, 0x00, 0x40,
	0x0f, 0x4f, 0x0f, 0x4f, 0x1e, 0x5e, 0x1e, 0x5e, 0x2d, 0x6d, 0x2d, 0x6d, 0x3c, 0x7c, 0x3c,
	0x7c, 0x3c, 0x7c, 0x4d, 0x0d, 0x4d, 0x0d, 0x5e, 0x1e, 0x5e, 0x1e, 0x6f, 0x2f, 0x6f, 0x2f,
}

func camelliaRotate(x []uint32, one, i int, y []uint32) {
	idx := camelliaKIDX[i+one*26]
	n := camelliaKSFT[i+one*26]
	w := x[idx : idx+4]
	r := uint(n & 31)
	off := (n >> 5)

	if r != 0 {
		y[0] = w[(off+0)&3]<<r ^ w[(off+1)&3]>>(32-r)
		y[1] = w[(off+1)&3]<<r ^ w[(off+2)&3]>>(32-r)
	} else {
		y[0] = w[(off+0)&3]
		y[1] = w[(off+1)&3]
	}
}

func camelliaBytesToBlock(x []byte, y []uint32) {
	y[0] = getBE32(x)
	y[1] = getBE32(x[4:])
	y[2] = getBE32(x[8:])
	y[3] = getBE32(x[12:])
}

func camelliaBlockToBytes(x []uint32, y []byte) {
	putBE32(y, x[0])
	putBE32(y[4:], x[1])
	putBE32(y[8:], x[2])
	putBE32(y[12:], x[3])
}

func camelliaFLLayer(x, kl, kr []byte) {
	var t, u, v [4]uint32
	camelliaBytesToBlock(x, t[:])
	u[0], u[1] = getBE32(kl), getBE32(kl[4:])
	v[0], v[1] = getBE32(kr), getBE32(kr[4:])

	t[1] ^= (t[0]&u[0])<<1 ^ (t[0]&u[0])>>31
	t[0] ^= t[1] | u[1]
	t[2] ^= t[3] | v[1]
	t[3] ^= (t[2]&v[0])<<1 ^ (t[2]&v[0])>>31

	camelliaBlockToBytes(t[:], x)
}

func camelliaSwapXor(x, y []byte) {
	var tmp [8]byte
	copy(tmp[:], x[8:16])
	copy(x[8:16], x[0:8])
	copy(x[0:8], tmp[:])
	for i := 0; i < 16; i++ {
		x[i] ^= y[i]
	}
}

func camelliaEncryptBlock(n int, p, e, c []byte) {
	copy(c, p[:16])
	for i := 0; i < 16; i++ {
		c[i] ^= e[i]
	}

	for i := 0; i < 3; i++ {
		camelliaFeistel(c[0:8], e[16+i*16:24+i*16], c[8:16])
		camelliaFeistel(c[8:16], e[24+i*16:32+i*16], c[0:8])
	}

	camelliaFLLayer(c, e[64:72], e[72:80])

	for i := 0; i < 3; i++ {
		camelliaFeistel(c[0:8], e[80+i*16:88+i*16], c[8:16])
		camelliaFeistel(c[8:16], e[88+i*16:96+i*16], c[0:8])
	}

	camelliaFLLayer(c, e[128:136], e[136:144])

	for i := 0; i < 3; i++ {
		camelliaFeistel(c[0:8], e[144+i*16:152+i*16], c[8:16])
		camelliaFeistel(c[8:16], e[152+i*16:160+i*16], c[0:8])
	}

	if n == 128 {
		camelliaSwapXor(c, e[192:208])
	} else {
		camelliaFLLayer(c, e[192:200], e[200:208])

		for i := 0; i < 3; i++ {
			camelliaFeistel(c[0:8], e[208+i*16:216+i*16], c[8:16])
			camelliaFeistel(c[8:16], e[216+i*16:224+i*16], c[0:8])
		}

		camelliaSwapXor(c, e[256:272])
	}
}

func camelliaDecryptBlock(n int, c, e, p []byte) {
	copy(p, c[:16])

	if n == 128 {
		for i := 0; i < 16; i++ {
			p[i] ^= e[192+i]
		}
	} else {
		for i := 0; i < 16; i++ {
			p[i] ^= e[256+i]
		}

		for i := 2; i >= 0; i-- {
			camelliaFeistel(p[0:8], e[216+i*16:224+i*16], p[8:16])
			camelliaFeistel(p[8:16], e[208+i*16:216+i*16], p[0:8])
		}

		camelliaFLLayer(p, e[200:208], e[192:200])
	}

	for i := 2; i >= 0; i-- {
		camelliaFeistel(p[0:8], e[152+i*16:160+i*16], p[8:16])
		camelliaFeistel(p[8:16], e[144+i*16:152+i*16], p[0:8])
	}

	camelliaFLLayer(p, e[136:144], e[128:136])

	for i := 2; i >= 0; i-- {
		camelliaFeistel(p[0:8], e[88+i*16:96+i*16], p[8:16])
		camelliaFeistel(p[8:16], e[80+i*16:88+i*16], p[0:8])
	}

	camelliaFLLayer(p, e[72:80], e[64:72])

	for i := 2; i >= 0; i-- {
		camelliaFeistel(p[0:8], e[24+i*16:32+i*16], p[8:16])
		camelliaFeistel(p[8:16], e[16+i*16:24+i*16], p[0:8])
	}

	camelliaSwapXor(p, e[0:16])
}

func camelliaKeygen(n int, key, res []byte) {
	var wrd [20]uint32
	var tmp [64]byte

	sigma := [48]byte{
		0xa0, 0x9e, 0x66, 0x7f, 0x3b, 0xcc, 0x90, 0x8b,
		0xb6, 0x7a, 0xe8, 0x58, 0x4c, 0xaa, 0x73, 0xb2,
		0xc6, 0xef, 0x37, 0x2f, 0xe9, 0x4f, 0x82, 0xbe,
		0x54, 0xff, 0x53, 0xa5, 0xf1, 0xd3, 0x6f, 0x1c,
		0x10, 0xe5, 0x27, 0xfa, 0xde, 0x68, 0x2d, 0x1d,
		0xb0, 0x56, 0x88, 0xc2, 0xb3, 0xe6, 0xc1, 0xfd,
	}

	if n == 192 {
		copy(tmp[0:24], key[0:24])
		copy(tmp[24:32], key[16:24])
		for i := 24; i < 32; i++ {
			tmp[i] ^= 0xff
		}
	} else {
		copy(tmp[0:n/8], key[0:n/8])
	}

	copy(tmp[32:48], key[0:16])
	for i := 0; i < 16; i++ {
		tmp[32+i] ^= tmp[16+i]
	}

	camelliaFeistel(tmp[32:40], sigma[0:8], tmp[40:48])
	camelliaFeistel(tmp[40:48], sigma[8:16], tmp[32:40])

	for i := 0; i < 16; i++ {
		tmp[32+i] ^= tmp[0+i]
	}

	camelliaFeistel(tmp[32:40], sigma[16:24], tmp[40:48])
	camelliaFeistel(tmp[40:48], sigma[24:32], tmp[32:40])

	camelliaBytesToBlock(tmp[0:16], wrd[0:4])
	camelliaBytesToBlock(tmp[32:48], wrd[4:8])

	if n == 128 {
		for i := 0; i < 26; i += 2 {
			camelliaRotate(wrd[:], 0, i+0, wrd[16:18])
			camelliaRotate(wrd[:], 0, i+1, wrd[18:20])
			camelliaBlockToBytes(wrd[16:20], res[i*8:i*8+16])
		}
		return
	}

	copy(tmp[48:64], tmp[32:48])
	for i := 0; i < 16; i++ {
		tmp[48+i] ^= tmp[16+i]
	}

	camelliaFeistel(tmp[48:56], sigma[32:40], tmp[56:64])
	camelliaFeistel(tmp[56:64], sigma[40:48], tmp[48:56])

	camelliaBytesToBlock(tmp[16:32], wrd[8:12])
	camelliaBytesToBlock(tmp[48:64], wrd[12:16])

	for i := 0; i < 34; i += 2 {
		camelliaRotate(wrd[:], 1, i+0, wrd[16:18])
		camelliaRotate(wrd[:], 1, i+1, wrd[18:20])
		camelliaBlockToBytes(wrd[16:20], res[i*8:i*8+16])
	}
}

func getBE32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func putBE32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// Camellia is a Block implementation for 128/192/256-bit Camellia.
type Camellia struct {
	ks   [camelliaKeySchedule]byte
	kind int
}

// NewCamellia returns the Camellia block cipher for a 128, 192 or 256-bit
// key.
func NewCamellia(key []byte) (Block, error) {
	bits := len(key) * 8
	if bits != 128 && bits != 192 && bits != 256 {
		return nil, KeySizeError{Algorithm: "Camellia", Size: len(key)}
	}

	c := &Camellia{kind: bits}
	camelliaKeygen(bits, key, c.ks[:])
	return c, nil
}

func (c *Camellia) BlockSize() int { return camelliaBlockSize }

func (c *Camellia) Encrypt(dst, src []byte) {
	camelliaEncryptBlock(c.kind, src, c.ks[:], dst)
}

func (c *Camellia) Decrypt(dst, src []byte) {
	camelliaDecryptBlock(c.kind, src, c.ks[:], dst)
}
