package cipher

// Literal RFC/FIPS test vectors reproduced from spec.md §8 (S1-S6), checked
// byte-exact rather than by roundtrip alone: these are the concrete
// end-to-end scenarios the specification calls out as MUST-pass properties.

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

// S1: AES-128-ECB, FIPS-197 test vector.
func TestVector_S1_AES128ECB(t *testing.T) {
	key, _ := hex.DecodeString("000102030405060708090A0B0C0D0E0F")
	plaintext, _ := hex.DecodeString("00112233445566778899AABBCCDDEEFF")
	wantCT, _ := hex.DecodeString("69C4E0D86A7B0430D8CDB78070B4C55A")

	var ctx Context
	assert.NoError(t, ctx.Init(AES128ECB, key))
	assert.NoError(t, ctx.SetPadding(PadNone))

	ct, err := ctx.Encode(plaintext)
	assert.NoError(t, err)
	assert.Equal(t, wantCT, ct)

	pt, err := ctx.Decode(ct)
	assert.NoError(t, err)
	assert.Equal(t, plaintext, pt)
}

// S2: AES-128-CTR, RFC 3686 test vector 1 (nonce + explicit starting
// counter of 1, not 0).
func TestVector_S2_AES128CTR(t *testing.T) {
	key, _ := hex.DecodeString("AE6852F8121067CC4BF7A5765577F39E")
	nonce, _ := hex.DecodeString("000000300000000000000000")
	plaintext, _ := hex.DecodeString("53696E676C6520626C6F636B206D7367")
	wantCT, _ := hex.DecodeString("E4095D4FB7A7B3792D6175A3261311B8")

	var ctx Context
	assert.NoError(t, ctx.Init(AES128CTR, key))
	assert.NoError(t, ctx.SetIV(nonce))
	assert.NoError(t, ctx.SetCounter(1))

	ct, err := ctx.Encode(plaintext)
	assert.NoError(t, err)
	assert.Equal(t, wantCT, ct)
}

// S3: AES-128-GCM, decode-only vector with an empty AAD and a 16-byte tag.
func TestVector_S3_AES128GCM(t *testing.T) {
	key, _ := hex.DecodeString("E98B72A9881A84CA6B76E0F43E68647A")
	nonce, _ := hex.DecodeString("8B23299FDE174053F3D652BA")
	ciphertext, _ := hex.DecodeString("5A3C1CF1985DBB8BED818036FDD5AB42")
	expectedTag, _ := hex.DecodeString("23C7AB0F952B7091CD324835043B5EB5")
	wantPT, _ := hex.DecodeString("28286A321293253C3E0AA2704A278032")

	var ctx Context
	assert.NoError(t, ctx.Init(AES128GCM, key))
	assert.NoError(t, ctx.SetAEADParams(nonce, nil, 16))
	assert.NoError(t, ctx.SetAEADTag(expectedTag))

	pt, err := ctx.Decode(ciphertext)
	assert.NoError(t, err)
	assert.Equal(t, wantPT, pt)
	assert.NoError(t, ctx.CheckAEADTag(expectedTag))
}

// S4: ChaCha20-Poly1305, RFC 7539 §2.8.2 test vector.
func TestVector_S4_ChaCha20Poly1305(t *testing.T) {
	key, _ := hex.DecodeString("808182838485868788898A8B8C8D8E8F909192939495969798999A9B9C9D9E9F")
	nonce, _ := hex.DecodeString("070000004041424344454647")
	aad, _ := hex.DecodeString("50515253C0C1C2C3C4C5C6C7")
	plaintext := []byte("Ladies and Gentlemen of the class of '99: If I could offer you only one tip for the future, sunscreen would be it.")
	wantCTPrefix, _ := hex.DecodeString("D31A8D34648E60DB")
	wantTag, _ := hex.DecodeString("1AE10B594F09E26A7E902ECBD0600691")

	var ctx Context
	assert.NoError(t, ctx.Init(ChaCha20Poly1305, key))
	assert.NoError(t, ctx.SetAEADParams(nonce, aad, 16))

	ct, err := ctx.Encode(plaintext)
	assert.NoError(t, err)
	assert.Len(t, ct, len(plaintext))
	assert.Equal(t, wantCTPrefix, ct[:len(wantCTPrefix)])
	assert.Equal(t, wantTag, ctx.GetAEADTag())

	var dec Context
	assert.NoError(t, dec.Init(ChaCha20Poly1305, key))
	assert.NoError(t, dec.SetAEADParams(nonce, aad, 16))
	assert.NoError(t, dec.SetAEADTag(wantTag))
	pt, err := dec.Decode(ct)
	assert.NoError(t, err)
	assert.Equal(t, plaintext, pt)
}

// S5: AES-128-CBC padding roundtrip with an all-zero key and IV, and
// detection of a single flipped ciphertext byte.
func TestVector_S5_CBCPaddingRoundtrip(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)
	plaintext := []byte("ABCD")

	var ctx Context
	assert.NoError(t, ctx.Init(AES128CBC, key))
	assert.NoError(t, ctx.SetIV(iv))
	assert.NoError(t, ctx.SetPadding(PadSize))

	ct, err := ctx.Encode(plaintext)
	assert.NoError(t, err)
	assert.Len(t, ct, 16)

	assert.NoError(t, ctx.SetIV(iv))
	pt, err := ctx.Decode(ct)
	assert.NoError(t, err)
	assert.Equal(t, plaintext, pt)

	tampered := append([]byte(nil), ct...)
	tampered[len(tampered)-1] ^= 0xff

	assert.NoError(t, ctx.SetIV(iv))
	_, err = ctx.Decode(tampered)
	assert.Error(t, err)
	assert.IsType(t, PaddingError{}, err)
}

// S6: Camellia-192-CTR, RFC 5528 §4 test vector.
func TestVector_S6_Camellia192CTR(t *testing.T) {
	key, _ := hex.DecodeString("16AF5B145FC9F579C175F93E3BFB0EED863D06CCFDB78515")
	nonce, _ := hex.DecodeString("0000004836733C147D6D93CB")
	plaintext, _ := hex.DecodeString("53696E676C6520626C6F636B206D7367")
	wantCT, _ := hex.DecodeString("2379399E8A8D2B2B16702FC78B9E9696")

	var ctx Context
	assert.NoError(t, ctx.Init(Camellia192CTR, key))
	assert.NoError(t, ctx.SetIV(nonce))
	assert.NoError(t, ctx.SetCounter(1))

	ct, err := ctx.Encode(plaintext)
	assert.NoError(t, err)
	assert.Equal(t, wantCT, ct)
}
