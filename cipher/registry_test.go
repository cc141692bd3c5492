package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlgorithmFromName(t *testing.T) {
	alg, err := AlgorithmFromName("AES-256-GCM")
	assert.NoError(t, err)
	assert.Equal(t, AES256GCM, alg)
	assert.Equal(t, "AES-256-GCM", alg.String())

	_, err = AlgorithmFromName("NOT-A-REAL-ALGORITHM")
	assert.Error(t, err)
	assert.IsType(t, UnknownAlgorithmError{}, err)
}

func TestAlgorithm_Valid(t *testing.T) {
	assert.True(t, AES128CBC.Valid())
	assert.False(t, NullCipher.Valid())
	assert.False(t, cipherCount.Valid())
}

func TestAlgorithm_Accessors(t *testing.T) {
	assert.Equal(t, 16, AES128CBC.KeySize())
	assert.Equal(t, 16, AES128CBC.BlockSize())
	assert.Equal(t, 16, AES128CBC.IVSize())
	assert.Equal(t, ModeCBC, AES128CBC.ModeOf())
	assert.False(t, AES128CBC.IsStream())

	assert.Equal(t, ModeStream, ChaCha20_256.ModeOf())
	assert.True(t, ChaCha20_256.IsStream())
	assert.Equal(t, 0, AES128ECB.IVSize())
}

func TestAlgorithm_BlockSizeZeroedForNonBlockAlignedModes(t *testing.T) {
	assert.Equal(t, 0, AES128CTR.BlockSize())
	assert.Equal(t, 0, AES128GCM.BlockSize())
	assert.Equal(t, 0, ChaCha20Poly1305.BlockSize())
	assert.Equal(t, 0, ChaCha8_128.BlockSize())
	assert.Equal(t, 0, RC4_128.BlockSize())

	assert.Equal(t, 16, AES128ECB.BlockSize())
	assert.Equal(t, 16, AES128CBC.BlockSize())
}

func TestAlgorithm_StringUnknown(t *testing.T) {
	assert.Contains(t, cipherCount.String(), "ALGORITHM(")
}

// Every registered algorithm must round-trip through its own name.
func TestAlgorithm_EveryEntryResolvesByName(t *testing.T) {
	for alg, info := range algoTable {
		got, err := AlgorithmFromName(info.name)
		assert.NoError(t, err)
		assert.Equal(t, alg, got, "name %s", info.name)
	}
}
