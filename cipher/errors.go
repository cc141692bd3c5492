package cipher

import "fmt"

// UnknownAlgorithmError reports a name or numeric id that does not match
// any entry in the algorithm registry.
type UnknownAlgorithmError struct {
	Name string
}

func (e UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("cipher: unknown algorithm %q", e.Name)
}

// InvalidKeySizeError reports a key whose length does not match the
// algorithm's fixed key size.
type InvalidKeySizeError struct {
	Algorithm Algorithm
	Size      int
}

func (e InvalidKeySizeError) Error() string {
	return fmt.Sprintf("cipher: invalid key size %d for %s", e.Size, e.Algorithm)
}

// InvalidIVError reports an IV whose length does not match what the
// algorithm's mode of operation requires.
type InvalidIVError struct {
	Algorithm Algorithm
	Size      int
	Want      int
}

func (e InvalidIVError) Error() string {
	return fmt.Sprintf("cipher: invalid iv size %d for %s, want %d", e.Size, e.Algorithm, e.Want)
}

// InvalidNonceError reports a nonce whose length is unsupported by the
// underlying AEAD construction.
type InvalidNonceError struct {
	Algorithm Algorithm
	Size      int
}

func (e InvalidNonceError) Error() string {
	return fmt.Sprintf("cipher: invalid nonce size %d for %s", e.Size, e.Algorithm)
}

// EmptySrcError reports an empty plaintext or ciphertext buffer where the
// mode of operation requires at least one byte.
type EmptySrcError struct {
	Mode Mode
}

func (e EmptySrcError) Error() string {
	return fmt.Sprintf("cipher: src cannot be empty in %s mode", e.Mode)
}

// InvalidBlockAlignmentError reports a plaintext or ciphertext whose length
// is not a multiple of the block size, for a mode that has no padding
// scheme applied (or decoding an ECB/CBC ciphertext, which must always be
// block-aligned regardless of padding).
type InvalidBlockAlignmentError struct {
	Mode Mode
	Size int
	Blk  int
}

func (e InvalidBlockAlignmentError) Error() string {
	return fmt.Sprintf("cipher: length %d is not a multiple of block size %d in %s mode", e.Size, e.Blk, e.Mode)
}

// PaddingError reports that unpadding could not recover a valid padded
// buffer because the padding bytes are inconsistent with the advertised
// scheme.
type PaddingError struct {
	Scheme PaddingScheme
}

func (e PaddingError) Error() string {
	return fmt.Sprintf("cipher: invalid %s padding", e.Scheme)
}

// UnsupportedModeError reports a mode of operation that the selected
// algorithm does not support (e.g. requesting GCM on a stream cipher).
type UnsupportedModeError struct {
	Algorithm Algorithm
	Mode      Mode
}

func (e UnsupportedModeError) Error() string {
	return fmt.Sprintf("cipher: %s does not support %s mode", e.Algorithm, e.Mode)
}

// UnsupportedPaddingError reports a PaddingScheme value that is not one of
// the defined schemes reaching pad/unpad.
type UnsupportedPaddingError struct {
	Mode   Mode
	Scheme PaddingScheme
}

func (e UnsupportedPaddingError) Error() string {
	return fmt.Sprintf("cipher: padding scheme %s is not applicable in %s mode", e.Scheme, e.Mode)
}

// AEADParamsError reports a missing or malformed AEAD parameter (AAD/tag
// size) set before an AEAD Encode/Decode call.
type AEADParamsError struct {
	Reason string
}

func (e AEADParamsError) Error() string {
	return fmt.Sprintf("cipher: invalid AEAD parameters: %s", e.Reason)
}

// TagMismatchError reports that the tag passed to CheckAEADTag does not
// match the tag computed by the most recent Encode/Decode call, meaning
// the ciphertext, AAD or tag was modified or the wrong key/nonce was used.
// Checked with a constant-time comparison.
type TagMismatchError struct {
	Algorithm Algorithm
}

func (e TagMismatchError) Error() string {
	return fmt.Sprintf("cipher: authentication tag mismatch for %s", e.Algorithm)
}

// CreateCipherError wraps an underlying primitive-construction failure
// (e.g. golang.org/x/crypto key validation) with the algorithm that
// triggered it.
type CreateCipherError struct {
	Algorithm Algorithm
	Err       error
}

func (e CreateCipherError) Error() string {
	return fmt.Sprintf("cipher: failed to create %s: %v", e.Algorithm, e.Err)
}

func (e CreateCipherError) Unwrap() error {
	return e.Err
}
