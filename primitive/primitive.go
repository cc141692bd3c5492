// Package primitive holds the "primitive bank": one family of independent
// block or stream algorithms per file, each opaque to block-mode or
// AEAD concerns. A primitive exposes either a block capability (fixed-size
// Encrypt/Decrypt, driven a block at a time by the mode engine in
// package cipher) or a stream capability (arbitrary-length XORKeyStream).
//
// Primitives never see padding, chaining, counters or tags — those belong
// to the mode engine. This mirrors the teacher's per-algorithm subpackages
// (crypto/aes, crypto/blowfish, ...), collapsed into a single package since
// this port's mode engine consumes them directly as stdlib cipher.Block /
// cipher.Stream-shaped values instead of through a streaming io.Writer
// facade.
package primitive

import "crypto/cipher"

// Block is satisfied by every block-cipher primitive in the bank. It is
// intentionally identical in shape to stdlib's crypto/cipher.Block so that
// primitives backed directly by crypto/aes, crypto/des, golang.org/x/crypto
// can be used as-is.
type Block = cipher.Block

// Stream is satisfied by every stream-cipher primitive in the bank
// (RC4, Salsa20, ChaCha8/12/20, ChaCha20 IETF). Shaped like stdlib's
// crypto/cipher.Stream.
type Stream = cipher.Stream
