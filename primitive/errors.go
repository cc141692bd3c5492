package primitive

import "fmt"

// KeySizeError reports that a key handed to a primitive's constructor has
// the wrong length for that algorithm.
type KeySizeError struct {
	Algorithm string
	Size      int
}

func (e KeySizeError) Error() string {
	return fmt.Sprintf("primitive: invalid key size %d for %s", e.Size, e.Algorithm)
}

// InvalidNonceSizeError reports that a nonce or IV handed to a primitive's
// constructor has the wrong length for that algorithm.
type InvalidNonceSizeError struct {
	Algorithm string
	Size      int
}

func (e InvalidNonceSizeError) Error() string {
	return fmt.Sprintf("primitive: invalid nonce size %d for %s", e.Size, e.Algorithm)
}
