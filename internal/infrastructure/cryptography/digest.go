package cryptography

import (
	"crypto/sha256"
	"fmt"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Digest hashes message with the named algorithm. All supported algorithms yield 32 bytes.
func Digest(algorithm string, message []byte) ([]byte, error) {
	switch algorithm {
	case gost3410.HashSHA256:
		sum := sha256.Sum256(message)
		return sum[:], nil
	case gost3410.HashBLAKE2b256:
		sum := blake2b.Sum256(message)
		return sum[:], nil
	case gost3410.HashBLAKE3256:
		h := blake3.New()
		if _, err := h.Write(message); err != nil {
			return nil, fmt.Errorf("failed to hash message: %w", err)
		}
		return h.Sum(nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", gost3410.ErrUnsupportedHash, algorithm)
	}
}
