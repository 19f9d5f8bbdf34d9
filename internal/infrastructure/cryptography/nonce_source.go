package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"sync/atomic"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
)

// readerNonceSource draws random integers from an io.Reader
type readerNonceSource struct {
	reader io.Reader
}

// NewNonceSource returns a NonceSource reading from r.
func NewNonceSource(r io.Reader) gost3410.NonceSource {
	return &readerNonceSource{reader: r}
}

// DefaultNonceSource returns a NonceSource backed by crypto/rand.
func DefaultNonceSource() gost3410.NonceSource {
	return NewNonceSource(rand.Reader)
}

// RandomBits reads ceil(bitLen/8) bytes and clears the excess high bits of the first byte.
func (n *readerNonceSource) RandomBits(bitLen int) (*big.Int, error) {
	if bitLen <= 0 {
		return nil, fmt.Errorf("bit length must be positive, got %d", bitLen)
	}

	nBytes := (bitLen + 7) / 8
	buf := make([]byte, nBytes)
	if _, err := io.ReadFull(n.reader, buf); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	buf[0] &= byte(0xFF >> uint(8*nBytes-bitLen))

	return new(big.Int).SetBytes(buf), nil
}

// CountingNonceSource wraps a NonceSource and counts successful draws.
// It is safe for concurrent use when the wrapped source is.
type CountingNonceSource struct {
	inner gost3410.NonceSource
	draws atomic.Uint64
}

// NewCountingNonceSource wraps inner.
func NewCountingNonceSource(inner gost3410.NonceSource) *CountingNonceSource {
	return &CountingNonceSource{inner: inner}
}

// RandomBits delegates to the wrapped source and counts the draw.
func (c *CountingNonceSource) RandomBits(bitLen int) (*big.Int, error) {
	v, err := c.inner.RandomBits(bitLen)
	if err != nil {
		return nil, err
	}
	c.draws.Add(1)
	return v, nil
}

// Draws returns the number of values handed out so far.
func (c *CountingNonceSource) Draws() uint64 {
	return c.draws.Load()
}
