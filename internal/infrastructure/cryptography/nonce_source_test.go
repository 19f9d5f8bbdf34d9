//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonceSource_RandomBits(t *testing.T) {
	tests := []struct {
		bitLen   int
		expected int64
	}{
		{4, 0x0F},
		{8, 0xFF},
		{12, 0x0FFF},
		{16, 0xFFFF},
	}

	for _, tt := range tests {
		source := NewNonceSource(bytes.NewReader(bytes.Repeat([]byte{0xFF}, 8)))
		v, err := source.RandomBits(tt.bitLen)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, v.Int64(), "bitLen %d", tt.bitLen)
	}
}

func TestNonceSource_Errors(t *testing.T) {
	source := NewNonceSource(bytes.NewReader([]byte{0x01}))

	_, err := source.RandomBits(0)
	assert.Error(t, err)

	_, err = source.RandomBits(16)
	assert.Error(t, err)
}

func TestDefaultNonceSource(t *testing.T) {
	source := DefaultNonceSource()
	for i := 0; i < 32; i++ {
		v, err := source.RandomBits(10)
		require.NoError(t, err)
		assert.LessOrEqual(t, v.BitLen(), 10)
		assert.GreaterOrEqual(t, v.Sign(), 0)
	}
}

func TestCountingNonceSource(t *testing.T) {
	counting := NewCountingNonceSource(DefaultNonceSource())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_, err := counting.RandomBits(256)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(100), counting.Draws())

	failing := NewCountingNonceSource(NewNonceSource(bytes.NewReader(nil)))
	_, err := failing.RandomBits(8)
	assert.Error(t, err)
	assert.Equal(t, uint64(0), failing.Draws())
}
