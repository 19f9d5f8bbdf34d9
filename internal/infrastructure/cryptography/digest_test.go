//go:build unit
// +build unit

package cryptography

import (
	"encoding/hex"
	"testing"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	tests := []struct {
		algorithm string
		message   string
		expected  string
	}{
		{gost3410.HashSHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{gost3410.HashSHA256, "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{gost3410.HashBLAKE2b256, "", "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
		{gost3410.HashBLAKE3256, "", "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			sum, err := Digest(tt.algorithm, []byte(tt.message))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hex.EncodeToString(sum))
		})
	}

	_, err := Digest("md5", []byte("abc"))
	assert.ErrorIs(t, err, gost3410.ErrUnsupportedHash)
}
