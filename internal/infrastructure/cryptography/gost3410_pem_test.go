//go:build unit
// +build unit

package cryptography

import (
	"encoding/pem"
	"strings"
	"testing"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGOST3410PEM(t *testing.T) {
	priv, pub := testKeys(t)

	t.Run("PrivateKeyRoundTrip", func(t *testing.T) {
		data, err := encodePrivateKeyPEM(priv)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "-----BEGIN GOST3410 PRIVATE KEY-----"))

		decoded, err := decodePrivateKeyPEM(data)
		require.NoError(t, err)
		assert.Equal(t, 0, priv.X().Cmp(decoded.X()))
		assert.True(t, priv.Parameters().Equal(decoded.Parameters()))
	})

	t.Run("PublicKeyRoundTrip", func(t *testing.T) {
		data, err := encodePublicKeyPEM(pub)
		require.NoError(t, err)

		block, _ := pem.Decode(data)
		require.NotNil(t, block)
		assert.Len(t, block.Bytes, 64)
		assert.Equal(t, pub.Parameters().Q().Text(16), block.Headers["Q"])

		decoded, err := decodePublicKeyPEM(data)
		require.NoError(t, err)
		assert.True(t, pub.Equal(decoded))
	})

	t.Run("WrongBlockType", func(t *testing.T) {
		data, err := encodePublicKeyPEM(pub)
		require.NoError(t, err)

		_, err = decodePrivateKeyPEM(data)
		assert.ErrorIs(t, err, gost3410.ErrInvalidKey)
	})

	t.Run("NotPEM", func(t *testing.T) {
		_, err := decodePublicKeyPEM([]byte("not a key"))
		assert.ErrorIs(t, err, gost3410.ErrInvalidKey)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		data := pem.EncodeToMemory(&pem.Block{
			Type:    gost3410.PEMTypePublicKey,
			Headers: map[string]string{"P": "17", "Q": "b"},
			Bytes:   []byte{18},
		})
		_, err := decodePublicKeyPEM(data)
		assert.ErrorIs(t, err, gost3410.ErrInvalidParameters)
	})

	t.Run("BodyLength", func(t *testing.T) {
		data := pem.EncodeToMemory(&pem.Block{
			Type:    gost3410.PEMTypePrivateKey,
			Headers: map[string]string{"P": "17", "Q": "b", "A": "4"},
			Bytes:   []byte{0, 3},
		})
		_, err := decodePrivateKeyPEM(data)
		assert.ErrorIs(t, err, gost3410.ErrInvalidKey)
	})

	t.Run("ToyGroup", func(t *testing.T) {
		toyPriv, _ := toyKeys(t)
		data, err := encodePrivateKeyPEM(toyPriv)
		require.NoError(t, err)

		block, _ := pem.Decode(data)
		require.NotNil(t, block)
		assert.Equal(t, []byte{3}, block.Bytes)
		assert.Equal(t, "17", block.Headers["P"])
	})

	t.Run("NilKeys", func(t *testing.T) {
		_, err := encodePrivateKeyPEM(nil)
		assert.ErrorIs(t, err, gost3410.ErrInvalidKey)
		_, err = encodePublicKeyPEM(nil)
		assert.ErrorIs(t, err, gost3410.ErrInvalidKey)
	})
}
