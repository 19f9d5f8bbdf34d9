//go:build unit
// +build unit

package cryptography

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/pkg/config"
	"github.com/MGTheTrain/gost-vault/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGOST3410Processor(t *testing.T, settings *config.SignerSettings, opts ...ProcessorOption) gost3410.Processor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewGOST3410Processor(settings, logger, opts...)
	require.NoError(t, err)
	return processor
}

func TestGOST3410Processor(t *testing.T) {
	processor := setupGOST3410Processor(t, nil)
	priv, pub := testKeys(t)

	t.Run("SignVerify", func(t *testing.T) {
		msg := []byte("This is a test message.")
		sig, err := processor.Sign(msg, priv)
		require.NoError(t, err)
		assert.Len(t, sig, 64)

		valid, err := processor.Verify(msg, sig, pub)
		assert.NoError(t, err)
		assert.True(t, valid)

		valid, err = processor.Verify([]byte("Modified message."), sig, pub)
		assert.NoError(t, err)
		assert.False(t, valid)

		valid, err = processor.Verify(msg, sig[:63], pub)
		assert.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("NilKeys", func(t *testing.T) {
		_, err := processor.Sign([]byte("msg"), nil)
		assert.Error(t, err)

		_, err = processor.Verify([]byte("msg"), make([]byte, 64), nil)
		assert.Error(t, err)
	})

	t.Run("HashAlgorithms", func(t *testing.T) {
		msg := []byte("hash sensitive")
		blake3Processor := setupGOST3410Processor(t, &config.SignerSettings{
			HashAlgorithm: gost3410.HashBLAKE3256,
			ModulusBits:   gost3410.ModulusBits512,
		})
		blake2bProcessor := setupGOST3410Processor(t, &config.SignerSettings{
			HashAlgorithm: gost3410.HashBLAKE2b256,
			ModulusBits:   gost3410.ModulusBits512,
		})

		sig, err := blake3Processor.Sign(msg, priv)
		require.NoError(t, err)

		valid, err := blake3Processor.Verify(msg, sig, pub)
		require.NoError(t, err)
		assert.True(t, valid)

		valid, err = blake2bProcessor.Verify(msg, sig, pub)
		require.NoError(t, err)
		assert.False(t, valid)

		valid, err = processor.Verify(msg, sig, pub)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("SecurityPolicy", func(t *testing.T) {
		strict := setupGOST3410Processor(t, &config.SignerSettings{
			HashAlgorithm:        gost3410.HashSHA256,
			ModulusBits:          gost3410.ModulusBits1024,
			RequiredSecurityBits: 80,
			LegacySecurityBits:   20,
		})

		_, err := strict.Sign([]byte("msg"), priv)
		assert.ErrorIs(t, err, gost3410.ErrPolicyViolation)

		sig, err := processor.Sign([]byte("msg"), priv)
		require.NoError(t, err)
		valid, err := strict.Verify([]byte("msg"), sig, pub)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("CountingNonces", func(t *testing.T) {
		counting := NewCountingNonceSource(DefaultNonceSource())
		counted := setupGOST3410Processor(t, nil, WithNonceSource(counting))

		_, err := counted.Sign([]byte("msg"), priv)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, counting.Draws(), uint64(1))
	})

	t.Run("SaveAndReadKeys", func(t *testing.T) {
		tmpDir := t.TempDir()
		privateFile := filepath.Join(tmpDir, "private_test.pem")
		publicFile := filepath.Join(tmpDir, "public_test.pem")

		require.NoError(t, processor.SavePrivateKeyToFile(priv, privateFile))
		require.NoError(t, processor.SavePublicKeyToFile(pub, publicFile))

		readPriv, err := processor.ReadPrivateKey(privateFile)
		require.NoError(t, err)
		assert.Equal(t, 0, priv.X().Cmp(readPriv.X()))

		readPub, err := processor.ReadPublicKey(publicFile)
		require.NoError(t, err)
		assert.True(t, pub.Equal(readPub))

		_, err = processor.ReadPrivateKey(filepath.Join(tmpDir, "missing.pem"))
		assert.Error(t, err)
	})

	t.Run("SaveSignatureToFile", func(t *testing.T) {
		sig, err := processor.Sign([]byte("file"), priv)
		require.NoError(t, err)

		filename := filepath.Join(t.TempDir(), "signature.sig")
		require.NoError(t, processor.SaveSignatureToFile(filename, sig))

		content, err := os.ReadFile(filename)
		require.NoError(t, err)
		assert.Equal(t, hex.EncodeToString(sig), string(content))
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		data, err := processor.EncodePublicKey(pub)
		require.NoError(t, err)
		decoded, err := processor.DecodePublicKey(data)
		require.NoError(t, err)
		assert.True(t, pub.Equal(decoded))

		data, err = processor.EncodePrivateKey(priv)
		require.NoError(t, err)
		decodedPriv, err := processor.DecodePrivateKey(data)
		require.NoError(t, err)
		assert.Equal(t, 0, priv.X().Cmp(decodedPriv.X()))
	})
}

func TestNewGOST3410Processor_InvalidSettings(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	_, err := NewGOST3410Processor(&config.SignerSettings{HashAlgorithm: "md5", ModulusBits: 512}, logger)
	assert.Error(t, err)

	_, err = NewGOST3410Processor(&config.SignerSettings{HashAlgorithm: "sha256", ModulusBits: 2048}, logger)
	assert.Error(t, err)

	_, err = NewGOST3410Processor(&config.SignerSettings{HashAlgorithm: "sha256", ModulusBits: 512, MaxNonceAttempts: -1}, logger)
	assert.Error(t, err)
}

func TestGOST3410Processor_GenerateParameters(t *testing.T) {
	processor := setupGOST3410Processor(t, nil)

	params, err := processor.GenerateParameters(gost3410.ModulusBits512, gost3410.OrderBits)
	require.NoError(t, err)
	assert.Equal(t, gost3410.ModulusBits512, params.ModulusBits())

	priv, pub, err := processor.GenerateKeys(params)
	require.NoError(t, err)
	assert.True(t, pub.Equal(priv.Public()))

	_, _, err = processor.GenerateKeys(nil)
	assert.Error(t, err)

	_, err = processor.GenerateParameters(256, 256)
	assert.Error(t, err)
}
