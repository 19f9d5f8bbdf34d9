//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/domain/keys"
	"github.com/MGTheTrain/gost-vault/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func toyKeyPair(t *testing.T) (*gost3410.DomainParameters, *gost3410.PrivateKey, *gost3410.PublicKey) {
	t.Helper()
	params, err := gost3410.NewDomainParameters(big.NewInt(23), big.NewInt(11), big.NewInt(4))
	require.NoError(t, err)
	priv, err := gost3410.NewPrivateKey(params, big.NewInt(3))
	require.NoError(t, err)
	return params, priv, priv.Public()
}

func newKeyMeta(keyPairID, keyType string) *keys.CryptoKeyMeta {
	return &keys.CryptoKeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       keyPairID,
		Algorithm:       gost3410.AlgorithmGOST3410,
		KeySize:         gost3410.ModulusBits512,
		Type:            keyType,
		DateTimeCreated: time.Now(),
		UserID:          uuid.NewString(),
	}
}

func TestCryptoKeyUploadService_Upload(t *testing.T) {
	ctx := context.Background()
	logger := testutil.SetupTestLogger(t)
	params, priv, pub := toyKeyPair(t)
	userID := uuid.NewString()

	t.Run("Success", func(t *testing.T) {
		vault := &MockVaultConnector{}
		repo := &MockCryptoKeyRepository{}
		processor := &MockProcessor{}

		processor.On("GenerateParameters", gost3410.ModulusBits512, gost3410.OrderBits).Return(params, nil)
		processor.On("GenerateKeys", params).Return(priv, pub, nil)
		processor.On("EncodePrivateKey", priv).Return([]byte("private-pem"), nil)
		processor.On("EncodePublicKey", pub).Return([]byte("public-pem"), nil)

		privMeta := newKeyMeta(uuid.NewString(), gost3410.KeyTypePrivate)
		pubMeta := newKeyMeta(privMeta.KeyPairID, gost3410.KeyTypePublic)
		vault.On("Upload", ctx, []byte("private-pem"), userID, mock.AnythingOfType("string"), gost3410.KeyTypePrivate, gost3410.AlgorithmGOST3410, uint32(512)).Return(privMeta, nil)
		vault.On("Upload", ctx, []byte("public-pem"), userID, mock.AnythingOfType("string"), gost3410.KeyTypePublic, gost3410.AlgorithmGOST3410, uint32(512)).Return(pubMeta, nil)
		repo.On("Create", ctx, privMeta).Return(nil)
		repo.On("Create", ctx, pubMeta).Return(nil)

		service, err := NewCryptoKeyUploadService(vault, repo, processor, logger)
		require.NoError(t, err)

		metas, err := service.Upload(ctx, userID, 512)
		require.NoError(t, err)
		require.Len(t, metas, 2)
		assert.Equal(t, gost3410.KeyTypePrivate, metas[0].Type)
		assert.Equal(t, gost3410.KeyTypePublic, metas[1].Type)

		// both halves share one generated pair ID
		calls := vault.Calls
		require.Len(t, calls, 2)
		assert.Equal(t, calls[0].Arguments.String(3), calls[1].Arguments.String(3))

		vault.AssertExpectations(t)
		repo.AssertExpectations(t)
		processor.AssertExpectations(t)
	})

	t.Run("UnsupportedKeySize", func(t *testing.T) {
		service, err := NewCryptoKeyUploadService(&MockVaultConnector{}, &MockCryptoKeyRepository{}, &MockProcessor{}, logger)
		require.NoError(t, err)

		_, err = service.Upload(ctx, userID, 2048)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not supported")
	})

	t.Run("VaultFailure", func(t *testing.T) {
		vault := &MockVaultConnector{}
		repo := &MockCryptoKeyRepository{}
		processor := &MockProcessor{}

		processor.On("GenerateParameters", gost3410.ModulusBits1024, gost3410.OrderBits).Return(params, nil)
		processor.On("GenerateKeys", params).Return(priv, pub, nil)
		processor.On("EncodePrivateKey", priv).Return([]byte("private-pem"), nil)
		processor.On("EncodePublicKey", pub).Return([]byte("public-pem"), nil)
		vault.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("vault unavailable"))

		service, err := NewCryptoKeyUploadService(vault, repo, processor, logger)
		require.NoError(t, err)

		_, err = service.Upload(ctx, userID, 1024)
		assert.ErrorContains(t, err, "vault unavailable")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCryptoKeyMetadataService(t *testing.T) {
	ctx := context.Background()
	logger := testutil.SetupTestLogger(t)
	meta := newKeyMeta(uuid.NewString(), gost3410.KeyTypePublic)

	t.Run("List", func(t *testing.T) {
		repo := &MockCryptoKeyRepository{}
		query := keys.NewCryptoKeyQuery()
		repo.On("List", ctx, query).Return([]*keys.CryptoKeyMeta{meta}, nil)

		service, err := NewCryptoKeyMetadataService(&MockVaultConnector{}, repo, logger)
		require.NoError(t, err)

		metas, err := service.List(ctx, query)
		require.NoError(t, err)
		assert.Len(t, metas, 1)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		vault := &MockVaultConnector{}
		repo := &MockCryptoKeyRepository{}
		repo.On("GetByID", ctx, meta.ID).Return(meta, nil)
		vault.On("Delete", ctx, meta.ID, meta.KeyPairID, meta.Type).Return(nil)
		repo.On("DeleteByID", ctx, meta.ID).Return(nil)

		service, err := NewCryptoKeyMetadataService(vault, repo, logger)
		require.NoError(t, err)

		require.NoError(t, service.DeleteByID(ctx, meta.ID))
		vault.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		repo := &MockCryptoKeyRepository{}
		repo.On("GetByID", ctx, "missing").Return(nil, keys.ErrKeyNotFound)

		service, err := NewCryptoKeyMetadataService(&MockVaultConnector{}, repo, logger)
		require.NoError(t, err)

		err = service.DeleteByID(ctx, "missing")
		assert.ErrorIs(t, err, keys.ErrKeyNotFound)
	})
}

func TestCryptoKeyDownloadService_DownloadByID(t *testing.T) {
	ctx := context.Background()
	logger := testutil.SetupTestLogger(t)
	meta := newKeyMeta(uuid.NewString(), gost3410.KeyTypePublic)

	vault := &MockVaultConnector{}
	repo := &MockCryptoKeyRepository{}
	repo.On("GetByID", ctx, meta.ID).Return(meta, nil)
	vault.On("Download", ctx, meta.ID, meta.KeyPairID, meta.Type).Return([]byte("public-pem"), nil)

	service, err := NewCryptoKeyDownloadService(vault, repo, logger)
	require.NoError(t, err)

	data, err := service.DownloadByID(ctx, meta.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("public-pem"), data)
}
