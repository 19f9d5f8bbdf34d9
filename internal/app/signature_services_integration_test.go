//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureService_SignVerify(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	metas, err := services.CryptoKeyUploadService.Upload(ctx, uuid.NewString(), gost3410.ModulusBits512)
	require.NoError(t, err)
	privMeta, pubMeta := metas[0], metas[1]
	message := []byte("signed through the vault")

	signature, err := services.SignatureService.Sign(ctx, pubMeta.ID, message)
	require.NoError(t, err)
	assert.Len(t, signature, 64)

	valid, err := services.SignatureService.Verify(ctx, privMeta.ID, message, signature)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = services.SignatureService.Verify(ctx, pubMeta.ID, []byte("another message"), signature)
	require.NoError(t, err)
	assert.False(t, valid)

	other, err := services.CryptoKeyUploadService.Upload(ctx, uuid.NewString(), gost3410.ModulusBits512)
	require.NoError(t, err)
	valid, err = services.SignatureService.Verify(ctx, other[1].ID, message, signature)
	require.NoError(t, err)
	assert.False(t, valid)
}
