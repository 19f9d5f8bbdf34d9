//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/domain/keys"
	"github.com/MGTheTrain/gost-vault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/gost-vault/internal/infrastructure/persistence"
	"github.com/MGTheTrain/gost-vault/internal/pkg/config"
	"github.com/MGTheTrain/gost-vault/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	CryptoKeyUploadService   keys.CryptoKeyUploadService
	CryptoKeyMetadataService keys.CryptoKeyMetadataService
	CryptoKeyDownloadService keys.CryptoKeyDownloadService
	SignatureService         keys.SignatureService

	Processor gost3410.Processor
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	settings := config.DefaultSignerSettings()
	settings.ModulusBits = gost3410.ModulusBits512

	processor, err := cryptography.NewGOST3410Processor(settings, logger)
	require.NoError(t, err, "Failed to create GOST3410 processor")

	cryptoKeyUploadService, err := NewCryptoKeyUploadService(dbContext.Vault, dbContext.CryptoKeyRepo, processor, logger)
	require.NoError(t, err, "Failed to create CryptoKeyUploadService")

	cryptoKeyMetadataService, err := NewCryptoKeyMetadataService(dbContext.Vault, dbContext.CryptoKeyRepo, logger)
	require.NoError(t, err, "Failed to create CryptoKeyMetadataService")

	cryptoKeyDownloadService, err := NewCryptoKeyDownloadService(dbContext.Vault, dbContext.CryptoKeyRepo, logger)
	require.NoError(t, err, "Failed to create CryptoKeyDownloadService")

	signatureService, err := NewSignatureService(dbContext.Vault, dbContext.CryptoKeyRepo, processor, logger)
	require.NoError(t, err, "Failed to create SignatureService")

	return &TestServices{
		CryptoKeyUploadService:   cryptoKeyUploadService,
		CryptoKeyMetadataService: cryptoKeyMetadataService,
		CryptoKeyDownloadService: cryptoKeyDownloadService,
		SignatureService:         signatureService,
		Processor:                processor,
		DBContext:                dbContext,
	}
}
