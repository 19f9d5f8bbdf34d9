//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/domain/keys"
	"github.com/MGTheTrain/gost-vault/internal/pkg/config"
	"github.com/MGTheTrain/gost-vault/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestKeySize512  = 512
	TestKeySize1024 = 1024

	TestPostgresDSN      = "user=postgres password=postgres host=localhost port=5432 sslmode=disable"
	TestPostgresAdminDSN = "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	CryptoKeyRepo keys.CryptoKeyRepository
	Vault         keys.VaultConnector
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  TestPostgresDSN,
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(TestPostgresAdminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	cryptoKeyRepo, err := NewGormCryptoKeyRepository(db, logger)
	require.NoError(t, err, "Failed to create crypto key repository")

	vault, err := NewGormVaultConnector(db, logger)
	require.NoError(t, err, "Failed to create vault connector")

	return &TestContext{
		DB:            db,
		CryptoKeyRepo: cryptoKeyRepo,
		Vault:         vault,
	}
}

// CreateTestKey creates a public 1024-bit test key
func CreateTestKey(t *testing.T, userID string) *keys.CryptoKeyMeta {
	t.Helper()
	return CreateTestKeyWithOptions(t, userID, gost3410.KeyTypePublic, TestKeySize1024)
}

// CreateTestKeyWithOptions creates a test key with custom type and size
func CreateTestKeyWithOptions(t *testing.T, userID, keyType string, keySize int) *keys.CryptoKeyMeta {
	t.Helper()

	return &keys.CryptoKeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       uuid.NewString(),
		Type:            keyType,
		Algorithm:       gost3410.AlgorithmGOST3410,
		KeySize:         uint32(keySize),
		DateTimeCreated: time.Now(),
		UserID:          userID,
	}
}
