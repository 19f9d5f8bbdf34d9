package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/gost-vault/internal/domain/keys"
	"github.com/MGTheTrain/gost-vault/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/gost-vault/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormVaultConnector keeps PEM encoded key material in the key_materials table
type gormVaultConnector struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormVaultConnector creates a VaultConnector backed by the given database
func NewGormVaultConnector(db *gorm.DB, logger logger.Logger) (keys.VaultConnector, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}

	return &gormVaultConnector{
		db:     db,
		logger: logger,
	}, nil
}

// Upload stores bytes under a new key ID and returns the metadata describing them.
// The metadata itself is not persisted here.
func (v *gormVaultConnector) Upload(ctx context.Context, bytes []byte, userID, keyPairID, keyType, keyAlgorithm string, keySize uint32) (*keys.CryptoKeyMeta, error) {
	if len(bytes) == 0 {
		return nil, fmt.Errorf("key material cannot be empty")
	}

	meta := &keys.CryptoKeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       keyPairID,
		Algorithm:       keyAlgorithm,
		KeySize:         keySize,
		Type:            keyType,
		DateTimeCreated: time.Now(),
		UserID:          userID,
	}
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	material := &models.KeyMaterialModel{
		KeyID:           meta.ID,
		KeyPairID:       keyPairID,
		Type:            keyType,
		Data:            bytes,
		DateTimeCreated: meta.DateTimeCreated,
	}
	if err := v.db.WithContext(ctx).Create(material).Error; err != nil {
		return nil, fmt.Errorf("failed to store key material: %w", err)
	}

	v.logger.Info(fmt.Sprintf("Stored %s key material %s of key pair %s", keyType, meta.ID, keyPairID))
	return meta, nil
}

// Download returns the stored bytes of one key.
func (v *gormVaultConnector) Download(ctx context.Context, keyID, keyPairID, keyType string) ([]byte, error) {
	var material models.KeyMaterialModel
	err := v.db.WithContext(ctx).
		Where("key_id = ? AND key_pair_id = ? AND type = ?", keyID, keyPairID, keyType).
		First(&material).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no %s key material for ID %s", keys.ErrKeyNotFound, keyType, keyID)
		}
		return nil, fmt.Errorf("failed to fetch key material: %w", err)
	}

	return material.Data, nil
}

// Delete removes the stored bytes of one key.
func (v *gormVaultConnector) Delete(ctx context.Context, keyID, keyPairID, keyType string) error {
	result := v.db.WithContext(ctx).
		Where("key_id = ? AND key_pair_id = ? AND type = ?", keyID, keyPairID, keyType).
		Delete(&models.KeyMaterialModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete key material: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: no %s key material for ID %s", keys.ErrKeyNotFound, keyType, keyID)
	}

	v.logger.Info("Deleted key material with id ", keyID)
	return nil
}
