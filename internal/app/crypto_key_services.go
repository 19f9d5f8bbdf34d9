package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/domain/keys"
	"github.com/MGTheTrain/gost-vault/internal/pkg/logger"

	"github.com/google/uuid"
)

// cryptoKeyUploadService implements the CryptoKeyUploadService interface for generating and storing key pairs
type cryptoKeyUploadService struct {
	vaultConnector keys.VaultConnector
	cryptoKeyRepo  keys.CryptoKeyRepository
	processor      gost3410.Processor
	logger         logger.Logger
}

// NewCryptoKeyUploadService creates a new cryptoKeyUploadService instance
func NewCryptoKeyUploadService(
	vaultConnector keys.VaultConnector,
	cryptoKeyRepo keys.CryptoKeyRepository,
	processor gost3410.Processor,
	logger logger.Logger,
) (keys.CryptoKeyUploadService, error) {
	return &cryptoKeyUploadService{
		vaultConnector: vaultConnector,
		cryptoKeyRepo:  cryptoKeyRepo,
		processor:      processor,
		logger:         logger,
	}, nil
}

// Upload generates a fresh parameter set and key pair, then stores the private key followed by the public key.
func (s *cryptoKeyUploadService) Upload(ctx context.Context, userID string, keySize uint32) ([]*keys.CryptoKeyMeta, error) {
	if keySize != gost3410.ModulusBits512 && keySize != gost3410.ModulusBits1024 {
		return nil, fmt.Errorf("key size %v not supported for %s", keySize, gost3410.AlgorithmGOST3410)
	}

	params, err := s.processor.GenerateParameters(int(keySize), gost3410.OrderBits)
	if err != nil {
		return nil, err
	}

	privateKey, publicKey, err := s.processor.GenerateKeys(params)
	if err != nil {
		return nil, err
	}

	privateKeyBytes, err := s.processor.EncodePrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode private key: %w", err)
	}
	publicKeyBytes, err := s.processor.EncodePublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to encode public key: %w", err)
	}

	keyPairID := uuid.NewString()
	var keyMetas []*keys.CryptoKeyMeta

	for _, part := range []struct {
		keyType string
		data    []byte
	}{
		{gost3410.KeyTypePrivate, privateKeyBytes},
		{gost3410.KeyTypePublic, publicKeyBytes},
	} {
		cryptoKeyMeta, err := s.vaultConnector.Upload(ctx, part.data, userID, keyPairID, part.keyType, gost3410.AlgorithmGOST3410, keySize)
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s key: %w", part.keyType, err)
		}

		if err := s.cryptoKeyRepo.Create(ctx, cryptoKeyMeta); err != nil {
			return nil, fmt.Errorf("failed to store %s key metadata: %w", part.keyType, err)
		}

		keyMetas = append(keyMetas, cryptoKeyMeta)
	}

	s.logger.Info(fmt.Sprintf("Uploaded %d-bit GOST3410 key pair %s", keySize, keyPairID))
	return keyMetas, nil
}

// cryptoKeyMetadataService implements the CryptoKeyMetadataService interface to manages cryptographic key metadata.
type cryptoKeyMetadataService struct {
	vaultConnector keys.VaultConnector
	cryptoKeyRepo  keys.CryptoKeyRepository
	logger         logger.Logger
}

// NewCryptoKeyMetadataService creates a new cryptoKeyMetadataService instance
func NewCryptoKeyMetadataService(vaultConnector keys.VaultConnector, cryptoKeyRepo keys.CryptoKeyRepository, logger logger.Logger) (keys.CryptoKeyMetadataService, error) {
	return &cryptoKeyMetadataService{
		vaultConnector: vaultConnector,
		cryptoKeyRepo:  cryptoKeyRepo,
		logger:         logger,
	}, nil
}

// List retrieves all cryptographic key metadata based on a query.
func (s *cryptoKeyMetadataService) List(ctx context.Context, query *keys.CryptoKeyQuery) ([]*keys.CryptoKeyMeta, error) {
	cryptoKeyMetas, err := s.cryptoKeyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	return cryptoKeyMetas, nil
}

// GetByID retrieves the metadata of a cryptographic key by its ID.
func (s *cryptoKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.CryptoKeyMeta, error) {
	keyMeta, err := s.cryptoKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key metadata: %w", err)
	}

	return keyMeta, nil
}

// DeleteByID deletes a cryptographic key's material and metadata by its ID.
func (s *cryptoKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	keyMeta, err := s.GetByID(ctx, keyID)
	if err != nil {
		return err
	}

	if err := s.vaultConnector.Delete(ctx, keyID, keyMeta.KeyPairID, keyMeta.Type); err != nil {
		return fmt.Errorf("failed to delete key from vault: %w", err)
	}

	if err := s.cryptoKeyRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to delete key from database: %w", err)
	}

	s.logger.Info("Deleted key ", keyID)
	return nil
}

// cryptoKeyDownloadService implements the CryptoKeyDownloadService interface to handle the download of cryptographic keys.
type cryptoKeyDownloadService struct {
	vaultConnector keys.VaultConnector
	cryptoKeyRepo  keys.CryptoKeyRepository
	logger         logger.Logger
}

// NewCryptoKeyDownloadService creates a new cryptoKeyDownloadService instance
func NewCryptoKeyDownloadService(vaultConnector keys.VaultConnector, cryptoKeyRepo keys.CryptoKeyRepository, logger logger.Logger) (keys.CryptoKeyDownloadService, error) {
	return &cryptoKeyDownloadService{
		vaultConnector: vaultConnector,
		cryptoKeyRepo:  cryptoKeyRepo,
		logger:         logger,
	}, nil
}

// DownloadByID retrieves the PEM encoded key by its ID.
func (s *cryptoKeyDownloadService) DownloadByID(ctx context.Context, keyID string) ([]byte, error) {
	keyMeta, err := s.cryptoKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key metadata: %w", err)
	}

	data, err := s.vaultConnector.Download(ctx, keyMeta.ID, keyMeta.KeyPairID, keyMeta.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to download key: %w", err)
	}

	return data, nil
}
