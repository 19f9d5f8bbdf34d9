package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/domain/keys"
	"github.com/MGTheTrain/gost-vault/internal/pkg/logger"
)

// signatureService implements the SignatureService interface on top of stored key pairs
type signatureService struct {
	vaultConnector keys.VaultConnector
	cryptoKeyRepo  keys.CryptoKeyRepository
	processor      gost3410.Processor
	logger         logger.Logger
}

// NewSignatureService creates a new signatureService instance
func NewSignatureService(
	vaultConnector keys.VaultConnector,
	cryptoKeyRepo keys.CryptoKeyRepository,
	processor gost3410.Processor,
	logger logger.Logger,
) (keys.SignatureService, error) {
	return &signatureService{
		vaultConnector: vaultConnector,
		cryptoKeyRepo:  cryptoKeyRepo,
		processor:      processor,
		logger:         logger,
	}, nil
}

// Sign signs message with the private half of the key pair keyID belongs to.
func (s *signatureService) Sign(ctx context.Context, keyID string, message []byte) ([]byte, error) {
	data, err := s.downloadPairMember(ctx, keyID, gost3410.KeyTypePrivate)
	if err != nil {
		return nil, err
	}

	privateKey, err := s.processor.DecodePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}

	signature, err := s.processor.Sign(message, privateKey)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Signed message with key pair of key ", keyID)
	return signature, nil
}

// Verify checks signature with the public half of the key pair keyID belongs to.
func (s *signatureService) Verify(ctx context.Context, keyID string, message, signature []byte) (bool, error) {
	data, err := s.downloadPairMember(ctx, keyID, gost3410.KeyTypePublic)
	if err != nil {
		return false, err
	}

	publicKey, err := s.processor.DecodePublicKey(data)
	if err != nil {
		return false, fmt.Errorf("failed to decode public key: %w", err)
	}

	return s.processor.Verify(message, signature, publicKey)
}

// downloadPairMember returns the material of the keyType half of the pair keyID belongs to.
func (s *signatureService) downloadPairMember(ctx context.Context, keyID, keyType string) ([]byte, error) {
	keyMeta, err := s.cryptoKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key metadata: %w", err)
	}
	if keyMeta.Algorithm != gost3410.AlgorithmGOST3410 {
		return nil, fmt.Errorf("unsupported algorithm: %s", keyMeta.Algorithm)
	}

	if keyMeta.Type != keyType {
		members, err := s.cryptoKeyRepo.List(ctx, &keys.CryptoKeyQuery{
			KeyPairID: keyMeta.KeyPairID,
			Type:      keyType,
			Limit:     1,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s key of pair %s: %w", keyType, keyMeta.KeyPairID, err)
		}
		if len(members) == 0 {
			return nil, fmt.Errorf("%w: no %s key in pair %s", keys.ErrKeyNotFound, keyType, keyMeta.KeyPairID)
		}
		keyMeta = members[0]
	}

	data, err := s.vaultConnector.Download(ctx, keyMeta.ID, keyMeta.KeyPairID, keyMeta.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s key: %w", keyType, err)
	}

	return data, nil
}
