//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockCryptoKeyRepository is a mock implementation of CryptoKeyRepository
type MockCryptoKeyRepository struct {
	mock.Mock
}

func (m *MockCryptoKeyRepository) Create(ctx context.Context, key *keys.CryptoKeyMeta) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCryptoKeyRepository) List(ctx context.Context, query *keys.CryptoKeyQuery) ([]*keys.CryptoKeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.CryptoKeyMeta), args.Error(1)
}

func (m *MockCryptoKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.CryptoKeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.CryptoKeyMeta), args.Error(1)
}

func (m *MockCryptoKeyRepository) UpdateByID(ctx context.Context, key *keys.CryptoKeyMeta) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCryptoKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockVaultConnector is a mock implementation of VaultConnector
type MockVaultConnector struct {
	mock.Mock
}

func (m *MockVaultConnector) Upload(ctx context.Context, bytes []byte, userID, keyPairID, keyType, keyAlgorithm string, keySize uint32) (*keys.CryptoKeyMeta, error) {
	args := m.Called(ctx, bytes, userID, keyPairID, keyType, keyAlgorithm, keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.CryptoKeyMeta), args.Error(1)
}

func (m *MockVaultConnector) Download(ctx context.Context, keyID, keyPairID, keyType string) ([]byte, error) {
	args := m.Called(ctx, keyID, keyPairID, keyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockVaultConnector) Delete(ctx context.Context, keyID, keyPairID, keyType string) error {
	args := m.Called(ctx, keyID, keyPairID, keyType)
	return args.Error(0)
}

// MockProcessor is a mock implementation of gost3410.Processor
type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) GenerateParameters(modulusBits, orderBits int) (*gost3410.DomainParameters, error) {
	args := m.Called(modulusBits, orderBits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gost3410.DomainParameters), args.Error(1)
}

func (m *MockProcessor) GenerateKeys(params *gost3410.DomainParameters) (*gost3410.PrivateKey, *gost3410.PublicKey, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*gost3410.PrivateKey), args.Get(1).(*gost3410.PublicKey), args.Error(2)
}

func (m *MockProcessor) Sign(message []byte, privateKey *gost3410.PrivateKey) ([]byte, error) {
	args := m.Called(message, privateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockProcessor) Verify(message, signature []byte, publicKey *gost3410.PublicKey) (bool, error) {
	args := m.Called(message, signature, publicKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockProcessor) EncodePrivateKey(privateKey *gost3410.PrivateKey) ([]byte, error) {
	args := m.Called(privateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockProcessor) EncodePublicKey(publicKey *gost3410.PublicKey) ([]byte, error) {
	args := m.Called(publicKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockProcessor) DecodePrivateKey(data []byte) (*gost3410.PrivateKey, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gost3410.PrivateKey), args.Error(1)
}

func (m *MockProcessor) DecodePublicKey(data []byte) (*gost3410.PublicKey, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gost3410.PublicKey), args.Error(1)
}

func (m *MockProcessor) SaveSignatureToFile(filename string, data []byte) error {
	return m.Called(filename, data).Error(0)
}

func (m *MockProcessor) SavePrivateKeyToFile(privateKey *gost3410.PrivateKey, filename string) error {
	return m.Called(privateKey, filename).Error(0)
}

func (m *MockProcessor) SavePublicKeyToFile(publicKey *gost3410.PublicKey, filename string) error {
	return m.Called(publicKey, filename).Error(0)
}

func (m *MockProcessor) ReadPrivateKey(privateKeyPath string) (*gost3410.PrivateKey, error) {
	args := m.Called(privateKeyPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gost3410.PrivateKey), args.Error(1)
}

func (m *MockProcessor) ReadPublicKey(publicKeyPath string) (*gost3410.PublicKey, error) {
	args := m.Called(publicKeyPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gost3410.PublicKey), args.Error(1)
}
