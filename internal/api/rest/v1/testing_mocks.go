//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/gost-vault/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockCryptoKeyUploadService is a mock implementation of CryptoKeyUploadService
type MockCryptoKeyUploadService struct {
	mock.Mock
}

func (m *MockCryptoKeyUploadService) Upload(ctx context.Context, userID string, keySize uint32) ([]*keys.CryptoKeyMeta, error) {
	args := m.Called(ctx, userID, keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.CryptoKeyMeta), args.Error(1)
}

// MockCryptoKeyMetadataService is a mock implementation of CryptoKeyMetadataService
type MockCryptoKeyMetadataService struct {
	mock.Mock
}

func (m *MockCryptoKeyMetadataService) List(ctx context.Context, query *keys.CryptoKeyQuery) ([]*keys.CryptoKeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.CryptoKeyMeta), args.Error(1)
}

func (m *MockCryptoKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.CryptoKeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.CryptoKeyMeta), args.Error(1)
}

func (m *MockCryptoKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockCryptoKeyDownloadService is a mock implementation of CryptoKeyDownloadService
type MockCryptoKeyDownloadService struct {
	mock.Mock
}

func (m *MockCryptoKeyDownloadService) DownloadByID(ctx context.Context, keyID string) ([]byte, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockSignatureService is a mock implementation of SignatureService
type MockSignatureService struct {
	mock.Mock
}

func (m *MockSignatureService) Sign(ctx context.Context, keyID string, message []byte) ([]byte, error) {
	args := m.Called(ctx, keyID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSignatureService) Verify(ctx context.Context, keyID string, message, signature []byte) (bool, error) {
	args := m.Called(ctx, keyID, message, signature)
	return args.Bool(0), args.Error(1)
}
