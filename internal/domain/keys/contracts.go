package keys

import (
	"context"
)

// CryptoKeyUploadService defines methods for generating and storing GOST3410 key pairs.
type CryptoKeyUploadService interface {
	// Upload generates a parameter set with a keySize-bit modulus and a key pair over it,
	// stores both halves and returns their metadata, private key first.
	Upload(ctx context.Context, userID string, keySize uint32) ([]*CryptoKeyMeta, error)
}

// CryptoKeyMetadataService defines methods for managing cryptographic key metadata and deleting keys.
type CryptoKeyMetadataService interface {
	// List retrieves all cryptographic keys metadata considering a query filter when set.
	// It returns a slice of CryptoKeyMeta and any error encountered during the retrieval process.
	List(ctx context.Context, query *CryptoKeyQuery) ([]*CryptoKeyMeta, error)

	// GetByID retrieves the metadata of a cryptographic key by its unique ID.
	// It returns the CryptoKeyMeta and any error encountered during the retrieval process.
	GetByID(ctx context.Context, keyID string) (*CryptoKeyMeta, error)

	// DeleteByID deletes a cryptographic key and its associated metadata by ID.
	// It returns any error encountered during the deletion process.
	DeleteByID(ctx context.Context, keyID string) error
}

// CryptoKeyDownloadService defines methods for downloading cryptographic keys.
type CryptoKeyDownloadService interface {
	// DownloadByID retrieves the PEM encoded key by its ID.
	DownloadByID(ctx context.Context, keyID string) ([]byte, error)
}

// SignatureService signs and verifies messages with stored key pairs.
// keyID may name either half of a pair; the matching half is resolved through KeyPairID.
type SignatureService interface {
	// Sign returns the r || s encoded signature of message.
	Sign(ctx context.Context, keyID string, message []byte) ([]byte, error)

	// Verify reports whether signature is valid for message.
	Verify(ctx context.Context, keyID string, message, signature []byte) (bool, error)
}

// CryptoKeyRepository defines the interface for CryptoKey-related operations
type CryptoKeyRepository interface {
	Create(ctx context.Context, key *CryptoKeyMeta) error
	List(ctx context.Context, query *CryptoKeyQuery) ([]*CryptoKeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*CryptoKeyMeta, error)
	UpdateByID(ctx context.Context, key *CryptoKeyMeta) error
	DeleteByID(ctx context.Context, keyID string) error
}

// VaultConnector is an interface for interacting with key material storage.
// Material is addressed by key ID, key pair ID and key type.
type VaultConnector interface {
	// Upload stores the encoded key and returns freshly created metadata for it.
	Upload(ctx context.Context, bytes []byte, userID, keyPairID, keyType, keyAlgorithm string, keySize uint32) (*CryptoKeyMeta, error)

	// Download retrieves a key's content by its IDs and type and returns the data as a byte slice.
	Download(ctx context.Context, keyID, keyPairID, keyType string) ([]byte, error)

	// Delete deletes a key from Vault Storage by its IDs and type and returns any error encountered.
	Delete(ctx context.Context, keyID, keyPairID, keyType string) error
}
