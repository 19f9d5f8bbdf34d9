package cryptography

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/pkg/config"
	"github.com/MGTheTrain/gost-vault/internal/pkg/logger"
)

// ProcessorOption configures a processor created by NewGOST3410Processor
type ProcessorOption func(*gost3410Processor)

// WithNonceSource replaces the source used for signing nonces and private scalars.
func WithNonceSource(source gost3410.NonceSource) ProcessorOption {
	return func(p *gost3410Processor) {
		if source != nil {
			p.nonces = source
		}
	}
}

// WithRandom replaces the reader used for parameter generation.
func WithRandom(random io.Reader) ProcessorOption {
	return func(p *gost3410Processor) {
		if random != nil {
			p.random = random
		}
	}
}

// gost3410Processor struct that implements the gost3410.Processor interface
type gost3410Processor struct {
	settings *config.SignerSettings
	gate     gost3410.ConstraintGate
	nonces   gost3410.NonceSource
	random   io.Reader
	logger   logger.Logger
}

// NewGOST3410Processor creates a processor from settings; nil settings fall back to DefaultSignerSettings.
// Every Sign and Verify call runs in a fresh signer session, so the processor is safe for concurrent use.
func NewGOST3410Processor(settings *config.SignerSettings, logger logger.Logger, opts ...ProcessorOption) (gost3410.Processor, error) {
	if settings == nil {
		settings = config.DefaultSignerSettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	p := &gost3410Processor{
		settings: settings,
		gate:     NewBitsOfSecurityGate(settings.RequiredSecurityBits, settings.LegacySecurityBits),
		nonces:   DefaultNonceSource(),
		random:   rand.Reader,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// GenerateParameters generates a GOST R 34.10-94 parameter set.
func (p *gost3410Processor) GenerateParameters(modulusBits, orderBits int) (*gost3410.DomainParameters, error) {
	params, err := generateParameters(p.random, modulusBits, orderBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate GOST3410 parameters: %w", err)
	}

	p.logger.Info(fmt.Sprintf("Generated GOST3410 parameters with %d-bit p and %d-bit q", modulusBits, orderBits))
	return params, nil
}

// GenerateKeys generates a key pair over params.
func (p *gost3410Processor) GenerateKeys(params *gost3410.DomainParameters) (*gost3410.PrivateKey, *gost3410.PublicKey, error) {
	priv, pub, err := generateKeys(p.nonces, params)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate GOST3410 keys: %w", err)
	}

	p.logger.Info("Generated GOST3410 key pairs")
	return priv, pub, nil
}

func (p *gost3410Processor) newSession() (gost3410.Signer, error) {
	return NewGOST3410Signer(p.logger,
		WithConstraintGate(p.gate),
		WithDefaultNonceSource(p.nonces),
		WithMaxNonceAttempts(p.settings.MaxNonceAttempts),
	)
}

// Sign hashes message with the configured digest algorithm and returns r || s.
func (p *gost3410Processor) Sign(message []byte, privateKey *gost3410.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	digest, err := Digest(p.settings.HashAlgorithm, message)
	if err != nil {
		return nil, err
	}

	signer, err := p.newSession()
	if err != nil {
		return nil, err
	}
	if err := signer.Init(gost3410.RoleSigning, privateKey, nil); err != nil {
		return nil, fmt.Errorf("failed to initialize signing session: %w", err)
	}

	sig, err := signer.GenerateSignature(digest)
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}

	signature, err := sig.Bytes(privateKey.Parameters().OrderByteLen())
	if err != nil {
		return nil, err
	}

	p.logger.Info("GOST3410 signing succeeded")
	return signature, nil
}

// Verify hashes message and checks the r || s encoded signature.
// A signature of the wrong length is reported as invalid.
func (p *gost3410Processor) Verify(message, signature []byte, publicKey *gost3410.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, fmt.Errorf("public key cannot be nil")
	}

	sig, err := gost3410.ParseSignature(signature, publicKey.Parameters().OrderByteLen())
	if errors.Is(err, gost3410.ErrInvalidSignatureEncoding) {
		p.logger.Warn(fmt.Sprintf("Rejected GOST3410 signature: %v", err))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	digest, err := Digest(p.settings.HashAlgorithm, message)
	if err != nil {
		return false, err
	}

	verifier, err := p.newSession()
	if err != nil {
		return false, err
	}
	if err := verifier.Init(gost3410.RoleVerifying, publicKey, nil); err != nil {
		return false, fmt.Errorf("failed to initialize verifying session: %w", err)
	}

	valid, err := verifier.VerifySignature(digest, sig.R, sig.S)
	if err != nil {
		return false, fmt.Errorf("failed to verify signature: %w", err)
	}

	p.logger.Info(fmt.Sprintf("GOST3410 verification finished, valid=%t", valid))
	return valid, nil
}

// EncodePrivateKey returns the PEM encoding of the private key.
func (p *gost3410Processor) EncodePrivateKey(privateKey *gost3410.PrivateKey) ([]byte, error) {
	return encodePrivateKeyPEM(privateKey)
}

// EncodePublicKey returns the PEM encoding of the public key.
func (p *gost3410Processor) EncodePublicKey(publicKey *gost3410.PublicKey) ([]byte, error) {
	return encodePublicKeyPEM(publicKey)
}

// DecodePrivateKey parses a PEM encoded private key.
func (p *gost3410Processor) DecodePrivateKey(data []byte) (*gost3410.PrivateKey, error) {
	return decodePrivateKeyPEM(data)
}

// DecodePublicKey parses a PEM encoded public key.
func (p *gost3410Processor) DecodePublicKey(data []byte) (*gost3410.PublicKey, error) {
	return decodePublicKeyPEM(data)
}

// SaveSignatureToFile saves the signature bytes hex-encoded to a file.
func (p *gost3410Processor) SaveSignatureToFile(filename string, data []byte) error {
	hexData := hex.EncodeToString(data)
	if err := os.WriteFile(filepath.Clean(filename), []byte(hexData), 0600); err != nil {
		return fmt.Errorf("failed to write data to file %s: %w", filename, err)
	}

	p.logger.Info("Saved signature file ", filename)
	return nil
}

// SavePrivateKeyToFile saves the private key to a PEM-encoded file.
func (p *gost3410Processor) SavePrivateKeyToFile(privateKey *gost3410.PrivateKey, filename string) error {
	data, err := encodePrivateKeyPEM(privateKey)
	if err != nil {
		return fmt.Errorf("failed to encode private key: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(filename), data, 0600); err != nil {
		return fmt.Errorf("failed to create private key file: %w", err)
	}

	p.logger.Info("Saved GOST3410 private key ", filename)
	return nil
}

// SavePublicKeyToFile saves the public key to a PEM-encoded file.
func (p *gost3410Processor) SavePublicKeyToFile(publicKey *gost3410.PublicKey, filename string) error {
	data, err := encodePublicKeyPEM(publicKey)
	if err != nil {
		return fmt.Errorf("failed to encode public key: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(filename), data, 0600); err != nil {
		return fmt.Errorf("failed to create public key file: %w", err)
	}

	p.logger.Info("Saved GOST3410 public key ", filename)
	return nil
}

// ReadPrivateKey reads a private key from a PEM-encoded file.
func (p *gost3410Processor) ReadPrivateKey(privateKeyPath string) (*gost3410.PrivateKey, error) {
	data, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read private key file: %w", err)
	}

	return decodePrivateKeyPEM(data)
}

// ReadPublicKey reads a public key from a PEM-encoded file.
func (p *gost3410Processor) ReadPublicKey(publicKeyPath string) (*gost3410.PublicKey, error) {
	data, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read public key file: %w", err)
	}

	return decodePublicKeyPEM(data)
}
