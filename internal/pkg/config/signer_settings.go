package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SignerSettings configures the GOST R 34.10-94 processor and its constraint gate
type SignerSettings struct {
	HashAlgorithm string `mapstructure:"hash_algorithm" validate:"required,oneof=sha256 blake2b-256 blake3-256"`
	ModulusBits   int    `mapstructure:"modulus_bits" validate:"required,oneof=512 1024"`
	// MaxNonceAttempts caps the nonce rejection loop; 0 keeps it unbounded
	MaxNonceAttempts int `mapstructure:"max_nonce_attempts" validate:"gte=0"`
	// RequiredSecurityBits is the floor for signing sessions
	RequiredSecurityBits int `mapstructure:"required_security_bits" validate:"gte=0"`
	// LegacySecurityBits is the floor for verifying sessions
	LegacySecurityBits int `mapstructure:"legacy_security_bits" validate:"gte=0,ltefield=RequiredSecurityBits"`
}

// DefaultSignerSettings returns settings that sign with SHA-256 over 1024-bit parameter sets and
// accept every key.
func DefaultSignerSettings() *SignerSettings {
	return &SignerSettings{
		HashAlgorithm: "sha256",
		ModulusBits:   1024,
	}
}

// Validate checks that all fields in SignerSettings are valid
func (s *SignerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SignerSettings: %w", err)
	}

	return nil
}
