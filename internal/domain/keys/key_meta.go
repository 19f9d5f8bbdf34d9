package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/gost-vault/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// CryptoKeyMeta describes one half of a stored key pair. KeySize is the bit length of p.
type CryptoKeyMeta struct {
	ID              string    `validate:"required,uuid4"`
	KeyPairID       string    `validate:"required,uuid4"`
	Algorithm       string    `validate:"required,oneof=GOST3410"`
	KeySize         uint32    `validate:"keySizeValidation"`
	Type            string    `validate:"required,oneof=private public"`
	DateTimeCreated time.Time `validate:"required"`
	UserID          string    `validate:"required,uuid4"`
}

// Validate for validating CryptoKeyMeta struct
func (k *CryptoKeyMeta) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keySizeValidation", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	return formatValidationError(validate.Struct(k))
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
