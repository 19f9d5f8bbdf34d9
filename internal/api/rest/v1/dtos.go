package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/gost-vault/internal/domain/keys"
	"github.com/go-playground/validator/v10"
)

// UploadKeyRequest is the body of POST /keys
type UploadKeyRequest struct {
	Algorithm string `json:"algorithm" validate:"omitempty,oneof=GOST3410"`
	KeySize   uint32 `json:"key_size" validate:"required,oneof=512 1024"`
}

// Validate for validating UploadKeyRequest struct
func (r *UploadKeyRequest) Validate() error {
	return validateStruct(r)
}

// SignRequest is the body of POST /signatures
type SignRequest struct {
	KeyID   string `json:"key_id" validate:"required,uuid4"`
	Message string `json:"message" validate:"required,base64"`
}

// Validate for validating SignRequest struct
func (r *SignRequest) Validate() error {
	return validateStruct(r)
}

// SignResponse carries the hex encoded r || s signature
type SignResponse struct {
	KeyID     string `json:"key_id"`
	Signature string `json:"signature"`
}

// VerifyRequest is the body of POST /signatures/verify
type VerifyRequest struct {
	KeyID     string `json:"key_id" validate:"required,uuid4"`
	Message   string `json:"message" validate:"required,base64"`
	Signature string `json:"signature" validate:"required,hexadecimal"`
}

// Validate for validating VerifyRequest struct
func (r *VerifyRequest) Validate() error {
	return validateStruct(r)
}

// VerifyResponse reports the verification outcome
type VerifyResponse struct {
	KeyID string `json:"key_id"`
	Valid bool   `json:"valid"`
}

// CryptoKeyMetaResponse is the wire form of keys.CryptoKeyMeta
type CryptoKeyMetaResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"key_pair_id"`
	Algorithm       string    `json:"algorithm"`
	KeySize         uint32    `json:"key_size"`
	Type            string    `json:"type"`
	DateTimeCreated time.Time `json:"date_time_created"`
	UserID          string    `json:"user_id"`
}

// NewCryptoKeyMetaResponse converts key metadata to its response form
func NewCryptoKeyMetaResponse(meta *keys.CryptoKeyMeta) CryptoKeyMetaResponse {
	return CryptoKeyMetaResponse{
		ID:              meta.ID,
		KeyPairID:       meta.KeyPairID,
		Algorithm:       meta.Algorithm,
		KeySize:         meta.KeySize,
		Type:            meta.Type,
		DateTimeCreated: meta.DateTimeCreated,
		UserID:          meta.UserID,
	}
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
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

	return nil
}
