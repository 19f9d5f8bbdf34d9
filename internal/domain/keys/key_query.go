package keys

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// CryptoKeyQuery filters, sorts and pages key metadata listings. Zero values disable a filter.
type CryptoKeyQuery struct {
	Algorithm       string    `validate:"omitempty,oneof=GOST3410"`
	Type            string    `validate:"omitempty,oneof=private public"`
	KeyPairID       string    `validate:"omitempty,uuid4"`
	DateTimeCreated time.Time `validate:"omitempty"`

	// SortBy is a column name; it is interpolated into ORDER BY and therefore restricted
	SortBy    string `validate:"omitempty,oneof=id algorithm type key_size date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`

	Limit  int `validate:"omitempty,gt=0"`
	Offset int `validate:"omitempty,gte=0"`
}

// NewCryptoKeyQuery returns an empty query matching every key
func NewCryptoKeyQuery() *CryptoKeyQuery {
	return &CryptoKeyQuery{}
}

// Validate for validating CryptoKeyQuery struct
func (q *CryptoKeyQuery) Validate() error {
	return formatValidationError(validator.New().Struct(q))
}
