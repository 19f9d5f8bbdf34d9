// Package validators holds custom go-playground validator functions shared by request DTOs and
// domain entities.
package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates the key size based on the sibling Algorithm field.
// GOST3410 key sizes are the bit length of the modulus p.
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	keySize := fl.Field().Uint()

	switch algorithm {
	case "GOST3410":
		return keySize == 512 || keySize == 1024
	default:
		return false
	}
}
