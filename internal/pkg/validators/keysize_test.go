//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keySizeSubject struct {
	Algorithm string
	KeySize   uint32 `validate:"keySizeValidation"`
}

func TestKeySizeValidation(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("keySizeValidation", KeySizeValidation))

	tests := []struct {
		name    string
		subject keySizeSubject
		valid   bool
	}{
		{"GOST3410 512", keySizeSubject{Algorithm: "GOST3410", KeySize: 512}, true},
		{"GOST3410 1024", keySizeSubject{Algorithm: "GOST3410", KeySize: 1024}, true},
		{"GOST3410 2048", keySizeSubject{Algorithm: "GOST3410", KeySize: 2048}, false},
		{"unknown algorithm", keySizeSubject{Algorithm: "RSA", KeySize: 2048}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.subject)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
