//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/domain/keys"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func TestSignatureHandler_Sign_Success(t *testing.T) {
	service := new(MockSignatureService)
	handler := NewSignatureHandler(service)

	keyID := uuid.NewString()
	message := []byte("hello gost")

	service.On("Sign", mock.Anything, keyID, message).Return([]byte{0x01, 0xab}, nil)

	c, w := newTestContext("POST", "/signatures", jsonBody(t, SignRequest{
		KeyID:   keyID,
		Message: base64.StdEncoding.EncodeToString(message),
	}))
	handler.Sign(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response SignResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, keyID, response.KeyID)
	assert.Equal(t, "01ab", response.Signature)
	service.AssertExpectations(t)
}

func TestSignatureHandler_Sign_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"key_id":`},
		{"key id not a uuid", `{"key_id":"abc","message":"aGk="}`},
		{"message not base64", fmt.Sprintf(`{"key_id":"%s","message":"***"}`, uuid.NewString())},
		{"missing message", fmt.Sprintf(`{"key_id":"%s"}`, uuid.NewString())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockSignatureService)
			handler := NewSignatureHandler(service)

			c, w := newTestContext("POST", "/signatures", bytes.NewBufferString(tt.body))
			handler.Sign(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			service.AssertNotCalled(t, "Sign", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSignatureHandler_Sign_ServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"unknown key", fmt.Errorf("lookup: %w", keys.ErrKeyNotFound), http.StatusNotFound},
		{"policy rejected", fmt.Errorf("%w: 20 bits below 80", gost3410.ErrPolicyViolation), http.StatusForbidden},
		{"nonce cap reached", fmt.Errorf("failed to sign message: %w", gost3410.ErrNonceAttemptsExhausted), http.StatusInternalServerError},
		{"vault failure", errors.New("failed to download private key: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockSignatureService)
			handler := NewSignatureHandler(service)

			keyID := uuid.NewString()
			service.On("Sign", mock.Anything, keyID, mock.Anything).Return(nil, tt.err)

			c, w := newTestContext("POST", "/signatures", jsonBody(t, SignRequest{
				KeyID:   keyID,
				Message: base64.StdEncoding.EncodeToString([]byte("m")),
			}))
			handler.Sign(c)

			assert.Equal(t, tt.expected, w.Code)
			service.AssertExpectations(t)
		})
	}
}

func TestSignatureHandler_Verify(t *testing.T) {
	for _, valid := range []bool{true, false} {
		t.Run(fmt.Sprintf("valid=%t", valid), func(t *testing.T) {
			service := new(MockSignatureService)
			handler := NewSignatureHandler(service)

			keyID := uuid.NewString()
			message := []byte("hello gost")
			signature := []byte{0xde, 0xad, 0xbe, 0xef}

			service.On("Verify", mock.Anything, keyID, message, signature).Return(valid, nil)

			c, w := newTestContext("POST", "/signatures/verify", jsonBody(t, VerifyRequest{
				KeyID:     keyID,
				Message:   base64.StdEncoding.EncodeToString(message),
				Signature: "deadbeef",
			}))
			handler.Verify(c)

			require.Equal(t, http.StatusOK, w.Code)

			var response VerifyResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, valid, response.Valid)
			assert.Equal(t, keyID, response.KeyID)
			service.AssertExpectations(t)
		})
	}
}

func TestSignatureHandler_Verify_InvalidRequest(t *testing.T) {
	keyID := uuid.NewString()
	tests := []struct {
		name string
		body string
	}{
		{"signature not hex", fmt.Sprintf(`{"key_id":"%s","message":"aGk=","signature":"xyz"}`, keyID)},
		{"odd length hex", fmt.Sprintf(`{"key_id":"%s","message":"aGk=","signature":"abc"}`, keyID)},
		{"missing signature", fmt.Sprintf(`{"key_id":"%s","message":"aGk="}`, keyID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockSignatureService)
			handler := NewSignatureHandler(service)

			c, w := newTestContext("POST", "/signatures/verify", bytes.NewBufferString(tt.body))
			handler.Verify(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			service.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSignatureHandler_Verify_UnknownKey(t *testing.T) {
	service := new(MockSignatureService)
	handler := NewSignatureHandler(service)

	keyID := uuid.NewString()
	service.On("Verify", mock.Anything, keyID, mock.Anything, mock.Anything).Return(false, keys.ErrKeyNotFound)

	c, w := newTestContext("POST", "/signatures/verify", jsonBody(t, VerifyRequest{
		KeyID:     keyID,
		Message:   base64.StdEncoding.EncodeToString([]byte("m")),
		Signature: "00",
	}))
	handler.Verify(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignatureHandler_Verify_ServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"policy rejected", fmt.Errorf("%w: 20 bits below 80", gost3410.ErrPolicyViolation), http.StatusForbidden},
		{"stored key unreadable", fmt.Errorf("failed to decode public key: %w", gost3410.ErrInvalidKey), http.StatusInternalServerError},
		{"repository failure", errors.New("failed to get key metadata: database is locked"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockSignatureService)
			handler := NewSignatureHandler(service)

			keyID := uuid.NewString()
			service.On("Verify", mock.Anything, keyID, mock.Anything, mock.Anything).Return(false, tt.err)

			c, w := newTestContext("POST", "/signatures/verify", jsonBody(t, VerifyRequest{
				KeyID:     keyID,
				Message:   base64.StdEncoding.EncodeToString([]byte("m")),
				Signature: "00",
			}))
			handler.Verify(c)

			assert.Equal(t, tt.expected, w.Code)
			service.AssertExpectations(t)
		})
	}
}
