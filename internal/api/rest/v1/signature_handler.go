package v1

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SignatureHandler defines the interface for signing and verifying messages with stored keys
type SignatureHandler interface {
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

type signatureHandler struct {
	signatureService keys.SignatureService
}

// NewSignatureHandler creates a new SignatureHandler
func NewSignatureHandler(signatureService keys.SignatureService) SignatureHandler {
	return &signatureHandler{
		signatureService: signatureService,
	}
}

// Sign handles the POST request to sign a message
// @Summary Sign a message with a stored GOST3410 key pair
// @Description Hash the base64 decoded message and sign it with the private half of the pair key_id belongs to.
// @Tags Signature
// @Accept json
// @Produce json
// @Param requestBody body SignRequest true "Key ID and base64 message"
// @Success 200 {object} SignResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /signatures [post]
func (handler *signatureHandler) Sign(ctx *gin.Context) {
	var request SignRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid sign request: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	message, err := base64.StdEncoding.DecodeString(request.Message)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid message encoding: %v", err)})
		return
	}

	signature, err := handler.signatureService.Sign(ctx, request.KeyID, message)
	if err != nil {
		ctx.JSON(statusForSignatureError(err), ErrorResponse{Message: fmt.Sprintf("signing failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, SignResponse{
		KeyID:     request.KeyID,
		Signature: hex.EncodeToString(signature),
	})
}

// Verify handles the POST request to verify a signature
// @Summary Verify a GOST3410 signature
// @Description Check a hex encoded signature of a base64 message against the public half of the pair key_id belongs to.
// @Tags Signature
// @Accept json
// @Produce json
// @Param requestBody body VerifyRequest true "Key ID, base64 message and hex signature"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /signatures/verify [post]
func (handler *signatureHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid verify request: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	message, err := base64.StdEncoding.DecodeString(request.Message)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid message encoding: %v", err)})
		return
	}
	signature, err := hex.DecodeString(request.Signature)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid signature encoding: %v", err)})
		return
	}

	valid, err := handler.signatureService.Verify(ctx, request.KeyID, message, signature)
	if err != nil {
		ctx.JSON(statusForSignatureError(err), ErrorResponse{Message: fmt.Sprintf("verification failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{KeyID: request.KeyID, Valid: valid})
}

// statusForSignatureError maps service errors; malformed requests are rejected before the service is called
func statusForSignatureError(err error) int {
	switch {
	case errors.Is(err, keys.ErrKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, gost3410.ErrPolicyViolation):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
