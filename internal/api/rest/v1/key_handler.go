package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/domain/keys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	UploadKeys(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	cryptoKeyUploadService   keys.CryptoKeyUploadService
	cryptoKeyDownloadService keys.CryptoKeyDownloadService
	cryptoKeyMetadataService keys.CryptoKeyMetadataService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(cryptoKeyUploadService keys.CryptoKeyUploadService, cryptoKeyDownloadService keys.CryptoKeyDownloadService, cryptoKeyMetadataService keys.CryptoKeyMetadataService) KeyHandler {
	return &keyHandler{
		cryptoKeyUploadService:   cryptoKeyUploadService,
		cryptoKeyDownloadService: cryptoKeyDownloadService,
		cryptoKeyMetadataService: cryptoKeyMetadataService,
	}
}

// UploadKeys handles the POST request to generate and upload a GOST3410 key pair
// @Summary Generate a GOST3410 key pair and store it
// @Description Generate a fresh parameter set and key pair with the requested modulus size and store both halves.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body UploadKeyRequest true "Key generation parameters"
// @Success 201 {array} CryptoKeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) UploadKeys(ctx *gin.Context) {
	var request UploadKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	userID := uuid.NewString() // TODO(MGTheTrain): extract user id from JWT

	cryptoKeyMetas, err := handler.cryptoKeyUploadService.Upload(ctx, userID, request.KeySize)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error uploading key: %v", err)})
		return
	}

	listResponse := []CryptoKeyMetaResponse{}
	for _, cryptoKeyMeta := range cryptoKeyMetas {
		listResponse = append(listResponse, NewCryptoKeyMetaResponse(cryptoKeyMeta))
	}

	ctx.JSON(http.StatusCreated, listResponse)
}

// ListMetadata handles the GET request to list cryptographic key metadata with optional query parameters
// @Summary List cryptographic key metadata based on query parameters
// @Description Fetch a list of key metadata filtered by algorithm, type, key pair and creation date, with pagination and sorting options.
// @Tags Key
// @Accept json
// @Produce json
// @Param algorithm query string false "Cryptographic Algorithm"
// @Param type query string false "Key Type"
// @Param keyPairId query string false "Key Pair ID"
// @Param dateTimeCreated query string false "Key Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} CryptoKeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewCryptoKeyQuery()
	query.Algorithm = ctx.Query("algorithm")
	query.Type = ctx.Query("type")
	query.KeyPairID = ctx.Query("keyPairId")
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid dateTimeCreated: %v", err)})
			return
		}
		query.DateTimeCreated = parsedTime
	}

	for name, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		raw := ctx.Query(name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %s", name, raw)})
			return
		}
		*target = value
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	cryptoKeyMetas, err := handler.cryptoKeyMetadataService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	listResponse := []CryptoKeyMetaResponse{}
	for _, cryptoKeyMeta := range cryptoKeyMetas {
		listResponse = append(listResponse, NewCryptoKeyMetaResponse(cryptoKeyMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve crypto key metadata by ID
// @Summary Retrieve crypto key metadata by ID
// @Description Fetch the crypto key metadata by ID, including algorithm, key size and creation date.
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} CryptoKeyMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	cryptoKeyMeta, err := handler.cryptoKeyMetadataService.GetByID(ctx, keyID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("key with id %s not found", keyID)})
		return
	}

	ctx.JSON(http.StatusOK, NewCryptoKeyMetaResponse(cryptoKeyMeta))
}

// DownloadByID handles GET request to download a public key by ID
// @Summary Download a public key by ID
// @Description Download a GOST3410 public key in PEM format. Private keys never leave the vault.
// @Tags Key
// @Accept json
// @Produce application/x-pem-file
// @Param id path string true "Key ID"
// @Success 200 {file} file "Public key in PEM format"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /keys/{id}/file [get]
func (handler *keyHandler) DownloadByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	keyMeta, err := handler.cryptoKeyMetadataService.GetByID(ctx, keyID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("key with id %s not found", keyID)})
		return
	}

	if keyMeta.Type != gost3410.KeyTypePublic {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "download forbidden for private keys"})
		return
	}

	pemBytes, err := handler.cryptoKeyDownloadService.DownloadByID(ctx, keyID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, keys.ErrKeyNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("could not download key with id %s: %v", keyID, err)})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-public-key.pem", keyID))
	ctx.Data(http.StatusOK, "application/x-pem-file", pemBytes)
}

// DeleteByID handles the DELETE request to delete a key by ID
// @Summary Delete a cryptographic key by ID
// @Description Delete a specific cryptographic key and associated metadata by ID.
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.cryptoKeyMetadataService.DeleteByID(ctx, keyID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error deleting key with id %s", keyID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted key with id %s", keyID)})
}
