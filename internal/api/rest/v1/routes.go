package v1

import (
	"github.com/MGTheTrain/gost-vault/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	cryptoKeyUploadService keys.CryptoKeyUploadService,
	cryptoKeyDownloadService keys.CryptoKeyDownloadService,
	cryptoKeyMetadataService keys.CryptoKeyMetadataService,
	signatureService keys.SignatureService) {

	v1 := r.Group(BasePath)

	keyHandler := NewKeyHandler(cryptoKeyUploadService, cryptoKeyDownloadService, cryptoKeyMetadataService)
	v1.POST("/keys", keyHandler.UploadKeys)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.GET("/keys/:id/file", keyHandler.DownloadByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	signatureHandler := NewSignatureHandler(signatureService)
	v1.POST("/signatures", signatureHandler.Sign)
	v1.POST("/signatures/verify", signatureHandler.Verify)
}
