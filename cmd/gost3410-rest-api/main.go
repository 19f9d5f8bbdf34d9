// cmd/gost3410-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/gost-vault/internal/api/rest/v1"
	"github.com/MGTheTrain/gost-vault/internal/app"
	"github.com/MGTheTrain/gost-vault/internal/domain/keys"
	"github.com/MGTheTrain/gost-vault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/gost-vault/internal/infrastructure/persistence"
	"github.com/MGTheTrain/gost-vault/internal/pkg/config"
	"github.com/MGTheTrain/gost-vault/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("failed to close database: ", err)
		}
	}()

	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db                *gorm.DB
	cryptoKeyUpload   keys.CryptoKeyUploadService
	cryptoKeyDownload keys.CryptoKeyDownloadService
	cryptoKeyMetadata keys.CryptoKeyMetadataService
	signature         keys.SignatureService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	cryptoKeyRepo, err := persistence.NewGormCryptoKeyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create crypto key repository: %w", err)
	}

	vaultConnector, err := persistence.NewGormVaultConnector(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault connector: %w", err)
	}

	processor, err := cryptography.NewGOST3410Processor(&cfg.Signer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create GOST3410 processor: %w", err)
	}
	log.Info("GOST3410 processor initialized with ", cfg.Signer.HashAlgorithm, " digests")

	deps := &appDependencies{db: db}

	if deps.cryptoKeyUpload, err = app.NewCryptoKeyUploadService(vaultConnector, cryptoKeyRepo, processor, log); err != nil {
		return nil, fmt.Errorf("failed to create crypto key upload service: %w", err)
	}
	if deps.cryptoKeyDownload, err = app.NewCryptoKeyDownloadService(vaultConnector, cryptoKeyRepo, log); err != nil {
		return nil, fmt.Errorf("failed to create crypto key download service: %w", err)
	}
	if deps.cryptoKeyMetadata, err = app.NewCryptoKeyMetadataService(vaultConnector, cryptoKeyRepo, log); err != nil {
		return nil, fmt.Errorf("failed to create crypto key metadata service: %w", err)
	}
	if deps.signature, err = app.NewSignatureService(vaultConnector, cryptoKeyRepo, processor, log); err != nil {
		return nil, fmt.Errorf("failed to create signature service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return deps, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	v1.SetupRoutes(r,
		deps.cryptoKeyUpload,
		deps.cryptoKeyDownload,
		deps.cryptoKeyMetadata,
		deps.signature,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
