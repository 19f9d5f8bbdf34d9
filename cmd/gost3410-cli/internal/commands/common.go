package commands

import (
	"fmt"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/gost-vault/internal/pkg/config"
	"github.com/MGTheTrain/gost-vault/internal/pkg/logger"

	"github.com/spf13/cobra"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// processorFor builds a processor honoring the --hash persistent flag
func processorFor(cmd *cobra.Command, log logger.Logger, opts ...cryptography.ProcessorOption) (gost3410.Processor, error) {
	settings := config.DefaultSignerSettings()

	hash, err := cmd.Flags().GetString("hash")
	if err == nil && hash != "" {
		settings.HashAlgorithm = hash
	}

	processor, err := cryptography.NewGOST3410Processor(settings, log, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GOST3410 processor: %w", err)
	}
	return processor, nil
}
