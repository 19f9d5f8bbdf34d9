package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/pkg/config"
	"github.com/MGTheTrain/gost-vault/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// GOST3410CommandHandler encapsulates logic for handling GOST R 34.10-94 operations via CLI.
type GOST3410CommandHandler struct {
	logger logger.Logger
}

// NewGOST3410CommandHandler initializes a new GOST3410CommandHandler with a configured logger.
func NewGOST3410CommandHandler() (*GOST3410CommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &GOST3410CommandHandler{
		logger: loggerInstance,
	}, nil
}

// GenerateGOST3410KeysCmd generates a parameter set and key pair and persists both keys in a selected directory
func (commandHandler *GOST3410CommandHandler) GenerateGOST3410KeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	if keySize != gost3410.ModulusBits512 && keySize != gost3410.ModulusBits1024 {
		commandHandler.logger.Error("key size ", keySize, " not supported")
		return
	}

	processor, err := processorFor(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	params, err := processor.GenerateParameters(keySize, gost3410.OrderBits)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKey, publicKey, err := processor.GenerateKeys(params)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	uniqueID := uuid.New()

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.pem", uniqueID.String()))
	if err := processor.SavePrivateKeyToFile(privateKey, privateKeyFilePath); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.pem", uniqueID.String()))
	if err := processor.SavePublicKeyToFile(publicKey, publicKeyFilePath); err != nil {
		commandHandler.logger.Error(err)
		return
	}
}

// SignGOST3410Cmd signs the contents of a file
func (commandHandler *GOST3410CommandHandler) SignGOST3410Cmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	privateKeyFilePath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag ", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}

	processor, err := processorFor(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fileContent, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKey, err := processor.ReadPrivateKey(privateKeyFilePath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := processor.Sign(fileContent, privateKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := processor.SaveSignatureToFile(signatureFilePath, signature); err != nil {
		commandHandler.logger.Error(err)
		return
	}
}

// VerifyGOST3410Cmd verifies the signature of a file's content
func (commandHandler *GOST3410CommandHandler) VerifyGOST3410Cmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag ", err)
		return
	}
	signatureFile, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag ", err)
		return
	}

	processor, err := processorFor(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKey, err := processor.ReadPublicKey(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fileContent, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signatureHex, err := os.ReadFile(filepath.Clean(signatureFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := hex.DecodeString(strings.TrimSpace(string(signatureHex)))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	valid, err := processor.Verify(fileContent, signature, publicKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if valid {
		commandHandler.logger.Info("Signature valid for ", inputFilePath)
	} else {
		commandHandler.logger.Info("Signature invalid for ", inputFilePath)
	}
}

// BenchmarkGOST3410Cmd signs and verifies random messages on concurrent sessions and reports latency statistics
func (commandHandler *GOST3410CommandHandler) BenchmarkGOST3410Cmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}
	iterations, err := cmd.Flags().GetInt("iterations")
	if err != nil {
		commandHandler.logger.Error("invalid iterations flag ", err)
		return
	}
	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		commandHandler.logger.Error("invalid workers flag ", err)
		return
	}
	hash, err := cmd.Flags().GetString("hash")
	if err != nil {
		commandHandler.logger.Error("invalid hash flag ", err)
		return
	}

	processor, err := processorFor(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	params, err := processor.GenerateParameters(keySize, gost3410.OrderBits)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	privateKey, _, err := processor.GenerateKeys(params)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	report, err := RunBenchmark(cmd.Context(), BenchmarkConfig{
		PrivateKey:    privateKey,
		HashAlgorithm: hash,
		Iterations:    iterations,
		Workers:       workers,
		Logger:        commandHandler.logger,
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info(report.String())
}

// InitGOST3410Commands registers GOST3410-related commands
func InitGOST3410Commands(rootCmd *cobra.Command) error {
	handler, err := NewGOST3410CommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create GOST3410 command handler %w", err)
	}

	var generateGOST3410KeysCmd = &cobra.Command{
		Use:   "generate-gost3410-keys",
		Short: "Generate a GOST3410 parameter set and key pair",
		Run:   handler.GenerateGOST3410KeysCmd,
	}
	generateGOST3410KeysCmd.Flags().IntP("key-size", "", config.DefaultSignerSettings().ModulusBits, "Bit length of the modulus p (512 or 1024)")
	generateGOST3410KeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the GOST3410 keys")
	rootCmd.AddCommand(generateGOST3410KeysCmd)

	var signGOST3410MessageCmd = &cobra.Command{
		Use:   "sign-gost3410",
		Short: "Sign a message using GOST3410",
		Run:   handler.SignGOST3410Cmd,
	}
	signGOST3410MessageCmd.Flags().StringP("input-file", "", "", "Path to file that needs to be signed")
	signGOST3410MessageCmd.Flags().StringP("private-key", "", "", "Path to GOST3410 private key")
	signGOST3410MessageCmd.Flags().StringP("output-file", "", "", "Path to signature output file")
	rootCmd.AddCommand(signGOST3410MessageCmd)

	var verifyGOST3410SignatureCmd = &cobra.Command{
		Use:   "verify-gost3410",
		Short: "Verify a signature using GOST3410",
		Run:   handler.VerifyGOST3410Cmd,
	}
	verifyGOST3410SignatureCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be validated")
	verifyGOST3410SignatureCmd.Flags().StringP("public-key", "", "", "Path to GOST3410 public key")
	verifyGOST3410SignatureCmd.Flags().StringP("signature-file", "", "", "Path to signature input file")
	rootCmd.AddCommand(verifyGOST3410SignatureCmd)

	var benchmarkGOST3410Cmd = &cobra.Command{
		Use:   "benchmark-gost3410",
		Short: "Benchmark GOST3410 signing on concurrent sessions",
		Run:   handler.BenchmarkGOST3410Cmd,
	}
	benchmarkGOST3410Cmd.Flags().IntP("key-size", "", gost3410.ModulusBits512, "Bit length of the modulus p (512 or 1024)")
	benchmarkGOST3410Cmd.Flags().IntP("iterations", "", 100, "Signatures per worker")
	benchmarkGOST3410Cmd.Flags().IntP("workers", "", 4, "Number of concurrent sessions")
	rootCmd.AddCommand(benchmarkGOST3410Cmd)

	return nil
}
