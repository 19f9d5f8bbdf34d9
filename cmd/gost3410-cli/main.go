// Package main is the entry point for the gost3410-cli application.
// It registers the GOST R 34.10-94 key generation, signing, verification and benchmark
// commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/gost-vault/cmd/gost3410-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "gost3410-cli",
		Short: "GOST R 34.10-94 signature CLI tool",
		Long: `gost3410-cli is a command-line tool for GOST R 34.10-94 digital signatures.
Generates parameter sets and key pairs, signs and verifies files and benchmarks
concurrent signing sessions.

The digest algorithm defaults to sha256 and can be changed with --hash
(sha256, blake2b-256, blake3-256).`,
	}
	rootCmd.PersistentFlags().String("hash", "sha256", "Digest algorithm applied to messages before signing")

	if err := commands.InitGOST3410Commands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize GOST3410 commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
