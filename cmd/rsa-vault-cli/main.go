// Package main is the entry point for the rsa-vault-cli application.
// It initializes the root command and registers the key and cipher sub-commands.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/rsa-vault/cmd/rsa-vault-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-vault-cli",
		Short: "Block RSA file encryption CLI tool",
		Long: `rsa-vault-cli generates RSA key pairs on fixed-width integers and encrypts or
decrypts files block by block with PKCS#7-style padding.

Keys can be drawn at random, supplied as decimal or 0x-prefixed hexadecimal strings,
or loaded from a key store given with --db-dsn.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
