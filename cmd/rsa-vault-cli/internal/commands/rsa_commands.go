package commands

import (
	"fmt"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for encrypting and decrypting files via CLI.
type RSACommandHandler struct {
	settings *config.CipherSettings
	logger   logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging and the default cipher settings.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	settings := config.DefaultCipherSettings()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &RSACommandHandler{
		settings: settings,
		logger:   loggerInstance,
	}, nil
}

// EncryptCmd encrypts a file block by block. The output starts with the private exponent
// and modulus so that decrypt can run without a key.
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	inputFile, outputFile, err := fileFlags(cmd)
	if err != nil {
		return err
	}
	randomKeys, err := cmd.Flags().GetBool("random-keys")
	if err != nil {
		return fmt.Errorf("invalid random-keys flag: %w", err)
	}
	printKeys, err := cmd.Flags().GetBool("print-keys")
	if err != nil {
		return fmt.Errorf("invalid print-keys flag: %w", err)
	}

	fileCipher, err := newFileCipher(commandHandler.settings, commandHandler.logger)
	if err != nil {
		return err
	}

	var (
		key  *cryptoalg.KeyPair
		seed uint64
	)
	switch {
	case cmd.Flags().Changed("key-id"):
		key, err = commandHandler.storedKey(cmd)
	case randomKeys:
		key, seed, err = commandHandler.randomKey(cmd)
	case cmd.Flags().Changed("n"):
		key, err = commandHandler.suppliedKey(cmd, "n", "e", "d")
	default:
		return fmt.Errorf("one of --random-keys, --n/--e/--d or --key-id is required")
	}
	if err != nil {
		return err
	}

	if printKeys {
		if randomKeys {
			fmt.Fprintf(cmd.OutOrStdout(), "seed = %d\n", seed)
		}
		printKeyPair(cmd.OutOrStdout(), key)
	}

	if err := fileCipher.EncryptFile(cmd.Context(), inputFile, outputFile, key); err != nil {
		commandHandler.logger.Error(fmt.Sprintf("Encryption of %s failed: %v", inputFile, err))
		return err
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
	return nil
}

// DecryptCmd decrypts a file produced by EncryptCmd. Without key flags the exponent and
// modulus embedded in the file are used.
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	inputFile, outputFile, err := fileFlags(cmd)
	if err != nil {
		return err
	}

	fileCipher, err := newFileCipher(commandHandler.settings, commandHandler.logger)
	if err != nil {
		return err
	}

	var key *cryptoalg.KeyPair
	switch {
	case cmd.Flags().Changed("key-id"):
		key, err = commandHandler.storedKey(cmd)
	case cmd.Flags().Changed("n"):
		key, err = commandHandler.suppliedKey(cmd, "n", "", "d")
	default:
		commandHandler.logger.Info("No key supplied, using the key embedded in ", inputFile)
	}
	if err != nil {
		return err
	}

	if err := fileCipher.DecryptFile(cmd.Context(), inputFile, outputFile, key); err != nil {
		commandHandler.logger.Error(fmt.Sprintf("Decryption of %s failed: %v", inputFile, err))
		return err
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
	return nil
}

// randomKey generates a fresh key pair from the --seed stream
func (commandHandler *RSACommandHandler) randomKey(cmd *cobra.Command) (*cryptoalg.KeyPair, uint64, error) {
	source, seed, err := randomSource(cmd)
	if err != nil {
		return nil, 0, err
	}
	generator, err := newKeyGenerator(commandHandler.settings, source, commandHandler.logger)
	if err != nil {
		return nil, 0, err
	}
	key, err := generator.Generate(cmd.Context())
	return key, seed, err
}

func (commandHandler *RSACommandHandler) storedKey(cmd *cobra.Command) (*cryptoalg.KeyPair, error) {
	keyID, err := cmd.Flags().GetString("key-id")
	if err != nil {
		return nil, fmt.Errorf("invalid key-id flag: %w", err)
	}

	repo, closeDB, err := openKeyRepository(cmd, commandHandler.logger)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := closeDB(); err != nil {
			commandHandler.logger.Warn(fmt.Sprintf("failed to close key store: %v", err))
		}
	}()

	record, err := repo.GetByID(cmd.Context(), keyID)
	if err != nil {
		return nil, err
	}
	if record.KeyPair.Width() != commandHandler.settings.KeyBits {
		return nil, fmt.Errorf("key %s is %d bits wide, expected %d", keyID, record.KeyPair.Width(), commandHandler.settings.KeyBits)
	}
	return record.KeyPair, nil
}

// suppliedKey reads the named key flags; an empty name leaves that exponent zero
func (commandHandler *RSACommandHandler) suppliedKey(cmd *cobra.Command, names ...string) (*cryptoalg.KeyPair, error) {
	values := make([]string, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", name, err)
		}
		values[i] = v
	}
	return parseKeyPair(commandHandler.settings.KeyBits, values[0], values[1], values[2])
}

func fileFlags(cmd *cobra.Command) (string, string, error) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return "", "", fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return "", "", fmt.Errorf("invalid output-file flag: %w", err)
	}
	return inputFile, outputFile, nil
}

// InitRSACommands initializes the encrypt and decrypt commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler: %w", err)
	}

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file block by block",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptCmd.Flags().BoolP("random-keys", "", false, "Generate a fresh key pair for this file")
	encryptCmd.Flags().StringP("n", "", "", "Modulus as decimal or 0x-prefixed hex")
	encryptCmd.Flags().StringP("e", "", "", "Public exponent as decimal or 0x-prefixed hex")
	encryptCmd.Flags().StringP("d", "", "", "Private exponent as decimal or 0x-prefixed hex")
	encryptCmd.Flags().StringP("key-id", "", "", "ID of a stored key pair")
	encryptCmd.Flags().BoolP("print-keys", "", false, "Print the key pair used")
	encryptCmd.Flags().Uint64P("seed", "", 0, "Seed for key generation; zero seeds from the current time")
	addKeyStoreFlags(encryptCmd)
	_ = encryptCmd.MarkFlagRequired("input-file")
	_ = encryptCmd.MarkFlagRequired("output-file")
	encryptCmd.MarkFlagsRequiredTogether("n", "e", "d")
	encryptCmd.MarkFlagsRequiredTogether("key-id", "db-dsn")
	encryptCmd.MarkFlagsMutuallyExclusive("random-keys", "n", "key-id")
	rootCmd.AddCommand(encryptCmd)

	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file produced by encrypt",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("input-file", "", "", "Path to encrypted input file")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptCmd.Flags().StringP("n", "", "", "Modulus as decimal or 0x-prefixed hex")
	decryptCmd.Flags().StringP("d", "", "", "Private exponent as decimal or 0x-prefixed hex")
	decryptCmd.Flags().StringP("key-id", "", "", "ID of a stored key pair")
	addKeyStoreFlags(decryptCmd)
	_ = decryptCmd.MarkFlagRequired("input-file")
	_ = decryptCmd.MarkFlagRequired("output-file")
	decryptCmd.MarkFlagsRequiredTogether("n", "d")
	decryptCmd.MarkFlagsRequiredTogether("key-id", "db-dsn")
	decryptCmd.MarkFlagsMutuallyExclusive("n", "key-id")
	rootCmd.AddCommand(decryptCmd)

	return nil
}
