package commands

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/rsa-vault/internal/app"
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for generating and listing key pairs via CLI.
type KeyCommandHandler struct {
	settings *config.CipherSettings
	logger   logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging and the default cipher settings.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	settings := config.DefaultCipherSettings()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &KeyCommandHandler{
		settings: settings,
		logger:   loggerInstance,
	}, nil
}

// GenerateKeysCmd generates a key pair. With --db-dsn the pair is stored and its ID printed,
// otherwise the pair is printed.
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	printKeys, err := cmd.Flags().GetBool("print-keys")
	if err != nil {
		return fmt.Errorf("invalid print-keys flag: %w", err)
	}
	label, err := cmd.Flags().GetString("label")
	if err != nil {
		return fmt.Errorf("invalid label flag: %w", err)
	}

	source, seed, err := randomSource(cmd)
	if err != nil {
		return err
	}
	generator, err := newKeyGenerator(commandHandler.settings, source, commandHandler.logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !cmd.Flags().Changed("db-dsn") {
		key, err := generator.Generate(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "seed = %d\n", seed)
		printKeyPair(out, key)
		return nil
	}

	repo, closeDB, err := openKeyRepository(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDB(); err != nil {
			commandHandler.logger.Warn(fmt.Sprintf("failed to close key store: %v", err))
		}
	}()

	keyService, err := app.NewKeyService(generator, repo, commandHandler.logger)
	if err != nil {
		return err
	}

	record, err := keyService.Generate(cmd.Context(), label)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "id = %s\n", record.ID)
	if printKeys {
		fmt.Fprintf(out, "seed = %d\n", seed)
		printKeyPair(out, record.KeyPair)
	}
	return nil
}

// ListKeysCmd prints the stored key pairs, one per line
func (commandHandler *KeyCommandHandler) ListKeysCmd(cmd *cobra.Command, _ []string) error {
	query := keys.NewKeyQuery()

	var err error
	if query.Label, err = cmd.Flags().GetString("label"); err != nil {
		return fmt.Errorf("invalid label flag: %w", err)
	}
	if query.Limit, err = cmd.Flags().GetInt("limit"); err != nil {
		return fmt.Errorf("invalid limit flag: %w", err)
	}

	repo, closeDB, err := openKeyRepository(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDB(); err != nil {
			commandHandler.logger.Warn(fmt.Sprintf("failed to close key store: %v", err))
		}
	}()

	records, err := repo.List(cmd.Context(), query)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range records {
		fmt.Fprintf(out, "%s\t%d\t%s\t%s\n", r.ID, r.KeyBits, r.DateTimeCreated.Format(time.RFC3339), r.Label)
	}
	return nil
}

// InitKeyCommands initializes the generate-keys and list-keys commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler: %w", err)
	}

	generateKeysCmd := &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair",
		RunE:  handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().BoolP("print-keys", "", false, "Print the generated key pair when it is stored")
	generateKeysCmd.Flags().StringP("label", "", "", "Label of the stored key pair")
	generateKeysCmd.Flags().Uint64P("seed", "", 0, "Seed for key generation; zero seeds from the current time")
	addKeyStoreFlags(generateKeysCmd)
	rootCmd.AddCommand(generateKeysCmd)

	listKeysCmd := &cobra.Command{
		Use:   "list-keys",
		Short: "List stored key pairs",
		RunE:  handler.ListKeysCmd,
	}
	listKeysCmd.Flags().StringP("label", "", "", "Only list key pairs with this label")
	listKeysCmd.Flags().IntP("limit", "", 0, "Maximum number of key pairs to list")
	addKeyStoreFlags(listKeysCmd)
	_ = listKeysCmd.MarkFlagRequired("db-dsn")
	rootCmd.AddCommand(listKeysCmd)

	return nil
}
