package commands

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	"github.com/MGTheTrain/rsa-vault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-vault/internal/infrastructure/persistence"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/logger"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/random"
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

func newKeyGenerator(settings *config.CipherSettings, source random.Source, log logger.Logger) (cryptoalg.KeyGenerator, error) {
	tester, err := cryptography.NewPrimalityTester(source, settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create primality tester: %w", err)
	}

	generator, err := cryptography.NewKeyGenerator(tester, source, settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}
	return generator, nil
}

// newFileCipher builds the block and file ciphers only; decrypting never samples randomness
func newFileCipher(settings *config.CipherSettings, log logger.Logger) (cryptoalg.FileCipher, error) {
	blockCipher, err := cryptography.NewPaddingCipher(settings.BlockParams(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create padding cipher: %w", err)
	}

	fileCipher, err := cryptography.NewFileCipher(blockCipher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create file cipher: %w", err)
	}
	return fileCipher, nil
}

// randomSource returns a stream seeded from --seed, or from the current time when the flag is zero
func randomSource(cmd *cobra.Command) (random.Source, uint64, error) {
	seed, err := cmd.Flags().GetUint64("seed")
	if err != nil {
		return nil, 0, fmt.Errorf("invalid seed flag: %w", err)
	}
	if seed == 0 {
		src, seed := random.NewTimeSeeded()
		return src, seed, nil
	}
	return random.NewSeeded(seed), seed, nil
}

// openKeyRepository connects to the key store and migrates its schema. The returned
// function closes the connection.
func openKeyRepository(cmd *cobra.Command, log logger.Logger) (keys.KeyRepository, func() error, error) {
	dbType, err := cmd.Flags().GetString("db-type")
	if err != nil {
		return nil, nil, fmt.Errorf("invalid db-type flag: %w", err)
	}
	dsn, err := cmd.Flags().GetString("db-dsn")
	if err != nil {
		return nil, nil, fmt.Errorf("invalid db-dsn flag: %w", err)
	}

	db, err := persistence.NewDBConnection(config.DatabaseSettings{Type: dbType, DSN: dsn})
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() error { return persistence.CloseDB(db) }

	if err := persistence.AutoMigrate(db); err != nil {
		_ = closeDB()
		return nil, nil, err
	}

	repo, err := persistence.NewGormKeyRepository(db, log)
	if err != nil {
		_ = closeDB()
		return nil, nil, err
	}
	return repo, closeDB, nil
}

func addKeyStoreFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("db-dsn", "", "", "Key store DSN (sqlite file path or postgres connection string)")
	cmd.Flags().StringP("db-type", "", config.SqliteDbType, "Key store type (sqlite or postgres)")
}

// parseKeyPair builds a key pair from decimal or 0x-hex strings; an empty string is a zero exponent
func parseKeyPair(width uint, n, e, d string) (*cryptoalg.KeyPair, error) {
	values := make([]bigint.Uint, 0, 3)
	for _, s := range []struct{ name, value string }{{"n", n}, {"e", e}, {"d", d}} {
		if s.value == "" {
			values = append(values, bigint.Zero(width))
			continue
		}
		v, err := bigint.FromString(width, s.value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", s.name, err)
		}
		values = append(values, v)
	}
	return cryptoalg.NewKeyPair(values[0], values[1], values[2])
}

func printKeyPair(w io.Writer, key *cryptoalg.KeyPair) {
	fmt.Fprintf(w, "n = %s\n", key.N())
	fmt.Fprintf(w, "e = %s\n", key.E())
	fmt.Fprintf(w, "d = %s\n", key.D())
}
