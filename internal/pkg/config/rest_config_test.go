//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	t.Run("FileWithDefaults", func(t *testing.T) {
		path := writeConfig(t, `
port: "9090"
database:
  type: sqlite
  dsn: ":memory:"
cipher:
  miller_rabin_rounds: 40
`)
		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
		assert.Equal(t, ":memory:", cfg.Database.DSN)
		assert.Equal(t, uint(cryptoalg.DefaultKeyBits), cfg.Cipher.KeyBits)
		assert.Equal(t, 40, cfg.Cipher.MillerRabinRounds)
	})

	t.Run("EnvironmentOverride", func(t *testing.T) {
		path := writeConfig(t, "port: \"9090\"\n")
		t.Setenv("RSA_VAULT_PORT", "7070")

		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Port)
	})

	t.Run("InvalidCipher", func(t *testing.T) {
		path := writeConfig(t, `
cipher:
  plain_block_size: 64
`)
		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
