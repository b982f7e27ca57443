//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeGrpcConfig(t *testing.T) {
	t.Run("FileWithDefaults", func(t *testing.T) {
		path := writeConfig(t, `
database:
  type: sqlite
  dsn: ":memory:"
`)
		cfg, err := InitializeGrpcConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "50051", cfg.Port)
		assert.Equal(t, "8090", cfg.GatewayPort)
		assert.Equal(t, uint(cryptoalg.DefaultCipherBlockSize), cfg.Cipher.CipherBlockSize)
	})

	t.Run("EnvironmentOverride", func(t *testing.T) {
		path := writeConfig(t, "port: \"50052\"\n")
		t.Setenv("RSA_VAULT_GATEWAY_PORT", "9191")

		cfg, err := InitializeGrpcConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "50052", cfg.Port)
		assert.Equal(t, "9191", cfg.GatewayPort)
	})

	t.Run("PortCollision", func(t *testing.T) {
		path := writeConfig(t, "port: \"9000\"\ngateway_port: \"9000\"\n")
		_, err := InitializeGrpcConfig(path)
		assert.Error(t, err)
	})

	t.Run("InvalidPort", func(t *testing.T) {
		path := writeConfig(t, "port: \"grpc\"\n")
		_, err := InitializeGrpcConfig(path)
		assert.Error(t, err)
	})
}
