//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	"github.com/MGTheTrain/rsa-vault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-vault/internal/infrastructure/persistence"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/random"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeyService    keys.KeyService
	CipherService keys.CipherService
	DBContext     *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	settings := config.DefaultCipherSettings()
	source := random.NewSeeded(2024)

	tester, err := cryptography.NewPrimalityTester(source, settings, logger)
	require.NoError(t, err, "Failed to create primality tester")
	generator, err := cryptography.NewKeyGenerator(tester, source, settings, logger)
	require.NoError(t, err, "Failed to create key generator")
	blockCipher, err := cryptography.NewPaddingCipher(cryptoalg.DefaultBlockParams(), logger)
	require.NoError(t, err, "Failed to create padding cipher")
	fileCipher, err := cryptography.NewFileCipher(blockCipher, logger)
	require.NoError(t, err, "Failed to create file cipher")

	keyService, err := NewKeyService(generator, dbContext.KeyRepo, logger)
	require.NoError(t, err, "Failed to create key service")
	cipherService, err := NewCipherService(dbContext.KeyRepo, fileCipher, logger)
	require.NoError(t, err, "Failed to create cipher service")

	return &TestServices{
		KeyService:    keyService,
		CipherService: cipherService,
		DBContext:     dbContext,
	}
}

func TestServices_SqliteRoundTrip(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	record, err := services.KeyService.Generate(ctx, "integration")
	require.NoError(t, err)

	plaintext := testutil.PseudoRandomBytes(8, 777)
	ciphertext, err := services.CipherService.Encrypt(ctx, record.ID, plaintext)
	require.NoError(t, err)

	decrypted, err := services.CipherService.Decrypt(ctx, record.ID, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)

	records, err := services.KeyService.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	require.NoError(t, services.KeyService.DeleteByID(ctx, record.ID))
	_, err = services.CipherService.Encrypt(ctx, record.ID, plaintext)
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}
