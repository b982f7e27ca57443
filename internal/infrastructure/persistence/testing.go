//go:build integration
// +build integration

package persistence

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	TestKeyBits = 64
	TestLabel   = "integration"
)

// TestContext bundles an open key store with its repository
type TestContext struct {
	DB      *gorm.DB
	KeyRepo keys.KeyRepository
}

// postgresTestDSN points at the server used by the postgres variants; override it with
// RSA_VAULT_TEST_POSTGRES_DSN. It must not name a database.
func postgresTestDSN() string {
	if dsn := os.Getenv("RSA_VAULT_TEST_POSTGRES_DSN"); dsn != "" {
		return dsn
	}
	return "user=postgres password=postgres host=localhost port=5432 sslmode=disable"
}

// SetupTestDB opens a migrated key store of dbType. Postgres runs get a throwaway database
// that is dropped on cleanup.
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	settings := config.DatabaseSettings{Type: dbType, DSN: SQLiteInMemoryDSN}
	drop := func() {}

	switch dbType {
	case config.SqliteDbType:
	case config.PostgresDbType:
		name := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings.DSN = postgresTestDSN()
		settings.Name = name
		drop = func() { _ = DropDatabase(settings.DSN+" dbname=postgres", name) }
	default:
		t.Fatalf("unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "open key store")
	t.Cleanup(func() {
		_ = CloseDB(db)
		drop()
	})
	require.NoError(t, AutoMigrate(db), "migrate key store")

	repo, err := NewGormKeyRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return &TestContext{DB: db, KeyRepo: repo}
}

// CreateTestKeyRecord creates a 64-bit key record built from two known 32-bit primes
func CreateTestKeyRecord(t *testing.T, label string) *keys.KeyRecord {
	t.Helper()

	p := bigint.FromUint64(TestKeyBits, 4294967291)
	q := bigint.FromUint64(TestKeyBits, 4294967279)
	one := bigint.FromUint64(TestKeyBits, 1)
	phi := p.Sub(one).Mul(q.Sub(one))
	e := bigint.FromUint64(TestKeyBits, 65537)

	d, err := bigint.ModInverse(e, phi)
	require.NoError(t, err)

	keyPair, err := cryptoalg.NewKeyPairWithTotient(p.Mul(q), e, d, phi)
	require.NoError(t, err)

	return &keys.KeyRecord{
		ID:              uuid.NewString(),
		Label:           label,
		KeyBits:         TestKeyBits,
		KeyPair:         keyPair,
		DateTimeCreated: time.Now(),
	}
}
