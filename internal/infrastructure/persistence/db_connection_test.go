//go:build unit
// +build unit

package persistence

import (
	"testing"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestNewDBConnection_InvalidSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings config.DatabaseSettings
	}{
		{"unsupported type", config.DatabaseSettings{Type: "mysql", DSN: "root@/keys"}},
		{"missing dsn", config.DatabaseSettings{Type: config.SqliteDbType}},
		{"invalid postgres database name", config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "host=localhost",
			Name: "keys; DROP TABLE key_pairs",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDBConnection(tt.settings)
			assert.Error(t, err)
		})
	}
}

func TestDatabaseNamePattern(t *testing.T) {
	assert.True(t, databaseNamePattern.MatchString("test_0123abcd"))
	assert.True(t, databaseNamePattern.MatchString("_keys"))
	assert.False(t, databaseNamePattern.MatchString("1keys"))
	assert.False(t, databaseNamePattern.MatchString("keys-db"))
	assert.False(t, databaseNamePattern.MatchString(""))

	assert.Error(t, DropDatabase("host=localhost", "bad name"))
}
