//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	valid := []DatabaseSettings{
		{Type: SqliteDbType, DSN: ":memory:"},
		{Type: SqliteDbType, DSN: "file:keys.db?_busy_timeout=5000"},
		{Type: PostgresDbType, DSN: "host=db user=vault sslmode=disable", Name: "rsa_keys"},
		{Type: PostgresDbType, DSN: "host=db user=vault dbname=rsa_keys sslmode=disable"},
	}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), "%+v", s)
	}

	invalid := []DatabaseSettings{
		{},
		{DSN: ":memory:"},
		{Type: SqliteDbType},
		{Type: "mysql", DSN: "vault@tcp(db:3306)/rsa_keys"},
	}
	for _, s := range invalid {
		assert.Error(t, s.Validate(), "%+v", s)
	}
}
