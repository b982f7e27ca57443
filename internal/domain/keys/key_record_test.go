//go:build unit
// +build unit

package keys

import (
	"testing"
	"time"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord(t *testing.T) *KeyRecord {
	t.Helper()
	keyPair, err := cryptoalg.NewKeyPair(bigint.FromUint64(16, 3233), bigint.FromUint64(16, 17), bigint.FromUint64(16, 2753))
	require.NoError(t, err)

	return &KeyRecord{
		ID:              uuid.NewString(),
		Label:           "demo",
		KeyBits:         16,
		KeyPair:         keyPair,
		DateTimeCreated: time.Now(),
	}
}

func TestKeyRecordValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *KeyRecord)
		wantErr bool
	}{
		{"Valid", func(r *KeyRecord) {}, false},
		{"InvalidID", func(r *KeyRecord) { r.ID = "not-a-uuid" }, true},
		{"MissingKeyPair", func(r *KeyRecord) { r.KeyPair = nil }, true},
		{"OddKeyBits", func(r *KeyRecord) { r.KeyBits = 12 }, true},
		{"WidthMismatch", func(r *KeyRecord) { r.KeyBits = 32 }, true},
		{"MissingTimestamp", func(r *KeyRecord) { r.DateTimeCreated = time.Time{} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord(t)
			tt.mutate(record)

			err := record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKeyQueryValidation(t *testing.T) {
	assert.NoError(t, NewKeyQuery().Validate())
	assert.NoError(t, (&KeyQuery{SortBy: "label", SortOrder: "desc", Limit: 10}).Validate())
	assert.Error(t, (&KeyQuery{SortBy: "modulus"}).Validate())
	assert.Error(t, (&KeyQuery{SortOrder: "sideways"}).Validate())
	assert.Error(t, (&KeyQuery{Limit: -1}).Validate())
}
