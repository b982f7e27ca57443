//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyRecord(t *testing.T) *keys.KeyRecord {
	t.Helper()

	// 61 * 53
	keyPair, err := cryptoalg.NewKeyPairWithTotient(
		bigint.FromUint64(16, 3233),
		bigint.FromUint64(16, 17),
		bigint.FromUint64(16, 2753),
		bigint.FromUint64(16, 3120),
	)
	require.NoError(t, err)

	return &keys.KeyRecord{
		ID:              "5f8a0c1e-8f4b-4c3a-9d2e-1b7a6c5d4e3f",
		Label:           "test",
		KeyBits:         16,
		KeyPair:         keyPair,
		DateTimeCreated: time.Now(),
	}
}

func TestKeyPairModel_FromDomain(t *testing.T) {
	record := testKeyRecord(t)

	model := &KeyPairModel{}
	model.FromDomain(record)

	assert.Equal(t, record.ID, model.ID)
	assert.Equal(t, record.Label, model.Label)
	assert.Equal(t, record.KeyBits, model.KeyBits)
	assert.Equal(t, "0xca1", model.Modulus)
	assert.Equal(t, "0x11", model.PublicExponent)
	assert.Equal(t, "0xac1", model.PrivateExponent)
	assert.Equal(t, "0xc30", model.Totient)
	assert.Equal(t, record.DateTimeCreated, model.DateTimeCreated)
}

func TestKeyPairModel_ToDomain(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		record := testKeyRecord(t)

		model := &KeyPairModel{}
		model.FromDomain(record)
		got, err := model.ToDomain()
		require.NoError(t, err)

		assert.Equal(t, record.ID, got.ID)
		assert.Equal(t, record.KeyBits, got.KeyPair.Width())
		assert.True(t, record.KeyPair.N().Equal(got.KeyPair.N()))
		assert.True(t, record.KeyPair.E().Equal(got.KeyPair.E()))
		assert.True(t, record.KeyPair.D().Equal(got.KeyPair.D()))
		assert.True(t, record.KeyPair.Phi().Equal(got.KeyPair.Phi()))
	})

	t.Run("MissingTotient", func(t *testing.T) {
		model := &KeyPairModel{ID: "id", KeyBits: 16, Modulus: "0xca1", PublicExponent: "0x11", PrivateExponent: "0xac1"}
		got, err := model.ToDomain()
		require.NoError(t, err)
		assert.True(t, got.KeyPair.Phi().IsZero())
	})

	t.Run("Corrupt", func(t *testing.T) {
		model := &KeyPairModel{ID: "id", KeyBits: 16, Modulus: "0xzz", PublicExponent: "0x11", PrivateExponent: "0xac1"}
		_, err := model.ToDomain()
		assert.Error(t, err)
	})

	t.Run("Inconsistent", func(t *testing.T) {
		model := &KeyPairModel{ID: "id", KeyBits: 16, Modulus: "0xca1", PublicExponent: "0x11", PrivateExponent: "0xac2", Totient: "0xc30"}
		_, err := model.ToDomain()
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidKeyPair)
	})
}
