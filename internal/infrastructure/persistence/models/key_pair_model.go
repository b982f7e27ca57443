package models

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
)

// KeyPairModel is the GORM database model for stored RSA key pairs
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Label           string    `gorm:"index;type:varchar(255)"`
	KeyBits         uint      `gorm:"not null;type:integer"`
	Modulus         string    `gorm:"not null;type:text"`
	PublicExponent  string    `gorm:"not null;type:text"`
	PrivateExponent string    `gorm:"not null;type:text"`
	Totient         string    `gorm:"type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts GORM model to domain entity
func (m *KeyPairModel) ToDomain() (*keys.KeyRecord, error) {
	var values [4]bigint.Uint
	for i, s := range []string{m.Modulus, m.PublicExponent, m.PrivateExponent, m.Totient} {
		if s == "" {
			values[i] = bigint.Zero(m.KeyBits)
			continue
		}
		v, err := bigint.FromString(m.KeyBits, s)
		if err != nil {
			return nil, fmt.Errorf("failed to decode stored key %s: %w", m.ID, err)
		}
		values[i] = v
	}

	keyPair, err := cryptoalg.NewKeyPairWithTotient(values[0], values[1], values[2], values[3])
	if err != nil {
		return nil, fmt.Errorf("stored key %s is inconsistent: %w", m.ID, err)
	}

	return &keys.KeyRecord{
		ID:              m.ID,
		Label:           m.Label,
		KeyBits:         m.KeyBits,
		KeyPair:         keyPair,
		DateTimeCreated: m.DateTimeCreated,
	}, nil
}

// FromDomain converts domain entity to GORM model
func (m *KeyPairModel) FromDomain(r *keys.KeyRecord) {
	m.ID = r.ID
	m.Label = r.Label
	m.KeyBits = r.KeyBits
	m.Modulus = hex(r.KeyPair.N())
	m.PublicExponent = hex(r.KeyPair.E())
	m.PrivateExponent = hex(r.KeyPair.D())
	m.Totient = ""
	if !r.KeyPair.Phi().IsZero() {
		m.Totient = hex(r.KeyPair.Phi())
	}
	m.DateTimeCreated = r.DateTimeCreated
}

func hex(v bigint.Uint) string {
	return "0x" + v.Text(16)
}
