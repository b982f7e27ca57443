//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"

	"github.com/stretchr/testify/assert"
)

func TestCipherSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(s *CipherSettings)
		expectedError bool
	}{
		{"defaults", func(s *CipherSettings) {}, false},
		{"key width not a multiple of 16", func(s *CipherSettings) { s.KeyBits = 200 }, true},
		{"plain block not below cipher block", func(s *CipherSettings) { s.PlainBlockSize = 32 }, true},
		{"cipher block narrower than key", func(s *CipherSettings) { s.KeyBits = 512 }, true},
		{"no miller-rabin rounds", func(s *CipherSettings) { s.MillerRabinRounds = 0 }, true},
		{"no attempts", func(s *CipherSettings) { s.MaxAttempts = 0 }, true},
		{"explicit seed", func(s *CipherSettings) { s.Seed = 42 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultCipherSettings()
			tt.mutate(settings)

			err := settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCipherSettingsBlockParams(t *testing.T) {
	settings := DefaultCipherSettings()
	assert.Equal(t, cryptoalg.DefaultBlockParams(), settings.BlockParams())

	settings.KeyBits = 512
	assert.Equal(t, uint(512), settings.BlockParams().KeyBits)
	assert.ErrorIs(t, settings.Validate(), cryptoalg.ErrInvalidBlockParams)
}
