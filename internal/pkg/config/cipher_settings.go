package config

import (
	"fmt"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/go-playground/validator/v10"
)

// Default bounds of the sampling loops
const (
	DefaultMillerRabinRounds = 100
	DefaultMaxAttempts       = 100000
)

// CipherSettings holds the key width, block geometry and the bounds of the sampling loops.
// The geometry is checked by cryptoalg.BlockParams.
type CipherSettings struct {
	KeyBits           uint `mapstructure:"key_bits"`
	PlainBlockSize    uint `mapstructure:"plain_block_size"`
	CipherBlockSize   uint `mapstructure:"cipher_block_size"`
	MillerRabinRounds int  `mapstructure:"miller_rabin_rounds" validate:"required,min=1"`
	MaxAttempts       int  `mapstructure:"max_attempts" validate:"required,min=1"`
	// Seed fixes the random stream; zero seeds from the current time
	Seed uint64 `mapstructure:"seed"`
}

// DefaultCipherSettings returns 256-bit keys with 8-byte plaintext and 32-byte ciphertext blocks
func DefaultCipherSettings() *CipherSettings {
	params := cryptoalg.DefaultBlockParams()
	return &CipherSettings{
		KeyBits:           params.KeyBits,
		PlainBlockSize:    params.PlainBlockSize,
		CipherBlockSize:   params.CipherBlockSize,
		MillerRabinRounds: DefaultMillerRabinRounds,
		MaxAttempts:       DefaultMaxAttempts,
	}
}

// BlockParams returns the key width and block geometry of the settings
func (s *CipherSettings) BlockParams() cryptoalg.BlockParams {
	return cryptoalg.BlockParams{
		KeyBits:         s.KeyBits,
		PlainBlockSize:  s.PlainBlockSize,
		CipherBlockSize: s.CipherBlockSize,
	}
}

// Validate checks that all fields in CipherSettings are valid
func (s *CipherSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CipherSettings: %w", err)
	}

	if err := s.BlockParams().Validate(); err != nil {
		return fmt.Errorf("validation failed for CipherSettings: %w", err)
	}
	return nil
}
