package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

// GenerateKeyRequest carries the optional attributes of a key pair to generate
type GenerateKeyRequest struct {
	Label string `json:"label" validate:"omitempty,max=255"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// KeyPairResponse exposes the public half of a stored key pair. Integers are 0x-prefixed hex.
type KeyPairResponse struct {
	ID              string    `json:"id"`
	Label           string    `json:"label,omitempty"`
	KeyBits         uint      `json:"key_bits"`
	Modulus         string    `json:"modulus"`
	PublicExponent  string    `json:"public_exponent"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// NewKeyPairResponse maps a key record to its response representation
func NewKeyPairResponse(record *keys.KeyRecord) KeyPairResponse {
	return KeyPairResponse{
		ID:              record.ID,
		Label:           record.Label,
		KeyBits:         record.KeyBits,
		Modulus:         "0x" + record.KeyPair.N().Text(16),
		PublicExponent:  "0x" + record.KeyPair.E().Text(16),
		DateTimeCreated: record.DateTimeCreated,
	}
}
