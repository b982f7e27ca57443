package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// ErrKeyNotFound indicates no key record exists for the requested ID
var ErrKeyNotFound = errors.New("keys: key not found")

// KeyRecord entity
type KeyRecord struct {
	ID              string             `validate:"required,uuid4"`
	Label           string             `validate:"omitempty,max=255"`
	KeyBits         uint               `validate:"required,bitwidth"`
	KeyPair         *cryptoalg.KeyPair `validate:"required"`
	DateTimeCreated time.Time          `validate:"required"`
}

// Validate for validating KeyRecord struct
func (r *KeyRecord) Validate() error {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

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

	if err := r.KeyPair.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if r.KeyPair.Width() != r.KeyBits {
		return fmt.Errorf("validation failed: %d-bit key pair recorded as %d bits", r.KeyPair.Width(), r.KeyBits)
	}
	return nil
}

// KeyQuery filters, sorts and pages key record listings
type KeyQuery struct {
	Label           string    `validate:"omitempty,max=255"`
	DateTimeCreated time.Time `validate:"omitempty"`
	Limit           int       `validate:"omitempty,gt=0"`
	Offset          int       `validate:"omitempty,gte=0"`
	SortBy          string    `validate:"omitempty,oneof=date_time_created label key_bits"`
	SortOrder       string    `validate:"omitempty,oneof=asc desc"`
}

// NewKeyQuery returns an empty query matching every record
func NewKeyQuery() *KeyQuery {
	return &KeyQuery{}
}

// Validate for validating KeyQuery struct
func (q *KeyQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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
