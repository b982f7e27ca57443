package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MinKeyBits is the smallest key width that still leaves room for two byte-sized primes.
const MinKeyBits = 16

// BitWidthValidation validates a key width: a positive multiple of 16 bits so that both
// primes and the modulus are whole bytes.
func BitWidthValidation(fl validator.FieldLevel) bool {
	width := fl.Field().Uint()
	return width >= MinKeyBits && width%16 == 0
}

// Register adds the custom tags of this package to v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("bitwidth", BitWidthValidation); err != nil {
		return fmt.Errorf("failed to register bitwidth validation: %w", err)
	}
	return nil
}
