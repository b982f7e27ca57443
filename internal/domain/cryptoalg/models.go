package cryptoalg

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Default widths: 256-bit keys, 8-byte plaintext blocks and 32-byte ciphertext blocks.
const (
	DefaultKeyBits         = 256
	DefaultPlainBlockSize  = 8
	DefaultCipherBlockSize = 32
)

// BlockParams fixes the key width and the plaintext/ciphertext block sizes in bytes.
type BlockParams struct {
	KeyBits         uint `validate:"required,bitwidth"`
	PlainBlockSize  uint `validate:"required,lte=255,ltfield=CipherBlockSize"`
	CipherBlockSize uint `validate:"required"`
}

// DefaultBlockParams returns the 256/8/32 parameter set.
func DefaultBlockParams() BlockParams {
	return BlockParams{
		KeyBits:         DefaultKeyBits,
		PlainBlockSize:  DefaultPlainBlockSize,
		CipherBlockSize: DefaultCipherBlockSize,
	}
}

// Validate for validating BlockParams struct
func (p BlockParams) Validate() error {
	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	err := validate.Struct(p)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %v", ErrInvalidBlockParams, messages)
		}
		return fmt.Errorf("%w: %v", ErrInvalidBlockParams, err)
	}

	if p.CipherBlockSize*8 < p.KeyBits {
		return fmt.Errorf("%w: %d-byte ciphertext blocks cannot hold a %d-bit modulus", ErrInvalidBlockParams, p.CipherBlockSize, p.KeyBits)
	}
	return nil
}

// PlainBits returns the plaintext block width in bits.
func (p BlockParams) PlainBits() uint { return p.PlainBlockSize * 8 }

// CipherBits returns the ciphertext block width in bits.
func (p BlockParams) CipherBits() uint { return p.CipherBlockSize * 8 }

// KeyPair is an immutable RSA key quadruple. Phi is zero for pairs reconstituted from a
// serialized modulus and exponent; E is zero for decrypt-only pairs.
type KeyPair struct {
	n, e, d, phi bigint.Uint
}

// NewKeyPair reconstitutes a key pair from its modulus and exponents without a totient.
func NewKeyPair(n, e, d bigint.Uint) (*KeyPair, error) {
	return NewKeyPairWithTotient(n, e, d, bigint.Zero(n.Width()))
}

// NewKeyPairWithTotient builds a key pair and checks e*d = 1 (mod phi) when phi is known.
func NewKeyPairWithTotient(n, e, d, phi bigint.Uint) (*KeyPair, error) {
	w := n.Width()
	kp := &KeyPair{n: n, e: e.Resize(w), d: d.Resize(w), phi: phi.Resize(w)}
	if err := kp.Validate(); err != nil {
		return nil, err
	}
	return kp, nil
}

// Validate checks the invariants that can be verified from the stored values.
func (k *KeyPair) Validate() error {
	one := bigint.FromUint64(k.n.Width(), 1)
	if k.n.Cmp(one) <= 0 {
		return fmt.Errorf("%w: modulus must be greater than 1", ErrInvalidKeyPair)
	}
	if k.e.IsZero() && k.d.IsZero() {
		return fmt.Errorf("%w: at least one exponent is required", ErrInvalidKeyPair)
	}
	if k.e.Cmp(k.n) >= 0 || k.d.Cmp(k.n) >= 0 {
		return fmt.Errorf("%w: exponents must be below the modulus", ErrInvalidKeyPair)
	}
	if k.phi.IsZero() {
		return nil
	}
	if k.d.Cmp(k.phi) >= 0 {
		return fmt.Errorf("%w: d must be below phi", ErrInvalidKeyPair)
	}
	if !k.e.Gcd(k.phi).Equal(one) {
		return fmt.Errorf("%w: e is not coprime to phi", ErrInvalidKeyPair)
	}
	if !k.e.Resize(2 * k.n.Width()).Mul(k.d).Mod(k.phi).Equal(one) {
		return fmt.Errorf("%w: e*d is not 1 mod phi", ErrInvalidKeyPair)
	}
	return nil
}

// N returns the modulus.
func (k *KeyPair) N() bigint.Uint { return k.n }

// E returns the public exponent.
func (k *KeyPair) E() bigint.Uint { return k.e }

// D returns the private exponent.
func (k *KeyPair) D() bigint.Uint { return k.d }

// Phi returns the totient, or zero when unknown.
func (k *KeyPair) Phi() bigint.Uint { return k.phi }

// Width returns the key width in bits.
func (k *KeyPair) Width() uint { return k.n.Width() }

// CanEncrypt reports whether the public exponent is present.
func (k *KeyPair) CanEncrypt() bool { return !k.e.IsZero() }

// CanDecrypt reports whether the private exponent is present.
func (k *KeyPair) CanDecrypt() bool { return !k.d.IsZero() }
