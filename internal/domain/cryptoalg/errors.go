package cryptoalg

import (
	"errors"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/blockio"
)

var (
	// ErrMalformedCiphertext indicates the ciphertext does not decode to validly padded plaintext
	ErrMalformedCiphertext = errors.New("cryptoalg: malformed ciphertext")

	// ErrTruncatedInput indicates a fixed-width field or block was cut short
	ErrTruncatedInput = blockio.ErrTruncatedInput

	// ErrRetryLimitExceeded indicates a rejection-sampling loop gave up
	ErrRetryLimitExceeded = errors.New("cryptoalg: retry limit exceeded")

	// ErrModulusTooSmall indicates the modulus cannot hold every plaintext block
	ErrModulusTooSmall = errors.New("cryptoalg: modulus too small for block size")

	// ErrInvalidBlockParams indicates inconsistent block or key widths
	ErrInvalidBlockParams = errors.New("cryptoalg: invalid block parameters")

	// ErrSameFile indicates an output path naming the input file
	ErrSameFile = errors.New("cryptoalg: input and output are the same file")

	// ErrInvalidKeyPair indicates a key pair violating the RSA invariants
	ErrInvalidKeyPair = errors.New("cryptoalg: invalid key pair")
)
