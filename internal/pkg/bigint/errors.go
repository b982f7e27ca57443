package bigint

import "errors"

var (
	// ErrOverflow indicates a value does not fit into the requested width.
	ErrOverflow = errors.New("bigint: value exceeds width")

	// ErrInvalidString indicates a malformed numeric string.
	ErrInvalidString = errors.New("bigint: invalid number string")

	// ErrNotInvertible indicates a value has no inverse modulo the given modulus.
	ErrNotInvertible = errors.New("bigint: value is not invertible")
)
