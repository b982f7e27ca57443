// Package cryptoalg defines the core interfaces and structures of the textbook RSA pipeline:
// primality testing, key generation, and the padded block cipher that maps byte streams onto
// modular exponentiations.
package cryptoalg
