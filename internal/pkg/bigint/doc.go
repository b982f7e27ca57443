// Package bigint provides fixed-width unsigned and signed big integers used by the RSA core.
//
// A Uint carries its bit width W and always holds a value below 2^W; arithmetic that would
// leave that range wraps modulo 2^W. Int is the signed scratch type of width 2W used for
// extended-Euclid coefficients. Values are immutable: every operation returns a new value.
package bigint
