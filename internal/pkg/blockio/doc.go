// Package blockio provides fixed-size chunk and integer I/O over byte streams.
//
// Capabilities are split into narrow interfaces so a consumer depends only on what it
// uses; Reader and Writer implement all of them over an io.Reader and io.Writer.
package blockio
