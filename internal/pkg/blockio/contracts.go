package blockio

import (
	"errors"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
)

// ErrTruncatedInput indicates fewer bytes remained than a fixed-width field requires.
var ErrTruncatedInput = errors.New("blockio: truncated input")

// ChunkReader reads up to k bytes. A short result is only returned at end of stream.
type ChunkReader interface {
	ReadChunk(k int) ([]byte, error)
}

// NumberReader reads exactly width/8 bytes as a big-endian integer.
type NumberReader interface {
	ReadNumber(width uint) (bigint.Uint, error)
}

// PaddedNumberReader reads up to width/8 bytes, fills any shortfall with the pad-length
// byte and returns the value along with the number of bytes actually read.
type PaddedNumberReader interface {
	ReadNumberWithPadding(width uint) (bigint.Uint, int, error)
}

// EndChecker reports whether the stream is exhausted without consuming input.
type EndChecker interface {
	AtEnd() (bool, error)
}

// ChunkWriter writes raw bytes.
type ChunkWriter interface {
	WriteChunk(b []byte) error
}

// NumberWriter writes value as exactly width/8 big-endian bytes.
type NumberWriter interface {
	WriteNumber(width uint, value bigint.Uint) error
}
