package blockio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
)

// Reader implements the read capabilities over an io.Reader.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadChunk reads up to k bytes.
func (r *Reader) ReadChunk(k int) ([]byte, error) {
	buf := make([]byte, k)
	n, err := io.ReadFull(r.r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("failed to read chunk: %w", err)
	}
	return buf[:n], nil
}

// ReadNumber reads a full width/8-byte big-endian integer.
func (r *Reader) ReadNumber(width uint) (bigint.Uint, error) {
	size := int(bigint.ByteLen(width))
	chunk, err := r.ReadChunk(size)
	if err != nil {
		return bigint.Uint{}, err
	}
	if len(chunk) < size {
		return bigint.Uint{}, fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedInput, len(chunk), size)
	}
	return bigint.FromBytes(width, chunk)
}

// ReadNumberWithPadding reads up to width/8 bytes and pads the remainder.
func (r *Reader) ReadNumberWithPadding(width uint) (bigint.Uint, int, error) {
	size := int(bigint.ByteLen(width))
	chunk, err := r.ReadChunk(size)
	if err != nil {
		return bigint.Uint{}, 0, err
	}
	n := len(chunk)
	v, err := bigint.FromBytes(width, Pad(chunk, size))
	if err != nil {
		return bigint.Uint{}, 0, err
	}
	return v, n, nil
}

// AtEnd peeks one byte ahead.
func (r *Reader) AtEnd() (bool, error) {
	_, err := r.r.Peek(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to peek stream: %w", err)
	}
	return false, nil
}

// Pad extends chunk to size bytes with the byte value size-len(chunk). A full chunk is
// returned unchanged.
func Pad(chunk []byte, size int) []byte {
	missing := size - len(chunk)
	if missing <= 0 {
		return chunk
	}
	out := make([]byte, 0, size)
	out = append(out, chunk...)
	return append(out, bytes.Repeat([]byte{byte(missing)}, missing)...)
}
