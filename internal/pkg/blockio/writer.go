package blockio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
)

// Writer implements the write capabilities over an io.Writer. Call Flush when done.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteChunk writes b verbatim.
func (w *Writer) WriteChunk(b []byte) error {
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("failed to write chunk: %w", err)
	}
	return nil
}

// WriteNumber writes value as width/8 big-endian bytes.
func (w *Writer) WriteNumber(width uint, value bigint.Uint) error {
	if uint(value.BitLen()) > width {
		return fmt.Errorf("%w: %d-bit value for %d-bit field", bigint.ErrOverflow, value.BitLen(), width)
	}
	return w.WriteChunk(value.Resize(width).Bytes())
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush stream: %w", err)
	}
	return nil
}
