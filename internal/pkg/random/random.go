// Package random supplies the explicit randomness sources consumed by key generation and
// primality testing.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	mrand "math/rand/v2"
	"sync"
	"time"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
)

// maxDraws bounds rejection sampling against a source that never yields an in-range value.
const maxDraws = 1024

// ErrSourceExhausted indicates the random source kept producing unusable output.
var ErrSourceExhausted = errors.New("random: source exhausted")

// Source is a stream of random bytes.
type Source = io.Reader

type lockedSource struct {
	mu  sync.Mutex
	src io.Reader
}

// NewLocked serializes reads from src so one generator can be shared across goroutines.
func NewLocked(src io.Reader) Source {
	return &lockedSource{src: src}
}

func (l *lockedSource) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Read(p)
}

// NewSeeded returns a deterministic ChaCha8 stream derived from seed.
func NewSeeded(seed uint64) Source {
	var key [32]byte
	binary.BigEndian.PutUint64(key[:8], seed)
	return NewLocked(mrand.NewChaCha8(key))
}

// NewTimeSeeded seeds a deterministic stream from the current time and returns the seed
// that was used so a run can be reproduced.
func NewTimeSeeded() (Source, uint64) {
	seed := uint64(time.Now().UnixNano())
	return NewSeeded(seed), seed
}

// System returns the operating system's cryptographically secure source.
func System() Source {
	return rand.Reader
}

// Uniform draws a value uniformly from [lo, hi] with the width of hi.
func Uniform(src Source, lo, hi bigint.Uint) (bigint.Uint, error) {
	if lo.Cmp(hi) > 0 {
		return bigint.Uint{}, fmt.Errorf("random: empty range [%s, %s]", lo, hi)
	}
	w := hi.Width() + 1
	span := hi.Resize(w).Sub(lo).Add(bigint.FromUint64(w, 1))
	spanBits := span.Sub(bigint.FromUint64(span.Width(), 1)).BitLen()
	if spanBits == 0 {
		return lo.Resize(hi.Width()), nil
	}

	buf := make([]byte, (spanBits+7)/8)
	for i := 0; i < maxDraws; i++ {
		if _, err := io.ReadFull(src, buf); err != nil {
			return bigint.Uint{}, fmt.Errorf("random: failed to read source: %w", err)
		}
		if extra := uint(len(buf)*8 - spanBits); extra > 0 {
			buf[0] &= 0xff >> extra
		}
		v, err := bigint.FromBytes(span.Width(), buf)
		if err != nil {
			return bigint.Uint{}, err
		}
		if v.Cmp(span) < 0 {
			return lo.Add(v).Resize(hi.Width()), nil
		}
	}
	return bigint.Uint{}, ErrSourceExhausted
}

// Bits draws a uniformly random value of exactly width bits of entropy, i.e. in [0, 2^bits).
func Bits(src Source, bits uint) (bigint.Uint, error) {
	buf := make([]byte, bigint.ByteLen(bits))
	if _, err := io.ReadFull(src, buf); err != nil {
		return bigint.Uint{}, fmt.Errorf("random: failed to read source: %w", err)
	}
	if extra := uint(len(buf))*8 - bits; extra > 0 && len(buf) > 0 {
		buf[0] &= 0xff >> extra
	}
	return bigint.FromBytes(bits, buf)
}
