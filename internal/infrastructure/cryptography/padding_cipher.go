package cryptography

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/blockio"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/logger"
)

// paddingCipher struct that implements the BlockCipher interface
type paddingCipher struct {
	params cryptoalg.BlockParams
	logger logger.Logger
}

// NewPaddingCipher creates a block cipher for the given geometry. Plaintext is split into
// PlainBlockSize chunks, the final chunk is padded with its pad length and every chunk is
// raised to the key's exponent.
func NewPaddingCipher(params cryptoalg.BlockParams, logger logger.Logger) (cryptoalg.BlockCipher, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &paddingCipher{
		params: params,
		logger: logger,
	}, nil
}

func (c *paddingCipher) Params() cryptoalg.BlockParams {
	return c.params
}

func (c *paddingCipher) checkKey(key *cryptoalg.KeyPair) error {
	if key == nil {
		return fmt.Errorf("key pair cannot be nil")
	}
	n := key.N()
	if uint(n.BitLen()) <= c.params.PlainBits() {
		return fmt.Errorf("%w: %d-bit modulus for %d-byte plaintext blocks", cryptoalg.ErrModulusTooSmall, n.BitLen(), c.params.PlainBlockSize)
	}
	if uint(n.BitLen()) > c.params.CipherBits() {
		return fmt.Errorf("%w: %d-bit modulus does not fit %d-byte ciphertext blocks", cryptoalg.ErrInvalidBlockParams, n.BitLen(), c.params.CipherBlockSize)
	}
	return nil
}

// Encrypt emits one ciphertext block per plaintext chunk. When the last chunk was full,
// including the empty-input case, a block made only of padding follows.
func (c *paddingCipher) Encrypt(ctx context.Context, src cryptoalg.EncryptSource, dst blockio.NumberWriter, key *cryptoalg.KeyPair) (int, error) {
	if err := c.checkKey(key); err != nil {
		return 0, err
	}
	if !key.CanEncrypt() {
		return 0, fmt.Errorf("%w: public exponent is missing", cryptoalg.ErrInvalidKeyPair)
	}

	size := int(c.params.PlainBlockSize)
	blocks := 0
	lastFull := true
	for {
		if err := ctx.Err(); err != nil {
			return blocks, err
		}

		end, err := src.AtEnd()
		if err != nil {
			return blocks, err
		}
		if end {
			break
		}

		m, read, err := src.ReadNumberWithPadding(c.params.PlainBits())
		if err != nil {
			return blocks, fmt.Errorf("failed to read plaintext block %d: %w", blocks, err)
		}
		if err := c.encryptBlock(dst, m, key); err != nil {
			return blocks, fmt.Errorf("failed to write ciphertext block %d: %w", blocks, err)
		}
		blocks++
		lastFull = read == size
	}

	if lastFull {
		m, err := bigint.FromBytes(c.params.PlainBits(), blockio.Pad(nil, size))
		if err != nil {
			return blocks, err
		}
		if err := c.encryptBlock(dst, m, key); err != nil {
			return blocks, fmt.Errorf("failed to write padding block: %w", err)
		}
		blocks++
	}

	c.logger.Debug("Encrypted ", blocks, " blocks")
	return blocks, nil
}

func (c *paddingCipher) encryptBlock(dst blockio.NumberWriter, m bigint.Uint, key *cryptoalg.KeyPair) error {
	ct := bigint.PowMod(m, key.E(), key.N())
	return dst.WriteNumber(c.params.CipherBits(), ct)
}

// Decrypt writes every recovered block except the last verbatim. The last block must end in
// p bytes of value p, 1 <= p <= PlainBlockSize, which are stripped.
func (c *paddingCipher) Decrypt(ctx context.Context, src cryptoalg.DecryptSource, dst blockio.ChunkWriter, key *cryptoalg.KeyPair) (int, error) {
	if err := c.checkKey(key); err != nil {
		return 0, err
	}
	if !key.CanDecrypt() {
		return 0, fmt.Errorf("%w: private exponent is missing", cryptoalg.ErrInvalidKeyPair)
	}

	n := key.N()
	written := 0
	blocks := 0
	var held []byte
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		end, err := src.AtEnd()
		if err != nil {
			return written, err
		}
		if end {
			break
		}

		ct, err := src.ReadNumber(c.params.CipherBits())
		if err != nil {
			return written, fmt.Errorf("failed to read ciphertext block %d: %w", blocks, err)
		}
		if ct.Cmp(n) >= 0 {
			return written, fmt.Errorf("%w: block %d is not below the modulus", cryptoalg.ErrMalformedCiphertext, blocks)
		}

		m := bigint.PowMod(ct, key.D(), n)
		if uint(m.BitLen()) > c.params.PlainBits() {
			return written, fmt.Errorf("%w: block %d does not decode to a plaintext block", cryptoalg.ErrMalformedCiphertext, blocks)
		}

		if held != nil {
			if err := dst.WriteChunk(held); err != nil {
				return written, err
			}
			written += len(held)
		}
		held = m.Resize(c.params.PlainBits()).Bytes()
		blocks++
	}

	if held == nil {
		return written, fmt.Errorf("%w: no ciphertext blocks", cryptoalg.ErrMalformedCiphertext)
	}

	body, err := unpad(held)
	if err != nil {
		return written, err
	}
	if err := dst.WriteChunk(body); err != nil {
		return written, err
	}
	written += len(body)

	c.logger.Debug("Decrypted ", blocks, " blocks")
	return written, nil
}

// unpad strips the trailing padding of the final block after checking every pad byte.
func unpad(block []byte) ([]byte, error) {
	size := len(block)
	p := int(block[size-1])
	if p == 0 || p > size {
		return nil, fmt.Errorf("%w: pad length %d outside 1..%d", cryptoalg.ErrMalformedCiphertext, p, size)
	}
	for i := size - p; i < size; i++ {
		if int(block[i]) != p {
			return nil, fmt.Errorf("%w: pad byte %d is %d, want %d", cryptoalg.ErrMalformedCiphertext, i, block[i], p)
		}
	}
	return block[:size-p], nil
}
