package cryptography

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/blockio"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/logger"
)

// fileCipher struct that implements the FileCipher interface
type fileCipher struct {
	cipher cryptoalg.BlockCipher
	logger logger.Logger
}

// NewFileCipher creates a FileCipher writing the [d][n][blocks...] layout around cipher.
func NewFileCipher(cipher cryptoalg.BlockCipher, logger logger.Logger) (cryptoalg.FileCipher, error) {
	if cipher == nil {
		return nil, fmt.Errorf("block cipher cannot be nil")
	}
	return &fileCipher{
		cipher: cipher,
		logger: logger,
	}, nil
}

// EncryptFile encrypts inputPath into outputPath
func (f *fileCipher) EncryptFile(ctx context.Context, inputPath, outputPath string, key *cryptoalg.KeyPair) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	if err := f.writeFile(in, outputPath, func(out io.Writer) error {
		return f.encrypt(ctx, in, out, key)
	}); err != nil {
		return err
	}

	f.logger.Info(fmt.Sprintf("Encrypted %s to %s", inputPath, outputPath))
	return nil
}

// DecryptFile decrypts inputPath into outputPath, using the embedded header when key is nil
func (f *fileCipher) DecryptFile(ctx context.Context, inputPath, outputPath string, key *cryptoalg.KeyPair) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	if err := f.writeFile(in, outputPath, func(out io.Writer) error {
		return f.decrypt(ctx, in, out, key)
	}); err != nil {
		return err
	}

	f.logger.Info(fmt.Sprintf("Decrypted %s to %s", inputPath, outputPath))
	return nil
}

// EncryptBytes encrypts plaintext into the file layout in memory
func (f *fileCipher) EncryptBytes(ctx context.Context, plaintext []byte, key *cryptoalg.KeyPair) ([]byte, error) {
	var out bytes.Buffer
	if err := f.encrypt(ctx, bytes.NewReader(plaintext), &out, key); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecryptBytes decrypts the file layout in memory
func (f *fileCipher) DecryptBytes(ctx context.Context, ciphertext []byte, key *cryptoalg.KeyPair) ([]byte, error) {
	var out bytes.Buffer
	if err := f.decrypt(ctx, bytes.NewReader(ciphertext), &out, key); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// writeFile creates path, runs fn against it and removes the partial file if anything fails.
// path must not name the already opened input, which creating it would truncate.
func (f *fileCipher) writeFile(in *os.File, path string, fn func(io.Writer) error) (err error) {
	inInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat input file: %w", err)
	}
	if outInfo, statErr := os.Stat(path); statErr == nil && os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("%w: %s", cryptoalg.ErrSameFile, path)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
		if err != nil {
			if removeErr := os.Remove(path); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
				f.logger.Warn(fmt.Sprintf("Failed to remove partial output %s: %v", path, removeErr))
			}
		}
	}()

	return fn(out)
}

func (f *fileCipher) encrypt(ctx context.Context, r io.Reader, w io.Writer, key *cryptoalg.KeyPair) error {
	if key == nil {
		return fmt.Errorf("key pair cannot be nil")
	}
	if !key.CanDecrypt() {
		return fmt.Errorf("%w: the file header requires the private exponent", cryptoalg.ErrInvalidKeyPair)
	}

	width := f.cipher.Params().CipherBits()
	dst := blockio.NewWriter(w)
	if err := dst.WriteNumber(width, key.D()); err != nil {
		return fmt.Errorf("failed to write private exponent: %w", err)
	}
	if err := dst.WriteNumber(width, key.N()); err != nil {
		return fmt.Errorf("failed to write modulus: %w", err)
	}

	if _, err := f.cipher.Encrypt(ctx, blockio.NewReader(r), dst, key); err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}
	return dst.Flush()
}

func (f *fileCipher) decrypt(ctx context.Context, r io.Reader, w io.Writer, key *cryptoalg.KeyPair) error {
	width := f.cipher.Params().CipherBits()
	src := blockio.NewReader(r)

	d, err := src.ReadNumber(width)
	if err != nil {
		return fmt.Errorf("failed to read private exponent: %w", err)
	}
	n, err := src.ReadNumber(width)
	if err != nil {
		return fmt.Errorf("failed to read modulus: %w", err)
	}

	if key == nil {
		key, err = cryptoalg.NewKeyPair(n, bigint.Zero(width), d)
		if err != nil {
			return fmt.Errorf("failed to load embedded key: %w", err)
		}
	}

	dst := blockio.NewWriter(w)
	if _, err := f.cipher.Decrypt(ctx, src, dst, key); err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}
	return dst.Flush()
}
