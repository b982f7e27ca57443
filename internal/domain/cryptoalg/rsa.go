package cryptoalg

import (
	"context"

	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/blockio"
)

// PrimalityTester decides probable primality and samples random primes.
type PrimalityTester interface {
	// IsProbablePrime runs trial division followed by rounds Miller-Rabin witnesses.
	IsProbablePrime(n bigint.Uint, rounds int) (bool, error)

	// GenerateRandomPrime samples odd candidates of the given bit width until one passes.
	GenerateRandomPrime(bits uint) (bigint.Uint, error)
}

// KeyGenerator produces RSA key pairs of a fixed width.
type KeyGenerator interface {
	// Generate draws two primes and derives n, phi, e and d.
	Generate(ctx context.Context) (*KeyPair, error)
}

// EncryptSource supplies padded plaintext blocks.
type EncryptSource interface {
	blockio.PaddedNumberReader
	blockio.EndChecker
}

// DecryptSource supplies full ciphertext blocks.
type DecryptSource interface {
	blockio.NumberReader
	blockio.EndChecker
}

// BlockCipher maps a byte stream onto modular exponentiations and back.
type BlockCipher interface {
	// Params returns the block geometry the cipher was built for.
	Params() BlockParams

	// Encrypt reads plaintext from src and writes ciphertext blocks to dst.
	// It returns the number of ciphertext blocks written.
	Encrypt(ctx context.Context, src EncryptSource, dst blockio.NumberWriter, key *KeyPair) (int, error)

	// Decrypt reads ciphertext blocks from src and writes the unpadded plaintext to dst.
	// It returns the number of plaintext bytes written.
	Decrypt(ctx context.Context, src DecryptSource, dst blockio.ChunkWriter, key *KeyPair) (int, error)
}

// FileCipher handles the encrypted file layout: the private exponent and modulus as a
// header followed by the ciphertext blocks.
//
// NOTE: embedding d makes every file decryptable by whoever holds it. The layout exists so
// a decrypt pass can be demonstrated self-contained; it does not provide secrecy.
type FileCipher interface {
	// EncryptFile encrypts inputPath into outputPath.
	EncryptFile(ctx context.Context, inputPath, outputPath string, key *KeyPair) error

	// DecryptFile decrypts inputPath into outputPath. A nil key uses the embedded header.
	DecryptFile(ctx context.Context, inputPath, outputPath string, key *KeyPair) error

	// EncryptBytes encrypts plaintext into the file layout in memory.
	EncryptBytes(ctx context.Context, plaintext []byte, key *KeyPair) ([]byte, error)

	// DecryptBytes decrypts the file layout in memory. A nil key uses the embedded header.
	DecryptBytes(ctx context.Context, ciphertext []byte, key *KeyPair) ([]byte, error)
}
