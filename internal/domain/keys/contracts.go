package keys

import (
	"context"
)

// KeyService defines methods for generating and managing stored RSA key pairs.
type KeyService interface {
	// Generate creates a fresh key pair, stores it under a new ID and returns the record.
	Generate(ctx context.Context, label string) (*KeyRecord, error)

	// List retrieves stored key records considering a query filter when set.
	List(ctx context.Context, query *KeyQuery) ([]*KeyRecord, error)

	// GetByID retrieves a key record by its unique ID.
	GetByID(ctx context.Context, keyID string) (*KeyRecord, error)

	// DeleteByID deletes a key record by ID.
	DeleteByID(ctx context.Context, keyID string) error
}

// CipherService defines methods for encrypting and decrypting payloads with stored keys.
// Ciphertexts use the file layout of cryptoalg.FileCipher.
type CipherService interface {
	// Encrypt encrypts plaintext with the key stored under keyID.
	Encrypt(ctx context.Context, keyID string, plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext with the key stored under keyID, ignoring the embedded header.
	Decrypt(ctx context.Context, keyID string, ciphertext []byte) ([]byte, error)

	// DecryptEmbedded decrypts ciphertext with the private exponent and modulus from its header.
	DecryptEmbedded(ctx context.Context, ciphertext []byte) ([]byte, error)
}

// KeyRepository defines the interface for KeyRecord persistence
type KeyRepository interface {
	Create(ctx context.Context, record *KeyRecord) error
	List(ctx context.Context, query *KeyQuery) ([]*KeyRecord, error)
	GetByID(ctx context.Context, keyID string) (*KeyRecord, error)
	DeleteByID(ctx context.Context, keyID string) error
}
