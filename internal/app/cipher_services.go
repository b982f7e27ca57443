package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/logger"
)

// cipherService implements the CipherService interface on top of stored key pairs
type cipherService struct {
	keyRepo    keys.KeyRepository
	fileCipher cryptoalg.FileCipher
	logger     logger.Logger
}

// NewCipherService creates a new cipherService instance
func NewCipherService(keyRepo keys.KeyRepository, fileCipher cryptoalg.FileCipher, logger logger.Logger) (keys.CipherService, error) {
	if keyRepo == nil {
		return nil, fmt.Errorf("key repository cannot be nil")
	}
	if fileCipher == nil {
		return nil, fmt.Errorf("file cipher cannot be nil")
	}
	return &cipherService{
		keyRepo:    keyRepo,
		fileCipher: fileCipher,
		logger:     logger,
	}, nil
}

// Encrypt encrypts plaintext with the key stored under keyID
func (s *cipherService) Encrypt(ctx context.Context, keyID string, plaintext []byte) ([]byte, error) {
	record, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, err
	}

	ciphertext, err := s.fileCipher.EncryptBytes(ctx, plaintext, record.KeyPair)
	if err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Encrypted %d bytes with key %s", len(plaintext), keyID))
	return ciphertext, nil
}

// Decrypt decrypts ciphertext with the key stored under keyID
func (s *cipherService) Decrypt(ctx context.Context, keyID string, ciphertext []byte) ([]byte, error) {
	record, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, err
	}

	plaintext, err := s.fileCipher.DecryptBytes(ctx, ciphertext, record.KeyPair)
	if err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Decrypted %d bytes with key %s", len(plaintext), keyID))
	return plaintext, nil
}

// DecryptEmbedded decrypts ciphertext with the key material from its own header
func (s *cipherService) DecryptEmbedded(ctx context.Context, ciphertext []byte) ([]byte, error) {
	plaintext, err := s.fileCipher.DecryptBytes(ctx, ciphertext, nil)
	if err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Decrypted %d bytes with the embedded key", len(plaintext)))
	return plaintext, nil
}
