package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/logger"

	"github.com/google/uuid"
)

// keyService implements the KeyService interface for generating and managing stored key pairs
type keyService struct {
	generator cryptoalg.KeyGenerator
	keyRepo   keys.KeyRepository
	logger    logger.Logger
}

// NewKeyService creates a new keyService instance
func NewKeyService(generator cryptoalg.KeyGenerator, keyRepo keys.KeyRepository, logger logger.Logger) (keys.KeyService, error) {
	if generator == nil {
		return nil, fmt.Errorf("key generator cannot be nil")
	}
	if keyRepo == nil {
		return nil, fmt.Errorf("key repository cannot be nil")
	}
	return &keyService{
		generator: generator,
		keyRepo:   keyRepo,
		logger:    logger,
	}, nil
}

// Generate creates a key pair and stores it under a new ID
func (s *keyService) Generate(ctx context.Context, label string) (*keys.KeyRecord, error) {
	keyPair, err := s.generator.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	record := &keys.KeyRecord{
		ID:              uuid.NewString(),
		Label:           label,
		KeyBits:         keyPair.Width(),
		KeyPair:         keyPair,
		DateTimeCreated: time.Now(),
	}
	if err := s.keyRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store key pair: %w", err)
	}

	s.logger.Info("Generated and stored key pair with id ", record.ID)
	return record, nil
}

// List retrieves stored key records considering a query filter when set
func (s *keyService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyRecord, error) {
	records, err := s.keyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list key pairs: %w", err)
	}
	return records, nil
}

// GetByID retrieves a key record by its ID
func (s *keyService) GetByID(ctx context.Context, keyID string) (*keys.KeyRecord, error) {
	record, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key pair: %w", err)
	}
	return record, nil
}

// DeleteByID deletes a key record by its ID
func (s *keyService) DeleteByID(ctx context.Context, keyID string) error {
	if err := s.keyRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to delete key pair: %w", err)
	}
	s.logger.Info("Deleted key pair with id ", keyID)
	return nil
}
