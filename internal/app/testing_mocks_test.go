//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyRepository is a mock implementation of KeyRepository
type MockKeyRepository struct {
	mock.Mock
}

func (m *MockKeyRepository) Create(ctx context.Context, record *keys.KeyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockKeyRepository) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyRecord), args.Error(1)
}

func (m *MockKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.KeyRecord, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyRecord), args.Error(1)
}

func (m *MockKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockKeyGenerator is a mock implementation of KeyGenerator
type MockKeyGenerator struct {
	mock.Mock
}

func (m *MockKeyGenerator) Generate(ctx context.Context) (*cryptoalg.KeyPair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cryptoalg.KeyPair), args.Error(1)
}
