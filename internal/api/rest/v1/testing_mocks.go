//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyService is a mock implementation of KeyService
type MockKeyService struct {
	mock.Mock
}

func (m *MockKeyService) Generate(ctx context.Context, label string) (*keys.KeyRecord, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyRecord), args.Error(1)
}

func (m *MockKeyService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyRecord), args.Error(1)
}

func (m *MockKeyService) GetByID(ctx context.Context, keyID string) (*keys.KeyRecord, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyRecord), args.Error(1)
}

func (m *MockKeyService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockCipherService is a mock implementation of CipherService
type MockCipherService struct {
	mock.Mock
}

func (m *MockCipherService) Encrypt(ctx context.Context, keyID string, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, keyID, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCipherService) Decrypt(ctx context.Context, keyID string, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, keyID, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCipherService) DecryptEmbedded(ctx context.Context, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
