package v1

import (
	"context"
	"errors"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps a service error to a gRPC status error
func toStatus(err error) error {
	switch {
	case errors.Is(err, keys.ErrKeyNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, cryptoalg.ErrMalformedCiphertext),
		errors.Is(err, cryptoalg.ErrTruncatedInput),
		errors.Is(err, cryptoalg.ErrInvalidKeyPair),
		errors.Is(err, cryptoalg.ErrModulusTooSmall):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
