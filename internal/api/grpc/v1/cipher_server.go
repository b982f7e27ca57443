package v1

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	pb "github.com/MGTheTrain/rsa-vault/internal/pkg/pb/rsavault/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CipherServer handles gRPC requests for encrypting and decrypting payloads
type CipherServer struct {
	pb.UnimplementedCipherServiceServer
	cipherService keys.CipherService
}

// NewCipherServer creates a new instance of CipherServer.
func NewCipherServer(cipherService keys.CipherService) (*CipherServer, error) {
	if cipherService == nil {
		return nil, fmt.Errorf("cipher service cannot be nil")
	}
	return &CipherServer{
		cipherService: cipherService,
	}, nil
}

// Encrypt encrypts the payload with the stored key pair
func (s *CipherServer) Encrypt(ctx context.Context, req *pb.CipherRequest) (*pb.CipherResponse, error) {
	if req.GetKeyId() == "" {
		return nil, status.Error(codes.InvalidArgument, "key_id is required")
	}

	ciphertext, err := s.cipherService.Encrypt(ctx, req.GetKeyId(), req.GetPayload())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CipherResponse{Payload: ciphertext}, nil
}

// Decrypt decrypts the payload with the stored key pair
func (s *CipherServer) Decrypt(ctx context.Context, req *pb.CipherRequest) (*pb.CipherResponse, error) {
	if req.GetKeyId() == "" {
		return nil, status.Error(codes.InvalidArgument, "key_id is required")
	}

	plaintext, err := s.cipherService.Decrypt(ctx, req.GetKeyId(), req.GetPayload())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CipherResponse{Payload: plaintext}, nil
}

// DecryptEmbedded decrypts the payload with the key carried in its header
func (s *CipherServer) DecryptEmbedded(ctx context.Context, req *pb.CipherRequest) (*pb.CipherResponse, error) {
	plaintext, err := s.cipherService.DecryptEmbedded(ctx, req.GetPayload())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CipherResponse{Payload: plaintext}, nil
}

// RegisterCipherServer registers the cipher server with the gRPC server
func RegisterCipherServer(server grpc.ServiceRegistrar, cipherServer *CipherServer) {
	pb.RegisterCipherServiceServer(server, cipherServer)
}
