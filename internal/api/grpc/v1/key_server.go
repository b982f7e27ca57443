package v1

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/rsa-vault/internal/domain/keys"
	pb "github.com/MGTheTrain/rsa-vault/internal/pkg/pb/rsavault/v1"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// KeyServer handles gRPC requests for generating and managing stored key pairs
type KeyServer struct {
	pb.UnimplementedKeyServiceServer
	keyService keys.KeyService
}

// NewKeyServer creates a new instance of KeyServer.
func NewKeyServer(keyService keys.KeyService) (*KeyServer, error) {
	if keyService == nil {
		return nil, fmt.Errorf("key service cannot be nil")
	}
	return &KeyServer{
		keyService: keyService,
	}, nil
}

// Generate generates and stores a key pair
func (s *KeyServer) Generate(ctx context.Context, req *pb.GenerateKeyRequest) (*pb.KeyPairResponse, error) {
	if err := validator.New().Var(req.GetLabel(), "omitempty,max=255"); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid label: %v", err)
	}

	record, err := s.keyService.Generate(ctx, req.GetLabel())
	if err != nil {
		return nil, toStatus(fmt.Errorf("failed to generate key pair: %w", err))
	}
	return newKeyPairResponse(record), nil
}

// GetByID retrieves the public half of a key pair by ID
func (s *KeyServer) GetByID(ctx context.Context, req *pb.IdRequest) (*pb.KeyPairResponse, error) {
	record, err := s.keyService.GetByID(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return newKeyPairResponse(record), nil
}

// DeleteByID deletes a key pair by ID
func (s *KeyServer) DeleteByID(ctx context.Context, req *pb.IdRequest) (*pb.InfoResponse, error) {
	if err := s.keyService.DeleteByID(ctx, req.GetId()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.InfoResponse{
		Message: fmt.Sprintf("key pair with id %s deleted successfully", req.GetId()),
	}, nil
}

// List streams the stored key pairs matching the query
func (s *KeyServer) List(req *pb.KeyQueryRequest, stream grpc.ServerStreamingServer[pb.KeyPairResponse]) error {
	query := toKeyQuery(req)
	if err := query.Validate(); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	records, err := s.keyService.List(stream.Context(), query)
	if err != nil {
		return toStatus(fmt.Errorf("failed to list key pairs: %w", err))
	}

	for _, record := range records {
		if err := stream.Send(newKeyPairResponse(record)); err != nil {
			return fmt.Errorf("failed to send key pair: %w", err)
		}
	}
	return nil
}

func toKeyQuery(req *pb.KeyQueryRequest) *keys.KeyQuery {
	query := keys.NewKeyQuery()
	query.Label = req.GetLabel()
	query.Limit = int(req.GetLimit())
	query.Offset = int(req.GetOffset())
	query.SortBy = req.GetSortBy()
	query.SortOrder = req.GetSortOrder()
	if req.GetDateTimeCreated() != nil {
		query.DateTimeCreated = req.GetDateTimeCreated().AsTime()
	}
	return query
}

// newKeyPairResponse exposes n and e only; d never leaves the key store
func newKeyPairResponse(record *keys.KeyRecord) *pb.KeyPairResponse {
	return &pb.KeyPairResponse{
		Id:              record.ID,
		Label:           record.Label,
		KeyBits:         uint32(record.KeyBits),
		Modulus:         "0x" + record.KeyPair.N().Text(16),
		PublicExponent:  "0x" + record.KeyPair.E().Text(16),
		DateTimeCreated: timestamppb.New(record.DateTimeCreated),
	}
}

// RegisterKeyServer registers the key server with the gRPC server
func RegisterKeyServer(server grpc.ServiceRegistrar, keyServer *KeyServer) {
	pb.RegisterKeyServiceServer(server, keyServer)
}
