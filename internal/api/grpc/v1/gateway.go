package v1

import (
	"context"
	"fmt"

	pb "github.com/MGTheTrain/rsa-vault/internal/pkg/pb/rsavault/v1"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
)

// MaxPayloadBytes bounds the plaintext or ciphertext carried by a single call
const MaxPayloadBytes = 32 << 20

// MaxMessageBytes bounds an encoded message. Gateway bodies carry the payload as base64.
const MaxMessageBytes = 2 * MaxPayloadBytes

// RegisterGateway registers the generated key and cipher handlers on gwmux, forwarding
// every request to the gRPC server behind conn
func RegisterGateway(ctx context.Context, gwmux *runtime.ServeMux, conn *grpc.ClientConn) error {
	if err := pb.RegisterKeyServiceHandler(ctx, gwmux, conn); err != nil {
		return fmt.Errorf("failed to register key service gateway: %w", err)
	}
	if err := pb.RegisterCipherServiceHandler(ctx, gwmux, conn); err != nil {
		return fmt.Errorf("failed to register cipher service gateway: %w", err)
	}
	return nil
}
