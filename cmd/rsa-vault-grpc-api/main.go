// Package main is the entry point for the rsa-vault-grpc-api application.
// It sets up and starts both a gRPC server and a gRPC-Gateway server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/rsa-vault/internal/api/grpc/v1"
	"github.com/MGTheTrain/rsa-vault/internal/app"
	"github.com/MGTheTrain/rsa-vault/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-vault/internal/infrastructure/persistence"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/logger"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/random"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/reflection"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/grpc-app.yaml"
	}

	grpcConfig, err := config.InitializeGrpcConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&grpcConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	servers, err := initializeDependencies(grpcConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Start servers with graceful shutdown
	return startServersWithGracefulShutdown(grpcConfig, servers, log)
}

type grpcServers struct {
	key    *v1.KeyServer
	cipher *v1.CipherServer
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.GrpcConfig, log logger.Logger) (*grpcServers, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	keyRepo, err := persistence.NewGormKeyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key repository: %w", err)
	}

	source := random.System()
	if cfg.Cipher.Seed != 0 {
		source = random.NewSeeded(cfg.Cipher.Seed)
		log.Warn("Using seeded random source, generated keys are reproducible")
	}

	tester, err := cryptography.NewPrimalityTester(source, &cfg.Cipher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create primality tester: %w", err)
	}

	generator, err := cryptography.NewKeyGenerator(tester, source, &cfg.Cipher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	blockCipher, err := cryptography.NewPaddingCipher(cfg.Cipher.BlockParams(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create padding cipher: %w", err)
	}

	fileCipher, err := cryptography.NewFileCipher(blockCipher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create file cipher: %w", err)
	}

	keyService, err := app.NewKeyService(generator, keyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key service: %w", err)
	}

	cipherService, err := app.NewCipherService(keyRepo, fileCipher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	keyServer, err := v1.NewKeyServer(keyService)
	if err != nil {
		return nil, fmt.Errorf("failed to create key server: %w", err)
	}

	cipherServer, err := v1.NewCipherServer(cipherService)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher server: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &grpcServers{
		key:    keyServer,
		cipher: cipherServer,
	}, nil
}

// startServersWithGracefulShutdown starts both gRPC and gateway servers with graceful shutdown
func startServersWithGracefulShutdown(cfg *config.GrpcConfig, servers *grpcServers, log logger.Logger) error {
	grpcServer := grpc.NewServer(
		grpc.MaxRecvMsgSize(v1.MaxMessageBytes),
		grpc.MaxSendMsgSize(v1.MaxMessageBytes),
	)

	v1.RegisterKeyServer(grpcServer, servers.key)
	v1.RegisterCipherServer(grpcServer, servers.cipher)

	// Enable reflection for grpcurl
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}

	grpcErrors := make(chan error, 1)
	go func() {
		log.Info("gRPC server starting on port ", cfg.Port)
		if err := grpcServer.Serve(lis); err != nil {
			grpcErrors <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	gwServer, conn, err := setupGatewayServer(context.Background(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to setup gateway server: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	gatewayErrors := make(chan error, 1)
	go func() {
		log.Info("gRPC-Gateway server starting on port ", cfg.GatewayPort)
		if err := gwServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			gatewayErrors <- fmt.Errorf("gateway server failed: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-grpcErrors:
		return err
	case err := <-gatewayErrors:
		return err
	case sig := <-quit:
		log.Info(fmt.Sprintf("Received signal %v, initiating graceful shutdown", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down servers...")
	if err := gwServer.Shutdown(ctx); err != nil {
		log.Error(fmt.Sprintf("Gateway shutdown error: %v", err))
	}

	grpcServer.GracefulStop()

	log.Info("Servers stopped gracefully")
	return nil
}

// setupGatewayServer creates the gRPC-Gateway HTTP server and the client connection it forwards on
func setupGatewayServer(ctx context.Context, cfg *config.GrpcConfig, log logger.Logger) (*http.Server, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient("localhost:"+cfg.Port,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(v1.MaxMessageBytes),
			grpc.MaxCallSendMsgSize(v1.MaxMessageBytes),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial gRPC server: %w", err)
	}

	gwmux := runtime.NewServeMux()
	if err := v1.RegisterGateway(ctx, gwmux, conn); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	log.Info("gRPC-Gateway handlers registered")

	return &http.Server{
		Addr:              ":" + cfg.GatewayPort,
		Handler:           gwmux,
		ReadHeaderTimeout: 10 * time.Second,
	}, conn, nil
}
