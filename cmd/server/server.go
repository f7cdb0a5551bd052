package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"

	casinov1alpha1 "github.com/KirkDiggler/rpg-casino/internal/api/casino/v1alpha1"
	"github.com/KirkDiggler/rpg-casino/internal/config"
	apihandler "github.com/KirkDiggler/rpg-casino/internal/handlers/api/v1alpha1"
	casinohandler "github.com/KirkDiggler/rpg-casino/internal/handlers/casino/v1alpha1"
	"github.com/KirkDiggler/rpg-casino/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort  int
	redisAddr string
	diceSeed  int64
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the casino gRPC server with the dice boss and dice history services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides CASINO_GRPC_PORT)")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "", "redis address (overrides CASINO_REDIS_ADDR)")
	serverCmd.Flags().Int64Var(&diceSeed, "seed", 0, "seed for reproducible dice (overrides CASINO_DICE_SEED)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("redis") {
		cfg.RedisAddr = redisAddr
	}
	if cmd.Flags().Changed("seed") {
		cfg.DiceSeed = diceSeed
	}
	return cfg, cfg.Validate()
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.TelemetryEnabled)
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			log.Printf("Telemetry shutdown failed: %v", err)
		}
	}()

	svc, closeServices, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeServices()

	diceHandler, err := apihandler.NewDiceHandler(&apihandler.DiceHandlerConfig{
		DiceService: svc.dice,
	})
	if err != nil {
		return fmt.Errorf("failed to create dice handler: %w", err)
	}

	casinoHandler, err := casinohandler.NewHandler(&casinohandler.HandlerConfig{
		EncounterService: svc.encounter,
	})
	if err != nil {
		return fmt.Errorf("failed to create dice boss handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	apiv1alpha1.RegisterDiceServiceServer(srv, diceHandler)
	casinov1alpha1.RegisterDiceBossServiceServer(srv, casinoHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("api.v1alpha1.DiceService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(casinov1alpha1.DiceBossService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("gRPC server starting on port %d...", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(shutdownTimeout):
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

// logFunc bridges the grpc-middleware logger to slog; the level values match
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}
