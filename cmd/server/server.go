package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/fabula-api/internal/config"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/fabula-api/internal/handlers/fabula/v1alpha1"
	"github.com/KirkDiggler/fabula-api/internal/logging"
	"github.com/KirkDiggler/fabula-api/internal/sink"
)

const shutdownTimeout = 30 * time.Second

var serverFlags struct {
	port      int
	redisAddr string
	actorFile string
	rollMode  string
	logLevel  string
	seed      int64
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the fabula-api gRPC server. Flags override FABULA_* environment variables and .env values.`,
	RunE:  runServer,
}

func init() {
	f := serverCmd.Flags()
	f.IntVar(&serverFlags.port, "port", 50051, "gRPC server port")
	f.StringVar(&serverFlags.redisAddr, "redis", "", "Redis address; empty keeps state in memory")
	f.StringVar(&serverFlags.actorFile, "actors", "", "YAML actor file loaded at startup")
	f.StringVar(&serverFlags.rollMode, "mode", "public", "default roll mode (public, gm, blind, self)")
	f.StringVar(&serverFlags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	f.Int64Var(&serverFlags.seed, "seed", 0, "seed for deterministic dice; 0 uses the system roller")
}

// loadServerConfig reads the environment then applies flags the user set
func loadServerConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(".env")
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.GRPCPort = serverFlags.port
	}
	if flags.Changed("redis") {
		cfg.RedisAddr = serverFlags.redisAddr
	}
	if flags.Changed("actors") {
		cfg.ActorFile = serverFlags.actorFile
	}
	if flags.Changed("mode") {
		cfg.SetRollMode(serverFlags.rollMode)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(serverFlags.logLevel)
	}
	if flags.Changed("seed") {
		cfg.Seed = serverFlags.seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServerConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	logging.Install(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := events.NewBus()
	busSink, err := sink.NewBusSink(&sink.BusSinkConfig{Bus: bus})
	if err != nil {
		return err
	}
	sink.Subscribe(bus, 100, func(_ context.Context, msg *sink.Message) error {
		slog.Info("Message delivered",
			"message_id", msg.ID,
			"actor_id", msg.ActorID,
			"roll_mode", msg.RollMode,
			"label", msg.Payload.Label)
		return nil
	})

	application, err := newApp(ctx, cfg, busSink)
	if err != nil {
		return err
	}
	defer application.Close()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ActionService: application.actions,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create action handler")
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to listen")
	}

	grpcLogger := logging.GRPCLogger(logger.Logger)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpcLogger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLogger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterActionServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to serve")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		gracefulStop(srv)
		return nil
	})

	return g.Wait()
}

func gracefulStop(srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(shutdownTimeout):
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}
}
