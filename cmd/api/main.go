package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	httptransport "github.com/hospital-platform/auth-service/internal/api/http"
	"github.com/hospital-platform/auth-service/internal/api/http/handlers"
	"github.com/hospital-platform/auth-service/internal/api/rpc"
	"github.com/hospital-platform/auth-service/internal/config"
	"github.com/hospital-platform/auth-service/internal/events"
	"github.com/hospital-platform/auth-service/internal/observability"
	"github.com/hospital-platform/auth-service/internal/persistence"
	"github.com/hospital-platform/auth-service/internal/repository"
	"github.com/hospital-platform/auth-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	userRepo := repository.NewUserRepository(pg.PoolHandle())

	dispatcher := events.NewInMemoryDispatcher()
	events.RegisterAuditLog(dispatcher, logger)

	authService := service.NewAuthService(*cfg, userRepo, dispatcher)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:   handlers.NewAuthHandler(authService),
	})

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(rpc.LoggingInterceptor(logger)))
	rpc.RegisterAuthServiceServer(grpcServer, rpc.NewServer(authService.TokenManager(), userRepo, logger))

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPC.Addr())
	if err != nil {
		logger.Fatal("failed to listen for grpc", zap.Error(err))
	}

	go func() {
		logger.Info("starting grpc server", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal("grpc serve", zap.Error(err))
		}
	}()

	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	grpcServer.GracefulStop()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
