package main

import (
	"code-racer/infrastructure/ws"
	"code-racer/repositories"
	"code-racer/runtime"
	"code-racer/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the coordinator and blocks until a signal or a server failure.
// Returning instead of exiting lets the deferred cleanups (BadgerDB) run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Orchestration
	raceRepository := repositories.NewRaceRepository(db, log)
	orchestrator, err := runtime.NewOrchestrator(log, raceRepository, config.Runtime())
	if err != nil {
		return fmt.Errorf("invalid runtime configuration: %w", err)
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	errChan := make(chan error, 2)

	// 5. gRPC health endpoint, fed by the queue monitor
	grpcServer, healthServer, err := startHealthServer(log, config, errChan)
	if err != nil {
		return err
	}
	if healthServer != nil {
		orchestrator.MonitorQueues(config.QueueAlertThreshold, config.QueueMonitorInterval, func(healthy bool) {
			status := grpc_health_v1.HealthCheckResponse_SERVING
			if !healthy {
				status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
			}
			healthServer.SetServingStatus("", status)
		})
	}
	orchestrator.Start(ctx)

	// 6. Websocket transport
	service := services.NewRaceService(log, orchestrator.Registry(), orchestrator.Broadcaster())
	wsServer := ws.NewServer(log, service, config.Transport())
	mux := http.NewServeMux()
	mux.Handle("/ws", wsServer)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Host, config.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting websocket server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		orchestrator.Stop()
		return err
	}

	// 8. Final Cleanup
	if healthServer != nil {
		healthServer.Shutdown()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	wsServer.Close()
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}

// startHealthServer exposes the standard gRPC health service, skipped when no port is configured.
func startHealthServer(log *slog.Logger, config Config, errChan chan<- error) (*grpc.Server, *health.Server, error) {
	if config.GRPCPort == 0 {
		return nil, nil, nil
	}
	address := fmt.Sprintf("%s:%d", config.Host, config.GRPCPort)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(s)

	go func() {
		log.Info("Starting gRPC health server", "address", address)
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()
	return s, healthServer, nil
}
