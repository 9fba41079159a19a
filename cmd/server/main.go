package main

import (
	"chat-feed/infrastructure/grpc/server"
	"chat-feed/internal"
	"chat-feed/moderation"
	"chat-feed/observability"
	pb "chat-feed/proto/feedchat"
	"chat-feed/runtime"
	"chat-feed/runtime/workers"
	"chat-feed/services"
	"chat-feed/storage"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	grpcsdk "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Broker terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer executes before the process
// exits and the shutdown path stays testable.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.Load()
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Persistence (flat append-only text logs)
	store, err := storage.NewLogStore(config.DataDir, logger)
	if err != nil {
		return exitRuntime, err
	}

	// 3. Optional message moderation
	var censor *moderation.Moderator
	if config.CensorMessages {
		mask, err := config.MaskRune()
		if err != nil {
			return exitConfig, err
		}
		words, err := moderation.LoadEmbedded()
		if err != nil {
			return exitRuntime, fmt.Errorf("loading censored words: %w", err)
		}
		censor, err = moderation.NewModerator(words, mask)
		if err != nil {
			return exitRuntime, fmt.Errorf("building moderator: %w", err)
		}
		logger.Info("message moderation enabled", "words", len(words))
	}

	// 4. Broker core
	registry := runtime.NewRegistry()
	broker := services.NewBrokerService(logger, registry, store, censor)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Supervised background workers
	sup := workers.NewSupervisor(logger)
	sup.Add(observability.NewReporter(logger, config.StatsInterval, broker, registry))
	go sup.Run(ctx)

	// 7. gRPC server setup
	address := fmt.Sprintf("0.0.0.0:%d", config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpcsdk.UnaryLoggingInterceptor(logger),
		))
	chatServer := server.NewChatServer(logger, broker, config.ConnectionBufferSize, config.DeliveryTimeout)
	pb.RegisterChatServiceServer(s, chatServer)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting gRPC server", "address", address)
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for stop or error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 9. Graceful shutdown: active chat streams may finish their replay and
	// in-flight fan-outs before the process exits.
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	sup.Stop()
	logger.Info("Broker stopped cleanly")

	return exitOK, nil
}
