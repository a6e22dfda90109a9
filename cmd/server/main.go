package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/pennywise/internal/access"
	"github.com/mmynk/pennywise/internal/auth"
	"github.com/mmynk/pennywise/internal/config"
	"github.com/mmynk/pennywise/internal/metrics"
	"github.com/mmynk/pennywise/internal/middleware"
	"github.com/mmynk/pennywise/internal/notify"
	"github.com/mmynk/pennywise/internal/service"
	"github.com/mmynk/pennywise/internal/splits"
	"github.com/mmynk/pennywise/internal/storage/sqlite"
	"github.com/mmynk/pennywise/pkg/api/apiconnect"
	"github.com/mmynk/pennywise/pkg/logging"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, logger); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	m := metrics.New()

	dispatchers := notify.Multi{notify.NewLogDispatcher(logger)}
	if cfg.AMQPEnabled() {
		broker, err := notify.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return fmt.Errorf("failed to connect to broker: %w", err)
		}
		defer broker.Close()
		dispatchers = append(dispatchers, broker)
		slog.Info("Publishing notifications to broker", "exchange", cfg.AMQPExchange)
	}
	if cfg.DiscordEnabled() {
		discord, err := notify.NewDiscordDispatcher(cfg.DiscordBotToken, cfg.DiscordChannelID)
		if err != nil {
			return fmt.Errorf("failed to create discord session: %w", err)
		}
		dispatchers = append(dispatchers, discord)
		slog.Info("Posting notifications to discord", "channel_id", cfg.DiscordChannelID)
	}

	fanOut := notify.NewFanOut(dispatchers,
		notify.WithTimeout(cfg.NotifyTimeout),
		notify.WithLogger(logger),
		notify.WithDeliveryCounter(m.Deliveries),
	)
	// Runs before the broker and store close.
	defer fanOut.Wait()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	resolver := access.NewResolver(store)
	splitSvc := splits.New(store, fanOut,
		splits.WithDefaultCurrency(cfg.DefaultCurrency),
		splits.WithCreatedCounter(m.SplitsCreated),
		splits.WithLogger(logger),
	)

	// RequireAuth sits before LoggingInterceptor so logged calls carry the
	// user id.
	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.RequireAuth(jwtManager,
			apiconnect.AuthServiceRegisterProcedure,
			apiconnect.AuthServiceLoginProcedure,
		),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(
		service.NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, logger), interceptors))
	mux.Handle(apiconnect.NewGroupServiceHandler(
		service.NewGroupService(store, resolver, splitSvc), interceptors))
	mux.Handle(apiconnect.NewSplitServiceHandler(
		service.NewSplitService(resolver, splitSvc), interceptors))
	mux.Handle(apiconnect.NewNotificationServiceHandler(
		service.NewNotificationService(store), interceptors))
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	// h2c serves HTTP/2 without TLS, which gRPC clients need.
	handler := h2c.NewHandler(middleware.HTTPLogger(corsMiddleware(mux)), &http2.Server{})
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
