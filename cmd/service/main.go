package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "portal/internal/app"
	"portal/internal/handlers/kafka-consumer/order_status_changed"
	"portal/internal/handlers/rest/admin_force_cancel_post"
	"portal/internal/handlers/rest/admin_status_put"
	"portal/internal/handlers/rest/checkout_validate_post"
	"portal/internal/handlers/rest/healthcheck_head"
	"portal/internal/handlers/rest/order_action_post"
	"portal/internal/handlers/rest/order_actions_get"
	"portal/internal/handlers/rest/order_create_post"
	"portal/internal/handlers/rest/order_details_get"
	"portal/internal/handlers/rest/order_get"
	"portal/internal/handlers/rest/order_history_get"
	"portal/internal/handlers/rest/order_stats_get"
	"portal/internal/handlers/rest/order_tracking_get"
	"portal/internal/handlers/rest/orders_search_get"
	"portal/internal/handlers/rest/ping_get"
	"portal/internal/pkg/backendclient"
	"portal/internal/pkg/config"
	"portal/internal/pkg/dotenv"
	"portal/internal/pkg/kafka"
	metrics_system "portal/internal/pkg/metrics"
	"portal/internal/pkg/middlewares/auth_forward"
	"portal/internal/pkg/middlewares/graceful_shutdown"
	"portal/internal/pkg/middlewares/metrics"
	"portal/internal/pkg/middlewares/rate_limiter"
	"portal/internal/pkg/middlewares/request_id"
	"portal/internal/pkg/middlewares/timeout"
	"portal/pkg/logger"
	"portal/pkg/logger/zap_adapter"
	"portal/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting order-portal application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // graceful shutdown intentionally derives from context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	client, err := backendclient.New(ctx, log, &cfg.Backend)
	if err != nil {
		return fmt.Errorf("backend client: %w", err)
	}

	businessApp, err := application.InitializeApplication(ctx, log, client, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must not be cancelled on SIGTERM.
	// It is cancelled only after server.Shutdown() so in-flight requests finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// main http server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// main http server

	// optional in-process consumer for order.status.changed events
	var consumerErr chan error
	if cfg.Kafka.Enabled {
		handler := order_status_changed.New(log, businessApp.ServiceQuery, cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout)

		consumer, err := kafka.NewConsumer(
			ctx,
			log,
			&cfg.Kafka,
			strings.Split(cfg.Kafka.Brokers, ","),
			cfg.Kafka.ConsumerGroup,
			[]string{cfg.Kafka.Topic},
			handler,
		)
		if err != nil {
			return fmt.Errorf("kafka consumer: %w", err)
		}
		defer func() {
			if err := consumer.Close(); err != nil {
				runLog.Error("failed to close kafka consumer",
					logger.NewField("error", err),
				)
			}
		}()

		consumerErr = make(chan error, 1)
		go func() {
			defer close(consumerErr)
			if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
				consumerErr <- err
			}
		}()
	}
	// optional in-process consumer

	// pprof http server
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http server

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-consumerErr: // nil channel when kafka is disabled, case never fires
		return fmt.Errorf("kafka consumer: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must be independent of ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(request_id.Middleware())
	router.Use(auth_forward.Middleware())
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/checkout/validate", checkout_validate_post.New(log, app.ServiceWorkflow)).Methods("POST")

	router.Handle("/orders", order_create_post.New(log, app.ServiceWorkflow)).Methods("POST")

	// fixed paths before the {id} routes, mux matches in registration order
	router.Handle("/orders/stats", order_stats_get.New(log, app.ServiceQuery)).Methods("GET")
	router.Handle("/orders/search", orders_search_get.New(log, app.ServiceQuery)).Methods("GET")

	router.Handle("/orders/{id}", order_get.New(log, app.ServiceQuery)).Methods("GET")
	router.Handle("/orders/{id}/details", order_details_get.New(log, app.ServiceQuery)).Methods("GET")
	router.Handle("/orders/{id}/tracking", order_tracking_get.New(log, app.ServiceQuery)).Methods("GET")
	router.Handle("/orders/{id}/history", order_history_get.New(log, app.ServiceQuery)).Methods("GET")

	router.Handle("/orders/{id}/actions", order_actions_get.New(log, app.ServiceWorkflow)).Methods("GET")
	router.Handle("/orders/{id}/actions", order_action_post.New(log, app.ServiceWorkflow)).Methods("POST")

	router.Handle("/admin/orders/{id}/force-cancel", admin_force_cancel_post.New(log, app.ServiceWorkflow)).Methods("POST")
	router.Handle("/admin/orders/{id}/status", admin_status_put.New(log, app.ServiceWorkflow)).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
