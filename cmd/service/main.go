package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "barista/internal/app"
	"barista/internal/handlers/kafka-consumer/order_status_changed"
	"barista/internal/handlers/rest/check_env_get"
	"barista/internal/handlers/rest/company_info_get"
	"barista/internal/handlers/rest/health_get"
	"barista/internal/handlers/rest/healthcheck_head"
	"barista/internal/handlers/rest/ice_server_token_get"
	"barista/internal/handlers/rest/menu_get"
	"barista/internal/handlers/rest/oai_response_post"
	"barista/internal/handlers/rest/order_delete"
	"barista/internal/handlers/rest/order_get"
	"barista/internal/handlers/rest/order_patch"
	"barista/internal/handlers/rest/order_post"
	"barista/internal/handlers/rest/orders_get"
	"barista/internal/handlers/rest/speech_token_get"
	"barista/internal/handlers/rest/tool_invoke_post"
	"barista/internal/pkg/config"
	"barista/internal/pkg/dotenv"
	"barista/internal/pkg/kafka"
	metrics_system "barista/internal/pkg/metrics"
	"barista/internal/pkg/middlewares/graceful_shutdown"
	"barista/internal/pkg/middlewares/metrics"
	"barista/internal/pkg/middlewares/recovery"
	"barista/internal/pkg/middlewares/request_id"
	"barista/internal/pkg/middlewares/timeout"
	"barista/pkg/logger"
	"barista/pkg/logger/zap_adapter"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	serviceName = "barista"
	apiPrefix   = "/api"

	systemMetricsInterval = 5 * time.Second
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Options{
		Level:   cfg.App.LogLevel,
		Service: serviceName,
		Version: cfg.App.Version,
	})
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

	mainLog.Info("starting barista application",
		logger.NewField("storage", cfg.Storage.Driver),
		logger.NewField("kafka", cfg.Kafka.Enabled),
	)

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdownCtx и ongoingCtx наследуются от context.Background() намеренно, это часть graceful shutdown
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

	businessApp, cleanup, err := application.InitializeApplication(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer cleanup()

	metrics_system.StartSystemMetricsCollector(ctx, systemMetricsInterval)

	// kitchen status feed
	var consumerErr chan error
	var consumer *kafka.Consumer
	if cfg.Kafka.Enabled {
		statusHandler := order_status_changed.New(log, businessApp.ServiceOrder, cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout)
		consumer, err = kafka.NewConsumer(ctx, log, &cfg.Kafka, statusHandler)
		if err != nil {
			return fmt.Errorf("kafka consumer: %w", err)
		}

		consumerErr = make(chan error, 1)
		// канал не закрывается: штатная остановка consumer-а не должна срабатывать в select как ошибка
		go func() {
			if err := consumer.Start(ctx); err != nil {
				consumerErr <- err
			}
		}()
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		// стрим чата пишет дольше обычного ответа
		WriteTimeout: max(cfg.Server.RequestTimeout, cfg.Server.ChatStreamTimeout) + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, businessApp.Storage),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second,
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
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	// nil-каналы выключенных компонентов в select никогда не срабатывают
	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr:
		return fmt.Errorf("pprof server: %w", err)
	case err := <-consumerErr:
		return fmt.Errorf("kafka consumer: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var pprofShutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		pprofShutdownErr = pprofServer.Shutdown(shutdownCtx)
		if pprofShutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", pprofShutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || pprofShutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	if consumer != nil {
		if err := consumer.Close(); err != nil {
			runLog.Error("failed to close kafka consumer", logger.NewField("error", err))
		}
	}
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(recovery.Middleware(log))
	router.Use(request_id.Middleware())
	router.Use(graceful_shutdown.Middleware(log, isShuttingDown, ongoingCtx))
	router.Use(metrics.Middleware(log))
	router.Use(timeout.Middleware(cfg.RequestTimeout, map[string]time.Duration{
		"/get-oai-response":             cfg.ChatStreamTimeout,
		apiPrefix + "/get-oai-response": cfg.ChatStreamTimeout,
	}))

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.Storage)).Methods(http.MethodHead)

	registerRoutes(router, log, app)
	registerRoutes(router.PathPrefix(apiPrefix).Subrouter(), log, app)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", request_id.Header}),
		handlers.ExposedHeaders([]string{request_id.Header}),
	)

	return cors(router)
}

// registerRoutes фронтенд ходит и на корень, и на /api.
func registerRoutes(router *mux.Router, log logger.Logger, app *application.Application) {
	router.Handle("/get-ice-server-token", ice_server_token_get.New(log, app.ServiceToken)).Methods(http.MethodGet, http.MethodPost)
	router.Handle("/get-speech-token", speech_token_get.New(log, app.ServiceToken)).Methods(http.MethodGet)
	router.Handle("/get-oai-response", oai_response_post.New(log, app.ServiceChat)).Methods(http.MethodPost)
	router.Handle("/invoke-tool", tool_invoke_post.New(log, app.ServiceChat)).Methods(http.MethodPost)

	router.Handle("/order", order_post.New(log, app.ServiceOrder)).Methods(http.MethodPost)
	router.Handle("/order/{orderId}", order_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	router.Handle("/order/{orderId}", order_patch.New(log, app.ServiceOrder)).Methods(http.MethodPatch)
	router.Handle("/order/{orderId}", order_delete.New(log, app.ServiceOrder)).Methods(http.MethodDelete)
	router.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)

	router.Handle("/company-info", company_info_get.New(log, app.ServiceCompany)).Methods(http.MethodGet)
	router.Handle("/menu", menu_get.New(log, app.ServiceMenu)).Methods(http.MethodGet)
	router.Handle("/health", health_get.New(log)).Methods(http.MethodGet)
	router.Handle("/check-env", check_env_get.New(log, app.EnvStatus)).Methods(http.MethodGet)
}

func initPprofRouter(isShuttingDown *atomic.Bool, storage healthcheck_head.StoragePinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, storage)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
