package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	_ "payment_gateway/docs" // generated by swag init
	"payment_gateway/internal/adapter/http/handlers"
	"payment_gateway/internal/adapter/http/middleware"
	"payment_gateway/internal/config"
	"payment_gateway/internal/infrastructure/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Run builds the server from cfg and serves until SIGINT/SIGTERM, then drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := BuildDependencies(ctx, cfg, log.Logger)
	if err != nil {
		return err
	}
	handler, err := NewHandler(deps)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// NewHandler returns the gin router wrapped in CORS and OpenTelemetry server instrumentation.
func NewHandler(deps Dependencies) (http.Handler, error) {
	router, err := NewRouter(deps)
	if err != nil {
		return nil, err
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   deps.Config.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.HeaderRequestID},
		ExposedHeaders:   []string{middleware.HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler(router)

	return otelhttp.NewHandler(corsHandler, "http.server",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	), nil
}

// NewRouter mounts middleware, the payment routes and the operational endpoints.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.Recovery(),
		middleware.Metrics(observability.NewHTTPMetrics(cfg.MetricsNamespace, deps.Registry)),
	)
	if cfg.RateLimit != "" {
		limit, err := middleware.RateLimit(cfg.RateLimit)
		if err != nil {
			return nil, err
		}
		router.Use(limit)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	addPingRoutes(router)

	addPaymentRoutes(router, paymentHandlers{
		config:        handlers.NewConfigHandler(cfg.StripePublishableKey, cfg.StaticDir),
		customer:      handlers.NewCustomerHandler(deps.CustomerUseCase),
		paymentMethod: handlers.NewPaymentMethodHandler(deps.PaymentMethodUseCase),
		paymentIntent: handlers.NewPaymentIntentHandler(deps.PaymentIntentUseCase),
		operation:     handlers.NewOperationHandler(deps.OperationLogUseCase),
	})

	return router, nil
}
