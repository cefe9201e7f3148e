package main

import (
	"context"
	"os"

	_ "payment_gateway/docs"
	"payment_gateway/internal/adapter/http/routes"
	"payment_gateway/internal/config"
	"payment_gateway/internal/infrastructure/observability"

	"github.com/rs/zerolog/log"
)

// @title           Payment Gateway API
// @version         1.0
// @description     HTTP façade over the Stripe API: customers, payment methods and payment intents.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5252
// @BasePath  /

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("payment gateway stopped")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	observability.SetGlobalLogger(observability.NewLogger(cfg.LogFormat, cfg.LogLevel))

	ctx := context.Background()
	if cfg.OTelEnabled {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: "payment_gateway",
			Endpoint:    cfg.OTelEndpoint,
			Environment: cfg.AppEnv,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn().Err(err).Msg("tracer shutdown failed")
			}
		}()
	}

	log.Info().
		Str("env", cfg.AppEnv).
		Bool("mock_gateway", cfg.PaymentGatewayMock).
		Bool("operations_journal", cfg.OperationsJournalEnabled).
		Msg("starting payment gateway")
	return routes.Run(ctx, cfg)
}
