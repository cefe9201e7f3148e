package routes

import (
	"context"

	"payment_gateway/internal/adapter/persistence/repository"
	"payment_gateway/internal/config"
	"payment_gateway/internal/infrastructure/database"
	"payment_gateway/internal/infrastructure/observability"
	"payment_gateway/internal/infrastructure/payments"
	"payment_gateway/internal/usecase"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Dependencies are the collaborators the router is built from.
type Dependencies struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Registry *prometheus.Registry

	CustomerUseCase      usecase.ICustomerUseCase
	PaymentMethodUseCase usecase.IPaymentMethodUseCase
	PaymentIntentUseCase usecase.IPaymentIntentUseCase
	OperationLogUseCase  usecase.IOperationLogUseCase
}

// BuildDependencies wires the payment gateway, the optional operation journal and the usecases.
func BuildDependencies(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Dependencies, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gateway := newPaymentGateway(cfg, observability.NewProviderMetrics(cfg.MetricsNamespace, reg))

	journal, err := newOperationJournal(ctx, cfg)
	if err != nil {
		return Dependencies{}, err
	}

	return NewDependencies(cfg, logger, reg, gateway, journal), nil
}

// NewDependencies builds the usecases over an already constructed gateway and journal.
// journal may be nil, which disables the operation journal.
func NewDependencies(cfg *config.Config, logger zerolog.Logger, reg *prometheus.Registry, gateway interfaces.IPaymentGateway, journal interfaces.IOperationLogRepository) Dependencies {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return Dependencies{
		Config:               cfg,
		Logger:               logger,
		Registry:             reg,
		CustomerUseCase:      usecase.NewCustomerUseCase(gateway, journal, cfg.ListPageLimit),
		PaymentMethodUseCase: usecase.NewPaymentMethodUseCase(gateway, journal),
		PaymentIntentUseCase: usecase.NewPaymentIntentUseCase(gateway, journal),
		OperationLogUseCase:  usecase.NewOperationLogUseCase(journal),
	}
}

// newPaymentGateway returns nil when Stripe cannot be configured; usecases then answer
// "payment gateway not configured".
func newPaymentGateway(cfg *config.Config, metrics *observability.ProviderMetrics) interfaces.IPaymentGateway {
	if cfg.PaymentGatewayMock {
		return payments.NewMockGateway()
	}

	gw, err := payments.NewStripeGateway(payments.StripeConfig{
		SecretKey: cfg.StripeSecretKey,
		APIURL:    cfg.StripeAPIURL,
		Metrics:   metrics,
	})
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] Stripe gateway not configured")
		return nil
	}
	return gw
}

func newOperationJournal(ctx context.Context, cfg *config.Config) (interfaces.IOperationLogRepository, error) {
	if !cfg.OperationsJournalEnabled {
		return nil, nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
		Region:   cfg.AWSRegion,
		Endpoint: cfg.DynamoDBEndpoint,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("table", cfg.OperationsTable).Msg("[payment][journal] operation journal enabled")
	return repository.NewOperationLogDynamoRepository(ddb, cfg.OperationsTable), nil
}
