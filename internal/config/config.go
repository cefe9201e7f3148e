package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	defaultPort             = "5252"
	defaultListLimit        = 10
	defaultOperationsTable  = "payment_operations"
	defaultMetricsNamespace = "payment_gateway"
)

// ErrMissingStripeSecretKey is returned when the provider is live but no key is set.
var ErrMissingStripeSecretKey = errors.New("STRIPE_SECRET_KEY is required unless PAYMENT_GATEWAY_MOCK is enabled")

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv    string
	Port      string
	StaticDir string

	StripeSecretKey      string
	StripePublishableKey string
	StripeAPIURL         string
	PaymentGatewayMock   bool
	ListPageLimit        int64

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string
	RateLimit          string

	OperationsJournalEnabled bool
	OperationsTable          string
	AWSRegion                string
	DynamoDBEndpoint         string

	OTelEnabled      bool
	OTelEndpoint     string
	MetricsNamespace string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables and an optional .env file.
// ENV_FILE overrides the .env location.
func Load() (*Config, error) {
	envFile := valueOrDefault(os.Getenv("ENV_FILE"), ".env")
	_ = godotenv.Load(envFile)

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:    valueOrDefault(k.String("APP_ENV"), "development"),
		Port:      valueOrDefault(k.String("PORT"), defaultPort),
		StaticDir: strings.TrimSpace(k.String("STATIC_DIR")),

		StripeSecretKey:      strings.TrimSpace(k.String("STRIPE_SECRET_KEY")),
		StripePublishableKey: strings.TrimSpace(k.String("STRIPE_PUBLISHABLE_KEY")),
		StripeAPIURL:         strings.TrimSpace(k.String("STRIPE_API_URL")),
		PaymentGatewayMock:   parseBool(k.String("PAYMENT_GATEWAY_MOCK")),
		ListPageLimit:        parseInt64(k.String("LIST_PAGE_LIMIT"), defaultListLimit),

		LogLevel:  valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat: valueOrDefault(k.String("LOG_FORMAT"), "json"),

		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),
		RateLimit:          strings.TrimSpace(k.String("RATE_LIMIT")),

		OperationsJournalEnabled: parseBool(k.String("OPERATIONS_JOURNAL_ENABLED")),
		OperationsTable:          valueOrDefault(k.String("OPERATIONS_TABLE"), defaultOperationsTable),
		AWSRegion:                valueOrDefault(k.String("AWS_REGION"), "us-east-1"),
		DynamoDBEndpoint:         strings.TrimSpace(k.String("DYNAMODB_ENDPOINT")),

		OTelEnabled:      parseBool(k.String("OTEL_ENABLED")),
		OTelEndpoint:     strings.TrimSpace(k.String("OTEL_EXPORTER_OTLP_ENDPOINT")),
		MetricsNamespace: valueOrDefault(k.String("METRICS_NAMESPACE"), defaultMetricsNamespace),

		ReadTimeout:     parseDuration(k.String("HTTP_READ_TIMEOUT"), "15s"),
		WriteTimeout:    parseDuration(k.String("HTTP_WRITE_TIMEOUT"), "30s"),
		ShutdownTimeout: parseDuration(k.String("SHUTDOWN_TIMEOUT"), "10s"),
	}

	if cfg.StripeSecretKey == "" && !cfg.PaymentGatewayMock {
		return nil, ErrMissingStripeSecretKey
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = defaultPort
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parseInt64(value string, fallback int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on", "mock":
		return true
	default:
		return false
	}
}
