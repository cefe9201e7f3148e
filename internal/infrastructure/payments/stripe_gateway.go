package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/infrastructure/observability"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

const defaultStripeTimeout = 30 * time.Second

// StripeConfig configures the Stripe adapter.
//
// APIURL overrides the API base (stripe-mock, tests). Retries are always disabled.
type StripeConfig struct {
	SecretKey  string
	APIURL     string
	HTTPClient *http.Client
	Metrics    *observability.ProviderMetrics
}

// StripeGateway implements IPaymentGateway over the Stripe API.
type StripeGateway struct {
	sc      *client.API
	metrics *observability.ProviderMetrics
	tracer  trace.Tracer
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg StripeConfig) (*StripeGateway, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		log.Error().Msg("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   defaultStripeTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	backendCfg := &stripe.BackendConfig{
		HTTPClient:        httpClient,
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     observability.StripeLogger{Logger: log.Logger},
	}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(strings.TrimSuffix(cfg.APIURL, "/"))
	}

	log.Info().Bool("custom_api_url", cfg.APIURL != "").Msg("[payment][gateway] Stripe client initialized")
	return &StripeGateway{
		sc:      client.New(cfg.SecretKey, stripe.NewBackendsWithConfig(backendCfg)),
		metrics: cfg.Metrics,
		tracer:  observability.Tracer(),
	}, nil
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, name, email string) (entities.Customer, error) {
	var out entities.Customer
	err := g.call(ctx, "create_customer", func(ctx context.Context) error {
		params := &stripe.CustomerParams{Email: stripe.String(email)}
		if name != "" {
			params.Name = stripe.String(name)
		}
		params.Context = ctx
		c, err := g.sc.Customers.New(params)
		if err != nil {
			return err
		}
		out = toCustomer(c)
		return nil
	})
	return out, err
}

func (g *StripeGateway) GetCustomer(ctx context.Context, customerID string) (entities.Customer, error) {
	var out entities.Customer
	err := g.call(ctx, "get_customer", func(ctx context.Context) error {
		params := &stripe.CustomerParams{}
		params.Context = ctx
		c, err := g.sc.Customers.Get(customerID, params)
		if err != nil {
			return err
		}
		out = toCustomer(c)
		return nil
	}, attribute.String("customer.id", customerID))
	return out, err
}

// SetDefaultPaymentMethod sets the customer's invoice default. An empty id clears it.
func (g *StripeGateway) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) (entities.Customer, error) {
	var out entities.Customer
	err := g.call(ctx, "set_default_payment_method", func(ctx context.Context) error {
		params := &stripe.CustomerParams{
			InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
				DefaultPaymentMethod: stripe.String(paymentMethodID),
			},
		}
		params.Context = ctx
		c, err := g.sc.Customers.Update(customerID, params)
		if err != nil {
			return err
		}
		out = toCustomer(c)
		return nil
	}, attribute.String("customer.id", customerID), attribute.String("payment_method.id", paymentMethodID))
	return out, err
}

func (g *StripeGateway) ListCustomerPaymentMethods(ctx context.Context, customerID string, limit int64) (entities.PaymentMethodList, error) {
	var out entities.PaymentMethodList
	err := g.call(ctx, "list_customer_payment_methods", func(ctx context.Context) error {
		params := &stripe.CustomerListPaymentMethodsParams{Customer: stripe.String(customerID)}
		params.Limit = stripe.Int64(limit)
		params.Context = ctx
		var err error
		out, err = collectPaymentMethods(g.sc.Customers.ListPaymentMethods(params), limit)
		return err
	}, attribute.String("customer.id", customerID))
	return out, err
}

func (g *StripeGateway) ListPaymentMethods(ctx context.Context, customerID, methodType string, limit int64) (entities.PaymentMethodList, error) {
	var out entities.PaymentMethodList
	err := g.call(ctx, "list_payment_methods", func(ctx context.Context) error {
		params := &stripe.PaymentMethodListParams{Customer: stripe.String(customerID)}
		if methodType != "" {
			params.Type = stripe.String(methodType)
		}
		params.Limit = stripe.Int64(limit)
		params.Context = ctx
		var err error
		out, err = collectPaymentMethods(g.sc.PaymentMethods.List(params), limit)
		return err
	}, attribute.String("customer.id", customerID))
	return out, err
}

func (g *StripeGateway) GetPaymentMethod(ctx context.Context, paymentMethodID string) (entities.PaymentMethod, error) {
	var out entities.PaymentMethod
	err := g.call(ctx, "get_payment_method", func(ctx context.Context) error {
		params := &stripe.PaymentMethodParams{}
		params.Context = ctx
		pm, err := g.sc.PaymentMethods.Get(paymentMethodID, params)
		if err != nil {
			return err
		}
		out = toPaymentMethod(pm, rawOf(pm.LastResponse, pm))
		return nil
	}, attribute.String("payment_method.id", paymentMethodID))
	return out, err
}

func (g *StripeGateway) AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) (entities.PaymentMethod, error) {
	var out entities.PaymentMethod
	err := g.call(ctx, "attach_payment_method", func(ctx context.Context) error {
		params := &stripe.PaymentMethodAttachParams{Customer: stripe.String(customerID)}
		params.Context = ctx
		pm, err := g.sc.PaymentMethods.Attach(paymentMethodID, params)
		if err != nil {
			return err
		}
		out = toPaymentMethod(pm, rawOf(pm.LastResponse, pm))
		return nil
	}, attribute.String("payment_method.id", paymentMethodID), attribute.String("customer.id", customerID))
	return out, err
}

func (g *StripeGateway) DetachPaymentMethod(ctx context.Context, paymentMethodID string) (entities.PaymentMethod, error) {
	var out entities.PaymentMethod
	err := g.call(ctx, "detach_payment_method", func(ctx context.Context) error {
		params := &stripe.PaymentMethodDetachParams{}
		params.Context = ctx
		pm, err := g.sc.PaymentMethods.Detach(paymentMethodID, params)
		if err != nil {
			return err
		}
		out = toPaymentMethod(pm, rawOf(pm.LastResponse, pm))
		return nil
	}, attribute.String("payment_method.id", paymentMethodID))
	return out, err
}

func (g *StripeGateway) UpdatePaymentMethod(ctx context.Context, paymentMethodID string, update entities.PaymentMethodUpdate) (entities.PaymentMethod, error) {
	var out entities.PaymentMethod
	err := g.call(ctx, "update_payment_method", func(ctx context.Context) error {
		params := &stripe.PaymentMethodParams{}
		if update.HasExpiry() {
			params.Card = &stripe.PaymentMethodCardParams{
				ExpMonth: stripe.Int64(update.ExpMonth),
				ExpYear:  stripe.Int64(update.ExpYear),
			}
		}
		for k, v := range update.Metadata {
			params.AddMetadata(k, v)
		}
		params.Context = ctx
		pm, err := g.sc.PaymentMethods.Update(paymentMethodID, params)
		if err != nil {
			return err
		}
		out = toPaymentMethod(pm, rawOf(pm.LastResponse, pm))
		return nil
	}, attribute.String("payment_method.id", paymentMethodID))
	return out, err
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
	var out entities.PaymentIntent
	err := g.call(ctx, "create_payment_intent", func(ctx context.Context) error {
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(req.Amount),
			Currency: stripe.String(req.Currency),
		}
		if req.CustomerID != "" {
			params.Customer = stripe.String(req.CustomerID)
		}
		if req.PaymentMethodID != "" {
			params.PaymentMethod = stripe.String(req.PaymentMethodID)
		}
		if req.SetupFutureUsage != "" {
			params.SetupFutureUsage = stripe.String(req.SetupFutureUsage)
		}
		if req.AutomaticPaymentMethods {
			params.AutomaticPaymentMethods = &stripe.PaymentIntentAutomaticPaymentMethodsParams{Enabled: stripe.Bool(true)}
		}
		if req.Confirm {
			params.Confirm = stripe.Bool(true)
		}
		if req.OffSession {
			params.OffSession = stripe.Bool(true)
		}
		params.Context = ctx
		pi, err := g.sc.PaymentIntents.New(params)
		if err != nil {
			return err
		}
		out = toPaymentIntent(pi)
		return nil
	}, attribute.Int64("payment_intent.amount", req.Amount), attribute.String("payment_intent.currency", req.Currency))
	return out, err
}

func (g *StripeGateway) GetPaymentIntent(ctx context.Context, paymentIntentID string) (entities.PaymentIntent, error) {
	var out entities.PaymentIntent
	err := g.call(ctx, "get_payment_intent", func(ctx context.Context) error {
		params := &stripe.PaymentIntentParams{}
		params.Context = ctx
		pi, err := g.sc.PaymentIntents.Get(paymentIntentID, params)
		if err != nil {
			return err
		}
		out = toPaymentIntent(pi)
		return nil
	}, attribute.String("payment_intent.id", paymentIntentID))
	return out, err
}

func (g *StripeGateway) UpdatePaymentIntentMethod(ctx context.Context, paymentIntentID, paymentMethodID string) (entities.PaymentIntent, error) {
	var out entities.PaymentIntent
	err := g.call(ctx, "update_payment_intent", func(ctx context.Context) error {
		params := &stripe.PaymentIntentParams{PaymentMethod: stripe.String(paymentMethodID)}
		params.Context = ctx
		pi, err := g.sc.PaymentIntents.Update(paymentIntentID, params)
		if err != nil {
			return err
		}
		out = toPaymentIntent(pi)
		return nil
	}, attribute.String("payment_intent.id", paymentIntentID), attribute.String("payment_method.id", paymentMethodID))
	return out, err
}

func (g *StripeGateway) ConfirmPaymentIntent(ctx context.Context, paymentIntentID string) (entities.PaymentIntent, error) {
	var out entities.PaymentIntent
	err := g.call(ctx, "confirm_payment_intent", func(ctx context.Context) error {
		params := &stripe.PaymentIntentConfirmParams{}
		params.Context = ctx
		pi, err := g.sc.PaymentIntents.Confirm(paymentIntentID, params)
		if err != nil {
			return err
		}
		out = toPaymentIntent(pi)
		return nil
	}, attribute.String("payment_intent.id", paymentIntentID))
	return out, err
}

// call runs one provider request inside a client span, classifies its error and
// records the outcome.
func (g *StripeGateway) call(ctx context.Context, operation string, fn func(ctx context.Context) error, attrs ...attribute.KeyValue) error {
	ctx, span := g.tracer.Start(ctx, "stripe."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	if err == nil {
		g.metrics.Observe(operation, "ok", time.Since(start))
		return nil
	}

	gwErr := classifyStripeError(operation, err)
	g.metrics.Observe(operation, outcomeOf(gwErr), time.Since(start))
	span.RecordError(gwErr)
	span.SetStatus(codes.Error, gwErr.Message)
	if gwErr.StatusCode > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", gwErr.StatusCode))
	}
	log.Ctx(ctx).Warn().Err(err).
		Str("operation", operation).
		Int("provider_status", gwErr.StatusCode).
		Msg("[payment][gateway] provider call failed")
	return gwErr
}

// paymentMethodIter is satisfied by both the customer and payment method list iterators.
type paymentMethodIter interface {
	Next() bool
	Err() error
	Meta() *stripe.ListMeta
	PaymentMethod() *stripe.PaymentMethod
	PaymentMethodList() *stripe.PaymentMethodList
}

// collectPaymentMethods reads at most limit items. The iterator auto-paginates, so it
// must not be advanced past the cap.
func collectPaymentMethods(it paymentMethodIter, limit int64) (entities.PaymentMethodList, error) {
	out := entities.PaymentMethodList{Data: make([]entities.PaymentMethod, 0, limit)}
	var (
		page   *stripe.PaymentMethodList
		rawIDs map[string]json.RawMessage
	)
	for int64(len(out.Data)) < limit && it.Next() {
		if current := it.PaymentMethodList(); current != page {
			page = current
			rawIDs = pageItems(page)
		}
		pm := it.PaymentMethod()
		raw, ok := rawIDs[pm.ID]
		if !ok {
			raw = rawOf(nil, pm)
		}
		out.Data = append(out.Data, toPaymentMethod(pm, raw))
	}
	if err := it.Err(); err != nil {
		return entities.PaymentMethodList{}, err
	}
	if meta := it.Meta(); meta != nil && int64(len(out.Data)) >= limit {
		out.HasMore = meta.HasMore
	}
	return out, nil
}

func pageItems(page *stripe.PaymentMethodList) map[string]json.RawMessage {
	if page == nil || page.LastResponse == nil || len(page.LastResponse.RawJSON) == 0 {
		return nil
	}
	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(page.LastResponse.RawJSON, &body); err != nil {
		return nil
	}
	items := make(map[string]json.RawMessage, len(body.Data))
	for _, raw := range body.Data {
		var head struct {
			ID string `json:"id"`
		}
		if json.Unmarshal(raw, &head) == nil && head.ID != "" {
			items[head.ID] = raw
		}
	}
	return items
}

// rawOf prefers the body Stripe sent over a re-encoding of the decoded struct.
func rawOf(resp *stripe.APIResponse, v any) json.RawMessage {
	if resp != nil && len(resp.RawJSON) > 0 {
		return json.RawMessage(resp.RawJSON)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

func toCustomer(c *stripe.Customer) entities.Customer {
	out := entities.Customer{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Raw:   rawOf(c.LastResponse, c),
	}
	if c.InvoiceSettings != nil && c.InvoiceSettings.DefaultPaymentMethod != nil {
		out.DefaultPaymentMethodID = c.InvoiceSettings.DefaultPaymentMethod.ID
	}
	return out
}

func toPaymentMethod(pm *stripe.PaymentMethod, raw json.RawMessage) entities.PaymentMethod {
	out := entities.PaymentMethod{
		ID:       pm.ID,
		Type:     string(pm.Type),
		Metadata: pm.Metadata,
		Raw:      raw,
	}
	if pm.Customer != nil {
		out.CustomerID = pm.Customer.ID
	}
	if pm.Card != nil {
		out.Card = &entities.Card{
			Brand:    string(pm.Card.Brand),
			Last4:    pm.Card.Last4,
			ExpMonth: pm.Card.ExpMonth,
			ExpYear:  pm.Card.ExpYear,
		}
	}
	return out
}

func toPaymentIntent(pi *stripe.PaymentIntent) entities.PaymentIntent {
	out := entities.PaymentIntent{
		ID:           pi.ID,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       entities.PaymentIntentStatus(pi.Status),
		ClientSecret: pi.ClientSecret,
		Raw:          rawOf(pi.LastResponse, pi),
	}
	if pi.Customer != nil {
		out.CustomerID = pi.Customer.ID
	}
	if pi.PaymentMethod != nil {
		out.PaymentMethodID = pi.PaymentMethod.ID
	}
	return out
}
