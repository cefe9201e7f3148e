package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MockGateway is an in-memory stand-in for Stripe used when PAYMENT_GATEWAY_MOCK is on.
//
// Test tokens named pm_card_<brand> exist implicitly, the way Stripe's do. Tokens whose
// name contains "Declined" attach fine but fail on confirmation.
type MockGateway struct {
	mu        sync.Mutex
	seq       int64
	customers map[string]*mockCustomer
	methods   map[string]*mockPaymentMethod
	intents   map[string]*mockPaymentIntent
}

type mockCustomer struct {
	id, name, email string
	defaultMethod   string
}

type mockPaymentMethod struct {
	seq      int64
	id       string
	customer string
	card     entities.Card
	metadata map[string]string
}

type mockPaymentIntent struct {
	id               string
	amount           int64
	currency         string
	customer         string
	paymentMethod    string
	status           entities.PaymentIntentStatus
	clientSecret     string
	setupFutureUsage string
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	log.Info().Msg("[payment][gateway] mock mode enabled")
	return &MockGateway{
		customers: map[string]*mockCustomer{},
		methods:   map[string]*mockPaymentMethod{},
		intents:   map[string]*mockPaymentIntent{},
	}
}

func (g *MockGateway) CreateCustomer(ctx context.Context, name, email string) (entities.Customer, error) {
	if err := ctxErr(ctx, "create_customer"); err != nil {
		return entities.Customer{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	c := &mockCustomer{id: newMockID("cus"), name: name, email: email}
	g.customers[c.id] = c
	return c.entity(), nil
}

func (g *MockGateway) GetCustomer(ctx context.Context, customerID string) (entities.Customer, error) {
	if err := ctxErr(ctx, "get_customer"); err != nil {
		return entities.Customer{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	c, err := g.customer("get_customer", customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	return c.entity(), nil
}

func (g *MockGateway) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) (entities.Customer, error) {
	const op = "set_default_payment_method"
	if err := ctxErr(ctx, op); err != nil {
		return entities.Customer{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	c, err := g.customer(op, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if paymentMethodID != "" {
		pm, ok := g.methods[paymentMethodID]
		if !ok || pm.customer != customerID {
			return entities.Customer{}, rejectedf(op, "The customer does not have a payment method with the ID %s. The payment method must be attached to the customer.", paymentMethodID)
		}
	}
	c.defaultMethod = paymentMethodID
	return c.entity(), nil
}

func (g *MockGateway) ListCustomerPaymentMethods(ctx context.Context, customerID string, limit int64) (entities.PaymentMethodList, error) {
	return g.ListPaymentMethods(ctx, customerID, "", limit)
}

func (g *MockGateway) ListPaymentMethods(ctx context.Context, customerID, methodType string, limit int64) (entities.PaymentMethodList, error) {
	const op = "list_payment_methods"
	if err := ctxErr(ctx, op); err != nil {
		return entities.PaymentMethodList{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.customer(op, customerID); err != nil {
		return entities.PaymentMethodList{}, err
	}
	if methodType != "" && methodType != entities.PaymentMethodTypeCard {
		return entities.PaymentMethodList{Data: []entities.PaymentMethod{}}, nil
	}

	attached := make([]*mockPaymentMethod, 0)
	for _, pm := range g.methods {
		if pm.customer == customerID {
			attached = append(attached, pm)
		}
	}
	// Newest first, like the provider.
	sort.Slice(attached, func(i, j int) bool { return attached[i].seq > attached[j].seq })

	out := entities.PaymentMethodList{Data: make([]entities.PaymentMethod, 0, len(attached))}
	for i, pm := range attached {
		if limit > 0 && int64(i) >= limit {
			out.HasMore = true
			break
		}
		out.Data = append(out.Data, pm.entity())
	}
	return out, nil
}

func (g *MockGateway) GetPaymentMethod(ctx context.Context, paymentMethodID string) (entities.PaymentMethod, error) {
	const op = "get_payment_method"
	if err := ctxErr(ctx, op); err != nil {
		return entities.PaymentMethod{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	pm, err := g.paymentMethod(op, paymentMethodID)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	return pm.entity(), nil
}

func (g *MockGateway) AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) (entities.PaymentMethod, error) {
	const op = "attach_payment_method"
	if err := ctxErr(ctx, op); err != nil {
		return entities.PaymentMethod{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.customer(op, customerID); err != nil {
		return entities.PaymentMethod{}, err
	}
	pm, err := g.paymentMethod(op, paymentMethodID)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if pm.customer != "" && pm.customer != customerID {
		return entities.PaymentMethod{}, rejectedf(op, "The payment method you provided has already been attached to a customer.")
	}
	pm.customer = customerID
	return pm.entity(), nil
}

func (g *MockGateway) DetachPaymentMethod(ctx context.Context, paymentMethodID string) (entities.PaymentMethod, error) {
	const op = "detach_payment_method"
	if err := ctxErr(ctx, op); err != nil {
		return entities.PaymentMethod{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	pm, err := g.paymentMethod(op, paymentMethodID)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if pm.customer == "" {
		return entities.PaymentMethod{}, rejectedf(op, "The payment method you provided is not attached to a customer so detachment is impossible.")
	}
	if c, ok := g.customers[pm.customer]; ok && c.defaultMethod == pm.id {
		c.defaultMethod = ""
	}
	pm.customer = ""
	return pm.entity(), nil
}

func (g *MockGateway) UpdatePaymentMethod(ctx context.Context, paymentMethodID string, update entities.PaymentMethodUpdate) (entities.PaymentMethod, error) {
	const op = "update_payment_method"
	if err := ctxErr(ctx, op); err != nil {
		return entities.PaymentMethod{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	pm, err := g.paymentMethod(op, paymentMethodID)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if update.HasExpiry() {
		pm.card.ExpMonth = update.ExpMonth
		pm.card.ExpYear = update.ExpYear
	}
	for k, v := range update.Metadata {
		if pm.metadata == nil {
			pm.metadata = map[string]string{}
		}
		pm.metadata[k] = v
	}
	return pm.entity(), nil
}

func (g *MockGateway) CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error) {
	const op = "create_payment_intent"
	if err := ctxErr(ctx, op); err != nil {
		return entities.PaymentIntent{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if req.CustomerID != "" {
		if _, err := g.customer(op, req.CustomerID); err != nil {
			return entities.PaymentIntent{}, err
		}
	}
	pi := &mockPaymentIntent{
		id:               newMockID("pi"),
		amount:           req.Amount,
		currency:         req.Currency,
		customer:         req.CustomerID,
		setupFutureUsage: req.SetupFutureUsage,
		status:           entities.PaymentIntentStatusRequiresPaymentMethod,
	}
	pi.clientSecret = pi.id + "_secret_" + newMockID("")[1:]
	if req.PaymentMethodID != "" {
		if _, err := g.paymentMethod(op, req.PaymentMethodID); err != nil {
			return entities.PaymentIntent{}, err
		}
		pi.paymentMethod = req.PaymentMethodID
		pi.status = entities.PaymentIntentStatusRequiresConfirmation
	}
	g.intents[pi.id] = pi

	if req.Confirm {
		if err := g.confirm(op, pi); err != nil {
			return entities.PaymentIntent{}, err
		}
	}
	return pi.entity(), nil
}

func (g *MockGateway) GetPaymentIntent(ctx context.Context, paymentIntentID string) (entities.PaymentIntent, error) {
	const op = "get_payment_intent"
	if err := ctxErr(ctx, op); err != nil {
		return entities.PaymentIntent{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	pi, err := g.intent(op, paymentIntentID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	return pi.entity(), nil
}

func (g *MockGateway) UpdatePaymentIntentMethod(ctx context.Context, paymentIntentID, paymentMethodID string) (entities.PaymentIntent, error) {
	const op = "update_payment_intent"
	if err := ctxErr(ctx, op); err != nil {
		return entities.PaymentIntent{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	pi, err := g.intent(op, paymentIntentID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if pi.status.Settled() || pi.status == entities.PaymentIntentStatusCanceled {
		return entities.PaymentIntent{}, rejectedf(op, "You cannot update this PaymentIntent because it has a status of %s.", pi.status)
	}
	if _, err := g.paymentMethod(op, paymentMethodID); err != nil {
		return entities.PaymentIntent{}, err
	}
	pi.paymentMethod = paymentMethodID
	pi.status = entities.PaymentIntentStatusRequiresConfirmation
	return pi.entity(), nil
}

func (g *MockGateway) ConfirmPaymentIntent(ctx context.Context, paymentIntentID string) (entities.PaymentIntent, error) {
	const op = "confirm_payment_intent"
	if err := ctxErr(ctx, op); err != nil {
		return entities.PaymentIntent{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	pi, err := g.intent(op, paymentIntentID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if err := g.confirm(op, pi); err != nil {
		return entities.PaymentIntent{}, err
	}
	return pi.entity(), nil
}

// confirm must be called with g.mu held.
func (g *MockGateway) confirm(op string, pi *mockPaymentIntent) error {
	if pi.status.Settled() || pi.status == entities.PaymentIntentStatusCanceled {
		return rejectedf(op, "This PaymentIntent's status is %s, but it must be one of requires_payment_method, requires_confirmation, or requires_action.", pi.status)
	}
	if pi.paymentMethod == "" {
		return rejectedf(op, "You cannot confirm this PaymentIntent because it's missing a payment method.")
	}
	pm := g.methods[pi.paymentMethod]
	if pi.customer != "" && pm.customer != pi.customer {
		return rejectedf(op, "The provided PaymentMethod %s does not belong to the Customer %s.", pm.id, pi.customer)
	}
	if strings.Contains(pm.id, "Declined") {
		pi.status = entities.PaymentIntentStatusRequiresPaymentMethod
		return interfaces.NewGatewayError(interfaces.ErrGatewayRejected, op, "Your card was declined.", http.StatusPaymentRequired, nil)
	}
	pi.status = entities.PaymentIntentStatusSucceeded
	return nil
}

func (g *MockGateway) customer(op, id string) (*mockCustomer, error) {
	c, ok := g.customers[id]
	if !ok {
		return nil, notFoundf(op, "No such customer: '%s'", id)
	}
	return c, nil
}

// paymentMethod must be called with g.mu held. Test tokens are created on first use.
func (g *MockGateway) paymentMethod(op, id string) (*mockPaymentMethod, error) {
	if pm, ok := g.methods[id]; ok {
		return pm, nil
	}
	brand, ok := strings.CutPrefix(id, "pm_card_")
	if !ok || brand == "" {
		return nil, notFoundf(op, "No such PaymentMethod: '%s'", id)
	}
	g.seq++
	pm := &mockPaymentMethod{
		seq: g.seq,
		id:  id,
		card: entities.Card{
			Brand:    strings.ToLower(strings.SplitN(brand, "_", 2)[0]),
			Last4:    "4242",
			ExpMonth: 12,
			ExpYear:  2034,
		},
	}
	g.methods[id] = pm
	return pm, nil
}

func (g *MockGateway) intent(op, id string) (*mockPaymentIntent, error) {
	pi, ok := g.intents[id]
	if !ok {
		return nil, notFoundf(op, "No such payment_intent: '%s'", id)
	}
	return pi, nil
}

func (c *mockCustomer) entity() entities.Customer {
	out := entities.Customer{ID: c.id, Name: c.name, Email: c.email, DefaultPaymentMethodID: c.defaultMethod}
	var defaultMethod any
	if c.defaultMethod != "" {
		defaultMethod = c.defaultMethod
	}
	out.Raw = mustRaw(map[string]any{
		"id":               c.id,
		"object":           "customer",
		"name":             nullable(c.name),
		"email":            nullable(c.email),
		"invoice_settings": map[string]any{"default_payment_method": defaultMethod},
	})
	return out
}

func (pm *mockPaymentMethod) entity() entities.PaymentMethod {
	card := pm.card
	metadata := make(map[string]string, len(pm.metadata))
	for k, v := range pm.metadata {
		metadata[k] = v
	}
	out := entities.PaymentMethod{
		ID:         pm.id,
		Type:       entities.PaymentMethodTypeCard,
		CustomerID: pm.customer,
		Card:       &card,
		Metadata:   metadata,
	}
	out.Raw = mustRaw(map[string]any{
		"id":       pm.id,
		"object":   "payment_method",
		"type":     entities.PaymentMethodTypeCard,
		"customer": nullable(pm.customer),
		"card": map[string]any{
			"brand":     card.Brand,
			"last4":     card.Last4,
			"exp_month": card.ExpMonth,
			"exp_year":  card.ExpYear,
		},
		"metadata": metadata,
	})
	return out
}

func (pi *mockPaymentIntent) entity() entities.PaymentIntent {
	out := entities.PaymentIntent{
		ID:              pi.id,
		Amount:          pi.amount,
		Currency:        pi.currency,
		CustomerID:      pi.customer,
		PaymentMethodID: pi.paymentMethod,
		Status:          pi.status,
		ClientSecret:    pi.clientSecret,
	}
	out.Raw = mustRaw(map[string]any{
		"id":                 pi.id,
		"object":             "payment_intent",
		"amount":             pi.amount,
		"currency":           pi.currency,
		"customer":           nullable(pi.customer),
		"payment_method":     nullable(pi.paymentMethod),
		"status":             pi.status,
		"client_secret":      pi.clientSecret,
		"setup_future_usage": nullable(pi.setupFutureUsage),
	})
	return out
}

func ctxErr(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return interfaces.NewGatewayError(interfaces.ErrGatewayUnavailable, op, err.Error(), 0, err)
	}
	return nil
}

func notFoundf(op, format string, args ...any) error {
	return interfaces.NewGatewayError(interfaces.ErrGatewayNotFound, op, fmt.Sprintf(format, args...), http.StatusNotFound, nil)
}

func rejectedf(op, format string, args ...any) error {
	return interfaces.NewGatewayError(interfaces.ErrGatewayRejected, op, fmt.Sprintf(format, args...), http.StatusBadRequest, nil)
}

func newMockID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func mustRaw(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
