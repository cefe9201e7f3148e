package usecase

import (
	"context"
	"strings"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

const setupFutureUsageOffSession = "off_session"

// IPaymentIntentUseCase covers payment intent creation and confirmation.
//
// UpdateMethodAndConfirm is deliberately not compensated: a failed confirm leaves the
// intent in a state the provider lets the caller retry from (requires_payment_method or
// requires_action), and the method swap is visible on the intent itself.

type IPaymentIntentUseCase interface {
	CreateIntent(ctx context.Context, amount int64, currency, customerID string) (entities.PaymentIntent, error)
	Get(ctx context.Context, paymentIntentID string) (entities.PaymentIntent, error)
	UpdateMethodAndConfirm(ctx context.Context, paymentIntentID, paymentMethodID string) (entities.PaymentIntent, error)
	CreateAndConfirmOffSession(ctx context.Context, paymentMethodID string, amount int64, currency, customerID string) (entities.PaymentIntent, error)
}

type PaymentIntentUseCase struct {
	gateway interfaces.IPaymentGateway
	journal operationJournal
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

func NewPaymentIntentUseCase(gateway interfaces.IPaymentGateway, journalRepo interfaces.IOperationLogRepository) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{gateway: gateway, journal: newOperationJournal(journalRepo)}
}

// CreateIntent opens an intent saved for off-session reuse with automatic payment
// method selection. The customer is optional.
func (u *PaymentIntentUseCase) CreateIntent(ctx context.Context, amount int64, currency, customerID string) (entities.PaymentIntent, error) {
	if amount <= 0 {
		return entities.PaymentIntent{}, ErrInvalidAmount
	}
	cur, ok := normalizeCurrency(currency)
	if !ok {
		return entities.PaymentIntent{}, ErrInvalidCurrency
	}
	if u.gateway == nil {
		return entities.PaymentIntent{}, ErrPaymentGatewayNotConfigured
	}

	req := entities.PaymentIntentRequest{
		Amount:                  amount,
		Currency:                cur,
		CustomerID:              strings.TrimSpace(customerID),
		SetupFutureUsage:        setupFutureUsageOffSession,
		AutomaticPaymentMethods: true,
	}
	pi, err := u.gateway.CreatePaymentIntent(ctx, req)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Int64("amount", amount).Str("currency", cur).Msg("[payment][usecase] create payment intent failed")
		return entities.PaymentIntent{}, err
	}
	u.journal.record(ctx, OpCreatePaymentIntent, pi.ID, relatedIDs(req.CustomerID), nil)
	log.Ctx(ctx).Info().Str("payment_intent_id", pi.ID).Str("status", string(pi.Status)).Msg("[payment][usecase] payment intent created")
	return pi, nil
}

func (u *PaymentIntentUseCase) Get(ctx context.Context, paymentIntentID string) (entities.PaymentIntent, error) {
	paymentIntentID, err := requireID(paymentIntentID, ErrInvalidPaymentIntentID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if u.gateway == nil {
		return entities.PaymentIntent{}, ErrPaymentGatewayNotConfigured
	}
	return u.gateway.GetPaymentIntent(ctx, paymentIntentID)
}

func (u *PaymentIntentUseCase) UpdateMethodAndConfirm(ctx context.Context, paymentIntentID, paymentMethodID string) (entities.PaymentIntent, error) {
	paymentIntentID, err := requireID(paymentIntentID, ErrInvalidPaymentIntentID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	paymentMethodID, err = requireID(paymentMethodID, ErrInvalidPaymentMethodID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if u.gateway == nil {
		return entities.PaymentIntent{}, ErrPaymentGatewayNotConfigured
	}

	_, err = u.gateway.UpdatePaymentIntentMethod(ctx, paymentIntentID, paymentMethodID)
	u.journal.record(ctx, OpUpdatePaymentIntent, paymentIntentID, []string{paymentMethodID}, err)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	confirmed, err := u.gateway.ConfirmPaymentIntent(ctx, paymentIntentID)
	u.journal.record(ctx, OpConfirmPaymentIntent, paymentIntentID, []string{paymentMethodID}, err)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("payment_intent_id", paymentIntentID).Msg("[payment][usecase] confirm failed after method update")
		return entities.PaymentIntent{}, err
	}
	log.Ctx(ctx).Info().Str("payment_intent_id", paymentIntentID).Str("status", string(confirmed.Status)).Msg("[payment][usecase] payment intent confirmed")
	return confirmed, nil
}

func (u *PaymentIntentUseCase) CreateAndConfirmOffSession(ctx context.Context, paymentMethodID string, amount int64, currency, customerID string) (entities.PaymentIntent, error) {
	paymentMethodID, err := requireID(paymentMethodID, ErrInvalidPaymentMethodID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	customerID, err = requireID(customerID, ErrInvalidCustomerID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if amount <= 0 {
		return entities.PaymentIntent{}, ErrInvalidAmount
	}
	cur, ok := normalizeCurrency(currency)
	if !ok {
		return entities.PaymentIntent{}, ErrInvalidCurrency
	}
	if u.gateway == nil {
		return entities.PaymentIntent{}, ErrPaymentGatewayNotConfigured
	}

	pi, err := u.gateway.CreatePaymentIntent(ctx, entities.PaymentIntentRequest{
		Amount:          amount,
		Currency:        cur,
		CustomerID:      customerID,
		PaymentMethodID: paymentMethodID,
		Confirm:         true,
		OffSession:      true,
	})
	if err != nil {
		u.journal.record(ctx, OpCreateOffSessionCharge, paymentMethodID, []string{customerID}, err)
		log.Ctx(ctx).Warn().Err(err).Str("customer_id", customerID).Msg("[payment][usecase] off-session payment failed")
		return entities.PaymentIntent{}, err
	}
	u.journal.record(ctx, OpCreateOffSessionCharge, pi.ID, []string{customerID, paymentMethodID}, nil)
	log.Ctx(ctx).Info().Str("payment_intent_id", pi.ID).Str("status", string(pi.Status)).Msg("[payment][usecase] off-session payment created")
	return pi, nil
}

func relatedIDs(ids ...string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
