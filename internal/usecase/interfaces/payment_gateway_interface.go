package interfaces

import (
	"context"

	"payment_gateway/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Stripe).
//
// Every method maps to exactly one remote call. Implementations return *GatewayError
// for provider failures so callers can classify them without knowing the SDK.
type IPaymentGateway interface {
	CreateCustomer(ctx context.Context, name, email string) (entities.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (entities.Customer, error)
	SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) (entities.Customer, error)
	ListCustomerPaymentMethods(ctx context.Context, customerID string, limit int64) (entities.PaymentMethodList, error)

	ListPaymentMethods(ctx context.Context, customerID, methodType string, limit int64) (entities.PaymentMethodList, error)
	GetPaymentMethod(ctx context.Context, paymentMethodID string) (entities.PaymentMethod, error)
	AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) (entities.PaymentMethod, error)
	DetachPaymentMethod(ctx context.Context, paymentMethodID string) (entities.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, paymentMethodID string, update entities.PaymentMethodUpdate) (entities.PaymentMethod, error)

	CreatePaymentIntent(ctx context.Context, req entities.PaymentIntentRequest) (entities.PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, paymentIntentID string) (entities.PaymentIntent, error)
	UpdatePaymentIntentMethod(ctx context.Context, paymentIntentID, paymentMethodID string) (entities.PaymentIntent, error)
	ConfirmPaymentIntent(ctx context.Context, paymentIntentID string) (entities.PaymentIntent, error)
}
