package usecase

import (
	"context"
	"strings"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// DefaultListLimit is the provider page cap used when none is configured.
const DefaultListLimit int64 = 10

// ICustomerUseCase exposes the customer-centric routes:
//   - create customer
//   - list a customer's payment methods (capped page)
//   - list card methods flagged against the customer's default

type ICustomerUseCase interface {
	CreateCustomer(ctx context.Context, name, email string) (entities.Customer, error)
	ListPaymentMethods(ctx context.Context, customerID string) (entities.PaymentMethodList, error)
	ListCardPaymentMethodsWithDefault(ctx context.Context, customerID string) ([]entities.AnnotatedPaymentMethod, error)
}

type CustomerUseCase struct {
	gateway   interfaces.IPaymentGateway
	journal   operationJournal
	listLimit int64
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(gateway interfaces.IPaymentGateway, journalRepo interfaces.IOperationLogRepository, listLimit int64) *CustomerUseCase {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	return &CustomerUseCase{gateway: gateway, journal: newOperationJournal(journalRepo), listLimit: listLimit}
}

func (u *CustomerUseCase) CreateCustomer(ctx context.Context, name, email string) (entities.Customer, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.Customer{}, ErrInvalidEmail
	}
	if u.gateway == nil {
		return entities.Customer{}, ErrPaymentGatewayNotConfigured
	}

	c, err := u.gateway.CreateCustomer(ctx, strings.TrimSpace(name), email)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("[payment][usecase] create customer failed")
		return entities.Customer{}, err
	}
	u.journal.record(ctx, OpCreateCustomer, c.ID, nil, nil)
	log.Ctx(ctx).Info().Str("customer_id", c.ID).Msg("[payment][usecase] customer created")
	return c, nil
}

func (u *CustomerUseCase) ListPaymentMethods(ctx context.Context, customerID string) (entities.PaymentMethodList, error) {
	customerID, err := requireID(customerID, ErrInvalidCustomerID)
	if err != nil {
		return entities.PaymentMethodList{}, err
	}
	if u.gateway == nil {
		return entities.PaymentMethodList{}, ErrPaymentGatewayNotConfigured
	}

	list, err := u.gateway.ListCustomerPaymentMethods(ctx, customerID, u.listLimit)
	if err != nil {
		return entities.PaymentMethodList{}, err
	}
	return capList(list, u.listLimit), nil
}

// ListCardPaymentMethodsWithDefault flags every card method with IsDefault when its id
// equals the customer's invoice default payment method.
func (u *CustomerUseCase) ListCardPaymentMethodsWithDefault(ctx context.Context, customerID string) ([]entities.AnnotatedPaymentMethod, error) {
	customerID, err := requireID(customerID, ErrInvalidCustomerID)
	if err != nil {
		return nil, err
	}
	if u.gateway == nil {
		return nil, ErrPaymentGatewayNotConfigured
	}

	customer, err := u.gateway.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	list, err := u.gateway.ListPaymentMethods(ctx, customerID, entities.PaymentMethodTypeCard, u.listLimit)
	if err != nil {
		return nil, err
	}
	list = capList(list, u.listLimit)

	out := make([]entities.AnnotatedPaymentMethod, 0, len(list.Data))
	for _, pm := range list.Data {
		out = append(out, entities.AnnotatedPaymentMethod{
			PaymentMethod: pm,
			IsDefault:     customer.DefaultPaymentMethodID != "" && pm.ID == customer.DefaultPaymentMethodID,
		})
	}
	return out, nil
}

func capList(list entities.PaymentMethodList, limit int64) entities.PaymentMethodList {
	if int64(len(list.Data)) > limit {
		list.Data = list.Data[:limit]
		list.HasMore = true
	}
	return list
}
