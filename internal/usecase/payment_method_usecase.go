package usecase

import (
	"context"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// IPaymentMethodUseCase covers retrieval and mutation of payment methods.
//
// Multi-call sequences are compensated:
//   - AttachAndSetDefault detaches the method again when the default cannot be set,
//     unless the method was already linked to the customer before the call.
//   - SetDefaultAndUpdateExpiry restores the previous default when the expiry update fails.

type IPaymentMethodUseCase interface {
	Get(ctx context.Context, paymentMethodID string) (entities.PaymentMethod, error)
	Detach(ctx context.Context, paymentMethodID string) (entities.PaymentMethod, error)
	Attach(ctx context.Context, paymentMethodID, customerID string) (entities.PaymentMethod, error)
	AttachAndSetDefault(ctx context.Context, paymentMethodID, customerID string) (entities.Customer, error)
	Update(ctx context.Context, paymentMethodID string, update entities.PaymentMethodUpdate) (entities.PaymentMethod, error)
	SetDefaultAndUpdateExpiry(ctx context.Context, paymentMethodID, customerID string, update entities.PaymentMethodUpdate, setDefault bool) error
}

type PaymentMethodUseCase struct {
	gateway interfaces.IPaymentGateway
	journal operationJournal
}

var _ IPaymentMethodUseCase = (*PaymentMethodUseCase)(nil)

func NewPaymentMethodUseCase(gateway interfaces.IPaymentGateway, journalRepo interfaces.IOperationLogRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{gateway: gateway, journal: newOperationJournal(journalRepo)}
}

func (u *PaymentMethodUseCase) Get(ctx context.Context, paymentMethodID string) (entities.PaymentMethod, error) {
	paymentMethodID, err := requireID(paymentMethodID, ErrInvalidPaymentMethodID)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if u.gateway == nil {
		return entities.PaymentMethod{}, ErrPaymentGatewayNotConfigured
	}
	return u.gateway.GetPaymentMethod(ctx, paymentMethodID)
}

func (u *PaymentMethodUseCase) Detach(ctx context.Context, paymentMethodID string) (entities.PaymentMethod, error) {
	paymentMethodID, err := requireID(paymentMethodID, ErrInvalidPaymentMethodID)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if u.gateway == nil {
		return entities.PaymentMethod{}, ErrPaymentGatewayNotConfigured
	}

	pm, err := u.gateway.DetachPaymentMethod(ctx, paymentMethodID)
	u.journal.record(ctx, OpDetachPaymentMethod, paymentMethodID, nil, err)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("payment_method_id", paymentMethodID).Msg("[payment][usecase] detach failed")
		return entities.PaymentMethod{}, err
	}
	return pm, nil
}

func (u *PaymentMethodUseCase) Attach(ctx context.Context, paymentMethodID, customerID string) (entities.PaymentMethod, error) {
	paymentMethodID, customerID, err := u.validatePair(paymentMethodID, customerID)
	if err != nil {
		return entities.PaymentMethod{}, err
	}

	pm, err := u.gateway.AttachPaymentMethod(ctx, paymentMethodID, customerID)
	u.journal.record(ctx, OpAttachPaymentMethod, paymentMethodID, []string{customerID}, err)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Str("payment_method_id", paymentMethodID).
			Str("customer_id", customerID).
			Msg("[payment][usecase] attach failed")
		return entities.PaymentMethod{}, err
	}
	return pm, nil
}

func (u *PaymentMethodUseCase) AttachAndSetDefault(ctx context.Context, paymentMethodID, customerID string) (entities.Customer, error) {
	paymentMethodID, customerID, err := u.validatePair(paymentMethodID, customerID)
	if err != nil {
		return entities.Customer{}, err
	}

	// A method already linked to this customer must stay linked if the default cannot be set.
	before, err := u.gateway.GetPaymentMethod(ctx, paymentMethodID)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("payment_method_id", paymentMethodID).Msg("[payment][usecase] payment method lookup failed")
		return entities.Customer{}, err
	}
	if _, err := u.Attach(ctx, paymentMethodID, customerID); err != nil {
		return entities.Customer{}, err
	}

	var comp compensator
	if before.CustomerID != customerID {
		comp.push(OpDetachPaymentMethod, paymentMethodID, []string{customerID}, func(ctx context.Context) error {
			_, err := u.gateway.DetachPaymentMethod(ctx, paymentMethodID)
			return err
		})
	}

	customer, err := u.gateway.SetDefaultPaymentMethod(ctx, customerID, paymentMethodID)
	u.journal.record(ctx, OpSetDefaultMethod, customerID, []string{paymentMethodID}, err)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Str("payment_method_id", paymentMethodID).
			Str("customer_id", customerID).
			Bool("newly_attached", comp.pending()).
			Msg("[payment][usecase] set default failed")
		if comp.pending() && comp.rollback(ctx, u.journal) {
			u.journal.compensated(ctx, OpAttachPaymentMethod, paymentMethodID, []string{customerID}, err)
		}
		return entities.Customer{}, err
	}
	log.Ctx(ctx).Info().
		Str("payment_method_id", paymentMethodID).
		Str("customer_id", customerID).
		Msg("[payment][usecase] payment method attached as default")
	return customer, nil
}

func (u *PaymentMethodUseCase) Update(ctx context.Context, paymentMethodID string, update entities.PaymentMethodUpdate) (entities.PaymentMethod, error) {
	paymentMethodID, err := requireID(paymentMethodID, ErrInvalidPaymentMethodID)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	if err := validateExpiry(update); err != nil {
		return entities.PaymentMethod{}, err
	}
	if !update.HasExpiry() && len(update.Metadata) == 0 {
		return entities.PaymentMethod{}, ErrNothingToUpdate
	}
	if u.gateway == nil {
		return entities.PaymentMethod{}, ErrPaymentGatewayNotConfigured
	}

	pm, err := u.gateway.UpdatePaymentMethod(ctx, paymentMethodID, update)
	u.journal.record(ctx, OpUpdatePaymentMethod, paymentMethodID, nil, err)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	return pm, nil
}

func (u *PaymentMethodUseCase) SetDefaultAndUpdateExpiry(ctx context.Context, paymentMethodID, customerID string, update entities.PaymentMethodUpdate, setDefault bool) error {
	paymentMethodID, err := requireID(paymentMethodID, ErrInvalidPaymentMethodID)
	if err != nil {
		return err
	}
	if err := validateExpiry(update); err != nil {
		return err
	}
	if !setDefault && !update.HasExpiry() {
		return ErrNothingToUpdate
	}
	if setDefault {
		if customerID, err = requireID(customerID, ErrInvalidCustomerID); err != nil {
			return err
		}
	}
	if u.gateway == nil {
		return ErrPaymentGatewayNotConfigured
	}

	var comp compensator
	if setDefault {
		// The previous default is only needed to undo the change when a second call follows.
		if update.HasExpiry() {
			before, err := u.gateway.GetCustomer(ctx, customerID)
			if err != nil {
				log.Ctx(ctx).Warn().Err(err).Str("customer_id", customerID).Msg("[payment][usecase] customer lookup failed")
				return err
			}
			previous := before.DefaultPaymentMethodID
			if previous != paymentMethodID {
				var related []string
				if previous != "" {
					related = []string{previous}
				}
				comp.push(OpSetDefaultMethod, customerID, related, func(ctx context.Context) error {
					_, err := u.gateway.SetDefaultPaymentMethod(ctx, customerID, previous)
					return err
				})
			}
		}

		_, err := u.gateway.SetDefaultPaymentMethod(ctx, customerID, paymentMethodID)
		u.journal.record(ctx, OpSetDefaultMethod, customerID, []string{paymentMethodID}, err)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).
				Str("payment_method_id", paymentMethodID).
				Str("customer_id", customerID).
				Msg("[payment][usecase] set default failed")
			return err
		}
	}

	if update.HasExpiry() {
		expiryOnly := entities.PaymentMethodUpdate{ExpMonth: update.ExpMonth, ExpYear: update.ExpYear}
		_, err := u.gateway.UpdatePaymentMethod(ctx, paymentMethodID, expiryOnly)
		u.journal.record(ctx, OpUpdatePaymentMethod, paymentMethodID, nil, err)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("payment_method_id", paymentMethodID).Msg("[payment][usecase] expiry update failed")
			if comp.pending() && comp.rollback(ctx, u.journal) {
				u.journal.compensated(ctx, OpSetDefaultMethod, customerID, []string{paymentMethodID}, err)
			}
			return err
		}
	}
	return nil
}

func (u *PaymentMethodUseCase) validatePair(paymentMethodID, customerID string) (string, string, error) {
	paymentMethodID, err := requireID(paymentMethodID, ErrInvalidPaymentMethodID)
	if err != nil {
		return "", "", err
	}
	customerID, err = requireID(customerID, ErrInvalidCustomerID)
	if err != nil {
		return "", "", err
	}
	if u.gateway == nil {
		return "", "", ErrPaymentGatewayNotConfigured
	}
	return paymentMethodID, customerID, nil
}

func validateExpiry(update entities.PaymentMethodUpdate) error {
	if (update.ExpMonth > 0) != (update.ExpYear > 0) {
		return ErrInvalidExpiry
	}
	if update.ExpMonth > 12 || update.ExpMonth < 0 || update.ExpYear < 0 {
		return ErrInvalidExpiry
	}
	return nil
}
