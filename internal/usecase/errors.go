package usecase

import (
	"errors"
	"fmt"

	"payment_gateway/internal/usecase/interfaces"
)

// ErrValidation is the root of every locally rejected input.
var ErrValidation = errors.New("validation failed")

var (
	ErrInvalidCustomerID      = fmt.Errorf("%w: customer id is required", ErrValidation)
	ErrInvalidPaymentMethodID = fmt.Errorf("%w: payment method id is required", ErrValidation)
	ErrInvalidPaymentIntentID = fmt.Errorf("%w: payment intent id is required", ErrValidation)
	ErrInvalidEmail           = fmt.Errorf("%w: email is required", ErrValidation)
	ErrInvalidAmount          = fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	ErrInvalidCurrency        = fmt.Errorf("%w: currency must be a 3-letter ISO code", ErrValidation)
	ErrInvalidExpiry          = fmt.Errorf("%w: exp_month and exp_year must be provided together", ErrValidation)
	ErrNothingToUpdate        = fmt.Errorf("%w: nothing to update", ErrValidation)
	ErrInvalidResourceID      = fmt.Errorf("%w: resource id is required", ErrValidation)
)

var (
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrOperationJournalDisabled    = errors.New("operation journal disabled")

	ErrPaymentGatewayNotFound    = interfaces.ErrGatewayNotFound
	ErrPaymentGatewayRejected    = interfaces.ErrGatewayRejected
	ErrPaymentGatewayUnavailable = interfaces.ErrGatewayUnavailable
)
