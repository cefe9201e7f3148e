package payments

import (
	"context"
	"errors"
	"net/http"

	"payment_gateway/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v82"
)

const unreachableMessage = "payment provider unreachable"

// classifyStripeError maps an SDK failure onto one gateway error kind.
//
//   - 404 or resource_missing: not found
//   - 400, 402 or a card error: rejected
//   - everything else (auth, rate limit, 5xx, transport): unavailable
func classifyStripeError(operation string, err error) *interfaces.GatewayError {
	var gwErr *interfaces.GatewayError
	if errors.As(err, &gwErr) {
		return gwErr
	}

	var se *stripe.Error
	if !errors.As(err, &se) {
		msg := unreachableMessage
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			msg = err.Error()
		}
		return interfaces.NewGatewayError(interfaces.ErrGatewayUnavailable, operation, msg, 0, err)
	}

	msg := se.Msg
	if msg == "" {
		msg = http.StatusText(se.HTTPStatusCode)
	}
	if msg == "" {
		msg = unreachableMessage
	}

	kind := interfaces.ErrGatewayUnavailable
	switch {
	case se.HTTPStatusCode == http.StatusNotFound || se.Code == stripe.ErrorCodeResourceMissing:
		kind = interfaces.ErrGatewayNotFound
	case se.Type == stripe.ErrorTypeCard,
		se.HTTPStatusCode == http.StatusBadRequest,
		se.HTTPStatusCode == http.StatusPaymentRequired:
		kind = interfaces.ErrGatewayRejected
	}
	return interfaces.NewGatewayError(kind, operation, msg, se.HTTPStatusCode, err)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, interfaces.ErrGatewayNotFound):
		return "not_found"
	case errors.Is(err, interfaces.ErrGatewayRejected):
		return "rejected"
	default:
		return "unavailable"
	}
}
