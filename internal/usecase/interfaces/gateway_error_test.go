package interfaces

import (
	"errors"
	"fmt"
	"testing"
)

func TestGatewayError(t *testing.T) {
	cause := errors.New("http 404")
	err := NewGatewayError(ErrGatewayNotFound, "get_payment_method", "No such PaymentMethod: 'pm_x'", 404, cause)

	if !errors.Is(err, ErrGatewayNotFound) {
		t.Fatalf("expected not-found kind")
	}
	if errors.Is(err, ErrGatewayRejected) || errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("error must match a single kind")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
	if err.Error() != "get_payment_method: No such PaymentMethod: 'pm_x'" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	msg, ok := GatewayMessage(fmt.Errorf("wrapped: %w", err))
	if !ok || msg != "No such PaymentMethod: 'pm_x'" {
		t.Fatalf("unexpected gateway message %q ok=%v", msg, ok)
	}
	if _, ok := GatewayMessage(cause); ok {
		t.Fatalf("plain errors carry no gateway message")
	}

	noOp := NewGatewayError(ErrGatewayUnavailable, "", "timeout", 0, nil)
	if noOp.Error() != "timeout" || !errors.Is(noOp, ErrGatewayUnavailable) {
		t.Fatalf("unexpected error without operation: %v", noOp)
	}
}
