package interfaces

import (
	"errors"
	"fmt"
)

// Provider failure kinds. A *GatewayError matches exactly one of them with errors.Is.
var (
	ErrGatewayNotFound    = errors.New("payment gateway resource not found")
	ErrGatewayRejected    = errors.New("payment gateway rejected the request")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// GatewayError is a classified provider failure.
//
// Message is the provider's own message and is what callers get to see.
type GatewayError struct {
	Kind       error
	Operation  string
	Message    string
	StatusCode int
	Err        error
}

func NewGatewayError(kind error, operation, message string, statusCode int, err error) *GatewayError {
	return &GatewayError{Kind: kind, Operation: operation, Message: message, StatusCode: statusCode, Err: err}
}

func (e *GatewayError) Error() string {
	if e.Operation == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

func (e *GatewayError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// GatewayMessage returns the provider message carried by err, if any.
func GatewayMessage(err error) (string, bool) {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) && gwErr.Message != "" {
		return gwErr.Message, true
	}
	return "", false
}
