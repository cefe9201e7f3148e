package entities

import "encoding/json"

// PaymentIntentStatus follows the provider lifecycle.
type PaymentIntentStatus string

const (
	PaymentIntentStatusRequiresPaymentMethod PaymentIntentStatus = "requires_payment_method"
	PaymentIntentStatusRequiresConfirmation  PaymentIntentStatus = "requires_confirmation"
	PaymentIntentStatusRequiresAction        PaymentIntentStatus = "requires_action"
	PaymentIntentStatusProcessing            PaymentIntentStatus = "processing"
	PaymentIntentStatusRequiresCapture       PaymentIntentStatus = "requires_capture"
	PaymentIntentStatusCanceled              PaymentIntentStatus = "canceled"
	PaymentIntentStatusSucceeded             PaymentIntentStatus = "succeeded"
)

// Settled reports whether funds are captured or authorised for capture.
func (s PaymentIntentStatus) Settled() bool {
	return s == PaymentIntentStatusSucceeded || s == PaymentIntentStatusRequiresCapture
}

type PaymentIntent struct {
	ID              string              `json:"id"`
	Amount          int64               `json:"amount"`
	Currency        string              `json:"currency"`
	CustomerID      string              `json:"customer,omitempty"`
	PaymentMethodID string              `json:"payment_method,omitempty"`
	Status          PaymentIntentStatus `json:"status"`
	ClientSecret    string              `json:"client_secret,omitempty"`
	Raw             json.RawMessage     `json:"-"`
}

// PaymentIntentRequest describes an intent to be created at the provider.
//
// SetupFutureUsage is forwarded verbatim ("off_session" / "on_session" / empty).

type PaymentIntentRequest struct {
	Amount                  int64
	Currency                string
	CustomerID              string
	PaymentMethodID         string
	SetupFutureUsage        string
	AutomaticPaymentMethods bool
	Confirm                 bool
	OffSession              bool
}
