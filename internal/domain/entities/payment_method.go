package entities

import "encoding/json"

const PaymentMethodTypeCard = "card"

type Card struct {
	Brand    string `json:"brand,omitempty"`
	Last4    string `json:"last4,omitempty"`
	ExpMonth int64  `json:"exp_month,omitempty"`
	ExpYear  int64  `json:"exp_year,omitempty"`
}

// PaymentMethod mirrors a provider payment method.
//
// CustomerID is empty while the method is detached.
type PaymentMethod struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	CustomerID string            `json:"customer,omitempty"`
	Card       *Card             `json:"card,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Raw        json.RawMessage   `json:"-"`
}

// PaymentMethodList is a single page of payment methods.
type PaymentMethodList struct {
	Data    []PaymentMethod
	HasMore bool
}

// PaymentMethodUpdate carries the mutable card fields. Zero values are left untouched.
type PaymentMethodUpdate struct {
	ExpMonth int64
	ExpYear  int64
	Metadata map[string]string
}

func (u PaymentMethodUpdate) HasExpiry() bool {
	return u.ExpMonth > 0 && u.ExpYear > 0
}

// AnnotatedPaymentMethod is a payment method flagged against the customer's default.
type AnnotatedPaymentMethod struct {
	PaymentMethod
	IsDefault bool
}
