package request

import "strings"

// CreateCustomerRequest is the payload of POST /create-customer-stripe.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"max=256"`
	Email string `json:"email" binding:"required,email"`
}

// CreatePaymentIntentRequest is the payload of POST /create-payment-intent.
//
// Customer is optional; without it the intent is not tied to a saved customer.
type CreatePaymentIntentRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency" binding:"required,len=3,alpha"`
	Customer string `json:"customer"`
}

// CreatePaymentRequest is the payload of POST /create-payment (off-session charge).
type CreatePaymentRequest struct {
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	Currency        string `json:"currency" binding:"required,len=3,alpha"`
	Customer        string `json:"customer" binding:"required"`
}

// AttachPaymentMethodRequest is shared by /attach-payment-method and /link-payment-customer.
type AttachPaymentMethodRequest struct {
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
	CustomerID      string `json:"customerId" binding:"required"`
}

type UpdatePaymentIntentRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
}

// UpdatePaymentMethodRequest is the payload of POST /update-payment-methods.
//
// The expiry pair is optional so metadata can be updated alone.
type UpdatePaymentMethodRequest struct {
	PaymentMethodID string            `json:"paymentMethodId" binding:"required"`
	ExpMonth        int64             `json:"exp_month" binding:"omitempty,min=1,max=12"`
	ExpYear         int64             `json:"exp_year" binding:"omitempty,min=2000"`
	Metadata        map[string]string `json:"metadata"`
}

// AttachDefaultRequest is the payload of POST /attach-payment-method-default.
//
// exp_month and exp_year travel together; customerId is needed only with setDefault.
type AttachDefaultRequest struct {
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
	CustomerID      string `json:"customerId"`
	ExpMonth        int64  `json:"exp_month" binding:"omitempty,min=1,max=12"`
	ExpYear         int64  `json:"exp_year" binding:"omitempty,min=2000"`
	SetDefault      bool   `json:"setDefault"`
}

// NormalizedCurrency lowercases the ISO code the way the provider stores it.
func NormalizedCurrency(currency string) string {
	return strings.ToLower(strings.TrimSpace(currency))
}
