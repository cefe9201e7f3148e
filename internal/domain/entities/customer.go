package entities

import "encoding/json"

// Customer is the provider-owned customer as seen by this service.
//
// The provider is authoritative; nothing here is persisted. Raw keeps the provider
// object exactly as it was serialised so handlers can relay it untouched.

type Customer struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name,omitempty"`
	Email                  string          `json:"email,omitempty"`
	DefaultPaymentMethodID string          `json:"default_payment_method,omitempty"`
	Raw                    json.RawMessage `json:"-"`
}
