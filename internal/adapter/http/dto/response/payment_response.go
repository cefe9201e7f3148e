package response

import (
	"encoding/json"
	"time"

	"payment_gateway/internal/domain/entities"
)

type ConfigResponse struct {
	PublishableKey string `json:"publishableKey"`
}

type CreateCustomerResponse struct {
	CustomerID string `json:"customerId"`
}

type ClientSecretResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PaymentMethodResponse struct {
	PaymentMethod json.RawMessage `json:"paymentMethod" swaggertype:"object"`
}

type LinkPaymentMethodResponse struct {
	Message       string          `json:"message"`
	PaymentMethod json.RawMessage `json:"paymentMethod" swaggertype:"object"`
}

type UpdatePaymentMethodResponse struct {
	Success       bool            `json:"success"`
	PaymentMethod json.RawMessage `json:"paymentMethod" swaggertype:"object"`
}

type PaymentIntentResponse struct {
	PaymentIntent json.RawMessage `json:"paymentIntent" swaggertype:"object"`
}

// PaymentResultResponse is the body of /create-payment, on success and on failure.
type PaymentResultResponse struct {
	Success       bool            `json:"success"`
	PaymentIntent json.RawMessage `json:"paymentIntent,omitempty" swaggertype:"object"`
	Error         string          `json:"error,omitempty"`
	Code          string          `json:"code,omitempty"`
}

// PaymentMethodListObject keeps the provider list envelope.
type PaymentMethodListObject struct {
	Object  string            `json:"object"`
	Data    []json.RawMessage `json:"data" swaggertype:"array,object"`
	HasMore bool              `json:"has_more"`
	URL     string            `json:"url"`
}

type PaymentMethodListResponse struct {
	PaymentMethods PaymentMethodListObject `json:"paymentMethods"`
}

type DefaultFlaggedListResponse struct {
	Result []json.RawMessage `json:"result" swaggertype:"array,object"`
}

type OperationRecordResponse struct {
	ID         string    `json:"id"`
	Operation  string    `json:"operation"`
	ResourceID string    `json:"resource_id"`
	RelatedIDs []string  `json:"related_ids,omitempty"`
	Outcome    string    `json:"outcome"`
	Error      string    `json:"error,omitempty"`
	Date       time.Time `json:"date"`
}

type OperationsResponse struct {
	Operations []OperationRecordResponse `json:"operations"`
}

func FromPaymentMethod(pm entities.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{PaymentMethod: rawOrMarshal(pm.Raw, pm)}
}

func FromPaymentIntent(pi entities.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{PaymentIntent: rawOrMarshal(pi.Raw, pi)}
}

func FromPaymentMethodList(customerID string, list entities.PaymentMethodList) PaymentMethodListResponse {
	data := make([]json.RawMessage, 0, len(list.Data))
	for _, pm := range list.Data {
		data = append(data, rawOrMarshal(pm.Raw, pm))
	}
	return PaymentMethodListResponse{PaymentMethods: PaymentMethodListObject{
		Object:  "list",
		Data:    data,
		HasMore: list.HasMore,
		URL:     "/v1/customers/" + customerID + "/payment_methods",
	}}
}

// FromAnnotatedPaymentMethods merges isDefault into each relayed provider object.
func FromAnnotatedPaymentMethods(methods []entities.AnnotatedPaymentMethod) DefaultFlaggedListResponse {
	result := make([]json.RawMessage, 0, len(methods))
	for _, m := range methods {
		result = append(result, withIsDefault(rawOrMarshal(m.Raw, m.PaymentMethod), m.IsDefault))
	}
	return DefaultFlaggedListResponse{Result: result}
}

func FromOperationRecords(records []entities.OperationRecord) OperationsResponse {
	out := make([]OperationRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, OperationRecordResponse{
			ID:         r.ID,
			Operation:  r.Operation,
			ResourceID: r.ResourceID,
			RelatedIDs: r.RelatedIDs,
			Outcome:    string(r.Outcome),
			Error:      r.Error,
			Date:       r.Date,
		})
	}
	return OperationsResponse{Operations: out}
}

func rawOrMarshal(raw json.RawMessage, fallback any) json.RawMessage {
	if len(raw) > 0 && json.Valid(raw) {
		return raw
	}
	b, err := json.Marshal(fallback)
	if err != nil {
		return json.RawMessage("null")
	}
	return b
}

func withIsDefault(raw json.RawMessage, isDefault bool) json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return raw
	}
	if isDefault {
		fields["isDefault"] = json.RawMessage("true")
	} else {
		fields["isDefault"] = json.RawMessage("false")
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return raw
	}
	return b
}
