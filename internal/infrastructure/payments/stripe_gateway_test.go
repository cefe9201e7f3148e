package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/infrastructure/observability"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

type fakeStripe struct {
	t        *testing.T
	mu       sync.Mutex
	requests []*http.Request
	forms    []map[string][]string
	routes   map[string]func(w http.ResponseWriter, r *http.Request)
}

func newFakeStripe(t *testing.T) (*fakeStripe, *StripeGateway) {
	t.Helper()
	fs := &fakeStripe{t: t, routes: map[string]func(http.ResponseWriter, *http.Request){}}
	srv := httptest.NewServer(http.HandlerFunc(fs.serve))
	t.Cleanup(srv.Close)

	gw, err := NewStripeGateway(StripeConfig{
		SecretKey:  "sk_test_123",
		APIURL:     srv.URL,
		HTTPClient: srv.Client(),
		Metrics:    observability.NewProviderMetrics("test", prometheus.NewRegistry()),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return fs, gw
}

func (fs *fakeStripe) handle(method, path string, fn func(w http.ResponseWriter, r *http.Request)) {
	fs.routes[method+" "+path] = fn
}

func (fs *fakeStripe) serve(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	fs.mu.Lock()
	fs.requests = append(fs.requests, r)
	fs.forms = append(fs.forms, r.Form)
	fs.mu.Unlock()

	fn, ok := fs.routes[r.Method+" "+r.URL.Path]
	if !ok {
		writeStripeError(w, http.StatusNotFound, "invalid_request_error", "resource_missing", "Unrecognized request URL ("+r.Method+": "+r.URL.Path+")")
		return
	}
	fn(w, r)
}

func (fs *fakeStripe) lastForm() map[string][]string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.forms[len(fs.forms)-1]
}

func (fs *fakeStripe) count() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return len(fs.requests)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func writeStripeError(w http.ResponseWriter, status int, typ, code, msg string) {
	b, _ := json.Marshal(map[string]any{"error": map[string]any{"type": typ, "code": code, "message": msg}})
	writeJSON(w, status, string(b))
}

func TestNewStripeGateway_RequiresKey(t *testing.T) {
	if _, err := NewStripeGateway(StripeConfig{}); !errors.Is(err, ErrMissingStripeSecretKey) {
		t.Fatalf("expected ErrMissingStripeSecretKey, got %v", err)
	}
}

func TestStripeGateway_CreateCustomer(t *testing.T) {
	fs, gw := newFakeStripe(t)
	fs.handle(http.MethodPost, "/v1/customers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"cus_123","object":"customer","name":"Ann","email":"ann@example.com","invoice_settings":{"default_payment_method":null}}`)
	})

	c, err := gw.CreateCustomer(context.Background(), "Ann", "ann@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "cus_123" || c.Email != "ann@example.com" {
		t.Fatalf("unexpected customer: %+v", c)
	}
	form := fs.lastForm()
	if form["email"][0] != "ann@example.com" || form["name"][0] != "Ann" {
		t.Fatalf("unexpected form: %v", form)
	}
	if !strings.Contains(string(c.Raw), `"object":"customer"`) {
		t.Fatalf("expected raw provider body, got %s", c.Raw)
	}
}

func TestStripeGateway_GetCustomerDefaultMethod(t *testing.T) {
	fs, gw := newFakeStripe(t)
	fs.handle(http.MethodGet, "/v1/customers/cus_123", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"cus_123","object":"customer","invoice_settings":{"default_payment_method":"pm_2"}}`)
	})

	c, err := gw.GetCustomer(context.Background(), "cus_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.DefaultPaymentMethodID != "pm_2" {
		t.Fatalf("expected default pm_2, got %q", c.DefaultPaymentMethodID)
	}
}

func TestStripeGateway_SetDefaultPaymentMethod(t *testing.T) {
	fs, gw := newFakeStripe(t)
	fs.handle(http.MethodPost, "/v1/customers/cus_123", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"cus_123","object":"customer","invoice_settings":{"default_payment_method":"pm_9"}}`)
	})

	c, err := gw.SetDefaultPaymentMethod(context.Background(), "cus_123", "pm_9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fs.lastForm()["invoice_settings[default_payment_method]"]; len(got) != 1 || got[0] != "pm_9" {
		t.Fatalf("unexpected form value %v", got)
	}
	if c.DefaultPaymentMethodID != "pm_9" {
		t.Fatalf("unexpected customer: %+v", c)
	}
}

func TestStripeGateway_ListCustomerPaymentMethodsStopsAtLimit(t *testing.T) {
	fs, gw := newFakeStripe(t)
	fs.handle(http.MethodGet, "/v1/customers/cus_123/payment_methods", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "2" {
			t.Errorf("expected limit=2, got %q", r.URL.RawQuery)
		}
		writeJSON(w, http.StatusOK, `{"object":"list","url":"/v1/customers/cus_123/payment_methods","has_more":true,"data":[
			{"id":"pm_1","object":"payment_method","type":"card","customer":"cus_123","card":{"brand":"visa","last4":"4242","exp_month":1,"exp_year":2030},"metadata":{}},
			{"id":"pm_2","object":"payment_method","type":"card","customer":"cus_123","card":{"brand":"mastercard","last4":"4444","exp_month":2,"exp_year":2031},"metadata":{}}
		]}`)
	})

	list, err := gw.ListCustomerPaymentMethods(context.Background(), "cus_123", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Data) != 2 || !list.HasMore {
		t.Fatalf("unexpected list: %+v", list)
	}
	if fs.count() != 1 {
		t.Fatalf("expected a single page request, got %d", fs.count())
	}
	if list.Data[1].Card == nil || list.Data[1].Card.Brand != "mastercard" || list.Data[1].CustomerID != "cus_123" {
		t.Fatalf("unexpected payment method: %+v", list.Data[1])
	}
	if !strings.Contains(string(list.Data[0].Raw), `"last4":"4242"`) {
		t.Fatalf("expected raw item, got %s", list.Data[0].Raw)
	}
}

func TestStripeGateway_ListPaymentMethodsFiltersByType(t *testing.T) {
	fs, gw := newFakeStripe(t)
	fs.handle(http.MethodGet, "/v1/payment_methods", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("customer") != "cus_123" || q.Get("type") != "card" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		writeJSON(w, http.StatusOK, `{"object":"list","url":"/v1/payment_methods","has_more":false,"data":[{"id":"pm_1","object":"payment_method","type":"card"}]}`)
	})

	list, err := gw.ListPaymentMethods(context.Background(), "cus_123", entities.PaymentMethodTypeCard, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Data) != 1 || list.HasMore {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestStripeGateway_UpdatePaymentMethod(t *testing.T) {
	fs, gw := newFakeStripe(t)
	fs.handle(http.MethodPost, "/v1/payment_methods/pm_1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"pm_1","object":"payment_method","type":"card","card":{"exp_month":8,"exp_year":2031},"metadata":{"order_id":"6735"}}`)
	})

	pm, err := gw.UpdatePaymentMethod(context.Background(), "pm_1", entities.PaymentMethodUpdate{ExpMonth: 8, ExpYear: 2031, Metadata: map[string]string{"order_id": "6735"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	form := fs.lastForm()
	if form["card[exp_month]"][0] != "8" || form["card[exp_year]"][0] != "2031" || form["metadata[order_id]"][0] != "6735" {
		t.Fatalf("unexpected form: %v", form)
	}
	if pm.Card.ExpYear != 2031 || pm.Metadata["order_id"] != "6735" {
		t.Fatalf("unexpected payment method: %+v", pm)
	}
}

func TestStripeGateway_AttachAndDetach(t *testing.T) {
	fs, gw := newFakeStripe(t)
	fs.handle(http.MethodPost, "/v1/payment_methods/pm_1/attach", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"pm_1","object":"payment_method","type":"card","customer":"cus_123"}`)
	})
	fs.handle(http.MethodPost, "/v1/payment_methods/pm_1/detach", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"pm_1","object":"payment_method","type":"card","customer":null}`)
	})

	pm, err := gw.AttachPaymentMethod(context.Background(), "pm_1", "cus_123")
	if err != nil || pm.CustomerID != "cus_123" {
		t.Fatalf("unexpected attach result %+v err=%v", pm, err)
	}
	if fs.lastForm()["customer"][0] != "cus_123" {
		t.Fatalf("expected customer in attach form")
	}

	pm, err = gw.DetachPaymentMethod(context.Background(), "pm_1")
	if err != nil || pm.CustomerID != "" {
		t.Fatalf("unexpected detach result %+v err=%v", pm, err)
	}
}

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	fs, gw := newFakeStripe(t)
	fs.handle(http.MethodPost, "/v1/payment_intents", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"pi_1","object":"payment_intent","amount":1099,"currency":"usd","customer":"cus_123","status":"requires_payment_method","client_secret":"pi_1_secret_abc"}`)
	})

	pi, err := gw.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{
		Amount:                  1099,
		Currency:                "usd",
		CustomerID:              "cus_123",
		SetupFutureUsage:        "off_session",
		AutomaticPaymentMethods: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	form := fs.lastForm()
	if form["setup_future_usage"][0] != "off_session" || form["automatic_payment_methods[enabled]"][0] != "true" || form["amount"][0] != "1099" {
		t.Fatalf("unexpected form: %v", form)
	}
	if _, ok := form["confirm"]; ok {
		t.Fatalf("confirm must not be sent for a plain intent")
	}
	if pi.ClientSecret != "pi_1_secret_abc" || pi.Status != entities.PaymentIntentStatusRequiresPaymentMethod || pi.CustomerID != "cus_123" {
		t.Fatalf("unexpected intent: %+v", pi)
	}
}

func TestStripeGateway_OffSessionCardDeclined(t *testing.T) {
	fs, gw := newFakeStripe(t)
	fs.handle(http.MethodPost, "/v1/payment_intents", func(w http.ResponseWriter, r *http.Request) {
		writeStripeError(w, http.StatusPaymentRequired, "card_error", "card_declined", "Your card was declined.")
	})

	_, err := gw.CreatePaymentIntent(context.Background(), entities.PaymentIntentRequest{
		Amount: 500, Currency: "usd", CustomerID: "cus_123", PaymentMethodID: "pm_1", Confirm: true, OffSession: true,
	})
	if !errors.Is(err, interfaces.ErrGatewayRejected) {
		t.Fatalf("expected rejected, got %v", err)
	}
	if msg, _ := interfaces.GatewayMessage(err); msg != "Your card was declined." {
		t.Fatalf("unexpected message %q", msg)
	}
	form := fs.lastForm()
	if form["confirm"][0] != "true" || form["off_session"][0] != "true" || form["payment_method"][0] != "pm_1" {
		t.Fatalf("unexpected form: %v", form)
	}
}

func TestStripeGateway_UpdateAndConfirmIntent(t *testing.T) {
	fs, gw := newFakeStripe(t)
	fs.handle(http.MethodPost, "/v1/payment_intents/pi_1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"pi_1","object":"payment_intent","payment_method":"pm_1","status":"requires_confirmation"}`)
	})
	fs.handle(http.MethodPost, "/v1/payment_intents/pi_1/confirm", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"pi_1","object":"payment_intent","payment_method":"pm_1","status":"succeeded"}`)
	})

	pi, err := gw.UpdatePaymentIntentMethod(context.Background(), "pi_1", "pm_1")
	if err != nil || pi.PaymentMethodID != "pm_1" {
		t.Fatalf("unexpected update result %+v err=%v", pi, err)
	}
	pi, err = gw.ConfirmPaymentIntent(context.Background(), "pi_1")
	if err != nil || pi.Status != entities.PaymentIntentStatusSucceeded {
		t.Fatalf("unexpected confirm result %+v err=%v", pi, err)
	}
}

func TestStripeGateway_ErrorClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		typ    string
		code   string
		want   error
	}{
		{name: "missing resource", status: http.StatusNotFound, typ: "invalid_request_error", code: "resource_missing", want: interfaces.ErrGatewayNotFound},
		{name: "invalid request", status: http.StatusBadRequest, typ: "invalid_request_error", code: "parameter_invalid_integer", want: interfaces.ErrGatewayRejected},
		{name: "bad key", status: http.StatusUnauthorized, typ: "invalid_request_error", code: "", want: interfaces.ErrGatewayUnavailable},
		{name: "rate limited", status: http.StatusTooManyRequests, typ: "invalid_request_error", code: "rate_limit", want: interfaces.ErrGatewayUnavailable},
		{name: "provider outage", status: http.StatusInternalServerError, typ: "api_error", code: "", want: interfaces.ErrGatewayUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs, gw := newFakeStripe(t)
			fs.handle(http.MethodGet, "/v1/payment_methods/pm_x", func(w http.ResponseWriter, r *http.Request) {
				writeStripeError(w, tc.status, tc.typ, tc.code, "provider says no")
			})

			_, err := gw.GetPaymentMethod(context.Background(), "pm_x")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var gwErr *interfaces.GatewayError
			if !errors.As(err, &gwErr) || gwErr.StatusCode != tc.status || gwErr.Message != "provider says no" {
				t.Fatalf("unexpected gateway error: %+v", gwErr)
			}
		})
	}
}

func TestStripeGateway_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gw, err := NewStripeGateway(StripeConfig{SecretKey: "sk_test_123", APIURL: url})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = gw.GetPaymentIntent(context.Background(), "pi_1")
	if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestStripeGateway_CanceledContext(t *testing.T) {
	fs, gw := newFakeStripe(t)
	fs.handle(http.MethodGet, "/v1/payment_intents/pi_1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"pi_1","object":"payment_intent"}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gw.GetPaymentIntent(ctx, "pi_1")
	if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}
