package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"payment_gateway/internal/adapter/http/handlers/mocks"
	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentMethodHandler_GetPaymentMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
	h := NewPaymentMethodHandler(uc)

	r := gin.New()
	r.GET("/retrieve-paymentmethod/:pmID", h.GetPaymentMethod)

	uc.EXPECT().Get(gomock.Any(), "pm_1").Return(entities.PaymentMethod{ID: "pm_1", Raw: json.RawMessage(`{"id":"pm_1","type":"card"}`)}, nil)

	req := httptest.NewRequest(http.MethodGet, "/retrieve-paymentmethod/pm_1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"paymentMethod":{"id":"pm_1","type":"card"}}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPaymentMethodHandler_DetachPaymentMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc)

		r := gin.New()
		r.POST("/detach-payment/:pmID", h.DetachPaymentMethod)

		uc.EXPECT().Detach(gomock.Any(), "pm_x").
			Return(entities.PaymentMethod{}, interfaces.NewGatewayError(interfaces.ErrGatewayNotFound, "detach_payment_method", "No such PaymentMethod: 'pm_x'", 404, nil))

		w := postJSON(r, "/detach-payment/pm_x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc)

		r := gin.New()
		r.POST("/detach-payment/:pmID", h.DetachPaymentMethod)

		uc.EXPECT().Detach(gomock.Any(), "pm_1").Return(entities.PaymentMethod{ID: "pm_1"}, nil)

		w := postJSON(r, "/detach-payment/pm_1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentMethodHandler_AttachPaymentMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc)

		r := gin.New()
		r.POST("/attach-payment-method", h.AttachPaymentMethod)

		w := postJSON(r, "/attach-payment-method", `{"paymentMethodId":"pm_1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("compensated failure reports the original error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc)

		r := gin.New()
		r.POST("/attach-payment-method", h.AttachPaymentMethod)

		uc.EXPECT().AttachAndSetDefault(gomock.Any(), "pm_1", "cus_1").
			Return(entities.Customer{}, interfaces.NewGatewayError(interfaces.ErrGatewayUnavailable, "set_default_payment_method", "An error occurred with our connection to Stripe.", 0, nil))

		w := postJSON(r, "/attach-payment-method", `{"paymentMethodId":"pm_1","customerId":"cus_1"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc)

		r := gin.New()
		r.POST("/attach-payment-method", h.AttachPaymentMethod)

		uc.EXPECT().AttachAndSetDefault(gomock.Any(), "pm_1", "cus_1").Return(entities.Customer{ID: "cus_1", DefaultPaymentMethodID: "pm_1"}, nil)

		w := postJSON(r, "/attach-payment-method", `{"paymentMethodId":"pm_1","customerId":"cus_1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"message":"Payment method set as default successfully."}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentMethodHandler_LinkPaymentMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
	h := NewPaymentMethodHandler(uc)

	r := gin.New()
	r.POST("/link-payment-customer", h.LinkPaymentMethod)

	uc.EXPECT().Attach(gomock.Any(), "pm_1", "cus_1").Return(entities.PaymentMethod{ID: "pm_1", CustomerID: "cus_1", Raw: json.RawMessage(`{"id":"pm_1","customer":"cus_1"}`)}, nil)

	w := postJSON(r, "/link-payment-customer", `{"paymentMethodId":"pm_1","customerId":"cus_1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	pm, ok := body["paymentMethod"].(map[string]any)
	if !ok || pm["customer"] != "cus_1" || body["message"] != "Payment method attached successfully." {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPaymentMethodHandler_UpdatePaymentMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("month out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc)

		r := gin.New()
		r.POST("/update-payment-methods", h.UpdatePaymentMethod)

		w := postJSON(r, "/update-payment-methods", `{"paymentMethodId":"pm_1","exp_month":13,"exp_year":2030}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("metadata only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc)

		r := gin.New()
		r.POST("/update-payment-methods", h.UpdatePaymentMethod)

		want := entities.PaymentMethodUpdate{Metadata: map[string]string{"order_id": "6735"}}
		uc.EXPECT().Update(gomock.Any(), "pm_1", want).Return(entities.PaymentMethod{ID: "pm_1"}, nil)

		w := postJSON(r, "/update-payment-methods", `{"paymentMethodId":"pm_1","metadata":{"order_id":"6735"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("forwards expiry and metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc)

		r := gin.New()
		r.POST("/update-payment-methods", h.UpdatePaymentMethod)

		want := entities.PaymentMethodUpdate{ExpMonth: 10, ExpYear: 2031, Metadata: map[string]string{"order_id": "6735"}}
		uc.EXPECT().Update(gomock.Any(), "pm_1", want).Return(entities.PaymentMethod{ID: "pm_1"}, nil)

		w := postJSON(r, "/update-payment-methods", `{"paymentMethodId":"pm_1","exp_month":10,"exp_year":2031,"metadata":{"order_id":"6735"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["paymentMethod"] == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentMethodHandler_AttachPaymentMethodDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc)

		r := gin.New()
		r.POST("/attach-payment-method-default", h.AttachPaymentMethodDefault)

		uc.EXPECT().SetDefaultAndUpdateExpiry(gomock.Any(), "pm_1", "", entities.PaymentMethodUpdate{ExpMonth: 5}, false).Return(usecase.ErrInvalidExpiry)

		w := postJSON(r, "/attach-payment-method-default", `{"paymentMethodId":"pm_1","exp_month":5}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("set default and expiry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc)

		r := gin.New()
		r.POST("/attach-payment-method-default", h.AttachPaymentMethodDefault)

		uc.EXPECT().SetDefaultAndUpdateExpiry(gomock.Any(), "pm_1", "cus_1", entities.PaymentMethodUpdate{ExpMonth: 4, ExpYear: 2032}, true).Return(nil)

		w := postJSON(r, "/attach-payment-method-default", `{"paymentMethodId":"pm_1","customerId":"cus_1","exp_month":4,"exp_year":2032,"setDefault":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"message":"Payment method set as default successfully."}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("expiry only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
		h := NewPaymentMethodHandler(uc)

		r := gin.New()
		r.POST("/attach-payment-method-default", h.AttachPaymentMethodDefault)

		uc.EXPECT().SetDefaultAndUpdateExpiry(gomock.Any(), "pm_1", "", entities.PaymentMethodUpdate{ExpMonth: 4, ExpYear: 2032}, false).Return(nil)

		w := postJSON(r, "/attach-payment-method-default", `{"paymentMethodId":"pm_1","exp_month":4,"exp_year":2032}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"message":"Payment method updated successfully."}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
