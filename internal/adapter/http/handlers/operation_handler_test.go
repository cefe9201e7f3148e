package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payment_gateway/internal/adapter/http/handlers/mocks"
	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOperationHandler_ListByResourceID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "journal disabled", err: usecase.ErrOperationJournalDisabled, status: http.StatusNotFound},
		{name: "repository error", err: errors.New("dynamodb down"), status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIOperationLogUseCase(ctrl)
			h := NewOperationHandler(uc)

			r := gin.New()
			r.GET("/operations/:resource_id", h.ListByResourceID)

			uc.EXPECT().ListByResourceID(gomock.Any(), "pm_1").Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/operations/pm_1", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationLogUseCase(ctrl)
		h := NewOperationHandler(uc)

		r := gin.New()
		r.GET("/operations/:resource_id", h.ListByResourceID)

		uc.EXPECT().ListByResourceID(gomock.Any(), "pm_1").Return([]entities.OperationRecord{
			{ID: "op-1", Operation: usecase.OpAttachPaymentMethod, ResourceID: "pm_1", Outcome: entities.OperationOutcomeSucceeded, Date: time.Now().UTC()},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/operations/pm_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Operations []map[string]any `json:"operations"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Operations) != 1 || body.Operations[0]["outcome"] != "succeeded" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
