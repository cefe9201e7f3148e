package handlers

import (
	"net/http"

	response "payment_gateway/internal/adapter/http/dto/response"
	"payment_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OperationHandler reads the journal of forwarded provider mutations.
type OperationHandler struct {
	usecase usecase.IOperationLogUseCase
}

func NewOperationHandler(uc usecase.IOperationLogUseCase) *OperationHandler {
	return &OperationHandler{usecase: uc}
}

// ListByResourceID godoc
// @Summary      Journal entries for a provider resource
// @Tags         operations
// @Produce      json
// @Param        resource_id  path      string  true  "Provider resource ID"
// @Success      200          {object}  response.OperationsResponse
// @Failure      404          {object}  pkg.HTTPError
// @Router       /operations/{resource_id} [get]
func (h *OperationHandler) ListByResourceID(c *gin.Context) {
	records, err := h.usecase.ListByResourceID(c.Request.Context(), c.Param("resource_id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOperationRecords(records))
}
