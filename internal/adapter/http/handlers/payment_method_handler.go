package handlers

import (
	"net/http"

	request "payment_gateway/internal/adapter/http/dto/request"
	response "payment_gateway/internal/adapter/http/dto/response"
	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	msgDefaultSet = "Payment method set as default successfully."
	msgLinked     = "Payment method attached successfully."
	msgUpdated    = "Payment method updated successfully."
)

type PaymentMethodHandler struct {
	usecase usecase.IPaymentMethodUseCase
}

func NewPaymentMethodHandler(uc usecase.IPaymentMethodUseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{usecase: uc}
}

// GetPaymentMethod godoc
// @Summary      Retrieve a payment method
// @Tags         payment-methods
// @Produce      json
// @Param        pmID  path      string  true  "Payment method ID"
// @Success      200   {object}  response.PaymentMethodResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /retrieve-paymentmethod/{pmID} [get]
func (h *PaymentMethodHandler) GetPaymentMethod(c *gin.Context) {
	pm, err := h.usecase.Get(c.Request.Context(), c.Param("pmID"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethod(pm))
}

// DetachPaymentMethod godoc
// @Summary      Detach a payment method from its customer
// @Tags         payment-methods
// @Produce      json
// @Param        pmID  path      string  true  "Payment method ID"
// @Success      200   {object}  response.PaymentMethodResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /detach-payment/{pmID} [post]
func (h *PaymentMethodHandler) DetachPaymentMethod(c *gin.Context) {
	pmID := c.Param("pmID")

	pm, err := h.usecase.Detach(c.Request.Context(), pmID)
	if err != nil {
		log.Ctx(c.Request.Context()).Warn().Err(err).Str("payment_method_id", pmID).Msg("[payment][handler] detach failed")
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethod(pm))
}

// AttachPaymentMethod godoc
// @Summary      Attach a payment method and make it the customer's default
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        body  body      request.AttachPaymentMethodRequest  true  "Attach"
// @Success      200   {object}  response.MessageResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /attach-payment-method [post]
func (h *PaymentMethodHandler) AttachPaymentMethod(c *gin.Context) {
	var payload request.AttachPaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindingError(err))
		return
	}

	ctx := c.Request.Context()
	if _, err := h.usecase.AttachAndSetDefault(ctx, payload.PaymentMethodID, payload.CustomerID); err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Str("payment_method_id", payload.PaymentMethodID).
			Str("customer_id", payload.CustomerID).
			Msg("[payment][handler] attach as default failed")
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: msgDefaultSet})
}

// LinkPaymentMethod godoc
// @Summary      Attach a payment method to a customer
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        body  body      request.AttachPaymentMethodRequest  true  "Link"
// @Success      200   {object}  response.LinkPaymentMethodResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /link-payment-customer [post]
func (h *PaymentMethodHandler) LinkPaymentMethod(c *gin.Context) {
	var payload request.AttachPaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindingError(err))
		return
	}

	pm, err := h.usecase.Attach(c.Request.Context(), payload.PaymentMethodID, payload.CustomerID)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.LinkPaymentMethodResponse{
		Message:       msgLinked,
		PaymentMethod: response.FromPaymentMethod(pm).PaymentMethod,
	})
}

// UpdatePaymentMethod godoc
// @Summary      Update card expiry and metadata
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        body  body      request.UpdatePaymentMethodRequest  true  "Update"
// @Success      200   {object}  response.UpdatePaymentMethodResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /update-payment-methods [post]
func (h *PaymentMethodHandler) UpdatePaymentMethod(c *gin.Context) {
	var payload request.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindingError(err))
		return
	}

	pm, err := h.usecase.Update(c.Request.Context(), payload.PaymentMethodID, entities.PaymentMethodUpdate{
		ExpMonth: payload.ExpMonth,
		ExpYear:  payload.ExpYear,
		Metadata: payload.Metadata,
	})
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.UpdatePaymentMethodResponse{
		Success:       true,
		PaymentMethod: response.FromPaymentMethod(pm).PaymentMethod,
	})
}

// AttachPaymentMethodDefault godoc
// @Summary      Optionally set the default method, then update its expiry
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        body  body      request.AttachDefaultRequest  true  "Default and expiry"
// @Success      200   {object}  response.MessageResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /attach-payment-method-default [post]
func (h *PaymentMethodHandler) AttachPaymentMethodDefault(c *gin.Context) {
	var payload request.AttachDefaultRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindingError(err))
		return
	}

	ctx := c.Request.Context()
	update := entities.PaymentMethodUpdate{ExpMonth: payload.ExpMonth, ExpYear: payload.ExpYear}
	if err := h.usecase.SetDefaultAndUpdateExpiry(ctx, payload.PaymentMethodID, payload.CustomerID, update, payload.SetDefault); err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Str("payment_method_id", payload.PaymentMethodID).
			Bool("set_default", payload.SetDefault).
			Msg("[payment][handler] default and expiry update failed")
		writeError(c, mapPaymentError(err))
		return
	}

	msg := msgUpdated
	if payload.SetDefault {
		msg = msgDefaultSet
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: msg})
}
