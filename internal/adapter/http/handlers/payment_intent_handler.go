package handlers

import (
	"net/http"

	request "payment_gateway/internal/adapter/http/dto/request"
	response "payment_gateway/internal/adapter/http/dto/response"
	"payment_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PaymentIntentHandler struct {
	usecase usecase.IPaymentIntentUseCase
}

func NewPaymentIntentHandler(uc usecase.IPaymentIntentUseCase) *PaymentIntentHandler {
	return &PaymentIntentHandler{usecase: uc}
}

// CreatePaymentIntent godoc
// @Summary      Create a payment intent saved for off-session reuse
// @Tags         payment-intents
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreatePaymentIntentRequest  true  "Intent"
// @Success      200   {object}  response.ClientSecretResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /create-payment-intent [post]
func (h *PaymentIntentHandler) CreatePaymentIntent(c *gin.Context) {
	var payload request.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindingError(err))
		return
	}

	ctx := c.Request.Context()
	pi, err := h.usecase.CreateIntent(ctx, payload.Amount, request.NormalizedCurrency(payload.Currency), payload.Customer)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("[payment][handler] create payment intent failed")
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.ClientSecretResponse{ClientSecret: pi.ClientSecret})
}

// GetPaymentIntent godoc
// @Summary      Retrieve a payment intent
// @Tags         payment-intents
// @Produce      json
// @Param        piID  path      string  true  "Payment intent ID"
// @Success      200   {object}  response.PaymentIntentResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /retrieve-paymentintent/{piID} [get]
func (h *PaymentIntentHandler) GetPaymentIntent(c *gin.Context) {
	pi, err := h.usecase.Get(c.Request.Context(), c.Param("piID"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentIntent(pi))
}

// UpdatePaymentIntent godoc
// @Summary      Set the intent's payment method and confirm it
// @Tags         payment-intents
// @Accept       json
// @Produce      json
// @Param        body  body      request.UpdatePaymentIntentRequest  true  "Update and confirm"
// @Success      200   {object}  response.PaymentIntentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /update-payment-intent [post]
func (h *PaymentIntentHandler) UpdatePaymentIntent(c *gin.Context) {
	var payload request.UpdatePaymentIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindingError(err))
		return
	}

	pi, err := h.usecase.UpdateMethodAndConfirm(c.Request.Context(), payload.PaymentIntentID, payload.PaymentMethodID)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentIntent(pi))
}

// CreatePayment godoc
// @Summary      Charge a saved payment method off-session
// @Tags         payment-intents
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreatePaymentRequest  true  "Payment"
// @Success      200   {object}  response.PaymentResultResponse
// @Failure      400   {object}  response.PaymentResultResponse
// @Failure      422   {object}  response.PaymentResultResponse
// @Failure      502   {object}  response.PaymentResultResponse
// @Router       /create-payment [post]
func (h *PaymentIntentHandler) CreatePayment(c *gin.Context) {
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapBindingError(err)
		c.JSON(appErr.HTTPStatus, response.PaymentResultResponse{Error: appErr.Message, Code: appErr.Code})
		return
	}

	ctx := c.Request.Context()
	pi, err := h.usecase.CreateAndConfirmOffSession(ctx, payload.PaymentMethodID, payload.Amount, request.NormalizedCurrency(payload.Currency), payload.Customer)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("customer_id", payload.Customer).Msg("[payment][handler] off-session payment failed")
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, response.PaymentResultResponse{Error: appErr.Message, Code: appErr.Code})
		return
	}

	c.JSON(http.StatusOK, response.PaymentResultResponse{
		Success:       true,
		PaymentIntent: response.FromPaymentIntent(pi).PaymentIntent,
	})
}
