package handlers

import (
	"net/http"

	request "payment_gateway/internal/adapter/http/dto/request"
	response "payment_gateway/internal/adapter/http/dto/response"
	"payment_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CustomerHandler serves customer creation and the customer's payment method listings.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer godoc
// @Summary      Create a provider customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateCustomerRequest  true  "Customer"
// @Success      200   {object}  response.CreateCustomerResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /create-customer-stripe [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, mapBindingError(err))
		return
	}

	ctx := c.Request.Context()
	customer, err := h.usecase.CreateCustomer(ctx, payload.Name, payload.Email)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("[payment][handler] create customer failed")
		writeError(c, mapPaymentError(err))
		return
	}
	log.Ctx(ctx).Info().Str("customer_id", customer.ID).Msg("[payment][handler] customer created")

	c.JSON(http.StatusOK, response.CreateCustomerResponse{CustomerID: customer.ID})
}

// ListPaymentMethods godoc
// @Summary      List a customer's payment methods (first page)
// @Tags         customers
// @Produce      json
// @Param        customerId  path      string  true  "Customer ID"
// @Success      200         {object}  response.PaymentMethodListResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /{customerId}/payment_methods [get]
func (h *CustomerHandler) ListPaymentMethods(c *gin.Context) {
	customerID := c.Param("customerId")

	list, err := h.usecase.ListPaymentMethods(c.Request.Context(), customerID)
	if err != nil {
		log.Ctx(c.Request.Context()).Warn().Err(err).Str("customer_id", customerID).Msg("[payment][handler] list payment methods failed")
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentMethodList(customerID, list))
}

// ListCardPaymentMethodsWithDefault godoc
// @Summary      List a customer's cards flagged against the default
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  response.DefaultFlaggedListResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /get-list-payment-method-customer/{id} [get]
func (h *CustomerHandler) ListCardPaymentMethodsWithDefault(c *gin.Context) {
	customerID := c.Param("id")

	methods, err := h.usecase.ListCardPaymentMethodsWithDefault(c.Request.Context(), customerID)
	if err != nil {
		log.Ctx(c.Request.Context()).Warn().Err(err).Str("customer_id", customerID).Msg("[payment][handler] list default-flagged methods failed")
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromAnnotatedPaymentMethods(methods))
}
