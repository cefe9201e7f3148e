package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"payment_gateway/internal/usecase"
	"payment_gateway/internal/usecase/interfaces"
	"payment_gateway/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeNotFound            = "NOT_FOUND"
	CodeProviderRejected    = "PAYMENT_PROVIDER_REJECTED"
	CodeProviderUnavailable = "PAYMENT_PROVIDER_UNAVAILABLE"
	CodeInternal            = "INTERNAL_ERROR"
)

// mapPaymentError turns usecase and provider failures into the HTTP error taxonomy.
// Provider failures carry the provider's own message.
func mapPaymentError(err error) *pkg.AppError {
	providerMessage := func(fallback string) string {
		if msg, ok := interfaces.GatewayMessage(err); ok {
			return msg
		}
		return fallback
	}

	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError(CodeValidationFailed, err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayNotFound):
		return pkg.NewDomainError(CodeNotFound, providerMessage("Resource not found"), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrOperationJournalDisabled):
		return pkg.NewDomainError(CodeNotFound, "Operation journal is disabled", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayRejected):
		return pkg.NewDomainError(CodeProviderRejected, providerMessage("Payment provider rejected the request"), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainError(CodeProviderUnavailable, providerMessage("Payment provider unavailable"), err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError(CodeInternal, "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapBindingError renders a gin binding failure as VALIDATION_FAILED, naming each offending field.
func mapBindingError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return pkg.NewDomainError(CodeValidationFailed, "invalid request body", err, http.StatusBadRequest)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return pkg.NewDomainError(CodeValidationFailed, "validation failed: "+strings.Join(msgs, "; "), err, http.StatusBadRequest)
}

func describeFieldError(fe validator.FieldError) string {
	field := jsonFieldName(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have length %s", field, fe.Param())
	case "alpha":
		return field + " must contain letters only"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

var fieldNames = map[string]string{
	"Name":            "name",
	"Email":           "email",
	"Amount":          "amount",
	"Currency":        "currency",
	"Customer":        "customer",
	"CustomerID":      "customerId",
	"PaymentMethodID": "paymentMethodId",
	"PaymentIntentID": "paymentIntentId",
	"ExpMonth":        "exp_month",
	"ExpYear":         "exp_year",
	"Metadata":        "metadata",
	"SetDefault":      "setDefault",
}

func jsonFieldName(fe validator.FieldError) string {
	if name, ok := fieldNames[fe.StructField()]; ok {
		return name
	}
	return fe.Field()
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
