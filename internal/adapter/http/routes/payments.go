package routes

import (
	"payment_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIndex                      = "/"
	PathConfig                     = "/config"
	PathCreateCustomer             = "/create-customer-stripe"
	PathCustomerPaymentMethods     = "/:customerId/payment_methods"
	PathCreatePaymentIntent        = "/create-payment-intent"
	PathRetrievePaymentMethod      = "/retrieve-paymentmethod/:pmID"
	PathRetrievePaymentIntent      = "/retrieve-paymentintent/:piID"
	PathDetachPayment              = "/detach-payment/:pmID"
	PathAttachPaymentMethod        = "/attach-payment-method"
	PathLinkPaymentCustomer        = "/link-payment-customer"
	PathUpdatePaymentIntent        = "/update-payment-intent"
	PathCreatePayment              = "/create-payment"
	PathUpdatePaymentMethods       = "/update-payment-methods"
	PathAttachPaymentMethodDefault = "/attach-payment-method-default"
	PathCustomerMethodsWithDefault = "/get-list-payment-method-customer/:id"
	PathOperations                 = "/operations/:resource_id"
)

// paymentHandlers bundles the handlers mounted by addPaymentRoutes.
type paymentHandlers struct {
	config        *handlers.ConfigHandler
	customer      *handlers.CustomerHandler
	paymentMethod *handlers.PaymentMethodHandler
	paymentIntent *handlers.PaymentIntentHandler
	operation     *handlers.OperationHandler
}

func addPaymentRoutes(rg gin.IRoutes, h paymentHandlers) {
	rg.GET(PathIndex, h.config.Index)
	rg.GET(PathConfig, h.config.GetConfig)

	// Customers
	rg.POST(PathCreateCustomer, h.customer.CreateCustomer)
	rg.GET(PathCustomerPaymentMethods, h.customer.ListPaymentMethods)
	rg.GET(PathCustomerMethodsWithDefault, h.customer.ListCardPaymentMethodsWithDefault)

	// Payment methods
	rg.GET(PathRetrievePaymentMethod, h.paymentMethod.GetPaymentMethod)
	rg.POST(PathDetachPayment, h.paymentMethod.DetachPaymentMethod)
	rg.POST(PathAttachPaymentMethod, h.paymentMethod.AttachPaymentMethod)
	rg.POST(PathLinkPaymentCustomer, h.paymentMethod.LinkPaymentMethod)
	rg.POST(PathUpdatePaymentMethods, h.paymentMethod.UpdatePaymentMethod)
	rg.POST(PathAttachPaymentMethodDefault, h.paymentMethod.AttachPaymentMethodDefault)

	// Payment intents
	rg.POST(PathCreatePaymentIntent, h.paymentIntent.CreatePaymentIntent)
	rg.GET(PathRetrievePaymentIntent, h.paymentIntent.GetPaymentIntent)
	rg.POST(PathUpdatePaymentIntent, h.paymentIntent.UpdatePaymentIntent)
	rg.POST(PathCreatePayment, h.paymentIntent.CreatePayment)

	rg.GET(PathOperations, h.operation.ListByResourceID)
}
