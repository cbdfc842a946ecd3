package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickbite/quickbite/internal/adapter/payment"
)

// WebhookHandler receives payment provider notifications.
type WebhookHandler struct {
	facade CheckoutFacade
}

// NewWebhookHandler constructs WebhookHandler.
func NewWebhookHandler(facade CheckoutFacade) *WebhookHandler {
	return &WebhookHandler{facade: facade}
}

// Receive handles POST /api/payment-webhook. The raw body is verified
// against the provider signature; a non-2xx answer makes the provider
// redeliver, so only persistence failures return 500.
func (h *WebhookHandler) Receive(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err = h.facade.HandlePaymentNotification(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, payment.ErrSignatureInvalid) {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
