package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickbite/quickbite/internal/adapter/payment"
	domainErrors "github.com/quickbite/quickbite/internal/domain/errors"
	"github.com/quickbite/quickbite/internal/domain/model"
	"github.com/quickbite/quickbite/internal/server/http/dto"
)

// CheckoutHandler opens payment sessions for cart snapshots.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Checkout handles POST /api/checkout.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	customerID := CurrentUserID(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]model.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.CartItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Image:      it.Image,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
		})
	}
	delivery := model.DeliveryDetails{
		RecipientName: req.DeliveryDetails.RecipientName,
		Email:         req.DeliveryDetails.Email,
		Address:       req.DeliveryDetails.Address,
		City:          req.DeliveryDetails.City,
	}

	order, session, err := h.facade.Checkout(c.Request.Context(), customerID, req.RestaurantID, items, delivery)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart),
			errors.Is(err, domainErrors.ErrInvalidQuantity),
			errors.Is(err, domainErrors.ErrInvalidDelivery):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, payment.ErrSessionCreate):
			c.Status(http.StatusBadGateway)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		OrderID:            order.ID,
		PaymentRedirectURL: session.URL,
	})
}
