package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/quickbite/quickbite/internal/domain/errors"
	"github.com/quickbite/quickbite/internal/domain/model"
	"github.com/quickbite/quickbite/internal/server/http/dto"
)

// OrderHandler manages customer-facing order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	customerID := CurrentUserID(c)
	orders, err := h.facade.Orders(c.Request.Context(), customerID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	customerID := CurrentUserID(c)
	order, err := h.facade.Order(c.Request.Context(), customerID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.CartItem, 0, len(order.CartItems))
	for _, it := range order.CartItems {
		items = append(items, dto.CartItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Image:      it.Image,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
		})
	}
	return dto.OrderResponse{
		ID:           order.ID,
		RestaurantID: order.RestaurantID,
		DeliveryDetails: dto.DeliveryDetails{
			RecipientName: order.DeliveryDetails.RecipientName,
			Email:         order.DeliveryDetails.Email,
			Address:       order.DeliveryDetails.Address,
			City:          order.DeliveryDetails.City,
		},
		Items:       items,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
