package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/quickbite/quickbite/internal/domain/errors"
	"github.com/quickbite/quickbite/internal/domain/model"
	"github.com/quickbite/quickbite/internal/server/http/dto"
)

// RestaurantOrderHandler manages the owner-facing order surface.
type RestaurantOrderHandler struct {
	facade OrderFacade
}

// NewRestaurantOrderHandler constructs RestaurantOrderHandler.
func NewRestaurantOrderHandler(facade OrderFacade) *RestaurantOrderHandler {
	return &RestaurantOrderHandler{facade: facade}
}

// List handles GET /api/restaurant-orders.
func (h *RestaurantOrderHandler) List(c *gin.Context) {
	ownerID := CurrentUserID(c)
	orders, err := h.facade.RestaurantOrders(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrForbidden) {
			c.Status(http.StatusForbidden)
			return
		}
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

// UpdateStatus handles PATCH /api/restaurant-orders/:id.
func (h *RestaurantOrderHandler) UpdateStatus(c *gin.Context) {
	ownerID := CurrentUserID(c)

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), ownerID, c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}
