package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/quickbite/quickbite/internal/domain/errors"
	"github.com/quickbite/quickbite/internal/domain/model"
	"github.com/quickbite/quickbite/internal/server/http/dto"
)

// CatalogHandler manages restaurant and menu administration endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// CreateRestaurant handles POST /api/restaurant.
func (h *CatalogHandler) CreateRestaurant(c *gin.Context) {
	ownerID := CurrentUserID(c)

	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	restaurant, err := h.facade.CreateRestaurant(c.Request.Context(), ownerID, req.Name, req.City)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidRestaurant):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toRestaurantResponse(restaurant))
}

// OwnRestaurant handles GET /api/restaurant.
func (h *CatalogHandler) OwnRestaurant(c *gin.Context) {
	ownerID := CurrentUserID(c)
	restaurant, err := h.facade.OwnRestaurant(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toRestaurantResponse(restaurant))
}

// Menu handles GET /api/restaurants/:id/menu.
func (h *CatalogHandler) Menu(c *gin.Context) {
	items, err := h.facade.Menu(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /api/restaurant/menu.
func (h *CatalogHandler) AddMenuItem(c *gin.Context) {
	ownerID := CurrentUserID(c)

	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.AddMenuItem(c.Request.Context(), ownerID, menuItemFromRequest(req, ""))
	if err != nil {
		h.menuError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toMenuItemResponse(*item))
}

// UpdateMenuItem handles PATCH /api/restaurant/menu/:id.
func (h *CatalogHandler) UpdateMenuItem(c *gin.Context) {
	ownerID := CurrentUserID(c)

	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.UpdateMenuItem(c.Request.Context(), ownerID, menuItemFromRequest(req, c.Param("id")))
	if err != nil {
		h.menuError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMenuItemResponse(*item))
}

// DeleteMenuItem handles DELETE /api/restaurant/menu/:id.
func (h *CatalogHandler) DeleteMenuItem(c *gin.Context) {
	ownerID := CurrentUserID(c)

	if err := h.facade.DeleteMenuItem(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		h.menuError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) menuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidMenuItem):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrForbidden):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func menuItemFromRequest(req dto.MenuItemRequest, id string) *model.MenuItem {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return &model.MenuItem{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Available:   available,
	}
}

func toRestaurantResponse(r *model.Restaurant) dto.RestaurantResponse {
	return dto.RestaurantResponse{ID: r.ID, Name: r.Name, City: r.City, CreatedAt: r.CreatedAt}
}

func toMenuItemResponse(item model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:           item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Description:  item.Description,
		Image:        item.Image,
		Price:        item.Price,
		Available:    item.Available,
	}
}
