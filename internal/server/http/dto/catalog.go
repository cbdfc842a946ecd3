package dto

import "time"

// CreateRestaurantRequest describes restaurant registration payload.
type CreateRestaurantRequest struct {
	Name string `json:"name" binding:"required"`
	City string `json:"city" binding:"required"`
}

// RestaurantResponse describes a restaurant.
type RestaurantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

// MenuItemRequest describes menu item create/update payload. Price is in
// minor currency units.
type MenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       int64  `json:"price"`
	Available   *bool  `json:"available"`
}

// MenuItemResponse describes a menu item.
type MenuItemResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Price        int64  `json:"price"`
	Available    bool   `json:"available"`
}
