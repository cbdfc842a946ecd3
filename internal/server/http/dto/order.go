package dto

import "time"

// OrderResponse describes an order as exposed over HTTP. Amounts are in
// minor currency units.
type OrderResponse struct {
	ID              string          `json:"id"`
	RestaurantID    string          `json:"restaurant_id"`
	DeliveryDetails DeliveryDetails `json:"delivery_details"`
	Items           []CartItem      `json:"items"`
	TotalAmount     int64           `json:"total_amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// UpdateOrderStatusRequest describes a fulfilment status change payload.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
