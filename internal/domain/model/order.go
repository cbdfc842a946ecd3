package model

import "time"

// OrderStatus describes order fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

// ParseOrderStatus maps raw input to a defined status value.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered:
		return OrderStatus(raw), true
	}
	return "", false
}

// DeliveryDetails is the delivery snapshot captured at checkout time.
// It is never re-derived from the user profile afterwards.
type DeliveryDetails struct {
	RecipientName string `json:"recipient_name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
}

// CartItem is a menu item snapshot embedded in the order. Name, image and
// unit price are copied at checkout so later menu edits do not alter
// historical orders. UnitPrice is in minor currency units.
type CartItem struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
}

// Order is the central entity of the checkout flow. TotalAmount is computed
// from the cart snapshot at creation and overwritten with the provider
// settled amount once payment is confirmed.
type Order struct {
	ID              string
	CustomerID      string
	RestaurantID    string
	DeliveryDetails DeliveryDetails
	CartItems       []CartItem
	TotalAmount     int64
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SnapshotTotal returns the sum of unit price times quantity over the cart.
func (o *Order) SnapshotTotal() int64 {
	var total int64
	for _, item := range o.CartItems {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}
