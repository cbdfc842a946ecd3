package dto

// CartItem is a cart entry as submitted by the client at checkout.
type CartItem struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Image      string `json:"image"`
	UnitPrice  int64  `json:"unit_price"`
	Quantity   int    `json:"quantity"`
}

// DeliveryDetails describes the delivery address payload.
type DeliveryDetails struct {
	RecipientName string `json:"recipient_name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
}

// CheckoutRequest describes the checkout payload.
type CheckoutRequest struct {
	RestaurantID    string          `json:"restaurant_id" binding:"required"`
	Items           []CartItem      `json:"items"`
	DeliveryDetails DeliveryDetails `json:"delivery_details"`
}

// CheckoutResponse carries the hosted payment page redirect.
type CheckoutResponse struct {
	OrderID            string `json:"order_id"`
	PaymentRedirectURL string `json:"payment_redirect_url"`
}
