package handlers

import (
	"context"

	"github.com/quickbite/quickbite/internal/adapter/payment"
	"github.com/quickbite/quickbite/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (string, error)
}

// CheckoutFacade drives order creation and payment reconciliation.
type CheckoutFacade interface {
	Checkout(ctx context.Context, customerID, restaurantID string, items []model.CartItem, delivery model.DeliveryDetails) (*model.Order, *payment.Session, error)
	HandlePaymentNotification(ctx context.Context, payload []byte, signature string) error
}

// OrderFacade encapsulates order query operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context, customerID string) ([]model.Order, error)
	Order(ctx context.Context, customerID, orderID string) (*model.Order, error)
	RestaurantOrders(ctx context.Context, ownerID string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, ownerID, orderID string, status model.OrderStatus) (*model.Order, error)
}

// CatalogFacade provides restaurant and menu administration.
type CatalogFacade interface {
	CreateRestaurant(ctx context.Context, ownerID, name, city string) (*model.Restaurant, error)
	OwnRestaurant(ctx context.Context, ownerID string) (*model.Restaurant, error)
	Menu(ctx context.Context, restaurantID string) ([]model.MenuItem, error)
	AddMenuItem(ctx context.Context, ownerID string, item *model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, ownerID string, item *model.MenuItem) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, ownerID, itemID string) error
}

// HealthFacade reports backing store availability.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CheckoutFacade
	OrderFacade
	CatalogFacade
	HealthFacade
}
