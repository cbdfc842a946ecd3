package app

import (
	"context"
	"time"

	"github.com/quickbite/quickbite/internal/adapter/payment"
	"github.com/quickbite/quickbite/internal/domain/model"
	"github.com/quickbite/quickbite/internal/usecase"
)

// HealthChecker reports backing store availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// StorefrontFacade is the single application surface consumed by the HTTP
// layer and the background sweeper.
type StorefrontFacade struct {
	auth     *usecase.AuthUseCase
	checkout *usecase.CheckoutUseCase
	orders   *usecase.OrderUseCase
	catalog  *usecase.CatalogUseCase
	health   HealthChecker
}

// NewStorefrontFacade constructs StorefrontFacade.
func NewStorefrontFacade(auth *usecase.AuthUseCase, checkout *usecase.CheckoutUseCase, orders *usecase.OrderUseCase, catalog *usecase.CatalogUseCase, health HealthChecker) *StorefrontFacade {
	return &StorefrontFacade{auth: auth, checkout: checkout, orders: orders, catalog: catalog, health: health}
}

func (f *StorefrontFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) Checkout(ctx context.Context, customerID, restaurantID string, items []model.CartItem, delivery model.DeliveryDetails) (*model.Order, *payment.Session, error) {
	return f.checkout.Checkout(ctx, customerID, restaurantID, items, delivery)
}

func (f *StorefrontFacade) HandlePaymentNotification(ctx context.Context, payload []byte, signature string) error {
	return f.checkout.HandlePaymentNotification(ctx, payload, signature)
}

func (f *StorefrontFacade) Orders(ctx context.Context, customerID string) ([]model.Order, error) {
	return f.orders.ListByCustomer(ctx, customerID)
}

func (f *StorefrontFacade) Order(ctx context.Context, customerID, orderID string) (*model.Order, error) {
	return f.orders.GetForCustomer(ctx, customerID, orderID)
}

func (f *StorefrontFacade) RestaurantOrders(ctx context.Context, ownerID string) ([]model.Order, error) {
	return f.orders.ListForRestaurantOwner(ctx, ownerID)
}

func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, ownerID, orderID string, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatusForOwner(ctx, ownerID, orderID, status)
}

func (f *StorefrontFacade) CreateRestaurant(ctx context.Context, ownerID, name, city string) (*model.Restaurant, error) {
	return f.catalog.CreateRestaurant(ctx, ownerID, name, city)
}

func (f *StorefrontFacade) OwnRestaurant(ctx context.Context, ownerID string) (*model.Restaurant, error) {
	return f.catalog.RestaurantForOwner(ctx, ownerID)
}

func (f *StorefrontFacade) Menu(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	return f.catalog.ListMenu(ctx, restaurantID)
}

func (f *StorefrontFacade) AddMenuItem(ctx context.Context, ownerID string, item *model.MenuItem) (*model.MenuItem, error) {
	return f.catalog.AddMenuItem(ctx, ownerID, item)
}

func (f *StorefrontFacade) UpdateMenuItem(ctx context.Context, ownerID string, item *model.MenuItem) (*model.MenuItem, error) {
	return f.catalog.UpdateMenuItem(ctx, ownerID, item)
}

func (f *StorefrontFacade) DeleteMenuItem(ctx context.Context, ownerID, itemID string) error {
	return f.catalog.DeleteMenuItem(ctx, ownerID, itemID)
}

func (f *StorefrontFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

func (f *StorefrontFacade) StalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	return f.orders.StalePending(ctx, olderThan, limit)
}
