package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/quickbite/quickbite/internal/adapter/payment"
	"github.com/quickbite/quickbite/internal/domain/model"
)

// CheckoutFacadeStub provides controllable behaviour for checkout endpoints.
type CheckoutFacadeStub struct {
	CheckoutFn func(context.Context, string, string, []model.CartItem, model.DeliveryDetails) (*model.Order, *payment.Session, error)
	NotifyFn   func(context.Context, []byte, string) error
}

// Checkout delegates to provided function or returns a default session.
func (s CheckoutFacadeStub) Checkout(ctx context.Context, customerID, restaurantID string, items []model.CartItem, delivery model.DeliveryDetails) (*model.Order, *payment.Session, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, customerID, restaurantID, items, delivery)
	}
	order := &model.Order{ID: "order-1", CustomerID: customerID, RestaurantID: restaurantID, CartItems: items, DeliveryDetails: delivery, Status: model.OrderStatusPending}
	return order, &payment.Session{ID: "sess-1", URL: "https://pay.test/sess-1"}, nil
}

// HandlePaymentNotification delegates to the override or accepts the event.
func (s CheckoutFacadeStub) HandlePaymentNotification(ctx context.Context, payload []byte, signature string) error {
	if s.NotifyFn != nil {
		return s.NotifyFn(ctx, payload, signature)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn           func(context.Context, string) ([]model.Order, error)
	OrderFn            func(context.Context, string, string) (*model.Order, error)
	RestaurantOrdersFn func(context.Context, string) ([]model.Order, error)
	UpdateFn           func(context.Context, string, string, model.OrderStatus) (*model.Order, error)
}

// Orders returns predefined orders for given customer.
func (s OrderFacadeStub) Orders(ctx context.Context, customerID string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, customerID)
	}
	return []model.Order{{ID: "order-1", CustomerID: customerID}}, nil
}

// Order returns one order owned by the customer.
func (s OrderFacadeStub) Order(ctx context.Context, customerID, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, customerID, orderID)
	}
	return &model.Order{ID: orderID, CustomerID: customerID}, nil
}

// RestaurantOrders returns predefined orders for the owner's restaurant.
func (s OrderFacadeStub) RestaurantOrders(ctx context.Context, ownerID string) ([]model.Order, error) {
	if s.RestaurantOrdersFn != nil {
		return s.RestaurantOrdersFn(ctx, ownerID)
	}
	return []model.Order{{ID: "order-1", RestaurantID: "rest-1"}}, nil
}

// UpdateOrderStatus executes configured update handler.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, ownerID, orderID string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, ownerID, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// CatalogFacadeStub simulates restaurant and menu administration.
type CatalogFacadeStub struct {
	CreateRestaurantFn func(context.Context, string, string, string) (*model.Restaurant, error)
	OwnRestaurantFn    func(context.Context, string) (*model.Restaurant, error)
	MenuFn             func(context.Context, string) ([]model.MenuItem, error)
	AddItemFn          func(context.Context, string, *model.MenuItem) (*model.MenuItem, error)
	UpdateItemFn       func(context.Context, string, *model.MenuItem) (*model.MenuItem, error)
	DeleteItemFn       func(context.Context, string, string) error
}

// CreateRestaurant returns a stored restaurant for success scenarios.
func (s CatalogFacadeStub) CreateRestaurant(ctx context.Context, ownerID, name, city string) (*model.Restaurant, error) {
	if s.CreateRestaurantFn != nil {
		return s.CreateRestaurantFn(ctx, ownerID, name, city)
	}
	return &model.Restaurant{ID: "rest-1", OwnerID: ownerID, Name: name, City: city}, nil
}

// OwnRestaurant returns the owner's restaurant.
func (s CatalogFacadeStub) OwnRestaurant(ctx context.Context, ownerID string) (*model.Restaurant, error) {
	if s.OwnRestaurantFn != nil {
		return s.OwnRestaurantFn(ctx, ownerID)
	}
	return &model.Restaurant{ID: "rest-1", OwnerID: ownerID}, nil
}

// Menu returns the restaurant menu.
func (s CatalogFacadeStub) Menu(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	if s.MenuFn != nil {
		return s.MenuFn(ctx, restaurantID)
	}
	return []model.MenuItem{{ID: "item-1", RestaurantID: restaurantID}}, nil
}

// AddMenuItem returns the stored item.
func (s CatalogFacadeStub) AddMenuItem(ctx context.Context, ownerID string, item *model.MenuItem) (*model.MenuItem, error) {
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, ownerID, item)
	}
	created := *item
	created.ID = "item-1"
	return &created, nil
}

// UpdateMenuItem returns the updated item.
func (s CatalogFacadeStub) UpdateMenuItem(ctx context.Context, ownerID string, item *model.MenuItem) (*model.MenuItem, error) {
	if s.UpdateItemFn != nil {
		return s.UpdateItemFn(ctx, ownerID, item)
	}
	updated := *item
	return &updated, nil
}

// DeleteMenuItem executes configured delete handler.
func (s CatalogFacadeStub) DeleteMenuItem(ctx context.Context, ownerID, itemID string) error {
	if s.DeleteItemFn != nil {
		return s.DeleteItemFn(ctx, ownerID, itemID)
	}
	return nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CheckoutFacadeStub
	OrderFacadeStub
	CatalogFacadeStub

	HealthFn func(context.Context) error
}

// Health reports backing store availability.
func (s StorefrontFacadeStub) Health(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

// SweeperFacadeStub mimics worker interactions with the storefront facade.
type SweeperFacadeStub struct {
	Batches [][]model.Order
	StaleFn func(context.Context, time.Time, int) ([]model.Order, error)

	mu             sync.Mutex
	staleCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *SweeperFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *SweeperFacadeStub) Unlock() { s.mu.Unlock() }

// Calls reports how many sweeps ran.
func (s *SweeperFacadeStub) Calls() int {
	return int(atomic.LoadInt32(&s.staleCallCount))
}

// StalePending returns batches from configured queue.
func (s *SweeperFacadeStub) StalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	if s.StaleFn != nil {
		atomic.AddInt32(&s.staleCallCount, 1)
		return s.StaleFn(ctx, olderThan, limit)
	}
	call := atomic.AddInt32(&s.staleCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}
