package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/quickbite/quickbite/internal/domain/errors"
	"github.com/quickbite/quickbite/internal/domain/model"
	"github.com/quickbite/quickbite/internal/domain/repository"
)

// OrderUseCase encapsulates order query and fulfilment logic.
type OrderUseCase struct {
	orders      repository.OrderRepository
	restaurants repository.RestaurantRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, restaurants repository.RestaurantRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, restaurants: restaurants}
}

// ListByCustomer returns the customer's orders sorted by creation time.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}

// GetForCustomer fetches one order and enforces that it belongs to the customer.
func (u *OrderUseCase) GetForCustomer(ctx context.Context, customerID, orderID string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

// ListForRestaurantOwner returns orders of the owner's restaurant.
func (u *OrderUseCase) ListForRestaurantOwner(ctx context.Context, ownerID string) ([]model.Order, error) {
	restaurant, err := u.restaurants.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrForbidden
		}
		return nil, err
	}
	return u.orders.ListByRestaurant(ctx, restaurant.ID)
}

// UpdateStatusForOwner moves an order to a fulfilment status on behalf of the
// restaurant owner. Pending orders belong to the payment provider: they are
// neither a valid source nor a valid target here, so the owner path and the
// webhook's pending-only transition never act on the same state.
func (u *OrderUseCase) UpdateStatusForOwner(ctx context.Context, ownerID, orderID string, status model.OrderStatus) (*model.Order, error) {
	if _, ok := model.ParseOrderStatus(string(status)); !ok || status == model.OrderStatusPending {
		return nil, domainErrors.ErrInvalidStatus
	}

	restaurant, err := u.restaurants.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrForbidden
		}
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != restaurant.ID {
		return nil, domainErrors.ErrForbidden
	}
	if order.Status == model.OrderStatusPending {
		return nil, domainErrors.ErrInvalidStatus
	}

	return u.orders.UpdateStatus(ctx, orderID, status)
}

// StalePending returns pending orders older than the cutoff, capped at limit.
func (u *OrderUseCase) StalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	return u.orders.ListStalePending(ctx, olderThan, limit)
}
