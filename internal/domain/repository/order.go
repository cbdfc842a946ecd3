package repository

import (
	"context"
	"time"

	"github.com/quickbite/quickbite/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error)
	// ConfirmPending atomically moves the order from pending to confirmed
	// and overwrites the total with the settled amount. It reports whether
	// the transition happened; false means the order was not pending.
	ConfirmPending(ctx context.Context, orderID string, settledAmount int64) (bool, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)
	ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error)
}
