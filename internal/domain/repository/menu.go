package repository

import (
	"context"

	"github.com/quickbite/quickbite/internal/domain/model"
)

// MenuRepository describes persistence operations with menu items.
type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.MenuItem, error)
	Update(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	Delete(ctx context.Context, id string) error
}
