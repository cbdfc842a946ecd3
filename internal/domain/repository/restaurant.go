package repository

import (
	"context"

	"github.com/quickbite/quickbite/internal/domain/model"
)

// RestaurantRepository describes persistence operations with restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *model.Restaurant) (*model.Restaurant, error)
	GetByID(ctx context.Context, id string) (*model.Restaurant, error)
	GetByOwner(ctx context.Context, ownerID string) (*model.Restaurant, error)
}
