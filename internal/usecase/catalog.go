package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/quickbite/quickbite/internal/domain/errors"
	"github.com/quickbite/quickbite/internal/domain/model"
	"github.com/quickbite/quickbite/internal/domain/repository"
)

// CatalogUseCase manages restaurants and their menus.
type CatalogUseCase struct {
	restaurants repository.RestaurantRepository
	menus       repository.MenuRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(restaurants repository.RestaurantRepository, menus repository.MenuRepository) *CatalogUseCase {
	return &CatalogUseCase{restaurants: restaurants, menus: menus}
}

// CreateRestaurant registers a restaurant for the owner. One restaurant per
// owner is enforced.
func (u *CatalogUseCase) CreateRestaurant(ctx context.Context, ownerID, name, city string) (*model.Restaurant, error) {
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)
	if name == "" || city == "" {
		return nil, domainErrors.ErrInvalidRestaurant
	}

	if _, err := u.restaurants.GetByOwner(ctx, ownerID); err == nil {
		return nil, domainErrors.ErrAlreadyExists
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	return u.restaurants.Create(ctx, &model.Restaurant{OwnerID: ownerID, Name: name, City: city})
}

// GetRestaurant fetches a restaurant by identifier.
func (u *CatalogUseCase) GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	return u.restaurants.GetByID(ctx, id)
}

// RestaurantForOwner fetches the owner's restaurant.
func (u *CatalogUseCase) RestaurantForOwner(ctx context.Context, ownerID string) (*model.Restaurant, error) {
	return u.restaurants.GetByOwner(ctx, ownerID)
}

// ListMenu returns the menu of a restaurant.
func (u *CatalogUseCase) ListMenu(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	if _, err := u.restaurants.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}
	return u.menus.ListByRestaurant(ctx, restaurantID)
}

// AddMenuItem adds a menu item to the owner's restaurant.
func (u *CatalogUseCase) AddMenuItem(ctx context.Context, ownerID string, item *model.MenuItem) (*model.MenuItem, error) {
	if strings.TrimSpace(item.Name) == "" || item.Price <= 0 {
		return nil, domainErrors.ErrInvalidMenuItem
	}

	restaurant, err := u.ownedRestaurant(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	toCreate := *item
	toCreate.RestaurantID = restaurant.ID
	return u.menus.Create(ctx, &toCreate)
}

// UpdateMenuItem edits a menu item of the owner's restaurant. Orders placed
// before the edit keep their snapshot prices.
func (u *CatalogUseCase) UpdateMenuItem(ctx context.Context, ownerID string, item *model.MenuItem) (*model.MenuItem, error) {
	if strings.TrimSpace(item.Name) == "" || item.Price <= 0 {
		return nil, domainErrors.ErrInvalidMenuItem
	}

	restaurant, err := u.ownedRestaurant(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	existing, err := u.menus.GetByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if existing.RestaurantID != restaurant.ID {
		return nil, domainErrors.ErrForbidden
	}

	return u.menus.Update(ctx, item)
}

// DeleteMenuItem removes a menu item of the owner's restaurant.
func (u *CatalogUseCase) DeleteMenuItem(ctx context.Context, ownerID, itemID string) error {
	restaurant, err := u.ownedRestaurant(ctx, ownerID)
	if err != nil {
		return err
	}

	existing, err := u.menus.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if existing.RestaurantID != restaurant.ID {
		return domainErrors.ErrForbidden
	}

	return u.menus.Delete(ctx, itemID)
}

func (u *CatalogUseCase) ownedRestaurant(ctx context.Context, ownerID string) (*model.Restaurant, error) {
	restaurant, err := u.restaurants.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrForbidden
		}
		return nil, err
	}
	return restaurant, nil
}
