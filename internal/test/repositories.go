package test

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/quickbite/quickbite/internal/domain/errors"
	"github.com/quickbite/quickbite/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[string]*model.User
	Next  int
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: fmt.Sprintf("user-%d", s.Next), Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// RestaurantRepositoryStub lets tests control restaurant data.
type RestaurantRepositoryStub struct {
	CreateFn     func(context.Context, *model.Restaurant) (*model.Restaurant, error)
	GetByIDFn    func(context.Context, string) (*model.Restaurant, error)
	GetByOwnerFn func(context.Context, string) (*model.Restaurant, error)

	Restaurants []model.Restaurant
	Next        int
}

// Create stores the restaurant and assigns an identifier.
func (s *RestaurantRepositoryStub) Create(ctx context.Context, restaurant *model.Restaurant) (*model.Restaurant, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, restaurant)
	}
	s.Next++
	created := *restaurant
	created.ID = fmt.Sprintf("rest-%d", s.Next)
	s.Restaurants = append(s.Restaurants, created)
	return &created, nil
}

// GetByID returns matched restaurant either via override or stored slice.
func (s *RestaurantRepositoryStub) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, r := range s.Restaurants {
		if r.ID == id {
			restaurant := r
			return &restaurant, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByOwner returns the owner's restaurant or not found.
func (s *RestaurantRepositoryStub) GetByOwner(ctx context.Context, ownerID string) (*model.Restaurant, error) {
	if s.GetByOwnerFn != nil {
		return s.GetByOwnerFn(ctx, ownerID)
	}
	for _, r := range s.Restaurants {
		if r.OwnerID == ownerID {
			restaurant := r
			return &restaurant, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// MenuRepositoryStub stores menu items in-memory for tests.
type MenuRepositoryStub struct {
	CreateFn func(context.Context, *model.MenuItem) (*model.MenuItem, error)
	UpdateFn func(context.Context, *model.MenuItem) (*model.MenuItem, error)
	DeleteFn func(context.Context, string) error

	Items []model.MenuItem
	Next  int
}

// Create stores the menu item and assigns an identifier.
func (s *MenuRepositoryStub) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, item)
	}
	s.Next++
	created := *item
	created.ID = fmt.Sprintf("item-%d", s.Next)
	s.Items = append(s.Items, created)
	return &created, nil
}

// GetByID returns the stored menu item or not found.
func (s *MenuRepositoryStub) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	for _, i := range s.Items {
		if i.ID == id {
			item := i
			return &item, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByRestaurant returns items of the given restaurant.
func (s *MenuRepositoryStub) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	var result []model.MenuItem
	for _, i := range s.Items {
		if i.RestaurantID == restaurantID {
			result = append(result, i)
		}
	}
	return result, nil
}

// Update replaces the stored item.
func (s *MenuRepositoryStub) Update(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, item)
	}
	for idx, i := range s.Items {
		if i.ID == item.ID {
			updated := *item
			updated.RestaurantID = i.RestaurantID
			s.Items[idx] = updated
			return &updated, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the stored item.
func (s *MenuRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for idx, i := range s.Items {
		if i.ID == id {
			s.Items = append(s.Items[:idx], s.Items[idx+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ConfirmCall stores information about ConfirmPending invocations.
type ConfirmCall struct {
	OrderID       string
	SettledAmount int64
}

// OrderUpdateCall stores information about UpdateStatus invocations.
type OrderUpdateCall struct {
	OrderID string
	Status  model.OrderStatus
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn           func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn          func(context.Context, string) (*model.Order, error)
	ListByCustomerFn   func(context.Context, string) ([]model.Order, error)
	ListByRestaurantFn func(context.Context, string) ([]model.Order, error)
	ConfirmPendingFn   func(context.Context, string, int64) (bool, error)
	UpdateStatusFn     func(context.Context, string, model.OrderStatus) (*model.Order, error)
	ListStalePendingFn func(context.Context, time.Time, int) ([]model.Order, error)

	Orders       []model.Order
	Next         int
	ConfirmCalls []ConfirmCall
	UpdateCalls  []OrderUpdateCall
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.Next++
	created := *order
	created.ID = fmt.Sprintf("order-%d", s.Next)
	created.Status = model.OrderStatusPending
	s.Orders = append(s.Orders, created)
	return &created, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByCustomer returns orders from configured slice.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	if s.ListByCustomerFn != nil {
		return s.ListByCustomerFn(ctx, customerID)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.CustomerID == customerID {
			result = append(result, o)
		}
	}
	return result, nil
}

// ListByRestaurant returns orders from configured slice.
func (s *OrderRepositoryStub) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error) {
	if s.ListByRestaurantFn != nil {
		return s.ListByRestaurantFn(ctx, restaurantID)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.RestaurantID == restaurantID {
			result = append(result, o)
		}
	}
	return result, nil
}

// ConfirmPending records the call and applies the guarded transition to the
// stored order when it is pending.
func (s *OrderRepositoryStub) ConfirmPending(ctx context.Context, orderID string, settledAmount int64) (bool, error) {
	s.ConfirmCalls = append(s.ConfirmCalls, ConfirmCall{OrderID: orderID, SettledAmount: settledAmount})
	if s.ConfirmPendingFn != nil {
		return s.ConfirmPendingFn(ctx, orderID, settledAmount)
	}
	for idx, o := range s.Orders {
		if o.ID == orderID && o.Status == model.OrderStatusPending {
			s.Orders[idx].Status = model.OrderStatusConfirmed
			s.Orders[idx].TotalAmount = settledAmount
			return true, nil
		}
	}
	return false, nil
}

// UpdateStatus records update invocations. Like the real repository it
// refuses to touch pending rows.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: orderID, Status: status})
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	for idx, o := range s.Orders {
		if o.ID == orderID && o.Status != model.OrderStatusPending {
			s.Orders[idx].Status = status
			order := s.Orders[idx]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListStalePending returns pending orders older than the cutoff.
func (s *OrderRepositoryStub) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	if s.ListStalePendingFn != nil {
		return s.ListStalePendingFn(ctx, olderThan, limit)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.Status == model.OrderStatusPending && o.CreatedAt.Before(olderThan) {
			result = append(result, o)
			if len(result) == limit {
				break
			}
		}
	}
	return result, nil
}
