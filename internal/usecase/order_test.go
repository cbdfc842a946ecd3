package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/quickbite/quickbite/internal/domain/errors"
	"github.com/quickbite/quickbite/internal/domain/model"
	testhelpers "github.com/quickbite/quickbite/internal/test"
)

func newOrderFixture() (*OrderUseCase, *testhelpers.OrderRepositoryStub, *testhelpers.RestaurantRepositoryStub) {
	orders := &testhelpers.OrderRepositoryStub{
		Orders: []model.Order{
			{ID: "order-1", CustomerID: "user-7", RestaurantID: "rest-1", Status: model.OrderStatusConfirmed},
			{ID: "order-2", CustomerID: "user-8", RestaurantID: "rest-2", Status: model.OrderStatusConfirmed},
		},
	}
	restaurants := &testhelpers.RestaurantRepositoryStub{
		Restaurants: []model.Restaurant{{ID: "rest-1", OwnerID: "owner-1"}},
	}
	return NewOrderUseCase(orders, restaurants), orders, restaurants
}

func TestOrderListByCustomer(t *testing.T) {
	uc, _, _ := newOrderFixture()

	listed, err := uc.ListByCustomer(context.Background(), "user-7")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != "order-1" {
		t.Fatalf("unexpected orders: %v", listed)
	}
}

func TestOrderGetForCustomer(t *testing.T) {
	uc, _, _ := newOrderFixture()

	order, err := uc.GetForCustomer(context.Background(), "user-7", "order-1")
	if err != nil || order.ID != "order-1" {
		t.Fatalf("unexpected result: %v err=%v", order, err)
	}

	if _, err := uc.GetForCustomer(context.Background(), "user-7", "order-2"); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for foreign order, got %v", err)
	}
	if _, err := uc.GetForCustomer(context.Background(), "user-7", "order-404"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderListForRestaurantOwner(t *testing.T) {
	uc, _, _ := newOrderFixture()

	listed, err := uc.ListForRestaurantOwner(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(listed) != 1 || listed[0].RestaurantID != "rest-1" {
		t.Fatalf("unexpected orders: %v", listed)
	}

	if _, err := uc.ListForRestaurantOwner(context.Background(), "owner-404"); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for owner without restaurant, got %v", err)
	}
}

func TestOrderUpdateStatusForOwner(t *testing.T) {
	uc, orders, _ := newOrderFixture()

	updated, err := uc.UpdateStatusForOwner(context.Background(), "owner-1", "order-1", model.OrderStatusPreparing)
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Status != model.OrderStatusPreparing {
		t.Fatalf("expected preparing status, got %v", updated.Status)
	}
	if len(orders.UpdateCalls) != 1 || orders.UpdateCalls[0].OrderID != "order-1" {
		t.Fatalf("unexpected update calls: %v", orders.UpdateCalls)
	}
}

func TestOrderUpdateStatusValidation(t *testing.T) {
	uc, orders, _ := newOrderFixture()

	if _, err := uc.UpdateStatusForOwner(context.Background(), "owner-1", "order-1", "shipped"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status for unknown value, got %v", err)
	}
	if _, err := uc.UpdateStatusForOwner(context.Background(), "owner-1", "order-1", model.OrderStatusPending); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status for pending target, got %v", err)
	}
	if len(orders.UpdateCalls) != 0 {
		t.Fatalf("expected no update calls, got %d", len(orders.UpdateCalls))
	}
}

func TestOrderUpdateStatusPendingSource(t *testing.T) {
	uc, orders, _ := newOrderFixture()
	orders.Orders = append(orders.Orders, model.Order{
		ID: "order-3", CustomerID: "user-7", RestaurantID: "rest-1",
		Status: model.OrderStatusPending, TotalAmount: 1900,
	})

	targets := []model.OrderStatus{
		model.OrderStatusConfirmed,
		model.OrderStatusPreparing,
		model.OrderStatusDelivered,
	}
	for _, target := range targets {
		if _, err := uc.UpdateStatusForOwner(context.Background(), "owner-1", "order-3", target); !errors.Is(err, domainErrors.ErrInvalidStatus) {
			t.Fatalf("expected invalid status moving pending order to %v, got %v", target, err)
		}
	}
	if len(orders.UpdateCalls) != 0 {
		t.Fatalf("expected no repository update for pending order, got %d", len(orders.UpdateCalls))
	}
	if orders.Orders[2].Status != model.OrderStatusPending {
		t.Fatalf("expected order to stay pending, got %v", orders.Orders[2].Status)
	}

	// Confirmation through the payment path is still open afterwards.
	confirmed, err := orders.ConfirmPending(context.Background(), "order-3", 2000)
	if err != nil || !confirmed {
		t.Fatalf("expected pending order to remain confirmable: confirmed=%v err=%v", confirmed, err)
	}
	if orders.Orders[2].TotalAmount != 2000 {
		t.Fatalf("expected settled amount recorded, got %d", orders.Orders[2].TotalAmount)
	}
}

func TestOrderUpdateStatusOwnership(t *testing.T) {
	uc, _, _ := newOrderFixture()

	if _, err := uc.UpdateStatusForOwner(context.Background(), "owner-404", "order-1", model.OrderStatusPreparing); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for owner without restaurant, got %v", err)
	}
	if _, err := uc.UpdateStatusForOwner(context.Background(), "owner-1", "order-2", model.OrderStatusPreparing); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for foreign restaurant order, got %v", err)
	}
	if _, err := uc.UpdateStatusForOwner(context.Background(), "owner-1", "order-404", model.OrderStatusPreparing); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderStalePending(t *testing.T) {
	uc, orders, _ := newOrderFixture()
	created := time.Now().Add(-2 * time.Hour)
	orders.Orders = append(orders.Orders, model.Order{
		ID: "order-3", CustomerID: "user-7", RestaurantID: "rest-1",
		Status: model.OrderStatusPending, CreatedAt: created,
	})

	stale, err := uc.StalePending(context.Background(), time.Now().Add(-time.Hour), 10)
	if err != nil {
		t.Fatalf("stale pending returned error: %v", err)
	}
	if len(stale) != 1 || stale[0].ID != "order-3" {
		t.Fatalf("unexpected stale orders: %v", stale)
	}
}
