package app

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/quickbite/quickbite/internal/domain/errors"
	"github.com/quickbite/quickbite/internal/domain/model"
	testhelpers "github.com/quickbite/quickbite/internal/test"
	"github.com/quickbite/quickbite/internal/usecase"
)

type healthCheckerStub struct {
	err error
}

func (h healthCheckerStub) HealthCheck(ctx context.Context) error { return h.err }

type facadeFixture struct {
	facade      *StorefrontFacade
	users       *testhelpers.UserRepositoryStub
	orders      *testhelpers.OrderRepositoryStub
	restaurants *testhelpers.RestaurantRepositoryStub
	menus       *testhelpers.MenuRepositoryStub
	gateway     *testhelpers.GatewayStub
	health      *healthCheckerStub
}

func newFacade() facadeFixture {
	users := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (string, error) { return "user-99", nil }}
	authUC := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, strategy)

	orders := &testhelpers.OrderRepositoryStub{}
	restaurants := &testhelpers.RestaurantRepositoryStub{
		Restaurants: []model.Restaurant{{ID: "rest-1", OwnerID: "owner-1", Name: "Pizza Place", City: "Berlin"}},
	}
	menus := &testhelpers.MenuRepositoryStub{}
	gateway := &testhelpers.GatewayStub{}
	logger := testhelpers.NewNopLogger()

	checkoutUC := usecase.NewCheckoutUseCase(orders, restaurants, gateway, logger)
	orderUC := usecase.NewOrderUseCase(orders, restaurants)
	catalogUC := usecase.NewCatalogUseCase(restaurants, menus)
	health := &healthCheckerStub{}

	facade := NewStorefrontFacade(authUC, checkoutUC, orderUC, catalogUC, health)
	return facadeFixture{facade: facade, users: users, orders: orders, restaurants: restaurants, menus: menus, gateway: gateway, health: health}
}

func TestStorefrontFacadeAuth(t *testing.T) {
	fx := newFacade()
	token, err := fx.facade.Register(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := fx.users.GetByLogin(context.Background(), "user")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Login != "user" {
		t.Fatalf("unexpected stored login %q", stored.Login)
	}

	token, err = fx.facade.Authenticate(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	id, err := fx.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != "user-99" {
		t.Fatalf("expected id user-99, got %q", id)
	}
}

func TestStorefrontFacadeCheckout(t *testing.T) {
	fx := newFacade()
	items := []model.CartItem{{MenuItemID: "item-1", Name: "Margherita", UnitPrice: 950, Quantity: 2}}
	delivery := model.DeliveryDetails{RecipientName: "Jo", Email: "jo@example.com", Address: "Main St 1", City: "Berlin"}

	order, session, err := fx.facade.Checkout(context.Background(), "user-7", "rest-1", items, delivery)
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}
	if order.TotalAmount != 1900 {
		t.Fatalf("expected snapshot total 1900, got %d", order.TotalAmount)
	}
	if session == nil || session.URL == "" {
		t.Fatalf("expected payment session, got %v", session)
	}
	if len(fx.gateway.CreatedFor) != 1 {
		t.Fatalf("expected one session created, got %d", len(fx.gateway.CreatedFor))
	}

	if err := fx.facade.HandlePaymentNotification(context.Background(), []byte("{}"), "sig"); err != nil {
		t.Fatalf("notification returned error: %v", err)
	}
	if len(fx.orders.ConfirmCalls) != 1 {
		t.Fatalf("expected one confirm call, got %d", len(fx.orders.ConfirmCalls))
	}
}

func TestStorefrontFacadeOrders(t *testing.T) {
	fx := newFacade()
	fx.orders.Orders = []model.Order{
		{ID: "order-1", CustomerID: "user-7", RestaurantID: "rest-1", Status: model.OrderStatusConfirmed},
		{ID: "order-2", CustomerID: "user-8", RestaurantID: "rest-1", Status: model.OrderStatusConfirmed},
	}

	listed, err := fx.facade.Orders(context.Background(), "user-7")
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one order, got %v err=%v", listed, err)
	}

	order, err := fx.facade.Order(context.Background(), "user-7", "order-1")
	if err != nil || order.ID != "order-1" {
		t.Fatalf("unexpected order result: %v err=%v", order, err)
	}
	if _, err := fx.facade.Order(context.Background(), "user-7", "order-2"); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for foreign order, got %v", err)
	}

	restaurantOrders, err := fx.facade.RestaurantOrders(context.Background(), "owner-1")
	if err != nil || len(restaurantOrders) != 2 {
		t.Fatalf("expected two restaurant orders, got %v err=%v", restaurantOrders, err)
	}

	updated, err := fx.facade.UpdateOrderStatus(context.Background(), "owner-1", "order-1", model.OrderStatusPreparing)
	if err != nil {
		t.Fatalf("update status error: %v", err)
	}
	if updated.Status != model.OrderStatusPreparing {
		t.Fatalf("expected preparing status, got %v", updated.Status)
	}

	stale, err := fx.facade.StalePending(context.Background(), time.Now().Add(time.Hour), 10)
	if err != nil {
		t.Fatalf("stale pending error: %v", err)
	}
	if len(stale) != 0 {
		t.Fatalf("expected no stale pending orders, got %d", len(stale))
	}
}

func TestStorefrontFacadeCatalog(t *testing.T) {
	fx := newFacade()

	restaurant, err := fx.facade.CreateRestaurant(context.Background(), "owner-2", "Burger Bar", "Hamburg")
	if err != nil {
		t.Fatalf("create restaurant error: %v", err)
	}
	if restaurant.OwnerID != "owner-2" {
		t.Fatalf("unexpected owner %q", restaurant.OwnerID)
	}

	own, err := fx.facade.OwnRestaurant(context.Background(), "owner-1")
	if err != nil || own.ID != "rest-1" {
		t.Fatalf("unexpected own restaurant: %v err=%v", own, err)
	}

	item, err := fx.facade.AddMenuItem(context.Background(), "owner-1", &model.MenuItem{Name: "Margherita", Price: 950, Available: true})
	if err != nil {
		t.Fatalf("add menu item error: %v", err)
	}
	if item.RestaurantID != "rest-1" {
		t.Fatalf("expected item bound to rest-1, got %q", item.RestaurantID)
	}

	menu, err := fx.facade.Menu(context.Background(), "rest-1")
	if err != nil || len(menu) != 1 {
		t.Fatalf("expected one menu item, got %v err=%v", menu, err)
	}

	item.Price = 1050
	updated, err := fx.facade.UpdateMenuItem(context.Background(), "owner-1", item)
	if err != nil || updated.Price != 1050 {
		t.Fatalf("unexpected update result: %v err=%v", updated, err)
	}

	if err := fx.facade.DeleteMenuItem(context.Background(), "owner-1", item.ID); err != nil {
		t.Fatalf("delete menu item error: %v", err)
	}
}

func TestStorefrontFacadeHealth(t *testing.T) {
	fx := newFacade()
	if err := fx.facade.Health(context.Background()); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}
	fx.health.err = errors.New("pool closed")
	if err := fx.facade.Health(context.Background()); err == nil {
		t.Fatal("expected health error")
	}
}
