package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/quickbite/quickbite/internal/adapter/payment"
	domainErrors "github.com/quickbite/quickbite/internal/domain/errors"
	"github.com/quickbite/quickbite/internal/domain/model"
	"github.com/quickbite/quickbite/internal/domain/repository"
)

// CheckoutUseCase drives the order creation and payment reconciliation flow.
type CheckoutUseCase struct {
	orders      repository.OrderRepository
	restaurants repository.RestaurantRepository
	gateway     payment.Gateway
	logger      *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(orders repository.OrderRepository, restaurants repository.RestaurantRepository, gateway payment.Gateway, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, restaurants: restaurants, gateway: gateway, logger: logger}
}

// Checkout persists a pending order from the cart snapshot and opens a payment
// session for it. The order stays pending until the provider confirms payment.
func (u *CheckoutUseCase) Checkout(ctx context.Context, customerID, restaurantID string, items []model.CartItem, delivery model.DeliveryDetails) (*model.Order, *payment.Session, error) {
	if len(items) == 0 {
		return nil, nil, domainErrors.ErrEmptyCart
	}
	for _, item := range items {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			return nil, nil, domainErrors.ErrInvalidQuantity
		}
	}
	if !validDelivery(delivery) {
		return nil, nil, domainErrors.ErrInvalidDelivery
	}

	if _, err := u.restaurants.GetByID(ctx, restaurantID); err != nil {
		return nil, nil, err
	}

	order := &model.Order{
		CustomerID:      customerID,
		RestaurantID:    restaurantID,
		DeliveryDetails: delivery,
		CartItems:       items,
	}
	order.TotalAmount = order.SnapshotTotal()

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, nil, err
	}

	session, err := u.gateway.CreateSession(ctx, created)
	if err != nil {
		// The pending order is kept; it never confirms without a webhook.
		return nil, nil, err
	}

	u.logger.Info("checkout session opened",
		slog.String("order", created.ID),
		slog.String("session", session.ID),
		slog.Int64("amount", created.TotalAmount),
	)
	return created, session, nil
}

// HandlePaymentNotification verifies a provider event and reconciles the
// referenced order. Events that reference no known pending order are dropped
// so the provider stops redelivering them.
func (u *CheckoutUseCase) HandlePaymentNotification(ctx context.Context, payload []byte, signature string) error {
	notification, err := u.gateway.VerifyNotification(payload, signature)
	if err != nil {
		return err
	}

	if notification.Type != payment.EventCheckoutCompleted {
		u.logger.Debug("ignoring payment event", slog.String("type", notification.Type))
		return nil
	}
	if notification.OrderID == "" {
		u.logger.Warn("completed payment event without order reference")
		return nil
	}

	confirmed, err := u.orders.ConfirmPending(ctx, notification.OrderID, notification.SettledAmount)
	if err != nil {
		return err
	}
	if !confirmed {
		u.logger.Info("payment event for non-pending order",
			slog.String("order", notification.OrderID),
		)
		return nil
	}

	u.logger.Info("order confirmed",
		slog.String("order", notification.OrderID),
		slog.Int64("settled_amount", notification.SettledAmount),
	)
	return nil
}

func validDelivery(d model.DeliveryDetails) bool {
	for _, field := range []string{d.RecipientName, d.Email, d.Address, d.City} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}
