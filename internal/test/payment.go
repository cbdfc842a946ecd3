package test

import (
	"context"
	"io"
	"log/slog"

	"github.com/quickbite/quickbite/internal/adapter/payment"
	"github.com/quickbite/quickbite/internal/domain/model"
)

// NewNopLogger returns a logger that discards all output.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// GatewayStub simulates the payment provider for tests.
type GatewayStub struct {
	CreateSessionFn func(context.Context, *model.Order) (*payment.Session, error)
	VerifyFn        func([]byte, string) (*payment.Notification, error)

	CreatedFor []string
}

// CreateSession tracks invocations and returns configured responses.
func (s *GatewayStub) CreateSession(ctx context.Context, order *model.Order) (*payment.Session, error) {
	s.CreatedFor = append(s.CreatedFor, order.ID)
	if s.CreateSessionFn != nil {
		return s.CreateSessionFn(ctx, order)
	}
	return &payment.Session{ID: "sess-" + order.ID, URL: "https://pay.test/" + order.ID}, nil
}

// VerifyNotification delegates to the override or accepts the payload as a
// completed event for order "order-1".
func (s *GatewayStub) VerifyNotification(payload []byte, signature string) (*payment.Notification, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(payload, signature)
	}
	return &payment.Notification{Type: payment.EventCheckoutCompleted, OrderID: "order-1", SettledAmount: 100}, nil
}

var _ payment.Gateway = (*GatewayStub)(nil)
