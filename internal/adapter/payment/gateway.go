package payment

import (
	"context"
	"errors"

	"github.com/quickbite/quickbite/internal/domain/model"
)

// EventCheckoutCompleted is the only provider event type that confirms an order.
const EventCheckoutCompleted = "checkout.session.completed"

var (
	// ErrSignatureInvalid indicates the webhook payload failed signature
	// verification. No further detail is exposed on purpose.
	ErrSignatureInvalid = errors.New("webhook signature invalid")

	// ErrSessionCreate indicates the provider refused or failed to open a
	// hosted checkout session.
	ErrSessionCreate = errors.New("payment session create failed")
)

// Session is the provider-hosted checkout session handle. It is not
// persisted; the order id embedded in session metadata is its only durable
// trace.
type Session struct {
	ID  string
	URL string
}

// Notification is a verified provider event. OrderID and SettledAmount are
// populated only for checkout completion events.
type Notification struct {
	Type          string
	OrderID       string
	SettledAmount int64
}

// Gateway exposes payment provider operations used by the checkout flow.
type Gateway interface {
	CreateSession(ctx context.Context, order *model.Order) (*Session, error)
	VerifyNotification(payload []byte, signature string) (*Notification, error)
}
