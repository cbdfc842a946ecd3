package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/quickbite/quickbite/internal/domain/model"
)

// StripeGateway implements Gateway via the Stripe hosted checkout API.
type StripeGateway struct {
	client        *client.API
	webhookSecret string
	currency      string
	successURL    string
	cancelURL     string
	logger        *slog.Logger
}

// NewStripeGateway creates a Stripe-backed gateway.
func NewStripeGateway(apiKey, webhookSecret, currency, successURL, cancelURL string, logger *slog.Logger) (*StripeGateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("stripe api key must be provided")
	}
	if webhookSecret == "" {
		return nil, fmt.Errorf("stripe webhook secret must be provided")
	}
	return &StripeGateway{
		client:        client.New(apiKey, nil),
		webhookSecret: webhookSecret,
		currency:      currency,
		successURL:    successURL,
		cancelURL:     cancelURL,
		logger:        logger,
	}, nil
}

// CreateSession opens a hosted checkout session with one line item per cart
// entry and the order id attached as metadata.
func (g *StripeGateway) CreateSession(ctx context.Context, order *model.Order) (*Session, error) {
	params := g.sessionParams(order)
	params.Context = ctx

	sess, err := g.client.CheckoutSessions.New(params)
	if err != nil {
		g.logger.Error("stripe session create failed",
			slog.String("order", order.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %v", ErrSessionCreate, err)
	}

	return &Session{ID: sess.ID, URL: sess.URL}, nil
}

func (g *StripeGateway) sessionParams(order *model.Order) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(order.CartItems))
	for _, item := range order.CartItems {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Image != "" {
			productData.Images = []*string{stripe.String(item.Image)}
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(g.currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(item.UnitPrice),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(g.successURL),
		CancelURL:          stripe.String(g.cancelURL),
	}
	params.AddMetadata("orderId", order.ID)
	return params
}

// VerifyNotification checks the provider signature over the raw payload and
// extracts order reconciliation data from completion events.
func (g *StripeGateway) VerifyNotification(payload []byte, signature string) (*Notification, error) {
	if err := webhook.ValidatePayload(payload, signature, g.webhookSecret); err != nil {
		return nil, ErrSignatureInvalid
	}

	// A verified payload that does not decode never will; reporting an
	// error would make the provider redeliver it forever, so it is logged
	// and acknowledged as an event with nothing to reconcile.
	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		g.logger.Warn("undecodable payment event", slog.String("error", err.Error()))
		return &Notification{}, nil
	}

	notification := &Notification{Type: string(event.Type)}
	if notification.Type != EventCheckoutCompleted {
		return notification, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		g.logger.Warn("undecodable checkout session payload", slog.String("error", err.Error()))
		return notification, nil
	}

	notification.OrderID = sess.Metadata["orderId"]
	notification.SettledAmount = sess.AmountTotal
	return notification, nil
}
