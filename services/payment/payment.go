package payment

import (
	"context"
)

// Webhook event kinds the purchase flow reacts to. Anything else is
// acknowledged and ignored.
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventCheckoutExpired   = "checkout.session.expired"
	EventPaymentFailed     = "checkout.session.async_payment_failed"
)

// CheckoutParams describes the hosted checkout session to open. The
// amount always comes from the stored course price, never the client.
type CheckoutParams struct {
	CourseID    uint
	CourseTitle string
	AmountCents int64
	UserID      uint
	UserEmail   string
}

// CheckoutSession is the provider-side session the client is redirected to.
type CheckoutSession struct {
	ID  string
	URL string
}

// WebhookEvent is a verified provider callback.
type WebhookEvent struct {
	Type      string
	SessionID string
}

// Provider abstracts the payment collaborator so handlers can be tested
// without network calls. StripeProvider is the concrete implementation.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
	// ParseWebhookEvent verifies the callback signature and extracts the
	// event. An error means the signature did not verify.
	ParseWebhookEvent(payload []byte, signature string) (*WebhookEvent, error)
}
