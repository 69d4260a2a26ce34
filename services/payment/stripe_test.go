package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
)

const testWebhookSecret = "whsec_test_secret"

// signPayload builds a Stripe-Signature header the way Stripe signs
// webhook deliveries.
func signPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func eventPayload(eventType, sessionID string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":"evt_test_1","object":"event","api_version":%q,"type":%q,"data":{"object":{"id":%q,"object":"checkout.session"}}}`,
		stripe.APIVersion, eventType, sessionID,
	))
}

func TestParseWebhookEventValidSignature(t *testing.T) {
	provider := NewStripeProvider("sk_test_key", testWebhookSecret, "http://localhost/success", "http://localhost/cancel")

	payload := eventPayload(EventCheckoutCompleted, "cs_test_123")
	signature := signPayload(payload, testWebhookSecret, time.Now())

	event, err := provider.ParseWebhookEvent(payload, signature)
	require.NoError(t, err)
	assert.Equal(t, EventCheckoutCompleted, event.Type)
	assert.Equal(t, "cs_test_123", event.SessionID)
}

func TestParseWebhookEventWrongSecret(t *testing.T) {
	provider := NewStripeProvider("sk_test_key", testWebhookSecret, "http://localhost/success", "http://localhost/cancel")

	payload := eventPayload(EventCheckoutCompleted, "cs_test_123")
	signature := signPayload(payload, "whsec_other_secret", time.Now())

	_, err := provider.ParseWebhookEvent(payload, signature)
	assert.Error(t, err)
}

func TestParseWebhookEventTamperedPayload(t *testing.T) {
	provider := NewStripeProvider("sk_test_key", testWebhookSecret, "http://localhost/success", "http://localhost/cancel")

	payload := eventPayload(EventCheckoutCompleted, "cs_test_123")
	signature := signPayload(payload, testWebhookSecret, time.Now())
	tampered := eventPayload(EventCheckoutCompleted, "cs_test_456")

	_, err := provider.ParseWebhookEvent(tampered, signature)
	assert.Error(t, err)
}

func TestParseWebhookEventStaleTimestamp(t *testing.T) {
	provider := NewStripeProvider("sk_test_key", testWebhookSecret, "http://localhost/success", "http://localhost/cancel")

	payload := eventPayload(EventCheckoutCompleted, "cs_test_123")
	signature := signPayload(payload, testWebhookSecret, time.Now().Add(-time.Hour))

	_, err := provider.ParseWebhookEvent(payload, signature)
	assert.Error(t, err)
}

func TestParseWebhookEventUnhandledType(t *testing.T) {
	provider := NewStripeProvider("sk_test_key", testWebhookSecret, "http://localhost/success", "http://localhost/cancel")

	payload := eventPayload("invoice.paid", "")
	signature := signPayload(payload, testWebhookSecret, time.Now())

	event, err := provider.ParseWebhookEvent(payload, signature)
	require.NoError(t, err)
	assert.Equal(t, "invoice.paid", event.Type)
	assert.Empty(t, event.SessionID)
}
