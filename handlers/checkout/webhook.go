package checkout

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/coursemint/api/model"
	"github.com/coursemint/api/services/payment"
	"github.com/coursemint/api/utils/response"
)

// HandleWebhook handles POST /api/stripe-webhook. The raw body and the
// Stripe-Signature header go through signature verification before
// anything is trusted. Events are acknowledged with 200 even when they
// match no pending purchase; Stripe retries anything else.
func (h *CheckoutHandler) HandleWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	signature := c.Get("Stripe-Signature")

	event, err := h.provider.ParseWebhookEvent(payload, signature)
	if err != nil {
		return response.BadRequest(c, "Invalid webhook signature")
	}

	var status model.PurchaseStatus
	switch event.Type {
	case payment.EventCheckoutCompleted:
		status = model.PurchaseStatusCompleted
	case payment.EventCheckoutExpired, payment.EventPaymentFailed:
		status = model.PurchaseStatusFailed
	default:
		// Unhandled event types are acknowledged and dropped.
		return response.Success(c, fiber.Map{"received": true})
	}

	if event.SessionID == "" {
		return response.Success(c, fiber.Map{"received": true})
	}

	updated, err := h.store.FinalizePurchaseBySession(event.SessionID, status)
	if err != nil {
		return response.InternalServerError(c, "Failed to update purchase")
	}
	if !updated {
		// Distinguish a replayed delivery from a session we never issued.
		if purchase, lookupErr := h.store.GetPurchaseByStripeSession(event.SessionID); lookupErr == nil {
			log.Printf("webhook %s replayed for session %s, purchase already %s", event.Type, event.SessionID, purchase.Status)
		} else {
			log.Printf("webhook %s matched no purchase for session %s", event.Type, event.SessionID)
		}
	}

	return response.Success(c, fiber.Map{"received": true})
}
