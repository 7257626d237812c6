package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"cybershield-academy/internal/app"
)

const webhookSecretHeader = "X-Webhook-Secret"

// WebhookHandler ingests payment processor events and maps them onto
// subscription state. Unknown event types are acknowledged and dropped so the
// processor does not retry them forever.
type WebhookHandler struct {
	access *app.AccessService
	secret string
	log    *zap.Logger
}

func NewWebhookHandler(access *app.AccessService, secret string, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{access: access, secret: secret, log: log}
}

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		UserID         string `json:"userId"`
		CustomerID     string `json:"customerId"`
		SubscriptionID string `json:"subscriptionId"`
	} `json:"data"`
}

// ServePayment handles POST /webhook/payment.
func (h *WebhookHandler) ServePayment(w http.ResponseWriter, r *http.Request) {
	if h.secret == "" {
		writeJSONError(w, http.StatusServiceUnavailable, "webhook not configured")
		return
	}
	given := r.Header.Get(webhookSecretHeader)
	if subtle.ConstantTimeCompare([]byte(given), []byte(h.secret)) != 1 {
		writeJSONError(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	var event webhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid event body")
		return
	}

	var err error
	switch event.Type {
	case "checkout.session.completed":
		err = h.access.Activate(r.Context(), event.Data.UserID, event.Data.CustomerID, event.Data.SubscriptionID)
	case "customer.subscription.deleted":
		err = h.access.Cancel(r.Context(), event.Data.SubscriptionID)
	default:
		h.log.Debug("ignoring webhook event", zap.String("type", event.Type))
		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
		return
	}
	if err != nil {
		h.log.Warn("webhook handling failed",
			zap.String("type", event.Type), zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "event handling failed")
		return
	}

	h.log.Info("webhook event handled", zap.String("type", event.Type))
	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}
