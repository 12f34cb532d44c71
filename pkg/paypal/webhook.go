package paypal

import "encoding/json"

// Webhook event types the payment service reacts to.
const (
	EventPaymentCaptureCompleted   = "PAYMENT.CAPTURE.COMPLETED"
	EventSubscriptionActivated     = "BILLING.SUBSCRIPTION.ACTIVATED"
	EventSubscriptionCancelled     = "BILLING.SUBSCRIPTION.CANCELLED"
	EventSubscriptionPaymentFailed = "BILLING.SUBSCRIPTION.PAYMENT.FAILED"
)

// WebhookEvent is the envelope PayPal delivers. Resource is kept raw because
// its shape depends on the event type.
type WebhookEvent struct {
	ID           string          `json:"id"`
	EventType    string          `json:"event_type"`
	ResourceType string          `json:"resource_type"`
	Resource     json.RawMessage `json:"resource"`
	CreateTime   string          `json:"create_time"`
}

// WebhookResource holds the fields shared by the resources we care about.
type WebhookResource struct {
	ID string `json:"id"`
}

func ParseWebhookEvent(body []byte) (*WebhookEvent, error) {
	var ev WebhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// ResourceID extracts the resource id (order id for captures, subscription id
// for billing events).
func (e *WebhookEvent) ResourceID() string {
	var r WebhookResource
	if err := json.Unmarshal(e.Resource, &r); err != nil {
		return ""
	}
	return r.ID
}
