package contract

import (
	"context"
	"time"

	"getunlocked-be/internal/entity"

	"github.com/google/uuid"
)

// SubscriptionRepository covers subscriber state and the PayPal payment
// ledger, kept together since webhooks mutate both.
type SubscriptionRepository interface {
	FindSubscriber(ctx context.Context, userId uuid.UUID) (*entity.Subscriber, error)
	ActivateSubscription(ctx context.Context, userId uuid.UUID, tier, provider string, start time.Time) error
	DeactivateSubscription(ctx context.Context, userId uuid.UUID, end time.Time) error

	CreatePayment(ctx context.Context, payment *entity.PayPalPayment) error
	FindPaymentByOrderId(ctx context.Context, orderId string) (*entity.PayPalPayment, error)
	FindPaymentBySubscriptionId(ctx context.Context, subscriptionId string) (*entity.PayPalPayment, error)
	MarkPaymentCompleted(ctx context.Context, orderId, captureId string, completedAt time.Time) error
	MarkPaymentFailed(ctx context.Context, orderId string) error
	FindPaymentsByUser(ctx context.Context, userId uuid.UUID) ([]*entity.PayPalPayment, error)
}
