package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tier is the resolved feature level for a user.
type Tier string

const (
	TierFree   Tier = "free"
	TierPlus   Tier = "plus"
	TierBeyond Tier = "beyond"
)

// Plan slugs accepted at checkout.
const (
	PlanPlus         = "unlocked-plus"
	PlanBeyond       = "unlocked-beyond"
	PlanEchoMonthly  = "unlocked-echo-monthly"
	PlanEchoLifetime = "unlocked-echo-lifetime"
)

// TierForPlan maps a plan slug to the feature tier it grants. Echo plans
// are add-ons and grant Plus-level access.
func TierForPlan(plan string) Tier {
	switch plan {
	case PlanBeyond:
		return TierBeyond
	case PlanPlus, PlanEchoMonthly, PlanEchoLifetime:
		return TierPlus
	default:
		return TierFree
	}
}

// Subscriber is the per-user subscription record reconciled by payment
// webhooks. Entitlement reads never call the payment provider.
type Subscriber struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	Subscribed        bool
	SubscriptionTier  string
	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time
	PaymentProvider   string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PayPalPayment is one checkout attempt against PayPal.
type PayPalPayment struct {
	Id                   uuid.UUID
	UserId               uuid.UUID
	PlanName             string
	PayPalOrderId        string
	PayPalSubscriptionId *string
	PayPalCaptureId      *string
	Amount               string
	Currency             string
	Status               PaymentStatus
	IsRecurring          bool
	CompletedAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
