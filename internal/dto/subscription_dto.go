package dto

import (
	"time"

	"github.com/google/uuid"

	"getunlocked-be/internal/entity"
)

type CreatePaymentRequest struct {
	PlanName string `json:"plan_name" validate:"required"`
}

type CreatePaymentResponse struct {
	PaymentId   uuid.UUID `json:"payment_id"`
	OrderId     string    `json:"order_id"`
	ApprovalUrl string    `json:"approval_url"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
}

type CapturePaymentRequest struct {
	OrderId string `json:"order_id" validate:"required"`
}

type SubscriptionStatusResponse struct {
	Subscribed       bool       `json:"subscribed"`
	SubscriptionTier string     `json:"subscription_tier,omitempty"`
	SubscriptionEnd  *time.Time `json:"subscription_end,omitempty"`
}

type EntitlementResponse struct {
	Tier              string     `json:"tier"`
	Subscribed        bool       `json:"subscribed"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`
	CanUseDNA         bool       `json:"can_use_dna"`
	CanUseDigest      bool       `json:"can_use_digest"`
	UnlimitedMessages bool       `json:"unlimited_messages"`
}

type PaymentResponse struct {
	Id          uuid.UUID  `json:"id"`
	PlanName    string     `json:"plan_name"`
	OrderId     string     `json:"order_id"`
	Amount      string     `json:"amount"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func PaymentResponseFrom(p *entity.PayPalPayment) PaymentResponse {
	return PaymentResponse{
		Id:          p.Id,
		PlanName:    p.PlanName,
		OrderId:     p.PayPalOrderId,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Status:      string(p.Status),
		CompletedAt: p.CompletedAt,
		CreatedAt:   p.CreatedAt,
	}
}
