package mapper

import (
	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"
)

type SubscriberMapper struct{}

func NewSubscriberMapper() *SubscriberMapper {
	return &SubscriberMapper{}
}

func (m *SubscriberMapper) ToEntity(s *model.Subscriber) *entity.Subscriber {
	if s == nil {
		return nil
	}
	return &entity.Subscriber{
		Id:                s.Id,
		UserId:            s.UserId,
		Subscribed:        s.Subscribed,
		SubscriptionTier:  s.SubscriptionTier,
		SubscriptionStart: s.SubscriptionStart,
		SubscriptionEnd:   s.SubscriptionEnd,
		PaymentProvider:   s.PaymentProvider,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (m *SubscriberMapper) ToModel(s *entity.Subscriber) *model.Subscriber {
	if s == nil {
		return nil
	}
	return &model.Subscriber{
		Id:                s.Id,
		UserId:            s.UserId,
		Subscribed:        s.Subscribed,
		SubscriptionTier:  s.SubscriptionTier,
		SubscriptionStart: s.SubscriptionStart,
		SubscriptionEnd:   s.SubscriptionEnd,
		PaymentProvider:   s.PaymentProvider,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (m *SubscriberMapper) PaymentToEntity(p *model.PayPalPayment) *entity.PayPalPayment {
	if p == nil {
		return nil
	}
	return &entity.PayPalPayment{
		Id:                   p.Id,
		UserId:               p.UserId,
		PlanName:             p.PlanName,
		PayPalOrderId:        p.PayPalOrderId,
		PayPalSubscriptionId: p.PayPalSubscriptionId,
		PayPalCaptureId:      p.PayPalCaptureId,
		Amount:               p.Amount,
		Currency:             p.Currency,
		Status:               entity.PaymentStatus(p.Status),
		IsRecurring:          p.IsRecurring,
		CompletedAt:          p.CompletedAt,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func (m *SubscriberMapper) PaymentToModel(p *entity.PayPalPayment) *model.PayPalPayment {
	if p == nil {
		return nil
	}
	return &model.PayPalPayment{
		Id:                   p.Id,
		UserId:               p.UserId,
		PlanName:             p.PlanName,
		PayPalOrderId:        p.PayPalOrderId,
		PayPalSubscriptionId: p.PayPalSubscriptionId,
		PayPalCaptureId:      p.PayPalCaptureId,
		Amount:               p.Amount,
		Currency:             p.Currency,
		Status:               string(p.Status),
		IsRecurring:          p.IsRecurring,
		CompletedAt:          p.CompletedAt,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
