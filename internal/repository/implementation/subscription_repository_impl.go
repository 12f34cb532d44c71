package implementation

import (
	"context"
	"errors"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/mapper"
	"getunlocked-be/internal/model"
	"getunlocked-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriberMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriberMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) FindSubscriber(ctx context.Context, userId uuid.UUID) (*entity.Subscriber, error) {
	var m model.Subscriber
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// ActivateSubscription upserts the subscriber row keyed by user id. The end
// date is cleared since the provider drives recurring billing.
func (r *SubscriptionRepositoryImpl) ActivateSubscription(ctx context.Context, userId uuid.UUID, tier, provider string, start time.Time) error {
	m := &model.Subscriber{
		Id:                uuid.New(),
		UserId:            userId,
		Subscribed:        true,
		SubscriptionTier:  tier,
		SubscriptionStart: &start,
		SubscriptionEnd:   nil,
		PaymentProvider:   provider,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"subscribed", "subscription_tier", "subscription_start",
			"subscription_end", "payment_provider", "updated_at",
		}),
	}).Create(m).Error
}

func (r *SubscriptionRepositoryImpl) DeactivateSubscription(ctx context.Context, userId uuid.UUID, end time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Subscriber{}).
		Where("user_id = ?", userId).
		Updates(map[string]interface{}{
			"subscribed":       false,
			"subscription_end": end,
		}).Error
}

func (r *SubscriptionRepositoryImpl) CreatePayment(ctx context.Context, payment *entity.PayPalPayment) error {
	m := r.mapper.PaymentToModel(payment)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*payment = *r.mapper.PaymentToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindPaymentByOrderId(ctx context.Context, orderId string) (*entity.PayPalPayment, error) {
	var m model.PayPalPayment
	err := r.db.WithContext(ctx).Where("pay_pal_order_id = ?", orderId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PaymentToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindPaymentBySubscriptionId(ctx context.Context, subscriptionId string) (*entity.PayPalPayment, error) {
	var m model.PayPalPayment
	err := r.db.WithContext(ctx).Where("pay_pal_subscription_id = ?", subscriptionId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PaymentToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) MarkPaymentCompleted(ctx context.Context, orderId, captureId string, completedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.PayPalPayment{}).
		Where("pay_pal_order_id = ?", orderId).
		Updates(map[string]interface{}{
			"status":             string(entity.PaymentStatusCompleted),
			"pay_pal_capture_id": captureId,
			"completed_at":       completedAt,
		}).Error
}

func (r *SubscriptionRepositoryImpl) MarkPaymentFailed(ctx context.Context, orderId string) error {
	return r.db.WithContext(ctx).Model(&model.PayPalPayment{}).
		Where("pay_pal_order_id = ?", orderId).
		Update("status", string(entity.PaymentStatusFailed)).Error
}

func (r *SubscriptionRepositoryImpl) FindPaymentsByUser(ctx context.Context, userId uuid.UUID) ([]*entity.PayPalPayment, error) {
	var models []*model.PayPalPayment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	payments := make([]*entity.PayPalPayment, len(models))
	for i, m := range models {
		payments[i] = r.mapper.PaymentToEntity(m)
	}
	return payments, nil
}
