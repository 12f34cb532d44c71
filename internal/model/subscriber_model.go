package model

import (
	"time"

	"github.com/google/uuid"
)

type Subscriber struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId            uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Subscribed        bool      `gorm:"default:false"`
	SubscriptionTier  string    `gorm:"type:varchar(100)"`
	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time
	PaymentProvider   string    `gorm:"type:varchar(50)"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}

type PayPalPayment struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId               uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanName             string    `gorm:"type:varchar(100);not null"`
	PayPalOrderId        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PayPalSubscriptionId *string   `gorm:"type:varchar(255);index"`
	PayPalCaptureId      *string   `gorm:"type:varchar(255)"`
	Amount               string    `gorm:"type:varchar(20);not null"`
	Currency             string    `gorm:"type:varchar(10);not null"`
	Status               string    `gorm:"type:varchar(50);not null;default:'pending'"`
	IsRecurring          bool      `gorm:"default:false"`
	CompletedAt          *time.Time
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}

func (PayPalPayment) TableName() string {
	return "paypal_payments"
}
