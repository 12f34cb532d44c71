package repository

import (
	"context"

	"getunlocked-be/internal/model"

	"github.com/google/uuid"
)

// NotificationRepository covers the inbox, the event-code registry and the
// per-user preference rows. It works on models directly; the notification
// pipeline has no domain entity layer of its own.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
	GetNotificationsByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, notificationID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error

	// Registry
	GetNotificationTypeByCode(ctx context.Context, code string) (*model.NotificationType, error)
	GetUsersByRole(ctx context.Context, role string) ([]model.User, error)

	// Preferences. GetPreference returns nil when the user never saved any.
	GetPreference(ctx context.Context, userID uuid.UUID) (*model.UserNotificationPreference, error)
	SavePreference(ctx context.Context, pref *model.UserNotificationPreference) error
}
