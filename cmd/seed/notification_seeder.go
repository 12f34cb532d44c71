package main

import (
	"log"

	"getunlocked-be/internal/model"
	"getunlocked-be/pkg/events"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedNotificationTypes populates the registry the notification worker
// resolves bus events against. An event code without a row here is dropped.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        events.TypeSubscriptionActivated,
			DisplayName: "Subscription Activated",
			Template:    "Your {plan} subscription is active. Premium features are unlocked.",
			TargetType:  "SELF",
			Priority:    "HIGH",
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
			IsActive:    true,
		},
		{
			Code:        events.TypeSubscriptionDeactivated,
			DisplayName: "Subscription Ended",
			Template:    "Your subscription has ended. You are back on the free plan.",
			TargetType:  "SELF",
			Priority:    "HIGH",
			Channels:    datatypes.JSON([]byte(`["web", "email"]`)),
			IsActive:    true,
		},
		{
			Code:        events.TypeInsightsGenerated,
			DisplayName: "New Insights Ready",
			Template:    "You have {count} new connection insights waiting.",
			TargetType:  "SELF",
			Priority:    "MEDIUM",
			Channels:    datatypes.JSON([]byte(`["web"]`)),
			IsActive:    true,
		},
		{
			Code:        events.TypeUserEventRecorded,
			DisplayName: "User Activity",
			Template:    "User {user_id} recorded {event_type}.",
			TargetType:  "ADMIN",
			Priority:    "LOW",
			Channels:    datatypes.JSON([]byte(`["web"]`)),
			IsActive:    true,
		},
		{
			Code:        "SYSTEM_BROADCAST",
			DisplayName: "Announcement",
			Template:    "{message}",
			TargetType:  "BROADCAST",
			Priority:    "HIGH",
			Channels:    datatypes.JSON([]byte(`["web"]`)),
			IsActive:    true,
		},
	}

	for _, t := range types {
		if err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error; err != nil {
			log.Printf("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	log.Printf("Notification types seeded: %d.", len(types))
}
