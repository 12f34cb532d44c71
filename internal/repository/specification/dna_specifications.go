package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PairMatch matches a compatibility row for a user pair in either column
// ordering, since stored pairs are not canonicalized.
type PairMatch struct {
	UserA uuid.UUID
	UserB uuid.UUID
}

func (s PairMatch) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"(user_id_1 = ? AND user_id_2 = ?) OR (user_id_1 = ? AND user_id_2 = ?)",
		s.UserA, s.UserB, s.UserB, s.UserA,
	)
}

// NotDismissed filters out dismissed insights.
type NotDismissed struct{}

func (s NotDismissed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_dismissed = ?", false)
}

// Unexpired keeps rows whose expiry is in the future or unset.
type Unexpired struct {
	Now time.Time
}

func (s Unexpired) Apply(db *gorm.DB) *gorm.DB {
	now := s.Now
	if now.IsZero() {
		now = time.Now()
	}
	return db.Where("expires_at IS NULL OR expires_at > ?", now)
}

// CreatedAfter keeps rows created at or after the given time.
type CreatedAfter struct {
	Time time.Time
}

func (s CreatedAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Time)
}

// InteractionWith filters interactions involving a specific counterpart.
type InteractionWith struct {
	OtherUserID uuid.UUID
}

func (s InteractionWith) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("other_user_id = ?", s.OtherUserID)
}
