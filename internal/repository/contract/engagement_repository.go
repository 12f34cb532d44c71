package contract

import (
	"context"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/repository/specification"

	"github.com/google/uuid"
)

// EngagementRepository covers user events, email journeys, and daily
// digests.
type EngagementRepository interface {
	CreateEvent(ctx context.Context, event *entity.UserEvent) error
	FindEvents(ctx context.Context, specs ...specification.Specification) ([]*entity.UserEvent, error)
	CountEventsSince(ctx context.Context, userId uuid.UUID, eventType string, since time.Time) (int64, error)

	RecordJourneySend(ctx context.Context, journey *entity.EmailJourney) error
	FindLastJourneySend(ctx context.Context, userId uuid.UUID, journeyType string) (*entity.EmailJourney, error)

	UpsertDigest(ctx context.Context, digest *entity.CompatibilityDigest) error
	FindDigest(ctx context.Context, userId uuid.UUID, date time.Time) (*entity.CompatibilityDigest, error)
	FindLatestDigest(ctx context.Context, userId uuid.UUID) (*entity.CompatibilityDigest, error)
}
