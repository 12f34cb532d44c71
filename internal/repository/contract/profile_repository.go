package contract

import (
	"context"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error)

	// FindByUserId returns nil, nil when the profile does not exist yet;
	// profiles are created lazily on first access.
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Profile, error)

	// FindCandidates returns profiles of other users for match scoring.
	FindCandidates(ctx context.Context, excludeUserId uuid.UUID, limit int) ([]*entity.Profile, error)

	// UpdateLastOnline stamps the presence heartbeat without touching the
	// rest of the row.
	UpdateLastOnline(ctx context.Context, userId uuid.UUID, at time.Time) error

	// FindInactiveSince returns profiles whose last heartbeat falls inside
	// [from, to), used by the re-engagement journey.
	FindInactiveSince(ctx context.Context, from, to time.Time) ([]*entity.Profile, error)
}
