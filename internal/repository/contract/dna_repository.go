package contract

import (
	"context"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/repository/specification"

	"github.com/google/uuid"
)

// DNARepository covers the four analysis tables. Profile and compatibility
// rows are upserted; interactions and insights are append-only.
type DNARepository interface {
	// Profiles (one per user, last write wins)
	UpsertProfile(ctx context.Context, profile *entity.DNAProfile) error
	FindProfile(ctx context.Context, userId uuid.UUID) (*entity.DNAProfile, error)

	// Interactions (append-only)
	CreateInteraction(ctx context.Context, interaction *entity.DNAInteraction) error
	FindInteractions(ctx context.Context, specs ...specification.Specification) ([]*entity.DNAInteraction, error)
	CountInteractions(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Compatibility (one per unordered pair, last write wins)
	UpsertCompatibility(ctx context.Context, c *entity.DNACompatibility) error
	FindCompatibility(ctx context.Context, userA, userB uuid.UUID) (*entity.DNACompatibility, error)

	// Insights (append-only with expiry)
	CreateInsight(ctx context.Context, insight *entity.DNAInsight) error
	FindInsights(ctx context.Context, specs ...specification.Specification) ([]*entity.DNAInsight, error)
	MarkInsightRead(ctx context.Context, userId, insightId uuid.UUID) error
	DismissInsight(ctx context.Context, userId, insightId uuid.UUID) error
}
