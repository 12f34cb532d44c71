package contract

import (
	"context"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MatchRepository interface {
	Create(ctx context.Context, match *entity.Match) error
	Update(ctx context.Context, match *entity.Match) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Match, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Match, error)

	// ReplaceSuggestions clears prior suggested matches for the user and
	// inserts the new ranked batch in one transaction scope.
	ReplaceSuggestions(ctx context.Context, userId uuid.UUID, matches []*entity.Match) error
	UpdateStatus(ctx context.Context, matchId uuid.UUID, status entity.MatchStatus) error
}

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)

	// CountSentSince counts messages the user sent at or after the cutoff,
	// used for quota reporting (enforcement is atomic in the quota store).
	CountSentSince(ctx context.Context, senderId uuid.UUID, since time.Time) (int64, error)

	FindConversation(ctx context.Context, userA, userB uuid.UUID, limit int) ([]*entity.Message, error)
	MarkRead(ctx context.Context, recipientId, senderId uuid.UUID, at time.Time) error
}
