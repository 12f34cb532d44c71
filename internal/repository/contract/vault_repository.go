package contract

import (
	"context"

	"getunlocked-be/internal/entity"

	"github.com/google/uuid"
)

// VaultRepository covers the three Memory Vault tables.
type VaultRepository interface {
	CreateMatch(ctx context.Context, m *entity.VaultMatch) error
	FindMatches(ctx context.Context, userId uuid.UUID) ([]*entity.VaultMatch, error)
	DeleteMatch(ctx context.Context, userId, id uuid.UUID) error

	CreatePrompt(ctx context.Context, p *entity.VaultPrompt) error
	FindPrompts(ctx context.Context, userId uuid.UUID) ([]*entity.VaultPrompt, error)
	DeletePrompt(ctx context.Context, userId, id uuid.UUID) error

	CreateMoment(ctx context.Context, m *entity.VaultMoment) error
	FindMoments(ctx context.Context, userId uuid.UUID) ([]*entity.VaultMoment, error)
	DeleteMoment(ctx context.Context, userId, id uuid.UUID) error
}
