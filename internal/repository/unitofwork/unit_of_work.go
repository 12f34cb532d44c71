package unitofwork

import (
	"context"

	"getunlocked-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProfileRepository() contract.ProfileRepository
	DNARepository() contract.DNARepository
	SubscriptionRepository() contract.SubscriptionRepository
	MatchRepository() contract.MatchRepository
	MessageRepository() contract.MessageRepository
	EngagementRepository() contract.EngagementRepository
	VaultRepository() contract.VaultRepository
}
