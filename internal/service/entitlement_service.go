package service

import (
	"context"
	"strings"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/pkg/logger"
	"getunlocked-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Entitlement is the resolved feature level for one user.
type Entitlement struct {
	Tier            entity.Tier
	Subscribed      bool
	SubscriptionEnd *time.Time
}

func (e Entitlement) CanUseDNA() bool {
	return e.Tier == entity.TierPlus || e.Tier == entity.TierBeyond
}

func (e Entitlement) CanUseDigest() bool {
	return e.Tier == entity.TierPlus || e.Tier == entity.TierBeyond
}

func (e Entitlement) UnlimitedMessages() bool {
	return e.Tier == entity.TierPlus || e.Tier == entity.TierBeyond
}

type IEntitlementService interface {
	// Resolve never fails open: on any read error it returns the free
	// entitlement and logs, so premium features stay gated.
	Resolve(ctx context.Context, userId uuid.UUID) Entitlement

	// Invalidate drops the cached entitlement, called after webhook-driven
	// subscription changes.
	Invalidate(userId uuid.UUID)
}

type entitlementService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
	logger     logger.ILogger
}

func NewEntitlementService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) IEntitlementService {
	return &entitlementService{
		uowFactory: uowFactory,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
		logger:     sysLogger,
	}
}

func freeEntitlement() Entitlement {
	return Entitlement{Tier: entity.TierFree}
}

func (s *entitlementService) Resolve(ctx context.Context, userId uuid.UUID) Entitlement {
	key := userId.String()
	if cached, found := s.cache.Get(key); found {
		return cached.(Entitlement)
	}

	ent := s.resolve(ctx, userId)
	s.cache.Set(key, ent, gocache.DefaultExpiration)
	return ent
}

func (s *entitlementService) resolve(ctx context.Context, userId uuid.UUID) Entitlement {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindSubscriber(ctx, userId)
	if err != nil {
		s.logger.Warn("entitlement", "Subscriber read failed, resolving free", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return freeEntitlement()
	}

	profile, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		s.logger.Warn("entitlement", "Profile read failed, resolving free", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return freeEntitlement()
	}

	beyondBadge := profile != nil && profile.UnlockedBeyondBadgeEnabled

	if sub == nil || !sub.Subscribed {
		if beyondBadge {
			return Entitlement{Tier: entity.TierBeyond}
		}
		return freeEntitlement()
	}

	ent := Entitlement{
		Subscribed:      true,
		SubscriptionEnd: sub.SubscriptionEnd,
	}
	if beyondBadge || strings.Contains(strings.ToLower(sub.SubscriptionTier), "beyond") {
		ent.Tier = entity.TierBeyond
	} else {
		ent.Tier = entity.TierPlus
	}
	return ent
}

func (s *entitlementService) Invalidate(userId uuid.UUID) {
	s.cache.Delete(userId.String())
}
