package implementation

import (
	"context"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/mapper"
	"getunlocked-be/internal/model"
	"getunlocked-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VaultRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VaultMapper
}

func NewVaultRepository(db *gorm.DB) contract.VaultRepository {
	return &VaultRepositoryImpl{
		db:     db,
		mapper: mapper.NewVaultMapper(),
	}
}

func (r *VaultRepositoryImpl) CreateMatch(ctx context.Context, v *entity.VaultMatch) error {
	m := r.mapper.MatchToModel(v)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*v = *r.mapper.MatchToEntity(m)
	return nil
}

func (r *VaultRepositoryImpl) FindMatches(ctx context.Context, userId uuid.UUID) ([]*entity.VaultMatch, error) {
	var models []*model.VaultMatch
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("saved_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.MatchesToEntities(models), nil
}

func (r *VaultRepositoryImpl) DeleteMatch(ctx context.Context, userId, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&model.VaultMatch{}).Error
}

func (r *VaultRepositoryImpl) CreatePrompt(ctx context.Context, p *entity.VaultPrompt) error {
	m := r.mapper.PromptToModel(p)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*p = *r.mapper.PromptToEntity(m)
	return nil
}

func (r *VaultRepositoryImpl) FindPrompts(ctx context.Context, userId uuid.UUID) ([]*entity.VaultPrompt, error) {
	var models []*model.VaultPrompt
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.PromptsToEntities(models), nil
}

func (r *VaultRepositoryImpl) DeletePrompt(ctx context.Context, userId, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&model.VaultPrompt{}).Error
}

func (r *VaultRepositoryImpl) CreateMoment(ctx context.Context, v *entity.VaultMoment) error {
	m := r.mapper.MomentToModel(v)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*v = *r.mapper.MomentToEntity(m)
	return nil
}

func (r *VaultRepositoryImpl) FindMoments(ctx context.Context, userId uuid.UUID) ([]*entity.VaultMoment, error) {
	var models []*model.VaultMoment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.MomentsToEntities(models), nil
}

func (r *VaultRepositoryImpl) DeleteMoment(ctx context.Context, userId, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&model.VaultMoment{}).Error
}
