package mapper

import (
	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"
)

type VaultMapper struct{}

func NewVaultMapper() *VaultMapper {
	return &VaultMapper{}
}

func (m *VaultMapper) MatchToEntity(v *model.VaultMatch) *entity.VaultMatch {
	if v == nil {
		return nil
	}
	return &entity.VaultMatch{
		Id:          v.Id,
		UserId:      v.UserId,
		MatchName:   v.MatchName,
		MatchUserId: v.MatchUserId,
		Note:        v.Note,
		SavedAt:     v.SavedAt,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *VaultMapper) MatchToModel(v *entity.VaultMatch) *model.VaultMatch {
	if v == nil {
		return nil
	}
	return &model.VaultMatch{
		Id:          v.Id,
		UserId:      v.UserId,
		MatchName:   v.MatchName,
		MatchUserId: v.MatchUserId,
		Note:        v.Note,
		SavedAt:     v.SavedAt,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *VaultMapper) MatchesToEntities(items []*model.VaultMatch) []*entity.VaultMatch {
	entities := make([]*entity.VaultMatch, len(items))
	for i, v := range items {
		entities[i] = m.MatchToEntity(v)
	}
	return entities
}

func (m *VaultMapper) PromptToEntity(v *model.VaultPrompt) *entity.VaultPrompt {
	if v == nil {
		return nil
	}
	return &entity.VaultPrompt{
		Id:         v.Id,
		UserId:     v.UserId,
		PromptText: v.PromptText,
		Response:   v.Response,
		CreatedAt:  v.CreatedAt,
	}
}

func (m *VaultMapper) PromptToModel(v *entity.VaultPrompt) *model.VaultPrompt {
	if v == nil {
		return nil
	}
	return &model.VaultPrompt{
		Id:         v.Id,
		UserId:     v.UserId,
		PromptText: v.PromptText,
		Response:   v.Response,
		CreatedAt:  v.CreatedAt,
	}
}

func (m *VaultMapper) PromptsToEntities(items []*model.VaultPrompt) []*entity.VaultPrompt {
	entities := make([]*entity.VaultPrompt, len(items))
	for i, v := range items {
		entities[i] = m.PromptToEntity(v)
	}
	return entities
}

func (m *VaultMapper) MomentToEntity(v *model.VaultMoment) *entity.VaultMoment {
	if v == nil {
		return nil
	}
	return &entity.VaultMoment{
		Id:          v.Id,
		UserId:      v.UserId,
		Title:       v.Title,
		Description: v.Description,
		MomentDate:  v.MomentDate,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *VaultMapper) MomentToModel(v *entity.VaultMoment) *model.VaultMoment {
	if v == nil {
		return nil
	}
	return &model.VaultMoment{
		Id:          v.Id,
		UserId:      v.UserId,
		Title:       v.Title,
		Description: v.Description,
		MomentDate:  v.MomentDate,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *VaultMapper) MomentsToEntities(items []*model.VaultMoment) []*entity.VaultMoment {
	entities := make([]*entity.VaultMoment, len(items))
	for i, v := range items {
		entities[i] = m.MomentToEntity(v)
	}
	return entities
}
