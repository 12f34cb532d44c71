package mapper

import (
	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		Id:                         p.Id,
		UserId:                     p.UserId,
		Name:                       p.Name,
		Age:                        p.Age,
		Bio:                        p.Bio,
		Location:                   p.Location,
		Occupation:                 p.Occupation,
		Education:                  p.Education,
		Interests:                  jsonToStrings(p.Interests),
		QuizResults:                jsonToMap(p.QuizResults),
		QuizCompleted:              p.QuizCompleted,
		UnlockedBeyondBadgeEnabled: p.UnlockedBeyondBadgeEnabled,
		VideoChatEnabled:           p.VideoChatEnabled,
		LastOnline:                 p.LastOnline,
		CreatedAt:                  p.CreatedAt,
		UpdatedAt:                  p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		Id:                         p.Id,
		UserId:                     p.UserId,
		Name:                       p.Name,
		Age:                        p.Age,
		Bio:                        p.Bio,
		Location:                   p.Location,
		Occupation:                 p.Occupation,
		Education:                  p.Education,
		Interests:                  toJSON(p.Interests),
		QuizResults:                toJSON(p.QuizResults),
		QuizCompleted:              p.QuizCompleted,
		UnlockedBeyondBadgeEnabled: p.UnlockedBeyondBadgeEnabled,
		VideoChatEnabled:           p.VideoChatEnabled,
		LastOnline:                 p.LastOnline,
		CreatedAt:                  p.CreatedAt,
		UpdatedAt:                  p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToEntities(profiles []*model.Profile) []*entity.Profile {
	entities := make([]*entity.Profile, len(profiles))
	for i, p := range profiles {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
