package mapper

import (
	"encoding/json"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"
)

type EngagementMapper struct{}

func NewEngagementMapper() *EngagementMapper {
	return &EngagementMapper{}
}

func (m *EngagementMapper) EventToEntity(e *model.UserEvent) *entity.UserEvent {
	if e == nil {
		return nil
	}
	return &entity.UserEvent{
		Id:        e.Id,
		UserId:    e.UserId,
		EventType: e.EventType,
		EventData: jsonToMap(e.EventData),
		CreatedAt: e.CreatedAt,
	}
}

func (m *EngagementMapper) EventToModel(e *entity.UserEvent) *model.UserEvent {
	if e == nil {
		return nil
	}
	return &model.UserEvent{
		Id:        e.Id,
		UserId:    e.UserId,
		EventType: e.EventType,
		EventData: toJSON(e.EventData),
		CreatedAt: e.CreatedAt,
	}
}

func (m *EngagementMapper) EventsToEntities(events []*model.UserEvent) []*entity.UserEvent {
	entities := make([]*entity.UserEvent, len(events))
	for i, e := range events {
		entities[i] = m.EventToEntity(e)
	}
	return entities
}

func (m *EngagementMapper) JourneyToEntity(j *model.EmailJourney) *entity.EmailJourney {
	if j == nil {
		return nil
	}
	return &entity.EmailJourney{
		Id:          j.Id,
		UserId:      j.UserId,
		JourneyType: j.JourneyType,
		EmailSentAt: j.EmailSentAt,
		CreatedAt:   j.CreatedAt,
	}
}

func (m *EngagementMapper) JourneyToModel(j *entity.EmailJourney) *model.EmailJourney {
	if j == nil {
		return nil
	}
	return &model.EmailJourney{
		Id:          j.Id,
		UserId:      j.UserId,
		JourneyType: j.JourneyType,
		EmailSentAt: j.EmailSentAt,
		CreatedAt:   j.CreatedAt,
	}
}

func (m *EngagementMapper) DigestToEntity(d *model.CompatibilityDigest) *entity.CompatibilityDigest {
	if d == nil {
		return nil
	}
	var starters []entity.DigestStarter
	if len(d.Starters) > 0 {
		_ = json.Unmarshal(d.Starters, &starters)
	}
	return &entity.CompatibilityDigest{
		Id:         d.Id,
		UserId:     d.UserId,
		DigestDate: d.DigestDate,
		Greeting:   d.Greeting,
		Insights:   jsonToStrings(d.Insights),
		Starters:   starters,
		Motivation: d.Motivation,
		CreatedAt:  d.CreatedAt,
	}
}

func (m *EngagementMapper) DigestToModel(d *entity.CompatibilityDigest) *model.CompatibilityDigest {
	if d == nil {
		return nil
	}
	return &model.CompatibilityDigest{
		Id:         d.Id,
		UserId:     d.UserId,
		DigestDate: d.DigestDate,
		Greeting:   d.Greeting,
		Insights:   toJSON(d.Insights),
		Starters:   toJSON(d.Starters),
		Motivation: d.Motivation,
		CreatedAt:  d.CreatedAt,
	}
}
