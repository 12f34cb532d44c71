package mapper

import (
	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"
)

type MatchMapper struct{}

func NewMatchMapper() *MatchMapper {
	return &MatchMapper{}
}

func (m *MatchMapper) ToEntity(mt *model.Match) *entity.Match {
	if mt == nil {
		return nil
	}
	return &entity.Match{
		Id:                     mt.Id,
		UserId:                 mt.UserId,
		MatchedUserId:          mt.MatchedUserId,
		CompatibilityScore:     mt.CompatibilityScore,
		Explanation:            mt.Explanation,
		CompatibilityBreakdown: jsonToFloatMap(mt.CompatibilityBreakdown),
		Strengths:              jsonToStrings(mt.Strengths),
		PotentialChallenges:    jsonToStrings(mt.PotentialChallenges),
		SharedInterests:        jsonToStrings(mt.SharedInterests),
		ConversationStarters:   jsonToStrings(mt.ConversationStarters),
		RelationshipPrediction: mt.RelationshipPrediction,
		QuizBoostApplied:       mt.QuizBoostApplied,
		Status:                 entity.MatchStatus(mt.Status),
		CreatedAt:              mt.CreatedAt,
		UpdatedAt:              mt.UpdatedAt,
	}
}

func (m *MatchMapper) ToModel(mt *entity.Match) *model.Match {
	if mt == nil {
		return nil
	}
	return &model.Match{
		Id:                     mt.Id,
		UserId:                 mt.UserId,
		MatchedUserId:          mt.MatchedUserId,
		CompatibilityScore:     mt.CompatibilityScore,
		Explanation:            mt.Explanation,
		CompatibilityBreakdown: toJSON(mt.CompatibilityBreakdown),
		Strengths:              toJSON(mt.Strengths),
		PotentialChallenges:    toJSON(mt.PotentialChallenges),
		SharedInterests:        toJSON(mt.SharedInterests),
		ConversationStarters:   toJSON(mt.ConversationStarters),
		RelationshipPrediction: mt.RelationshipPrediction,
		QuizBoostApplied:       mt.QuizBoostApplied,
		Status:                 string(mt.Status),
		CreatedAt:              mt.CreatedAt,
		UpdatedAt:              mt.UpdatedAt,
	}
}

func (m *MatchMapper) ToEntities(matches []*model.Match) []*entity.Match {
	entities := make([]*entity.Match, len(matches))
	for i, mt := range matches {
		entities[i] = m.ToEntity(mt)
	}
	return entities
}

func (m *MatchMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:          msg.Id,
		SenderId:    msg.SenderId,
		RecipientId: msg.RecipientId,
		MatchId:     msg.MatchId,
		Content:     msg.Content,
		ReadAt:      msg.ReadAt,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *MatchMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:          msg.Id,
		SenderId:    msg.SenderId,
		RecipientId: msg.RecipientId,
		MatchId:     msg.MatchId,
		Content:     msg.Content,
		ReadAt:      msg.ReadAt,
		CreatedAt:   msg.CreatedAt,
	}
}

func (m *MatchMapper) MessagesToEntities(msgs []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
