package implementation

import (
	"context"
	"errors"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/mapper"
	"getunlocked-be/internal/model"
	"getunlocked-be/internal/repository/contract"
	"getunlocked-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MatchMapper
}

func NewMatchRepository(db *gorm.DB) contract.MatchRepository {
	return &MatchRepositoryImpl{
		db:     db,
		mapper: mapper.NewMatchMapper(),
	}
}

func (r *MatchRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MatchRepositoryImpl) Create(ctx context.Context, match *entity.Match) error {
	m := r.mapper.ToModel(match)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*match = *r.mapper.ToEntity(m)
	return nil
}

func (r *MatchRepositoryImpl) Update(ctx context.Context, match *entity.Match) error {
	m := r.mapper.ToModel(match)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*match = *r.mapper.ToEntity(m)
	return nil
}

func (r *MatchRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Match, error) {
	var m model.Match
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MatchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Match, error) {
	var models []*model.Match
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// ReplaceSuggestions swaps the user's suggestion set atomically so a
// refresh never leaves a mix of old and new rankings.
func (r *MatchRepositoryImpl) ReplaceSuggestions(ctx context.Context, userId uuid.UUID, matches []*entity.Match) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND status = ?", userId, string(entity.MatchStatusSuggested)).
			Delete(&model.Match{}).Error; err != nil {
			return err
		}
		for _, match := range matches {
			m := r.mapper.ToModel(match)
			if m.Id == uuid.Nil {
				m.Id = uuid.New()
			}
			if err := tx.Create(m).Error; err != nil {
				return err
			}
			*match = *r.mapper.ToEntity(m)
		}
		return nil
	})
}

func (r *MatchRepositoryImpl) UpdateStatus(ctx context.Context, matchId uuid.UUID, status entity.MatchStatus) error {
	return r.db.WithContext(ctx).Model(&model.Match{}).
		Where("id = ?", matchId).
		Update("status", string(status)).Error
}

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MatchMapper
}

func NewMessageRepository(db *gorm.DB) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewMatchMapper(),
	}
}

func (r *MessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *entity.Message) error {
	m := r.mapper.MessageToModel(message)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.MessageToEntity(m)
	return nil
}

func (r *MessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var models []*model.Message
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}

func (r *MessageRepositoryImpl) CountSentSince(ctx context.Context, senderId uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("sender_id = ? AND created_at >= ?", senderId, since).
		Count(&count).Error
	return count, err
}

func (r *MessageRepositoryImpl) FindConversation(ctx context.Context, userA, userB uuid.UUID, limit int) ([]*entity.Message, error) {
	var models []*model.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}

func (r *MessageRepositoryImpl) MarkRead(ctx context.Context, recipientId, senderId uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Message{}).
		Where("recipient_id = ? AND sender_id = ? AND read_at IS NULL", recipientId, senderId).
		Update("read_at", at).Error
}
