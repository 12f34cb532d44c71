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
	"gorm.io/gorm/clause"
)

type EngagementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EngagementMapper
}

func NewEngagementRepository(db *gorm.DB) contract.EngagementRepository {
	return &EngagementRepositoryImpl{
		db:     db,
		mapper: mapper.NewEngagementMapper(),
	}
}

func (r *EngagementRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EngagementRepositoryImpl) CreateEvent(ctx context.Context, event *entity.UserEvent) error {
	m := r.mapper.EventToModel(event)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.EventToEntity(m)
	return nil
}

func (r *EngagementRepositoryImpl) FindEvents(ctx context.Context, specs ...specification.Specification) ([]*entity.UserEvent, error) {
	var models []*model.UserEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.EventsToEntities(models), nil
}

func (r *EngagementRepositoryImpl) CountEventsSince(ctx context.Context, userId uuid.UUID, eventType string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserEvent{}).
		Where("user_id = ? AND event_type = ? AND created_at >= ?", userId, eventType, since).
		Count(&count).Error
	return count, err
}

func (r *EngagementRepositoryImpl) RecordJourneySend(ctx context.Context, journey *entity.EmailJourney) error {
	m := r.mapper.JourneyToModel(journey)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*journey = *r.mapper.JourneyToEntity(m)
	return nil
}

func (r *EngagementRepositoryImpl) FindLastJourneySend(ctx context.Context, userId uuid.UUID, journeyType string) (*entity.EmailJourney, error) {
	var m model.EmailJourney
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND journey_type = ?", userId, journeyType).
		Order("email_sent_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.JourneyToEntity(&m), nil
}

// UpsertDigest keeps one digest per user per day.
func (r *EngagementRepositoryImpl) UpsertDigest(ctx context.Context, digest *entity.CompatibilityDigest) error {
	m := r.mapper.DigestToModel(digest)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "digest_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"greeting", "insights", "starters", "motivation",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*digest = *r.mapper.DigestToEntity(m)
	return nil
}

func (r *EngagementRepositoryImpl) FindDigest(ctx context.Context, userId uuid.UUID, date time.Time) (*entity.CompatibilityDigest, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	var m model.CompatibilityDigest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND digest_date >= ? AND digest_date < ?", userId, dayStart, dayStart.Add(24*time.Hour)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DigestToEntity(&m), nil
}

func (r *EngagementRepositoryImpl) FindLatestDigest(ctx context.Context, userId uuid.UUID) (*entity.CompatibilityDigest, error) {
	var m model.CompatibilityDigest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("digest_date DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DigestToEntity(&m), nil
}
