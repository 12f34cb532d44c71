package implementation

import (
	"context"
	"errors"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/mapper"
	"getunlocked-be/internal/model"
	"getunlocked-be/internal/repository/contract"
	"getunlocked-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DNARepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DNAMapper
}

func NewDNARepository(db *gorm.DB) contract.DNARepository {
	return &DNARepositoryImpl{
		db:     db,
		mapper: mapper.NewDNAMapper(),
	}
}

func (r *DNARepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// UpsertProfile writes the analysis keyed by user id, last write wins.
func (r *DNARepositoryImpl) UpsertProfile(ctx context.Context, profile *entity.DNAProfile) error {
	m := r.mapper.ProfileToModel(profile)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"emotional_intelligence_score", "interaction_quality_score",
			"empathy_score", "vulnerability_comfort",
			"communication_style", "emotional_patterns", "personality_markers",
			"love_language_primary", "love_language_secondary",
			"conflict_resolution_style", "last_analysis_at", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*profile = *r.mapper.ProfileToEntity(m)
	return nil
}

func (r *DNARepositoryImpl) FindProfile(ctx context.Context, userId uuid.UUID) (*entity.DNAProfile, error) {
	var m model.DNAProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProfileToEntity(&m), nil
}

func (r *DNARepositoryImpl) CreateInteraction(ctx context.Context, interaction *entity.DNAInteraction) error {
	m := r.mapper.InteractionToModel(interaction)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*interaction = *r.mapper.InteractionToEntity(m)
	return nil
}

func (r *DNARepositoryImpl) FindInteractions(ctx context.Context, specs ...specification.Specification) ([]*entity.DNAInteraction, error) {
	var models []*model.DNAInteraction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.InteractionsToEntities(models), nil
}

func (r *DNARepositoryImpl) CountInteractions(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DNAInteraction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpsertCompatibility writes the pair analysis. The caller is expected to
// have resolved an existing row in either ordering and reused its column
// order, so the conflict target only needs the stored (user_id_1, user_id_2).
func (r *DNARepositoryImpl) UpsertCompatibility(ctx context.Context, c *entity.DNACompatibility) error {
	m := r.mapper.CompatibilityToModel(c)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id_1"}, {Name: "user_id_2"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"overall_compatibility_score", "emotional_sync_score",
			"communication_compatibility", "personality_match_score",
			"shared_values_score", "growth_potential_score", "conflict_harmony_score",
			"detailed_analysis", "strengths", "growth_areas",
			"conversation_starters", "date_ideas", "analysis_confidence",
			"last_analyzed_at", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*c = *r.mapper.CompatibilityToEntity(m)
	return nil
}

func (r *DNARepositoryImpl) FindCompatibility(ctx context.Context, userA, userB uuid.UUID) (*entity.DNACompatibility, error) {
	var m model.DNACompatibility
	query := specification.PairMatch{UserA: userA, UserB: userB}.Apply(r.db.WithContext(ctx))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CompatibilityToEntity(&m), nil
}

func (r *DNARepositoryImpl) CreateInsight(ctx context.Context, insight *entity.DNAInsight) error {
	m := r.mapper.InsightToModel(insight)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*insight = *r.mapper.InsightToEntity(m)
	return nil
}

func (r *DNARepositoryImpl) FindInsights(ctx context.Context, specs ...specification.Specification) ([]*entity.DNAInsight, error) {
	var models []*model.DNAInsight
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.InsightsToEntities(models), nil
}

func (r *DNARepositoryImpl) MarkInsightRead(ctx context.Context, userId, insightId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.DNAInsight{}).
		Where("id = ? AND user_id = ?", insightId, userId).
		Update("is_read", true).Error
}

func (r *DNARepositoryImpl) DismissInsight(ctx context.Context, userId, insightId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.DNAInsight{}).
		Where("id = ? AND user_id = ?", insightId, userId).
		Update("is_dismissed", true).Error
}
