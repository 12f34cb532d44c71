package service

import (
	"context"
	"time"

	"getunlocked-be/internal/dto"
	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/pkg/logger"
	"getunlocked-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProfileService interface {
	// Get creates an empty profile row on first access.
	Get(ctx context.Context, userId uuid.UUID) (*entity.Profile, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*entity.Profile, error)
	SubmitQuiz(ctx context.Context, userId uuid.UUID, results map[string]interface{}) (*entity.Profile, error)

	// Heartbeat stamps last_online best-effort; errors are logged, never
	// returned.
	Heartbeat(ctx context.Context, userId uuid.UUID)
}

type profileService struct {
	uowFactory      unitofwork.RepositoryFactory
	eventService    IEventService
	recorderService IRecorderService
	logger          logger.ILogger
}

func NewProfileService(
	uowFactory unitofwork.RepositoryFactory,
	eventService IEventService,
	recorderService IRecorderService,
	sysLogger logger.ILogger,
) IProfileService {
	return &profileService{
		uowFactory:      uowFactory,
		eventService:    eventService,
		recorderService: recorderService,
		logger:          sysLogger,
	}
}

func (s *profileService) Get(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	// Lazy creation: the first read materializes the row.
	profile = &entity.Profile{
		Id:     uuid.New(),
		UserId: userId,
	}
	if err := uow.ProfileRepository().Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*entity.Profile, error) {
	profile, err := s.Get(ctx, userId)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Age != 0 {
		profile.Age = req.Age
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
	}
	if req.Location != "" {
		profile.Location = req.Location
	}
	if req.Occupation != "" {
		profile.Occupation = req.Occupation
	}
	if req.Education != "" {
		profile.Education = req.Education
	}
	if req.Interests != nil {
		profile.Interests = req.Interests
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) SubmitQuiz(ctx context.Context, userId uuid.UUID, results map[string]interface{}) (*entity.Profile, error) {
	profile, err := s.Get(ctx, userId)
	if err != nil {
		return nil, err
	}

	profile.QuizResults = results
	profile.QuizCompleted = true

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}

	if err := s.eventService.Track(ctx, userId, entity.EventQuizCompleted, map[string]interface{}{
		"answers": len(results),
	}); err != nil {
		s.logger.Warn("profile", "Failed to track quiz_completed event", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}
	_ = s.recorderService.RecordQuizResponse(ctx, userId, "quiz_completed", len(results))

	return profile, nil
}

func (s *profileService) Heartbeat(ctx context.Context, userId uuid.UUID) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProfileRepository().UpdateLastOnline(ctx, userId, time.Now()); err != nil {
		s.logger.Warn("profile", "Heartbeat update failed", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}
}
