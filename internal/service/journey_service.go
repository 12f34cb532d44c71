package service

import (
	"context"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/pkg/logger"
	"getunlocked-be/internal/pkg/mailer"
	"getunlocked-be/internal/repository/specification"
	"getunlocked-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const journeyLookback = 7 * 24 * time.Hour

// IJourneyService drives the lifecycle email journeys. ProcessEvents is
// stateless and idempotent so an external cron can invoke it repeatedly.
type IJourneyService interface {
	ProcessEvents(ctx context.Context) (processed, sent int, err error)
}

type journeyService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewJourneyService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	sysLogger logger.ILogger,
) IJourneyService {
	return &journeyService{
		uowFactory:   uowFactory,
		emailService: emailService,
		logger:       sysLogger,
	}
}

func (s *journeyService) ProcessEvents(ctx context.Context) (int, int, error) {
	processed := 0
	sent := 0

	n, err := s.processEventJourney(ctx, entity.EventSignup, entity.JourneyWelcome, s.emailService.SendWelcome)
	if err != nil {
		return processed, sent, err
	}
	processed++
	sent += n

	n, err = s.processEventJourney(ctx, entity.EventQuizCompleted, entity.JourneyQuizCompleted, s.emailService.SendQuizCompleted)
	if err != nil {
		return processed, sent, err
	}
	processed++
	sent += n

	n, err = s.processMatchVelocity(ctx)
	if err != nil {
		return processed, sent, err
	}
	processed++
	sent += n

	return processed, sent, nil
}

// processEventJourney sends one journey email per user who produced the
// trigger event within the lookback window and has never received that
// journey.
func (s *journeyService) processEventJourney(ctx context.Context, eventType, journeyType string, send func(toEmail, name string) error) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	triggerEvents, err := uow.EngagementRepository().FindEvents(ctx,
		specification.FilterBy{Field: "event_type", Value: eventType},
		specification.CreatedAfter{Time: time.Now().Add(-journeyLookback)},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return 0, err
	}

	sent := 0
	seen := make(map[uuid.UUID]bool)
	for _, event := range triggerEvents {
		if seen[event.UserId] {
			continue
		}
		seen[event.UserId] = true

		last, err := uow.EngagementRepository().FindLastJourneySend(ctx, event.UserId, journeyType)
		if err != nil {
			return sent, err
		}
		if last != nil {
			continue
		}

		if s.sendJourney(ctx, uow, event.UserId, journeyType, send) {
			sent++
		}
	}
	return sent, nil
}

// processMatchVelocity re-engages users whose heartbeat went quiet 7-14
// days ago. Unlike the event journeys this one can repeat after 7 days.
func (s *journeyService) processMatchVelocity(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	inactive, err := uow.ProfileRepository().FindInactiveSince(ctx, now.Add(-14*24*time.Hour), now.Add(-7*24*time.Hour))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, profile := range inactive {
		last, err := uow.EngagementRepository().FindLastJourneySend(ctx, profile.UserId, entity.JourneyMatchVelocitySlow)
		if err != nil {
			return sent, err
		}
		if last != nil && now.Sub(last.EmailSentAt) < journeyLookback {
			continue
		}

		if s.sendJourney(ctx, uow, profile.UserId, entity.JourneyMatchVelocitySlow, s.emailService.SendMatchVelocitySlow) {
			sent++
		}
	}
	return sent, nil
}

func (s *journeyService) sendJourney(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, journeyType string, send func(toEmail, name string) error) bool {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		s.logger.Warn("journey", "User lookup failed, skipping journey", map[string]interface{}{
			"user_id": userId,
			"journey": journeyType,
		})
		return false
	}

	name := user.FullName
	if profile, err := uow.ProfileRepository().FindByUserId(ctx, userId); err == nil && profile != nil && profile.Name != "" {
		name = profile.Name
	}

	if err := send(user.Email, name); err != nil {
		s.logger.Error("journey", "Journey email send failed", map[string]interface{}{
			"user_id": userId,
			"journey": journeyType,
			"error":   err.Error(),
		})
		return false
	}

	journey := &entity.EmailJourney{
		Id:          uuid.New(),
		UserId:      userId,
		JourneyType: journeyType,
		EmailSentAt: time.Now(),
	}
	if err := uow.EngagementRepository().RecordJourneySend(ctx, journey); err != nil {
		s.logger.Error("journey", "Failed to record journey send", map[string]interface{}{
			"user_id": userId,
			"journey": journeyType,
			"error":   err.Error(),
		})
	}
	return true
}
