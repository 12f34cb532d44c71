package service

import (
	"context"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// VaultCounts is the per-table tally for the vault widget.
type VaultCounts struct {
	Matches int64
	Prompts int64
	Moments int64
}

type IVaultService interface {
	SaveMatch(ctx context.Context, userId uuid.UUID, matchName string, matchUserId *uuid.UUID, note string) (*entity.VaultMatch, error)
	ListMatches(ctx context.Context, userId uuid.UUID) ([]*entity.VaultMatch, error)
	DeleteMatch(ctx context.Context, userId, id uuid.UUID) error

	SavePrompt(ctx context.Context, userId uuid.UUID, promptText, response string) (*entity.VaultPrompt, error)
	ListPrompts(ctx context.Context, userId uuid.UUID) ([]*entity.VaultPrompt, error)
	DeletePrompt(ctx context.Context, userId, id uuid.UUID) error

	SaveMoment(ctx context.Context, userId uuid.UUID, title, description string, momentDate *time.Time) (*entity.VaultMoment, error)
	ListMoments(ctx context.Context, userId uuid.UUID) ([]*entity.VaultMoment, error)
	DeleteMoment(ctx context.Context, userId, id uuid.UUID) error

	Counts(ctx context.Context, userId uuid.UUID) (*VaultCounts, error)
}

type vaultService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewVaultService(uowFactory unitofwork.RepositoryFactory) IVaultService {
	return &vaultService{uowFactory: uowFactory}
}

func (s *vaultService) SaveMatch(ctx context.Context, userId uuid.UUID, matchName string, matchUserId *uuid.UUID, note string) (*entity.VaultMatch, error) {
	match := &entity.VaultMatch{
		Id:          uuid.New(),
		UserId:      userId,
		MatchName:   matchName,
		MatchUserId: matchUserId,
		Note:        note,
		SavedAt:     time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.VaultRepository().CreateMatch(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

func (s *vaultService) ListMatches(ctx context.Context, userId uuid.UUID) ([]*entity.VaultMatch, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.VaultRepository().FindMatches(ctx, userId)
}

func (s *vaultService) DeleteMatch(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.VaultRepository().DeleteMatch(ctx, userId, id)
}

func (s *vaultService) SavePrompt(ctx context.Context, userId uuid.UUID, promptText, response string) (*entity.VaultPrompt, error) {
	prompt := &entity.VaultPrompt{
		Id:         uuid.New(),
		UserId:     userId,
		PromptText: promptText,
		Response:   response,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.VaultRepository().CreatePrompt(ctx, prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

func (s *vaultService) ListPrompts(ctx context.Context, userId uuid.UUID) ([]*entity.VaultPrompt, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.VaultRepository().FindPrompts(ctx, userId)
}

func (s *vaultService) DeletePrompt(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.VaultRepository().DeletePrompt(ctx, userId, id)
}

func (s *vaultService) SaveMoment(ctx context.Context, userId uuid.UUID, title, description string, momentDate *time.Time) (*entity.VaultMoment, error) {
	moment := &entity.VaultMoment{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       title,
		Description: description,
		MomentDate:  momentDate,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.VaultRepository().CreateMoment(ctx, moment); err != nil {
		return nil, err
	}
	return moment, nil
}

func (s *vaultService) ListMoments(ctx context.Context, userId uuid.UUID) ([]*entity.VaultMoment, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.VaultRepository().FindMoments(ctx, userId)
}

func (s *vaultService) DeleteMoment(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.VaultRepository().DeleteMoment(ctx, userId, id)
}

func (s *vaultService) Counts(ctx context.Context, userId uuid.UUID) (*VaultCounts, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	matches, err := uow.VaultRepository().FindMatches(ctx, userId)
	if err != nil {
		return nil, err
	}
	prompts, err := uow.VaultRepository().FindPrompts(ctx, userId)
	if err != nil {
		return nil, err
	}
	moments, err := uow.VaultRepository().FindMoments(ctx, userId)
	if err != nil {
		return nil, err
	}

	return &VaultCounts{
		Matches: int64(len(matches)),
		Prompts: int64(len(prompts)),
		Moments: int64(len(moments)),
	}, nil
}
