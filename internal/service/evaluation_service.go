package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/talentpulse/eval360-api/internal/dto"
	"github.com/talentpulse/eval360-api/internal/models"
	"github.com/talentpulse/eval360-api/internal/repository"
)

// ErrEvaluationNotFound indicates the requested evaluation does not exist.
var ErrEvaluationNotFound = errors.New("evaluation not found")

// EvaluationService exposes evaluation catalog use cases.
type EvaluationService interface {
	List(ctx context.Context) ([]dto.EvaluationResponse, error)
	Get(ctx context.Context, id uint) (dto.EvaluationResponse, error)
	Create(ctx context.Context, payload dto.EvaluationCreateRequest) (dto.EvaluationResponse, error)
	Update(ctx context.Context, id uint, payload dto.EvaluationUpdateRequest) (dto.EvaluationResponse, error)
}

type evaluationService struct {
	repo      repository.EvaluationRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewEvaluationService builds a new evaluation service.
func NewEvaluationService(repo repository.EvaluationRepository, validate *validator.Validate, logger zerolog.Logger) EvaluationService {
	return &evaluationService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "evaluation_service").Logger(),
	}
}

func (s *evaluationService) List(ctx context.Context) ([]dto.EvaluationResponse, error) {
	evaluations, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewEvaluationResponseSlice(evaluations), nil
}

func (s *evaluationService) Get(ctx context.Context, id uint) (dto.EvaluationResponse, error) {
	evaluation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EvaluationResponse{}, ErrEvaluationNotFound
		}
		return dto.EvaluationResponse{}, err
	}

	return dto.NewEvaluationResponse(evaluation), nil
}

func (s *evaluationService) Create(ctx context.Context, payload dto.EvaluationCreateRequest) (dto.EvaluationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EvaluationResponse{}, err
	}

	evaluation := models.Evaluation{
		Period: payload.Period,
		Type:   payload.Type,
	}

	if err := s.repo.Create(ctx, &evaluation); err != nil {
		return dto.EvaluationResponse{}, err
	}

	s.logger.Info().Uint("evaluation_id", evaluation.ID).Msg("evaluation created")

	return dto.NewEvaluationResponse(evaluation), nil
}

func (s *evaluationService) Update(ctx context.Context, id uint, payload dto.EvaluationUpdateRequest) (dto.EvaluationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EvaluationResponse{}, err
	}

	evaluation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EvaluationResponse{}, ErrEvaluationNotFound
		}
		return dto.EvaluationResponse{}, err
	}

	if payload.Period != nil {
		evaluation.Period = *payload.Period
	}

	if payload.Type != nil {
		evaluation.Type = *payload.Type
	}

	if err := s.repo.Update(ctx, &evaluation); err != nil {
		return dto.EvaluationResponse{}, err
	}

	s.logger.Info().Uint("evaluation_id", evaluation.ID).Msg("evaluation updated")

	return dto.NewEvaluationResponse(evaluation), nil
}
