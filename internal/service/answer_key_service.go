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

var (
	// ErrAnswerKeyNotFound indicates the requested answer key does not exist.
	ErrAnswerKeyNotFound = errors.New("answer key not found")
	// ErrAnswerKeyExists indicates the question already has an answer key.
	ErrAnswerKeyExists = errors.New("answer key already exists for question")
)

// AnswerKeyService exposes answer key catalog use cases. One key per question
// is enforced so that scoring stays deterministic.
type AnswerKeyService interface {
	Get(ctx context.Context, id uint) (dto.AnswerKeyResponse, error)
	Create(ctx context.Context, payload dto.AnswerKeyCreateRequest) (dto.AnswerKeyResponse, error)
	Update(ctx context.Context, id uint, payload dto.AnswerKeyUpdateRequest) (dto.AnswerKeyResponse, error)
}

type answerKeyService struct {
	repo      repository.AnswerKeyRepository
	questions repository.QuestionRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAnswerKeyService builds a new answer key service.
func NewAnswerKeyService(repo repository.AnswerKeyRepository, questions repository.QuestionRepository, validate *validator.Validate, logger zerolog.Logger) AnswerKeyService {
	return &answerKeyService{
		repo:      repo,
		questions: questions,
		validator: validate,
		logger:    logger.With().Str("component", "answer_key_service").Logger(),
	}
}

func (s *answerKeyService) Get(ctx context.Context, id uint) (dto.AnswerKeyResponse, error) {
	key, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AnswerKeyResponse{}, ErrAnswerKeyNotFound
		}
		return dto.AnswerKeyResponse{}, err
	}

	return dto.NewAnswerKeyResponse(key), nil
}

func (s *answerKeyService) Create(ctx context.Context, payload dto.AnswerKeyCreateRequest) (dto.AnswerKeyResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AnswerKeyResponse{}, err
	}

	if _, err := s.questions.GetByID(ctx, payload.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AnswerKeyResponse{}, ErrQuestionNotFound
		}
		return dto.AnswerKeyResponse{}, err
	}

	if _, err := s.repo.GetByQuestionID(ctx, payload.QuestionID); err == nil {
		return dto.AnswerKeyResponse{}, ErrAnswerKeyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AnswerKeyResponse{}, err
	}

	key := models.AnswerKey{
		QuestionID: payload.QuestionID,
		Response:   payload.Response,
	}

	if err := s.repo.Create(ctx, &key); err != nil {
		return dto.AnswerKeyResponse{}, err
	}

	s.logger.Info().Uint("answer_key_id", key.ID).Uint("question_id", key.QuestionID).Msg("answer key created")

	return dto.NewAnswerKeyResponse(key), nil
}

func (s *answerKeyService) Update(ctx context.Context, id uint, payload dto.AnswerKeyUpdateRequest) (dto.AnswerKeyResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AnswerKeyResponse{}, err
	}

	key, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AnswerKeyResponse{}, ErrAnswerKeyNotFound
		}
		return dto.AnswerKeyResponse{}, err
	}

	if payload.Response != nil {
		key.Response = *payload.Response
	}

	if err := s.repo.Update(ctx, &key); err != nil {
		return dto.AnswerKeyResponse{}, err
	}

	s.logger.Info().Uint("answer_key_id", key.ID).Msg("answer key updated")

	return dto.NewAnswerKeyResponse(key), nil
}
