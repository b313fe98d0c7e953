package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/talentpulse/eval360-api/internal/models"
)

// AnswerKeyRepository defines persistence operations for answer keys.
type AnswerKeyRepository interface {
	GetByID(ctx context.Context, id uint) (models.AnswerKey, error)
	GetByQuestionID(ctx context.Context, questionID uint) (models.AnswerKey, error)
	ListByQuestionIDs(ctx context.Context, questionIDs []uint) ([]models.AnswerKey, error)
	Create(ctx context.Context, key *models.AnswerKey) error
	Update(ctx context.Context, key *models.AnswerKey) error
}

type answerKeyRepository struct {
	db *gorm.DB
}

// NewAnswerKeyRepository instantiates a GORM-backed repository.
func NewAnswerKeyRepository(db *gorm.DB) AnswerKeyRepository {
	return &answerKeyRepository{db: db}
}

func (r *answerKeyRepository) GetByID(ctx context.Context, id uint) (models.AnswerKey, error) {
	var key models.AnswerKey
	if err := r.db.WithContext(ctx).Preload("Question").First(&key, id).Error; err != nil {
		return models.AnswerKey{}, err
	}

	return key, nil
}

func (r *answerKeyRepository) GetByQuestionID(ctx context.Context, questionID uint) (models.AnswerKey, error) {
	var key models.AnswerKey
	if err := r.db.WithContext(ctx).Where("question_id = ?", questionID).First(&key).Error; err != nil {
		return models.AnswerKey{}, err
	}

	return key, nil
}

func (r *answerKeyRepository) ListByQuestionIDs(ctx context.Context, questionIDs []uint) ([]models.AnswerKey, error) {
	if len(questionIDs) == 0 {
		return []models.AnswerKey{}, nil
	}

	var keys []models.AnswerKey
	if err := r.db.WithContext(ctx).Where("question_id IN ?", questionIDs).Order("id ASC").Find(&keys).Error; err != nil {
		return nil, err
	}

	return keys, nil
}

func (r *answerKeyRepository) Create(ctx context.Context, key *models.AnswerKey) error {
	return r.db.WithContext(ctx).Create(key).Error
}

func (r *answerKeyRepository) Update(ctx context.Context, key *models.AnswerKey) error {
	return r.db.WithContext(ctx).Save(key).Error
}
