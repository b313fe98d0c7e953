package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/talentpulse/eval360-api/internal/models"
)

// AssignmentRepository defines persistence operations for evaluation assignments.
type AssignmentRepository interface {
	GetByID(ctx context.Context, id uint) (models.EvaluationAssignment, error)
	ListByEmployee(ctx context.Context, employeeID uint) ([]models.EvaluationAssignment, error)
	Create(ctx context.Context, assignment *models.EvaluationAssignment) error
	Update(ctx context.Context, assignment *models.EvaluationAssignment) error
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository instantiates a GORM-backed repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.EvaluationAssignment{}).
		Preload("Employee").
		Preload("Evaluation")
}

func (r *assignmentRepository) GetByID(ctx context.Context, id uint) (models.EvaluationAssignment, error) {
	var assignment models.EvaluationAssignment
	if err := r.baseQuery(ctx).First(&assignment, id).Error; err != nil {
		return models.EvaluationAssignment{}, err
	}

	return assignment, nil
}

func (r *assignmentRepository) ListByEmployee(ctx context.Context, employeeID uint) ([]models.EvaluationAssignment, error) {
	var assignments []models.EvaluationAssignment
	if err := r.baseQuery(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.EvaluationAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) Update(ctx context.Context, assignment *models.EvaluationAssignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}
