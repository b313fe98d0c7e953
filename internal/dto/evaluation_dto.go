package dto

import (
	"time"

	"github.com/talentpulse/eval360-api/internal/models"
)

// EvaluationCreateRequest describes the payload for creating a review cycle.
type EvaluationCreateRequest struct {
	Period string `json:"period" validate:"required,min=1"`
	Type   string `json:"type" validate:"required,min=1"`
}

// EvaluationUpdateRequest describes a partial update. Nil fields are left unchanged.
type EvaluationUpdateRequest struct {
	Period *string `json:"period" validate:"omitempty,min=1"`
	Type   *string `json:"type" validate:"omitempty,min=1"`
}

// EvaluationResponse is the serialized representation returned to API clients.
type EvaluationResponse struct {
	ID        uint      `json:"id"`
	Period    string    `json:"period"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEvaluationResponse converts a model into a DTO.
func NewEvaluationResponse(model models.Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:        model.ID,
		Period:    model.Period,
		Type:      model.Type,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewEvaluationResponseSlice converts a slice of models into DTOs.
func NewEvaluationResponseSlice(evaluations []models.Evaluation) []EvaluationResponse {
	responses := make([]EvaluationResponse, 0, len(evaluations))
	for _, evaluation := range evaluations {
		responses = append(responses, NewEvaluationResponse(evaluation))
	}

	return responses
}
