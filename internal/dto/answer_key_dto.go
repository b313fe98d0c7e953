package dto

import (
	"time"

	"github.com/talentpulse/eval360-api/internal/models"
)

// AnswerKeyCreateRequest describes the payload for creating an answer key.
type AnswerKeyCreateRequest struct {
	QuestionID uint   `json:"question_id" validate:"required,gt=0"`
	Response   string `json:"response" validate:"required,min=1"`
}

// AnswerKeyUpdateRequest describes a partial update. Nil fields are left unchanged.
type AnswerKeyUpdateRequest struct {
	Response *string `json:"response" validate:"omitempty,min=1"`
}

// AnswerKeyResponse is the serialized representation returned to API clients.
type AnswerKeyResponse struct {
	ID         uint              `json:"id"`
	QuestionID uint              `json:"question_id"`
	Response   string            `json:"response"`
	Question   *QuestionResponse `json:"question,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// NewAnswerKeyResponse converts a model into a DTO. The question is included
// only when it has been preloaded.
func NewAnswerKeyResponse(model models.AnswerKey) AnswerKeyResponse {
	response := AnswerKeyResponse{
		ID:         model.ID,
		QuestionID: model.QuestionID,
		Response:   model.Response,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}

	if model.Question.ID != 0 {
		question := NewQuestionResponse(model.Question)
		response.Question = &question
	}

	return response
}
