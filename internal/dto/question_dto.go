package dto

import (
	"time"

	"github.com/talentpulse/eval360-api/internal/models"
)

// QuestionCreateRequest describes the payload for creating a question.
type QuestionCreateRequest struct {
	Text    string   `json:"text" validate:"required,min=1"`
	Kind    string   `json:"kind" validate:"required,oneof=open multiple-choice"`
	Options []string `json:"options" validate:"omitempty,dive,min=1"`
}

// QuestionUpdateRequest describes a partial update. Nil fields are left unchanged.
type QuestionUpdateRequest struct {
	Text    *string   `json:"text" validate:"omitempty,min=1"`
	Kind    *string   `json:"kind" validate:"omitempty,oneof=open multiple-choice"`
	Options *[]string `json:"options" validate:"omitempty,dive,min=1"`
}

// QuestionResponse is the serialized representation returned to API clients.
type QuestionResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	Kind      string    `json:"kind"`
	Options   []string  `json:"options"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewQuestionResponse converts a model into a DTO.
func NewQuestionResponse(model models.Question) QuestionResponse {
	return QuestionResponse{
		ID:        model.ID,
		Text:      model.Text,
		Kind:      model.Kind,
		Options:   model.Options,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewQuestionResponseSlice converts a slice of models into DTOs.
func NewQuestionResponseSlice(questions []models.Question) []QuestionResponse {
	responses := make([]QuestionResponse, 0, len(questions))
	for _, question := range questions {
		responses = append(responses, NewQuestionResponse(question))
	}

	return responses
}
