package dto

import (
	"time"

	"github.com/talentpulse/eval360-api/internal/models"
)

// AssignmentCreateRequest describes the payload for creating an evaluation assignment.
// QuestionIDs may be empty; scoring against zero questions yields a zero score.
type AssignmentCreateRequest struct {
	EmployeeID   uint   `json:"employee_id" validate:"required,gt=0"`
	EvaluationID uint   `json:"evaluation_id" validate:"required,gt=0"`
	QuestionIDs  []uint `json:"question_ids" validate:"omitempty,dive,gt=0"`
}

// ResponseItem is one submitted answer within a response batch.
type ResponseItem struct {
	QuestionID uint   `json:"question_id" validate:"required,gt=0"`
	Response   string `json:"response" validate:"required"`
}

// SubmitResponsesRequest is the response batch scored against the answer keys.
type SubmitResponsesRequest struct {
	Responses []ResponseItem `json:"responses" validate:"required,min=1,dive"`
}

// SubmittedAnswerResponse is a stored answer echoed back to the client.
type SubmittedAnswerResponse struct {
	QuestionID uint   `json:"question_id"`
	Response   string `json:"response"`
}

// AssignmentResponse is the serialized representation returned to API clients.
// Questions carries the full records for the assigned question IDs, in the
// order they were assigned, when the caller resolved them.
type AssignmentResponse struct {
	ID           uint                      `json:"id"`
	EmployeeID   uint                      `json:"employee_id"`
	EvaluationID uint                      `json:"evaluation_id"`
	QuestionIDs  []uint                    `json:"question_ids"`
	Questions    []QuestionResponse        `json:"questions,omitempty"`
	State        string                    `json:"state"`
	Answers      []SubmittedAnswerResponse `json:"answers"`
	Score        float64                   `json:"score"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}

// NewAssignmentResponse converts a model into a DTO.
func NewAssignmentResponse(model models.EvaluationAssignment) AssignmentResponse {
	answers := make([]SubmittedAnswerResponse, 0, len(model.Answers))
	for _, answer := range model.Answers {
		answers = append(answers, SubmittedAnswerResponse{
			QuestionID: answer.QuestionID,
			Response:   answer.Response,
		})
	}

	return AssignmentResponse{
		ID:           model.ID,
		EmployeeID:   model.EmployeeID,
		EvaluationID: model.EvaluationID,
		QuestionIDs:  model.QuestionIDs,
		State:        model.State,
		Answers:      answers,
		Score:        model.Score,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// NewAssignmentResponseWithQuestions converts a model and its resolved
// questions into a DTO.
func NewAssignmentResponseWithQuestions(model models.EvaluationAssignment, questions []models.Question) AssignmentResponse {
	response := NewAssignmentResponse(model)
	response.Questions = NewQuestionResponseSlice(questions)
	return response
}

// NewAssignmentResponseSlice converts a slice of models into DTOs.
func NewAssignmentResponseSlice(assignments []models.EvaluationAssignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, NewAssignmentResponse(assignment))
	}

	return responses
}
