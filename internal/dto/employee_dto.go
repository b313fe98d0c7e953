package dto

import (
	"time"

	"github.com/talentpulse/eval360-api/internal/models"
)

// EmployeeCreateRequest describes the payload for creating a new employee.
type EmployeeCreateRequest struct {
	Name       string `json:"name" validate:"required,min=1"`
	Position   string `json:"position" validate:"required,min=1"`
	Department string `json:"department" validate:"required,min=1"`
	ManagerID  *uint  `json:"manager_id" validate:"omitempty,gt=0"`
}

// EmployeeUpdateRequest describes a partial update. Nil fields are left unchanged.
type EmployeeUpdateRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1"`
	Position   *string `json:"position" validate:"omitempty,min=1"`
	Department *string `json:"department" validate:"omitempty,min=1"`
	ManagerID  *uint   `json:"manager_id" validate:"omitempty,gt=0"`
}

// EmployeeResponse is the serialized representation returned to API clients.
type EmployeeResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	ManagerID  *uint     `json:"manager_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewEmployeeResponse converts a model into a DTO.
func NewEmployeeResponse(model models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         model.ID,
		Name:       model.Name,
		Position:   model.Position,
		Department: model.Department,
		ManagerID:  model.ManagerID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// NewEmployeeResponseSlice converts a slice of models into DTOs.
func NewEmployeeResponseSlice(employees []models.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		responses = append(responses, NewEmployeeResponse(employee))
	}

	return responses
}
