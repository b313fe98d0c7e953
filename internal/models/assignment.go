package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	// AssignmentStatePending indicates responses have not been finalised.
	AssignmentStatePending = "pending"
	// AssignmentStateCompleted indicates the assignment has been closed.
	AssignmentStateCompleted = "completed"
)

// SubmittedAnswer is one employee response embedded inside an assignment.
type SubmittedAnswer struct {
	QuestionID uint   `json:"question_id"`
	Response   string `json:"response"`
}

// EvaluationAssignment binds one employee to one evaluation cycle with an
// ordered set of questions. Submitted answers are embedded inline and are
// replaced wholesale on every scoring call, never merged.
type EvaluationAssignment struct {
	ID           uint                                 `gorm:"primaryKey" json:"id"`
	EmployeeID   uint                                 `gorm:"not null" json:"employee_id"`
	EvaluationID uint                                 `gorm:"not null" json:"evaluation_id"`
	QuestionIDs  datatypes.JSONSlice[uint]            `gorm:"type:json" json:"question_ids"`
	State        string                               `gorm:"size:32;not null;default:pending" json:"state"`
	Answers      datatypes.JSONSlice[SubmittedAnswer] `gorm:"type:json" json:"answers"`
	Score        float64                              `gorm:"default:0" json:"score"`
	Employee     Employee                             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"employee"`
	Evaluation   Evaluation                           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"evaluation"`
	CreatedAt    time.Time                            `json:"created_at"`
	UpdatedAt    time.Time                            `json:"updated_at"`
}

// IsCompleted reports whether the assignment has been closed.
func (a EvaluationAssignment) IsCompleted() bool {
	return a.State == AssignmentStateCompleted
}
