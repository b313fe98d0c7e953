package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	// QuestionKindOpen marks a free-form question.
	QuestionKindOpen = "open"
	// QuestionKindMultipleChoice marks a question with a fixed option set.
	QuestionKindMultipleChoice = "multiple-choice"
)

// Question is a single evaluation question. Options are only meaningful
// for multiple-choice questions and keep their authored order.
type Question struct {
	ID        uint                        `gorm:"primaryKey" json:"id"`
	Text      string                      `gorm:"type:text;not null" json:"text"`
	Kind      string                      `gorm:"size:32;not null" json:"kind"`
	Options   datatypes.JSONSlice[string] `gorm:"type:json" json:"options"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

// IsValidQuestionKind reports whether kind is a supported question kind.
func IsValidQuestionKind(kind string) bool {
	return kind == QuestionKindOpen || kind == QuestionKindMultipleChoice
}
