package models

import "time"

// AnswerKey holds the canonical correct response for a question. The unique
// index on QuestionID enforces one key per question, which keeps scoring
// deterministic regardless of query order.
type AnswerKey struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"uniqueIndex;not null" json:"question_id"`
	Response   string    `gorm:"type:text;not null" json:"response"`
	Question   Question  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"question"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
