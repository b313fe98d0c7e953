package models

import "time"

// Evaluation describes a review cycle template, e.g. "Q1 2025" / "annual".
// It carries no questions itself; assignments bind questions to a cycle.
type Evaluation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Period    string    `gorm:"size:255;not null" json:"period"`
	Type      string    `gorm:"size:255;not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
