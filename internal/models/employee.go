package models

import "time"

// Employee represents a member of staff that can be evaluated.
type Employee struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Position   string    `gorm:"size:255;not null" json:"position"`
	Department string    `gorm:"size:255;not null" json:"department"`
	ManagerID  *uint     `json:"manager_id"`
	Manager    *User     `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
