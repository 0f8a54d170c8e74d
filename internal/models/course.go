package models

import "time"

// Course groups assignments and enrolled users under a catalog code.
type Course struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"size:32;not null" json:"code"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Deleting a course deletes its assignments and, through them, their
	// submissions. The repository performs the cascade explicitly so it
	// does not depend on database-level foreign key enforcement.
	Assignments []Assignment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"assignments"`
}
