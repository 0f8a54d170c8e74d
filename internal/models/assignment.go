package models

import "time"

// Assignment belongs to exactly one course. The owning course is fixed at
// creation and never reassigned.
type Assignment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	DueDate   int64     `gorm:"not null" json:"due_date"`
	CourseID  uint      `gorm:"not null" json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Submissions []Submission `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"submissions"`
}
