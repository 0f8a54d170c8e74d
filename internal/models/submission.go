package models

import "time"

// Submission records a student's uploaded work for one assignment. Content
// holds the retrievable blob store reference, not the file bytes.
type Submission struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Content      string    `gorm:"size:1024;not null" json:"content"`
	Score        *int      `json:"score"`
	AssignmentID uint      `gorm:"not null" json:"assignment_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsGraded reports whether a grading operation has set a score.
func (s Submission) IsGraded() bool {
	return s.Score != nil
}
