package models

import "time"

const (
	// RoleStudent marks an enrollment that allows submitting assignments.
	RoleStudent = "student"
	// RoleInstructor marks a teaching enrollment.
	RoleInstructor = "instructor"
)

// Enrollment links a user to a course under a single role. The same user may
// hold both roles in the same course, but each (course, user, role) pair
// exists at most once.
type Enrollment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CourseID  uint      `gorm:"not null;uniqueIndex:idx_course_user_role,priority:1" json:"course_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_course_user_role,priority:2" json:"user_id"`
	Role      string    `gorm:"size:16;not null;uniqueIndex:idx_course_user_role,priority:3" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsValidRole reports whether the provided role is one of the two known roles.
func IsValidRole(role string) bool {
	return role == RoleStudent || role == RoleInstructor
}
