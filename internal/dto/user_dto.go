package dto

import "github.com/campus-dev/coursehub-api/internal/models"

// UserCreateRequest describes the payload for registering a user.
type UserCreateRequest struct {
	Name  string `json:"name" validate:"required"`
	NetID string `json:"netid" validate:"required"`
}

// EnrollRequest adds a user to a course under one role. An empty type
// defaults to student.
type EnrollRequest struct {
	UserID uint   `json:"user_id" validate:"required,gt=0"`
	Type   string `json:"type" validate:"omitempty,oneof=student instructor"`
}

// DropRequest removes a student from a course.
type DropRequest struct {
	UserID uint `json:"user_id" validate:"required,gt=0"`
}

// UserResponse is the full user view. Courses concatenates student courses
// followed by instructor courses, each rendered without membership lists.
type UserResponse struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name"`
	NetID   string          `json:"netid"`
	Courses []CourseSummary `json:"courses"`
}

// UserSummary renders a user without their course lists.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	NetID string `json:"netid"`
}

// NewUserResponse builds the full view from a user and their resolved
// course lists.
func NewUserResponse(user models.User, studentCourses, instructorCourses []models.Course) UserResponse {
	courses := make([]CourseSummary, 0, len(studentCourses)+len(instructorCourses))
	courses = append(courses, NewCourseSummarySlice(studentCourses)...)
	courses = append(courses, NewCourseSummarySlice(instructorCourses)...)

	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		NetID:   user.NetID,
		Courses: courses,
	}
}

// NewUserSummary converts a user into the no-courses view.
func NewUserSummary(user models.User) UserSummary {
	return UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		NetID: user.NetID,
	}
}

// NewUserSummarySlice converts users into no-courses views.
func NewUserSummarySlice(users []models.User) []UserSummary {
	summaries := make([]UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, NewUserSummary(user))
	}

	return summaries
}
