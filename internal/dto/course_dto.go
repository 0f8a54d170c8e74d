package dto

import "github.com/campus-dev/coursehub-api/internal/models"

// CourseCreateRequest describes the payload for creating a new course.
type CourseCreateRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// CourseResponse is the full course view: assignments plus both membership
// lists. Members are rendered without their own course lists to break the
// course/user recursion.
type CourseResponse struct {
	ID          uint                 `json:"id"`
	Code        string               `json:"code"`
	Name        string               `json:"name"`
	Assignments []AssignmentResponse `json:"assignments"`
	Instructors []UserSummary        `json:"instructors"`
	Students    []UserSummary        `json:"students"`
}

// CourseSummary renders a course with its assignments but without any
// membership lists. Used for course listings and user course lists.
type CourseSummary struct {
	ID          uint                 `json:"id"`
	Code        string               `json:"code"`
	Name        string               `json:"name"`
	Assignments []AssignmentResponse `json:"assignments"`
}

// CourseRef is the minimal course reference embedded in the assignment
// creation response.
type CourseRef struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewCourseResponse builds the full view from a course and its resolved
// membership lists.
func NewCourseResponse(course models.Course, students, instructors []models.User) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Code:        course.Code,
		Name:        course.Name,
		Assignments: NewAssignmentResponseSlice(course.Assignments),
		Instructors: NewUserSummarySlice(instructors),
		Students:    NewUserSummarySlice(students),
	}
}

// NewCourseSummary converts a course (with preloaded assignments) into the
// no-users view.
func NewCourseSummary(course models.Course) CourseSummary {
	return CourseSummary{
		ID:          course.ID,
		Code:        course.Code,
		Name:        course.Name,
		Assignments: NewAssignmentResponseSlice(course.Assignments),
	}
}

// NewCourseSummarySlice converts courses into no-users views.
func NewCourseSummarySlice(courses []models.Course) []CourseSummary {
	summaries := make([]CourseSummary, 0, len(courses))
	for _, course := range courses {
		summaries = append(summaries, NewCourseSummary(course))
	}

	return summaries
}

// NewCourseRef strips a course down to its identifying fields.
func NewCourseRef(course models.Course) CourseRef {
	return CourseRef{
		ID:   course.ID,
		Code: course.Code,
		Name: course.Name,
	}
}
