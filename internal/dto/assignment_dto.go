package dto

import "github.com/campus-dev/coursehub-api/internal/models"

// AssignmentCreateRequest describes the payload for creating an assignment
// under a course. DueDate is an opaque integer timestamp.
type AssignmentCreateRequest struct {
	Title   string `json:"title" validate:"required"`
	DueDate int64  `json:"due_date" validate:"required"`
}

// AssignmentUpdateRequest describes a partial assignment update. Absent
// fields keep their current values.
type AssignmentUpdateRequest struct {
	Title   *string `json:"title"`
	DueDate *int64  `json:"due_date"`
}

// AssignmentResponse is the serialized assignment shape. Submissions are
// never nested here.
type AssignmentResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	DueDate int64  `json:"due_date"`
}

// AssignmentWithCourseResponse is returned after creating an assignment: the
// assignment plus a reference to its parent course with no assignments or
// membership lists.
type AssignmentWithCourseResponse struct {
	ID      uint      `json:"id"`
	Title   string    `json:"title"`
	DueDate int64     `json:"due_date"`
	Course  CourseRef `json:"course"`
}

// NewAssignmentResponse converts a model into a DTO.
func NewAssignmentResponse(model models.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:      model.ID,
		Title:   model.Title,
		DueDate: model.DueDate,
	}
}

// NewAssignmentResponseSlice converts a slice of models into DTOs.
func NewAssignmentResponseSlice(assignments []models.Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, NewAssignmentResponse(assignment))
	}

	return responses
}

// NewAssignmentWithCourseResponse pairs a freshly created assignment with
// its parent course reference.
func NewAssignmentWithCourseResponse(assignment models.Assignment, course models.Course) AssignmentWithCourseResponse {
	return AssignmentWithCourseResponse{
		ID:      assignment.ID,
		Title:   assignment.Title,
		DueDate: assignment.DueDate,
		Course:  NewCourseRef(course),
	}
}
