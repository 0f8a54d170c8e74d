package dto

import "github.com/campus-dev/coursehub-api/internal/models"

// GradeRequest assigns a score to a submission. Score is a pointer so that
// zero is a valid grade.
type GradeRequest struct {
	SubmissionID uint `json:"submission_id" validate:"required,gt=0"`
	Score        *int `json:"score" validate:"required"`
}

// SubmissionResponse is the serialized submission shape. Score stays null
// until the submission has been graded.
type SubmissionResponse struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
	Score   *int   `json:"score"`
}

// NewSubmissionResponse converts a model into a DTO.
func NewSubmissionResponse(model models.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:      model.ID,
		Content: model.Content,
		Score:   model.Score,
	}
}
