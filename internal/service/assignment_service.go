package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/campus-dev/coursehub-api/internal/dto"
	"github.com/campus-dev/coursehub-api/internal/models"
	"github.com/campus-dev/coursehub-api/internal/repository"
)

// ErrAssignmentNotFound indicates the requested assignment does not exist.
var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentService exposes assignment use cases.
type AssignmentService interface {
	Create(ctx context.Context, courseID uint, payload dto.AssignmentCreateRequest) (dto.AssignmentWithCourseResponse, error)
	Update(ctx context.Context, id uint, payload dto.AssignmentUpdateRequest) (dto.AssignmentResponse, error)
}

type assignmentService struct {
	assignments repository.AssignmentRepository
	courses     repository.CourseRepository
	cache       *CourseListCache
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewAssignmentService constructs an AssignmentService instance.
func NewAssignmentService(assignmentRepo repository.AssignmentRepository, courseRepo repository.CourseRepository, cache *CourseListCache, validate *validator.Validate, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		assignments: assignmentRepo,
		courses:     courseRepo,
		cache:       cache,
		validator:   validate,
		logger:      logger.With().Str("component", "assignment_service").Logger(),
	}
}

func (s *assignmentService) Create(ctx context.Context, courseID uint, payload dto.AssignmentCreateRequest) (dto.AssignmentWithCourseResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentWithCourseResponse{}, err
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentWithCourseResponse{}, ErrCourseNotFound
		}
		return dto.AssignmentWithCourseResponse{}, err
	}

	assignment := models.Assignment{
		Title:    payload.Title,
		DueDate:  payload.DueDate,
		CourseID: course.ID,
	}

	if err := s.assignments.Create(ctx, &assignment); err != nil {
		return dto.AssignmentWithCourseResponse{}, err
	}

	// The course listing nests assignments, so it is stale now.
	s.cache.Invalidate(ctx)

	s.logger.Info().
		Uint("assignment_id", assignment.ID).
		Uint("course_id", course.ID).
		Msg("assignment created")

	return dto.NewAssignmentWithCourseResponse(assignment, course), nil
}

// Update applies a partial update: each field that is present replaces the
// current value, absent fields are retained.
func (s *assignmentService) Update(ctx context.Context, id uint, payload dto.AssignmentUpdateRequest) (dto.AssignmentResponse, error) {
	assignment, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}
		return dto.AssignmentResponse{}, err
	}

	if payload.Title != nil {
		assignment.Title = *payload.Title
	}

	if payload.DueDate != nil {
		assignment.DueDate = *payload.DueDate
	}

	if err := s.assignments.Update(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.cache.Invalidate(ctx)

	s.logger.Info().Uint("assignment_id", assignment.ID).Msg("assignment updated")

	return dto.NewAssignmentResponse(assignment), nil
}
