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

// ErrCourseNotFound indicates the requested course does not exist.
var ErrCourseNotFound = errors.New("course not found")

// CourseService exposes course use cases.
type CourseService interface {
	List(ctx context.Context) ([]dto.CourseSummary, error)
	Get(ctx context.Context, id uint) (dto.CourseResponse, error)
	Create(ctx context.Context, payload dto.CourseCreateRequest) (dto.CourseResponse, error)
}

type courseService struct {
	courses     repository.CourseRepository
	enrollments repository.EnrollmentRepository
	cache       *CourseListCache
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewCourseService constructs a CourseService instance.
func NewCourseService(courseRepo repository.CourseRepository, enrollmentRepo repository.EnrollmentRepository, cache *CourseListCache, validate *validator.Validate, logger zerolog.Logger) CourseService {
	return &courseService{
		courses:     courseRepo,
		enrollments: enrollmentRepo,
		cache:       cache,
		validator:   validate,
		logger:      logger.With().Str("component", "course_service").Logger(),
	}
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseSummary, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		return cached, nil
	}

	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := dto.NewCourseSummarySlice(courses)
	s.cache.Set(ctx, summaries)

	return summaries, nil
}

func (s *courseService) Get(ctx context.Context, id uint) (dto.CourseResponse, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CourseResponse{}, ErrCourseNotFound
		}
		return dto.CourseResponse{}, err
	}

	return buildCourseResponse(ctx, s.enrollments, course)
}

func (s *courseService) Create(ctx context.Context, payload dto.CourseCreateRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CourseResponse{}, err
	}

	course := models.Course{
		Code: payload.Code,
		Name: payload.Name,
	}

	if err := s.courses.Create(ctx, &course); err != nil {
		return dto.CourseResponse{}, err
	}

	s.cache.Invalidate(ctx)
	s.logger.Info().Uint("course_id", course.ID).Str("code", course.Code).Msg("course created")

	return buildCourseResponse(ctx, s.enrollments, course)
}

// buildCourseResponse resolves both membership lists and renders the full
// course view. Shared with the membership service, which returns the same
// shape after enrollment changes.
func buildCourseResponse(ctx context.Context, enrollments repository.EnrollmentRepository, course models.Course) (dto.CourseResponse, error) {
	students, err := enrollments.UsersByCourse(ctx, course.ID, models.RoleStudent)
	if err != nil {
		return dto.CourseResponse{}, err
	}

	instructors, err := enrollments.UsersByCourse(ctx, course.ID, models.RoleInstructor)
	if err != nil {
		return dto.CourseResponse{}, err
	}

	return dto.NewCourseResponse(course, students, instructors), nil
}
