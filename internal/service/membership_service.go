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

// ErrNotEnrolled indicates the user is not a registered student of the course.
var ErrNotEnrolled = errors.New("user has not been added to this course")

// MembershipService manages who belongs to a course and under which role.
type MembershipService interface {
	Enroll(ctx context.Context, courseID uint, payload dto.EnrollRequest) (dto.CourseResponse, error)
	Drop(ctx context.Context, courseID uint, payload dto.DropRequest) (dto.UserResponse, error)
}

type membershipService struct {
	courses     repository.CourseRepository
	users       repository.UserRepository
	enrollments repository.EnrollmentRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewMembershipService constructs a MembershipService instance.
func NewMembershipService(courseRepo repository.CourseRepository, userRepo repository.UserRepository, enrollmentRepo repository.EnrollmentRepository, validate *validator.Validate, logger zerolog.Logger) MembershipService {
	return &membershipService{
		courses:     courseRepo,
		users:       userRepo,
		enrollments: enrollmentRepo,
		validator:   validate,
		logger:      logger.With().Str("component", "membership_service").Logger(),
	}
}

// Enroll adds the user to the course under the requested role, defaulting to
// student. The insert is a set operation: enrolling twice under the same
// role leaves a single membership record. Holding both roles at once is
// allowed.
func (s *membershipService) Enroll(ctx context.Context, courseID uint, payload dto.EnrollRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CourseResponse{}, err
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CourseResponse{}, ErrCourseNotFound
		}
		return dto.CourseResponse{}, err
	}

	user, err := s.users.GetByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CourseResponse{}, ErrUserNotFound
		}
		return dto.CourseResponse{}, err
	}

	role := payload.Type
	if role == "" {
		role = models.RoleStudent
	}

	if err := s.enrollments.Add(ctx, course.ID, user.ID, role); err != nil {
		return dto.CourseResponse{}, err
	}

	s.logger.Info().
		Uint("course_id", course.ID).
		Uint("user_id", user.ID).
		Str("role", role).
		Msg("user enrolled")

	return buildCourseResponse(ctx, s.enrollments, course)
}

// Drop removes a student enrollment. Instructors cannot be dropped through
// this operation.
func (s *membershipService) Drop(ctx context.Context, courseID uint, payload dto.DropRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrCourseNotFound
		}
		return dto.UserResponse{}, err
	}

	user, err := s.users.GetByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}

	if err := s.enrollments.Remove(ctx, courseID, user.ID, models.RoleStudent); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrNotEnrolled
		}
		return dto.UserResponse{}, err
	}

	s.logger.Info().Uint("course_id", courseID).Uint("user_id", user.ID).Msg("student dropped")

	return buildUserResponse(ctx, s.enrollments, user)
}
