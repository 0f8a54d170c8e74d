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

// ErrUserNotFound indicates the requested user does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserService exposes user use cases.
type UserService interface {
	Get(ctx context.Context, id uint) (dto.UserResponse, error)
	Create(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error)
}

type userService struct {
	users       repository.UserRepository
	enrollments repository.EnrollmentRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewUserService constructs a UserService instance.
func NewUserService(userRepo repository.UserRepository, enrollmentRepo repository.EnrollmentRepository, validate *validator.Validate, logger zerolog.Logger) UserService {
	return &userService{
		users:       userRepo,
		enrollments: enrollmentRepo,
		validator:   validate,
		logger:      logger.With().Str("component", "user_service").Logger(),
	}
}

func (s *userService) Get(ctx context.Context, id uint) (dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}

	return buildUserResponse(ctx, s.enrollments, user)
}

func (s *userService) Create(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	user := models.User{
		Name:  payload.Name,
		NetID: payload.NetID,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().Uint("user_id", user.ID).Str("netid", user.NetID).Msg("user created")

	return buildUserResponse(ctx, s.enrollments, user)
}

// buildUserResponse renders the full user view: student courses followed by
// instructor courses, each without membership lists. Shared with the
// membership service's drop flow.
func buildUserResponse(ctx context.Context, enrollments repository.EnrollmentRepository, user models.User) (dto.UserResponse, error) {
	studentCourses, err := enrollments.CoursesByUser(ctx, user.ID, models.RoleStudent)
	if err != nil {
		return dto.UserResponse{}, err
	}

	instructorCourses, err := enrollments.CoursesByUser(ctx, user.ID, models.RoleInstructor)
	if err != nil {
		return dto.UserResponse{}, err
	}

	return dto.NewUserResponse(user, studentCourses, instructorCourses), nil
}
