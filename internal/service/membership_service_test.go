package service

import (
	"context"
	"io"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campus-dev/coursehub-api/internal/dto"
	"github.com/campus-dev/coursehub-api/internal/models"
	"github.com/campus-dev/coursehub-api/internal/repository"
)

func setupServiceDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.User{}, &models.Enrollment{}, &models.Assignment{}, &models.Submission{}))
	return db
}

func newMembershipService(t *testing.T, db *gorm.DB) MembershipService {
	t.Helper()
	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.New(io.Discard)
	return NewMembershipService(
		repository.NewCourseRepository(db),
		repository.NewUserRepository(db),
		repository.NewEnrollmentRepository(db),
		validate,
		logger,
	)
}

func TestMembershipEnrollDefaultsToStudent(t *testing.T) {
	db := setupServiceDB(t)
	svc := newMembershipService(t, db)

	course := models.Course{Code: "MATH1920", Name: "Multivariable Calculus"}
	require.NoError(t, db.Create(&course).Error)
	user := models.User{Name: "Frank", NetID: "ff6"}
	require.NoError(t, db.Create(&user).Error)

	view, err := svc.Enroll(context.Background(), course.ID, dto.EnrollRequest{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, view.Students, 1)
	require.Equal(t, user.ID, view.Students[0].ID)
	require.Empty(t, view.Instructors)
}

func TestMembershipEnrollBothRoles(t *testing.T) {
	db := setupServiceDB(t)
	svc := newMembershipService(t, db)

	course := models.Course{Code: "PHYS2213", Name: "Electromagnetism"}
	require.NoError(t, db.Create(&course).Error)
	user := models.User{Name: "Grace", NetID: "gg7"}
	require.NoError(t, db.Create(&user).Error)

	_, err := svc.Enroll(context.Background(), course.ID, dto.EnrollRequest{UserID: user.ID, Type: models.RoleStudent})
	require.NoError(t, err)
	view, err := svc.Enroll(context.Background(), course.ID, dto.EnrollRequest{UserID: user.ID, Type: models.RoleInstructor})
	require.NoError(t, err)

	require.Len(t, view.Students, 1)
	require.Len(t, view.Instructors, 1)
	require.Equal(t, user.ID, view.Students[0].ID)
	require.Equal(t, user.ID, view.Instructors[0].ID)
}

func TestMembershipEnrollMissingEntities(t *testing.T) {
	db := setupServiceDB(t)
	svc := newMembershipService(t, db)

	_, err := svc.Enroll(context.Background(), 99999, dto.EnrollRequest{UserID: 1})
	require.ErrorIs(t, err, ErrCourseNotFound)

	course := models.Course{Code: "CHEM2090", Name: "General Chemistry"}
	require.NoError(t, db.Create(&course).Error)

	_, err = svc.Enroll(context.Background(), course.ID, dto.EnrollRequest{UserID: 99999})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestMembershipDropLifecycle(t *testing.T) {
	db := setupServiceDB(t)
	svc := newMembershipService(t, db)

	course := models.Course{Code: "ECON3030", Name: "Game Theory"}
	require.NoError(t, db.Create(&course).Error)
	user := models.User{Name: "Heidi", NetID: "hh8"}
	require.NoError(t, db.Create(&user).Error)

	// Dropping before any enrollment fails.
	_, err := svc.Drop(context.Background(), course.ID, dto.DropRequest{UserID: user.ID})
	require.ErrorIs(t, err, ErrNotEnrolled)

	_, err = svc.Enroll(context.Background(), course.ID, dto.EnrollRequest{UserID: user.ID})
	require.NoError(t, err)

	view, err := svc.Drop(context.Background(), course.ID, dto.DropRequest{UserID: user.ID})
	require.NoError(t, err)
	require.Equal(t, user.ID, view.ID)
	require.Empty(t, view.Courses)

	// Second drop of the same user fails again.
	_, err = svc.Drop(context.Background(), course.ID, dto.DropRequest{UserID: user.ID})
	require.ErrorIs(t, err, ErrNotEnrolled)
}

func TestMembershipDropLeavesInstructorRole(t *testing.T) {
	db := setupServiceDB(t)
	svc := newMembershipService(t, db)

	course := models.Course{Code: "INFO4390", Name: "Fair Algorithms"}
	require.NoError(t, db.Create(&course).Error)
	user := models.User{Name: "Ivan", NetID: "ii9"}
	require.NoError(t, db.Create(&user).Error)

	_, err := svc.Enroll(context.Background(), course.ID, dto.EnrollRequest{UserID: user.ID, Type: models.RoleInstructor})
	require.NoError(t, err)

	// Drop only removes student enrollments, so an instructor-only user
	// is reported as not enrolled.
	_, err = svc.Drop(context.Background(), course.ID, dto.DropRequest{UserID: user.ID})
	require.ErrorIs(t, err, ErrNotEnrolled)

	view, err := svc.Enroll(context.Background(), course.ID, dto.EnrollRequest{UserID: user.ID, Type: models.RoleInstructor})
	require.NoError(t, err)
	require.Len(t, view.Instructors, 1)
}
