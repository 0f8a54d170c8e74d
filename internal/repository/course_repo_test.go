package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campus-dev/coursehub-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.User{}, &models.Enrollment{}, &models.Assignment{}, &models.Submission{}))
	return db
}

func TestCourseRepositoryCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	course := models.Course{Code: "CS1110", Name: "Intro to Python"}
	require.NoError(t, repo.Create(context.Background(), &course))
	require.NotZero(t, course.ID)

	fetched, err := repo.GetByID(context.Background(), course.ID)
	require.NoError(t, err)
	require.Equal(t, "CS1110", fetched.Code)
	require.Equal(t, "Intro to Python", fetched.Name)
	require.Empty(t, fetched.Assignments)
}

func TestCourseRepositoryGetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	_, err := repo.GetByID(context.Background(), 99999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCourseRepositoryDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	course := models.Course{Code: "CS2110", Name: "OO Programming"}
	require.NoError(t, repo.Create(context.Background(), &course))

	user := models.User{Name: "Alice", NetID: "aa1"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Enrollment{CourseID: course.ID, UserID: user.ID, Role: models.RoleStudent}).Error)

	assignment := models.Assignment{Title: "PS1", DueDate: 1700000000, CourseID: course.ID}
	require.NoError(t, db.Create(&assignment).Error)
	submission := models.Submission{Content: "https://blob.test/alice/ps1.pdf", AssignmentID: assignment.ID}
	require.NoError(t, db.Create(&submission).Error)

	require.NoError(t, repo.Delete(context.Background(), course.ID))

	var assignmentCount, submissionCount, enrollmentCount int64
	require.NoError(t, db.Model(&models.Assignment{}).Where("course_id = ?", course.ID).Count(&assignmentCount).Error)
	require.NoError(t, db.Model(&models.Submission{}).Where("assignment_id = ?", assignment.ID).Count(&submissionCount).Error)
	require.NoError(t, db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollmentCount).Error)
	require.Zero(t, assignmentCount)
	require.Zero(t, submissionCount)
	require.Zero(t, enrollmentCount)

	_, err := repo.GetByID(context.Background(), course.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The user itself survives the cascade.
	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Count(&userCount).Error)
	require.EqualValues(t, 1, userCount)
}

func TestCourseRepositoryDeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	err := repo.Delete(context.Background(), 424242)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
