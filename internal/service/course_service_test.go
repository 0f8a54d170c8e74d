package service

import (
	"context"
	"io"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campus-dev/coursehub-api/internal/dto"
	"github.com/campus-dev/coursehub-api/internal/models"
	"github.com/campus-dev/coursehub-api/internal/repository"
)

func newCourseService(t *testing.T, db *gorm.DB, cache *CourseListCache) CourseService {
	t.Helper()
	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.New(io.Discard)
	return NewCourseService(
		repository.NewCourseRepository(db),
		repository.NewEnrollmentRepository(db),
		cache,
		validate,
		logger,
	)
}

func TestCourseCreateAndGetRoundTrip(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCourseService(t, db, nil)

	created, err := svc.Create(context.Background(), dto.CourseCreateRequest{Code: "CS2800", Name: "Discrete Structures"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "CS2800", fetched.Code)
	require.Equal(t, "Discrete Structures", fetched.Name)
	require.Empty(t, fetched.Assignments)
	require.Empty(t, fetched.Students)
	require.Empty(t, fetched.Instructors)
}

func TestCourseGetMissing(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCourseService(t, db, nil)

	_, err := svc.Get(context.Background(), 99999)
	require.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseListUsesCache(t *testing.T) {
	mini, err := miniredis.Run()
	require.NoError(t, err)
	defer mini.Close()

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	cache := NewCourseListCache(client, time.Minute, zerolog.New(io.Discard))

	db := setupServiceDB(t)
	svc := newCourseService(t, db, cache)

	first, err := svc.Create(context.Background(), dto.CourseCreateRequest{Code: "ASTRO1101", Name: "From New Worlds to Black Holes"})
	require.NoError(t, err)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.True(t, containsCourse(listed, first.ID))
	require.True(t, mini.Exists("courses:all"))

	// A course created behind the cache's back stays invisible until a
	// write through the service invalidates the listing.
	stale := models.Course{Code: "HIDDEN", Name: "Not Cached"}
	require.NoError(t, db.Create(&stale).Error)

	listed, err = svc.List(context.Background())
	require.NoError(t, err)
	require.False(t, containsCourse(listed, stale.ID))

	second, err := svc.Create(context.Background(), dto.CourseCreateRequest{Code: "ASTRO2202", Name: "Planetary Science"})
	require.NoError(t, err)

	listed, err = svc.List(context.Background())
	require.NoError(t, err)
	require.True(t, containsCourse(listed, stale.ID))
	require.True(t, containsCourse(listed, second.ID))
}

func TestCourseListWithoutCache(t *testing.T) {
	db := setupServiceDB(t)
	svc := newCourseService(t, db, nil)

	created, err := svc.Create(context.Background(), dto.CourseCreateRequest{Code: "MUSIC1312", Name: "History of Rock"})
	require.NoError(t, err)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.True(t, containsCourse(listed, created.ID))
}

func containsCourse(courses []dto.CourseSummary, id uint) bool {
	for _, course := range courses {
		if course.ID == id {
			return true
		}
	}
	return false
}
