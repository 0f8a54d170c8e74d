package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/campus-dev/coursehub-api/internal/models"
)

// EnrollmentRepository manages the course/user join table and resolves
// membership from either side of the relation.
type EnrollmentRepository interface {
	Add(ctx context.Context, courseID, userID uint, role string) error
	Remove(ctx context.Context, courseID, userID uint, role string) error
	Exists(ctx context.Context, courseID, userID uint, role string) (bool, error)
	UsersByCourse(ctx context.Context, courseID uint, role string) ([]models.User, error)
	CoursesByUser(ctx context.Context, userID uint, role string) ([]models.Course, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository instantiates the repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// Add inserts the membership record if it is not present yet. Membership is
// a set: repeating the same add is a no-op.
func (r *enrollmentRepository) Add(ctx context.Context, courseID, userID uint, role string) error {
	enrollment := models.Enrollment{CourseID: courseID, UserID: userID, Role: role}

	return r.db.WithContext(ctx).
		Where(models.Enrollment{CourseID: courseID, UserID: userID, Role: role}).
		FirstOrCreate(&enrollment).Error
}

// Remove deletes exactly one membership record, returning
// gorm.ErrRecordNotFound when the user does not hold the role in the course.
func (r *enrollmentRepository) Remove(ctx context.Context, courseID, userID uint, role string) error {
	result := r.db.WithContext(ctx).
		Where("course_id = ? AND user_id = ? AND role = ?", courseID, userID, role).
		Delete(&models.Enrollment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *enrollmentRepository) Exists(ctx context.Context, courseID, userID uint, role string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Enrollment{}).
		Where("course_id = ? AND user_id = ? AND role = ?", courseID, userID, role).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *enrollmentRepository) UsersByCourse(ctx context.Context, courseID uint, role string) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN enrollments ON enrollments.user_id = users.id").
		Where("enrollments.course_id = ? AND enrollments.role = ?", courseID, role).
		Order("enrollments.id ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *enrollmentRepository) CoursesByUser(ctx context.Context, userID uint, role string) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).Model(&models.Course{}).
		Preload("Assignments").
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ? AND enrollments.role = ?", userID, role).
		Order("enrollments.id ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}

	return courses, nil
}
