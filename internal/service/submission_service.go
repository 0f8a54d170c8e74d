package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/campus-dev/coursehub-api/internal/dto"
	"github.com/campus-dev/coursehub-api/internal/models"
	"github.com/campus-dev/coursehub-api/internal/observability"
	"github.com/campus-dev/coursehub-api/internal/repository"
)

var (
	// ErrSubmissionNotFound indicates the requested submission does not exist.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrSubmissionMismatch indicates the submission belongs to a different assignment.
	ErrSubmissionMismatch = errors.New("submission does not match this assignment")
)

// BlobStore abstracts the object storage holding submission files. Put
// stores the bytes under the given key and returns a retrievable reference.
type BlobStore interface {
	Put(ctx context.Context, key string, reader io.Reader) (string, error)
}

// SubmissionService orchestrates submission upload and grading.
type SubmissionService interface {
	Submit(ctx context.Context, assignmentID, userID uint, file *multipart.FileHeader) (dto.SubmissionResponse, error)
	Grade(ctx context.Context, assignmentID uint, payload dto.GradeRequest) (dto.SubmissionResponse, error)
}

type submissionService struct {
	submissions repository.SubmissionRepository
	assignments repository.AssignmentRepository
	users       repository.UserRepository
	enrollments repository.EnrollmentRepository
	blobs       BlobStore
	validator   *validator.Validate
	logger      zerolog.Logger
	tracer      trace.Tracer
}

// NewSubmissionService constructs a SubmissionService instance.
func NewSubmissionService(submissionRepo repository.SubmissionRepository, assignmentRepo repository.AssignmentRepository, userRepo repository.UserRepository, enrollmentRepo repository.EnrollmentRepository, blobs BlobStore, validate *validator.Validate, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		submissions: submissionRepo,
		assignments: assignmentRepo,
		users:       userRepo,
		enrollments: enrollmentRepo,
		blobs:       blobs,
		validator:   validate,
		logger:      logger.With().Str("component", "submission_service").Logger(),
		tracer:      otel.Tracer("github.com/campus-dev/coursehub-api/internal/service/submission"),
	}
}

// Submit stores the uploaded file and records a submission for the student.
// The membership check runs before the blob write, so a rejected submission
// costs no storage I/O, and a failed blob write commits no submission row.
func (s *submissionService) Submit(ctx context.Context, assignmentID, userID uint, file *multipart.FileHeader) (dto.SubmissionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "submission.store")
	defer span.End()

	span.SetAttributes(
		attribute.Int("submission.assignment_id", int(assignmentID)),
		attribute.Int("submission.user_id", int(userID)),
	)

	if file == nil {
		err := errors.New("submission file is required")
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		return dto.SubmissionResponse{}, err
	}

	assignment, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionResponse{}, ErrAssignmentNotFound
		}
		return dto.SubmissionResponse{}, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionResponse{}, ErrUserNotFound
		}
		return dto.SubmissionResponse{}, err
	}

	enrolled, err := s.enrollments.Exists(ctx, assignment.CourseID, user.ID, models.RoleStudent)
	if err != nil {
		return dto.SubmissionResponse{}, err
	}
	if !enrolled {
		observability.SubmissionRejected().WithLabelValues("not_enrolled").Inc()
		span.SetStatus(codes.Error, "not enrolled")
		return dto.SubmissionResponse{}, ErrNotEnrolled
	}

	reader, err := file.Open()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "open failed")
		return dto.SubmissionResponse{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer reader.Close()

	payload := bytes.NewBuffer(nil)
	if _, err := io.Copy(payload, reader); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return dto.SubmissionResponse{}, fmt.Errorf("failed to read file: %w", err)
	}

	mime := mimetype.Detect(payload.Bytes())
	span.SetAttributes(attribute.String("submission.detected_mime", mime.String()))

	key := blobKey(user.Name, file.Filename)
	span.SetAttributes(attribute.String("submission.blob_key", key))

	reference, err := s.blobs.Put(ctx, key, bytes.NewReader(payload.Bytes()))
	if err != nil {
		observability.SubmissionRejected().WithLabelValues("storage").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "storage failed")
		return dto.SubmissionResponse{}, fmt.Errorf("failed to store file: %w", err)
	}

	submission := models.Submission{
		Content:      reference,
		AssignmentID: assignment.ID,
	}

	if err := s.submissions.Create(ctx, &submission); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		return dto.SubmissionResponse{}, err
	}

	observability.SubmissionUploads().WithLabelValues(mime.String()).Inc()
	span.SetStatus(codes.Ok, "stored")

	s.logger.Info().
		Uint("submission_id", submission.ID).
		Uint("assignment_id", assignment.ID).
		Uint("user_id", user.ID).
		Msg("submission created")

	return dto.NewSubmissionResponse(submission), nil
}

// Grade sets or overwrites the score of a submission addressed through its
// owning assignment.
func (s *submissionService) Grade(ctx context.Context, assignmentID uint, payload dto.GradeRequest) (dto.SubmissionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubmissionResponse{}, err
	}

	assignment, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionResponse{}, ErrAssignmentNotFound
		}
		return dto.SubmissionResponse{}, err
	}

	submission, err := s.submissions.GetByID(ctx, payload.SubmissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionResponse{}, ErrSubmissionNotFound
		}
		return dto.SubmissionResponse{}, err
	}

	if submission.AssignmentID != assignment.ID {
		return dto.SubmissionResponse{}, ErrSubmissionMismatch
	}

	submission.Score = payload.Score

	if err := s.submissions.Update(ctx, &submission); err != nil {
		return dto.SubmissionResponse{}, err
	}

	s.logger.Info().
		Uint("submission_id", submission.ID).
		Int("score", *payload.Score).
		Msg("submission graded")

	return dto.NewSubmissionResponse(submission), nil
}

// blobKey builds the deterministic storage key: the submitting user's name
// and the original file name, both reduced to a safe character set.
func blobKey(userName, fileName string) string {
	return sanitizeKeyPart(userName) + "/" + sanitizeKeyPart(fileName)
}

func sanitizeKeyPart(part string) string {
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, part)

	mapped = strings.Trim(mapped, "-")
	if mapped == "" {
		mapped = "file"
	}

	return mapped
}
