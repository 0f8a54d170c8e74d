package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/campus-dev/coursehub-api/internal/dto"
	"github.com/campus-dev/coursehub-api/internal/models"
)

func TestAssignmentUpdateEndpointIsPartial(t *testing.T) {
	app, db, _ := setupApp(t)

	course := models.Course{Code: "CS5150", Name: "Software Engineering"}
	require.NoError(t, db.Create(&course).Error)
	assignment := models.Assignment{Title: "Milestone 1", DueDate: 1700000000, CourseID: course.ID}
	require.NoError(t, db.Create(&assignment).Error)

	status, env := doJSON(t, app, "POST", fmt.Sprintf("/api/assignment/%d/", assignment.ID), map[string]interface{}{"title": "Milestone 1 (revised)"})
	require.Equal(t, fiber.StatusOK, status)

	var updated dto.AssignmentResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.Equal(t, "Milestone 1 (revised)", updated.Title)
	require.EqualValues(t, 1700000000, updated.DueDate)

	status, env = doJSON(t, app, "POST", "/api/assignment/99999/", map[string]interface{}{"title": "Ghost"})
	require.Equal(t, fiber.StatusNotFound, status)
	require.Equal(t, "assignment not found", env.Error)
}

func TestSubmitEndpointRejectsNonStudent(t *testing.T) {
	app, db, blobs := setupApp(t)

	course := models.Course{Code: "CS4154", Name: "Game Design"}
	require.NoError(t, db.Create(&course).Error)
	assignment := models.Assignment{Title: "Prototype", DueDate: 1700000000, CourseID: course.ID}
	require.NoError(t, db.Create(&assignment).Error)
	user := models.User{Name: "Mallory", NetID: "mm11"}
	require.NoError(t, db.Create(&user).Error)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("user_id", strconv.FormatUint(uint64(user.ID), 10)))
	part, err := writer.CreateFormFile("content", "prototype.zip")
	require.NoError(t, err)
	_, err = part.Write([]byte("PK\x03\x04"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", fmt.Sprintf("/api/assignment/%d/submit/", assignment.ID), body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	require.Equal(t, "user does not have this assignment", env.Error)

	require.Zero(t, blobs.puts, "rejected submission must not reach the blob store")

	var count int64
	require.NoError(t, db.Model(&models.Submission{}).Where("assignment_id = ?", assignment.ID).Count(&count).Error)
	require.Zero(t, count)
}

func TestSubmitEndpointRequiresFile(t *testing.T) {
	app, db, _ := setupApp(t)

	course := models.Course{Code: "CS4700", Name: "Artificial Intelligence"}
	require.NoError(t, db.Create(&course).Error)
	assignment := models.Assignment{Title: "Search Lab", DueDate: 1700000000, CourseID: course.ID}
	require.NoError(t, db.Create(&assignment).Error)
	user := models.User{Name: "Nina", NetID: "nn12"}
	require.NoError(t, db.Create(&user).Error)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("user_id", strconv.FormatUint(uint64(user.ID), 10)))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", fmt.Sprintf("/api/assignment/%d/submit/", assignment.ID), body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGradeEndpointMismatch(t *testing.T) {
	app, db, _ := setupApp(t)

	course := models.Course{Code: "CS4320", Name: "Database Systems"}
	require.NoError(t, db.Create(&course).Error)
	first := models.Assignment{Title: "Schema Design", DueDate: 1700000000, CourseID: course.ID}
	require.NoError(t, db.Create(&first).Error)
	second := models.Assignment{Title: "Query Tuning", DueDate: 1710000000, CourseID: course.ID}
	require.NoError(t, db.Create(&second).Error)

	submission := models.Submission{Content: "https://blob.test/olga/schema.pdf", AssignmentID: first.ID}
	require.NoError(t, db.Create(&submission).Error)

	status, env := doJSON(t, app, "POST", fmt.Sprintf("/api/assignment/%d/grade/", second.ID), map[string]interface{}{"submission_id": submission.ID, "score": 80})
	require.Equal(t, fiber.StatusNotFound, status)
	require.Equal(t, "submission does not match this assignment", env.Error)

	status, env = doJSON(t, app, "POST", fmt.Sprintf("/api/assignment/%d/grade/", first.ID), map[string]interface{}{"submission_id": submission.ID, "score": 80})
	require.Equal(t, fiber.StatusOK, status)

	var graded dto.SubmissionResponse
	require.NoError(t, json.Unmarshal(env.Data, &graded))
	require.NotNil(t, graded.Score)
	require.Equal(t, 80, *graded.Score)

	// Zero is a valid grade.
	status, env = doJSON(t, app, "POST", fmt.Sprintf("/api/assignment/%d/grade/", first.ID), map[string]interface{}{"submission_id": submission.ID, "score": 0})
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &graded))
	require.NotNil(t, graded.Score)
	require.Equal(t, 0, *graded.Score)
}
