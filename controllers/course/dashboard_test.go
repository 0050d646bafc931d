package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"educareer/database"
	"educareer/models"
	courseModels "educareer/models/course"
	validators "educareer/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testUserID uint = 7

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled :memory: database is one database per connection; pin the pool
	// to a single connection so every query sees the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.UserAccount{},
		&courseModels.Course{},
		&courseModels.CourseModule{},
		&courseModels.Enrollment{},
		&courseModels.ModuleProgress{},
	))

	database.Database = database.DbInstance{Db: db}
	t.Cleanup(func() { database.Database = database.DbInstance{} })

	app := fiber.New()

	// Stand-in for the JWT middleware
	authAs := func(c *fiber.Ctx) error {
		c.Locals("userId", testUserID)
		return c.Next()
	}

	app.Get("/dashboard/enrollment/:id/modules", authAs, validators.EnrollmentID(), GetEnrollmentModules)
	app.Post("/dashboard/enrollment/:enrollment_id/module/:module_id/complete", authAs, validators.EnrollmentModule(), CompleteModule)
	app.Put("/course/enrollment/:id", authAs, validators.EnrollmentUpdate(), UpdateEnrollment)
	app.Delete("/course/enrollment/:id", authAs, validators.EnrollmentID(), DeleteEnrollment)

	return app
}

func seedEnrolledCourse(t *testing.T, moduleCount int) (uint, []uint) {
	t.Helper()
	db := database.Database.Db

	course := courseModels.Course{CreatorID: 1, Name: "Workplace Safety", Description: "Basics"}
	require.NoError(t, db.Create(&course).Error)

	moduleIDs := make([]uint, 0, moduleCount)
	for i := 0; i < moduleCount; i++ {
		m := courseModels.CourseModule{CourseID: course.ID, Name: fmt.Sprintf("Unit %d", i+1), ModuleOrder: i + 1}
		require.NoError(t, db.Create(&m).Error)
		moduleIDs = append(moduleIDs, m.ID)
	}

	enrollment := courseModels.Enrollment{UserID: testUserID, CourseID: course.ID}
	require.NoError(t, db.Create(&enrollment).Error)

	return enrollment.ID, moduleIDs
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, path string) (int, apiEnvelope) {
	t.Helper()
	return doJSONRequest(t, app, method, path, "")
}

func doJSONRequest(t *testing.T, app *fiber.App, method, path, body string) (int, apiEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope apiEnvelope
	require.NoError(t, json.Unmarshal(respBody, &envelope))
	return resp.StatusCode, envelope
}

func TestCompleteModuleUpdatesPercentage(t *testing.T) {
	app := setupTestApp(t)
	enrollmentID, moduleIDs := seedEnrolledCourse(t, 2)

	status, envelope := doRequest(t, app, "POST",
		fmt.Sprintf("/dashboard/enrollment/%d/module/%d/complete", enrollmentID, moduleIDs[0]))
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, envelope.Status)

	var result struct {
		CompletionPercentage int  `json:"completion_percentage"`
		Stale                bool `json:"stale"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.Equal(t, 50, result.CompletionPercentage)
	assert.False(t, result.Stale)

	status, envelope = doRequest(t, app, "POST",
		fmt.Sprintf("/dashboard/enrollment/%d/module/%d/complete", enrollmentID, moduleIDs[1]))
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.Equal(t, 100, result.CompletionPercentage)

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.First(&enrollment, enrollmentID).Error)
	assert.Equal(t, 100, enrollment.CompletionPercentage)
}

func TestCompleteModuleIsIdempotentOverHTTP(t *testing.T) {
	app := setupTestApp(t)
	enrollmentID, moduleIDs := seedEnrolledCourse(t, 3)

	path := fmt.Sprintf("/dashboard/enrollment/%d/module/%d/complete", enrollmentID, moduleIDs[0])
	for i := 0; i < 3; i++ {
		status, _ := doRequest(t, app, "POST", path)
		require.Equal(t, fiber.StatusOK, status)
	}

	var rows int64
	database.Database.Db.Model(&courseModels.ModuleProgress{}).
		Where("enrollment_id = ?", enrollmentID).Count(&rows)
	assert.Equal(t, int64(1), rows)

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.First(&enrollment, enrollmentID).Error)
	assert.Equal(t, 33, enrollment.CompletionPercentage)
}

func TestCompleteModuleRejectsForeignModule(t *testing.T) {
	app := setupTestApp(t)
	enrollmentID, _ := seedEnrolledCourse(t, 1)

	other := courseModels.CourseModule{CourseID: 999, Name: "Other", ModuleOrder: 1}
	require.NoError(t, database.Database.Db.Create(&other).Error)

	status, envelope := doRequest(t, app, "POST",
		fmt.Sprintf("/dashboard/enrollment/%d/module/%d/complete", enrollmentID, other.ID))
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, envelope.Status)
}

func TestCompleteModuleRejectsForeignEnrollment(t *testing.T) {
	app := setupTestApp(t)
	_, moduleIDs := seedEnrolledCourse(t, 1)

	var course courseModels.Course
	require.NoError(t, database.Database.Db.First(&course).Error)
	foreign := courseModels.Enrollment{UserID: testUserID + 1, CourseID: course.ID}
	require.NoError(t, database.Database.Db.Create(&foreign).Error)

	status, _ := doRequest(t, app, "POST",
		fmt.Sprintf("/dashboard/enrollment/%d/module/%d/complete", foreign.ID, moduleIDs[0]))
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestUpdateEnrollmentRequiresCourseOwnership(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	caller := models.UserAccount{Username: "learner7", Email: "learner7@example.com", Password: "x"}
	caller.ID = testUserID
	require.NoError(t, db.Create(&caller).Error)

	course := courseModels.Course{CreatorID: 1, Name: "First Aid", Description: "Basics"}
	require.NoError(t, db.Create(&course).Error)
	enrollment := courseModels.Enrollment{UserID: testUserID + 1, CourseID: course.ID}
	require.NoError(t, db.Create(&enrollment).Error)

	status, envelope := doJSONRequest(t, app, "PUT",
		fmt.Sprintf("/course/enrollment/%d", enrollment.ID), `{"is_kicked": true}`)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.False(t, envelope.Status)

	var reloaded courseModels.Enrollment
	require.NoError(t, db.First(&reloaded, enrollment.ID).Error)
	assert.False(t, reloaded.IsKicked)
}

func TestDeleteEnrollmentRequiresLearnerOrOwner(t *testing.T) {
	app := setupTestApp(t)
	db := database.Database.Db

	caller := models.UserAccount{Username: "learner7", Email: "learner7@example.com", Password: "x"}
	caller.ID = testUserID
	require.NoError(t, db.Create(&caller).Error)

	course := courseModels.Course{CreatorID: 1, Name: "First Aid", Description: "Basics"}
	require.NoError(t, db.Create(&course).Error)
	enrollment := courseModels.Enrollment{UserID: testUserID + 1, CourseID: course.ID}
	require.NoError(t, db.Create(&enrollment).Error)

	status, envelope := doRequest(t, app, "DELETE",
		fmt.Sprintf("/course/enrollment/%d", enrollment.ID))
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.False(t, envelope.Status)

	var reloaded courseModels.Enrollment
	require.NoError(t, db.First(&reloaded, enrollment.ID).Error)
	assert.False(t, reloaded.IsDeleted)
}

func TestEnrollmentModulesShowUntouchedAsNotStarted(t *testing.T) {
	app := setupTestApp(t)
	enrollmentID, moduleIDs := seedEnrolledCourse(t, 3)

	_, _ = doRequest(t, app, "POST",
		fmt.Sprintf("/dashboard/enrollment/%d/module/%d/complete", enrollmentID, moduleIDs[1]))

	status, envelope := doRequest(t, app, "GET",
		fmt.Sprintf("/dashboard/enrollment/%d/modules", enrollmentID))
	require.Equal(t, fiber.StatusOK, status)

	var result struct {
		Modules []struct {
			Module   courseModels.CourseModule `json:"module"`
			Status   string                    `json:"status"`
			Progress int                       `json:"progress"`
		} `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	require.Len(t, result.Modules, 3)

	assert.Equal(t, courseModels.ProgressNotStarted, result.Modules[0].Status)
	assert.Equal(t, 0, result.Modules[0].Progress)
	assert.Equal(t, courseModels.ProgressCompleted, result.Modules[1].Status)
	assert.Equal(t, 100, result.Modules[1].Progress)
	assert.Equal(t, courseModels.ProgressNotStarted, result.Modules[2].Status)
}
