package progress

import (
	courseModels "educareer/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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
		&courseModels.CourseModule{},
		&courseModels.Enrollment{},
		&courseModels.ModuleProgress{},
	))
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, courseID uint, moduleCount int) []uint {
	t.Helper()
	ids := make([]uint, 0, moduleCount)
	for i := 0; i < moduleCount; i++ {
		m := courseModels.CourseModule{CourseID: courseID, Name: "Module", ModuleOrder: i + 1}
		require.NoError(t, db.Create(&m).Error)
		ids = append(ids, m.ID)
	}
	return ids
}

func seedEnrollment(t *testing.T, db *gorm.DB, userID, courseID uint) uint {
	t.Helper()
	e := courseModels.Enrollment{UserID: userID, CourseID: courseID}
	require.NoError(t, db.Create(&e).Error)
	return e.ID
}

func TestGormStoreUpsertKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	store := NewGormStore(db)

	moduleIDs := seedCourse(t, db, 10, 1)
	enrollmentID := seedEnrollment(t, db, 1, 10)

	require.NoError(t, store.UpsertModuleProgressCompleted(enrollmentID, moduleIDs[0]))
	require.NoError(t, store.UpsertModuleProgressCompleted(enrollmentID, moduleIDs[0]))

	var rows []courseModels.ModuleProgress
	require.NoError(t, db.Where("enrollment_id = ?", enrollmentID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 100, rows[0].Progress)
	assert.Equal(t, courseModels.ProgressCompleted, rows[0].Status)
}

func TestGormStoreUpsertUpdatesExistingRow(t *testing.T) {
	db := newTestDB(t)
	store := NewGormStore(db)

	moduleIDs := seedCourse(t, db, 10, 1)
	enrollmentID := seedEnrollment(t, db, 1, 10)

	// A pre-existing in_progress row from the partial-progress feature
	existing := courseModels.ModuleProgress{
		EnrollmentID: enrollmentID,
		ModuleID:     moduleIDs[0],
		Progress:     40,
		Status:       courseModels.ProgressInProgress,
	}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, store.UpsertModuleProgressCompleted(enrollmentID, moduleIDs[0]))

	var row courseModels.ModuleProgress
	require.NoError(t, db.Where("enrollment_id = ? AND module_id = ?", enrollmentID, moduleIDs[0]).First(&row).Error)
	assert.Equal(t, existing.ID, row.ID, "the existing row is updated, not replaced")
	assert.Equal(t, 100, row.Progress)
	assert.Equal(t, courseModels.ProgressCompleted, row.Status)
}

func TestGormStoreCountsIgnoreDeletedModules(t *testing.T) {
	db := newTestDB(t)
	store := NewGormStore(db)

	moduleIDs := seedCourse(t, db, 10, 3)
	require.NoError(t, db.Model(&courseModels.CourseModule{}).
		Where("id = ?", moduleIDs[2]).Update("is_deleted", true).Error)

	total, err := store.CountModulesForCourse(10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestGormStoreCountCompletedSkipsOtherStatuses(t *testing.T) {
	db := newTestDB(t)
	store := NewGormStore(db)

	moduleIDs := seedCourse(t, db, 10, 3)
	enrollmentID := seedEnrollment(t, db, 1, 10)

	require.NoError(t, db.Create(&courseModels.ModuleProgress{
		EnrollmentID: enrollmentID, ModuleID: moduleIDs[0], Progress: 100, Status: courseModels.ProgressCompleted,
	}).Error)
	require.NoError(t, db.Create(&courseModels.ModuleProgress{
		EnrollmentID: enrollmentID, ModuleID: moduleIDs[1], Progress: 30, Status: courseModels.ProgressInProgress,
	}).Error)

	completed, err := store.CountCompletedModuleProgress(enrollmentID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), completed)
}

func TestGormStoreEnrollmentLookup(t *testing.T) {
	db := newTestDB(t)
	store := NewGormStore(db)

	enrollmentID := seedEnrollment(t, db, 1, 10)

	courseID, err := store.GetEnrollmentCourseID(enrollmentID)
	require.NoError(t, err)
	assert.Equal(t, uint(10), courseID)

	_, err = store.GetEnrollmentCourseID(enrollmentID + 99)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)

	// Soft-deleted enrollments count as gone
	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("id = ?", enrollmentID).Update("is_deleted", true).Error)
	_, err = store.GetEnrollmentCourseID(enrollmentID)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestEngineOverGormStoreEndToEnd(t *testing.T) {
	db := newTestDB(t)
	engine := NewEngine(NewGormStore(db))

	moduleIDs := seedCourse(t, db, 10, 3)
	enrollmentID := seedEnrollment(t, db, 1, 10)

	percentage := func() int {
		var e courseModels.Enrollment
		require.NoError(t, db.First(&e, enrollmentID).Error)
		return e.CompletionPercentage
	}

	require.NoError(t, engine.CompleteModule(enrollmentID, moduleIDs[0]))
	assert.Equal(t, 33, percentage())

	require.NoError(t, engine.CompleteModule(enrollmentID, moduleIDs[1]))
	assert.Equal(t, 67, percentage())

	require.NoError(t, engine.CompleteModule(enrollmentID, moduleIDs[2]))
	assert.Equal(t, 100, percentage())

	// Re-completing a module is a no-op for both rows and percentage
	require.NoError(t, engine.CompleteModule(enrollmentID, moduleIDs[1]))
	assert.Equal(t, 100, percentage())

	var rowCount int64
	require.NoError(t, db.Model(&courseModels.ModuleProgress{}).
		Where("enrollment_id = ?", enrollmentID).Count(&rowCount).Error)
	assert.Equal(t, int64(3), rowCount)
}
