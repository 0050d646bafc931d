package progress

import (
	courseModels "educareer/models/course"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the production Store backed by the shared GORM connection pool.
// It holds no state of its own; every call is a fresh read or write against
// durable storage.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CountModulesForCourse(courseID uint) (int64, error) {
	var total int64
	err := s.db.Model(&courseModels.CourseModule{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&total).Error
	return total, err
}

func (s *GormStore) CountCompletedModuleProgress(enrollmentID uint) (int64, error) {
	var completed int64
	err := s.db.Model(&courseModels.ModuleProgress{}).
		Where("enrollment_id = ? AND status = ?", enrollmentID, courseModels.ProgressCompleted).
		Count(&completed).Error
	return completed, err
}

// UpsertModuleProgressCompleted is a single conditional insert-or-update backed
// by the (enrollment_id, module_id) unique index, so concurrent calls for the
// same pair cannot produce duplicate rows.
func (s *GormStore) UpsertModuleProgressCompleted(enrollmentID, moduleID uint) error {
	row := courseModels.ModuleProgress{
		EnrollmentID: enrollmentID,
		ModuleID:     moduleID,
		Progress:     100,
		Status:       courseModels.ProgressCompleted,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "enrollment_id"}, {Name: "module_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"progress":   100,
			"status":     courseModels.ProgressCompleted,
			"updated_at": time.Now(),
		}),
	}).Create(&row).Error
}

func (s *GormStore) GetEnrollmentCourseID(enrollmentID uint) (uint, error) {
	var enrollment courseModels.Enrollment
	err := s.db.Select("course_id").
		Where("id = ? AND is_deleted = ?", enrollmentID, false).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrEnrollmentNotFound
		}
		return 0, err
	}
	return enrollment.CourseID, nil
}

func (s *GormStore) SetEnrollmentCompletionPercentage(enrollmentID uint, percentage int) error {
	return s.db.Model(&courseModels.Enrollment{}).
		Where("id = ?", enrollmentID).
		Update("completion_percentage", percentage).Error
}
