package course

import "gorm.io/gorm"

// ModuleProgress status values
const (
	ProgressNotStarted = "not_started"
	ProgressInProgress = "in_progress"
	ProgressCompleted  = "completed"
)

// ModuleProgress is the per-(enrollment, module) completion record.
// The composite unique index backs the engine's atomic upsert; at most one row
// may exist per (enrollment, module) pair.
type ModuleProgress struct {
	gorm.Model
	EnrollmentID uint   `json:"enrollment_id" gorm:"uniqueIndex:idx_enrollment_module;not null"`
	ModuleID     uint   `json:"module_id" gorm:"uniqueIndex:idx_enrollment_module;not null"`
	Progress     int    `json:"progress" gorm:"default:0"` // 0-100
	Status       string `json:"status" gorm:"default:'not_started'"`
}
