package progress

import "errors"

// ErrEnrollmentNotFound is returned by Store.GetEnrollmentCourseID when no live
// enrollment exists for the given ID. It marks a benign "nothing to do" outcome,
// not a storage failure.
var ErrEnrollmentNotFound = errors.New("enrollment not found")

// Store is the data-access seam of the progress engine. The engine is written
// against this capability set rather than a concrete database client so it can
// be tested with an in-memory fake.
type Store interface {
	// CountModulesForCourse returns the number of live modules in the course.
	CountModulesForCourse(courseID uint) (int64, error)

	// CountCompletedModuleProgress returns the number of progress rows for the
	// enrollment whose status is completed.
	CountCompletedModuleProgress(enrollmentID uint) (int64, error)

	// UpsertModuleProgressCompleted creates or updates the (enrollment, module)
	// progress row to progress=100, status=completed, leaving at most one row
	// per pair.
	UpsertModuleProgressCompleted(enrollmentID, moduleID uint) error

	// GetEnrollmentCourseID resolves the enrollment's course, or returns
	// ErrEnrollmentNotFound.
	GetEnrollmentCourseID(enrollmentID uint) (uint, error)

	// SetEnrollmentCompletionPercentage persists the completion percentage
	// unconditionally, even when the value is unchanged.
	SetEnrollmentCompletionPercentage(enrollmentID uint, percentage int) error
}
