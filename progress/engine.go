package progress

import (
	"errors"
	"fmt"
	"math"
)

// ErrStaleProgress marks the partial-success outcome of CompleteModule: the
// module completion was persisted, but the enrollment's stored percentage could
// not be recalculated and under-reports true progress until the next successful
// recalculation. Callers may retry just the recalculation step.
var ErrStaleProgress = errors.New("module completed but progress recalculation failed")

// Engine maintains the invariant that an enrollment's completion percentage
// equals round(100 * completed modules / total modules) for its course, and
// provides an idempotent mark-complete operation.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// MarkModuleCompleted records the (enrollment, module) pair as completed.
// Calling it twice leaves storage in the same state as calling it once. It does
// not trigger recalculation; the two steps tolerate failure differently, so the
// caller sequences them explicitly (see CompleteModule).
func (e *Engine) MarkModuleCompleted(enrollmentID, moduleID uint) (bool, error) {
	if err := e.store.UpsertModuleProgressCompleted(enrollmentID, moduleID); err != nil {
		return false, fmt.Errorf("mark module %d completed for enrollment %d: %w", moduleID, enrollmentID, err)
	}
	return true, nil
}

// RecalculateEnrollmentCompletion recomputes and persists the enrollment's
// completion percentage. It returns (false, nil) when the enrollment does not
// exist: an expected race in a system without transactions, not an error. Any
// storage failure is returned so callers can tell "nothing to do" apart from
// "something went wrong".
func (e *Engine) RecalculateEnrollmentCompletion(enrollmentID uint) (bool, error) {
	courseID, err := e.store.GetEnrollmentCourseID(enrollmentID)
	if err != nil {
		if errors.Is(err, ErrEnrollmentNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("resolve course for enrollment %d: %w", enrollmentID, err)
	}

	totalCount, err := e.store.CountModulesForCourse(courseID)
	if err != nil {
		return false, fmt.Errorf("count modules for course %d: %w", courseID, err)
	}

	completedCount, err := e.store.CountCompletedModuleProgress(enrollmentID)
	if err != nil {
		return false, fmt.Errorf("count completed modules for enrollment %d: %w", enrollmentID, err)
	}

	newCompletion := CompletionPercentage(completedCount, totalCount)

	// Written even when unchanged; skipping on equality could mask a stale read.
	if err := e.store.SetEnrollmentCompletionPercentage(enrollmentID, newCompletion); err != nil {
		return false, fmt.Errorf("persist completion for enrollment %d: %w", enrollmentID, err)
	}
	return true, nil
}

// CompleteModule is the composite workflow behind the "complete a module"
// action: mark the module completed, then recalculate the enrollment's
// percentage. A failed mark aborts before recalculation. A failed recalculation
// after a successful mark returns ErrStaleProgress so the caller can report
// partial success instead of total failure.
func (e *Engine) CompleteModule(enrollmentID, moduleID uint) error {
	if _, err := e.MarkModuleCompleted(enrollmentID, moduleID); err != nil {
		return err
	}
	if _, err := e.RecalculateEnrollmentCompletion(enrollmentID); err != nil {
		return fmt.Errorf("%w: %v", ErrStaleProgress, err)
	}
	return nil
}

// CompletionPercentage computes round(100 * completed / total), or 0 for a
// course with no modules. Rounding is half-up (math.Round rounds halves away
// from zero, which is half-up for the non-negative ratios here): 1 of 3 modules
// gives 33, 2 of 3 gives 67.
func CompletionPercentage(completed, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
