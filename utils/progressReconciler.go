package utils

import (
	"educareer/database"
	courseModels "educareer/models/course"
	"educareer/progress"
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeProgressReconciler starts the nightly sweep that re-runs the
// completion recalculation over every live enrollment. A mark-complete whose
// follow-up recalculation failed leaves a stale percentage behind; the sweep
// closes that window.
func InitializeProgressReconciler(engine *progress.Engine) *cron.Cron {
	log.Println("[PROGRESS-RECONCILER] Initializing progress reconciler...")

	c := cron.New()

	// Run daily at 3 AM, outside peak learner activity
	c.AddFunc("0 3 * * *", func() {
		log.Println("[PROGRESS-RECONCILER] Running nightly recalculation sweep...")
		ReconcileEnrollmentProgress(engine)
	})

	c.Start()
	log.Println("[PROGRESS-RECONCILER] Progress reconciler started - runs daily at 3 AM")
	return c
}

// ReconcileEnrollmentProgress recalculates the stored completion percentage of
// every live enrollment
func ReconcileEnrollmentProgress(engine *progress.Engine) {
	db := database.Database.Db

	var enrollmentIDs []uint
	if err := db.Model(&courseModels.Enrollment{}).
		Where("is_deleted = false").
		Pluck("id", &enrollmentIDs).Error; err != nil {
		log.Printf("[PROGRESS-RECONCILER] Error fetching enrollments: %v", err)
		return
	}

	recalculated := 0
	for _, id := range enrollmentIDs {
		found, err := engine.RecalculateEnrollmentCompletion(id)
		if err != nil {
			log.Printf("[PROGRESS-RECONCILER] Error recalculating enrollment %d: %v", id, err)
			continue
		}
		if found {
			recalculated++
		}
	}

	log.Printf("[PROGRESS-RECONCILER] Sweep complete: %d of %d enrollments recalculated", recalculated, len(enrollmentIDs))
}
