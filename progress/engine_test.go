package progress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pairKey struct {
	enrollmentID uint
	moduleID     uint
}

// fakeStore is an in-memory Store with per-call failure injection
type fakeStore struct {
	moduleCounts map[uint]int64 // courseID -> live module count
	enrollments  map[uint]uint  // enrollmentID -> courseID
	rows         map[pairKey]string
	persisted    map[uint]int // enrollmentID -> last persisted percentage
	setCalls     int

	failUpsert       error
	failSet          error
	failCountModules error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		moduleCounts: make(map[uint]int64),
		enrollments:  make(map[uint]uint),
		rows:         make(map[pairKey]string),
		persisted:    make(map[uint]int),
	}
}

func (f *fakeStore) CountModulesForCourse(courseID uint) (int64, error) {
	if f.failCountModules != nil {
		return 0, f.failCountModules
	}
	return f.moduleCounts[courseID], nil
}

func (f *fakeStore) CountCompletedModuleProgress(enrollmentID uint) (int64, error) {
	var n int64
	for key, status := range f.rows {
		if key.enrollmentID == enrollmentID && status == "completed" {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) UpsertModuleProgressCompleted(enrollmentID, moduleID uint) error {
	if f.failUpsert != nil {
		return f.failUpsert
	}
	f.rows[pairKey{enrollmentID, moduleID}] = "completed"
	return nil
}

func (f *fakeStore) GetEnrollmentCourseID(enrollmentID uint) (uint, error) {
	courseID, ok := f.enrollments[enrollmentID]
	if !ok {
		return 0, ErrEnrollmentNotFound
	}
	return courseID, nil
}

func (f *fakeStore) SetEnrollmentCompletionPercentage(enrollmentID uint, percentage int) error {
	if f.failSet != nil {
		return f.failSet
	}
	f.setCalls++
	f.persisted[enrollmentID] = percentage
	return nil
}

func TestCompletionPercentage(t *testing.T) {
	cases := []struct {
		completed int64
		total     int64
		want      int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67}, // round half-up
		{3, 3, 100},
		{2, 4, 50},
		{1, 6, 17},
		{0, 0, 0}, // course with no modules
		{5, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CompletionPercentage(tc.completed, tc.total),
			"completed=%d total=%d", tc.completed, tc.total)
	}
}

func TestMarkModuleCompletedIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.enrollments[1] = 10
	store.moduleCounts[10] = 3
	engine := NewEngine(store)

	ok, err := engine.MarkModuleCompleted(1, 101)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = engine.MarkModuleCompleted(1, 101)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Len(t, store.rows, 1, "repeated marks must not create a second row")
	assert.Equal(t, "completed", store.rows[pairKey{1, 101}])
}

func TestRecalculateEnrollmentCompletion(t *testing.T) {
	store := newFakeStore()
	store.enrollments[1] = 10
	store.moduleCounts[10] = 3
	engine := NewEngine(store)

	_, err := engine.MarkModuleCompleted(1, 101)
	require.NoError(t, err)

	found, err := engine.RecalculateEnrollmentCompletion(1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 33, store.persisted[1])

	_, err = engine.MarkModuleCompleted(1, 102)
	require.NoError(t, err)
	found, err = engine.RecalculateEnrollmentCompletion(1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 67, store.persisted[1])

	_, err = engine.MarkModuleCompleted(1, 103)
	require.NoError(t, err)
	found, err = engine.RecalculateEnrollmentCompletion(1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 100, store.persisted[1])
}

func TestRecalculateCourseWithNoModules(t *testing.T) {
	store := newFakeStore()
	store.enrollments[1] = 10 // course 10 has no modules
	engine := NewEngine(store)

	found, err := engine.RecalculateEnrollmentCompletion(1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 0, store.persisted[1])
}

func TestRecalculateUnknownEnrollment(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	found, err := engine.RecalculateEnrollmentCompletion(99)
	require.NoError(t, err, "missing enrollment is benign, not an error")
	assert.False(t, found)
	assert.Zero(t, store.setCalls, "no writes for a missing enrollment")
}

func TestRecalculatePersistsUnchangedValue(t *testing.T) {
	store := newFakeStore()
	store.enrollments[1] = 10
	store.moduleCounts[10] = 4
	engine := NewEngine(store)

	_, err := engine.RecalculateEnrollmentCompletion(1)
	require.NoError(t, err)
	_, err = engine.RecalculateEnrollmentCompletion(1)
	require.NoError(t, err)

	assert.Equal(t, 2, store.setCalls, "unchanged percentages are still written")
}

func TestRecalculateSurfacesPersistFailure(t *testing.T) {
	store := newFakeStore()
	store.enrollments[1] = 10
	store.moduleCounts[10] = 2
	store.failSet = errors.New("connection reset")
	engine := NewEngine(store)

	found, err := engine.RecalculateEnrollmentCompletion(1)
	assert.Error(t, err, "persist failure must be distinct from not-found")
	assert.False(t, found)
}

func TestMarkOrderDoesNotAffectPercentage(t *testing.T) {
	run := func(first, second uint) int {
		store := newFakeStore()
		store.enrollments[1] = 10
		store.moduleCounts[10] = 3
		engine := NewEngine(store)

		_, err := engine.MarkModuleCompleted(1, first)
		require.NoError(t, err)
		_, err = engine.MarkModuleCompleted(1, second)
		require.NoError(t, err)
		_, err = engine.RecalculateEnrollmentCompletion(1)
		require.NoError(t, err)
		return store.persisted[1]
	}

	assert.Equal(t, run(101, 102), run(102, 101))
	assert.Equal(t, 67, run(101, 102))
}

func TestNoRegressionAtFullCompletion(t *testing.T) {
	store := newFakeStore()
	store.enrollments[1] = 10
	store.moduleCounts[10] = 2
	engine := NewEngine(store)

	require.NoError(t, engine.CompleteModule(1, 101))
	require.NoError(t, engine.CompleteModule(1, 102))
	assert.Equal(t, 100, store.persisted[1])

	// Re-completing an already-completed module changes nothing
	require.NoError(t, engine.CompleteModule(1, 102))
	assert.Equal(t, 100, store.persisted[1])
	assert.Len(t, store.rows, 2)
}

func TestCompleteModuleMarkFailureBlocksRecalculation(t *testing.T) {
	store := newFakeStore()
	store.enrollments[1] = 10
	store.moduleCounts[10] = 3
	store.failUpsert = errors.New("constraint violation")
	engine := NewEngine(store)

	err := engine.CompleteModule(1, 101)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrStaleProgress), "a mark failure is a total failure, not partial success")
	assert.Zero(t, store.setCalls, "recalculation must not run after a failed mark")
}

func TestCompleteModuleReportsStaleProgress(t *testing.T) {
	store := newFakeStore()
	store.enrollments[1] = 10
	store.moduleCounts[10] = 3
	store.failSet = errors.New("connection reset")
	engine := NewEngine(store)

	err := engine.CompleteModule(1, 101)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStaleProgress))
	assert.Equal(t, "completed", store.rows[pairKey{1, 101}], "the completion mark survives a failed recalculation")

	// Retrying just the recalculation heals the stale percentage
	store.failSet = nil
	found, err := engine.RecalculateEnrollmentCompletion(1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 33, store.persisted[1])
}
