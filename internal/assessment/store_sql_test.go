package assessment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growthlens/growthlens-platform/internal/assessment"
	"github.com/growthlens/growthlens-platform/internal/db"
)

func openTestDB(t *testing.T) *assessment.SQLStore {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// One shared in-memory DB per test; single connection so the pool cannot
	// hand out a second, empty memory database.
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	dbh.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbh.Close() })
	return assessment.NewSQLStore(dbh)
}

func sampleResult(id, userID string, avg float64, completedAt time.Time) assessment.Result {
	engine := assessment.NewEngine(assessment.WithClock(func() time.Time { return completedAt }))
	res := engine.Aggregate(id, assessment.Subject{UserID: userID, Name: "Sam"}, map[int]string{1: "a"})
	res.Summary.AverageScore = avg
	return res
}

func TestSQLStoreSaveAndGet(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	want := sampleResult("as-1", "u1", 100, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveResult(ctx, want))

	got, err := store.GetResult(ctx, "as-1")
	require.NoError(t, err)
	assert.Equal(t, want.AssessmentID, got.AssessmentID)
	assert.Equal(t, want.Subject, got.Subject)
	assert.Len(t, got.Scores, len(assessment.Questions()))
	assert.Equal(t, want.Summary.ReadinessLevel, got.Summary.ReadinessLevel)
	assert.True(t, want.CompletedAt.Equal(got.CompletedAt))
}

func TestSQLStoreGetMissing(t *testing.T) {
	store := openTestDB(t)
	_, err := store.GetResult(context.Background(), "nope")
	assert.ErrorIs(t, err, assessment.ErrNotFound)
}

func TestSQLStoreListFilterAndPage(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveResult(ctx, sampleResult("as-1", "u1", 90, base)))
	require.NoError(t, store.SaveResult(ctx, sampleResult("as-2", "u1", 70, base.Add(time.Hour))))
	require.NoError(t, store.SaveResult(ctx, sampleResult("as-3", "u2", 50, base.Add(2*time.Hour))))

	// Unfiltered: newest first.
	all, err := store.ListResults(ctx, assessment.ListOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "as-3", all[0].AssessmentID)

	// Filtered by user.
	mine, err := store.ListResults(ctx, assessment.ListOpts{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, r := range mine {
		assert.Equal(t, "u1", r.UserID)
	}

	// Paged.
	page, err := store.ListResults(ctx, assessment.ListOpts{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "as-2", page[0].AssessmentID)
}
