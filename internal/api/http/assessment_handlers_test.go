package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growthlens/growthlens-platform/internal/assessment"
	"github.com/growthlens/growthlens-platform/internal/db"
	"github.com/growthlens/growthlens-platform/internal/eventlog"
	"github.com/growthlens/growthlens-platform/internal/rbac"
)

func testEventRepo(t *testing.T) *eventlog.Repo {
	t.Helper()
	dbh, err := db.Open(context.Background(), db.DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	dbh.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbh.Close() })
	return eventlog.NewRepo(dbh)
}

// fakeStore keeps results in memory and records what was saved.
type fakeStore struct {
	saved   []assessment.Result
	results map[string]assessment.Result
	listErr error
	lastOpt assessment.ListOpts
}

func newFakeStore() *fakeStore {
	return &fakeStore{results: map[string]assessment.Result{}}
}

func (f *fakeStore) SaveResult(_ context.Context, res assessment.Result) error {
	f.saved = append(f.saved, res)
	f.results[res.AssessmentID] = res
	return nil
}

func (f *fakeStore) GetResult(_ context.Context, id string) (assessment.Result, error) {
	res, ok := f.results[id]
	if !ok {
		return assessment.Result{}, assessment.ErrNotFound
	}
	return res, nil
}

func (f *fakeStore) ListResults(_ context.Context, opts assessment.ListOpts) ([]assessment.ResultSummary, error) {
	f.lastOpt = opts
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []assessment.ResultSummary{}, nil
}

func authedCtx(r *http.Request, userID, role string) *http.Request {
	ctx := rbac.WithSubject(r.Context(), userID)
	ctx = rbac.WithRole(ctx, role)
	return r.WithContext(ctx)
}

func testEngine() *assessment.Engine {
	return assessment.NewEngine(assessment.WithClock(func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}))
}

func TestSubmitAssessment(t *testing.T) {
	store := newFakeStore()
	h := SubmitAssessmentHandler(testEngine(), store, testEventRepo(t))

	body := `{"name":"Sam","email":"sam@example.com","response_data":{"answers":{"1":"a","2":"b"}}}`
	r := httptest.NewRequest(http.MethodPost, "/assessments", bytes.NewBufferString(body))
	r = authedCtx(r, "u1", "member")
	w := httptest.NewRecorder()
	h(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	var res assessment.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.NotEmpty(t, res.AssessmentID)
	assert.Equal(t, "u1", res.Subject.UserID)
	assert.Equal(t, "Sam", res.Subject.Name)
	assert.Len(t, res.Scores, len(assessment.Questions()))
	assert.InDelta(t, 95.0, res.Summary.AverageScore, 0.001)

	require.Len(t, store.saved, 1)
	assert.Equal(t, res.AssessmentID, store.saved[0].AssessmentID)
}

func TestSubmitAssessmentBadBody(t *testing.T) {
	h := SubmitAssessmentHandler(testEngine(), newFakeStore(), testEventRepo(t))

	for name, body := range map[string]string{
		"malformed json":  `{"name":`,
		"non-numeric key": `{"response_data":{"answers":{"one":"a"}}}`,
		"zero key":        `{"response_data":{"answers":{"0":"a"}}}`,
	} {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/assessments", bytes.NewBufferString(body))
			r = authedCtx(r, "u1", "member")
			w := httptest.NewRecorder()
			h(w, r)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetAssessmentOwnership(t *testing.T) {
	store := newFakeStore()
	res := testEngine().Aggregate("as-1", assessment.Subject{UserID: "u1"}, map[int]string{1: "a"})
	require.NoError(t, store.SaveResult(context.Background(), res))

	router := chi.NewRouter()
	router.Get("/assessments/{assessmentID}", GetAssessmentHandler(store))

	cases := []struct {
		name   string
		id     string
		sub    string
		role   string
		status int
	}{
		{"owner", "as-1", "u1", "member", http.StatusOK},
		{"other member", "as-1", "u2", "member", http.StatusForbidden},
		{"coach sees all", "as-1", "u2", "coach", http.StatusOK},
		{"missing", "as-9", "u1", "member", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/assessments/"+tc.id, nil)
			r = authedCtx(r, tc.sub, tc.role)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestListAssessmentsScoping(t *testing.T) {
	store := newFakeStore()
	h := ListAssessmentsHandler(store)

	// Members are pinned to their own results regardless of the query.
	r := httptest.NewRequest(http.MethodGet, "/assessments?user_id=u9", nil)
	r = authedCtx(r, "u1", "member")
	w := httptest.NewRecorder()
	h(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", store.lastOpt.UserID)

	// Coaches can filter freely.
	r = httptest.NewRequest(http.MethodGet, "/assessments?user_id=u9&limit=5&offset=10", nil)
	r = authedCtx(r, "c1", "coach")
	w = httptest.NewRecorder()
	h(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, assessment.ListOpts{UserID: "u9", Limit: 5, Offset: 10}, store.lastOpt)
}
