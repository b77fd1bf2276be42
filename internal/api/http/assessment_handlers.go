package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/growthlens/growthlens-platform/internal/assessment"
	"github.com/growthlens/growthlens-platform/internal/eventlog"
	"github.com/growthlens/growthlens-platform/internal/rbac"
)

type submitAssessmentReq struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ResponseData struct {
		Answers map[string]string `json:"answers"`
	} `json:"response_data"`
}

// POST /assessments
// The scoring engine wants typed question IDs; the wire format carries them
// as string keys, so shape validation and conversion happen here, before the
// engine is called.
func SubmitAssessmentHandler(engine *assessment.Engine, store assessment.Store, events *eventlog.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitAssessmentReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		answers := make(map[int]string, len(req.ResponseData.Answers))
		for k, v := range req.ResponseData.Answers {
			id, err := strconv.Atoi(strings.TrimSpace(k))
			if err != nil || id <= 0 {
				http.Error(w, "answers keys must be positive question ids", http.StatusBadRequest)
				return
			}
			answers[id] = v
		}

		subject := assessment.Subject{
			UserID: rbac.SubjectFromContext(r.Context()),
			Name:   req.Name,
			Email:  req.Email,
		}
		res := engine.Aggregate(uuid.NewString(), subject, answers)

		if err := store.SaveResult(r.Context(), res); err != nil {
			zap.L().Error("save assessment result", zap.Error(err), zap.String("assessment_id", res.AssessmentID))
			http.Error(w, "store result", http.StatusInternalServerError)
			return
		}
		if err := events.Append(r.Context(), eventlog.TypeAssessmentSubmitted, res.AssessmentID, map[string]interface{}{
			"user_id":       subject.UserID,
			"average_score": res.Summary.AverageScore,
			"readiness":     res.Summary.ReadinessLevel,
		}); err != nil {
			// The result is already durable; a missed audit event is not
			// worth failing the request over.
			zap.L().Warn("append submit event", zap.Error(err))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(res)
	}
}

// GET /assessments/{assessmentID}
func GetAssessmentHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "assessmentID")
		res, err := store.GetResult(r.Context(), id)
		if err != nil {
			if errors.Is(err, assessment.ErrNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			zap.L().Error("get assessment", zap.Error(err), zap.String("assessment_id", id))
			http.Error(w, "query result", http.StatusInternalServerError)
			return
		}
		// Owners see their own results; anything else needs view-all.
		role := rbac.RoleFromContext(r.Context())
		sub := rbac.SubjectFromContext(r.Context())
		if res.Subject.UserID != sub && !rbac.NewChecker(nil).Has(role, "assessment:view-all") {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	}
}

// GET /assessments?user_id=...&limit=50&offset=0
// Callers without assessment:view-all are scoped to their own results.
func ListAssessmentsHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := rbac.RoleFromContext(r.Context())
		sub := rbac.SubjectFromContext(r.Context())

		userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
		if !rbac.NewChecker(nil).Has(role, "assessment:view-all") {
			userID = sub
		}

		list, err := store.ListResults(r.Context(), assessment.ListOpts{
			UserID: userID,
			Limit:  parseIntDefault(r.URL.Query().Get("limit"), 50),
			Offset: parseIntDefault(r.URL.Query().Get("offset"), 0),
		})
		if err != nil {
			zap.L().Error("list assessments", zap.Error(err))
			http.Error(w, "query results", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)
	}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
