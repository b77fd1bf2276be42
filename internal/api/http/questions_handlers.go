package http

import (
	"encoding/json"
	"net/http"

	"github.com/growthlens/growthlens-platform/internal/assessment"
)

// GET /questions — the registry the frontend renders the form from.
// Option scores and insight content are never exposed here.
func ListQuestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(assessment.Questions())
	}
}
