package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/growthlens/growthlens-platform/internal/auth"
	authmw "github.com/growthlens/growthlens-platform/internal/auth/middleware"
)

// POST /auth/otp/request  { "username": "..." }
// Issues a short-lived one-time code. Delivery (email/SMS) is out of band; in
// dev mode the code lands in the debug log. The response is identical whether
// or not the user exists, so the endpoint cannot be used for enumeration.
func RequestOTPHandler(otp *auth.OTPStore, db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		var id string
		err := db.QueryRowContext(r.Context(),
			`SELECT id FROM users WHERE username=$1`, req.Username).Scan(&id)
		if err == nil {
			code, issueErr := otp.Issue(id)
			if issueErr != nil {
				zap.L().Error("issue otp", zap.Error(issueErr))
				http.Error(w, "issue code", http.StatusInternalServerError)
				return
			}
			zap.L().Debug("otp issued", zap.String("user_id", id), zap.String("code", code))
		} else if !errors.Is(err, sql.ErrNoRows) {
			zap.L().Error("otp user lookup", zap.Error(err))
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

// POST /auth/otp/verify  { "username": "...", "code": "..." }
func VerifyOTPHandler(otp *auth.OTPStore, a *authmw.AuthService, db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Code     string `json:"code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		var id, role string
		err := db.QueryRowContext(r.Context(),
			`SELECT id, role FROM users WHERE username=$1`, req.Username).Scan(&id, &role)
		if err != nil || !otp.Verify(id, req.Code) {
			http.Error(w, "invalid code", http.StatusUnauthorized)
			return
		}
		tok, err := a.IssueJWT(id, role)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": tok})
	}
}
