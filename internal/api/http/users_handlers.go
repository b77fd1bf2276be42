package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/growthlens/growthlens-platform/internal/eventlog"
)

// POST /auth/register  { "username": "...", "email": "...", "password": "..." }
// Self-service signup always lands on the member role; coaches and admins are
// promoted out of band.
func RegisterUserHandler(db *sql.DB, events *eventlog.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Username == "" || len(req.Password) < 8 {
			http.Error(w, "username and password (min 8 chars) required", http.StatusBadRequest)
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			http.Error(w, "hash password", http.StatusInternalServerError)
			return
		}
		id := uuid.NewString()
		_, err = db.ExecContext(r.Context(),
			`INSERT INTO users (id, username, email, password_hash, role, created_at)
			 VALUES ($1,$2,$3,$4,'member',$5)`,
			id, req.Username, req.Email, string(hash), time.Now().Unix())
		if err != nil {
			// Unique violation on username is by far the common case here.
			http.Error(w, "username unavailable", http.StatusConflict)
			return
		}
		if err := events.Append(r.Context(), eventlog.TypeUserRegistered, id, map[string]string{"username": req.Username}); err != nil {
			zap.L().Warn("append register event", zap.Error(err))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": id, "username": req.Username})
	}
}

// GET /users?limit=50&offset=0  (coach/admin)
func ListUsersHandler(db *sql.DB) http.HandlerFunc {
	type row struct {
		ID        string `json:"id"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		CreatedAt int64  `json:"created_at"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseIntDefault(r.URL.Query().Get("limit"), 50)
		offset := parseIntDefault(r.URL.Query().Get("offset"), 0)
		rows, err := db.QueryContext(r.Context(),
			`SELECT id, username, email, role, created_at FROM users
			 ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			zap.L().Error("list users", zap.Error(err))
			http.Error(w, "query users", http.StatusInternalServerError)
			return
		}
		defer rows.Close()
		out := []row{}
		for rows.Next() {
			var u row
			if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt); err != nil {
				http.Error(w, "scan user", http.StatusInternalServerError)
				return
			}
			out = append(out, u)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}
}
