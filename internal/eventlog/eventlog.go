package eventlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
)

// Event types appended by the API layer.
const (
	TypeAssessmentSubmitted = "AssessmentSubmitted"
	TypeUserRegistered      = "UserRegistered"
)

type Event struct {
	Offset    int64
	SiteID    string
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

// Repo is an append-only log over the event_log table, used for audit and
// for future site-to-site sync.
type Repo struct{ db *sql.DB }

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

// Append records one event. payload is marshaled to JSON; a nil payload is
// stored as an empty object.
func (r *Repo) Append(ctx context.Context, typ, key string, payload interface{}) error {
	data := "{}"
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return eris.Wrap(err, "eventlog: marshal payload")
		}
		data = string(buf)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		"local", typ, key, data, time.Now().Unix())
	if err != nil {
		return eris.Wrap(err, "eventlog: append")
	}
	return nil
}
