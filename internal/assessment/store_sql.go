package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/rotisserie/eris"
)

// ErrNotFound is returned when an assessment ID has no stored result.
var ErrNotFound = eris.New("assessment not found")

// ListOpts filters and pages a result listing.
type ListOpts struct {
	UserID string
	Limit  int
	Offset int
}

// ResultSummary is the listing row: enough to render a history view without
// shipping the full result document.
type ResultSummary struct {
	AssessmentID   string  `json:"assessment_id"`
	UserID         string  `json:"user_id"`
	CompletedAt    int64   `json:"completed_at"`
	AverageScore   float64 `json:"average_score"`
	ReadinessLevel string  `json:"readiness_level"`
}

// Store persists scoring results. The engine itself never touches storage;
// the submission handler drives both.
type Store interface {
	SaveResult(ctx context.Context, res Result) error
	GetResult(ctx context.Context, id string) (Result, error)
	ListResults(ctx context.Context, opts ListOpts) ([]ResultSummary, error)
}

// SQLStore stores each result as a JSON document plus a few indexed columns
// for listing. Works against sqlite and postgres.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) SaveResult(ctx context.Context, res Result) error {
	doc, err := json.Marshal(res)
	if err != nil {
		return eris.Wrap(err, "assessment: marshal result")
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments (id, user_id, completed_at, average_score, readiness_level, result_json)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		res.AssessmentID, res.Subject.UserID, res.CompletedAt.Unix(),
		res.Summary.AverageScore, res.Summary.ReadinessLevel, string(doc))
	if err != nil {
		return eris.Wrap(err, "assessment: insert result")
	}
	return nil
}

func (s *SQLStore) GetResult(ctx context.Context, id string) (Result, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT result_json FROM assessments WHERE id=$1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Result{}, ErrNotFound
		}
		return Result{}, eris.Wrap(err, "assessment: query result")
	}
	var res Result
	if err := json.Unmarshal([]byte(doc), &res); err != nil {
		return Result{}, eris.Wrap(err, "assessment: unmarshal result")
	}
	return res, nil
}

func (s *SQLStore) ListResults(ctx context.Context, opts ListOpts) ([]ResultSummary, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT id, user_id, completed_at, average_score, readiness_level
	          FROM assessments`
	args := []interface{}{}
	if opts.UserID != "" {
		query += ` WHERE user_id=$1`
		args = append(args, opts.UserID)
	}
	query += ` ORDER BY completed_at DESC LIMIT ` + placeholder(len(args)+1) +
		` OFFSET ` + placeholder(len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "assessment: list results")
	}
	defer rows.Close()

	out := []ResultSummary{}
	for rows.Next() {
		var r ResultSummary
		if err := rows.Scan(&r.AssessmentID, &r.UserID, &r.CompletedAt, &r.AverageScore, &r.ReadinessLevel); err != nil {
			return nil, eris.Wrap(err, "assessment: scan listing row")
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "assessment: iterate listing rows")
	}
	return out, nil
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
