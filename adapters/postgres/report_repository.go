package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"datalens/domain/core"
	"datalens/domain/report"
	"datalens/ports"
)

// reportRepository implements ports.ReportRepository on PostgreSQL. The full
// AnalysisResult is stored as a JSON payload column next to a few queryable
// summary fields.
type reportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a report repository backed by the given DB.
func NewReportRepository(db *sqlx.DB) ports.ReportRepository {
	return &reportRepository{db: db}
}

// Connect opens and pings a PostgreSQL connection.
func Connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// Migrate creates the reports table if it does not exist.
func Migrate(db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		filename TEXT NOT NULL,
		rows INTEGER NOT NULL,
		columns INTEGER NOT NULL,
		quality DOUBLE PRECISION NOT NULL,
		result JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate reports table: %w", err)
	}
	return nil
}

// Save inserts a stored report.
func (r *reportRepository) Save(ctx context.Context, stored *report.StoredReport) error {
	resultJSON, err := json.Marshal(stored.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	query := `INSERT INTO reports (id, filename, rows, columns, quality, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.ExecContext(ctx, query,
		stored.ID, stored.Filename, stored.Rows, stored.Columns, stored.Quality,
		resultJSON, stored.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetByID retrieves one stored report.
func (r *reportRepository) GetByID(ctx context.Context, id core.ReportID) (*report.StoredReport, error) {
	query := `SELECT id, filename, rows, columns, quality, result, created_at
		FROM reports WHERE id = $1`

	var stored report.StoredReport
	var resultJSON []byte

	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(
		&stored.ID, &stored.Filename, &stored.Rows, &stored.Columns, &stored.Quality,
		&resultJSON, &stored.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("report not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	if err := json.Unmarshal(resultJSON, &stored.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &stored, nil
}

// ListRecent returns the most recent stored reports without their payloads.
func (r *reportRepository) ListRecent(ctx context.Context, limit int) ([]*report.StoredReport, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := `SELECT id, filename, rows, columns, quality, created_at
		FROM reports ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var out []*report.StoredReport
	for rows.Next() {
		var stored report.StoredReport
		if err := rows.Scan(&stored.ID, &stored.Filename, &stored.Rows, &stored.Columns,
			&stored.Quality, &stored.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		out = append(out, &stored)
	}
	return out, rows.Err()
}
