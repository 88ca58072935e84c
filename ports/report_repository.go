package ports

import (
	"context"

	"datalens/domain/core"
	"datalens/domain/report"
)

// ReportRepository persists finished analysis reports. Persistence is
// optional: the server runs without a backing store and simply skips saving.
type ReportRepository interface {
	Save(ctx context.Context, stored *report.StoredReport) error
	GetByID(ctx context.Context, id core.ReportID) (*report.StoredReport, error)
	ListRecent(ctx context.Context, limit int) ([]*report.StoredReport, error)
}
