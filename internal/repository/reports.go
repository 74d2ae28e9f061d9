package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/massafina/massafina-api/internal/reports"
)

// PostgresReportRepository runs compiled report specs. The aggregation
// (filter, group, sum, sort) happens entirely in the database.
type PostgresReportRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewReportRepository(db *sql.DB, logger *slog.Logger) *PostgresReportRepository {
	return &PostgresReportRepository{
		db:     db,
		logger: logger.With("repository", "reports"),
	}
}

func (r *PostgresReportRepository) Run(ctx context.Context, spec reports.Spec) ([]reports.Row, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	query, args := spec.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("report query failed", "granularity", spec.Granularity, "error", err)
		return nil, err
	}
	defer rows.Close()

	result := make([]reports.Row, 0)
	for rows.Next() {
		var row reports.Row
		if err := rows.Scan(&row.Bucket, &row.TotalOrders, &row.TotalRevenue); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.logger.Debug("report executed", "granularity", spec.Granularity, "buckets", len(result))
	return result, nil
}
