package service

import (
	"context"
	"log/slog"

	"github.com/massafina/massafina-api/internal/apperrors"
	"github.com/massafina/massafina-api/internal/models"
	"github.com/massafina/massafina-api/internal/reports"
	"github.com/massafina/massafina-api/internal/repository"
)

// ReportService produces the daily and monthly sales aggregations. It only
// builds and validates the report spec; the grouping runs in the store.
type ReportService struct {
	repo   repository.ReportRepository
	logger *slog.Logger
}

func NewReportService(repo repository.ReportRepository, logger *slog.Logger) *ReportService {
	return &ReportService{
		repo:   repo,
		logger: logger.With("component", "report-service"),
	}
}

// DailyReport aggregates orders per day, optionally restricted to an
// inclusive [startDate, endDate] range of YYYY-MM-DD dates.
func (s *ReportService) DailyReport(ctx context.Context, startDate, endDate string) ([]models.DailyReportRow, error) {
	spec, err := reports.DailySpec(startDate, endDate)
	if err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	rows, err := s.repo.Run(ctx, spec)
	if err != nil {
		return nil, err
	}

	result := make([]models.DailyReportRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.DailyReportRow{
			Date:         row.Bucket,
			TotalOrders:  row.TotalOrders,
			TotalRevenue: RoundMoney(row.TotalRevenue),
		})
	}
	return result, nil
}

// MonthlyReport aggregates orders per month; a nil year spans all years.
func (s *ReportService) MonthlyReport(ctx context.Context, year *int) ([]models.MonthlyReportRow, error) {
	spec, err := reports.MonthlySpec(year)
	if err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	rows, err := s.repo.Run(ctx, spec)
	if err != nil {
		return nil, err
	}

	result := make([]models.MonthlyReportRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, models.MonthlyReportRow{
			Month:        row.Bucket,
			TotalOrders:  row.TotalOrders,
			TotalRevenue: RoundMoney(row.TotalRevenue),
		})
	}
	return result, nil
}
