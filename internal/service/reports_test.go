package service

import (
	"context"
	"testing"

	"github.com/massafina/massafina-api/internal/apperrors"
	"github.com/massafina/massafina-api/internal/reports"
)

type mockReportRepo struct {
	rows     []reports.Row
	err      error
	lastSpec reports.Spec
}

func (m *mockReportRepo) Run(ctx context.Context, spec reports.Spec) ([]reports.Row, error) {
	m.lastSpec = spec
	return m.rows, m.err
}

func TestDailyReport(t *testing.T) {
	repo := &mockReportRepo{
		rows: []reports.Row{
			{Bucket: "2024-03-01", TotalOrders: 3, TotalRevenue: 150.999999},
			{Bucket: "2024-03-02", TotalOrders: 1, TotalRevenue: 42.00},
		},
	}
	svc := NewReportService(repo, testLogger())

	report, err := svc.DailyReport(context.Background(), "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(report) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(report))
	}
	if report[0].Date != "2024-03-01" || report[0].TotalOrders != 3 {
		t.Errorf("Unexpected first row: %+v", report[0])
	}
	if report[0].TotalRevenue != 151.00 {
		t.Errorf("Expected revenue rounded to 151.00, got %v", report[0].TotalRevenue)
	}

	if repo.lastSpec.Granularity != reports.Daily {
		t.Errorf("Expected daily spec, got %s", repo.lastSpec.Granularity)
	}
	if repo.lastSpec.Start == nil || repo.lastSpec.End == nil {
		t.Error("Expected bounded spec")
	}
}

func TestDailyReportBadDates(t *testing.T) {
	svc := NewReportService(&mockReportRepo{}, testLogger())

	_, err := svc.DailyReport(context.Background(), "bogus", "")
	if !apperrors.IsValidation(err) {
		t.Fatalf("Expected validation error, got %v", err)
	}
}

func TestMonthlyReport(t *testing.T) {
	repo := &mockReportRepo{
		rows: []reports.Row{{Bucket: "2024-03", TotalOrders: 12, TotalRevenue: 1044.005001}},
	}
	svc := NewReportService(repo, testLogger())

	year := 2024
	report, err := svc.MonthlyReport(context.Background(), &year)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(report) != 1 || report[0].Month != "2024-03" {
		t.Fatalf("Unexpected report: %+v", report)
	}
	if report[0].TotalRevenue != 1044.01 {
		t.Errorf("Expected revenue rounded to 1044.01, got %v", report[0].TotalRevenue)
	}

	if repo.lastSpec.Granularity != reports.Monthly {
		t.Errorf("Expected monthly spec, got %s", repo.lastSpec.Granularity)
	}
}
