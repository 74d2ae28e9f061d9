// Package reports models sales report queries as declarative
// specifications. A Spec is validated first and only then compiled into the
// single aggregation query the store executes; the grouping and summing
// always happen database-side.
package reports

import (
	"fmt"
	"time"
)

type Granularity string

const (
	Daily   Granularity = "daily"
	Monthly Granularity = "monthly"
)

// Spec describes one report: how to bucket orders and which createdAt
// window to include. Nil bounds leave that side of the range open.
type Spec struct {
	Granularity Granularity
	Start       *time.Time
	End         *time.Time
}

func (s Spec) Validate() error {
	switch s.Granularity {
	case Daily, Monthly:
	default:
		return fmt.Errorf("unknown report granularity: %q", s.Granularity)
	}
	if s.Start != nil && s.End != nil && s.Start.After(*s.End) {
		return fmt.Errorf("report range start %s is after end %s",
			s.Start.Format(time.DateOnly), s.End.Format(time.DateOnly))
	}
	return nil
}

// bucketFormat is the Postgres to_char pattern producing the bucket label.
func (s Spec) bucketFormat() string {
	if s.Granularity == Monthly {
		return "YYYY-MM"
	}
	return "YYYY-MM-DD"
}

// Query compiles the spec into SQL plus its arguments. The caller must have
// validated the spec first.
func (s Spec) Query() (string, []any) {
	query := fmt.Sprintf(
		`SELECT to_char(created_at, '%s') AS bucket,
		        COUNT(*) AS total_orders,
		        COALESCE(SUM(total_price), 0) AS total_revenue
		 FROM orders`, s.bucketFormat())

	args := make([]any, 0, 2)
	if s.Start != nil {
		args = append(args, *s.Start)
		query += fmt.Sprintf(" WHERE created_at >= $%d", len(args))
	}
	if s.End != nil {
		args = append(args, *s.End)
		clause := " WHERE"
		if s.Start != nil {
			clause = " AND"
		}
		query += fmt.Sprintf("%s created_at < $%d", clause, len(args))
	}

	query += " GROUP BY bucket ORDER BY bucket ASC"
	return query, args
}

// Row is one aggregated bucket as returned by the store, before the service
// layer applies money rounding.
type Row struct {
	Bucket       string
	TotalOrders  int
	TotalRevenue float64
}

// DailySpec builds the daily report spec from optional YYYY-MM-DD bounds.
// The end bound is pushed to the start of the following day so the whole
// end day is included.
func DailySpec(startDate, endDate string) (Spec, error) {
	spec := Spec{Granularity: Daily}

	if startDate != "" {
		start, err := time.Parse(time.DateOnly, startDate)
		if err != nil {
			return Spec{}, fmt.Errorf("invalid start date %q: %w", startDate, err)
		}
		spec.Start = &start
	}
	if endDate != "" {
		end, err := time.Parse(time.DateOnly, endDate)
		if err != nil {
			return Spec{}, fmt.Errorf("invalid end date %q: %w", endDate, err)
		}
		endExclusive := end.AddDate(0, 0, 1)
		spec.End = &endExclusive
	}

	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// MonthlySpec builds the monthly report spec. A nil year aggregates across
// every year present.
func MonthlySpec(year *int) (Spec, error) {
	spec := Spec{Granularity: Monthly}

	if year != nil {
		start := time.Date(*year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)
		spec.Start = &start
		spec.End = &end
	}

	if err := spec.Validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}
