package dashboard

import (
	"context"
	"time"

	"github.com/georgemunganga/lojas-backend/internal/apperr"
	"github.com/georgemunganga/lojas-backend/internal/money"
)

const monthLayout = "2006-01"

// Service builds the sales dashboard.
type Service interface {
	// MonthSummary aggregates month (YYYY-MM); empty means the current UTC month.
	MonthSummary(ctx context.Context, month string) (*Summary, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a dashboard service. A nil clock means time.Now.
func NewService(repo Repository, clock func() time.Time) Service {
	if clock == nil {
		clock = time.Now
	}
	return &service{repo: repo, now: clock}
}

func (s *service) MonthSummary(ctx context.Context, month string) (*Summary, error) {
	from, err := s.monthStart(month)
	if err != nil {
		return nil, err
	}
	to := from.AddDate(0, 1, 0)

	days, err := s.repo.DailyTotals(ctx, from, to)
	if err != nil {
		return nil, apperr.Wrap(err, "daily sale totals")
	}
	stores, err := s.repo.StoreTotals(ctx, from, to)
	if err != nil {
		return nil, apperr.Wrap(err, "store sale totals")
	}

	byDay := make(map[string]DayTotal, len(days))
	for _, d := range days {
		byDay[d.Day] = d
	}

	sum := &Summary{Month: from.Format(monthLayout), From: from, To: to, Stores: stores}
	var revenue float64
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		t, ok := byDay[key]
		if !ok {
			t = DayTotal{Day: key}
		}
		revenue += t.Revenue
		sum.Sales.Count += t.Count
		sum.Daily = append(sum.Daily, t)
	}
	sum.Sales.Revenue = money.Round(revenue)
	if sum.Sales.Count > 0 {
		sum.Sales.AverageTicket = money.Round(revenue / float64(sum.Sales.Count))
	}
	return sum, nil
}

func (s *service) monthStart(month string) (time.Time, error) {
	if month == "" {
		now := s.now().UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return time.Time{}, apperr.Validationf("month must be formatted YYYY-MM")
	}
	return t, nil
}
