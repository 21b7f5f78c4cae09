package dashboard

import (
	"context"
	"database/sql"
	"time"

	"github.com/georgemunganga/lojas-backend/internal/modules/sale"
)

// Repository reads sale aggregates. Every method counts only COMPLETED
// sales whose store is still active, in the half-open range [from, to).
type Repository interface {
	DailyTotals(ctx context.Context, from, to time.Time) ([]DayTotal, error)
	StoreTotals(ctx context.Context, from, to time.Time) ([]StoreTotal, error)
}

const completedAtActiveStores = `
		FROM sales s
		JOIN stores st ON st.id = s.store_id
		WHERE s.status = $1 AND st.active = TRUE
		AND s.created_at >= $2 AND s.created_at < $3`

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) DailyTotals(ctx context.Context, from, to time.Time) ([]DayTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT to_char(s.created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
		       COALESCE(SUM(s.total), 0), COUNT(*)`+completedAtActiveStores+`
		GROUP BY day
		ORDER BY day`,
		sale.StatusCompleted, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DayTotal
	for rows.Next() {
		var d DayTotal
		if err := rows.Scan(&d.Day, &d.Revenue, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *postgresRepo) StoreTotals(ctx context.Context, from, to time.Time) ([]StoreTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT st.id, st.name, COALESCE(SUM(s.total), 0), COUNT(*)`+completedAtActiveStores+`
		GROUP BY st.id, st.name
		ORDER BY 3 DESC, st.name ASC`,
		sale.StatusCompleted, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StoreTotal{}
	for rows.Next() {
		var t StoreTotal
		if err := rows.Scan(&t.StoreID, &t.Name, &t.Revenue, &t.Count); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
