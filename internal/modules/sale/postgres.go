package sale

import (
	"context"
	"database/sql"
	"errors"

	"github.com/georgemunganga/lojas-backend/internal/pagination"
	"github.com/google/uuid"
)

const selectSale = `
		SELECT id,store_id,payment_method,total,discount,status,notes,created_at,updated_at
		FROM sales`

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, s *Sale) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO sales (id, store_id, payment_method, total, discount, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		s.ID, s.StoreID, s.PaymentMethod, s.Total, s.Discount, s.Status, s.Notes).
		Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Sale, error) {
	s, err := r.scan(r.db.QueryRowContext(ctx, selectSale+` WHERE id=$1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

func (r *postgresRepo) ListByStore(ctx context.Context, storeID uuid.UUID, page pagination.Params) ([]*Sale, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sales WHERE store_id=$1`, storeID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		selectSale+` WHERE store_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		storeID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sales := []*Sale{}
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		sales = append(sales, s)
	}
	return sales, total, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sales SET status=$1, updated_at=NOW() WHERE id=$2 AND status=$3`,
		to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scan(row rowScanner) (*Sale, error) {
	s := &Sale{}
	err := row.Scan(&s.ID, &s.StoreID, &s.PaymentMethod, &s.Total, &s.Discount,
		&s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
