package paymentmethod

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when no payment method has the given code.
var ErrNotFound = errors.New("payment method not found")

// Repository defines read access to payment methods.
type Repository interface {
	ListActive(ctx context.Context) ([]*PaymentMethod, error)
	GetByCode(ctx context.Context, code string) (*PaymentMethod, error)
}

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListActive(ctx context.Context) ([]*PaymentMethod, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id,code,label,active FROM payment_methods WHERE active=true ORDER BY label ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := []*PaymentMethod{}
	for rows.Next() {
		m := &PaymentMethod{}
		if err := rows.Scan(&m.ID, &m.Code, &m.Label, &m.Active); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*PaymentMethod, error) {
	m := &PaymentMethod{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id,code,label,active FROM payment_methods WHERE code=$1`, code).
		Scan(&m.ID, &m.Code, &m.Label, &m.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
