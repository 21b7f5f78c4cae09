package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

const selectColumns = `SELECT id,name,code,address,phone,active,created_at,updated_at FROM stores`

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListActive(ctx context.Context) ([]*Store, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` WHERE active=true ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := []*Store{}
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Store, error) {
	s, err := scanStore(r.db.QueryRowContext(ctx, selectColumns+` WHERE id=$1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

func (r *postgresRepo) CodeTaken(ctx context.Context, code string, exclude uuid.UUID) (bool, error) {
	var taken bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM stores WHERE code=$1 AND id<>$2)`, code, exclude).
		Scan(&taken)
	return taken, err
}

func (r *postgresRepo) Create(ctx context.Context, s *Store) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO stores (id,name,code,address,phone,active)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at, updated_at`,
		s.ID, s.Name, s.Code, nilIfEmpty(s.Address), nilIfEmpty(s.Phone), s.Active).
		Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *postgresRepo) Update(ctx context.Context, id uuid.UUID, name, code string) (*Store, error) {
	s, err := scanStore(r.db.QueryRowContext(ctx, `
		UPDATE stores
		SET name=$1, code=COALESCE(NULLIF($2,''), code), updated_at=NOW()
		WHERE id=$3
		RETURNING id,name,code,address,phone,active,created_at,updated_at`,
		name, code, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

func (r *postgresRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE stores SET active=$1, updated_at=NOW() WHERE id=$2`, active, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanStore(row rowScanner) (*Store, error) {
	s := &Store{}
	var address, phone sql.NullString
	err := row.Scan(&s.ID, &s.Name, &s.Code, &address, &phone,
		&s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Address = address.String
	s.Phone = phone.String
	return s, nil
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
