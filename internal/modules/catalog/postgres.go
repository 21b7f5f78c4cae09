package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/georgemunganga/lojas-backend/internal/pagination"
	"github.com/google/uuid"
)

const selectProduct = `SELECT id,name,code,description,price,active,created_at,updated_at FROM products`

// likeEscaper makes search text match literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO products (id, name, code, description, price, active)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Code, p.Description, p.Price, p.Active).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	err := scan(&p.ID, &p.Name, &p.Code, &p.Description, &p.Price,
		&p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, selectProduct+` WHERE id=$1`, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *postgresRepo) List(ctx context.Context, f ProductFilter, page pagination.Params) ([]*Product, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	n := 1
	if f.Search != "" {
		where += fmt.Sprintf(` AND (name ILIKE $%d ESCAPE '\' OR code ILIKE $%d ESCAPE '\')`, n, n)
		args = append(args, "%"+likeEscaper.Replace(f.Search)+"%")
		n++
	}
	if f.Active != nil {
		where += fmt.Sprintf(` AND active=$%d`, n)
		args = append(args, *f.Active)
		n++
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := selectProduct + where + fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, n, n+1)
	rows, err := r.db.QueryContext(ctx, query, append(args, page.Limit, page.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET name=$1, code=$2, description=$3, price=$4, active=$5, updated_at=NOW()
		WHERE id=$6
		RETURNING updated_at`,
		p.Name, p.Code, p.Description, p.Price, p.Active, p.ID).
		Scan(&p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
