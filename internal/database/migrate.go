package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order. Every statement is idempotent.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	// stores.code carries the unique constraint that backs the service-level
	// duplicate check; concurrent creates are settled here.
	`CREATE TABLE IF NOT EXISTS stores (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL CHECK (name <> ''),
		code       TEXT NOT NULL,
		address    TEXT,
		phone      TEXT,
		active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT stores_code_key UNIQUE (code)
	)`,
	`CREATE INDEX IF NOT EXISTS stores_active_name_idx ON stores (active, name)`,

	`CREATE TABLE IF NOT EXISTS payment_methods (
		id     UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		code   TEXT NOT NULL UNIQUE,
		label  TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		code        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		price       NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
		active      BOOLEAN NOT NULL DEFAULT TRUE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS sales (
		id             UUID PRIMARY KEY,
		store_id       UUID NOT NULL REFERENCES stores(id),
		payment_method TEXT NOT NULL REFERENCES payment_methods(code),
		total          NUMERIC(12,2) NOT NULL CHECK (total > 0),
		discount       NUMERIC(12,2) NOT NULL DEFAULT 0,
		status         TEXT NOT NULL,
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS sales_store_created_idx ON sales (store_id, created_at DESC)`,
}

// DefaultPaymentMethods are seeded on first migration.
var DefaultPaymentMethods = []struct{ Code, Label string }{
	{"dinheiro", "Dinheiro"},
	{"cartao_credito", "Cartão de Crédito"},
	{"cartao_debito", "Cartão de Débito"},
	{"pix", "PIX"},
	{"credito_loja", "Crédito Loja"},
	{"crediario", "Crediário"},
}

// Migrate creates the schema and seeds reference data inside one transaction.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	for _, pm := range DefaultPaymentMethods {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO payment_methods (code, label) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`,
			pm.Code, pm.Label); err != nil {
			return fmt.Errorf("seed payment method %s: %w", pm.Code, err)
		}
	}
	return tx.Commit()
}
