package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres opens a pgx pool against the given DSN and makes sure the
// schema exists.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return pool, nil
}

// initSchema creates the tables the import pipeline populates. All of them are
// read-only as far as this service is concerned, except missing_data_report
// which report recalculation rewrites.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS units (
			unit_id BIGINT PRIMARY KEY,
			sing TEXT,
			plur TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			item_id BIGINT PRIMARY KEY,
			name TEXT,
			status BIGINT
		)`,
		`CREATE TABLE IF NOT EXISTS vendors (
			vendor_id BIGINT PRIMARY KEY,
			name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS recipes (
			recipe_id BIGINT PRIMARY KEY,
			name TEXT,
			instructions TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS recipe_items (
			recipe_id BIGINT,
			recipe_item_id BIGINT,
			item_id BIGINT,
			unit_id BIGINT,
			qty DOUBLE PRECISION
		)`,
		`CREATE TABLE IF NOT EXISTS conversions (
			item_id BIGINT,
			vendor_id BIGINT,
			unit_id_a BIGINT,
			unit_id_b BIGINT,
			qty_a DOUBLE PRECISION,
			qty_b DOUBLE PRECISION
		)`,
		`CREATE TABLE IF NOT EXISTS purchase_units (
			item_id BIGINT,
			purch_unit_id BIGINT,
			is_default BOOLEAN DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS item_prices (
			item_id BIGINT,
			vendor_id BIGINT,
			price DOUBLE PRECISION,
			pack TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			trans_id BIGINT,
			item_id BIGINT,
			trans_date TEXT,
			vendor_id BIGINT,
			price DOUBLE PRECISION,
			qty DOUBLE PRECISION,
			unit_id BIGINT
		)`,
		`CREATE TABLE IF NOT EXISTS missing_data_report (
			recipe_id BIGINT,
			recipe_name TEXT,
			missing_qty BIGINT,
			missing_unit BIGINT,
			missing_price BIGINT,
			needs_conversion BIGINT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_item_vendor ON conversions(item_id, vendor_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recipe_items_item ON recipe_items(item_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recipe_items_recipe ON recipe_items(recipe_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_item ON transactions(item_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
