package report

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ReplaceMissingData swaps the whole report atomically.
func (r *PostgresRepository) ReplaceMissingData(ctx context.Context, rows []MissingDataRow) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM missing_data_report`); err != nil {
		return err
	}

	for _, row := range rows {
		_, err := tx.Exec(ctx, `
			INSERT INTO missing_data_report (
				recipe_id,
				recipe_name,
				missing_qty,
				missing_unit,
				missing_price,
				needs_conversion
			)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			row.RecipeID,
			row.RecipeName,
			row.MissingQty,
			row.MissingUnit,
			row.MissingPrice,
			row.NeedsConversion,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) ListMissingData(ctx context.Context) ([]MissingDataRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT recipe_id, COALESCE(recipe_name, ''), missing_qty, missing_unit, missing_price, needs_conversion
		FROM missing_data_report
		ORDER BY recipe_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []MissingDataRow
	for rows.Next() {
		var row MissingDataRow
		if err := rows.Scan(
			&row.RecipeID,
			&row.RecipeName,
			&row.MissingQty,
			&row.MissingUnit,
			&row.MissingPrice,
			&row.NeedsConversion,
		); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

// CountItemsMissingPurchaseUnit counts items used by recipes that have no
// purchase-unit assignment at all.
func (r *PostgresRepository) CountItemsMissingPurchaseUnit(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT ri.item_id)
		FROM recipe_items ri
		WHERE ri.item_id NOT IN (SELECT item_id FROM purchase_units)
	`).Scan(&count)
	return count, err
}
