package item

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when an item id does not exist.
var ErrNotFound = errors.New("item not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Search items by name or id substring
// --------------------------------------------------
func (r *PostgresRepository) Search(ctx context.Context, query string, limit, offset int) (*SearchResult, error) {
	result := &SearchResult{Items: []Item{}}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&result.Total); err != nil {
		return nil, err
	}

	like := "%" + query + "%"
	if query == "" {
		result.Filtered = result.Total
	} else {
		err := r.db.QueryRow(ctx, `
			SELECT COUNT(*)
			FROM items
			WHERE name ILIKE $1 OR CAST(item_id AS TEXT) LIKE $1
		`, like).Scan(&result.Filtered)
		if err != nil {
			return nil, err
		}
	}

	rows, err := r.db.Query(ctx, `
		SELECT item_id, COALESCE(name, ''), status
		FROM items
		WHERE $1 = '' OR name ILIKE $2 OR CAST(item_id AS TEXT) LIKE $2
		ORDER BY name
		LIMIT $3 OFFSET $4
	`, query, like, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ItemID, &it.Name, &it.Status); err != nil {
			return nil, err
		}
		result.Items = append(result.Items, it)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, itemID int64) (*Item, error) {
	var it Item
	err := r.db.QueryRow(ctx, `
		SELECT item_id, COALESCE(name, ''), status
		FROM items
		WHERE item_id = $1
	`, itemID).Scan(&it.ItemID, &it.Name, &it.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *PostgresRepository) PurchaseUnits(ctx context.Context, itemID int64) ([]PurchaseUnit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT pu.purch_unit_id, COALESCE(u.sing, '-'), pu.is_default
		FROM purchase_units pu
		LEFT JOIN units u ON u.unit_id = pu.purch_unit_id
		WHERE pu.item_id = $1
		ORDER BY pu.is_default DESC
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []PurchaseUnit
	for rows.Next() {
		var pu PurchaseUnit
		if err := rows.Scan(&pu.UnitID, &pu.UnitName, &pu.IsDefault); err != nil {
			return nil, err
		}
		units = append(units, pu)
	}
	return units, rows.Err()
}

func (r *PostgresRepository) Prices(ctx context.Context, itemID int64) ([]VendorPrice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ip.vendor_id, COALESCE(v.name, '-'), ip.price, COALESCE(ip.pack, '-')
		FROM item_prices ip
		LEFT JOIN vendors v ON v.vendor_id = ip.vendor_id
		WHERE ip.item_id = $1
		ORDER BY ip.vendor_id
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []VendorPrice
	for rows.Next() {
		var vp VendorPrice
		if err := rows.Scan(&vp.VendorID, &vp.VendorName, &vp.Price, &vp.Pack); err != nil {
			return nil, err
		}
		prices = append(prices, vp)
	}
	return prices, rows.Err()
}

func (r *PostgresRepository) Conversions(ctx context.Context, itemID int64) ([]Conversion, error) {
	rows, err := r.db.Query(ctx, `
		SELECT vendor_id, unit_id_a, unit_id_b, qty_a, qty_b
		FROM conversions
		WHERE item_id = $1
		ORDER BY vendor_id
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversions []Conversion
	for rows.Next() {
		var cv Conversion
		if err := rows.Scan(&cv.VendorID, &cv.UnitA, &cv.UnitB, &cv.QtyA, &cv.QtyB); err != nil {
			return nil, err
		}
		conversions = append(conversions, cv)
	}
	return conversions, rows.Err()
}

func (r *PostgresRepository) Usage(ctx context.Context, itemID int64, limit int) ([]Usage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ri.recipe_id, COALESCE(rec.name, '-'), ri.qty, COALESCE(u.sing, '-')
		FROM recipe_items ri
		LEFT JOIN recipes rec ON rec.recipe_id = ri.recipe_id
		LEFT JOIN units u ON u.unit_id = ri.unit_id
		WHERE ri.item_id = $1
		ORDER BY rec.name
		LIMIT $2
	`, itemID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []Usage
	for rows.Next() {
		var us Usage
		if err := rows.Scan(&us.RecipeID, &us.RecipeName, &us.Qty, &us.UnitName); err != nil {
			return nil, err
		}
		usage = append(usage, us)
	}
	return usage, rows.Err()
}
