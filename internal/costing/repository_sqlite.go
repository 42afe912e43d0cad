package costing

import (
	"context"
	"database/sql"
	"strings"
)

// SQLiteStore reads costing data from the desktop edition's single-file
// database. Used by the standalone calculator CLI.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) EdgesForItems(ctx context.Context, itemIDs []int64) (map[int64][]ConversionEdge, error) {
	if len(itemIDs) == 0 {
		return map[int64][]ConversionEdge{}, nil
	}
	query := `
		SELECT item_id, vendor_id, unit_id_a, unit_id_b, qty_a, qty_b
		FROM conversions
		WHERE item_id IN (` + placeholders(len(itemIDs)) + `)`
	rows, err := s.db.QueryContext(ctx, query, asArgs(itemIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	edges := make(map[int64][]ConversionEdge)
	for rows.Next() {
		var e ConversionEdge
		if err := rows.Scan(&e.ItemID, &e.VendorID, &e.UnitA, &e.UnitB, &e.QtyA, &e.QtyB); err != nil {
			return nil, err
		}
		edges[e.ItemID] = append(edges[e.ItemID], e)
	}
	return edges, rows.Err()
}

func (s *SQLiteStore) CurrentPrices(ctx context.Context, itemIDs []int64) (map[int64]PriceQuote, error) {
	if len(itemIDs) == 0 {
		return map[int64]PriceQuote{}, nil
	}
	// ordered by vendor id; the first row seen per item wins the tie-break
	query := `
		SELECT item_id, price, vendor_id
		FROM item_prices
		WHERE price IS NOT NULL AND item_id IN (` + placeholders(len(itemIDs)) + `)
		ORDER BY vendor_id`
	return s.firstQuotePerItem(ctx, query, itemIDs)
}

func (s *SQLiteStore) LatestTransactionPrices(ctx context.Context, itemIDs []int64) (map[int64]PriceQuote, error) {
	if len(itemIDs) == 0 {
		return map[int64]PriceQuote{}, nil
	}
	query := `
		SELECT item_id, price, vendor_id
		FROM transactions
		WHERE price IS NOT NULL AND price > 0 AND item_id IN (` + placeholders(len(itemIDs)) + `)
		ORDER BY trans_date DESC, trans_id DESC`
	return s.firstQuotePerItem(ctx, query, itemIDs)
}

func (s *SQLiteStore) PurchaseUnits(ctx context.Context, itemIDs []int64) (map[int64][]PurchaseUnitAssignment, error) {
	if len(itemIDs) == 0 {
		return map[int64][]PurchaseUnitAssignment{}, nil
	}
	query := `
		SELECT item_id, purch_unit_id, is_default
		FROM purchase_units
		WHERE item_id IN (` + placeholders(len(itemIDs)) + `)`
	rows, err := s.db.QueryContext(ctx, query, asArgs(itemIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make(map[int64][]PurchaseUnitAssignment)
	for rows.Next() {
		var itemID int64
		var a PurchaseUnitAssignment
		if err := rows.Scan(&itemID, &a.UnitID, &a.IsDefault); err != nil {
			return nil, err
		}
		assignments[itemID] = append(assignments[itemID], a)
	}
	return assignments, rows.Err()
}

func (s *SQLiteStore) ItemNames(ctx context.Context, itemIDs []int64) (map[int64]string, error) {
	return s.names(ctx, `SELECT item_id, COALESCE(name, '') FROM items WHERE item_id IN `, itemIDs)
}

func (s *SQLiteStore) UnitNames(ctx context.Context, unitIDs []int64) (map[int64]string, error) {
	return s.names(ctx, `SELECT unit_id, COALESCE(sing, '') FROM units WHERE unit_id IN `, unitIDs)
}

func (s *SQLiteStore) firstQuotePerItem(ctx context.Context, query string, itemIDs []int64) (map[int64]PriceQuote, error) {
	rows, err := s.db.QueryContext(ctx, query, asArgs(itemIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make(map[int64]PriceQuote)
	for rows.Next() {
		var itemID int64
		var q PriceQuote
		if err := rows.Scan(&itemID, &q.Price, &q.VendorID); err != nil {
			return nil, err
		}
		if _, ok := quotes[itemID]; !ok {
			quotes[itemID] = q
		}
	}
	return quotes, rows.Err()
}

func (s *SQLiteStore) names(ctx context.Context, prefix string, ids []int64) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}
	rows, err := s.db.QueryContext(ctx, prefix+`(`+placeholders(len(ids))+`)`, asArgs(ids)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func asArgs(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
