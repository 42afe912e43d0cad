package costing

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore reads costing data through a pgx pool.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) EdgesForItems(ctx context.Context, itemIDs []int64) (map[int64][]ConversionEdge, error) {
	rows, err := s.db.Query(ctx, `
		SELECT item_id, vendor_id, unit_id_a, unit_id_b, qty_a, qty_b
		FROM conversions
		WHERE item_id = ANY($1)
	`, itemIDs)
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

// CurrentPrices picks one record per item by ascending vendor id. That is a
// stable tie-break carried over from the legacy behavior, not a lowest-price
// policy.
func (s *PostgresStore) CurrentPrices(ctx context.Context, itemIDs []int64) (map[int64]PriceQuote, error) {
	rows, err := s.db.Query(ctx, `
		SELECT DISTINCT ON (item_id) item_id, price, vendor_id
		FROM item_prices
		WHERE item_id = ANY($1) AND price IS NOT NULL
		ORDER BY item_id, vendor_id
	`, itemIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuotes(rows)
}

func (s *PostgresStore) LatestTransactionPrices(ctx context.Context, itemIDs []int64) (map[int64]PriceQuote, error) {
	rows, err := s.db.Query(ctx, `
		SELECT DISTINCT ON (item_id) item_id, price, vendor_id
		FROM transactions
		WHERE item_id = ANY($1) AND price IS NOT NULL AND price > 0
		ORDER BY item_id, trans_date DESC, trans_id DESC
	`, itemIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuotes(rows)
}

func (s *PostgresStore) PurchaseUnits(ctx context.Context, itemIDs []int64) (map[int64][]PurchaseUnitAssignment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT item_id, purch_unit_id, is_default
		FROM purchase_units
		WHERE item_id = ANY($1)
	`, itemIDs)
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

func (s *PostgresStore) ItemNames(ctx context.Context, itemIDs []int64) (map[int64]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT item_id, COALESCE(name, '')
		FROM items
		WHERE item_id = ANY($1)
	`, itemIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNames(rows)
}

func (s *PostgresStore) UnitNames(ctx context.Context, unitIDs []int64) (map[int64]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT unit_id, COALESCE(sing, '')
		FROM units
		WHERE unit_id = ANY($1)
	`, unitIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNames(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanQuotes(rows pgxRows) (map[int64]PriceQuote, error) {
	quotes := make(map[int64]PriceQuote)
	for rows.Next() {
		var itemID int64
		var q PriceQuote
		if err := rows.Scan(&itemID, &q.Price, &q.VendorID); err != nil {
			return nil, err
		}
		quotes[itemID] = q
	}
	return quotes, rows.Err()
}

func scanNames(rows pgxRows) (map[int64]string, error) {
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
