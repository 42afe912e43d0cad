package costing

import (
	"context"
	"sort"
)

// PriceRow is a current price record held by the in-memory store.
type PriceRow struct {
	ItemID   int64
	VendorID int64
	Price    float64
}

// TransactionRow is a purchase-history line held by the in-memory store.
type TransactionRow struct {
	TransID  int64
	ItemID   int64
	Date     string
	VendorID int64
	Price    float64
}

// AssignmentRow links an item to a purchase unit, in insertion order.
type AssignmentRow struct {
	ItemID    int64
	UnitID    int64
	IsDefault bool
}

// MemoryStore keeps everything in slices and maps. Used by tests and as the
// reference for the ordering semantics the SQL stores implement.
type MemoryStore struct {
	EdgeRows        []ConversionEdge
	PriceRows       []PriceRow
	TransactionRows []TransactionRow
	AssignmentRows  []AssignmentRow
	Items           map[int64]string
	Units           map[int64]string

	// Err, when set, is returned by every method to simulate a store failure.
	Err error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Items: make(map[int64]string),
		Units: make(map[int64]string),
	}
}

func (s *MemoryStore) EdgesForItems(_ context.Context, itemIDs []int64) (map[int64][]ConversionEdge, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	wanted := idSet(itemIDs)
	edges := make(map[int64][]ConversionEdge)
	for _, e := range s.EdgeRows {
		if _, ok := wanted[e.ItemID]; ok {
			edges[e.ItemID] = append(edges[e.ItemID], e)
		}
	}
	return edges, nil
}

func (s *MemoryStore) CurrentPrices(_ context.Context, itemIDs []int64) (map[int64]PriceQuote, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	wanted := idSet(itemIDs)
	rows := make([]PriceRow, 0, len(s.PriceRows))
	for _, r := range s.PriceRows {
		if _, ok := wanted[r.ItemID]; ok {
			rows = append(rows, r)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].VendorID < rows[j].VendorID })

	quotes := make(map[int64]PriceQuote)
	for _, r := range rows {
		if _, ok := quotes[r.ItemID]; !ok {
			quotes[r.ItemID] = PriceQuote{Price: r.Price, VendorID: r.VendorID}
		}
	}
	return quotes, nil
}

func (s *MemoryStore) LatestTransactionPrices(_ context.Context, itemIDs []int64) (map[int64]PriceQuote, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	wanted := idSet(itemIDs)
	rows := make([]TransactionRow, 0, len(s.TransactionRows))
	for _, r := range s.TransactionRows {
		if _, ok := wanted[r.ItemID]; ok && r.Price > 0 {
			rows = append(rows, r)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		return rows[i].TransID > rows[j].TransID
	})

	quotes := make(map[int64]PriceQuote)
	for _, r := range rows {
		if _, ok := quotes[r.ItemID]; !ok {
			quotes[r.ItemID] = PriceQuote{Price: r.Price, VendorID: r.VendorID}
		}
	}
	return quotes, nil
}

func (s *MemoryStore) PurchaseUnits(_ context.Context, itemIDs []int64) (map[int64][]PurchaseUnitAssignment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	wanted := idSet(itemIDs)
	assignments := make(map[int64][]PurchaseUnitAssignment)
	for _, r := range s.AssignmentRows {
		if _, ok := wanted[r.ItemID]; ok {
			assignments[r.ItemID] = append(assignments[r.ItemID], PurchaseUnitAssignment{
				UnitID:    r.UnitID,
				IsDefault: r.IsDefault,
			})
		}
	}
	return assignments, nil
}

func (s *MemoryStore) ItemNames(_ context.Context, itemIDs []int64) (map[int64]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	names := make(map[int64]string)
	for _, id := range itemIDs {
		if name, ok := s.Items[id]; ok {
			names[id] = name
		}
	}
	return names, nil
}

func (s *MemoryStore) UnitNames(_ context.Context, unitIDs []int64) (map[int64]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	names := make(map[int64]string)
	for _, id := range unitIDs {
		if name, ok := s.Units[id]; ok {
			names[id] = name
		}
	}
	return names, nil
}

func idSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
