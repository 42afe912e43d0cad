package costing

import "context"

// Store is the data-access contract the engine evaluates against.
// All methods are bulk reads keyed by id so that one batch costs a fixed
// number of round trips regardless of how many lines it has.
type Store interface {
	// EdgesForItems returns every conversion edge recorded for each item,
	// across all vendor scopes. Vendor filtering happens in memory.
	EdgesForItems(ctx context.Context, itemIDs []int64) (map[int64][]ConversionEdge, error)

	// CurrentPrices returns, per item, the current price record with the
	// lowest vendor id. Records without a price are skipped.
	CurrentPrices(ctx context.Context, itemIDs []int64) (map[int64]PriceQuote, error)

	// LatestTransactionPrices returns, per item, the most recent
	// positive-price purchase transaction (by date, then transaction id).
	LatestTransactionPrices(ctx context.Context, itemIDs []int64) (map[int64]PriceQuote, error)

	// PurchaseUnits returns each item's purchase-unit assignments in
	// storage order.
	PurchaseUnits(ctx context.Context, itemIDs []int64) (map[int64][]PurchaseUnitAssignment, error)

	// ItemNames and UnitNames feed the display fields on line results.
	ItemNames(ctx context.Context, itemIDs []int64) (map[int64]string, error)
	UnitNames(ctx context.Context, unitIDs []int64) (map[int64]string, error)
}

// snapshot holds everything one EvaluateAll call needs, prefetched up front.
// Per-line resolution reads only from here, never from the store.
type snapshot struct {
	edges         map[int64][]ConversionEdge
	prices        map[int64]PriceQuote
	transactions  map[int64]PriceQuote
	purchaseUnits map[int64][]PurchaseUnitAssignment
	itemNames     map[int64]string
	unitNames     map[int64]string
}

// loadSnapshot bulk-loads the data backing a batch of lines.
func loadSnapshot(ctx context.Context, store Store, lines []Line) (*snapshot, error) {
	itemIDs := distinctItemIDs(lines)

	edges, err := store.EdgesForItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	prices, err := store.CurrentPrices(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	transactions, err := store.LatestTransactionPrices(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	purchaseUnits, err := store.PurchaseUnits(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	itemNames, err := store.ItemNames(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	unitIDs := make(map[int64]struct{})
	for _, line := range lines {
		if line.UnitID != 0 {
			unitIDs[line.UnitID] = struct{}{}
		}
	}
	for _, assignments := range purchaseUnits {
		for _, a := range assignments {
			unitIDs[a.UnitID] = struct{}{}
		}
	}
	unitNames, err := store.UnitNames(ctx, keys(unitIDs))
	if err != nil {
		return nil, err
	}

	return &snapshot{
		edges:         edges,
		prices:        prices,
		transactions:  transactions,
		purchaseUnits: purchaseUnits,
		itemNames:     itemNames,
		unitNames:     unitNames,
	}, nil
}

// purchaseUnit picks the first default-flagged assignment, falling back to
// the first assignment of any kind.
func (s *snapshot) purchaseUnit(itemID int64) (int64, bool) {
	assignments := s.purchaseUnits[itemID]
	for _, a := range assignments {
		if a.IsDefault {
			return a.UnitID, true
		}
	}
	if len(assignments) > 0 {
		return assignments[0].UnitID, true
	}
	return 0, false
}

// price prefers the current price record and falls back to the latest
// positive transaction price.
func (s *snapshot) price(itemID int64) (PriceQuote, bool) {
	if quote, ok := s.prices[itemID]; ok {
		return quote, true
	}
	if quote, ok := s.transactions[itemID]; ok {
		return quote, true
	}
	return PriceQuote{}, false
}

// edgesFor returns the item's edges visible from the given vendor: the
// vendor's own edges plus global ones. Without a resolved vendor every edge
// applies.
func (s *snapshot) edgesFor(itemID int64, vendorID int64, vendorKnown bool) []ConversionEdge {
	all := s.edges[itemID]
	if !vendorKnown {
		return all
	}
	scoped := make([]ConversionEdge, 0, len(all))
	for _, e := range all {
		if e.VendorID == vendorID || e.VendorID == GlobalVendor {
			scoped = append(scoped, e)
		}
	}
	return scoped
}

func (s *snapshot) itemName(itemID int64) string {
	if name, ok := s.itemNames[itemID]; ok && name != "" {
		return name
	}
	return "(unknown item)"
}

func (s *snapshot) unitName(unitID int64) string {
	if name, ok := s.unitNames[unitID]; ok && name != "" {
		return name
	}
	return "-"
}

func distinctItemIDs(lines []Line) []int64 {
	seen := make(map[int64]struct{}, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ItemID]; ok {
			continue
		}
		seen[line.ItemID] = struct{}{}
		ids = append(ids, line.ItemID)
	}
	return ids
}

func keys(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
