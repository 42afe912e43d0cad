package costing

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DefaultMaxHops bounds derived conversions. One or two intermediate units is
// legitimate (each -> dozen -> case); longer chains are almost always data
// noise.
const DefaultMaxHops = 6

// Engine resolves monetary costs for quantities of items expressed in recipe
// units. It is stateless across calls and safe for concurrent use as long as
// the store supports concurrent readers.
type Engine struct {
	store   Store
	maxHops int
	logger  *zap.Logger
}

// NewEngine creates an engine with the default hop limit.
func NewEngine(store Store, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		store:   store,
		maxHops: DefaultMaxHops,
		logger:  logger,
	}
}

// EvaluateAll costs a batch of lines. Data gaps (no price, no purchase unit,
// no conversion path, non-positive quantity) never fail the call: they are
// reported as the affected line's status and the rest of the batch still
// evaluates. Only store failures return an error.
func (e *Engine) EvaluateAll(ctx context.Context, lines []Line) (*Result, error) {
	snap, err := loadSnapshot(ctx, e.store, lines)
	if err != nil {
		return nil, fmt.Errorf("load costing data: %w", err)
	}

	result := &Result{Lines: make([]LineResult, 0, len(lines))}
	for _, line := range lines {
		lr := e.evaluate(snap, line)
		if lr.ExtendedCost != nil {
			result.TotalCost += *lr.ExtendedCost
		} else {
			result.MissingCosts++
		}
		result.Lines = append(result.Lines, lr)
	}

	e.logger.Debug("evaluated batch",
		zap.Int("lines", len(lines)),
		zap.Float64("total_cost", result.TotalCost),
		zap.Int64("missing_costs", result.MissingCosts),
	)

	return result, nil
}

// evaluate resolves one line against the snapshot. The checks run in a fixed
// precedence order so the operator always sees the single most actionable
// blocker: qty, then purchase unit, then price, then conversion.
func (e *Engine) evaluate(snap *snapshot, line Line) LineResult {
	lr := LineResult{
		ItemID:   line.ItemID,
		ItemName: snap.itemName(line.ItemID),
		UnitID:   line.UnitID,
		UnitName: "-",
		Qty:      line.Qty,
	}
	if line.UnitID != 0 {
		lr.UnitName = snap.unitName(line.UnitID)
	}

	purchUnitID, hasPurchUnit := snap.purchaseUnit(line.ItemID)
	lr.PurchUnitName = "-"
	if hasPurchUnit {
		lr.PurchUnitID = purchUnitID
		lr.PurchUnitName = snap.unitName(purchUnitID)
	}

	quote, hasPrice := snap.price(line.ItemID)
	if hasPrice {
		price := quote.Price
		lr.Price = &price
		lr.PriceVendorID = quote.VendorID
	}

	factor, hops, hasFactor := 0.0, 0, false
	if line.UnitID != 0 && hasPurchUnit {
		if line.UnitID == purchUnitID {
			factor, hasFactor = 1.0, true
		} else {
			edges := snap.edgesFor(line.ItemID, quote.VendorID, hasPrice)
			factor, hops, hasFactor = buildGraph(edges).resolve(line.UnitID, purchUnitID, e.maxHops)
		}
	}

	switch {
	case line.Qty <= 0:
		lr.Status = StatusMissingQty
	case !hasPurchUnit:
		lr.Status = StatusMissingPurchUnit
	case !hasPrice:
		lr.Status = StatusMissingPrice
	case !hasFactor:
		lr.Status = StatusNeedsConversion
	default:
		cost := line.Qty * factor * quote.Price
		lr.ExtendedCost = &cost
		lr.Hops = hops
		lr.Status = StatusOK
	}
	lr.CostStatus = lr.Status.Display(lr.Hops)

	return lr
}
