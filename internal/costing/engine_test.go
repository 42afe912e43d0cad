package costing

import (
	"context"
	"errors"
	"testing"
)

// fixtureStore returns a store with one fully configured item:
// item 100 priced at $120.00 per case by vendor 5, 1 case = 24 each.
func fixtureStore() *MemoryStore {
	s := NewMemoryStore()
	s.Items[100] = "Tomatoes, Roma"
	s.Units[unitEach] = "each"
	s.Units[unitCase] = "case"
	s.EdgeRows = []ConversionEdge{
		{ItemID: 100, VendorID: GlobalVendor, UnitA: unitCase, UnitB: unitEach, QtyA: 1, QtyB: 24},
	}
	s.AssignmentRows = []AssignmentRow{
		{ItemID: 100, UnitID: unitCase, IsDefault: true},
	}
	s.PriceRows = []PriceRow{
		{ItemID: 100, VendorID: 5, Price: 120.0},
	}
	return s
}

func evaluateOne(t *testing.T, store Store, line Line) LineResult {
	t.Helper()
	engine := NewEngine(store, nil)
	result, err := engine.EvaluateAll(context.Background(), []Line{line})
	if err != nil {
		t.Fatalf("EvaluateAll: %v", err)
	}
	if len(result.Lines) != 1 {
		t.Fatalf("expected 1 line result, got %d", len(result.Lines))
	}
	return result.Lines[0]
}

func TestEvaluateConvertedCost(t *testing.T) {
	// 48 each at $120.00/case with 1 case = 24 each is $240.00
	lr := evaluateOne(t, fixtureStore(), Line{ItemID: 100, UnitID: unitEach, Qty: 48})

	if lr.Status != StatusOK {
		t.Fatalf("expected OK, got %q", lr.Status)
	}
	if lr.ExtendedCost == nil || !almostEqual(*lr.ExtendedCost, 240.0) {
		t.Fatalf("expected extended cost 240.00, got %v", lr.ExtendedCost)
	}
	if lr.Hops != 1 {
		t.Fatalf("expected a one-hop conversion, got %d", lr.Hops)
	}
	if lr.CostStatus != "OK (1 hops)" {
		t.Fatalf("unexpected display status %q", lr.CostStatus)
	}
	if lr.ItemName != "Tomatoes, Roma" || lr.UnitName != "each" || lr.PurchUnitName != "case" {
		t.Fatalf("display fields not populated: %+v", lr)
	}
}

func TestEvaluateIdentityUnit(t *testing.T) {
	// recipe unit equals purchase unit: no graph is needed
	s := fixtureStore()
	s.EdgeRows = nil

	lr := evaluateOne(t, s, Line{ItemID: 100, UnitID: unitCase, Qty: 2})

	if lr.Status != StatusOK || lr.Hops != 0 {
		t.Fatalf("expected OK with 0 hops, got %q/%d", lr.Status, lr.Hops)
	}
	if lr.ExtendedCost == nil || !almostEqual(*lr.ExtendedCost, 240.0) {
		t.Fatalf("expected extended cost 240.00, got %v", lr.ExtendedCost)
	}
	if lr.CostStatus != "OK" {
		t.Fatalf("unexpected display status %q", lr.CostStatus)
	}
}

func TestEvaluateTransactionPriceFallback(t *testing.T) {
	s := fixtureStore()
	s.PriceRows = nil
	s.TransactionRows = []TransactionRow{
		{TransID: 1, ItemID: 100, Date: "2025-01-10", VendorID: 5, Price: 95.0},
		{TransID: 2, ItemID: 100, Date: "2025-03-02", VendorID: 8, Price: 110.0},
	}

	lr := evaluateOne(t, s, Line{ItemID: 100, UnitID: unitEach, Qty: 48})

	if lr.Status != StatusOK {
		t.Fatalf("expected OK, got %q", lr.Status)
	}
	if lr.Price == nil || *lr.Price != 110.0 {
		t.Fatalf("expected latest transaction price 110.00, got %v", lr.Price)
	}
	if lr.ExtendedCost == nil || !almostEqual(*lr.ExtendedCost, 220.0) {
		t.Fatalf("expected extended cost 220.00, got %v", lr.ExtendedCost)
	}
	if lr.PriceVendorID != 8 {
		t.Fatalf("expected vendor 8 from the fallback, got %d", lr.PriceVendorID)
	}
}

func TestEvaluateCurrentPriceVendorTieBreak(t *testing.T) {
	// lowest vendor id wins, regardless of price
	s := fixtureStore()
	s.PriceRows = []PriceRow{
		{ItemID: 100, VendorID: 9, Price: 80.0},
		{ItemID: 100, VendorID: 3, Price: 150.0},
	}

	lr := evaluateOne(t, s, Line{ItemID: 100, UnitID: unitCase, Qty: 1})

	if lr.Price == nil || *lr.Price != 150.0 || lr.PriceVendorID != 3 {
		t.Fatalf("expected vendor 3 at 150.00, got vendor %d price %v", lr.PriceVendorID, lr.Price)
	}
}

func TestEvaluateMissingPurchaseUnit(t *testing.T) {
	s := fixtureStore()
	s.AssignmentRows = nil

	lr := evaluateOne(t, s, Line{ItemID: 100, UnitID: unitEach, Qty: 48})

	if lr.Status != StatusMissingPurchUnit {
		t.Fatalf("expected %q, got %q", StatusMissingPurchUnit, lr.Status)
	}
	if lr.ExtendedCost != nil {
		t.Fatalf("expected no cost, got %v", *lr.ExtendedCost)
	}
	if lr.PurchUnitName != "-" {
		t.Fatalf("expected placeholder purchase unit name, got %q", lr.PurchUnitName)
	}
}

func TestEvaluatePurchaseUnitDefaultPreferred(t *testing.T) {
	s := fixtureStore()
	s.AssignmentRows = []AssignmentRow{
		{ItemID: 100, UnitID: unitEach, IsDefault: false},
		{ItemID: 100, UnitID: unitCase, IsDefault: true},
	}

	lr := evaluateOne(t, s, Line{ItemID: 100, UnitID: unitCase, Qty: 1})

	if lr.PurchUnitID != unitCase {
		t.Fatalf("expected default assignment to win, got unit %d", lr.PurchUnitID)
	}
}

func TestEvaluatePurchaseUnitFallbackToFirst(t *testing.T) {
	s := fixtureStore()
	s.AssignmentRows = []AssignmentRow{
		{ItemID: 100, UnitID: unitCase, IsDefault: false},
		{ItemID: 100, UnitID: unitEach, IsDefault: false},
	}

	lr := evaluateOne(t, s, Line{ItemID: 100, UnitID: unitCase, Qty: 1})

	if lr.PurchUnitID != unitCase {
		t.Fatalf("expected first recorded assignment, got unit %d", lr.PurchUnitID)
	}
}

func TestEvaluateMissingPrice(t *testing.T) {
	s := fixtureStore()
	s.PriceRows = nil

	lr := evaluateOne(t, s, Line{ItemID: 100, UnitID: unitEach, Qty: 48})

	if lr.Status != StatusMissingPrice {
		t.Fatalf("expected %q, got %q", StatusMissingPrice, lr.Status)
	}
}

func TestEvaluateNeedsConversion(t *testing.T) {
	s := fixtureStore()
	s.EdgeRows = nil

	lr := evaluateOne(t, s, Line{ItemID: 100, UnitID: unitEach, Qty: 48})

	if lr.Status != StatusNeedsConversion {
		t.Fatalf("expected %q, got %q", StatusNeedsConversion, lr.Status)
	}
}

func TestEvaluateLongChainNeedsConversion(t *testing.T) {
	// an 8-edge chain is beyond the default 6-hop limit
	s := fixtureStore()
	s.AssignmentRows = []AssignmentRow{{ItemID: 100, UnitID: 108, IsDefault: true}}
	s.EdgeRows = nil
	for u := int64(100); u < 108; u++ {
		s.EdgeRows = append(s.EdgeRows, ConversionEdge{
			ItemID: 100, VendorID: GlobalVendor, UnitA: u, UnitB: u + 1, QtyA: 1, QtyB: 2,
		})
	}

	lr := evaluateOne(t, s, Line{ItemID: 100, UnitID: 100, Qty: 1})

	if lr.Status != StatusNeedsConversion {
		t.Fatalf("expected %q, got %q", StatusNeedsConversion, lr.Status)
	}
}

func TestEvaluateMissingQtyPrecedence(t *testing.T) {
	// a missing qty is reported even when everything else would resolve
	for _, qty := range []float64{0, -1} {
		lr := evaluateOne(t, fixtureStore(), Line{ItemID: 100, UnitID: unitEach, Qty: qty})
		if lr.Status != StatusMissingQty {
			t.Fatalf("qty %v: expected %q, got %q", qty, StatusMissingQty, lr.Status)
		}
		if lr.ExtendedCost != nil {
			t.Fatalf("qty %v: expected no cost", qty)
		}
	}
}

func TestEvaluateNoRecipeUnit(t *testing.T) {
	lr := evaluateOne(t, fixtureStore(), Line{ItemID: 100, Qty: 2})

	if lr.Status != StatusNeedsConversion {
		t.Fatalf("expected %q for a line without a unit, got %q", StatusNeedsConversion, lr.Status)
	}
	if lr.UnitName != "-" {
		t.Fatalf("expected placeholder unit name, got %q", lr.UnitName)
	}
}

func TestEvaluateVendorScopedEdges(t *testing.T) {
	// the only conversion edge belongs to vendor 7 but the price vendor is 5,
	// so it must not apply; a global edge must
	s := fixtureStore()
	s.EdgeRows = []ConversionEdge{
		{ItemID: 100, VendorID: 7, UnitA: unitCase, UnitB: unitEach, QtyA: 1, QtyB: 24},
	}

	lr := evaluateOne(t, s, Line{ItemID: 100, UnitID: unitEach, Qty: 48})
	if lr.Status != StatusNeedsConversion {
		t.Fatalf("foreign vendor edge applied: got %q", lr.Status)
	}

	s.EdgeRows[0].VendorID = 5
	lr = evaluateOne(t, s, Line{ItemID: 100, UnitID: unitEach, Qty: 48})
	if lr.Status != StatusOK {
		t.Fatalf("price vendor edge should apply: got %q", lr.Status)
	}

	s.EdgeRows[0].VendorID = GlobalVendor
	lr = evaluateOne(t, s, Line{ItemID: 100, UnitID: unitEach, Qty: 48})
	if lr.Status != StatusOK {
		t.Fatalf("global edge should apply: got %q", lr.Status)
	}
}

func TestEvaluateAllAggregates(t *testing.T) {
	s := fixtureStore()
	s.Items[200] = "Basil"
	s.Items[300] = "Olive Oil"
	s.Units[unitPound] = "pound"
	s.AssignmentRows = append(s.AssignmentRows,
		AssignmentRow{ItemID: 200, UnitID: unitPound, IsDefault: true},
		AssignmentRow{ItemID: 300, UnitID: unitCase, IsDefault: true},
	)
	// item 200 has no price at all; item 300 is $5.00 per case
	s.PriceRows = append(s.PriceRows, PriceRow{ItemID: 300, VendorID: 2, Price: 5.0})

	engine := NewEngine(s, nil)
	result, err := engine.EvaluateAll(context.Background(), []Line{
		{ItemID: 300, UnitID: unitCase, Qty: 2},  // $10.00
		{ItemID: 200, UnitID: unitPound, Qty: 1}, // missing price
		{ItemID: 300, UnitID: unitCase, Qty: 1},  // $5.00
	})
	if err != nil {
		t.Fatalf("EvaluateAll: %v", err)
	}

	if !almostEqual(result.TotalCost, 15.0) {
		t.Fatalf("expected total 15.00, got %v", result.TotalCost)
	}
	if result.MissingCosts != 1 {
		t.Fatalf("expected 1 missing cost, got %d", result.MissingCosts)
	}
	if len(result.Lines) != 3 {
		t.Fatalf("expected results in input order, got %d lines", len(result.Lines))
	}
	if result.Lines[1].Status != StatusMissingPrice {
		t.Fatalf("expected second line to miss its price, got %q", result.Lines[1].Status)
	}
}

func TestEvaluateAllStoreFailure(t *testing.T) {
	s := fixtureStore()
	s.Err = errors.New("connection refused")

	engine := NewEngine(s, nil)
	if _, err := engine.EvaluateAll(context.Background(), []Line{{ItemID: 100, UnitID: unitEach, Qty: 1}}); err == nil {
		t.Fatal("expected a store failure to abort the batch")
	}
}
