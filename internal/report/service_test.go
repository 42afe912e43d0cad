package report

import (
	"context"
	"testing"

	"github.com/winget-powershelll/fourchef/internal/costing"
	"github.com/winget-powershelll/fourchef/internal/recipe"
)

type memoryRepository struct {
	rows             []MissingDataRow
	itemsMissingUnit int64
}

func (m *memoryRepository) ReplaceMissingData(_ context.Context, rows []MissingDataRow) error {
	m.rows = rows
	return nil
}

func (m *memoryRepository) ListMissingData(_ context.Context) ([]MissingDataRow, error) {
	return m.rows, nil
}

func (m *memoryRepository) CountItemsMissingPurchaseUnit(_ context.Context) (int64, error) {
	return m.itemsMissingUnit, nil
}

func reportFixture() (*memoryRepository, *Service) {
	const (
		unitEach int64 = 1
		unitCase int64 = 3
	)

	store := costing.NewMemoryStore()
	store.Items[100] = "Tomatoes"
	store.Items[200] = "Basil"
	store.Units[unitEach] = "each"
	store.Units[unitCase] = "case"
	store.EdgeRows = []costing.ConversionEdge{
		{ItemID: 100, VendorID: costing.GlobalVendor, UnitA: unitCase, UnitB: unitEach, QtyA: 1, QtyB: 24},
	}
	store.AssignmentRows = []costing.AssignmentRow{
		{ItemID: 100, UnitID: unitCase, IsDefault: true},
	}
	store.PriceRows = []costing.PriceRow{
		{ItemID: 100, VendorID: 5, Price: 120.0},
	}

	recipes := recipe.NewInMemoryRepository()
	// fully costable
	recipes.Add(
		recipe.Recipe{RecipeID: 1, Name: "Marinara"},
		recipe.Line{RecipeItemID: 11, ItemID: 100, UnitID: unitEach, Qty: 48},
	)
	// basil has no purchase unit, and one line has no qty
	recipes.Add(
		recipe.Recipe{RecipeID: 2, Name: "Pesto"},
		recipe.Line{RecipeItemID: 21, ItemID: 200, UnitID: unitEach, Qty: 2},
		recipe.Line{RecipeItemID: 22, ItemID: 100, UnitID: unitEach, Qty: 0},
	)
	// no lines at all: skipped entirely
	recipes.Add(recipe.Recipe{RecipeID: 3, Name: "Stock"})

	repo := &memoryRepository{itemsMissingUnit: 1}
	service := NewService(repo, recipes, costing.NewEngine(store, nil), nil)
	return repo, service
}

func TestRecalculateRecordsGaps(t *testing.T) {
	repo, service := reportFixture()

	summary, err := service.Recalculate(context.Background())
	if err != nil {
		t.Fatalf("Recalculate: %v", err)
	}

	if summary.RecipesScanned != 3 {
		t.Fatalf("expected 3 recipes scanned, got %d", summary.RecipesScanned)
	}
	if summary.RecipesWithGaps != 1 {
		t.Fatalf("expected 1 recipe with gaps, got %d", summary.RecipesWithGaps)
	}

	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 report row, got %d", len(repo.rows))
	}
	row := repo.rows[0]
	if row.RecipeID != 2 || row.MissingUnit != 1 || row.MissingQty != 1 {
		t.Fatalf("unexpected report row: %+v", row)
	}
}

func TestOverviewAggregates(t *testing.T) {
	repo, service := reportFixture()
	repo.rows = []MissingDataRow{
		{RecipeID: 2, RecipeName: "Pesto", NeedsConversion: 2},
		{RecipeID: 4, RecipeName: "Aioli", NeedsConversion: 1, MissingPrice: 1},
	}

	overview, err := service.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}

	if overview.ItemsMissingPurchUnit != 1 {
		t.Fatalf("expected 1 item missing a purchase unit, got %d", overview.ItemsMissingPurchUnit)
	}
	if overview.RecipesWithGaps != 2 {
		t.Fatalf("expected 2 recipes with gaps, got %d", overview.RecipesWithGaps)
	}
	if overview.LinesNeedingConversion != 3 {
		t.Fatalf("expected 3 lines needing conversion, got %d", overview.LinesNeedingConversion)
	}
}
