package recipe

import (
	"context"
	"math"
	"testing"

	"github.com/winget-powershelll/fourchef/internal/costing"
)

const (
	unitEach int64 = 1
	unitCase int64 = 3
)

func costedFixture() (*InMemoryRepository, *costing.MemoryStore) {
	repo := NewInMemoryRepository()
	repo.Add(
		Recipe{RecipeID: 7, Name: "Marinara", Instructions: "Simmer slowly."},
		Line{RecipeItemID: 71, ItemID: 100, UnitID: unitEach, Qty: 48},
		Line{RecipeItemID: 72, ItemID: 200, UnitID: unitEach, Qty: 2},
	)

	store := costing.NewMemoryStore()
	store.Items[100] = "Tomatoes, Roma"
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
	return repo, store
}

func TestGetDetailCostsLines(t *testing.T) {
	repo, store := costedFixture()
	service := NewService(repo, costing.NewEngine(store, nil))

	detail, err := service.GetDetail(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetDetail: %v", err)
	}

	if detail.Name != "Marinara" || detail.ItemCount != 2 {
		t.Fatalf("unexpected header: %+v", detail.Recipe)
	}
	if math.Abs(detail.TotalCost-240.0) > 1e-9 {
		t.Fatalf("expected total 240.00, got %v", detail.TotalCost)
	}
	if detail.MissingCosts != 1 {
		t.Fatalf("expected 1 missing cost, got %d", detail.MissingCosts)
	}

	if len(detail.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(detail.Ingredients))
	}
	first := detail.Ingredients[0]
	if first.RecipeItemID != 71 || first.Status != costing.StatusOK {
		t.Fatalf("unexpected first ingredient: %+v", first)
	}
	second := detail.Ingredients[1]
	if second.RecipeItemID != 72 || second.Status != costing.StatusMissingPurchUnit {
		t.Fatalf("unexpected second ingredient: %+v", second)
	}
}

func TestGetDetailUnknownRecipe(t *testing.T) {
	repo, store := costedFixture()
	service := NewService(repo, costing.NewEngine(store, nil))

	if _, err := service.GetDetail(context.Background(), 999); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchCountsIngredients(t *testing.T) {
	repo, store := costedFixture()
	repo.Add(Recipe{RecipeID: 8, Name: "Pesto"})
	service := NewService(repo, costing.NewEngine(store, nil))

	result, err := service.Search(context.Background(), "mar", 50, 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Filtered != 1 || len(result.Recipes) != 1 {
		t.Fatalf("expected one hit, got %+v", result)
	}
	if result.Recipes[0].ItemCount != 2 {
		t.Fatalf("expected ingredient count 2, got %d", result.Recipes[0].ItemCount)
	}
}
