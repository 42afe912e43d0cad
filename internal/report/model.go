package report

// MissingDataRow summarizes the cost blockers of one recipe.
type MissingDataRow struct {
	RecipeID        int64  `json:"recipe_id"`
	RecipeName      string `json:"recipe_name"`
	MissingQty      int64  `json:"missing_qty"`
	MissingUnit     int64  `json:"missing_unit"`
	MissingPrice    int64  `json:"missing_price"`
	NeedsConversion int64  `json:"needs_conversion"`
}

// Overview is the dashboard summary of data gaps.
type Overview struct {
	ItemsMissingPurchUnit  int64 `json:"items_missing_purch_unit"`
	RecipesWithGaps        int64 `json:"recipes_with_gaps"`
	LinesNeedingConversion int64 `json:"lines_needing_conversion"`
}

// Summary reports what a recalculation run covered.
type Summary struct {
	RecipesScanned  int64 `json:"recipes_scanned"`
	RecipesWithGaps int64 `json:"recipes_with_gaps"`
}
