package recipe

import "github.com/winget-powershelll/fourchef/internal/costing"

// Recipe is a dish with preparation instructions.
type Recipe struct {
	RecipeID     int64  `json:"recipe_id"`
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
}

// ListItem is one search hit with its ingredient count.
type ListItem struct {
	RecipeID  int64  `json:"recipe_id"`
	Name      string `json:"name"`
	ItemCount int64  `json:"item_count"`
}

// SearchResult is a page of recipes plus corpus counts.
type SearchResult struct {
	Recipes  []ListItem `json:"recipes"`
	Total    int64      `json:"total"`
	Filtered int64      `json:"filtered"`
}

// Line is one stored ingredient line of a recipe.
type Line struct {
	RecipeItemID int64
	ItemID       int64
	UnitID       int64
	Qty          float64
}

// Ingredient is a costed recipe line.
type Ingredient struct {
	RecipeItemID int64 `json:"recp_item_id"`
	costing.LineResult
}

// Detail is a recipe with its costed ingredient list.
type Detail struct {
	Recipe
	ItemCount    int64        `json:"item_count"`
	TotalCost    float64      `json:"total_cost"`
	MissingCosts int64        `json:"missing_costs"`
	Ingredients  []Ingredient `json:"ingredients"`
}
