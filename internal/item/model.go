package item

// Item is one purchasable ingredient.
type Item struct {
	ItemID int64  `json:"item_id"`
	Name   string `json:"name"`
	Status *int64 `json:"status,omitempty"`
}

// SearchResult is a page of items plus corpus counts.
type SearchResult struct {
	Items    []Item `json:"items"`
	Total    int64  `json:"total"`
	Filtered int64  `json:"filtered"`
}

// PurchaseUnit is one unit an item's prices may be quoted in.
type PurchaseUnit struct {
	UnitID    int64  `json:"unit_id"`
	UnitName  string `json:"unit_name"`
	IsDefault bool   `json:"is_default"`
}

// VendorPrice is a vendor's current quote for the item.
type VendorPrice struct {
	VendorID   int64    `json:"vendor_id"`
	VendorName string   `json:"vendor_name"`
	Price      *float64 `json:"price"`
	Pack       string   `json:"pack"`
}

// Conversion is a recorded unit equivalence for the item.
type Conversion struct {
	VendorID int64   `json:"vendor_id"`
	UnitA    int64   `json:"unit_id_a"`
	UnitB    int64   `json:"unit_id_b"`
	QtyA     float64 `json:"qty_a"`
	QtyB     float64 `json:"qty_b"`
}

// Usage is one recipe line referencing the item.
type Usage struct {
	RecipeID   int64    `json:"recipe_id"`
	RecipeName string   `json:"recipe_name"`
	Qty        *float64 `json:"qty"`
	UnitName   string   `json:"unit_name"`
}

// Detail is the full inventory view of one item.
type Detail struct {
	Item
	PurchaseUnits []PurchaseUnit `json:"purch_units"`
	Prices        []VendorPrice  `json:"prices"`
	Conversions   []Conversion   `json:"conversions"`
	Usage         []Usage        `json:"usage"`
}
