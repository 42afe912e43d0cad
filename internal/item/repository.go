package item

import "context"

// Repository defines the data-access contract.
type Repository interface {
	Search(ctx context.Context, query string, limit, offset int) (*SearchResult, error)
	Get(ctx context.Context, itemID int64) (*Item, error)
	PurchaseUnits(ctx context.Context, itemID int64) ([]PurchaseUnit, error)
	Prices(ctx context.Context, itemID int64) ([]VendorPrice, error)
	Conversions(ctx context.Context, itemID int64) ([]Conversion, error)
	Usage(ctx context.Context, itemID int64, limit int) ([]Usage, error)
}
