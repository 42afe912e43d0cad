package report

import "context"

// Repository defines the data-access contract. The missing-data report is the
// one table this service rewrites; everything else in the store is read-only.
type Repository interface {
	ReplaceMissingData(ctx context.Context, rows []MissingDataRow) error
	ListMissingData(ctx context.Context) ([]MissingDataRow, error)
	CountItemsMissingPurchaseUnit(ctx context.Context) (int64, error)
}
