package recipe

import "context"

// Repository defines the data-access contract.
type Repository interface {
	Search(ctx context.Context, query string, limit, offset int) (*SearchResult, error)
	Get(ctx context.Context, recipeID int64) (*Recipe, error)
	Lines(ctx context.Context, recipeID int64) ([]Line, error)
	ListAll(ctx context.Context) ([]Recipe, error)
}
