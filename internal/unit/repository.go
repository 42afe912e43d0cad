package unit

import "context"

// Repository defines the data-access contract.
type Repository interface {
	List(ctx context.Context) ([]Unit, error)
}
