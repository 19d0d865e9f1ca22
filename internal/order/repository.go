package order

import "context"

// Repository is the append-only order log.
type Repository interface {
	Append(ctx context.Context, o Order) error
	List(ctx context.Context) ([]Order, error)
}
