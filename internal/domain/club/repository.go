package club

import "context"

// Repository describes read access to the club pool.
type Repository interface {
	List(ctx context.Context) ([]Club, error)
	GetByID(ctx context.Context, clubID string) (Club, bool, error)
}
