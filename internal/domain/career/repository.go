package career

import "context"

// Repository stores career sessions. Implementations return copies.
type Repository interface {
	GetByID(ctx context.Context, careerID string) (Career, bool, error)
	Save(ctx context.Context, c Career) error
}
