package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/football-career/internal/domain/career"
)

// CareerRepository is the session store for running careers. Values are
// cloned on the way in and out.
type CareerRepository struct {
	mu      sync.RWMutex
	careers map[string]career.Career
}

func NewCareerRepository() *CareerRepository {
	return &CareerRepository{careers: make(map[string]career.Career)}
}

func (r *CareerRepository) GetByID(_ context.Context, careerID string) (career.Career, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.careers[careerID]
	if !ok {
		return career.Career{}, false, nil
	}

	return c.Clone(), true, nil
}

func (r *CareerRepository) Save(_ context.Context, c career.Career) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid career: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.careers[c.ID] = c.Clone()
	return nil
}
