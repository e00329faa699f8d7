package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-career/internal/domain/career"
	"github.com/riskibarqy/football-career/internal/domain/player"
	"github.com/riskibarqy/football-career/internal/domain/transfer"
	"github.com/riskibarqy/football-career/internal/platform/resilience"
)

// careerSessions is the load/mutate/save plumbing shared by every service
// that touches a career. Mutations of one career are serialised by locks.
type careerSessions struct {
	careers career.Repository
	players player.Repository
	locks   *resilience.KeyedMutex
	now     func() time.Time
}

func newCareerSessions(careers career.Repository, players player.Repository, locks *resilience.KeyedMutex) careerSessions {
	if locks == nil {
		locks = &resilience.KeyedMutex{}
	}
	return careerSessions{careers: careers, players: players, locks: locks, now: time.Now}
}

func (s *careerSessions) load(ctx context.Context, careerID string) (career.Career, error) {
	careerID = strings.TrimSpace(careerID)
	if careerID == "" {
		return career.Career{}, errors.Wrap(ErrInvalidInput, "career id is required")
	}

	c, ok, err := s.careers.GetByID(ctx, careerID)
	if err != nil {
		return career.Career{}, errors.Wrapf(err, "get career id=%s", careerID)
	}
	if !ok {
		return career.Career{}, errors.Wrapf(ErrNotFound, "career id=%s", careerID)
	}

	return c, nil
}

// mutate runs fn on the locked career and saves it when fn reports a change.
func (s *careerSessions) mutate(ctx context.Context, careerID string, fn func(c *career.Career) (bool, error)) (career.Career, error) {
	careerID = strings.TrimSpace(careerID)
	unlock := s.locks.Lock(careerID)
	defer unlock()

	c, err := s.load(ctx, careerID)
	if err != nil {
		return career.Career{}, err
	}

	changed, err := fn(&c)
	if err != nil {
		return career.Career{}, err
	}
	if !changed {
		return c, nil
	}

	c.UpdatedAt = s.now().UTC()
	if err := s.careers.Save(ctx, c); err != nil {
		return career.Career{}, errors.Wrapf(err, "save career id=%s", c.ID)
	}

	return c, nil
}

// resolvePlayer looks a player up through the career's overrides first.
func (s *careerSessions) resolvePlayer(ctx context.Context, c career.Career, playerID string) (player.Player, bool, error) {
	if p, ok := c.Players[playerID]; ok {
		return p.Clone(), true, nil
	}

	p, ok, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, false, errors.Wrapf(err, "get player id=%s", playerID)
	}

	return p, ok, nil
}

// pool is the world as this career sees it.
func (s *careerSessions) pool(ctx context.Context, c career.Career) ([]player.Player, error) {
	items, err := s.players.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list players")
	}

	out := make([]player.Player, 0, len(items))
	for _, p := range items {
		out = append(out, c.Resolve(p))
	}

	return out, nil
}

// squad resolves the career's roster in squad order. Ids that no longer
// resolve are skipped.
func (s *careerSessions) squad(ctx context.Context, c career.Career) ([]player.Player, error) {
	out := make([]player.Player, 0, len(c.Squad))
	for _, id := range c.Squad {
		p, ok, err := s.resolvePlayer(ctx, c, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (s *careerSessions) recalcWages(ctx context.Context, rules transfer.Rules, c *career.Career) error {
	squad, err := s.squad(ctx, *c)
	if err != nil {
		return err
	}

	c.Budget = c.Budget.RecalcWages(rules, c.Rating, squad)
	return nil
}
