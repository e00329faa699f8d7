package usecase

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-career/internal/domain/career"
	"github.com/riskibarqy/football-career/internal/domain/player"
	"github.com/riskibarqy/football-career/internal/domain/transfer"
	"github.com/riskibarqy/football-career/internal/platform/resilience"
	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel/attribute"
)

type ScoutService struct {
	careerSessions
	rules transfer.Rules
}

// NewScoutService only reads careers; locks is shared with the writing
// services so every career id maps to one lock table.
func NewScoutService(careers career.Repository, players player.Repository, locks *resilience.KeyedMutex, rules transfer.Rules) *ScoutService {
	return &ScoutService{
		careerSessions: newCareerSessions(careers, players, locks),
		rules:          rules,
	}
}

// SearchPlayers filters the pool from the career's point of view and returns
// fresh scout reports, best rated first.
func (s *ScoutService) SearchPlayers(ctx context.Context, careerID string, filters transfer.SearchFilters) ([]transfer.ScoutReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutService.SearchPlayers", careerAttr(careerID))
	defer span.End()

	if filters.MinOverall != nil && filters.MaxOverall != nil && *filters.MinOverall > *filters.MaxOverall {
		return nil, errors.Wrapf(ErrInvalidInput, "min overall %d is above max overall %d", *filters.MinOverall, *filters.MaxOverall)
	}
	if filters.MaxPrice != nil && *filters.MaxPrice < 0 {
		return nil, errors.Wrap(ErrInvalidInput, "max price must be >= 0")
	}

	c, err := s.load(ctx, careerID)
	if err != nil {
		return nil, err
	}

	pool, err := s.pool(ctx, c)
	if err != nil {
		return nil, err
	}

	matches := transfer.FilterPlayers(pool, c.ClubName, filters, c.CurrentYear(), s.rules.SearchLimit)
	viewer := c.Viewer()
	reports := iter.Map(matches, func(p *player.Player) transfer.ScoutReport {
		return transfer.BuildScoutReport(*p, transfer.ResolveIntelTier(viewer, *p))
	})

	return reports, nil
}

func (s *ScoutService) GetScoutReport(ctx context.Context, careerID, playerID string) (transfer.ScoutReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutService.GetScoutReport", careerAttr(careerID), attribute.String("player.id", playerID))
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return transfer.ScoutReport{}, errors.Wrap(ErrInvalidInput, "player id is required")
	}

	c, err := s.load(ctx, careerID)
	if err != nil {
		return transfer.ScoutReport{}, err
	}

	p, ok, err := s.resolvePlayer(ctx, c, playerID)
	if err != nil {
		return transfer.ScoutReport{}, err
	}
	if !ok {
		return transfer.ScoutReport{}, errors.Wrapf(ErrNotFound, "player id=%s", playerID)
	}

	return transfer.BuildScoutReport(p, transfer.ResolveIntelTier(c.Viewer(), p)), nil
}
