package usecase

import (
	"context"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-career/internal/domain/club"
)

type ClubService struct {
	clubs club.Repository
}

func NewClubService(clubs club.Repository) *ClubService {
	return &ClubService{clubs: clubs}
}

// ListClubs returns the club pool ordered by league then name.
func (s *ClubService) ListClubs(ctx context.Context) ([]club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.ListClubs")
	defer span.End()

	items, err := s.clubs.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list clubs")
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].League != items[j].League {
			return items[i].League < items[j].League
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}
