package transfer

import (
	"sort"
	"strings"

	"github.com/riskibarqy/football-career/internal/domain/player"
)

// SearchFilters narrows the scouting pool. Zero values disable a filter.
type SearchFilters struct {
	Query      string
	Position   string
	League     string
	Country    string
	MinOverall *int
	MaxOverall *int
	MaxPrice   *int64
	FreeAgents bool
}

// FilterPlayers applies filters, drops players of ownClub, sorts by resolved
// overall descending (stable) and keeps at most limit entries.
func FilterPlayers(pool []player.Player, ownClub string, filters SearchFilters, currentYear, limit int) []player.Player {
	query := strings.ToLower(strings.TrimSpace(filters.Query))
	position := strings.ToUpper(strings.TrimSpace(filters.Position))

	out := make([]player.Player, 0, min(len(pool), 256))
	for _, p := range pool {
		if ownClub != "" && p.ClubName == ownClub {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.DisplayName()), query) {
			continue
		}
		if position != "" && !strings.Contains(strings.ToUpper(p.PositionString()), position) {
			continue
		}
		if filters.League != "" && p.League != filters.League {
			continue
		}
		if filters.Country != "" && p.Nationality != filters.Country {
			continue
		}
		overall := player.ResolveOverall(p)
		if filters.MinOverall != nil && overall < *filters.MinOverall {
			continue
		}
		if filters.MaxOverall != nil && overall > *filters.MaxOverall {
			continue
		}
		if filters.MaxPrice != nil && MarketValue(p) > *filters.MaxPrice {
			continue
		}
		if filters.FreeAgents && !p.IsFreeAgent(currentYear) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return player.ResolveOverall(out[i]) > player.ResolveOverall(out[j])
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
