package httpapi

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-career/internal/domain/transfer"
	"github.com/riskibarqy/football-career/internal/usecase"
)

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SearchPlayers")
	defer span.End()

	careerID := r.PathValue("careerID")
	filters, err := parseSearchFilters(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	reports, err := h.scoutService.SearchPlayers(ctx, careerID, filters)
	if err != nil {
		h.logger.WarnContext(ctx, "search players failed", "career_id", careerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scoutReportDTO, 0, len(reports))
	for _, report := range reports {
		items = append(items, scoutReportToDTO(report))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetScoutReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetScoutReport")
	defer span.End()

	careerID := r.PathValue("careerID")
	playerID := r.PathValue("playerID")
	report, err := h.scoutService.GetScoutReport(ctx, careerID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get scout report failed", "career_id", careerID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoutReportToDTO(report))
}

// parseSearchFilters reads q, position, league, country, min_overall,
// max_overall, max_price and free_agents.
func parseSearchFilters(query url.Values) (transfer.SearchFilters, error) {
	filters := transfer.SearchFilters{
		Query:    strings.TrimSpace(query.Get("q")),
		Position: strings.TrimSpace(query.Get("position")),
		League:   strings.TrimSpace(query.Get("league")),
		Country:  strings.TrimSpace(query.Get("country")),
	}

	var err error
	if filters.MinOverall, err = optionalIntParam(query, "min_overall"); err != nil {
		return transfer.SearchFilters{}, err
	}
	if filters.MaxOverall, err = optionalIntParam(query, "max_overall"); err != nil {
		return transfer.SearchFilters{}, err
	}
	if raw := strings.TrimSpace(query.Get("max_price")); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return transfer.SearchFilters{}, errors.Wrapf(usecase.ErrInvalidInput, "max_price must be an integer, got %q", raw)
		}
		filters.MaxPrice = &v
	}
	if raw := strings.TrimSpace(query.Get("free_agents")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return transfer.SearchFilters{}, errors.Wrapf(usecase.ErrInvalidInput, "free_agents must be a boolean, got %q", raw)
		}
		filters.FreeAgents = v
	}

	return filters, nil
}

func optionalIntParam(query url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Wrapf(usecase.ErrInvalidInput, "%s must be an integer, got %q", key, raw)
	}
	return &v, nil
}
