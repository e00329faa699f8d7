package httpapi

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-career/internal/usecase"
)

type matchdayEntryRequest struct {
	CareerID  string `json:"career_id" validate:"required,max=64"`
	HomeGoals int    `json:"home_goals" validate:"min=0"`
	AwayGoals int    `json:"away_goals" validate:"min=0"`
}

type matchdayRequest struct {
	Results    []matchdayEntryRequest `json:"results" validate:"required,min=1,max=500,dive"`
	MaxWorkers int                    `json:"max_workers" validate:"omitempty,min=1,max=64"`
}

func (h *Handler) ProcessMatchday(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ProcessMatchday")
	defer span.End()

	if h.matchdayService == nil {
		writeError(ctx, w, errors.Wrap(usecase.ErrDependencyUnavailable, "matchday service is not configured"))
		return
	}

	var req matchdayRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.MatchdayInput{
		Results:    make([]usecase.MatchdayEntry, 0, len(req.Results)),
		MaxWorkers: req.MaxWorkers,
	}
	for _, item := range req.Results {
		input.Results = append(input.Results, usecase.MatchdayEntry{
			CareerID:  item.CareerID,
			HomeGoals: item.HomeGoals,
			AwayGoals: item.AwayGoals,
		})
	}

	result, err := h.matchdayService.ProcessMatchday(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "process matchday failed", "results", len(req.Results), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
