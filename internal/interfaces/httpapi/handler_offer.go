package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-career/internal/usecase"
)

type counterOfferRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0,max=1000000000000000"`
}

type matchResultRequest struct {
	HomeGoals int `json:"home_goals" validate:"min=0"`
	AwayGoals int `json:"away_goals" validate:"min=0"`
}

func (h *Handler) ListPendingOffers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListPendingOffers")
	defer span.End()

	careerID := r.PathValue("careerID")
	offers, err := h.transferService.PendingOffers(ctx, careerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list pending offers failed", "career_id", careerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]offerDTO, 0, len(offers))
	for _, offer := range offers {
		items = append(items, offerToDTO(offer))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "AcceptOffer")
	defer span.End()

	careerID := r.PathValue("careerID")
	offerID := r.PathValue("offerID")
	result, err := h.transferService.AcceptOffer(ctx, careerID, offerID)
	if err != nil {
		h.logger.WarnContext(ctx, "accept offer failed", "career_id", careerID, "offer_id", offerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, offerResultToDTO(result))
}

func (h *Handler) RejectOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "RejectOffer")
	defer span.End()

	careerID := r.PathValue("careerID")
	offerID := r.PathValue("offerID")
	result, err := h.transferService.RejectOffer(ctx, careerID, offerID)
	if err != nil {
		h.logger.WarnContext(ctx, "reject offer failed", "career_id", careerID, "offer_id", offerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, offerResultToDTO(result))
}

func (h *Handler) CounterOffer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CounterOffer")
	defer span.End()

	careerID := r.PathValue("careerID")
	offerID := r.PathValue("offerID")
	var req counterOfferRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.transferService.CounterOffer(ctx, careerID, offerID, req.Amount)
	if err != nil {
		h.logger.WarnContext(ctx, "counter offer failed", "career_id", careerID, "offer_id", offerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, offerResultToDTO(result))
}

// SimulateMatch records a played fixture; each one drives one offer tick.
func (h *Handler) SimulateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SimulateMatch")
	defer span.End()

	careerID := r.PathValue("careerID")
	var req matchResultRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	tick, err := h.transferService.OnMatchSimulated(ctx, careerID, usecase.MatchResult{
		HomeGoals: req.HomeGoals,
		AwayGoals: req.AwayGoals,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "simulate match failed", "career_id", careerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, offerTickToDTO(tick))
}
