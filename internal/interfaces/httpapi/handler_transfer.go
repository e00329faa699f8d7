package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-career/internal/domain/transfer"
	"github.com/riskibarqy/football-career/internal/usecase"
)

type placeBidRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Amount   *int64 `json:"amount" validate:"required,min=0,max=1000000000000000"`
}

type contractTermsRequest struct {
	LengthYears  int   `json:"length_years" validate:"required,min=1,max=10"`
	WeeklyWage   int64 `json:"weekly_wage" validate:"min=0,max=1000000000000000"`
	SigningBonus int64 `json:"signing_bonus" validate:"min=0,max=1000000000000000"`
}

type contractRequest struct {
	PlayerID string               `json:"player_id" validate:"required,max=64"`
	Fee      int64                `json:"fee" validate:"min=0,max=1000000000000000"`
	Contract contractTermsRequest `json:"contract"`
}

type sellPlayerRequest struct {
	PlayerID    string `json:"player_id" validate:"required,max=64"`
	Amount      int64  `json:"amount" validate:"min=0,max=1000000000000000"`
	BuyerClubID string `json:"buyer_club_id" validate:"omitempty,max=64"`
}

func (req contractTermsRequest) toOffer() transfer.ContractOffer {
	return transfer.ContractOffer{
		LengthYears:  req.LengthYears,
		WeeklyWage:   req.WeeklyWage,
		SigningBonus: req.SigningBonus,
	}
}

func (h *Handler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "PlaceBid")
	defer span.End()

	careerID := r.PathValue("careerID")
	var req placeBidRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	outcome, err := h.transferService.PlaceBid(ctx, usecase.PlaceBidInput{
		CareerID: careerID,
		PlayerID: req.PlayerID,
		Amount:   *req.Amount,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "place bid failed", "career_id", careerID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bidOutcomeToDTO(outcome))
}

func (h *Handler) NegotiateContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "NegotiateContract")
	defer span.End()

	careerID := r.PathValue("careerID")
	var req contractRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.transferService.NegotiateContract(ctx, usecase.NegotiateContractInput{
		CareerID: careerID,
		PlayerID: req.PlayerID,
		Fee:      req.Fee,
		Offer:    req.Contract.toOffer(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "negotiate contract failed", "career_id", careerID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, contractResultToDTO(result))
}

func (h *Handler) FinaliseTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "FinaliseTransfer")
	defer span.End()

	careerID := r.PathValue("careerID")
	var req contractRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.transferService.FinaliseTransfer(ctx, usecase.FinaliseTransferInput{
		CareerID: careerID,
		PlayerID: req.PlayerID,
		Fee:      req.Fee,
		Offer:    req.Contract.toOffer(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "finalise transfer failed", "career_id", careerID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dealResultToDTO(result))
}

func (h *Handler) SellPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SellPlayer")
	defer span.End()

	careerID := r.PathValue("careerID")
	var req sellPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.transferService.SellPlayer(ctx, usecase.SellPlayerInput{
		CareerID:    careerID,
		PlayerID:    req.PlayerID,
		Amount:      req.Amount,
		BuyerClubID: req.BuyerClubID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "sell player failed", "career_id", careerID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dealResultToDTO(result))
}

func (h *Handler) GetBudget(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetBudget")
	defer span.End()

	careerID := r.PathValue("careerID")
	budget, err := h.transferService.Budget(ctx, careerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get budget failed", "career_id", careerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, budgetToDTO(budget))
}

func (h *Handler) RecalcWages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "RecalcWages")
	defer span.End()

	careerID := r.PathValue("careerID")
	budget, err := h.transferService.RecalcWages(ctx, careerID)
	if err != nil {
		h.logger.WarnContext(ctx, "recalc wages failed", "career_id", careerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, budgetToDTO(budget))
}

func (h *Handler) ListTransferHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTransferHistory")
	defer span.End()

	careerID := r.PathValue("careerID")
	history, err := h.transferService.History(ctx, careerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list transfer history failed", "career_id", careerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]historyEntryDTO, 0, len(history))
	for _, entry := range history {
		items = append(items, historyEntryToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
