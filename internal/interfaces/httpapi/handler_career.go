package httpapi

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-career/internal/usecase"
)

type startCareerRequest struct {
	ClubID     string `json:"club_id" validate:"required,max=64"`
	StartDate  string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	WindowOpen *bool  `json:"window_open"`
}

type setTransferWindowRequest struct {
	Open *bool `json:"open" validate:"required"`
}

type advanceDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (h *Handler) StartCareer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "StartCareer")
	defer span.End()

	var req startCareerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.StartCareerInput{ClubID: req.ClubID, WindowOpen: true}
	if req.WindowOpen != nil {
		input.WindowOpen = *req.WindowOpen
	}
	if req.StartDate != "" {
		date, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			writeError(ctx, w, errors.Wrapf(usecase.ErrInvalidInput, "invalid start_date: %v", err))
			return
		}
		input.StartDate = date
	}

	c, err := h.careerService.StartCareer(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "start career failed", "club_id", req.ClubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, careerToDTO(c))
}

func (h *Handler) GetCareer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetCareer")
	defer span.End()

	careerID := r.PathValue("careerID")
	c, err := h.careerService.GetCareer(ctx, careerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get career failed", "career_id", careerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, careerToDTO(c))
}

func (h *Handler) SetTransferWindow(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SetTransferWindow")
	defer span.End()

	careerID := r.PathValue("careerID")
	var req setTransferWindowRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	c, err := h.careerService.SetTransferWindow(ctx, careerID, *req.Open)
	if err != nil {
		h.logger.WarnContext(ctx, "set transfer window failed", "career_id", careerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, careerToDTO(c))
}

func (h *Handler) AdvanceDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "AdvanceDate")
	defer span.End()

	careerID := r.PathValue("careerID")
	var req advanceDateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(ctx, w, errors.Wrapf(usecase.ErrInvalidInput, "invalid date: %v", err))
		return
	}

	c, err := h.careerService.AdvanceDate(ctx, careerID, date)
	if err != nil {
		h.logger.WarnContext(ctx, "advance date failed", "career_id", careerID, "date", req.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, careerToDTO(c))
}

func (h *Handler) ListSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListSquad")
	defer span.End()

	careerID := r.PathValue("careerID")
	squad, err := h.careerService.ListSquad(ctx, careerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list squad failed", "career_id", careerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]squadPlayerDTO, 0, len(squad))
	for _, p := range squad {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
