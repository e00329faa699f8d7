package httpapi

import (
	"context"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-career/internal/platform/logging"
	"github.com/riskibarqy/football-career/internal/usecase"
)

type Handler struct {
	careerService   *usecase.CareerService
	clubService     *usecase.ClubService
	scoutService    *usecase.ScoutService
	transferService *usecase.TransferService
	matchdayService *usecase.MatchdayService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	careerService *usecase.CareerService,
	clubService *usecase.ClubService,
	scoutService *usecase.ScoutService,
	transferService *usecase.TransferService,
	matchdayService *usecase.MatchdayService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		careerService:   careerService,
		clubService:     clubService,
		scoutService:    scoutService,
		transferService: transferService,
		matchdayService: matchdayService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListClubs")
	defer span.End()

	clubs, err := h.clubService.ListClubs(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list clubs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubDTO, 0, len(clubs))
	for _, c := range clubs {
		items = append(items, clubToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// decodeRequest reads a JSON body into dst, rejecting unknown fields, then
// runs struct validation.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.Wrap(usecase.ErrInvalidInput, "request body is required")
		}
		return errors.Wrapf(usecase.ErrInvalidInput, "invalid JSON payload: %v", err)
	}

	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return errors.Wrapf(usecase.ErrInvalidInput, "validation failed: %v", err)
	}

	return nil
}
