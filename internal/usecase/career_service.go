package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-career/internal/domain/career"
	"github.com/riskibarqy/football-career/internal/domain/club"
	"github.com/riskibarqy/football-career/internal/domain/player"
	"github.com/riskibarqy/football-career/internal/domain/transfer"
	idgen "github.com/riskibarqy/football-career/internal/platform/id"
	"github.com/riskibarqy/football-career/internal/platform/logging"
	"github.com/riskibarqy/football-career/internal/platform/resilience"
	"go.opentelemetry.io/otel/attribute"
)

// StartCareerInput selects the user's club. A zero StartDate begins on
// July 1st of the current year.
type StartCareerInput struct {
	ClubID     string
	StartDate  time.Time
	WindowOpen bool
}

type CareerService struct {
	careerSessions
	clubs  club.Repository
	rules  transfer.Rules
	idGen  idgen.Generator
	logger *logging.Logger
}

func NewCareerService(
	careers career.Repository,
	clubs club.Repository,
	players player.Repository,
	locks *resilience.KeyedMutex,
	rules transfer.Rules,
	idGen idgen.Generator,
	logger *logging.Logger,
) *CareerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &CareerService{
		careerSessions: newCareerSessions(careers, players, locks),
		clubs:          clubs,
		rules:          rules,
		idGen:          idGen,
		logger:         logger,
	}
}

func (s *CareerService) StartCareer(ctx context.Context, input StartCareerInput) (career.Career, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.StartCareer", attribute.String("club.id", input.ClubID))
	defer span.End()

	input.ClubID = strings.TrimSpace(input.ClubID)
	if input.ClubID == "" {
		return career.Career{}, errors.Wrap(ErrInvalidInput, "club id is required")
	}

	selected, ok, err := s.clubs.GetByID(ctx, input.ClubID)
	if err != nil {
		return career.Career{}, errors.Wrapf(err, "get club id=%s", input.ClubID)
	}
	if !ok {
		return career.Career{}, errors.Wrapf(ErrNotFound, "club id=%s", input.ClubID)
	}

	pool, err := s.players.List(ctx)
	if err != nil {
		return career.Career{}, errors.Wrap(err, "list players")
	}

	squad := make([]player.Player, 0, 32)
	squadIDs := make([]string, 0, 32)
	for _, p := range pool {
		if p.ClubName == selected.Name {
			squad = append(squad, p)
			squadIDs = append(squadIDs, p.ID)
		}
	}

	careerID, err := s.idGen.NewID()
	if err != nil {
		return career.Career{}, errors.Wrap(err, "generate career id")
	}

	now := s.now().UTC()
	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = time.Date(now.Year(), time.July, 1, 0, 0, 0, 0, time.UTC)
	}

	c := career.Career{
		ID:          careerID,
		ClubID:      selected.ID,
		ClubName:    selected.Name,
		League:      selected.League,
		Country:     selected.Country,
		Rating:      selected.Overall,
		CurrentDate: startDate.UTC(),
		WindowOpen:  input.WindowOpen,
		Budget: transfer.Budget{
			TransferBudget: transfer.OpeningBudget(s.rules, selected),
		}.RecalcWages(s.rules, selected.Overall, squad),
		Squad:     squadIDs,
		Players:   make(map[string]player.Player),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.careers.Save(ctx, c); err != nil {
		return career.Career{}, errors.Wrap(err, "save career")
	}

	s.logger.InfoContext(ctx, "career started",
		"career_id", c.ID,
		"club_id", c.ClubID,
		"squad_size", len(c.Squad),
		"transfer_budget", c.Budget.TransferBudget,
		"wage_budget", c.Budget.WageBudget,
	)
	return c, nil
}

func (s *CareerService) GetCareer(ctx context.Context, careerID string) (career.Career, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.GetCareer", careerAttr(careerID))
	defer span.End()

	return s.load(ctx, careerID)
}

// SetTransferWindow opens or shuts the window. It only gates outgoing bids.
func (s *CareerService) SetTransferWindow(ctx context.Context, careerID string, open bool) (career.Career, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.SetTransferWindow", careerAttr(careerID))
	defer span.End()

	return s.mutate(ctx, careerID, func(c *career.Career) (bool, error) {
		if c.WindowOpen == open {
			return false, nil
		}
		c.WindowOpen = open
		return true, nil
	})
}

// AdvanceDate moves the in-game calendar. It never goes backwards.
func (s *CareerService) AdvanceDate(ctx context.Context, careerID string, date time.Time) (career.Career, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.AdvanceDate", careerAttr(careerID))
	defer span.End()

	if date.IsZero() {
		return career.Career{}, errors.Wrap(ErrInvalidInput, "date is required")
	}

	return s.mutate(ctx, careerID, func(c *career.Career) (bool, error) {
		date = date.UTC()
		if date.Before(c.CurrentDate) {
			return false, errors.Wrapf(ErrInvalidInput, "date %s is before current date %s", date.Format(time.DateOnly), c.CurrentDate.Format(time.DateOnly))
		}
		if date.Equal(c.CurrentDate) {
			return false, nil
		}
		c.CurrentDate = date
		return true, nil
	})
}

func (s *CareerService) ListSquad(ctx context.Context, careerID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CareerService.ListSquad", careerAttr(careerID))
	defer span.End()

	c, err := s.load(ctx, careerID)
	if err != nil {
		return nil, err
	}

	return s.squad(ctx, c)
}
