package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-career/internal/domain/career"
	"github.com/riskibarqy/football-career/internal/domain/club"
	"github.com/riskibarqy/football-career/internal/domain/player"
	"github.com/riskibarqy/football-career/internal/domain/transfer"
	idgen "github.com/riskibarqy/football-career/internal/platform/id"
	"github.com/riskibarqy/football-career/internal/platform/logging"
	"github.com/riskibarqy/football-career/internal/platform/random"
	"github.com/riskibarqy/football-career/internal/platform/resilience"
)

type PlaceBidInput struct {
	CareerID string
	PlayerID string
	Amount   int64
}

// NegotiateContractInput carries personal terms for a player whose fee has
// already been agreed. Fee is zero for free agents.
type NegotiateContractInput struct {
	CareerID string
	PlayerID string
	Fee      int64
	Offer    transfer.ContractOffer
}

type FinaliseTransferInput struct {
	CareerID string
	PlayerID string
	Fee      int64
	Offer    transfer.ContractOffer
}

// SellPlayerInput sells a squad member. BuyerClubID is optional; without it
// the player leaves for no named club.
type SellPlayerInput struct {
	CareerID    string
	PlayerID    string
	Amount      int64
	BuyerClubID string
}

// ContractResult is the player's answer. When the offer is accepted the deal
// is finalised in the same step and Player holds the signed player.
type ContractResult struct {
	transfer.ContractOutcome
	Player *player.Player
	Budget transfer.Budget
}

// DealResult reports a finalisation or a sale.
type DealResult struct {
	Success bool
	Status  transfer.Status
	Message string
	Fee     int64
	Player  *player.Player
	Budget  transfer.Budget
}

type TransferService struct {
	careerSessions
	clubs  club.Repository
	rules  transfer.Rules
	rng    random.Source
	idGen  idgen.Generator
	logger *logging.Logger
}

func NewTransferService(
	careers career.Repository,
	clubs club.Repository,
	players player.Repository,
	locks *resilience.KeyedMutex,
	rules transfer.Rules,
	rng random.Source,
	idGen idgen.Generator,
	logger *logging.Logger,
) *TransferService {
	if logger == nil {
		logger = logging.Default()
	}
	if rng == nil {
		rng = random.NewSeeded(0)
	}

	return &TransferService{
		careerSessions: newCareerSessions(careers, players, locks),
		clubs:          clubs,
		rules:          rules,
		rng:            rng,
		idGen:          idGen,
		logger:         logger,
	}
}

// PlaceBid asks the selling club for a fee. Bids leave no state behind.
func (s *TransferService) PlaceBid(ctx context.Context, input PlaceBidInput) (transfer.BidOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.PlaceBid", careerAttr(input.CareerID))
	defer span.End()

	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if !transfer.ValidAmount(input.Amount) {
		return transfer.BidOutcome{}, errors.Wrapf(ErrInvalidInput, "bid amount must be between 0 and %d", transfer.MaxAmount)
	}

	c, err := s.load(ctx, input.CareerID)
	if err != nil {
		return transfer.BidOutcome{}, err
	}
	if input.PlayerID != "" && c.InSquad(input.PlayerID) {
		return transfer.BidOutcome{}, errors.Wrapf(ErrInvalidInput, "player id=%s already plays for %s", input.PlayerID, c.ClubName)
	}

	var target *player.Player
	if input.PlayerID != "" {
		p, ok, err := s.resolvePlayer(ctx, c, input.PlayerID)
		if err != nil {
			return transfer.BidOutcome{}, err
		}
		if ok {
			target = &p
		}
	}

	out := transfer.EvaluateBid(s.rules, s.rng, transfer.BidInput{
		Player:         target,
		Amount:         input.Amount,
		TransferBudget: c.Budget.TransferBudget,
		WindowOpen:     c.WindowOpen,
		CurrentYear:    c.CurrentYear(),
	})

	s.logger.InfoContext(ctx, "bid evaluated",
		"career_id", c.ID,
		"player_id", input.PlayerID,
		"amount", input.Amount,
		"status", string(out.Status),
	)
	return out, nil
}

// NegotiateContract scores personal terms and completes the signing when the
// player accepts.
func (s *TransferService) NegotiateContract(ctx context.Context, input NegotiateContractInput) (ContractResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.NegotiateContract", careerAttr(input.CareerID))
	defer span.End()

	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if err := validateContractTerms(input.PlayerID, input.Fee, input.Offer); err != nil {
		return ContractResult{}, err
	}

	var result ContractResult
	_, err := s.mutate(ctx, input.CareerID, func(c *career.Career) (bool, error) {
		if c.InSquad(input.PlayerID) {
			return false, errors.Wrapf(ErrInvalidInput, "player id=%s already plays for %s", input.PlayerID, c.ClubName)
		}

		p, ok, err := s.resolvePlayer(ctx, *c, input.PlayerID)
		if err != nil {
			return false, err
		}
		if !ok {
			result = ContractResult{
				ContractOutcome: transfer.ContractOutcome{Status: transfer.StatusNotFound, Message: "Player not found."},
				Budget:          c.Budget,
			}
			return false, nil
		}

		outcome := transfer.EvaluateContract(s.rules, transfer.ContractInput{
			Player:         p,
			Offer:          input.Offer,
			Fee:            input.Fee,
			WageBudget:     c.Budget.WageBudget,
			TransferBudget: c.Budget.TransferBudget,
			ClubRating:     c.Rating,
		})
		result = ContractResult{ContractOutcome: outcome, Budget: c.Budget}
		if outcome.Status != transfer.StatusAccepted {
			return false, nil
		}

		signed, err := s.finalise(ctx, c, p, input.Fee, input.Offer)
		if err != nil {
			return false, err
		}
		result.Player = &signed
		result.Budget = c.Budget
		return true, nil
	})
	if err != nil {
		return ContractResult{}, err
	}

	s.logger.InfoContext(ctx, "contract negotiated",
		"career_id", input.CareerID,
		"player_id", input.PlayerID,
		"status", string(result.Status),
		"score", result.Score,
	)
	return result, nil
}

// FinaliseTransfer completes a signing on the given terms without another
// round of negotiation. Only the fee is debited.
func (s *TransferService) FinaliseTransfer(ctx context.Context, input FinaliseTransferInput) (DealResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.FinaliseTransfer", careerAttr(input.CareerID))
	defer span.End()

	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if err := validateContractTerms(input.PlayerID, input.Fee, input.Offer); err != nil {
		return DealResult{}, err
	}

	var result DealResult
	_, err := s.mutate(ctx, input.CareerID, func(c *career.Career) (bool, error) {
		if c.InSquad(input.PlayerID) {
			return false, errors.Wrapf(ErrInvalidInput, "player id=%s already plays for %s", input.PlayerID, c.ClubName)
		}

		p, ok, err := s.resolvePlayer(ctx, *c, input.PlayerID)
		if err != nil {
			return false, err
		}
		if !ok {
			result = DealResult{Status: transfer.StatusNotFound, Message: "Player not found.", Budget: c.Budget}
			return false, nil
		}

		signed, err := s.finalise(ctx, c, p, input.Fee, input.Offer)
		if err != nil {
			return false, err
		}
		result = DealResult{
			Success: true,
			Status:  transfer.StatusCompleted,
			Message: fmt.Sprintf("%s joins %s for %s.", signed.DisplayName(), c.ClubName, transfer.FormatMoney(input.Fee)),
			Fee:     input.Fee,
			Player:  &signed,
			Budget:  c.Budget,
		}
		return true, nil
	})
	if err != nil {
		return DealResult{}, err
	}

	return result, nil
}

func (s *TransferService) SellPlayer(ctx context.Context, input SellPlayerInput) (DealResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.SellPlayer", careerAttr(input.CareerID))
	defer span.End()

	input.PlayerID = strings.TrimSpace(input.PlayerID)
	input.BuyerClubID = strings.TrimSpace(input.BuyerClubID)
	if input.PlayerID == "" {
		return DealResult{}, errors.Wrap(ErrInvalidInput, "player id is required")
	}
	if !transfer.ValidAmount(input.Amount) {
		return DealResult{}, errors.Wrapf(ErrInvalidInput, "sale amount must be between 0 and %d", transfer.MaxAmount)
	}

	var buyer *club.Club
	if input.BuyerClubID != "" {
		item, ok, err := s.clubs.GetByID(ctx, input.BuyerClubID)
		if err != nil {
			return DealResult{}, errors.Wrapf(err, "get club id=%s", input.BuyerClubID)
		}
		if !ok {
			return DealResult{}, errors.Wrapf(ErrNotFound, "club id=%s", input.BuyerClubID)
		}
		buyer = &item
	}

	var result DealResult
	_, err := s.mutate(ctx, input.CareerID, func(c *career.Career) (bool, error) {
		if buyer != nil && buyer.ID == c.ClubID {
			return false, errors.Wrap(ErrInvalidInput, "cannot sell a player to your own club")
		}
		if !c.InSquad(input.PlayerID) {
			result = DealResult{Status: transfer.StatusNotInSquad, Message: "Player is not in your squad.", Budget: c.Budget}
			return false, nil
		}

		p, ok, err := s.resolvePlayer(ctx, *c, input.PlayerID)
		if err != nil {
			return false, err
		}
		if !ok {
			result = DealResult{Status: transfer.StatusNotFound, Message: "Player not found.", Budget: c.Budget}
			return false, nil
		}

		sold, err := s.sell(ctx, c, p, input.Amount, buyer)
		if err != nil {
			return false, err
		}
		result = DealResult{
			Success: true,
			Status:  transfer.StatusCompleted,
			Message: fmt.Sprintf("%s sold for %s.", sold.DisplayName(), transfer.FormatMoney(input.Amount)),
			Fee:     input.Amount,
			Player:  &sold,
			Budget:  c.Budget,
		}
		return true, nil
	})
	if err != nil {
		return DealResult{}, err
	}

	return result, nil
}

func (s *TransferService) Budget(ctx context.Context, careerID string) (transfer.Budget, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Budget", careerAttr(careerID))
	defer span.End()

	c, err := s.load(ctx, careerID)
	if err != nil {
		return transfer.Budget{}, err
	}
	return c.Budget, nil
}

// RecalcWages rebuilds the wage ledger from the current squad.
func (s *TransferService) RecalcWages(ctx context.Context, careerID string) (transfer.Budget, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.RecalcWages", careerAttr(careerID))
	defer span.End()

	c, err := s.mutate(ctx, careerID, func(c *career.Career) (bool, error) {
		before := c.Budget
		if err := s.recalcWages(ctx, s.rules, c); err != nil {
			return false, err
		}
		return c.Budget != before, nil
	})
	if err != nil {
		return transfer.Budget{}, err
	}
	return c.Budget, nil
}

// History returns completed deals, oldest first.
func (s *TransferService) History(ctx context.Context, careerID string) ([]transfer.HistoryEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.History", careerAttr(careerID))
	defer span.End()

	c, err := s.load(ctx, careerID)
	if err != nil {
		return nil, err
	}
	return c.History, nil
}

// finalise moves p into the squad on the given contract. Callers hold the
// career lock.
func (s *TransferService) finalise(ctx context.Context, c *career.Career, p player.Player, fee int64, offer transfer.ContractOffer) (player.Player, error) {
	date := c.CurrentDate
	endYear := date.Year() + offer.LengthYears
	from := p.ClubName

	signed := p.Clone()
	signed.Contract = &player.Contract{
		Wage:         offer.WeeklyWage,
		LengthYears:  offer.LengthYears,
		SigningBonus: offer.SigningBonus,
		StartDate:    date,
		EndYear:      endYear,
	}
	signed.ClubName = c.ClubName
	signed.League = c.League
	signed.ContractEndYear = player.Int(endYear)

	c.Budget = c.Budget.Debit(fee)
	c.Override(signed)
	c.AddToSquad(signed.ID)
	c.History = append(c.History, transfer.HistoryEntry{
		Direction:    transfer.DirectionIn,
		PlayerID:     signed.ID,
		PlayerName:   signed.DisplayName(),
		Fee:          fee,
		Wage:         offer.WeeklyWage,
		Counterparty: from,
		Date:         date,
	})
	if err := s.recalcWages(ctx, s.rules, c); err != nil {
		return player.Player{}, err
	}

	s.logger.InfoContext(ctx, "transfer completed",
		"career_id", c.ID,
		"player_id", signed.ID,
		"from_club", from,
		"fee", fee,
		"wage", offer.WeeklyWage,
		"transfer_budget", c.Budget.TransferBudget,
		"wage_budget", c.Budget.WageBudget,
	)
	return signed, nil
}

// sell removes p from the squad, credits amount and drops offers that no
// longer have a target. Callers hold the career lock.
func (s *TransferService) sell(ctx context.Context, c *career.Career, p player.Player, amount int64, buyer *club.Club) (player.Player, error) {
	wage := transfer.Wage(p)

	sold := p.Clone()
	sold.Contract = nil
	sold.Wage = player.Int64(wage)
	counterparty := ""
	if buyer != nil {
		counterparty = buyer.Name
		sold.ClubName = buyer.Name
		sold.League = buyer.League
	} else {
		sold.ClubName = ""
		sold.League = ""
		sold.ContractEndYear = player.Int(c.CurrentYear())
	}

	c.RemoveFromSquad(p.ID)
	c.Budget = c.Budget.Credit(amount)
	c.Override(sold)
	c.History = append(c.History, transfer.HistoryEntry{
		Direction:    transfer.DirectionOut,
		PlayerID:     p.ID,
		PlayerName:   p.DisplayName(),
		Fee:          amount,
		Wage:         wage,
		Counterparty: counterparty,
		Date:         c.CurrentDate,
	})
	c.Offers = dropOrphanOffers(c.Offers, *c)
	if err := s.recalcWages(ctx, s.rules, c); err != nil {
		return player.Player{}, err
	}

	s.logger.InfoContext(ctx, "player sold",
		"career_id", c.ID,
		"player_id", p.ID,
		"to_club", counterparty,
		"fee", amount,
		"transfer_budget", c.Budget.TransferBudget,
	)
	return sold, nil
}

func dropOrphanOffers(offers []transfer.IncomingOffer, c career.Career) []transfer.IncomingOffer {
	out := make([]transfer.IncomingOffer, 0, len(offers))
	for _, o := range offers {
		if c.InSquad(o.PlayerID) {
			out = append(out, o)
		}
	}
	return out
}

func validateContractTerms(playerID string, fee int64, offer transfer.ContractOffer) error {
	if strings.TrimSpace(playerID) == "" {
		return errors.Wrap(ErrInvalidInput, "player id is required")
	}
	if !transfer.ValidAmount(fee) {
		return errors.Wrapf(ErrInvalidInput, "fee must be between 0 and %d", transfer.MaxAmount)
	}
	if offer.LengthYears <= 0 {
		return errors.Wrap(ErrInvalidInput, "contract length must be > 0")
	}
	if !transfer.ValidAmount(offer.WeeklyWage) || !transfer.ValidAmount(offer.SigningBonus) {
		return errors.Wrapf(ErrInvalidInput, "wage and signing bonus must be between 0 and %d", transfer.MaxAmount)
	}
	return nil
}
