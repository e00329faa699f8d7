package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-career/internal/domain/career"
	"github.com/riskibarqy/football-career/internal/domain/club"
	"github.com/riskibarqy/football-career/internal/domain/transfer"
	"go.opentelemetry.io/otel/attribute"
)

// MatchResult is the outcome of a simulated fixture. The score is opaque to
// the transfer market; a result only triggers one offer tick.
type MatchResult struct {
	HomeGoals int
	AwayGoals int
}

// OfferTick reports what one tick produced.
type OfferTick struct {
	Generated bool
	Offer     *transfer.IncomingOffer
	Message   string
}

// OfferResult is the outcome of resolving a pending incoming offer.
type OfferResult struct {
	Success bool
	Status  transfer.Status
	Message string
	Offer   transfer.IncomingOffer
	Budget  transfer.Budget
}

// PendingOffers returns the queue, oldest first.
func (s *TransferService) PendingOffers(ctx context.Context, careerID string) ([]transfer.IncomingOffer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.PendingOffers", careerAttr(careerID))
	defer span.End()

	c, err := s.load(ctx, careerID)
	if err != nil {
		return nil, err
	}
	return c.Offers, nil
}

// OnMatchSimulated runs the post-match tick: with the configured chance an AI
// club bids for one of the user's players.
func (s *TransferService) OnMatchSimulated(ctx context.Context, careerID string, match MatchResult) (OfferTick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.OnMatchSimulated", careerAttr(careerID))
	defer span.End()

	if match.HomeGoals < 0 || match.AwayGoals < 0 {
		return OfferTick{}, errors.Wrap(ErrInvalidInput, "goals must be >= 0")
	}

	return s.tick(ctx, careerID, true)
}

// GenerateIncomingOffer forces one offer draw, skipping the tick chance.
func (s *TransferService) GenerateIncomingOffer(ctx context.Context, careerID string) (OfferTick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.GenerateIncomingOffer", careerAttr(careerID))
	defer span.End()

	return s.tick(ctx, careerID, false)
}

func (s *TransferService) tick(ctx context.Context, careerID string, roll bool) (OfferTick, error) {
	var result OfferTick
	_, err := s.mutate(ctx, careerID, func(c *career.Career) (bool, error) {
		if roll && !transfer.ShouldGenerateOffer(s.rules, s.rng) {
			result = OfferTick{Message: "No clubs showed interest."}
			return false, nil
		}

		squad, err := s.squad(ctx, *c)
		if err != nil {
			return false, err
		}
		bidders, err := s.bidders(ctx, *c)
		if err != nil {
			return false, err
		}

		draft, ok := transfer.DrawOffer(s.rules, s.rng, squad, bidders)
		if !ok {
			result = OfferTick{Message: "No eligible players or bidders."}
			return false, nil
		}
		if transfer.HasPendingOffer(c.Offers, draft.Player.ID, draft.Club.Name) {
			result = OfferTick{Message: fmt.Sprintf("%s already has a pending bid for %s.", draft.Club.Name, draft.Player.DisplayName())}
			return false, nil
		}

		offerID, err := s.idGen.NewID()
		if err != nil {
			return false, errors.Wrap(err, "generate offer id")
		}
		offer := transfer.IncomingOffer{
			ID:         offerID,
			PlayerID:   draft.Player.ID,
			PlayerName: draft.Player.DisplayName(),
			ClubID:     draft.Club.ID,
			ClubName:   draft.Club.Name,
			Amount:     draft.Amount,
			CreatedAt:  c.CurrentDate,
			Status:     transfer.OfferPending,
		}
		c.Offers, _ = transfer.EnqueueOffer(c.Offers, offer, s.rules.OfferQueueCap)

		result = OfferTick{
			Generated: true,
			Offer:     &offer,
			Message:   fmt.Sprintf("%s bid %s for %s.", offer.ClubName, transfer.FormatMoney(offer.Amount), offer.PlayerName),
		}
		s.logger.InfoContext(ctx, "incoming offer generated",
			"career_id", c.ID,
			"offer_id", offer.ID,
			"player_id", offer.PlayerID,
			"club", offer.ClubName,
			"amount", offer.Amount,
		)
		return true, nil
	})
	if err != nil {
		return OfferTick{}, err
	}

	return result, nil
}

// bidders are all clubs except the user's.
func (s *TransferService) bidders(ctx context.Context, c career.Career) ([]club.Club, error) {
	items, err := s.clubs.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list clubs")
	}

	out := make([]club.Club, 0, len(items))
	for _, item := range items {
		if item.ID == c.ClubID || item.Name == c.ClubName {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// AcceptOffer sells the player to the bidding club at the offered amount.
func (s *TransferService) AcceptOffer(ctx context.Context, careerID, offerID string) (OfferResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.AcceptOffer", careerAttr(careerID), attribute.String("offer.id", offerID))
	defer span.End()

	return s.resolveOffer(ctx, careerID, offerID, func(c *career.Career, offer transfer.IncomingOffer) (OfferResult, error) {
		return s.completeOffer(ctx, c, offer, offer.Amount)
	})
}

// RejectOffer discards the offer. Nothing else changes.
func (s *TransferService) RejectOffer(ctx context.Context, careerID, offerID string) (OfferResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.RejectOffer", careerAttr(careerID), attribute.String("offer.id", offerID))
	defer span.End()

	return s.resolveOffer(ctx, careerID, offerID, func(c *career.Career, offer transfer.IncomingOffer) (OfferResult, error) {
		offer.Status = transfer.OfferRejected
		return OfferResult{
			Success: true,
			Status:  transfer.StatusRejected,
			Message: fmt.Sprintf("You rejected %s's bid for %s.", offer.ClubName, offer.PlayerName),
			Offer:   offer,
			Budget:  c.Budget,
		}, nil
	})
}

// CounterOffer demands amount from the bidder. The AI answers once: it pays
// or walks away.
func (s *TransferService) CounterOffer(ctx context.Context, careerID, offerID string, amount int64) (OfferResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.CounterOffer", careerAttr(careerID), attribute.String("offer.id", offerID))
	defer span.End()

	if amount <= 0 || amount > transfer.MaxAmount {
		return OfferResult{}, errors.Wrapf(ErrInvalidInput, "counter amount must be between 1 and %d", transfer.MaxAmount)
	}

	return s.resolveOffer(ctx, careerID, offerID, func(c *career.Career, offer transfer.IncomingOffer) (OfferResult, error) {
		p, ok, err := s.resolvePlayer(ctx, *c, offer.PlayerID)
		if err != nil {
			return OfferResult{}, err
		}
		if !ok {
			offer.Status = transfer.OfferRejected
			return OfferResult{Status: transfer.StatusNotFound, Message: "Player not found.", Offer: offer, Budget: c.Budget}, nil
		}

		if !transfer.AcceptsCounter(s.rules, offer.Amount, amount, transfer.MarketValue(p)) {
			offer.Status = transfer.OfferRejected
			return OfferResult{
				Status:  transfer.StatusRejected,
				Message: fmt.Sprintf("%s walked away from your demand of %s.", offer.ClubName, transfer.FormatMoney(amount)),
				Offer:   offer,
				Budget:  c.Budget,
			}, nil
		}

		return s.completeOffer(ctx, c, offer, amount)
	})
}

// resolveOffer removes a pending offer from the queue and applies fn to it.
func (s *TransferService) resolveOffer(
	ctx context.Context,
	careerID, offerID string,
	fn func(c *career.Career, offer transfer.IncomingOffer) (OfferResult, error),
) (OfferResult, error) {
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return OfferResult{}, errors.Wrap(ErrInvalidInput, "offer id is required")
	}

	var result OfferResult
	_, err := s.mutate(ctx, careerID, func(c *career.Career) (bool, error) {
		offer, ok := c.FindOffer(offerID)
		if !ok || offer.Status != transfer.OfferPending {
			result = OfferResult{Status: transfer.StatusNotPending, Message: "Offer is no longer pending.", Budget: c.Budget}
			return false, nil
		}

		c.Offers = transfer.RemoveOffer(c.Offers, offerID)
		out, err := fn(c, offer)
		if err != nil {
			return false, err
		}
		result = out
		return true, nil
	})
	if err != nil {
		return OfferResult{}, err
	}

	s.logger.InfoContext(ctx, "incoming offer resolved",
		"career_id", careerID,
		"offer_id", offerID,
		"status", string(result.Status),
	)
	return result, nil
}

func (s *TransferService) completeOffer(ctx context.Context, c *career.Career, offer transfer.IncomingOffer, amount int64) (OfferResult, error) {
	if !c.InSquad(offer.PlayerID) {
		offer.Status = transfer.OfferRejected
		return OfferResult{Status: transfer.StatusNotInSquad, Message: "Player is not in your squad.", Offer: offer, Budget: c.Budget}, nil
	}

	p, ok, err := s.resolvePlayer(ctx, *c, offer.PlayerID)
	if err != nil {
		return OfferResult{}, err
	}
	if !ok {
		offer.Status = transfer.OfferRejected
		return OfferResult{Status: transfer.StatusNotFound, Message: "Player not found.", Offer: offer, Budget: c.Budget}, nil
	}

	buyer := club.Club{ID: offer.ClubID, Name: offer.ClubName}
	if offer.ClubID != "" {
		item, found, err := s.clubs.GetByID(ctx, offer.ClubID)
		if err != nil {
			return OfferResult{}, errors.Wrapf(err, "get club id=%s", offer.ClubID)
		}
		if found {
			buyer = item
		}
	}

	if _, err := s.sell(ctx, c, p, amount, &buyer); err != nil {
		return OfferResult{}, err
	}

	offer.Status = transfer.OfferAccepted
	offer.Amount = amount
	return OfferResult{
		Success: true,
		Status:  transfer.StatusAccepted,
		Message: fmt.Sprintf("%s joins %s for %s.", offer.PlayerName, offer.ClubName, transfer.FormatMoney(amount)),
		Offer:   offer,
		Budget:  c.Budget,
	}, nil
}
