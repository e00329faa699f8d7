package transfer

import (
	"fmt"

	"github.com/riskibarqy/football-career/internal/domain/player"
	"github.com/riskibarqy/football-career/internal/platform/random"
)

// BidInput is everything the selling club looks at when a bid arrives.
// Player is nil when the id could not be resolved.
type BidInput struct {
	Player         *player.Player
	Amount         int64
	TransferBudget int64
	WindowOpen     bool
	CurrentYear    int
}

// BidOutcome is the immediate answer to an outgoing bid. Bids keep no state:
// a counter must be answered with a fresh bid.
type BidOutcome struct {
	Success       bool
	Status        Status
	Message       string
	Fee           int64
	CounterAmount int64
	MarketValue   int64
}

// EvaluateBid runs the selling club's decision procedure. The only random
// draw is the premium of a counter offer.
func EvaluateBid(rules Rules, rng random.Source, in BidInput) BidOutcome {
	if !in.WindowOpen {
		return BidOutcome{Status: StatusWindowClosed, Message: "The transfer window is closed."}
	}
	if in.Amount > in.TransferBudget {
		return BidOutcome{Status: StatusNoBudget, Message: fmt.Sprintf("Bid of %s exceeds the transfer budget of %s.", FormatMoney(in.Amount), FormatMoney(in.TransferBudget))}
	}
	if in.Player == nil {
		return BidOutcome{Status: StatusNotFound, Message: "Player not found."}
	}

	p := *in.Player
	name := p.DisplayName()
	if p.IsFreeAgent(in.CurrentYear) {
		return BidOutcome{
			Success: true,
			Status:  StatusFreeAgent,
			Message: fmt.Sprintf("%s is a free agent. No fee required, proceed to contract talks.", name),
		}
	}
	if p.ReleaseClause != nil && *p.ReleaseClause > 0 && in.Amount >= *p.ReleaseClause {
		return BidOutcome{
			Success: true,
			Status:  StatusReleaseClause,
			Message: fmt.Sprintf("Release clause of %s met for %s.", FormatMoney(*p.ReleaseClause), name),
			Fee:     *p.ReleaseClause,
		}
	}

	mv := MarketValue(p)
	out := BidOutcome{MarketValue: mv}
	switch {
	case atLeastPct(in.Amount, mv, rules.AcceptBidPct):
		out.Success = true
		out.Status = StatusAccepted
		out.Fee = in.Amount
		out.Message = fmt.Sprintf("%s accepted your bid of %s for %s.", clubLabel(p), FormatMoney(in.Amount), name)
	case atLeastPct(in.Amount, mv, rules.CounterBidPct):
		premium := random.Uniform(rng, rules.CounterPremiumMin, rules.CounterPremiumMax)
		out.Status = StatusCounter
		out.CounterAmount = floorToThousand(float64(mv) * premium)
		out.Message = fmt.Sprintf("%s want %s for %s.", clubLabel(p), FormatMoney(out.CounterAmount), name)
	case atLeastPct(in.Amount, mv, rules.OpenRejectBidPct):
		out.Status = StatusRejectedOpen
		out.Message = fmt.Sprintf("%s rejected the bid but would consider a higher offer for %s.", clubLabel(p), name)
	default:
		out.Status = StatusRejected
		out.Message = fmt.Sprintf("%s flatly rejected the bid for %s.", clubLabel(p), name)
	}
	return out
}

// atLeastPct reports amount >= base*pct/100 without floating point error.
func atLeastPct(amount, base, pct int64) bool {
	if base <= 0 {
		return amount > 0
	}
	return cmpScaled(amount, 100, base, pct) >= 0
}

func clubLabel(p player.Player) string {
	if p.ClubName == "" {
		return "The club"
	}
	return p.ClubName
}
