package transfer

import (
	"time"

	"github.com/riskibarqy/football-career/internal/domain/club"
	"github.com/riskibarqy/football-career/internal/domain/player"
	"github.com/riskibarqy/football-career/internal/platform/random"
)

type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// IncomingOffer is an AI club's bid for one of the user's players.
type IncomingOffer struct {
	ID         string
	PlayerID   string
	PlayerName string
	ClubID     string
	ClubName   string
	Amount     int64
	CreatedAt  time.Time
	Status     OfferStatus
}

// OfferDraft is a generated bid before it gets an id and a date.
type OfferDraft struct {
	Player player.Player
	Club   club.Club
	Amount int64
}

// ShouldGenerateOffer draws the per-tick chance of AI interest.
func ShouldGenerateOffer(rules Rules, rng random.Source) bool {
	return rng.Float64() < rules.OfferChancePerTick
}

// DrawOffer picks a target below the star threshold, an AI bidder and an
// amount around market value. It reports false when there is no candidate or
// no bidder.
func DrawOffer(rules Rules, rng random.Source, squad []player.Player, bidders []club.Club) (OfferDraft, bool) {
	candidates := make([]player.Player, 0, len(squad))
	for _, p := range squad {
		if player.ResolveOverall(p) < rules.OfferMaxOverall {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 || len(bidders) == 0 {
		return OfferDraft{}, false
	}

	target := candidates[rng.IntN(len(candidates))]
	factor := random.Uniform(rng, rules.OfferAmountMin, rules.OfferAmountMax)
	bidder := bidders[rng.IntN(len(bidders))]

	return OfferDraft{
		Player: target,
		Club:   bidder,
		Amount: floorToThousand(float64(MarketValue(target)) * factor),
	}, true
}

// HasPendingOffer reports whether clubName already has a pending bid for playerID.
func HasPendingOffer(offers []IncomingOffer, playerID, clubName string) bool {
	for _, o := range offers {
		if o.Status == OfferPending && o.PlayerID == playerID && o.ClubName == clubName {
			return true
		}
	}
	return false
}

// EnqueueOffer appends offer and evicts the oldest entries beyond capacity.
// A duplicate pending (player, club) pair is not enqueued.
func EnqueueOffer(offers []IncomingOffer, offer IncomingOffer, capacity int) ([]IncomingOffer, bool) {
	if HasPendingOffer(offers, offer.PlayerID, offer.ClubName) {
		return offers, false
	}

	out := append(append(make([]IncomingOffer, 0, len(offers)+1), offers...), offer)
	if capacity > 0 && len(out) > capacity {
		out = append([]IncomingOffer(nil), out[len(out)-capacity:]...)
	}
	return out, true
}

// RemoveOffer drops the offer with id from the queue.
func RemoveOffer(offers []IncomingOffer, id string) []IncomingOffer {
	out := make([]IncomingOffer, 0, len(offers))
	for _, o := range offers {
		if o.ID != id {
			out = append(out, o)
		}
	}
	return out
}

// AcceptsCounter is the AI bidder's single-shot answer to a counter demand.
func AcceptsCounter(rules Rules, original, demanded, marketValue int64) bool {
	return cmpScaled(demanded, 100, original, rules.CounterAcceptMinPct) >= 0 &&
		cmpScaled(demanded, 100, marketValue, rules.CounterAcceptMaxMVPc) <= 0
}
