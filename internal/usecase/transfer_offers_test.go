package usecase

import (
	"math"
	"testing"

	"github.com/riskibarqy/football-career/internal/domain/transfer"
	"github.com/riskibarqy/football-career/internal/platform/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferService_OnMatchSimulated_GeneratesAndSuppressesDuplicates(t *testing.T) {
	// chance roll 0.1, amount factor 0.85; first squad member, first bidder
	f := newHarness(t, random.NewScripted([]float64{0.1, 0.0}, []int{0, 0}))
	id := f.start(t, false)

	tick, err := f.transfers.OnMatchSimulated(t.Context(), id, MatchResult{HomeGoals: 2, AwayGoals: 1})
	require.NoError(t, err)
	require.True(t, tick.Generated, tick.Message)
	assert.Equal(t, transfer.IncomingOffer{
		ID:         "off-1",
		PlayerID:   "a1",
		PlayerName: "A. One",
		ClubID:     "fra-lyo",
		ClubName:   "Lyon",
		Amount:     17_000_000,
		CreatedAt:  fixtureStart,
		Status:     transfer.OfferPending,
	}, *tick.Offer)

	dup, err := f.transfers.OnMatchSimulated(t.Context(), id, MatchResult{})
	require.NoError(t, err)
	assert.False(t, dup.Generated)

	pending, err := f.transfers.PendingOffers(t.Context(), id)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestTransferService_OnMatchSimulated_NoInterest(t *testing.T) {
	f := newHarness(t, random.NewScripted([]float64{0.4}, []int{0}))
	id := f.start(t, true)

	tick, err := f.transfers.OnMatchSimulated(t.Context(), id, MatchResult{HomeGoals: 0, AwayGoals: 0})
	require.NoError(t, err)
	assert.False(t, tick.Generated)
	assert.Nil(t, tick.Offer)

	_, err = f.transfers.OnMatchSimulated(t.Context(), id, MatchResult{HomeGoals: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransferService_AcceptOffer(t *testing.T) {
	f := newHarness(t, random.NewScripted([]float64{0.0}, []int{0, 0}))
	id := f.start(t, true)

	tick, err := f.transfers.GenerateIncomingOffer(t.Context(), id)
	require.NoError(t, err)
	require.True(t, tick.Generated)

	res, err := f.transfers.AcceptOffer(t.Context(), id, tick.Offer.ID)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, transfer.StatusAccepted, res.Status)
	assert.Equal(t, transfer.OfferAccepted, res.Offer.Status)
	assert.Equal(t, transfer.Budget{TransferBudget: 67_000_000, WageBudget: 1_040_000, TotalWages: 400_000}, res.Budget)

	c, err := f.careers.GetCareer(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, c.Squad)
	assert.Empty(t, c.Offers)
	require.Len(t, c.History, 1)
	assert.Equal(t, int64(17_000_000), c.History[0].Fee)

	again, err := f.transfers.AcceptOffer(t.Context(), id, tick.Offer.ID)
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusNotPending, again.Status)
}

func TestTransferService_RejectOffer(t *testing.T) {
	f := newHarness(t, random.NewScripted([]float64{0.0}, []int{1, 1}))
	id := f.start(t, true)

	tick, err := f.transfers.GenerateIncomingOffer(t.Context(), id)
	require.NoError(t, err)
	require.Equal(t, "a2", tick.Offer.PlayerID)
	require.Equal(t, "Flamengo", tick.Offer.ClubName)

	res, err := f.transfers.RejectOffer(t.Context(), id, tick.Offer.ID)
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusRejected, res.Status)
	assert.Equal(t, transfer.OfferRejected, res.Offer.Status)
	assert.Equal(t, int64(50_000_000), res.Budget.TransferBudget)

	c, err := f.careers.GetCareer(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, c.Squad)
	assert.Empty(t, c.Offers)
	assert.Empty(t, c.History)
}

func TestTransferService_CounterOffer(t *testing.T) {
	f := newHarness(t, random.NewScripted([]float64{0.0}, []int{0, 0}))
	id := f.start(t, true)

	tests := []struct {
		name       string
		demand     int64
		wantStatus transfer.Status
		wantBudget int64
	}{
		{name: "below 95 percent of the bid", demand: 16_149_999, wantStatus: transfer.StatusRejected, wantBudget: 50_000_000},
		{name: "above 125 percent of value", demand: 25_000_001, wantStatus: transfer.StatusRejected, wantBudget: 50_000_000},
		{name: "at 125 percent of value", demand: 25_000_000, wantStatus: transfer.StatusAccepted, wantBudget: 75_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tick, err := f.transfers.GenerateIncomingOffer(t.Context(), id)
			require.NoError(t, err)
			require.True(t, tick.Generated, tick.Message)
			require.Equal(t, int64(17_000_000), tick.Offer.Amount)

			res, err := f.transfers.CounterOffer(t.Context(), id, tick.Offer.ID, tt.demand)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status, res.Message)
			assert.Equal(t, tt.wantBudget, res.Budget.TransferBudget)

			pending, err := f.transfers.PendingOffers(t.Context(), id)
			require.NoError(t, err)
			assert.Empty(t, pending, "counter is single shot")
		})
	}

	_, err := f.transfers.CounterOffer(t.Context(), id, "off-1", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransferService_CounterOffer_RejectsOversizedDemand(t *testing.T) {
	f := newHarness(t, random.NewScripted([]float64{0.0}, []int{0, 0}))
	id := f.start(t, true)

	tick, err := f.transfers.GenerateIncomingOffer(t.Context(), id)
	require.NoError(t, err)
	require.True(t, tick.Generated, tick.Message)

	for _, demand := range []int64{transfer.MaxAmount + 1, 184_467_440_757_095_517, math.MaxInt64} {
		_, err := f.transfers.CounterOffer(t.Context(), id, tick.Offer.ID, demand)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	c, err := f.careers.GetCareer(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(50_000_000), c.Budget.TransferBudget)

	pending, err := f.transfers.PendingOffers(t.Context(), id)
	require.NoError(t, err)
	assert.Len(t, pending, 1, "rejected input leaves the offer pending")
}

func TestTransferService_SellDropsOffersForDepartedPlayer(t *testing.T) {
	f := newHarness(t, random.NewScripted([]float64{0.0}, []int{0, 0}))
	id := f.start(t, true)

	_, err := f.transfers.GenerateIncomingOffer(t.Context(), id)
	require.NoError(t, err)

	_, err = f.transfers.SellPlayer(t.Context(), SellPlayerInput{CareerID: id, PlayerID: "a1", Amount: 5_000_000, BuyerClubID: "bra-fla"})
	require.NoError(t, err)

	pending, err := f.transfers.PendingOffers(t.Context(), id)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
