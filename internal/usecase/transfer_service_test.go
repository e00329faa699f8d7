package usecase

import (
	"math"
	"sync"
	"testing"

	"github.com/riskibarqy/football-career/internal/domain/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferService_PlaceBid(t *testing.T) {
	f := newHarness(t, nil)
	closedID := f.start(t, false)
	openID := f.start(t, true)

	tests := []struct {
		name     string
		careerID string
		playerID string
		amount   int64
		want     transfer.Status
	}{
		{name: "window closed", careerID: closedID, playerID: "l1", amount: 1_150_000, want: transfer.StatusWindowClosed},
		{name: "over budget", careerID: openID, playerID: "l1", amount: 50_000_001, want: transfer.StatusNoBudget},
		{name: "unknown player", careerID: openID, playerID: "ghost", amount: 1_000, want: transfer.StatusNotFound},
		{name: "accepted", careerID: openID, playerID: "l1", amount: 1_150_000, want: transfer.StatusAccepted},
		{name: "counter", careerID: openID, playerID: "l1", amount: 850_000, want: transfer.StatusCounter},
		{name: "rejected open", careerID: openID, playerID: "l1", amount: 600_000, want: transfer.StatusRejectedOpen},
		{name: "rejected", careerID: openID, playerID: "l1", amount: 590_000, want: transfer.StatusRejected},
		{name: "release clause", careerID: openID, playerID: "l2", amount: 50_000_000, want: transfer.StatusReleaseClause},
		{name: "free agent", careerID: openID, playerID: "f1", amount: 0, want: transfer.StatusFreeAgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := f.transfers.PlaceBid(t.Context(), PlaceBidInput{CareerID: tt.careerID, PlayerID: tt.playerID, Amount: tt.amount})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Status, out.Message)
		})
	}

	counter, err := f.transfers.PlaceBid(t.Context(), PlaceBidInput{CareerID: openID, PlayerID: "l1", Amount: 900_000})
	require.NoError(t, err)
	assert.Equal(t, int64(1_100_000), counter.CounterAmount)

	budget, err := f.transfers.Budget(t.Context(), openID)
	require.NoError(t, err)
	assert.Equal(t, int64(50_000_000), budget.TransferBudget, "bids must not touch the budget")
}

func TestTransferService_PlaceBid_InvalidRequests(t *testing.T) {
	f := newHarness(t, nil)
	id := f.start(t, true)

	_, err := f.transfers.PlaceBid(t.Context(), PlaceBidInput{CareerID: id, PlayerID: "l1", Amount: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.transfers.PlaceBid(t.Context(), PlaceBidInput{CareerID: id, PlayerID: "a1", Amount: 1_000})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.transfers.PlaceBid(t.Context(), PlaceBidInput{CareerID: "car-404", PlayerID: "l1", Amount: 1_000})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransferService_NegotiateContract_AcceptFinalises(t *testing.T) {
	f := newHarness(t, nil)
	id := f.start(t, true)

	res, err := f.transfers.NegotiateContract(t.Context(), NegotiateContractInput{
		CareerID: id,
		PlayerID: "l1",
		Fee:      1_150_000,
		Offer:    transfer.ContractOffer{LengthYears: 4, WeeklyWage: 110_000},
	})
	require.NoError(t, err)
	require.Equal(t, transfer.StatusAccepted, res.Status, res.Message)
	require.NotNil(t, res.Player)

	assert.Equal(t, "Arsenal", res.Player.ClubName)
	assert.Equal(t, "Premier League", res.Player.League)
	require.NotNil(t, res.Player.Contract)
	assert.Equal(t, 2029, res.Player.Contract.EndYear)
	assert.Equal(t, 2029, *res.Player.ContractEndYear)
	assert.Equal(t, fixtureStart, res.Player.Contract.StartDate)
	assert.Equal(t, transfer.Budget{TransferBudget: 48_850_000, WageBudget: 330_000, TotalWages: 1_110_000}, res.Budget)

	c, err := f.careers.GetCareer(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "l1"}, c.Squad)
	require.Len(t, c.History, 1)
	assert.Equal(t, transfer.HistoryEntry{
		Direction:    transfer.DirectionIn,
		PlayerID:     "l1",
		PlayerName:   "L. One",
		Fee:          1_150_000,
		Wage:         110_000,
		Counterparty: "Lyon",
		Date:         fixtureStart,
	}, c.History[0])

	_, err = f.transfers.NegotiateContract(t.Context(), NegotiateContractInput{
		CareerID: id, PlayerID: "l1", Offer: transfer.ContractOffer{LengthYears: 2, WeeklyWage: 1},
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "signed player cannot be signed twice")
}

func TestTransferService_NegotiateContract_FreeAgent(t *testing.T) {
	f := newHarness(t, nil)
	id := f.start(t, true)

	res, err := f.transfers.NegotiateContract(t.Context(), NegotiateContractInput{
		CareerID: id,
		PlayerID: "f1",
		Offer:    transfer.ContractOffer{LengthYears: 2, WeeklyWage: 55_000},
	})
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusAccepted, res.Status)
	assert.Equal(t, int64(50_000_000), res.Budget.TransferBudget)
	assert.Equal(t, int64(1_055_000), res.Budget.TotalWages)
}

func TestTransferService_NegotiateContract_GatesLeaveStateUntouched(t *testing.T) {
	f := newHarness(t, nil)
	id := f.start(t, true)

	tests := []struct {
		name  string
		fee   int64
		offer transfer.ContractOffer
		want  transfer.Status
	}{
		{name: "wage over budget slack", fee: 1_000_000, offer: transfer.ContractOffer{LengthYears: 3, WeeklyWage: 445_001}, want: transfer.StatusWageBudget},
		{name: "fee plus bonus over budget", fee: 49_000_000, offer: transfer.ContractOffer{LengthYears: 3, WeeklyWage: 120_000, SigningBonus: 1_000_001}, want: transfer.StatusTransferBudget},
		{name: "counter", fee: 1_000_000, offer: transfer.ContractOffer{LengthYears: 3, WeeklyWage: 95_000}, want: transfer.StatusCounter},
		{name: "rejected", fee: 1_000_000, offer: transfer.ContractOffer{LengthYears: 1, WeeklyWage: 10_000}, want: transfer.StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.transfers.NegotiateContract(t.Context(), NegotiateContractInput{CareerID: id, PlayerID: "l1", Fee: tt.fee, Offer: tt.offer})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Status, res.Message)
			assert.Nil(t, res.Player)
		})
	}

	c, err := f.careers.GetCareer(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, c.Squad)
	assert.Equal(t, int64(50_000_000), c.Budget.TransferBudget)
	assert.Empty(t, c.History)

	missing, err := f.transfers.NegotiateContract(t.Context(), NegotiateContractInput{CareerID: id, PlayerID: "ghost", Offer: transfer.ContractOffer{LengthYears: 1}})
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusNotFound, missing.Status)

	_, err = f.transfers.NegotiateContract(t.Context(), NegotiateContractInput{CareerID: id, PlayerID: "l1", Offer: transfer.ContractOffer{LengthYears: 0}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransferService_NegotiateContract_RejectsOversizedAmounts(t *testing.T) {
	f := newHarness(t, nil)
	id := f.start(t, true)

	inputs := []NegotiateContractInput{
		{CareerID: id, PlayerID: "l1", Fee: 1 << 62, Offer: transfer.ContractOffer{LengthYears: 4, WeeklyWage: 110_000, SigningBonus: 1 << 62}},
		{CareerID: id, PlayerID: "l1", Fee: 1_000_000, Offer: transfer.ContractOffer{LengthYears: 4, WeeklyWage: transfer.MaxAmount + 1}},
	}
	for _, in := range inputs {
		_, err := f.transfers.NegotiateContract(t.Context(), in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	_, err := f.transfers.PlaceBid(t.Context(), PlaceBidInput{CareerID: id, PlayerID: "l1", Amount: math.MaxInt64})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.transfers.SellPlayer(t.Context(), SellPlayerInput{CareerID: id, PlayerID: "a1", Amount: transfer.MaxAmount + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	c, err := f.careers.GetCareer(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(50_000_000), c.Budget.TransferBudget)
	assert.Empty(t, c.History)
}

func TestTransferService_FinaliseTransfer_DebitsFeeOnly(t *testing.T) {
	f := newHarness(t, nil)
	id := f.start(t, true)

	res, err := f.transfers.FinaliseTransfer(t.Context(), FinaliseTransferInput{
		CareerID: id,
		PlayerID: "l2",
		Fee:      50_000_000,
		Offer:    transfer.ContractOffer{LengthYears: 5, WeeklyWage: 200_000, SigningBonus: 2_000_000},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, transfer.StatusCompleted, res.Status)
	assert.Equal(t, int64(0), res.Budget.TransferBudget)
	assert.Equal(t, int64(240_000), res.Budget.WageBudget)
}

func TestTransferService_SellPlayer(t *testing.T) {
	f := newHarness(t, nil)
	id := f.start(t, true)

	res, err := f.transfers.SellPlayer(t.Context(), SellPlayerInput{CareerID: id, PlayerID: "a2", Amount: 12_000_000, BuyerClubID: "fra-lyo"})
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusCompleted, res.Status)
	assert.Equal(t, transfer.Budget{TransferBudget: 62_000_000, WageBudget: 840_000, TotalWages: 600_000}, res.Budget)
	assert.Equal(t, "Lyon", res.Player.ClubName)
	assert.Equal(t, "Ligue 1", res.Player.League)

	history, err := f.transfers.History(t.Context(), id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, transfer.DirectionOut, history[0].Direction)
	assert.Equal(t, int64(400_000), history[0].Wage)
	assert.Equal(t, "Lyon", history[0].Counterparty)

	again, err := f.transfers.SellPlayer(t.Context(), SellPlayerInput{CareerID: id, PlayerID: "a2", Amount: 1})
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusNotInSquad, again.Status)

	_, err = f.transfers.SellPlayer(t.Context(), SellPlayerInput{CareerID: id, PlayerID: "a1", Amount: 1, BuyerClubID: "eng-ars"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.transfers.SellPlayer(t.Context(), SellPlayerInput{CareerID: id, PlayerID: "a1", Amount: 1, BuyerClubID: "xxx"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransferService_SellPlayer_WithoutBuyerReleasesPlayer(t *testing.T) {
	f := newHarness(t, nil)
	id := f.start(t, true)

	res, err := f.transfers.SellPlayer(t.Context(), SellPlayerInput{CareerID: id, PlayerID: "a1", Amount: 0})
	require.NoError(t, err)
	assert.Equal(t, "", res.Player.ClubName)
	assert.True(t, res.Player.IsFreeAgent(2025))

	bid, err := f.transfers.PlaceBid(t.Context(), PlaceBidInput{CareerID: id, PlayerID: "a1", Amount: 0})
	require.NoError(t, err)
	assert.Equal(t, transfer.StatusFreeAgent, bid.Status)
}

func TestTransferService_RecalcWagesIsIdempotent(t *testing.T) {
	f := newHarness(t, nil)
	id := f.start(t, true)

	first, err := f.transfers.RecalcWages(t.Context(), id)
	require.NoError(t, err)
	second, err := f.transfers.RecalcWages(t.Context(), id)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(440_000), second.WageBudget)
}

func TestTransferService_ConcurrentDealsOnOneCareer(t *testing.T) {
	f := newHarness(t, nil)
	id := f.start(t, true)

	var wg sync.WaitGroup
	for _, playerID := range []string{"l1", "l2", "f1", "f2"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.transfers.FinaliseTransfer(t.Context(), FinaliseTransferInput{
				CareerID: id,
				PlayerID: playerID,
				Fee:      1_000_000,
				Offer:    transfer.ContractOffer{LengthYears: 2, WeeklyWage: 10_000},
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	c, err := f.careers.GetCareer(t.Context(), id)
	require.NoError(t, err)
	assert.Len(t, c.Squad, 6)
	assert.Len(t, c.History, 4)
	assert.Equal(t, int64(46_000_000), c.Budget.TransferBudget)
	assert.Equal(t, int64(1_040_000), c.Budget.TotalWages)
}
