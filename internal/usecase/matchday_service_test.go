package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-career/internal/domain/transfer"
	"github.com/riskibarqy/football-career/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	mu    sync.Mutex
	calls map[string]int
	fail  map[string]bool
}

func (f *fakeTicker) OnMatchSimulated(_ context.Context, careerID string, _ MatchResult) (OfferTick, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[careerID]++
	if f.fail[careerID] {
		return OfferTick{}, errors.Wrapf(ErrNotFound, "career id=%s", careerID)
	}
	if careerID == "car-offer" {
		return OfferTick{Generated: true, Offer: &transfer.IncomingOffer{ID: "off-9"}}, nil
	}
	return OfferTick{Message: "No clubs showed interest."}, nil
}

func TestMatchdayService_ProcessMatchday(t *testing.T) {
	ticker := &fakeTicker{fail: map[string]bool{"car-missing": true}}
	service := NewMatchdayService(ticker, 4, logging.NewNop())

	res, err := service.ProcessMatchday(t.Context(), MatchdayInput{Results: []MatchdayEntry{
		{CareerID: "car-quiet", HomeGoals: 1},
		{CareerID: "car-offer", AwayGoals: 3},
		{CareerID: "car-missing"},
	}})
	require.NoError(t, err)

	assert.Equal(t, 3, res.TaskCount)
	assert.Equal(t, 3, res.WorkerCount)
	assert.Equal(t, 2, res.SuccessCount)
	assert.Equal(t, 1, res.FailedCount)
	assert.Equal(t, 1, res.OfferCount)
	require.Len(t, res.Tasks, 3)
	assert.Equal(t, "car-missing", res.Tasks[0].CareerID)
	assert.Equal(t, matchdayStatusFailed, res.Tasks[0].Status)
	assert.Equal(t, "off-9", res.Tasks[1].OfferID)
	assert.Equal(t, 1, ticker.calls["car-quiet"])
}

func TestMatchdayService_ProcessMatchday_Validation(t *testing.T) {
	service := NewMatchdayService(&fakeTicker{}, 0, nil)

	_, err := service.ProcessMatchday(t.Context(), MatchdayInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.ProcessMatchday(t.Context(), MatchdayInput{Results: []MatchdayEntry{{CareerID: " "}}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.ProcessMatchday(t.Context(), MatchdayInput{Results: []MatchdayEntry{{CareerID: "c", HomeGoals: -2}}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatchdayService_NormalizeWorkerCount(t *testing.T) {
	service := NewMatchdayService(&fakeTicker{}, 8, nil)

	assert.Equal(t, 8, service.normalizeWorkerCount(0, 100))
	assert.Equal(t, 2, service.normalizeWorkerCount(0, 2))
	assert.Equal(t, maxMatchdayWorkers, service.normalizeWorkerCount(1000, 1000))
	assert.Equal(t, 1, service.normalizeWorkerCount(-5, 1))
}

func TestMatchdayService_RealCareers(t *testing.T) {
	f := newHarness(t, nil)
	first := f.start(t, true)
	second := f.start(t, true)

	service := NewMatchdayService(f.transfers, 2, logging.NewNop())
	res, err := service.ProcessMatchday(t.Context(), MatchdayInput{Results: []MatchdayEntry{
		{CareerID: first, HomeGoals: 2, AwayGoals: 2},
		{CareerID: second, HomeGoals: 0, AwayGoals: 1},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, res.SuccessCount)
	assert.Equal(t, 0, res.OfferCount, "a 0.5 roll never beats the 40% chance")
}
