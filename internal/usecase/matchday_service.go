package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-career/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	matchdayStatusSuccess = "success"
	matchdayStatusFailed  = "failed"

	defaultMatchdayWorkers = 8
	maxMatchdayWorkers     = 64
)

type MatchdayEntry struct {
	CareerID  string
	HomeGoals int
	AwayGoals int
}

type MatchdayInput struct {
	Results    []MatchdayEntry
	MaxWorkers int
}

type MatchdayTaskResult struct {
	CareerID   string `json:"career_id"`
	Status     string `json:"status"`
	Generated  bool   `json:"generated"`
	OfferID    string `json:"offer_id,omitempty"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type MatchdayResult struct {
	TaskCount    int                  `json:"task_count"`
	SuccessCount int                  `json:"success_count"`
	FailedCount  int                  `json:"failed_count"`
	OfferCount   int                  `json:"offer_count"`
	WorkerCount  int                  `json:"worker_count"`
	Tasks        []MatchdayTaskResult `json:"tasks"`
}

type matchTicker interface {
	OnMatchSimulated(ctx context.Context, careerID string, match MatchResult) (OfferTick, error)
}

// MatchdayService fans a batch of match results out to their careers. Each
// career is still serialised by its own lock inside the ticker.
type MatchdayService struct {
	ticker         matchTicker
	defaultWorkers int
	logger         *logging.Logger
}

func NewMatchdayService(ticker matchTicker, defaultWorkers int, logger *logging.Logger) *MatchdayService {
	if logger == nil {
		logger = logging.Default()
	}
	if defaultWorkers <= 0 {
		defaultWorkers = defaultMatchdayWorkers
	}

	return &MatchdayService{ticker: ticker, defaultWorkers: defaultWorkers, logger: logger}
}

func (s *MatchdayService) ProcessMatchday(ctx context.Context, input MatchdayInput) (MatchdayResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.ProcessMatchday", attribute.Int("matchday.results", len(input.Results)))
	defer span.End()

	if len(input.Results) == 0 {
		return MatchdayResult{}, errors.Wrap(ErrInvalidInput, "at least one match result is required")
	}
	for i, entry := range input.Results {
		if strings.TrimSpace(entry.CareerID) == "" {
			return MatchdayResult{}, errors.Wrapf(ErrInvalidInput, "results[%d]: career id is required", i)
		}
		if entry.HomeGoals < 0 || entry.AwayGoals < 0 {
			return MatchdayResult{}, errors.Wrapf(ErrInvalidInput, "results[%d]: goals must be >= 0", i)
		}
	}

	workerCount := s.normalizeWorkerCount(input.MaxWorkers, len(input.Results))
	result := MatchdayResult{
		TaskCount:   len(input.Results),
		WorkerCount: workerCount,
		Tasks:       make([]MatchdayTaskResult, 0, len(input.Results)),
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return MatchdayResult{}, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	rows := make(chan MatchdayTaskResult, len(input.Results))
	var successCount atomic.Int32
	var failedCount atomic.Int32
	var offerCount atomic.Int32

	var workers sync.WaitGroup
	for _, entry := range input.Results {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := MatchdayTaskResult{CareerID: strings.TrimSpace(entry.CareerID)}
			tick, err := s.ticker.OnMatchSimulated(ctx, row.CareerID, MatchResult{HomeGoals: entry.HomeGoals, AwayGoals: entry.AwayGoals})
			if err != nil {
				row.Status = matchdayStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "matchday tick failed", "career_id", row.CareerID, "error", err)
			} else {
				row.Status = matchdayStatusSuccess
				row.Generated = tick.Generated
				row.Message = tick.Message
				if tick.Offer != nil {
					row.OfferID = tick.Offer.ID
				}
				successCount.Add(1)
				if tick.Generated {
					offerCount.Add(1)
				}
			}
			row.DurationMs = time.Since(start).Milliseconds()
			rows <- row
		}); err != nil {
			workers.Done()
			workers.Wait()
			return MatchdayResult{}, errors.Wrap(err, "submit task to worker pool")
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].CareerID < result.Tasks[j].CareerID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.OfferCount = int(offerCount.Load())

	s.logger.InfoContext(ctx, "matchday processed",
		"tasks", result.TaskCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"offers", result.OfferCount,
		"workers", result.WorkerCount,
	)
	return result, nil
}

func (s *MatchdayService) normalizeWorkerCount(requested, tasks int) int {
	count := requested
	if count <= 0 {
		count = s.defaultWorkers
	}
	count = min(count, maxMatchdayWorkers, tasks)
	return max(count, 1)
}
