package usecase

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/football-career/internal/domain/club"
	"github.com/riskibarqy/football-career/internal/domain/player"
	"github.com/riskibarqy/football-career/internal/domain/transfer"
	"github.com/riskibarqy/football-career/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-career/internal/platform/logging"
	"github.com/riskibarqy/football-career/internal/platform/random"
	"github.com/riskibarqy/football-career/internal/platform/resilience"
)

var fixtureStart = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

type sequenceIDGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s%d", g.prefix, g.n), nil
}

func fixtureClubs() []club.Club {
	return []club.Club{
		{ID: "eng-ars", Name: "Arsenal", League: "Premier League", Country: "England", Overall: 80, TransferBudget: 50_000_000},
		{ID: "fra-lyo", Name: "Lyon", League: "Ligue 1", Country: "France", Overall: 78, TransferBudget: 30_000_000},
		{ID: "bra-fla", Name: "Flamengo", League: "Brasileirao Serie A", Country: "Brazil", Overall: 76, TransferBudget: 20_000_000},
	}
}

// fixturePlayers gives Arsenal a wage bill of exactly 1,000,000 per week.
func fixturePlayers() []player.Player {
	return []player.Player{
		{ID: "a1", ShortName: "A. One", Nationality: "England", Age: player.Int(27), Positions: []string{"CM"}, Overall: player.Int(78), Potential: player.Int(80), ClubName: "Arsenal", League: "Premier League", ContractEndYear: player.Int(2028), MarketValue: player.Int64(20_000_000), Wage: player.Int64(600_000)},
		{ID: "a2", ShortName: "A. Two", Nationality: "England", Age: player.Int(30), Positions: []string{"CB"}, Overall: player.Int(75), Potential: player.Int(75), ClubName: "Arsenal", League: "Premier League", ContractEndYear: player.Int(2027), MarketValue: player.Int64(10_000_000), Wage: player.Int64(400_000)},
		{ID: "l1", ShortName: "L. One", Nationality: "France", Age: player.Int(24), Positions: []string{"ST"}, Overall: player.Int(80), Potential: player.Int(84), ClubName: "Lyon", League: "Ligue 1", ContractEndYear: player.Int(2028), MarketValue: player.Int64(1_000_000), Wage: player.Int64(100_000)},
		{ID: "l2", ShortName: "L. Two", Nationality: "France", Age: player.Int(27), Positions: []string{"RW"}, Overall: player.Int(84), Potential: player.Int(85), ClubName: "Lyon", League: "Ligue 1", ContractEndYear: player.Int(2029), MarketValue: player.Int64(80_000_000), Wage: player.Int64(150_000), ReleaseClause: player.Int64(50_000_000)},
		{ID: "f1", ShortName: "F. One", Nationality: "Brazil", Age: player.Int(31), Positions: []string{"LB"}, Overall: player.Int(72), Potential: player.Int(72), ClubName: "Flamengo", League: "Brasileirao Serie A", ContractEndYear: player.Int(2025), Wage: player.Int64(50_000)},
		{ID: "f2", ShortName: "F. Two", Nationality: "Brazil", Age: player.Int(18), Positions: []string{"CAM"}, Overall: player.Int(76), Potential: player.Int(93), ClubName: "Flamengo", League: "Brasileirao Serie A", ContractEndYear: player.Int(2030)},
	}
}

type careerHarness struct {
	careers   *CareerService
	transfers *TransferService
	scouts    *ScoutService
	rng       *random.Scripted
}

func newHarness(t *testing.T, rng *random.Scripted) careerHarness {
	t.Helper()

	if rng == nil {
		rng = random.NewScripted([]float64{0.5}, []int{0})
	}
	careerRepo := memory.NewCareerRepository()
	clubRepo := memory.NewClubRepository(fixtureClubs())
	playerRepo := memory.NewPlayerRepository(fixturePlayers())
	locks := &resilience.KeyedMutex{}
	rules := transfer.DefaultRules()
	logger := logging.NewNop()

	careers := NewCareerService(careerRepo, clubRepo, playerRepo, locks, rules, &sequenceIDGenerator{prefix: "car-"}, logger)
	careers.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	return careerHarness{
		careers:   careers,
		transfers: NewTransferService(careerRepo, clubRepo, playerRepo, locks, rules, rng, &sequenceIDGenerator{prefix: "off-"}, logger),
		scouts:    NewScoutService(careerRepo, playerRepo, locks, rules),
		rng:       rng,
	}
}

func (f careerHarness) start(t *testing.T, windowOpen bool) string {
	t.Helper()

	c, err := f.careers.StartCareer(t.Context(), StartCareerInput{ClubID: "eng-ars", StartDate: fixtureStart, WindowOpen: windowOpen})
	if err != nil {
		t.Fatalf("start career: %v", err)
	}
	return c.ID
}
