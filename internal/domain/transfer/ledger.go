package transfer

import (
	"github.com/riskibarqy/football-career/internal/domain/club"
	"github.com/riskibarqy/football-career/internal/domain/player"
)

// Budget tracks the money side of a career. WageBudget may be negative,
// meaning the club is over its wage bill.
type Budget struct {
	TransferBudget int64
	WageBudget     int64
	TotalWages     int64
}

// WageCap is the sustainable weekly wage bill of a club with this rating.
func WageCap(rules Rules, teamRating int) int64 {
	return int64(teamRating) * rules.WagePerRatingPoint
}

// OpeningBudget is the transfer budget a career starts with when the club
// record carries none.
func OpeningBudget(rules Rules, c club.Club) int64 {
	if c.TransferBudget > 0 {
		return c.TransferBudget
	}
	return int64(c.Overall) * rules.BudgetPerRatingPoint
}

// RecalcWages recomputes the wage ledger from the squad. Wages are never
// patched incrementally.
func (b Budget) RecalcWages(rules Rules, teamRating int, squad []player.Player) Budget {
	var total int64
	for _, p := range squad {
		total += Wage(p)
	}
	b.TotalWages = total
	b.WageBudget = WageCap(rules, teamRating) - total
	return b
}

func (b Budget) Debit(amount int64) Budget {
	b.TransferBudget -= amount
	return b
}

func (b Budget) Credit(amount int64) Budget {
	b.TransferBudget += amount
	return b
}
