package transfer

import (
	"fmt"

	"github.com/riskibarqy/football-career/internal/domain/player"
)

// ContractOffer is the personal-terms proposal made to a player.
type ContractOffer struct {
	LengthYears  int
	WeeklyWage   int64
	SigningBonus int64
}

// ContractInput carries the offer and the budget figures it is checked against.
// Fee is the agreed transfer fee, zero for free agents.
type ContractInput struct {
	Player         player.Player
	Offer          ContractOffer
	Fee            int64
	WageBudget     int64
	TransferBudget int64
	ClubRating     int
}

// ContractOutcome is the player's answer. On StatusCounter the player asks
// for CounterWage over CounterLength years.
type ContractOutcome struct {
	Success       bool
	Status        Status
	Message       string
	Score         int
	MinLength     int
	CounterWage   int64
	CounterLength int
}

// MinContractLength is the shortest deal a player of this age considers.
func MinContractLength(rules Rules, age int) int {
	switch {
	case age < rules.YoungAgeLimit:
		return rules.YoungMinLength
	case age < rules.PrimeAgeLimit:
		return rules.PrimeMinLength
	default:
		return rules.VeteranMinLength
	}
}

// EvaluateContract scores an offer. It is a pure function of its input.
func EvaluateContract(rules Rules, in ContractInput) ContractOutcome {
	p := in.Player
	name := p.DisplayName()
	offer := in.Offer

	if offer.WeeklyWage > in.WageBudget+rules.WageBudgetSlack {
		return ContractOutcome{
			Status:  StatusWageBudget,
			Message: fmt.Sprintf("A weekly wage of %s exceeds the remaining wage budget of %s.", FormatMoney(offer.WeeklyWage), FormatMoney(in.WageBudget)),
		}
	}
	if in.Fee > in.TransferBudget || offer.SigningBonus > in.TransferBudget-in.Fee {
		return ContractOutcome{
			Status:  StatusTransferBudget,
			Message: fmt.Sprintf("Fee plus signing bonus (%s) exceeds the transfer budget of %s.", FormatMoney(addCapped(in.Fee, offer.SigningBonus)), FormatMoney(in.TransferBudget)),
		}
	}

	currentWage := Wage(p)
	minLength := MinContractLength(rules, player.ResolveAge(p))
	score := contractScore(rules, offer, currentWage, minLength, in.ClubRating)

	out := ContractOutcome{Score: score, MinLength: minLength}
	switch {
	case score >= rules.AcceptScore:
		out.Success = true
		out.Status = StatusAccepted
		out.Message = fmt.Sprintf("%s accepted a %d-year deal at %s per week.", name, offer.LengthYears, FormatMoney(offer.WeeklyWage))
	case score >= rules.CounterScore:
		out.Status = StatusCounter
		out.CounterWage = floorToThousand(float64(currentWage) * rules.CounterWageFactor)
		out.CounterLength = max(offer.LengthYears, minLength)
		out.Message = fmt.Sprintf("%s asks for %s per week over %d years.", name, FormatMoney(out.CounterWage), out.CounterLength)
	default:
		out.Status = StatusRejected
		out.Message = fmt.Sprintf("%s rejected the contract offer.", name)
	}
	return out
}

func contractScore(rules Rules, offer ContractOffer, currentWage int64, minLength, clubRating int) int {
	score := 0

	switch {
	case atLeastPct(offer.WeeklyWage, currentWage, 110):
		score += 3
	case atLeastPct(offer.WeeklyWage, currentWage, 100):
		score += 2
	case atLeastPct(offer.WeeklyWage, currentWage, 90):
		score++
	default:
		score -= 2
	}

	switch {
	case offer.LengthYears >= minLength+1:
		score += 2
	case offer.LengthYears >= minLength:
		score++
	default:
		score--
	}

	switch {
	case offer.SigningBonus >= currentWage*rules.BonusHighMultiplier:
		score += 2
	case offer.SigningBonus >= currentWage*rules.BonusLowMultiplier:
		score++
	}

	if clubRating >= rules.PrestigeRating {
		score++
	}
	return score
}
