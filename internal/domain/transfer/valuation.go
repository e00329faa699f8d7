package transfer

import (
	"math"

	"github.com/riskibarqy/football-career/internal/domain/player"
)

// EstimateMarketValue derives a transfer value from rating and age when the
// pool has no explicit figure.
func EstimateMarketValue(overall, age int) int64 {
	value := math.Pow(1.22, float64(overall)) * 800
	if age > 30 {
		value *= 1 - float64(age-30)*0.08
	}
	if age < 23 {
		value *= 1.3
	}
	if value < 0 {
		return 0
	}
	return floorToThousand(value)
}

// EstimateWage derives a weekly wage from rating.
func EstimateWage(overall int) int64 {
	return int64(math.Floor(math.Pow(1.12, float64(overall)) * 120))
}

// MarketValue returns the explicit market value or the estimate.
func MarketValue(p player.Player) int64 {
	if p.MarketValue != nil {
		return *p.MarketValue
	}
	return EstimateMarketValue(player.ResolveOverall(p), player.ResolveAge(p))
}

// Wage returns the contracted wage, then the listed wage, then the estimate.
func Wage(p player.Player) int64 {
	if p.Contract != nil {
		return p.Contract.Wage
	}
	if p.Wage != nil {
		return *p.Wage
	}
	return EstimateWage(player.ResolveOverall(p))
}

func floorToThousand(v float64) int64 {
	return int64(math.Floor(v/1000)) * 1000
}
