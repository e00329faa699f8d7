package transfer

import "github.com/riskibarqy/football-career/internal/domain/player"

// HiddenText replaces club and league when nothing is known about a player.
const HiddenText = "???"

// Estimate is a scouted number: either the exact Value or a [Min, Max] range.
// Ranges never carry the true value. Absent values are a nil *Estimate.
type Estimate struct {
	Value   int64
	Min     int64
	Max     int64
	IsRange bool
}

func exact(v int64) *Estimate {
	return &Estimate{Value: v, Min: v, Max: v}
}

func spread(v, by int64) *Estimate {
	lo := v - by
	if lo < 0 {
		lo = 0
	}
	return &Estimate{Min: lo, Max: v + by, IsRange: true}
}

// AttributeReport mirrors player.Attributes with tier-dependent precision.
type AttributeReport struct {
	Pace      *Estimate
	Shooting  *Estimate
	Passing   *Estimate
	Dribbling *Estimate
	Defending *Estimate
	Physic    *Estimate
}

// ScoutReport is a tier-stamped, partially redacted projection of a player.
type ScoutReport struct {
	PlayerID      string
	Name          string
	ShortName     string
	Positions     string
	Category      player.Position
	Nationality   string
	Tier          IntelTier
	Age           *int
	ClubName      string
	League        string
	Overall       *Estimate
	Potential     *Estimate
	Attributes    *AttributeReport
	MarketValue   *Estimate
	Wage          *Estimate
	ReleaseClause *int64
	FaceURL       string
	ClubLogoURL   string
	NationFlagURL string
}

type tierPolicy struct {
	showAge         bool
	showAffiliation bool
	ratingSpread    int64 // 0 = exact
	potentialSpread int64
	attributes      bool
	attributeSpread int64
	money           bool
	moneySpreadPct  int64
}

var tierPolicies = map[IntelTier]tierPolicy{
	TierFull:        {showAge: true, showAffiliation: true, attributes: true, money: true},
	TierPartial:     {showAge: true, showAffiliation: true, attributes: true, attributeSpread: 4, money: true},
	TierContinental: {showAge: true, showAffiliation: true, ratingSpread: 3, potentialSpread: 4, attributes: true, attributeSpread: 8, money: true, moneySpreadPct: 20},
	TierDistant:     {showAge: true, showAffiliation: true, ratingSpread: 6, potentialSpread: 7},
	TierUnknown:     {ratingSpread: 8, potentialSpread: 9},
}

// BuildScoutReport projects p for the given tier. Reports are never cached:
// callers rebuild them on every query so they track player mutations.
func BuildScoutReport(p player.Player, tier IntelTier) ScoutReport {
	policy, ok := tierPolicies[tier]
	if !ok {
		tier = TierUnknown
		policy = tierPolicies[TierUnknown]
	}

	category, _ := p.PrimaryCategory()
	report := ScoutReport{
		PlayerID:      p.ID,
		Name:          p.Name,
		ShortName:     p.DisplayName(),
		Positions:     p.PositionString(),
		Category:      category,
		Nationality:   p.Nationality,
		Tier:          tier,
		ClubName:      HiddenText,
		League:        HiddenText,
		Overall:       estimateOf(int64(player.ResolveOverall(p)), policy.ratingSpread),
		Potential:     estimateOf(int64(player.ResolvePotential(p)), policy.potentialSpread),
		FaceURL:       p.FaceURL,
		ClubLogoURL:   p.ClubLogoURL,
		NationFlagURL: p.NationFlagURL,
	}
	if p.ReleaseClause != nil {
		v := *p.ReleaseClause
		report.ReleaseClause = &v
	}

	if policy.showAge && p.Age != nil {
		age := *p.Age
		report.Age = &age
	}
	if policy.showAffiliation {
		report.ClubName = p.ClubName
		report.League = p.League
	}
	if policy.attributes {
		attrs := player.CoreAttributes(p)
		report.Attributes = &AttributeReport{
			Pace:      estimateOf(int64(attrs[0]), policy.attributeSpread),
			Shooting:  estimateOf(int64(attrs[1]), policy.attributeSpread),
			Passing:   estimateOf(int64(attrs[2]), policy.attributeSpread),
			Dribbling: estimateOf(int64(attrs[3]), policy.attributeSpread),
			Defending: estimateOf(int64(attrs[4]), policy.attributeSpread),
			Physic:    estimateOf(int64(attrs[5]), policy.attributeSpread),
		}
	}
	if policy.money {
		value := MarketValue(p)
		wage := Wage(p)
		if policy.moneySpreadPct > 0 {
			report.MarketValue = spread(value, value*policy.moneySpreadPct/100)
			report.Wage = spread(wage, wage*policy.moneySpreadPct/100)
		} else {
			report.MarketValue = exact(value)
			report.Wage = exact(wage)
		}
	}

	return report
}

func estimateOf(v, by int64) *Estimate {
	if by == 0 {
		return exact(v)
	}
	return spread(v, by)
}
