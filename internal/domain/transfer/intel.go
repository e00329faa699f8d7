package transfer

import (
	"strings"

	"github.com/riskibarqy/football-career/internal/domain/player"
)

// IntelTier is how much scouting information is visible for a player.
type IntelTier string

const (
	TierFull        IntelTier = "full"
	TierPartial     IntelTier = "partial"
	TierContinental IntelTier = "continental"
	TierDistant     IntelTier = "distant"
	TierUnknown     IntelTier = "unknown"
)

var tierRank = map[IntelTier]int{
	TierUnknown:     0,
	TierDistant:     1,
	TierContinental: 2,
	TierPartial:     3,
	TierFull:        4,
}

// Rank orders tiers from unknown (0) to full (4).
func (t IntelTier) Rank() int {
	return tierRank[t]
}

const (
	distantPotential    = 80
	eliteProspectStep   = 88
	eliteProspectDouble = 92
)

// Viewer is the scouting position of the user's club.
type Viewer struct {
	League  string
	Country string
}

// ResolveIntelTier classifies p relative to the viewer. It depends only on
// the viewer, the player's league, nationality and potential.
func ResolveIntelTier(v Viewer, p player.Player) IntelTier {
	potential := player.ResolvePotential(p)
	playerContinent := ContinentOf(p.Nationality)
	viewerContinent := ContinentOf(v.Country)

	var tier IntelTier
	switch {
	case sameName(p.League, v.League):
		tier = TierFull
	case sameName(p.Nationality, v.Country):
		tier = TierPartial
	case playerContinent != ContinentUnknown && playerContinent == viewerContinent:
		tier = TierContinental
	case potential >= distantPotential:
		tier = TierDistant
	default:
		tier = TierUnknown
	}

	if playerContinent != viewerContinent || playerContinent == ContinentUnknown {
		tier = applyWorldClassOverride(tier, potential)
	}
	return tier
}

// applyWorldClassOverride promotes unknown/distant tiers for elite prospects:
// two steps at 92+, one step at 88+. Higher tiers are left alone.
func applyWorldClassOverride(tier IntelTier, potential int) IntelTier {
	if tier != TierUnknown && tier != TierDistant {
		return tier
	}

	switch {
	case potential >= eliteProspectDouble:
		if tier == TierUnknown {
			return TierContinental
		}
		return TierPartial
	case potential >= eliteProspectStep:
		if tier == TierUnknown {
			return TierDistant
		}
		return TierContinental
	default:
		return tier
	}
}

func sameName(a, b string) bool {
	a = strings.TrimSpace(a)
	return a != "" && a == strings.TrimSpace(b)
}
