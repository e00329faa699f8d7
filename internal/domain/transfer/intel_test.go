package transfer

import (
	"testing"

	"github.com/riskibarqy/football-career/internal/domain/player"
)

func TestResolveIntelTier(t *testing.T) {
	viewer := Viewer{League: "Premier League", Country: "England"}

	tests := []struct {
		name        string
		league      string
		nationality string
		potential   int
		want        IntelTier
	}{
		{name: "same league", league: "Premier League", nationality: "Brazil", potential: 70, want: TierFull},
		{name: "compatriot abroad", league: "La Liga", nationality: "England", potential: 70, want: TierPartial},
		{name: "same continent", league: "Ligue 1", nationality: "France", potential: 70, want: TierContinental},
		{name: "same continent elite stays continental", league: "Ligue 1", nationality: "France", potential: 95, want: TierContinental},
		{name: "distant prospect", league: "Serie A Brazil", nationality: "Brazil", potential: 85, want: TierDistant},
		{name: "unknown", league: "Serie A Brazil", nationality: "Brazil", potential: 75, want: TierUnknown},
		{name: "one step override", league: "Serie A Brazil", nationality: "Brazil", potential: 88, want: TierContinental},
		{name: "two step override", league: "Serie A Brazil", nationality: "Brazil", potential: 92, want: TierPartial},
		{name: "unmapped country", league: "Atlantis League", nationality: "Atlantis", potential: 60, want: TierUnknown},
		{name: "unmapped country prospect", league: "Atlantis League", nationality: "Atlantis", potential: 89, want: TierContinental},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := player.Player{League: tt.league, Nationality: tt.nationality, Potential: player.Int(tt.potential)}
			got := ResolveIntelTier(viewer, p)
			if got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
			if again := ResolveIntelTier(viewer, p); again != got {
				t.Fatalf("tier not deterministic: %s then %s", got, again)
			}
		})
	}
}

func TestResolveIntelTier_UnresolvableViewerContinent(t *testing.T) {
	viewer := Viewer{League: "Atlantis League", Country: "Atlantis"}
	p := player.Player{League: "Ligue 1", Nationality: "France", Potential: player.Int(85)}

	if got := ResolveIntelTier(viewer, p); got != TierDistant {
		t.Fatalf("expected distant, got %s", got)
	}
}

func TestResolveIntelTier_EmptyLeagueNeverFull(t *testing.T) {
	viewer := Viewer{Country: "England"}
	p := player.Player{Nationality: "Brazil", Potential: player.Int(60)}

	if got := ResolveIntelTier(viewer, p); got != TierUnknown {
		t.Fatalf("expected unknown, got %s", got)
	}
}

func TestApplyWorldClassOverride(t *testing.T) {
	tests := []struct {
		tier      IntelTier
		potential int
		want      IntelTier
	}{
		{tier: TierUnknown, potential: 92, want: TierContinental},
		{tier: TierUnknown, potential: 99, want: TierContinental},
		{tier: TierDistant, potential: 92, want: TierPartial},
		{tier: TierUnknown, potential: 88, want: TierDistant},
		{tier: TierDistant, potential: 88, want: TierContinental},
		{tier: TierUnknown, potential: 87, want: TierUnknown},
		{tier: TierFull, potential: 95, want: TierFull},
		{tier: TierPartial, potential: 95, want: TierPartial},
		{tier: TierContinental, potential: 95, want: TierContinental},
	}

	for _, tt := range tests {
		got := applyWorldClassOverride(tt.tier, tt.potential)
		if got != tt.want {
			t.Fatalf("override(%s,%d) = %s, want %s", tt.tier, tt.potential, got, tt.want)
		}
		if got.Rank() > tt.tier.Rank()+2 {
			t.Fatalf("override promoted %s by more than two steps to %s", tt.tier, got)
		}
	}
}

func TestContinentOf(t *testing.T) {
	if got := ContinentOf(" france "); got != "Europe" {
		t.Fatalf("expected Europe, got %s", got)
	}
	if got := ContinentOf("Brazil"); got != "South America" {
		t.Fatalf("expected South America, got %s", got)
	}
	if got := ContinentOf("Narnia"); got != ContinentUnknown {
		t.Fatalf("expected Unknown, got %s", got)
	}
}
