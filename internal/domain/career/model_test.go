package career

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-career/internal/domain/player"
	"github.com/riskibarqy/football-career/internal/domain/transfer"
)

func TestCareer_SquadMembership(t *testing.T) {
	c := Career{Squad: []string{"a", "b"}}

	c.AddToSquad("b")
	c.AddToSquad("c")
	if len(c.Squad) != 3 || c.Squad[2] != "c" {
		t.Fatalf("unexpected squad %v", c.Squad)
	}

	if !c.RemoveFromSquad("a") {
		t.Fatalf("expected a removed")
	}
	if c.RemoveFromSquad("a") {
		t.Fatalf("second removal must report false")
	}
	if c.InSquad("a") || !c.InSquad("b") {
		t.Fatalf("unexpected squad %v", c.Squad)
	}
}

func TestCareer_ResolvePrefersOverride(t *testing.T) {
	var c Career
	pool := player.Player{ID: "p1", ClubName: "Lyon"}

	if got := c.Resolve(pool); got.ClubName != "Lyon" {
		t.Fatalf("expected pool player, got %s", got.ClubName)
	}

	signed := pool.Clone()
	signed.ClubName = "Arsenal"
	c.Override(signed)
	if got := c.Resolve(pool); got.ClubName != "Arsenal" {
		t.Fatalf("expected override, got %s", got.ClubName)
	}
}

func TestCareer_CloneDoesNotAlias(t *testing.T) {
	c := Career{
		ID:          "car-1",
		CurrentDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Squad:       []string{"a"},
		Offers:      []transfer.IncomingOffer{{ID: "o1"}},
	}
	c.Override(player.Player{ID: "a", Overall: player.Int(70)})

	cp := c.Clone()
	cp.Squad[0] = "z"
	cp.Offers[0].ID = "o9"
	*cp.Players["a"].Overall = 99

	if c.Squad[0] != "a" || c.Offers[0].ID != "o1" || *c.Players["a"].Overall != 70 {
		t.Fatalf("clone aliases original: %+v", c)
	}
	if c.CurrentYear() != 2025 {
		t.Fatalf("unexpected year %d", c.CurrentYear())
	}
}
