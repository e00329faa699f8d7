package career

import (
	"fmt"
	"slices"
	"time"

	"github.com/riskibarqy/football-career/internal/domain/player"
	"github.com/riskibarqy/football-career/internal/domain/transfer"
)

// Career is one user-controlled club session. Players holds career-local
// copies of pool players changed by deals; the shared pool is never mutated.
type Career struct {
	ID          string
	ClubID      string
	ClubName    string
	League      string
	Country     string
	Rating      int
	CurrentDate time.Time
	WindowOpen  bool
	Budget      transfer.Budget
	Squad       []string
	Players     map[string]player.Player
	Offers      []transfer.IncomingOffer
	History     []transfer.HistoryEntry
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Career) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("career id is required")
	}
	if c.ClubID == "" || c.ClubName == "" {
		return fmt.Errorf("career club is required")
	}
	if c.CurrentDate.IsZero() {
		return fmt.Errorf("career current date is required")
	}

	return nil
}

// CurrentYear is the in-game year used for contract expiry checks.
func (c Career) CurrentYear() int {
	return c.CurrentDate.Year()
}

// Viewer is the scouting vantage point of the user's club.
func (c Career) Viewer() transfer.Viewer {
	return transfer.Viewer{League: c.League, Country: c.Country}
}

func (c Career) InSquad(playerID string) bool {
	return slices.Contains(c.Squad, playerID)
}

// AddToSquad appends playerID unless it is already present.
func (c *Career) AddToSquad(playerID string) {
	if c.InSquad(playerID) {
		return
	}
	c.Squad = append(c.Squad, playerID)
}

// RemoveFromSquad reports whether playerID was present.
func (c *Career) RemoveFromSquad(playerID string) bool {
	idx := slices.Index(c.Squad, playerID)
	if idx < 0 {
		return false
	}
	c.Squad = slices.Delete(c.Squad, idx, idx+1)
	return true
}

// Override stores a career-local copy of p.
func (c *Career) Override(p player.Player) {
	if c.Players == nil {
		c.Players = make(map[string]player.Player)
	}
	c.Players[p.ID] = p
}

// Resolve returns the career's view of a pool player.
func (c Career) Resolve(p player.Player) player.Player {
	if local, ok := c.Players[p.ID]; ok {
		return local
	}
	return p
}

func (c Career) FindOffer(offerID string) (transfer.IncomingOffer, bool) {
	for _, o := range c.Offers {
		if o.ID == offerID {
			return o, true
		}
	}
	return transfer.IncomingOffer{}, false
}

// Clone deep-copies the mutable collections so stored careers never alias
// caller memory.
func (c Career) Clone() Career {
	out := c
	out.Squad = slices.Clone(c.Squad)
	out.Offers = slices.Clone(c.Offers)
	out.History = slices.Clone(c.History)
	if c.Players != nil {
		out.Players = make(map[string]player.Player, len(c.Players))
		for id, p := range c.Players {
			out.Players[id] = p.Clone()
		}
	}
	return out
}
