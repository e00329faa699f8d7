package player

import (
	"fmt"
	"strings"
	"time"
)

// Position represents the broad role group of a player.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionForward    Position = "FWD"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionForward:    {},
}

var detailedPositionGroup = map[string]Position{
	"GK":  PositionGoalkeeper,
	"CB":  PositionDefender,
	"LB":  PositionDefender,
	"RB":  PositionDefender,
	"LWB": PositionDefender,
	"RWB": PositionDefender,
	"CDM": PositionMidfielder,
	"CM":  PositionMidfielder,
	"CAM": PositionMidfielder,
	"LM":  PositionMidfielder,
	"RM":  PositionMidfielder,
	"LW":  PositionForward,
	"RW":  PositionForward,
	"CF":  PositionForward,
	"ST":  PositionForward,
}

// Attributes holds the six headline ratings. Nil means the source had no value.
type Attributes struct {
	Pace      *int
	Shooting  *int
	Passing   *int
	Dribbling *int
	Defending *int
	Physic    *int
}

// Contract is attached to a player once a transfer into the user's club is finalised.
type Contract struct {
	Wage         int64
	LengthYears  int
	SigningBonus int64
	StartDate    time.Time
	EndYear      int
}

// Player is an entry of the global player pool. Optional numeric fields are
// pointers so that missing source data can fall back to estimates.
type Player struct {
	ID              string
	Name            string
	ShortName       string
	LongName        string
	Nationality     string
	Age             *int
	Positions       []string
	PreferredFoot   string
	WorkRate        string
	Traits          []string
	Overall         *int
	Potential       *int
	Attributes      Attributes
	MarketValue     *int64
	Wage            *int64
	ReleaseClause   *int64
	ClubName        string
	League          string
	ContractEndYear *int
	FaceURL         string
	ClubLogoURL     string
	NationFlagURL   string
	Contract        *Contract
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.DisplayName() == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Overall != nil && (*p.Overall < 0 || *p.Overall > 99) {
		return fmt.Errorf("player overall out of range: %d", *p.Overall)
	}

	return nil
}

// DisplayName prefers the short name used by search.
func (p Player) DisplayName() string {
	if p.ShortName != "" {
		return p.ShortName
	}
	if p.Name != "" {
		return p.Name
	}
	return p.LongName
}

// PositionString joins all listed positions, e.g. "ST, LW".
func (p Player) PositionString() string {
	return strings.Join(p.Positions, ", ")
}

// PrimaryCategory maps the first listed position onto its role group.
func (p Player) PrimaryCategory() (Position, bool) {
	if len(p.Positions) == 0 {
		return "", false
	}
	group, ok := detailedPositionGroup[strings.ToUpper(strings.TrimSpace(p.Positions[0]))]
	return group, ok
}

// IsFreeAgent reports whether the contract has run out by currentYear.
// Players without a known contract end are never free agents.
func (p Player) IsFreeAgent(currentYear int) bool {
	return p.ContractEndYear != nil && *p.ContractEndYear <= currentYear
}

// Clone copies slice and pointer fields so callers can mutate the result.
func (p Player) Clone() Player {
	out := p
	out.Positions = append([]string(nil), p.Positions...)
	out.Traits = append([]string(nil), p.Traits...)
	out.Age = cloneInt(p.Age)
	out.Overall = cloneInt(p.Overall)
	out.Potential = cloneInt(p.Potential)
	out.ContractEndYear = cloneInt(p.ContractEndYear)
	out.MarketValue = cloneInt64(p.MarketValue)
	out.Wage = cloneInt64(p.Wage)
	out.ReleaseClause = cloneInt64(p.ReleaseClause)
	out.Attributes = Attributes{
		Pace:      cloneInt(p.Attributes.Pace),
		Shooting:  cloneInt(p.Attributes.Shooting),
		Passing:   cloneInt(p.Attributes.Passing),
		Dribbling: cloneInt(p.Attributes.Dribbling),
		Defending: cloneInt(p.Attributes.Defending),
		Physic:    cloneInt(p.Attributes.Physic),
	}
	if p.Contract != nil {
		c := *p.Contract
		out.Contract = &c
	}
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Int and Int64 build optional fields in literals and tests.
func Int(v int) *int       { return &v }
func Int64(v int64) *int64 { return &v }
