package httpapi

import (
	"time"

	"github.com/riskibarqy/football-career/internal/domain/career"
	"github.com/riskibarqy/football-career/internal/domain/club"
	"github.com/riskibarqy/football-career/internal/domain/player"
	"github.com/riskibarqy/football-career/internal/domain/transfer"
	"github.com/riskibarqy/football-career/internal/usecase"
)

const dateLayout = time.DateOnly

type clubDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	League         string `json:"league"`
	Country        string `json:"country"`
	Overall        int    `json:"overall"`
	TransferBudget int64  `json:"transfer_budget"`
}

type budgetDTO struct {
	TransferBudget        int64  `json:"transfer_budget"`
	WageBudget            int64  `json:"wage_budget"`
	TotalWages            int64  `json:"total_wages"`
	TransferBudgetDisplay string `json:"transfer_budget_display"`
	WageBudgetDisplay     string `json:"wage_budget_display"`
	OverWageBudget        bool   `json:"over_wage_budget"`
}

type careerDTO struct {
	ID            string    `json:"id"`
	ClubID        string    `json:"club_id"`
	ClubName      string    `json:"club_name"`
	League        string    `json:"league"`
	Country       string    `json:"country"`
	Rating        int       `json:"rating"`
	CurrentDate   string    `json:"current_date"`
	WindowOpen    bool      `json:"window_open"`
	Budget        budgetDTO `json:"budget"`
	SquadSize     int       `json:"squad_size"`
	PendingOffers int       `json:"pending_offers"`
	Transfers     int       `json:"transfers"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type contractDTO struct {
	Wage         int64  `json:"wage"`
	LengthYears  int    `json:"length_years"`
	SigningBonus int64  `json:"signing_bonus"`
	StartDate    string `json:"start_date"`
	EndYear      int    `json:"end_year"`
}

type squadPlayerDTO struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	ShortName       string       `json:"short_name"`
	Nationality     string       `json:"nationality"`
	Age             *int         `json:"age"`
	Positions       string       `json:"positions"`
	Category        string       `json:"category"`
	Overall         int          `json:"overall"`
	Potential       int          `json:"potential"`
	MarketValue     int64        `json:"market_value"`
	Wage            int64        `json:"wage"`
	ReleaseClause   *int64       `json:"release_clause"`
	ClubName        string       `json:"club_name"`
	League          string       `json:"league"`
	ContractEndYear *int         `json:"contract_end_year"`
	Contract        *contractDTO `json:"contract,omitempty"`
}

type attributeReportDTO struct {
	Pace      any `json:"pace"`
	Shooting  any `json:"shooting"`
	Passing   any `json:"passing"`
	Dribbling any `json:"dribbling"`
	Defending any `json:"defending"`
	Physic    any `json:"physic"`
}

type rangeDTO struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Scouted numbers render as a plain number, a {min,max} object or null.
type scoutReportDTO struct {
	PlayerID      string              `json:"player_id"`
	Name          string              `json:"name"`
	ShortName     string              `json:"short_name"`
	Positions     string              `json:"positions"`
	Category      string              `json:"category"`
	Nationality   string              `json:"nationality"`
	IntelTier     string              `json:"intel_tier"`
	Age           *int                `json:"age"`
	ClubName      string              `json:"club_name"`
	League        string              `json:"league"`
	Overall       any                 `json:"overall"`
	Potential     any                 `json:"potential"`
	Attributes    *attributeReportDTO `json:"attributes"`
	MarketValue   any                 `json:"market_value"`
	Wage          any                 `json:"wage"`
	ReleaseClause *int64              `json:"release_clause"`
	FaceURL       string              `json:"face_url,omitempty"`
	ClubLogoURL   string              `json:"club_logo_url,omitempty"`
	NationFlagURL string              `json:"nation_flag_url,omitempty"`
}

type bidOutcomeDTO struct {
	Success       bool   `json:"success"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	Fee           int64  `json:"fee"`
	CounterAmount int64  `json:"counter_amount,omitempty"`
	MarketValue   int64  `json:"market_value,omitempty"`
}

type contractResultDTO struct {
	Success       bool            `json:"success"`
	Status        string          `json:"status"`
	Message       string          `json:"message"`
	Score         int             `json:"score"`
	MinLength     int             `json:"min_length"`
	CounterWage   int64           `json:"counter_wage,omitempty"`
	CounterLength int             `json:"counter_length,omitempty"`
	Player        *squadPlayerDTO `json:"player,omitempty"`
	Budget        budgetDTO       `json:"budget"`
}

type dealResultDTO struct {
	Success bool            `json:"success"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Fee     int64           `json:"fee"`
	Player  *squadPlayerDTO `json:"player,omitempty"`
	Budget  budgetDTO       `json:"budget"`
}

type offerDTO struct {
	ID            string `json:"id"`
	PlayerID      string `json:"player_id"`
	PlayerName    string `json:"player_name"`
	ClubID        string `json:"club_id"`
	ClubName      string `json:"club_name"`
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	CreatedAt     string `json:"created_at"`
	Status        string `json:"status"`
}

type offerResultDTO struct {
	Success bool      `json:"success"`
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Offer   *offerDTO `json:"offer,omitempty"`
	Budget  budgetDTO `json:"budget"`
}

type offerTickDTO struct {
	Generated bool      `json:"generated"`
	Offer     *offerDTO `json:"offer,omitempty"`
	Message   string    `json:"message"`
}

type historyEntryDTO struct {
	Direction    string `json:"direction"`
	PlayerID     string `json:"player_id"`
	PlayerName   string `json:"player_name"`
	Fee          int64  `json:"fee"`
	Wage         int64  `json:"wage"`
	Counterparty string `json:"counterparty"`
	Date         string `json:"date"`
}

func clubToDTO(c club.Club) clubDTO {
	return clubDTO{
		ID:             c.ID,
		Name:           c.Name,
		League:         c.League,
		Country:        c.Country,
		Overall:        c.Overall,
		TransferBudget: c.TransferBudget,
	}
}

func budgetToDTO(b transfer.Budget) budgetDTO {
	return budgetDTO{
		TransferBudget:        b.TransferBudget,
		WageBudget:            b.WageBudget,
		TotalWages:            b.TotalWages,
		TransferBudgetDisplay: transfer.FormatMoney(b.TransferBudget),
		WageBudgetDisplay:     transfer.FormatMoney(b.WageBudget),
		OverWageBudget:        b.WageBudget < 0,
	}
}

func careerToDTO(c career.Career) careerDTO {
	return careerDTO{
		ID:            c.ID,
		ClubID:        c.ClubID,
		ClubName:      c.ClubName,
		League:        c.League,
		Country:       c.Country,
		Rating:        c.Rating,
		CurrentDate:   c.CurrentDate.Format(dateLayout),
		WindowOpen:    c.WindowOpen,
		Budget:        budgetToDTO(c.Budget),
		SquadSize:     len(c.Squad),
		PendingOffers: len(c.Offers),
		Transfers:     len(c.History),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func playerToDTO(p player.Player) squadPlayerDTO {
	category, _ := p.PrimaryCategory()
	out := squadPlayerDTO{
		ID:              p.ID,
		Name:            p.Name,
		ShortName:       p.DisplayName(),
		Nationality:     p.Nationality,
		Age:             p.Age,
		Positions:       p.PositionString(),
		Category:        string(category),
		Overall:         player.ResolveOverall(p),
		Potential:       player.ResolvePotential(p),
		MarketValue:     transfer.MarketValue(p),
		Wage:            transfer.Wage(p),
		ReleaseClause:   p.ReleaseClause,
		ClubName:        p.ClubName,
		League:          p.League,
		ContractEndYear: p.ContractEndYear,
	}
	if p.Contract != nil {
		out.Contract = &contractDTO{
			Wage:         p.Contract.Wage,
			LengthYears:  p.Contract.LengthYears,
			SigningBonus: p.Contract.SigningBonus,
			StartDate:    p.Contract.StartDate.Format(dateLayout),
			EndYear:      p.Contract.EndYear,
		}
	}
	return out
}

func optionalPlayerToDTO(p *player.Player) *squadPlayerDTO {
	if p == nil {
		return nil
	}
	out := playerToDTO(*p)
	return &out
}

func estimateValue(e *transfer.Estimate) any {
	if e == nil {
		return nil
	}
	if e.IsRange {
		return rangeDTO{Min: e.Min, Max: e.Max}
	}
	return e.Value
}

func scoutReportToDTO(r transfer.ScoutReport) scoutReportDTO {
	out := scoutReportDTO{
		PlayerID:      r.PlayerID,
		Name:          r.Name,
		ShortName:     r.ShortName,
		Positions:     r.Positions,
		Category:      string(r.Category),
		Nationality:   r.Nationality,
		IntelTier:     string(r.Tier),
		Age:           r.Age,
		ClubName:      r.ClubName,
		League:        r.League,
		Overall:       estimateValue(r.Overall),
		Potential:     estimateValue(r.Potential),
		MarketValue:   estimateValue(r.MarketValue),
		Wage:          estimateValue(r.Wage),
		ReleaseClause: r.ReleaseClause,
		FaceURL:       r.FaceURL,
		ClubLogoURL:   r.ClubLogoURL,
		NationFlagURL: r.NationFlagURL,
	}
	if r.Attributes != nil {
		out.Attributes = &attributeReportDTO{
			Pace:      estimateValue(r.Attributes.Pace),
			Shooting:  estimateValue(r.Attributes.Shooting),
			Passing:   estimateValue(r.Attributes.Passing),
			Dribbling: estimateValue(r.Attributes.Dribbling),
			Defending: estimateValue(r.Attributes.Defending),
			Physic:    estimateValue(r.Attributes.Physic),
		}
	}
	return out
}

func bidOutcomeToDTO(o transfer.BidOutcome) bidOutcomeDTO {
	return bidOutcomeDTO{
		Success:       o.Success,
		Status:        string(o.Status),
		Message:       o.Message,
		Fee:           o.Fee,
		CounterAmount: o.CounterAmount,
		MarketValue:   o.MarketValue,
	}
}

func contractResultToDTO(r usecase.ContractResult) contractResultDTO {
	return contractResultDTO{
		Success:       r.Success,
		Status:        string(r.Status),
		Message:       r.Message,
		Score:         r.Score,
		MinLength:     r.MinLength,
		CounterWage:   r.CounterWage,
		CounterLength: r.CounterLength,
		Player:        optionalPlayerToDTO(r.Player),
		Budget:        budgetToDTO(r.Budget),
	}
}

func dealResultToDTO(r usecase.DealResult) dealResultDTO {
	return dealResultDTO{
		Success: r.Success,
		Status:  string(r.Status),
		Message: r.Message,
		Fee:     r.Fee,
		Player:  optionalPlayerToDTO(r.Player),
		Budget:  budgetToDTO(r.Budget),
	}
}

func offerToDTO(o transfer.IncomingOffer) offerDTO {
	return offerDTO{
		ID:            o.ID,
		PlayerID:      o.PlayerID,
		PlayerName:    o.PlayerName,
		ClubID:        o.ClubID,
		ClubName:      o.ClubName,
		Amount:        o.Amount,
		AmountDisplay: transfer.FormatMoney(o.Amount),
		CreatedAt:     o.CreatedAt.Format(dateLayout),
		Status:        string(o.Status),
	}
}

func offerResultToDTO(r usecase.OfferResult) offerResultDTO {
	out := offerResultDTO{
		Success: r.Success,
		Status:  string(r.Status),
		Message: r.Message,
		Budget:  budgetToDTO(r.Budget),
	}
	if r.Offer.ID != "" {
		offer := offerToDTO(r.Offer)
		out.Offer = &offer
	}
	return out
}

func offerTickToDTO(t usecase.OfferTick) offerTickDTO {
	out := offerTickDTO{Generated: t.Generated, Message: t.Message}
	if t.Offer != nil {
		offer := offerToDTO(*t.Offer)
		out.Offer = &offer
	}
	return out
}

func historyEntryToDTO(e transfer.HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		Direction:    string(e.Direction),
		PlayerID:     e.PlayerID,
		PlayerName:   e.PlayerName,
		Fee:          e.Fee,
		Wage:         e.Wage,
		Counterparty: e.Counterparty,
		Date:         e.Date.Format(dateLayout),
	}
}
