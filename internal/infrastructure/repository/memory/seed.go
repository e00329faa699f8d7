package memory

import (
	"github.com/riskibarqy/football-career/internal/domain/club"
	"github.com/riskibarqy/football-career/internal/domain/player"
)

const (
	LeaguePremierLeague = "Premier League"
	LeagueLaLiga        = "La Liga"
	LeagueLigue1        = "Ligue 1"
	LeagueLigaPortugal  = "Liga Portugal"
	LeagueBrasileirao   = "Brasileirao Serie A"
	LeagueMLS           = "Major League Soccer"
	LeagueJ1            = "J1 League"
)

func SeedClubs() []club.Club {
	return []club.Club{
		{ID: "eng-ars", Name: "Arsenal", League: LeaguePremierLeague, Country: "England", Overall: 84, TransferBudget: 120_000_000},
		{ID: "eng-new", Name: "Newcastle United", League: LeaguePremierLeague, Country: "England", Overall: 80, TransferBudget: 70_000_000},
		{ID: "eng-bri", Name: "Brighton", League: LeaguePremierLeague, Country: "England", Overall: 77, TransferBudget: 45_000_000},
		{ID: "esp-sev", Name: "Sevilla", League: LeagueLaLiga, Country: "Spain", Overall: 78, TransferBudget: 35_000_000},
		{ID: "esp-vil", Name: "Villarreal", League: LeagueLaLiga, Country: "Spain", Overall: 79, TransferBudget: 40_000_000},
		{ID: "fra-lyo", Name: "Lyon", League: LeagueLigue1, Country: "France", Overall: 78, TransferBudget: 30_000_000},
		{ID: "fra-mar", Name: "Marseille", League: LeagueLigue1, Country: "France", Overall: 79, TransferBudget: 38_000_000},
		{ID: "por-por", Name: "Porto", League: LeagueLigaPortugal, Country: "Portugal", Overall: 78, TransferBudget: 25_000_000},
		{ID: "por-ben", Name: "Benfica", League: LeagueLigaPortugal, Country: "Portugal", Overall: 79, TransferBudget: 28_000_000},
		{ID: "bra-fla", Name: "Flamengo", League: LeagueBrasileirao, Country: "Brazil", Overall: 76, TransferBudget: 20_000_000},
		{ID: "bra-pal", Name: "Palmeiras", League: LeagueBrasileirao, Country: "Brazil", Overall: 75, TransferBudget: 18_000_000},
		{ID: "usa-lag", Name: "LA Galaxy", League: LeagueMLS, Country: "United States", Overall: 71, TransferBudget: 12_000_000},
		{ID: "jpn-kaw", Name: "Kawasaki Frontale", League: LeagueJ1, Country: "Japan", Overall: 70},
	}
}

type seedRow struct {
	id, short, long, nation string
	age                     int
	positions               []string
	overall, potential      int
	clubName, league        string
	contractEnd             int
	marketValue, wage       int64
	releaseClause           int64
	attrs                   [6]int
}

// SeedPlayers returns a small mixed pool. Some rows deliberately omit ratings
// or money so the fallbacks are exercised in dev.
func SeedPlayers() []player.Player {
	rows := []seedRow{
		{id: "p-0001", short: "D. Ramsdale", long: "Daniel Ramsdale", nation: "England", age: 27, positions: []string{"GK"}, overall: 82, potential: 84, clubName: "Arsenal", league: LeaguePremierLeague, contractEnd: 2027, marketValue: 28_000_000, wage: 90_000, attrs: [6]int{50, 20, 62, 45, 30, 70}},
		{id: "p-0002", short: "T. Okoro", long: "Tobi Okoro", nation: "Nigeria", age: 24, positions: []string{"CB", "RB"}, overall: 83, potential: 87, clubName: "Arsenal", league: LeaguePremierLeague, contractEnd: 2028, marketValue: 45_000_000, wage: 110_000, attrs: [6]int{78, 40, 65, 66, 85, 82}},
		{id: "p-0003", short: "M. Hale", long: "Marcus Hale", nation: "England", age: 29, positions: []string{"CM", "CDM"}, overall: 85, potential: 85, clubName: "Arsenal", league: LeaguePremierLeague, contractEnd: 2026, marketValue: 55_000_000, wage: 160_000, releaseClause: 110_000_000, attrs: [6]int{70, 74, 86, 80, 76, 79}},
		{id: "p-0004", short: "L. Sørensen", long: "Lukas Sørensen", nation: "Denmark", age: 21, positions: []string{"LW", "ST"}, overall: 80, potential: 89, clubName: "Arsenal", league: LeaguePremierLeague, contractEnd: 2029, attrs: [6]int{90, 78, 72, 85, 35, 68}},
		{id: "p-0005", short: "J. Whitaker", long: "James Whitaker", nation: "England", age: 31, positions: []string{"ST"}, overall: 81, potential: 81, clubName: "Newcastle United", league: LeaguePremierLeague, contractEnd: 2025, wage: 85_000, attrs: [6]int{74, 84, 68, 75, 38, 80}},
		{id: "p-0006", short: "A. Isaksen", long: "Alexander Isaksen", nation: "Sweden", age: 26, positions: []string{"ST", "LW"}, overall: 86, potential: 87, clubName: "Newcastle United", league: LeaguePremierLeague, contractEnd: 2028, marketValue: 75_000_000, wage: 140_000, releaseClause: 150_000_000, attrs: [6]int{88, 85, 74, 84, 33, 76}},
		{id: "p-0007", short: "K. Mitoma", long: "Kenji Mitoma", nation: "Japan", age: 28, positions: []string{"LW", "LM"}, overall: 80, potential: 80, clubName: "Brighton", league: LeaguePremierLeague, contractEnd: 2027, attrs: [6]int{86, 72, 76, 87, 30, 62}},
		{id: "p-0008", short: "C. Ferreira", long: "Carlos Ferreira", nation: "Portugal", age: 22, positions: []string{"RB"}, overall: 76, potential: 84, clubName: "Brighton", league: LeaguePremierLeague, contractEnd: 2028, attrs: [6]int{84, 50, 70, 74, 74, 72}},
		{id: "p-0009", short: "I. Navas", long: "Iván Navas", nation: "Spain", age: 33, positions: []string{"RM", "RB"}, overall: 79, potential: 79, clubName: "Sevilla", league: LeagueLaLiga, contractEnd: 2025, marketValue: 4_000_000, wage: 40_000, attrs: [6]int{72, 66, 78, 76, 70, 68}},
		{id: "p-0010", short: "Y. En-Nesyri", long: "Youssef En-Nesyri", nation: "Morocco", age: 27, positions: []string{"ST"}, overall: 81, potential: 82, clubName: "Sevilla", league: LeagueLaLiga, contractEnd: 2027, marketValue: 24_000_000, wage: 70_000, releaseClause: 40_000_000, attrs: [6]int{80, 82, 60, 73, 40, 84}},
		{id: "p-0011", short: "P. Torres", long: "Pau Torres", nation: "Spain", age: 27, positions: []string{"CB"}, overall: 82, potential: 83, clubName: "Villarreal", league: LeagueLaLiga, contractEnd: 2026, attrs: [6]int{66, 45, 74, 68, 84, 78}},
		{id: "p-0012", short: "Á. Baena", long: "Álex Baena", nation: "Spain", age: 23, positions: []string{"CAM", "LM"}, overall: 81, potential: 86, clubName: "Villarreal", league: LeagueLaLiga, contractEnd: 2029, releaseClause: 60_000_000, attrs: [6]int{76, 75, 84, 83, 48, 64}},
		{id: "p-0013", short: "R. Cherki", long: "Rayan Cherki", nation: "France", age: 21, positions: []string{"CAM", "RW"}, overall: 80, potential: 90, clubName: "Lyon", league: LeagueLigue1, contractEnd: 2026, attrs: [6]int{80, 77, 80, 88, 30, 60}},
		{id: "p-0014", short: "A. Lopes", long: "Anthony Lopes", nation: "Portugal", age: 34, positions: []string{"GK"}, overall: 78, potential: 78, clubName: "Lyon", league: LeagueLigue1, contractEnd: 2025},
		{id: "p-0015", short: "L. Balerdi", long: "Leonardo Balerdi", nation: "Argentina", age: 26, positions: []string{"CB"}, overall: 79, potential: 81, clubName: "Marseille", league: LeagueLigue1, contractEnd: 2028, attrs: [6]int{70, 40, 62, 60, 80, 79}},
		{id: "p-0016", short: "M. Guendouzi", long: "Mattéo Guendouzi", nation: "France", age: 26, positions: []string{"CM"}, overall: 80, potential: 82, clubName: "Marseille", league: LeagueLigue1, contractEnd: 2027, wage: 75_000},
		{id: "p-0017", short: "G. Varela", long: "Alan Varela", nation: "Argentina", age: 24, positions: []string{"CDM"}, overall: 79, potential: 85, clubName: "Porto", league: LeagueLigaPortugal, contractEnd: 2028, releaseClause: 70_000_000, attrs: [6]int{68, 58, 78, 74, 78, 76}},
		{id: "p-0018", short: "D. Costa", long: "Diogo Costa", nation: "Portugal", age: 25, positions: []string{"GK"}, overall: 84, potential: 88, clubName: "Porto", league: LeagueLigaPortugal, contractEnd: 2027, releaseClause: 75_000_000},
		{id: "p-0019", short: "J. Neves", long: "João Neves", nation: "Portugal", age: 20, positions: []string{"CM", "CDM"}, overall: 82, potential: 92, clubName: "Benfica", league: LeagueLigaPortugal, contractEnd: 2028, releaseClause: 120_000_000, attrs: [6]int{74, 68, 84, 83, 72, 66}},
		{id: "p-0020", short: "Â. Di Maria", long: "Ángel Di Maria", nation: "Argentina", age: 37, positions: []string{"RW"}, overall: 80, potential: 80, clubName: "Benfica", league: LeagueLigaPortugal, contractEnd: 2025, attrs: [6]int{68, 80, 84, 84, 30, 55}},
		{id: "p-0021", short: "Pedro", long: "Pedro Guilherme", nation: "Brazil", age: 28, positions: []string{"ST"}, overall: 81, potential: 81, clubName: "Flamengo", league: LeagueBrasileirao, contractEnd: 2027},
		{id: "p-0022", short: "Gerson", long: "Gerson Santos", nation: "Brazil", age: 28, positions: []string{"CM"}, overall: 79, potential: 79, clubName: "Flamengo", league: LeagueBrasileirao, contractEnd: 2027, wage: 45_000},
		{id: "p-0023", short: "E. Estêvão", long: "Estêvão Willian", nation: "Brazil", age: 18, positions: []string{"RW"}, overall: 77, potential: 93, clubName: "Palmeiras", league: LeagueBrasileirao, contractEnd: 2030, releaseClause: 60_000_000, attrs: [6]int{86, 74, 73, 86, 25, 55}},
		{id: "p-0024", short: "A. Vitor", long: "Anibal Vitor", nation: "Brazil", age: 23, positions: []string{"LB"}, potential: 82, clubName: "Palmeiras", league: LeagueBrasileirao, contractEnd: 2026},
		{id: "p-0025", short: "R. Puig", long: "Riqui Puig", nation: "Spain", age: 25, positions: []string{"CM"}, overall: 76, potential: 78, clubName: "LA Galaxy", league: LeagueMLS, contractEnd: 2026, attrs: [6]int{70, 70, 82, 84, 50, 52}},
		{id: "p-0026", short: "G. Paintsil", long: "Gabriel Paintsil", nation: "Ghana", age: 27, positions: []string{"RW"}, overall: 74, potential: 75, clubName: "LA Galaxy", league: LeagueMLS, contractEnd: 2027},
		{id: "p-0027", short: "Y. Ienaga", long: "Yuki Ienaga", nation: "Japan", age: 29, positions: []string{"LW"}, overall: 72, potential: 72, clubName: "Kawasaki Frontale", league: LeagueJ1, contractEnd: 2026},
		{id: "p-0028", short: "K. Yamada", long: "Kota Yamada", nation: "Japan", age: 19, positions: []string{"ST"}, potential: 88, clubName: "Kawasaki Frontale", league: LeagueJ1, contractEnd: 2027},
		{id: "p-0029", short: "N. Okafor", long: "Noah Okafor", nation: "Switzerland", age: 25, positions: []string{"LW", "ST"}, overall: 77, potential: 80, contractEnd: 2024},
		{id: "p-0030", short: "A. Tuanzebe", long: "Axel Tuanzebe", nation: "Congo DR", age: 27, positions: []string{"CB"}, overall: 73, potential: 74, contractEnd: 2025},
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.player())
	}
	return out
}

func (r seedRow) player() player.Player {
	p := player.Player{
		ID:              r.id,
		Name:            r.long,
		ShortName:       r.short,
		LongName:        r.long,
		Nationality:     r.nation,
		Positions:       r.positions,
		PreferredFoot:   "Right",
		WorkRate:        "Medium/Medium",
		ClubName:        r.clubName,
		League:          r.league,
		ContractEndYear: player.Int(r.contractEnd),
	}
	if r.age > 0 {
		p.Age = player.Int(r.age)
	}
	if r.overall > 0 {
		p.Overall = player.Int(r.overall)
	}
	if r.potential > 0 {
		p.Potential = player.Int(r.potential)
	}
	if r.marketValue > 0 {
		p.MarketValue = player.Int64(r.marketValue)
	}
	if r.wage > 0 {
		p.Wage = player.Int64(r.wage)
	}
	if r.releaseClause > 0 {
		p.ReleaseClause = player.Int64(r.releaseClause)
	}
	if r.attrs != ([6]int{}) {
		p.Attributes = player.Attributes{
			Pace:      player.Int(r.attrs[0]),
			Shooting:  player.Int(r.attrs[1]),
			Passing:   player.Int(r.attrs[2]),
			Dribbling: player.Int(r.attrs[3]),
			Defending: player.Int(r.attrs[4]),
			Physic:    player.Int(r.attrs[5]),
		}
	}
	return p
}
