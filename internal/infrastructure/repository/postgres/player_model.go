package postgres

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/riskibarqy/football-career/internal/domain/player"
)

type playerTableModel struct {
	PublicID        string         `db:"public_id"`
	Name            string         `db:"name"`
	ShortName       string         `db:"short_name"`
	LongName        string         `db:"long_name"`
	Nationality     string         `db:"nationality"`
	Age             sql.NullInt64  `db:"age"`
	Positions       pq.StringArray `db:"positions"`
	PreferredFoot   string         `db:"preferred_foot"`
	WorkRate        string         `db:"work_rate"`
	Traits          pq.StringArray `db:"traits"`
	Overall         sql.NullInt64  `db:"overall"`
	Potential       sql.NullInt64  `db:"potential"`
	Pace            sql.NullInt64  `db:"pace"`
	Shooting        sql.NullInt64  `db:"shooting"`
	Passing         sql.NullInt64  `db:"passing"`
	Dribbling       sql.NullInt64  `db:"dribbling"`
	Defending       sql.NullInt64  `db:"defending"`
	Physic          sql.NullInt64  `db:"physic"`
	MarketValue     sql.NullInt64  `db:"market_value"`
	Wage            sql.NullInt64  `db:"wage"`
	ReleaseClause   sql.NullInt64  `db:"release_clause"`
	ClubName        string         `db:"club_name"`
	League          string         `db:"league"`
	ContractEndYear sql.NullInt64  `db:"contract_end_year"`
	FaceURL         string         `db:"face_url"`
	ClubLogoURL     string         `db:"club_logo_url"`
	NationFlagURL   string         `db:"nation_flag_url"`
}

var playerSelectColumns = []string{
	"public_id",
	"name",
	"short_name",
	"long_name",
	"nationality",
	"age",
	"positions",
	"preferred_foot",
	"work_rate",
	"traits",
	"overall",
	"potential",
	"pace",
	"shooting",
	"passing",
	"dribbling",
	"defending",
	"physic",
	"market_value",
	"wage",
	"release_clause",
	"club_name",
	"league",
	"contract_end_year",
	"face_url",
	"club_logo_url",
	"nation_flag_url",
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:            row.PublicID,
		Name:          row.Name,
		ShortName:     row.ShortName,
		LongName:      row.LongName,
		Nationality:   row.Nationality,
		Age:           nullIntPtr(row.Age),
		Positions:     append([]string(nil), row.Positions...),
		PreferredFoot: row.PreferredFoot,
		WorkRate:      row.WorkRate,
		Traits:        append([]string(nil), row.Traits...),
		Overall:       nullIntPtr(row.Overall),
		Potential:     nullIntPtr(row.Potential),
		Attributes: player.Attributes{
			Pace:      nullIntPtr(row.Pace),
			Shooting:  nullIntPtr(row.Shooting),
			Passing:   nullIntPtr(row.Passing),
			Dribbling: nullIntPtr(row.Dribbling),
			Defending: nullIntPtr(row.Defending),
			Physic:    nullIntPtr(row.Physic),
		},
		MarketValue:     nullInt64Ptr(row.MarketValue),
		Wage:            nullInt64Ptr(row.Wage),
		ReleaseClause:   nullInt64Ptr(row.ReleaseClause),
		ClubName:        row.ClubName,
		League:          row.League,
		ContractEndYear: nullIntPtr(row.ContractEndYear),
		FaceURL:         row.FaceURL,
		ClubLogoURL:     row.ClubLogoURL,
		NationFlagURL:   row.NationFlagURL,
	}
}
