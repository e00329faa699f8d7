package postgres

import (
	"database/sql"

	"github.com/riskibarqy/football-career/internal/domain/club"
)

type clubTableModel struct {
	PublicID       string        `db:"public_id"`
	Name           string        `db:"name"`
	League         string        `db:"league"`
	Country        string        `db:"country"`
	Overall        int           `db:"overall"`
	TransferBudget sql.NullInt64 `db:"transfer_budget"`
}

var clubSelectColumns = []string{
	"public_id",
	"name",
	"league",
	"country",
	"overall",
	"transfer_budget",
}

func clubFromRow(row clubTableModel) club.Club {
	return club.Club{
		ID:             row.PublicID,
		Name:           row.Name,
		League:         row.League,
		Country:        row.Country,
		Overall:        row.Overall,
		TransferBudget: row.TransferBudget.Int64,
	}
}
