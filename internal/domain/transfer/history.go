package transfer

import "time"

type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// HistoryEntry records one completed deal. Entries are only ever appended.
type HistoryEntry struct {
	Direction    Direction
	PlayerID     string
	PlayerName   string
	Fee          int64
	Wage         int64
	Counterparty string
	Date         time.Time
}
