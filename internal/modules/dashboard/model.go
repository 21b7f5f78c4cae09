package dashboard

import (
	"time"

	"github.com/google/uuid"
)

// Summary aggregates one calendar month of completed sales at active stores.
type Summary struct {
	Month  string       `json:"month"`
	From   time.Time    `json:"from"`
	To     time.Time    `json:"to"` // exclusive
	Sales  Totals       `json:"sales"`
	Daily  []DayTotal   `json:"daily"`
	Stores []StoreTotal `json:"stores"`
}

type Totals struct {
	Revenue       float64 `json:"revenue"`
	Count         int     `json:"count"`
	AverageTicket float64 `json:"average_ticket"`
}

// DayTotal is the revenue of one UTC day, formatted YYYY-MM-DD.
type DayTotal struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

type StoreTotal struct {
	StoreID uuid.UUID `json:"store_id"`
	Name    string    `json:"name"`
	Revenue float64   `json:"revenue"`
	Count   int       `json:"count"`
}
