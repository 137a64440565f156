package models

import "time"

// DividendEvent is one upcoming dividend found inside the user's date window.
// Priority and MaxPart are set by the user after the refresh, the remaining
// columns are rewritten wholesale on the next dividend refresh.
type DividendEvent struct {
	ID            int       `db:"id"`
	Ticker        string    `db:"ticker"`
	CompanyName   string    `db:"company_name"`
	Payday        time.Time `db:"payday"`
	Dividend      float64   `db:"dividend"`
	Profitability float64   `db:"profitability"`
	Price         float64   `db:"price"`
	Priority      *int      `db:"priority"`
	MaxPart       *int      `db:"max_part"`
	OwnerID       int       `db:"owner_id"`
}

// Candidate is a sized buy suggestion derived from a DividendEvent and the
// owner's settings.
type Candidate struct {
	ID       int     `db:"id"`
	Ticker   string  `db:"ticker"`
	Price    float64 `db:"price"`
	Count    int     `db:"count"`
	Costs    float64 `db:"costs"`
	Share    float64 `db:"share"`
	Dividend float64 `db:"dividend"`
	OwnerID  int     `db:"owner_id"`
}
