package models

import "time"

// Holding is a position the user is currently tracking. CurrentPrice is
// rewritten on every refresh cycle, Notified is toggled by the notifier.
type Holding struct {
	ID           int       `db:"id"`
	Ticker       string    `db:"ticker"`
	BuyPrice     float64   `db:"buy_price"`
	BuyCount     int       `db:"buy_count"`
	BuyDate      time.Time `db:"buy_date"`
	CurrentPrice float64   `db:"current_price"`
	TargetPrice  float64   `db:"target_price"`
	Notified     bool      `db:"notified"`
	OwnerID      int       `db:"owner_id"`
}
