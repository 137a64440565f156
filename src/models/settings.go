package models

import "time"

// UserSettings holds the per-user strategy parameters. One row per user,
// created with defaults together with the user account.
type UserSettings struct {
	ID                int       `db:"id"`
	AvailableCapital  int       `db:"available_capital"`
	BrokerCommission  float64   `db:"broker_commission"`
	DividendTax       float64   `db:"dividend_tax"`
	CentralBankRate   float64   `db:"central_bank_rate"`
	DividendsFromDate time.Time `db:"dividends_from_date"`
	DividendsToDate   time.Time `db:"dividends_to_date"`
	ChatID            int64     `db:"chat_id"`
	OwnerID           int       `db:"owner_id"`
}

// DefaultSettings are applied when a user account is created.
func DefaultSettings(ownerID int) *UserSettings {
	today := time.Now().Truncate(24 * time.Hour)
	return &UserSettings{
		AvailableCapital:  4000,
		BrokerCommission:  0.015,
		DividendTax:       13,
		CentralBankRate:   0.165,
		DividendsFromDate: today,
		DividendsToDate:   today,
		ChatID:            0,
		OwnerID:           ownerID,
	}
}
